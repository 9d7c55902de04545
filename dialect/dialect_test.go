package dialect

import "testing"

func TestLookupSuppliedDialects(t *testing.T) {
	for _, name := range []string{"ansi", "mysql", "postgres", "postgresql", "sqlite"} {
		d, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) not found", name)
		}
		if d.Keywords == nil {
			t.Fatalf("Lookup(%q): nil keyword table", name)
		}
	}
	if _, ok := Lookup("oracle"); ok {
		t.Fatal("Lookup(\"oracle\") unexpectedly found")
	}
}

func TestKeywordLookupCaseInsensitive(t *testing.T) {
	d := ANSI()
	for _, word := range []string{"select", "SELECT", "Select", "sElEcT"} {
		tag, ok := d.Keywords.Lookup(word)
		if !ok || tag != "SELECT" {
			t.Fatalf("Lookup(%q) = %q, %v; want SELECT, true", word, tag, ok)
		}
	}
	if _, ok := d.Keywords.Lookup("not_a_keyword"); ok {
		t.Fatal("unexpected match for non-keyword")
	}
}

func TestMySQLAllowsBacktickAndDollar(t *testing.T) {
	d := MySQL()
	if !d.Lexer.IsIdentOpen('`') {
		t.Fatal("mysql: backtick should open an identifier")
	}
	if !d.Lexer.IdentifierPart('$') {
		t.Fatal("mysql: '$' should continue an identifier")
	}
	if !d.Parser.AllowOffsetWithoutRowKeyword {
		t.Fatal("mysql: OFFSET without ROW should be allowed")
	}
}

func TestSQLiteBracketIdentifier(t *testing.T) {
	d := SQLite()
	close, ok := d.Lexer.CloseFor('[')
	if !ok || close != ']' {
		t.Fatalf("sqlite: CloseFor('[') = %q, %v; want ']', true", close, ok)
	}
}

func TestANSIRejectsLimit(t *testing.T) {
	d := ANSI()
	if d.Parser.AllowLimitClause {
		t.Fatal("ansi: LIMIT should be rejected by default")
	}
	if d.Parser.AllowOffsetWithoutRowKeyword {
		t.Fatal("ansi: OFFSET must require ROW|ROWS")
	}
}

func TestLoadYAMLCustomDialect(t *testing.T) {
	yamlDoc := []byte(`
base: ansi
extra_keywords: [UPSERT]
allow_limit_clause: true
allow_backtick_ident: true
`)
	d, err := LoadYAML(yamlDoc)
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if !d.Parser.AllowLimitClause {
		t.Fatal("expected LIMIT to be allowed in custom dialect")
	}
	if _, ok := d.Keywords.Lookup("UPSERT"); !ok {
		t.Fatal("expected UPSERT to be a recognized keyword")
	}
	if !d.Lexer.IsIdentOpen('`') {
		t.Fatal("expected backtick identifiers to be enabled")
	}
}

func TestLoadYAMLUnknownBase(t *testing.T) {
	_, err := LoadYAML([]byte(`base: oracle`))
	if err == nil {
		t.Fatal("expected error for unknown base dialect")
	}
}
