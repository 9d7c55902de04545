package usql_test

import (
	"testing"

	"github.com/oarkflow/usql"
)

func TestParseStatementRoundTrip(t *testing.T) {
	stmt, err := usql.ParseStatement(usql.ANSI(), "SELECT id, name FROM users WHERE active = 1")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	text := usql.Render(stmt)
	again, err := usql.ParseStatement(usql.ANSI(), text)
	if err != nil {
		t.Fatalf("reparse error on %q: %v", text, err)
	}
	if text2 := usql.Render(again); text != text2 {
		t.Fatalf("round-trip mismatch:\nfirst:  %s\nsecond: %s", text, text2)
	}
}

func TestParseQueryAndExpr(t *testing.T) {
	if _, err := usql.ParseQuery(usql.Postgres(), "SELECT a FROM t ORDER BY a LIMIT 5"); err != nil {
		t.Fatalf("ParseQuery error: %v", err)
	}
	if _, err := usql.ParseExpr(usql.MySQL(), "1 + 2 * 3"); err != nil {
		t.Fatalf("ParseExpr error: %v", err)
	}
}

func TestDialectConstructorsAndLookup(t *testing.T) {
	for _, name := range []string{"ansi", "mysql", "postgres", "postgresql", "sqlite"} {
		if _, ok := usql.LoadDialect(name); !ok {
			t.Fatalf("expected dialect %q to be registered", name)
		}
	}
}

func TestLoadYAMLCustomDialect(t *testing.T) {
	data := []byte(`
base: ansi
extra_keywords: [UPSERT, MERGE]
allow_limit_clause: true
`)
	d, err := usql.LoadYAML(data)
	if err != nil {
		t.Fatalf("LoadYAML error: %v", err)
	}
	if !d.Parser.AllowLimitClause {
		t.Fatalf("expected AllowLimitClause overridden to true")
	}
	if _, ok := d.Keywords.Lookup("UPSERT"); !ok {
		t.Fatalf("expected UPSERT to be added to the keyword table")
	}
}

func TestTokenizeAndDump(t *testing.T) {
	toks, err := usql.Tokenize(usql.ANSI(), "SELECT 1")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if len(toks) == 0 {
		t.Fatalf("expected at least one token")
	}
	stmt, err := usql.ParseStatement(usql.ANSI(), "SELECT 1")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if usql.Dump(stmt) == "" {
		t.Fatalf("expected non-empty dump")
	}
}
