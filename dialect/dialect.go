// Package dialect describes the lexical and grammatical knobs that
// parameterize the lexer and parser for a particular SQL variant. A
// Dialect is a read-only value: constructing one never fails, and a
// constructed Dialect may be shared across any number of concurrent
// parses without locking.
package dialect

// LexerConfig holds the per-character predicates and quoting rules that
// steer tokenization.
type LexerConfig struct {
	// StringQuote is the character that opens a standard string literal.
	StringQuote rune
	// IdentOpen is the set of characters that open a delimited
	// (quoted) identifier. MySQL adds '`' here; SQLite adds '[' and '`'.
	IdentOpen []rune
	// IdentifierStart reports whether r may begin an unquoted identifier.
	IdentifierStart func(r rune) bool
	// IdentifierPart reports whether r may continue an unquoted identifier.
	IdentifierPart func(r rune) bool
}

// CloseFor returns the closing delimiter for an opening quote/bracket
// character, and whether open is a recognized identifier-opening char.
func (c LexerConfig) CloseFor(open rune) (rune, bool) {
	for _, o := range c.IdentOpen {
		if o == open {
			if open == '[' {
				return ']', true
			}
			return open, true
		}
	}
	return 0, false
}

// IsIdentOpen reports whether r opens a delimited identifier under this
// configuration.
func (c LexerConfig) IsIdentOpen(r rune) bool {
	_, ok := c.CloseFor(r)
	return ok
}

// ParserConfig holds the grammar feature flags that vary by dialect.
type ParserConfig struct {
	// AllowLimitClause controls whether "LIMIT n | ALL" is accepted.
	AllowLimitClause bool
	// AllowOffsetWithoutRowKeyword controls whether "OFFSET n" may omit
	// the trailing ROW|ROWS keyword.
	AllowOffsetWithoutRowKeyword bool
	// AllowNaturalJoin controls whether NATURAL is recognized as a join
	// prefix.
	AllowNaturalJoin bool
	// RecursiveCTEKeywordRequired controls whether a CTE whose body
	// refers back to its own name must be introduced with "WITH
	// RECURSIVE" rather than a bare "WITH". All four supplied dialects
	// set this true; a looser dialect loaded from YAML can set it false
	// to accept a self-referencing CTE without the keyword.
	RecursiveCTEKeywordRequired bool
}

// Dialect is a named, immutable bundle of keyword table, lexer
// configuration and parser configuration.
type Dialect struct {
	Name     string
	Keywords *Keywords
	Lexer    LexerConfig
	Parser   ParserConfig
}

func asciiIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func asciiIdentPart(r rune) bool {
	return asciiIdentStart(r) || (r >= '0' && r <= '9') || r == '_'
}

func baseLexerConfig() LexerConfig {
	return LexerConfig{
		StringQuote:     '\'',
		IdentOpen:       []rune{'"'},
		IdentifierStart: asciiIdentStart,
		IdentifierPart:  asciiIdentPart,
	}
}

// registry is populated by the init functions of ansi.go, mysql.go,
// postgres.go and sqlite.go.
var registry = map[string]func() *Dialect{}

func register(name string, ctor func() *Dialect) {
	registry[name] = ctor
}

// Lookup resolves one of the four supplied dialect identifiers: "ansi",
// "mysql", "postgres", "sqlite". Lookup is case-insensitive.
func Lookup(name string) (*Dialect, bool) {
	ctor, ok := registry[lowerASCII(name)]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
