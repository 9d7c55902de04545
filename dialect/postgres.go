package dialect

var postgresExtraWords = []string{
	"ILIKE", "RETURNING", "LATERAL", "BYTEA", "TEXT", "SERIAL",
	"BIGSERIAL", "REGCLASS", "JSONB", "ARRAY", "TABLESPACE",
}

var postgresKeywords = ansiKeywords.Extend(postgresExtraWords...)

func postgresIdentifierPart(r rune) bool {
	return asciiIdentPart(r) || r == '$'
}

// Postgres returns the PostgreSQL dialect descriptor: LIMIT/OFFSET both
// accepted, OFFSET not requiring a ROW|ROWS keyword, '$' permitted inside
// unquoted identifiers (for parameter-adjacent names).
func Postgres() *Dialect {
	lex := baseLexerConfig()
	lex.IdentifierPart = postgresIdentifierPart
	return &Dialect{
		Name:     "postgres",
		Keywords: postgresKeywords,
		Lexer:    lex,
		Parser: ParserConfig{
			AllowLimitClause:             true,
			AllowOffsetWithoutRowKeyword: true,
			AllowNaturalJoin:             true,
			RecursiveCTEKeywordRequired:  true,
		},
	}
}

func init() {
	register("postgres", Postgres)
	register("postgresql", Postgres)
}
