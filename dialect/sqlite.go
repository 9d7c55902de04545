package dialect

var sqliteExtraWords = []string{
	"AUTOINCREMENT", "PRAGMA", "WITHOUT", "VIRTUAL", "REINDEX", "VACUUM",
	"ATTACH", "DETACH", "GLOB", "REGEXP",
}

var sqliteKeywords = ansiKeywords.Extend(sqliteExtraWords...)

// SQLite returns the SQLite dialect descriptor: identifiers may be quoted
// with the bracket form "[name]" or with backticks in addition to the
// standard double quote, and LIMIT/OFFSET behave as in PostgreSQL.
func SQLite() *Dialect {
	lex := baseLexerConfig()
	lex.IdentOpen = []rune{'"', '[', '`'}
	return &Dialect{
		Name:     "sqlite",
		Keywords: sqliteKeywords,
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
	register("sqlite", SQLite)
}
