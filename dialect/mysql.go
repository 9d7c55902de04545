package dialect

var mysqlExtraWords = []string{
	"AUTO_INCREMENT", "UNSIGNED", "ZEROFILL", "ENGINE", "CHARSET",
	"COLLATE_KW", "IGNORE", "REPLACE", "LOW_PRIORITY", "DELAYED",
	"SQL_CALC_FOUND_ROWS", "STRAIGHT_JOIN", "SEPARATOR",
}

var mysqlKeywords = ansiKeywords.Extend(mysqlExtraWords...)

func mysqlIdentifierPart(r rune) bool {
	return asciiIdentPart(r) || r == '$'
}

// MySQL returns the MySQL dialect descriptor: backtick-quoted
// identifiers, '$' permitted inside unquoted identifiers, and LIMIT
// accepted with OFFSET not requiring a ROW|ROWS keyword.
func MySQL() *Dialect {
	lex := baseLexerConfig()
	lex.IdentOpen = []rune{'"', '`'}
	lex.IdentifierPart = mysqlIdentifierPart
	return &Dialect{
		Name:     "mysql",
		Keywords: mysqlKeywords,
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
	register("mysql", MySQL)
}
