// Package usql is a dialect-parameterized SQL lexer, parser, and
// canonical formatter.
//
// Design goals:
//   - Single-pass, streaming tokenizer shared by every dialect
//   - Pratt (precedence-climbing) expression parser
//   - Full DDL + DML + transaction-statement coverage
//   - Deterministic, single-line canonical rendering suitable for
//     AST round-trips
//   - MySQL, PostgreSQL, SQLite, and plain ANSI dialects out of the box,
//     plus custom dialects loaded from YAML
//
// Usage:
//
//	stmt, err := usql.ParseStatement(usql.MySQL(), "SELECT id, name FROM users WHERE id = 1")
//	text := usql.Render(stmt)
package usql

import (
	"github.com/oarkflow/usql/ast"
	"github.com/oarkflow/usql/dialect"
	"github.com/oarkflow/usql/lexer"
	"github.com/oarkflow/usql/parser"
	"github.com/oarkflow/usql/token"
)

// Re-export core types so callers only need to import this package.
type (
	Dialect    = dialect.Dialect
	Statement  = ast.Statement
	Expr       = ast.Expr
	Node       = ast.Node
	Query      = ast.Query
	Token      = token.Token
	ParseError = parser.Error
)

// ANSI returns the baseline ANSI SQL:2016 dialect.
func ANSI() *Dialect { return dialect.ANSI() }

// MySQL returns the MySQL dialect.
func MySQL() *Dialect { return dialect.MySQL() }

// Postgres returns the PostgreSQL dialect.
func Postgres() *Dialect { return dialect.Postgres() }

// SQLite returns the SQLite dialect.
func SQLite() *Dialect { return dialect.SQLite() }

// LoadDialect looks up a registered dialect by name ("ansi", "mysql",
// "postgres"/"postgresql", "sqlite").
func LoadDialect(name string) (*Dialect, bool) { return dialect.Lookup(name) }

// LoadYAML builds a custom dialect from a YAML descriptor layered on top
// of one of the built-in dialects.
func LoadYAML(data []byte) (*Dialect, error) { return dialect.LoadYAML(data) }

// Tokenize breaks SQL text into a token sequence under dialect d.
func Tokenize(d *Dialect, text string) ([]Token, error) {
	return lexer.Tokenize(d, text)
}

// ParseStatement parses exactly one SQL statement under dialect d.
func ParseStatement(d *Dialect, text string) (Statement, error) {
	return parser.ParseStatement(d, text)
}

// ParseQuery parses a single query expression (no trailing DML/DDL
// keywords) under dialect d.
func ParseQuery(d *Dialect, text string) (*Query, error) {
	return parser.ParseQuery(d, text)
}

// ParseExpr parses a single scalar expression under dialect d.
func ParseExpr(d *Dialect, text string) (Expr, error) {
	return parser.ParseExpr(d, text)
}

// Render produces the canonical single-line text form of an AST node.
func Render(n Node) string { return parser.Render(n) }

// Dump produces a debug tree representation of an AST node.
func Dump(n Node) string { return ast.Dump(n) }
