// Package parser turns a dialect-parameterized token stream into the
// usql AST: expressions via Pratt precedence climbing, query expressions
// (WITH/set-operations/ORDER BY/LIMIT-OFFSET-FETCH), and the statement
// grammar (DML, DDL, transactions). It never recovers from an error —
// the first one aborts the parse and no partial AST is returned.
package parser

import (
	"github.com/oarkflow/usql/ast"
	"github.com/oarkflow/usql/dialect"
	"github.com/oarkflow/usql/lexer"
	"github.com/oarkflow/usql/token"
)

// parser holds one parse's cursor and dialect. It is not reused across
// calls; ParseStatement/ParseQuery/ParseExpr each build a fresh one.
type parser struct {
	d *dialect.Dialect
	c *cursor
}

func newParser(d *dialect.Dialect, toks []token.Token) *parser {
	return &parser{d: d, c: newCursor(toks)}
}

// ParseStatement parses exactly one statement from text under dialect d.
func ParseStatement(d *dialect.Dialect, text string) (ast.Statement, error) {
	toks, err := lexer.Tokenize(d, text)
	if err != nil {
		return nil, tokenizeError(err)
	}
	p := newParser(d, toks)
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if !p.c.peekIsEOF() {
		return nil, p.expected("EOF")
	}
	return stmt, nil
}

// ParseQuery parses exactly one <query> production from text.
func ParseQuery(d *dialect.Dialect, text string) (*ast.Query, error) {
	toks, err := lexer.Tokenize(d, text)
	if err != nil {
		return nil, tokenizeError(err)
	}
	p := newParser(d, toks)
	q, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	if !p.c.peekIsEOF() {
		return nil, p.expected("EOF")
	}
	return q, nil
}

// ParseExpr parses a single expression from text.
func ParseExpr(d *dialect.Dialect, text string) (ast.Expr, error) {
	toks, err := lexer.Tokenize(d, text)
	if err != nil {
		return nil, tokenizeError(err)
	}
	p := newParser(d, toks)
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if !p.c.peekIsEOF() {
		return nil, p.expected("EOF")
	}
	return e, nil
}

// Render is the canonical single-line formatter, re-exported here for
// symmetry with the Parse* entry points (ast.String does the real work).
func Render(n ast.Node) string { return ast.String(n) }
