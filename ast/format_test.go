package ast_test

import (
	"testing"

	"github.com/oarkflow/usql/ast"
)

func TestIdentRenderQuoted(t *testing.T) {
	n := &ast.Ident{Name: "order"}
	if got, want := ast.String(n), "order"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	quoted := &ast.Ident{Name: "order", Quote: '"'}
	if got, want := ast.String(quoted), `"order"`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	bracket := &ast.Ident{Name: "col", Quote: '['}
	if got, want := ast.String(bracket), "[col]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCompoundIdentRenderHugsDots(t *testing.T) {
	n := &ast.CompoundIdent{Parts: []*ast.Ident{{Name: "a"}, {Name: "b"}, {Name: "c"}}}
	if got, want := ast.String(n), "a.b.c"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLiteralRenderKinds(t *testing.T) {
	cases := []struct {
		lit  *ast.Literal
		want string
	}{
		{&ast.Literal{Kind: ast.LitNumber, Value: "42"}, "42"},
		{&ast.Literal{Kind: ast.LitString, Value: "it's"}, "'it''s'"},
		{&ast.Literal{Kind: ast.LitNationalString, Value: "x"}, "N'x'"},
		{&ast.Literal{Kind: ast.LitHexString, Value: "FF"}, "X'FF'"},
	}
	for _, c := range cases {
		if got := ast.String(c.lit); got != c.want {
			t.Fatalf("got %q, want %q", got, c.want)
		}
	}
}

func TestBinaryOpRenderSingleSpaced(t *testing.T) {
	n := &ast.BinaryOp{
		Op:   "+",
		Left: &ast.Literal{Kind: ast.LitNumber, Value: "1"},
		Right: &ast.BinaryOp{
			Op:    "*",
			Left:  &ast.Literal{Kind: ast.LitNumber, Value: "2"},
			Right: &ast.Literal{Kind: ast.LitNumber, Value: "3"},
		},
	}
	if got, want := ast.String(n), "1 + 2 * 3"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBetweenRenderNegated(t *testing.T) {
	n := &ast.Between{
		Expr:   &ast.Ident{Name: "x"},
		Low:    &ast.Literal{Kind: ast.LitNumber, Value: "1"},
		High:   &ast.Literal{Kind: ast.LitNumber, Value: "10"},
		Negate: true,
	}
	if got, want := ast.String(n), "x NOT BETWEEN 1 AND 10"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFunctionCallRenderArgsAndDistinct(t *testing.T) {
	n := &ast.FunctionCall{
		Name:     &ast.Ident{Name: "COUNT"},
		Distinct: true,
		Args:     []ast.FuncArg{{Expr: &ast.Ident{Name: "id"}}},
	}
	if got, want := ast.String(n), "COUNT(DISTINCT id)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFunctionCallRenderMultipleArgsComma(t *testing.T) {
	n := &ast.FunctionCall{
		Name: &ast.Ident{Name: "f"},
		Args: []ast.FuncArg{
			{Expr: &ast.Ident{Name: "a"}},
			{Expr: &ast.Ident{Name: "b"}},
		},
	}
	if got, want := ast.String(n), "f(a, b)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// P2: a quoted identifier never carries a keyword tag in the AST's
// rendering — rendering just re-quotes whatever name was stored.
func TestQuotedIdentRendersVerbatimEvenIfKeywordLike(t *testing.T) {
	n := &ast.Ident{Name: "SELECT", Quote: '"'}
	if got, want := ast.String(n), `"SELECT"`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
