package token_test

import (
	"testing"

	"github.com/oarkflow/usql/token"
)

func TestTokenEqualIgnoresSpan(t *testing.T) {
	a := token.Token{Kind: token.Word, Value: "foo", Keyword: "", Span: token.Span{Start: token.Location{Line: 1, Column: 0}}}
	b := token.Token{Kind: token.Word, Value: "foo", Keyword: "", Span: token.Span{Start: token.Location{Line: 9, Column: 9}}}
	if !a.Equal(b) {
		t.Fatalf("tokens differing only in span should be Equal")
	}
}

func TestTokenEqualComparesSpacingForPunctOnly(t *testing.T) {
	a := token.Token{Kind: token.Punct, Value: "|", Spacing: token.Joint}
	b := token.Token{Kind: token.Punct, Value: "|", Spacing: token.Alone}
	if a.Equal(b) {
		t.Fatalf("Punct tokens with different Spacing should not be Equal")
	}
	w1 := token.Token{Kind: token.Word, Value: "x", Spacing: token.Joint}
	w2 := token.Token{Kind: token.Word, Value: "x", Spacing: token.Alone}
	if !w1.Equal(w2) {
		t.Fatalf("Spacing should be ignored for non-Punct kinds")
	}
}

func TestIsKeywordRequiresUnquotedMatch(t *testing.T) {
	kw := token.Token{Kind: token.Word, Value: "select", Keyword: "SELECT"}
	if !kw.IsKeyword("SELECT") {
		t.Fatalf("expected IsKeyword(SELECT) to match")
	}
	quoted := token.Token{Kind: token.Word, Value: "SELECT", Quote: '"'}
	if quoted.IsKeyword("SELECT") {
		t.Fatalf("a quoted word must never resolve as a keyword")
	}
}

func TestIsPunct(t *testing.T) {
	p := token.Token{Kind: token.Punct, Value: "("}
	if !p.IsPunct('(') {
		t.Fatalf("expected IsPunct('(') to match")
	}
	if p.IsPunct(')') {
		t.Fatalf("did not expect IsPunct(')') to match")
	}
}

func TestStringRendersQuotedWord(t *testing.T) {
	w := token.Token{Kind: token.Word, Value: "col", Quote: '['}
	if got, want := w.String(), "[col]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
