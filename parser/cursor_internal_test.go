package parser

import (
	"testing"

	"github.com/oarkflow/usql/dialect"
	"github.com/oarkflow/usql/lexer"
)

func newTestCursor(t *testing.T, sql string) *cursor {
	t.Helper()
	toks, err := lexer.Tokenize(dialect.ANSI(), sql)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	return newCursor(toks)
}

func TestCursorPeekNextAdvancesWithoutMovingPos(t *testing.T) {
	c := newTestCursor(t, "SELECT a FROM b")
	pos := c.pos
	first := c.peekNext()
	second := c.peekNext()
	if c.pos != pos {
		t.Fatalf("peekNext must not move pos: got %d, want %d", c.pos, pos)
	}
	if first.Value == second.Value {
		t.Fatalf("successive peekNext calls should walk forward, got %q twice", first.Value)
	}
	c.resetPeekCursor()
	if c.peekIdx != 0 {
		t.Fatalf("resetPeekCursor should zero peekIdx, got %d", c.peekIdx)
	}
}

// P6: after any successful parse, the cursor's peek index is zero.
func TestCursorPeekIndexResetsAfterParse(t *testing.T) {
	d := dialect.ANSI()
	sources := []string{
		"SELECT a, b FROM t WHERE a = 1 AND b IN (1, 2, 3) ORDER BY a",
		"INSERT INTO t (a, b) VALUES (1, 2)",
		"CREATE TABLE t (a INTEGER NOT NULL, b TEXT)",
		"WITH x AS (SELECT 1) SELECT * FROM x",
	}
	for _, src := range sources {
		toks, err := lexer.Tokenize(d, src)
		if err != nil {
			t.Fatalf("tokenize error for %q: %v", src, err)
		}
		p := newParser(d, toks)
		if _, err := p.parseStatement(); err != nil {
			t.Fatalf("parseStatement error for %q: %v", src, err)
		}
		if p.c.peekIdx != 0 {
			t.Fatalf("peekIdx not reset after parsing %q: got %d", src, p.c.peekIdx)
		}
	}
}

func TestCursorNextResetsPeekIndex(t *testing.T) {
	c := newTestCursor(t, "SELECT a FROM b")
	c.peekNext()
	c.peekNext()
	if c.peekIdx == 0 {
		t.Fatalf("expected peekIdx to have advanced before next()")
	}
	c.next()
	if c.peekIdx != 0 {
		t.Fatalf("next() must reset peekIdx, got %d", c.peekIdx)
	}
}
