// Package lexer implements the streaming UTF-8 tokenizer. It is
// single-pass, dialect-parameterized, and allocates one token at a time;
// it never looks at parser state.
package lexer

import (
	"strings"

	"github.com/oarkflow/usql/dialect"
	"github.com/oarkflow/usql/token"
)

// MaxCommentDepth is the default bound on nested multi-line comment
// depth. Exceeding it is a lex error.
const MaxCommentDepth = 128

// delimiters are always tokenized Alone, regardless of neighboring
// characters.
const delimiters = "()[]{}"

// punctChars is the recognized single-character punctuation set, minus
// the delimiters (handled separately) and minus '.' (handled by the
// number/dot branch).
const punctChars = "~!@#$%^&*-=+|;:,<>/?"

// Option configures a Tokenize call.
type Option func(*lexer)

// WithMaxCommentDepth overrides the nested multi-line comment depth
// bound for one Tokenize call.
func WithMaxCommentDepth(n int) Option {
	return func(l *lexer) { l.maxCommentDepth = n }
}

// Tokenize converts SQL text into a token sequence under the given
// dialect. Whitespace and comments are skipped entirely and never appear
// in the returned slice.
func Tokenize(d *dialect.Dialect, text string, opts ...Option) ([]token.Token, error) {
	l := &lexer{
		src:             []rune(text),
		loc:             token.Location{Line: 1, Column: 0},
		dialect:         d,
		maxCommentDepth: MaxCommentDepth,
	}
	for _, opt := range opts {
		opt(l)
	}
	var toks []token.Token
	for {
		if err := l.skipTrivia(); err != nil {
			return nil, err
		}
		if l.eof() {
			return toks, nil
		}
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

type lexer struct {
	src             []rune
	pos             int
	loc             token.Location
	dialect         *dialect.Dialect
	maxCommentDepth int
}

func (l *lexer) eof() bool { return l.pos >= len(l.src) }

func (l *lexer) peekAt(offset int) (rune, bool) {
	i := l.pos + offset
	if i < 0 || i >= len(l.src) {
		return 0, false
	}
	return l.src[i], true
}

func (l *lexer) peek() (rune, bool) { return l.peekAt(0) }

func (l *lexer) here() token.Location { return l.loc }

// advanceOne consumes one logical character: a bare '\r' or a '\r\n' pair
// both consume as a single newline. It returns the consumed text, with
// any newline normalized to "\n".
func (l *lexer) advanceOne() string {
	r := l.src[l.pos]
	if r == '\r' {
		l.pos++
		if !l.eof() && l.src[l.pos] == '\n' {
			l.pos++
		}
		l.loc.Line++
		l.loc.Column = 0
		return "\n"
	}
	l.pos++
	if r == '\n' {
		l.loc.Line++
		l.loc.Column = 0
	} else {
		l.loc.Column++
	}
	return string(r)
}

func (l *lexer) skipTrivia() error {
	for {
		r, ok := l.peek()
		if !ok {
			return nil
		}
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			l.advanceOne()
		case r == '-' && peekIs(l, 1, '-'):
			l.advanceOne()
			l.advanceOne()
			for {
				c, ok := l.peek()
				if !ok || c == '\n' || c == '\r' {
					break
				}
				l.advanceOne()
			}
		case r == '/' && peekIs(l, 1, '*'):
			start := l.here()
			l.advanceOne()
			l.advanceOne()
			if err := l.skipBlockComment(start, 1); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func peekIs(l *lexer, offset int, want rune) bool {
	r, ok := l.peekAt(offset)
	return ok && r == want
}

func (l *lexer) skipBlockComment(start token.Location, depth int) error {
	for depth > 0 {
		r, ok := l.peek()
		if !ok {
			return errorf(start, "Unterminated multi-line comment")
		}
		switch {
		case r == '/' && peekIs(l, 1, '*'):
			l.advanceOne()
			l.advanceOne()
			depth++
			if depth > l.maxCommentDepth {
				return errorf(start, "Comment nesting exceeds maximum depth of %d", l.maxCommentDepth)
			}
		case r == '*' && peekIs(l, 1, '/'):
			l.advanceOne()
			l.advanceOne()
			depth--
		default:
			l.advanceOne()
		}
	}
	return nil
}

func (l *lexer) next() (token.Token, error) {
	start := l.here()
	r, _ := l.peek()

	if isNBXPrefix(r) && peekIs(l, 1, l.dialect.Lexer.StringQuote) {
		kind := kindForPrefix(r)
		l.advanceOne() // consume the prefix letter
		l.advanceOne() // consume the opening quote
		content, err := l.scanQuoted(l.dialect.Lexer.StringQuote, start, true)
		if err != nil {
			return token.Token{}, err
		}
		return token.Token{Kind: kind, Value: content, Span: span(start, l.here())}, nil
	}

	switch {
	case r == l.dialect.Lexer.StringQuote:
		l.advanceOne()
		content, err := l.scanQuoted(r, start, true)
		if err != nil {
			return token.Token{}, err
		}
		return token.Token{Kind: token.String, Value: content, Quote: r, Span: span(start, l.here())}, nil

	case l.dialect.Lexer.IsIdentOpen(r):
		open := r
		closeCh, _ := l.dialect.Lexer.CloseFor(open)
		l.advanceOne()
		content, err := l.scanQuoted(closeCh, start, open != '[')
		if err != nil {
			return token.Token{}, err
		}
		return token.Token{Kind: token.Word, Value: content, Quote: open, Span: span(start, l.here())}, nil

	case l.dialect.Lexer.IdentifierStart(r):
		word := l.scanIdentifier()
		kw, _ := l.dialect.Keywords.Lookup(word)
		return token.Token{Kind: token.Word, Value: word, Keyword: kw, Span: span(start, l.here())}, nil

	case isASCIIDigit(r) || r == '.':
		return l.scanNumberOrDot(start)

	case strings.ContainsRune(delimiters, r):
		l.advanceOne()
		return token.Token{Kind: token.Punct, Value: string(r), Spacing: token.Alone, Span: span(start, l.here())}, nil

	case strings.ContainsRune(punctChars, r):
		l.advanceOne()
		spacing := token.Alone
		if next, ok := l.peek(); ok && isPunctJoinMember(next) {
			spacing = token.Joint
		}
		return token.Token{Kind: token.Punct, Value: string(r), Spacing: spacing, Span: span(start, l.here())}, nil

	default:
		return token.Token{}, errorf(start, "Unexpected character %q", r)
	}
}

// scanQuoted consumes up to (and including) the matching close rune,
// returning the unescaped content. When escape is true, a doubled close
// rune inside the content is treated as one literal occurrence of it
// (standard SQL quote-doubling); SQLite's bracket identifier form passes
// escape=false, since "[...]" has no escape convention.
func (l *lexer) scanQuoted(closeCh rune, start token.Location, escape bool) (string, error) {
	var b strings.Builder
	for {
		r, ok := l.peek()
		if !ok {
			return "", errorf(start, "Unterminated literal")
		}
		if r == closeCh {
			l.advanceOne()
			if escape {
				if nr, ok2 := l.peek(); ok2 && nr == closeCh {
					l.advanceOne()
					b.WriteRune(closeCh)
					continue
				}
			}
			return b.String(), nil
		}
		b.WriteString(l.advanceOne())
	}
}

func (l *lexer) scanIdentifier() string {
	var b strings.Builder
	b.WriteString(l.advanceOne())
	for {
		c, ok := l.peek()
		if !ok || !l.dialect.Lexer.IdentifierPart(c) {
			break
		}
		b.WriteString(l.advanceOne())
	}
	return b.String()
}

func (l *lexer) scanNumberOrDot(start token.Location) (token.Token, error) {
	var b strings.Builder
	for {
		c, ok := l.peek()
		if !ok || !isASCIIDigit(c) {
			break
		}
		b.WriteString(l.advanceOne())
	}
	if c, ok := l.peek(); ok && c == '.' {
		b.WriteString(l.advanceOne())
		for {
			c2, ok2 := l.peek()
			if !ok2 || !isASCIIDigit(c2) {
				break
			}
			b.WriteString(l.advanceOne())
		}
	}
	text := b.String()
	if text == "." {
		spacing := token.Alone
		if next, ok := l.peek(); ok && isPunctJoinMember(next) {
			spacing = token.Joint
		}
		return token.Token{Kind: token.Punct, Value: ".", Spacing: spacing, Span: span(start, l.here())}, nil
	}
	return token.Token{Kind: token.Number, Value: text, Span: span(start, l.here())}, nil
}

func span(start, end token.Location) token.Span {
	return token.Span{Start: start, End: end}
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func isPunctJoinMember(r rune) bool {
	return strings.ContainsRune(punctChars, r) || r == '.'
}

func isNBXPrefix(r rune) bool {
	switch r {
	case 'N', 'n', 'B', 'b', 'X', 'x':
		return true
	default:
		return false
	}
}

func kindForPrefix(r rune) token.Kind {
	switch r {
	case 'N', 'n':
		return token.NationalString
	case 'B', 'b':
		return token.BitString
	default:
		return token.HexString
	}
}
