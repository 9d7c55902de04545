package ast

import (
	"strconv"
	"strings"
)

// escapeString doubles single quotes per the canonical string-literal
// escaping rule.
func escapeString(s string) string {
	if !strings.ContainsRune(s, '\'') {
		return s
	}
	return strings.ReplaceAll(s, "'", "''")
}

func (n *Ident) Render(b *Builder) {
	if n.Quote != 0 {
		b.WriteToken(string(n.Quote) + n.Name + string(closeQuote(n.Quote)))
		return
	}
	b.WriteToken(n.Name)
}

func closeQuote(open rune) rune {
	if open == '[' {
		return ']'
	}
	return open
}

func (n *CompoundIdent) Render(b *Builder) {
	for i, p := range n.Parts {
		if i == 0 {
			p.Render(b)
			continue
		}
		b.WriteRaw(".")
		var sub Builder
		p.Render(&sub)
		b.WriteRaw(sub.String())
	}
}

func (n *Wildcard) Render(b *Builder) { b.WriteToken("*") }

func (n *QualifiedWildcard) Render(b *Builder) {
	for i, p := range n.Qualifier {
		if i == 0 {
			p.Render(b)
		} else {
			b.WriteRaw(".")
			var sub Builder
			p.Render(&sub)
			b.WriteRaw(sub.String())
		}
	}
	b.WriteRaw(".*")
}

func (n *Literal) Render(b *Builder) {
	switch n.Kind {
	case LitNumber:
		b.WriteToken(n.Value)
	case LitString:
		b.WriteToken("'" + escapeString(n.Value) + "'")
	case LitNationalString:
		b.WriteToken("N'" + escapeString(n.Value) + "'")
	case LitHexString:
		b.WriteToken("X'" + n.Value + "'")
	case LitBitString:
		b.WriteToken("B'" + n.Value + "'")
	case LitNull:
		b.WriteToken("NULL")
	case LitBoolean:
		b.WriteToken(strings.ToUpper(n.Value))
	}
}

func (n *TypedString) Render(b *Builder) {
	n.Type.Render(b)
	b.WriteToken("'" + escapeString(n.Value) + "'")
}

func (n *Interval) Render(b *Builder) {
	b.WriteToken("INTERVAL")
	b.WriteToken("'" + escapeString(n.Value) + "'")
	if n.Leading != "" {
		b.WriteToken(string(n.Leading))
		if !n.HasTrailing && n.HasFractionalSecondsPrec {
			b.WriteRaw("(" + strconv.Itoa(n.FractionalSecondsPrec) + ")")
		}
	}
	if n.HasTrailing {
		b.WriteToken("TO")
		b.WriteToken(string(n.Trailing))
		if n.HasFractionalSecondsPrec {
			b.WriteRaw("(")
			b.WriteRaw(strconv.Itoa(n.FractionalSecondsPrec))
			b.WriteRaw(")")
		}
	}
}

func (n *Nested) Render(b *Builder) {
	b.WriteToken("(")
	n.Expr.Render(b)
	b.WriteRaw(")")
}

func (n *Subquery) Render(b *Builder) {
	b.WriteToken("(")
	n.Query.Render(b)
	b.WriteRaw(")")
}

func (n *Exists) Render(b *Builder) {
	b.WriteToken("EXISTS")
	b.WriteToken("(")
	n.Query.Render(b)
	b.WriteRaw(")")
}

func (n *IsNull) Render(b *Builder) {
	n.Expr.Render(b)
	b.WriteToken("IS")
	if n.Negate {
		b.WriteToken("NOT")
	}
	b.WriteToken("NULL")
}

func (n *IsDistinctFrom) Render(b *Builder) {
	n.Left.Render(b)
	b.WriteToken("IS")
	if n.Negate {
		b.WriteToken("NOT")
	}
	b.WriteToken("DISTINCT FROM")
	n.Right.Render(b)
}

func (n *UnaryOp) Render(b *Builder) {
	b.WriteToken(n.Op)
	n.Operand.Render(b)
}

func (n *BinaryOp) Render(b *Builder) {
	n.Left.Render(b)
	b.WriteToken(n.Op)
	n.Right.Render(b)
}

func (n *InList) Render(b *Builder) {
	n.Expr.Render(b)
	if n.Negate {
		b.WriteToken("NOT")
	}
	b.WriteToken("IN")
	b.WriteToken("(")
	for i, e := range n.List {
		if i > 0 {
			b.WriteRaw(", ")
		}
		e.Render(b)
	}
	b.WriteRaw(")")
}

func (n *InSubquery) Render(b *Builder) {
	n.Expr.Render(b)
	if n.Negate {
		b.WriteToken("NOT")
	}
	b.WriteToken("IN")
	b.WriteToken("(")
	n.Query.Render(b)
	b.WriteRaw(")")
}

func (n *Between) Render(b *Builder) {
	n.Expr.Render(b)
	if n.Negate {
		b.WriteToken("NOT")
	}
	b.WriteToken("BETWEEN")
	n.Low.Render(b)
	b.WriteToken("AND")
	n.High.Render(b)
}

func (n *Case) Render(b *Builder) {
	b.WriteToken("CASE")
	if n.Operand != nil {
		n.Operand.Render(b)
	}
	for _, w := range n.Whens {
		b.WriteToken("WHEN")
		w.Cond.Render(b)
		b.WriteToken("THEN")
		w.Result.Render(b)
	}
	if n.Else != nil {
		b.WriteToken("ELSE")
		n.Else.Render(b)
	}
	b.WriteToken("END")
}

func (n *Collate) Render(b *Builder) {
	n.Expr.Render(b)
	b.WriteToken("COLLATE")
	b.WriteToken(n.Name)
}

func (n *Index) Render(b *Builder) {
	n.Expr.Render(b)
	b.WriteRaw("[")
	n.Index.Render(b)
	b.WriteRaw("]")
}

func (n *Cast) Render(b *Builder) {
	if n.Try {
		b.WriteToken("TRY_CAST")
	} else {
		b.WriteToken("CAST")
	}
	b.WriteToken("(")
	n.Expr.Render(b)
	b.WriteToken("AS")
	n.Type.Render(b)
	b.WriteRaw(")")
}

func (n *Extract) Render(b *Builder) {
	b.WriteToken("EXTRACT")
	b.WriteToken("(")
	b.WriteToken(n.Field)
	b.WriteToken("FROM")
	n.Expr.Render(b)
	b.WriteRaw(")")
}

func (n *Substring) Render(b *Builder) {
	b.WriteToken("SUBSTRING")
	b.WriteToken("(")
	n.Expr.Render(b)
	if n.From != nil {
		b.WriteToken("FROM")
		n.From.Render(b)
	}
	if n.For != nil {
		b.WriteToken("FOR")
		n.For.Render(b)
	}
	b.WriteRaw(")")
}

func (n *Trim) Render(b *Builder) {
	b.WriteToken("TRIM")
	b.WriteToken("(")
	if n.Side != "" || n.What != nil {
		if n.Side != "" {
			b.WriteToken(string(n.Side))
		}
		if n.What != nil {
			n.What.Render(b)
		}
		b.WriteToken("FROM")
	}
	n.Expr.Render(b)
	b.WriteRaw(")")
}

func (n *ListAgg) Render(b *Builder) {
	b.WriteToken("LISTAGG")
	b.WriteToken("(")
	n.Expr.Render(b)
	if n.Separator != nil {
		b.WriteRaw(", ")
		n.Separator.Render(b)
	}
	b.WriteRaw(")")
	if len(n.OrderBy) > 0 {
		b.WriteToken("WITHIN GROUP")
		b.WriteToken("(")
		b.WriteToken("ORDER BY")
		for i, o := range n.OrderBy {
			if i > 0 {
				b.WriteRaw(",")
			}
			o.Render(b)
		}
		b.WriteRaw(")")
	}
}

func (n *FunctionCall) Render(b *Builder) {
	n.Name.Render(b)
	b.WriteRaw("(")
	if n.Distinct {
		b.WriteRaw("DISTINCT ")
	}
	for i, a := range n.Args {
		if i > 0 {
			b.WriteRaw(", ")
		}
		if a.Name != "" {
			b.WriteRaw(a.Name + " => ")
		}
		a.Expr.Render(b)
	}
	b.WriteRaw(")")
	if n.Over != nil {
		b.WriteToken("OVER")
		n.Over.Render(b)
	}
}
