package ast

// TableFactor is a single table reference before any joins are applied:
// a named table, a derived table (subquery), or a parenthesized nested
// join.
type TableFactor interface {
	Node
	tableFactorNode()
}

// NamedTable is a table name with an optional alias and optional column
// aliases.
type NamedTable struct {
	Name    *CompoundIdent
	Alias   *Ident
	Columns []*Ident
}

func (n *NamedTable) tableFactorNode() {}
func (n *NamedTable) Render(b *Builder) {
	n.Name.Render(b)
	renderAlias(b, n.Alias, n.Columns)
}

// DerivedTable is [LATERAL] (<query>) with an alias.
type DerivedTable struct {
	Lateral bool
	Query   *Query
	Alias   *Ident
	Columns []*Ident
}

func (n *DerivedTable) tableFactorNode() {}
func (n *DerivedTable) Render(b *Builder) {
	if n.Lateral {
		b.WriteToken("LATERAL")
	}
	b.WriteToken("(")
	n.Query.Render(b)
	b.WriteRaw(")")
	renderAlias(b, n.Alias, n.Columns)
}

// NestedJoin is a parenthesized join tree used as a table factor.
type NestedJoin struct{ TableRefWithJoins *TableRefWithJoins }

func (n *NestedJoin) tableFactorNode() {}
func (n *NestedJoin) Render(b *Builder) {
	b.WriteToken("(")
	n.TableRefWithJoins.Render(b)
	b.WriteRaw(")")
}

func renderAlias(b *Builder, alias *Ident, cols []*Ident) {
	if alias == nil {
		return
	}
	b.WriteToken("AS")
	alias.Render(b)
	if len(cols) > 0 {
		b.WriteRaw(" (")
		for i, c := range cols {
			if i > 0 {
				b.WriteRaw(", ")
			}
			c.Render(b)
		}
		b.WriteRaw(")")
	}
}

// JoinKind enumerates the join operators.
type JoinKind uint8

const (
	JoinInner JoinKind = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
)

// JoinConstraintKind distinguishes ON from USING, or no constraint at all
// (CROSS JOIN, NATURAL joins).
type JoinConstraintKind uint8

const (
	ConstraintNone JoinConstraintKind = iota
	ConstraintOn
	ConstraintUsing
)

// JoinConstraint is the ON <expr> or USING (<cols>) trailer of a join.
type JoinConstraint struct {
	Kind  JoinConstraintKind
	On    Expr
	Using []*Ident
}

// Join is one join applied to a running table reference.
type Join struct {
	Natural    bool
	Kind       JoinKind
	Outer      bool // explicit OUTER keyword present (LEFT OUTER vs LEFT)
	Factor     TableFactor
	Constraint JoinConstraint
}

func (j Join) Render(b *Builder) {
	if j.Natural {
		b.WriteToken("NATURAL")
	}
	switch j.Kind {
	case JoinCross:
		b.WriteToken("CROSS JOIN")
	case JoinInner:
		b.WriteToken("JOIN")
	case JoinLeft:
		b.WriteToken("LEFT")
		if j.Outer {
			b.WriteToken("OUTER")
		}
		b.WriteToken("JOIN")
	case JoinRight:
		b.WriteToken("RIGHT")
		if j.Outer {
			b.WriteToken("OUTER")
		}
		b.WriteToken("JOIN")
	case JoinFull:
		b.WriteToken("FULL")
		if j.Outer {
			b.WriteToken("OUTER")
		}
		b.WriteToken("JOIN")
	}
	j.Factor.Render(b)
	switch j.Constraint.Kind {
	case ConstraintOn:
		b.WriteToken("ON")
		j.Constraint.On.Render(b)
	case ConstraintUsing:
		b.WriteToken("USING")
		b.WriteRaw(" (")
		for i, c := range j.Constraint.Using {
			if i > 0 {
				b.WriteRaw(", ")
			}
			c.Render(b)
		}
		b.WriteRaw(")")
	}
}

// TableRefWithJoins is a table factor followed by zero or more joins,
// consumed left-associatively.
type TableRefWithJoins struct {
	Factor TableFactor
	Joins  []Join
}

func (t TableRefWithJoins) Render(b *Builder) {
	t.Factor.Render(b)
	for _, j := range t.Joins {
		j.Render(b)
	}
}
