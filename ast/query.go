package ast

// SetQuantifier is the ALL|DISTINCT modifier on SELECT and set operations.
type SetQuantifier string

const (
	QuantifierNone     SetQuantifier = ""
	QuantifierAll      SetQuantifier = "ALL"
	QuantifierDistinct SetQuantifier = "DISTINCT"
)

// CTE is one named common table expression: name [(cols)] AS (query).
type CTE struct {
	Name    *Ident
	Columns []*Ident
	Query   *Query
}

// With is the optional WITH [RECURSIVE] prefix of a query.
type With struct {
	Recursive bool
	CTEs      []CTE
}

// OrderByItem is <expr> [ASC|DESC] [NULLS FIRST|LAST].
type OrderByItem struct {
	Expr       Expr
	Desc       bool
	HasDir     bool
	NullsFirst bool
	HasNulls   bool
}

func (o OrderByItem) Render(b *Builder) {
	o.Expr.Render(b)
	if o.HasDir {
		if o.Desc {
			b.WriteToken("DESC")
		} else {
			b.WriteToken("ASC")
		}
	}
	if o.HasNulls {
		if o.NullsFirst {
			b.WriteToken("NULLS FIRST")
		} else {
			b.WriteToken("NULLS LAST")
		}
	}
}

// FetchDirection selects FIRST or NEXT for a FETCH clause.
type FetchDirection string

const (
	FetchFirst FetchDirection = "FIRST"
	FetchNext  FetchDirection = "NEXT"
)

// Fetch is FETCH {FIRST|NEXT} <n> [PERCENT] {ROW|ROWS} {ONLY|WITH TIES}.
type Fetch struct {
	Direction  FetchDirection
	Count      Expr // nil if omitted (semantically defaults to 1)
	Percent    bool
	WithTies   bool
	RowsPlural bool
}

// Offset is OFFSET <n> [ROW|ROWS].
type Offset struct {
	Count      Expr
	HasRowWord bool
	RowsPlural bool
}

// Limit is LIMIT <n> | LIMIT ALL.
type Limit struct {
	All   bool
	Count Expr // nil if All
}

// Query is the top-level <query> production: optional WITH, a query
// body, optional ORDER BY, and at most one of LIMIT/FETCH plus an
// independent optional OFFSET.
type Query struct {
	With    *With
	Body    QueryBody
	OrderBy []OrderByItem
	Offset  *Offset
	Limit   *Limit
	Fetch   *Fetch
}

func (n *Query) Render(b *Builder) {
	if n.With != nil {
		b.WriteToken("WITH")
		if n.With.Recursive {
			b.WriteToken("RECURSIVE")
		}
		for i, c := range n.With.CTEs {
			if i > 0 {
				b.WriteRaw(",")
			}
			c.Name.Render(b)
			if len(c.Columns) > 0 {
				b.WriteRaw(" (")
				for j, col := range c.Columns {
					if j > 0 {
						b.WriteRaw(", ")
					}
					col.Render(b)
				}
				b.WriteRaw(")")
			}
			b.WriteToken("AS")
			b.WriteToken("(")
			c.Query.Render(b)
			b.WriteRaw(")")
		}
	}
	n.Body.Render(b)
	if len(n.OrderBy) > 0 {
		b.WriteToken("ORDER BY")
		for i, o := range n.OrderBy {
			if i > 0 {
				b.WriteRaw(",")
			}
			o.Render(b)
		}
	}
	if n.Offset != nil {
		b.WriteToken("OFFSET")
		n.Offset.Count.Render(b)
		if n.Offset.HasRowWord {
			if n.Offset.RowsPlural {
				b.WriteToken("ROWS")
			} else {
				b.WriteToken("ROW")
			}
		}
	}
	if n.Limit != nil {
		b.WriteToken("LIMIT")
		if n.Limit.All {
			b.WriteToken("ALL")
		} else {
			n.Limit.Count.Render(b)
		}
	}
	if n.Fetch != nil {
		b.WriteToken("FETCH")
		b.WriteToken(string(n.Fetch.Direction))
		if n.Fetch.Count != nil {
			n.Fetch.Count.Render(b)
		}
		if n.Fetch.Percent {
			b.WriteToken("PERCENT")
		}
		if n.Fetch.RowsPlural {
			b.WriteToken("ROWS")
		} else {
			b.WriteToken("ROW")
		}
		if n.Fetch.WithTies {
			b.WriteToken("WITH TIES")
		} else {
			b.WriteToken("ONLY")
		}
	}
}

// QueryBody is the set-operation tree beneath a Query: a QuerySpec,
// parenthesized subquery, table-value constructor, explicit table, or a
// set operation over two bodies.
type QueryBody interface {
	Node
	queryBodyNode()
}

// SelectItem is one projection: wildcard, qualified wildcard, or
// <expr> [AS alias].
type SelectItem struct {
	Expr  Expr // never nil; a Wildcard/QualifiedWildcard is itself the Expr
	Alias *Ident
}

func (s SelectItem) Render(b *Builder) {
	s.Expr.Render(b)
	if s.Alias != nil {
		b.WriteToken("AS")
		s.Alias.Render(b)
	}
}

// GroupingKind distinguishes the GROUP BY element shapes.
type GroupingKind uint8

const (
	GroupingEmpty GroupingKind = iota
	GroupingColumns
	GroupingRollup
	GroupingCube
	GroupingSets
)

// GroupingElement is one element of a GROUP BY list.
type GroupingElement struct {
	Kind    GroupingKind
	Columns []Expr            // GroupingColumns, GroupingRollup, GroupingCube
	Sets    []GroupingElement // GroupingSets
}

func (g GroupingElement) Render(b *Builder) {
	switch g.Kind {
	case GroupingEmpty:
		b.WriteToken("(")
		b.WriteRaw(")")
	case GroupingColumns:
		if len(g.Columns) == 1 {
			g.Columns[0].Render(b)
			return
		}
		b.WriteToken("(")
		for i, c := range g.Columns {
			if i > 0 {
				b.WriteRaw(", ")
			}
			c.Render(b)
		}
		b.WriteRaw(")")
	case GroupingRollup, GroupingCube:
		if g.Kind == GroupingRollup {
			b.WriteToken("ROLLUP")
		} else {
			b.WriteToken("CUBE")
		}
		b.WriteRaw(" (")
		for i, c := range g.Columns {
			if i > 0 {
				b.WriteRaw(", ")
			}
			c.Render(b)
		}
		b.WriteRaw(")")
	case GroupingSets:
		b.WriteToken("GROUPING SETS")
		b.WriteRaw(" (")
		for i, s := range g.Sets {
			if i > 0 {
				b.WriteRaw(", ")
			}
			s.Render(b)
		}
		b.WriteRaw(")")
	}
}

// GroupBy is the optional GROUP BY clause.
type GroupBy struct {
	Quantifier SetQuantifier
	Elements   []GroupingElement
}

// WindowFrameUnit is ROWS|RANGE|GROUPS.
type WindowFrameUnit string

const (
	FrameRows   WindowFrameUnit = "ROWS"
	FrameRange  WindowFrameUnit = "RANGE"
	FrameGroups WindowFrameUnit = "GROUPS"
)

// FrameBoundKind enumerates the window frame bound shapes.
type FrameBoundKind uint8

const (
	BoundCurrentRow FrameBoundKind = iota
	BoundUnboundedPreceding
	BoundUnboundedFollowing
	BoundPreceding
	BoundFollowing
)

// FrameBound is one endpoint of a window frame.
type FrameBound struct {
	Kind   FrameBoundKind
	Offset Expr // set only for BoundPreceding/BoundFollowing
}

func (fb FrameBound) Render(b *Builder) {
	switch fb.Kind {
	case BoundCurrentRow:
		b.WriteToken("CURRENT ROW")
	case BoundUnboundedPreceding:
		b.WriteToken("UNBOUNDED PRECEDING")
	case BoundUnboundedFollowing:
		b.WriteToken("UNBOUNDED FOLLOWING")
	case BoundPreceding:
		fb.Offset.Render(b)
		b.WriteToken("PRECEDING")
	case BoundFollowing:
		fb.Offset.Render(b)
		b.WriteToken("FOLLOWING")
	}
}

// FrameExclude is the optional EXCLUDE clause of a window frame.
type FrameExclude string

const (
	ExcludeNone       FrameExclude = ""
	ExcludeCurrentRow FrameExclude = "CURRENT ROW"
	ExcludeGroup      FrameExclude = "GROUP"
	ExcludeTies       FrameExclude = "TIES"
	ExcludeNoOthers   FrameExclude = "NO OTHERS"
)

// WindowFrame is the {ROWS|RANGE|GROUPS} subclause of a window spec. Per
// spec invariant: if EndBound is absent, render is "units start_bound";
// otherwise "units BETWEEN start AND end".
type WindowFrame struct {
	Unit    WindowFrameUnit
	Start   FrameBound
	End     *FrameBound
	Exclude FrameExclude
}

func (f WindowFrame) Render(b *Builder) {
	b.WriteToken(string(f.Unit))
	if f.End == nil {
		f.Start.Render(b)
	} else {
		b.WriteToken("BETWEEN")
		f.Start.Render(b)
		b.WriteToken("AND")
		f.End.Render(b)
	}
	if f.Exclude != ExcludeNone {
		b.WriteToken("EXCLUDE")
		b.WriteToken(string(f.Exclude))
	}
}

// WindowSpec is [PARTITION BY ...] [ORDER BY ...] [<frame>], optionally
// named (for a WINDOW clause entry) or referencing a named window.
type WindowSpec struct {
	Name        string // "" for an inline OVER(...) spec
	RefName     string // "" unless this spec extends a named window
	PartitionBy []Expr
	OrderBy     []OrderByItem
	Frame       *WindowFrame
}

func (w *WindowSpec) Render(b *Builder) {
	b.WriteRaw("(")
	wrote := false
	if w.RefName != "" {
		b.WriteRaw(w.RefName)
		wrote = true
	}
	if len(w.PartitionBy) > 0 {
		b.WriteToken("PARTITION BY")
		for i, e := range w.PartitionBy {
			if i > 0 {
				b.WriteRaw(",")
			}
			e.Render(b)
		}
		wrote = true
	}
	if len(w.OrderBy) > 0 {
		b.WriteToken("ORDER BY")
		for i, o := range w.OrderBy {
			if i > 0 {
				b.WriteRaw(",")
			}
			o.Render(b)
		}
		wrote = true
	}
	if w.Frame != nil {
		w.Frame.Render(b)
		wrote = true
	}
	_ = wrote
	b.WriteRaw(")")
}

// NamedWindow is one entry of a WINDOW clause: name AS (spec).
type NamedWindow struct {
	Name string
	Spec *WindowSpec
}

// QuerySpec is SELECT [ALL|DISTINCT] <items> FROM <refs> [WHERE ...]
// [GROUP BY ...] [HAVING ...] [WINDOW ...].
type QuerySpec struct {
	Quantifier SetQuantifier
	Items      []SelectItem
	From       []TableRefWithJoins
	Where      Expr
	GroupBy    *GroupBy
	Having     Expr
	Windows    []NamedWindow
}

func (n *QuerySpec) queryBodyNode() {}

func (n *QuerySpec) Render(b *Builder) {
	b.WriteToken("SELECT")
	if n.Quantifier != QuantifierNone {
		b.WriteToken(string(n.Quantifier))
	}
	for i, item := range n.Items {
		if i > 0 {
			b.WriteRaw(",")
		}
		item.Render(b)
	}
	if len(n.From) > 0 {
		b.WriteToken("FROM")
		for i, t := range n.From {
			if i > 0 {
				b.WriteRaw(",")
			}
			t.Render(b)
		}
	}
	if n.Where != nil {
		b.WriteToken("WHERE")
		n.Where.Render(b)
	}
	if n.GroupBy != nil {
		b.WriteToken("GROUP BY")
		if n.GroupBy.Quantifier != QuantifierNone {
			b.WriteToken(string(n.GroupBy.Quantifier))
		}
		for i, g := range n.GroupBy.Elements {
			if i > 0 {
				b.WriteRaw(",")
			}
			g.Render(b)
		}
	}
	if n.Having != nil {
		b.WriteToken("HAVING")
		n.Having.Render(b)
	}
	if len(n.Windows) > 0 {
		b.WriteToken("WINDOW")
		for i, w := range n.Windows {
			if i > 0 {
				b.WriteRaw(",")
			}
			b.WriteToken(w.Name)
			b.WriteToken("AS")
			w.Spec.Render(b)
		}
	}
}

// ParenQuery is a parenthesized query used as a query body, e.g. one side
// of a set operation: (SELECT ...).
type ParenQuery struct{ Query *Query }

func (n *ParenQuery) queryBodyNode() {}
func (n *ParenQuery) Render(b *Builder) {
	b.WriteToken("(")
	n.Query.Render(b)
	b.WriteRaw(")")
}

// Values is a VALUES table-value constructor; each element of Rows is one row.
type Values struct{ Rows [][]Expr }

func (n *Values) queryBodyNode() {}
func (n *Values) Render(b *Builder) {
	b.WriteToken("VALUES")
	for i, row := range n.Rows {
		if i > 0 {
			b.WriteRaw(",")
		}
		b.WriteToken("(")
		for j, e := range row {
			if j > 0 {
				b.WriteRaw(", ")
			}
			e.Render(b)
		}
		b.WriteRaw(")")
	}
}

// ExplicitTable is TABLE <name>.
type ExplicitTable struct{ Name *CompoundIdent }

func (n *ExplicitTable) queryBodyNode() {}
func (n *ExplicitTable) Render(b *Builder) {
	b.WriteToken("TABLE")
	n.Name.Render(b)
}

// SetOp enumerates UNION/INTERSECT/EXCEPT.
type SetOp string

const (
	SetOpUnion     SetOp = "UNION"
	SetOpIntersect SetOp = "INTERSECT"
	SetOpExcept    SetOp = "EXCEPT"
)

// SetOperation is left OP [ALL|DISTINCT] right.
type SetOperation struct {
	Op          SetOp
	Quantifier  SetQuantifier
	Left, Right QueryBody
}

func (n *SetOperation) queryBodyNode() {}
func (n *SetOperation) Render(b *Builder) {
	n.Left.Render(b)
	b.WriteToken(string(n.Op))
	if n.Quantifier != QuantifierNone {
		b.WriteToken(string(n.Quantifier))
	}
	n.Right.Render(b)
}
