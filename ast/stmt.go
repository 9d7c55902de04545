package ast

// SelectStatement wraps a Query as a top-level statement.
type SelectStatement struct{ Query *Query }

func (n *SelectStatement) stmtNode()         {}
func (n *SelectStatement) Render(b *Builder) { n.Query.Render(b) }

// Assignment is col = expr, used by UPDATE's SET list and upsert clauses.
type Assignment struct {
	Column *Ident
	Value  Expr
}

func (a Assignment) Render(b *Builder) {
	a.Column.Render(b)
	b.WriteToken("=")
	a.Value.Render(b)
}

// OverridingKind is the optional OVERRIDING {SYSTEM|USER} VALUE clause of
// an INSERT column list.
type OverridingKind string

const (
	OverridingNone   OverridingKind = ""
	OverridingSystem OverridingKind = "SYSTEM"
	OverridingUser   OverridingKind = "USER"
)

// OnConflictAction is DO NOTHING or DO UPDATE SET ... for ON CONFLICT.
type OnConflictAction struct {
	DoNothing bool
	Updates   []Assignment // set when !DoNothing
}

// OnConflict is PostgreSQL/SQLite's ON CONFLICT [(cols)] DO {...}.
type OnConflict struct {
	Columns []*Ident
	Action  OnConflictAction
}

// InsertStatement is INSERT INTO; its source is an explicit row-values
// list, a query, or DEFAULT VALUES.
type InsertStatement struct {
	Table          *CompoundIdent
	Columns        []*Ident
	DefaultValues  bool
	Overriding     OverridingKind
	Rows           [][]Expr     // VALUES rows; nil when Query is set
	Query          *Query       // INSERT ... SELECT; nil when Rows is set
	OnConflict     *OnConflict  // PostgreSQL/SQLite
	OnDuplicateKey []Assignment // MySQL
}

func (n *InsertStatement) stmtNode() {}
func (n *InsertStatement) Render(b *Builder) {
	b.WriteToken("INSERT INTO")
	n.Table.Render(b)
	if len(n.Columns) > 0 {
		b.WriteRaw(" (")
		for i, c := range n.Columns {
			if i > 0 {
				b.WriteRaw(", ")
			}
			c.Render(b)
		}
		b.WriteRaw(")")
	}
	if n.Overriding != OverridingNone {
		b.WriteToken("OVERRIDING")
		b.WriteToken(string(n.Overriding))
		b.WriteToken("VALUE")
	}
	switch {
	case n.DefaultValues:
		b.WriteToken("DEFAULT VALUES")
	case n.Query != nil:
		n.Query.Render(b)
	default:
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
	if n.OnConflict != nil {
		b.WriteToken("ON CONFLICT")
		if len(n.OnConflict.Columns) > 0 {
			b.WriteRaw(" (")
			for i, c := range n.OnConflict.Columns {
				if i > 0 {
					b.WriteRaw(", ")
				}
				c.Render(b)
			}
			b.WriteRaw(")")
		}
		if n.OnConflict.Action.DoNothing {
			b.WriteToken("DO NOTHING")
		} else {
			b.WriteToken("DO UPDATE SET")
			for i, a := range n.OnConflict.Action.Updates {
				if i > 0 {
					b.WriteRaw(",")
				}
				a.Render(b)
			}
		}
	}
	if len(n.OnDuplicateKey) > 0 {
		b.WriteToken("ON DUPLICATE KEY UPDATE")
		for i, a := range n.OnDuplicateKey {
			if i > 0 {
				b.WriteRaw(",")
			}
			a.Render(b)
		}
	}
}

// DeleteStatement is DELETE FROM <name> [AS alias] [WHERE ...].
type DeleteStatement struct {
	Table *CompoundIdent
	Alias *Ident
	Where Expr
}

func (n *DeleteStatement) stmtNode() {}
func (n *DeleteStatement) Render(b *Builder) {
	b.WriteToken("DELETE FROM")
	n.Table.Render(b)
	if n.Alias != nil {
		b.WriteToken("AS")
		n.Alias.Render(b)
	}
	if n.Where != nil {
		b.WriteToken("WHERE")
		n.Where.Render(b)
	}
}

// UpdateStatement is UPDATE <name> [AS alias] SET ... [WHERE ...].
type UpdateStatement struct {
	Table *CompoundIdent
	Alias *Ident
	Set   []Assignment
	Where Expr
}

func (n *UpdateStatement) stmtNode() {}
func (n *UpdateStatement) Render(b *Builder) {
	b.WriteToken("UPDATE")
	n.Table.Render(b)
	if n.Alias != nil {
		b.WriteToken("AS")
		n.Alias.Render(b)
	}
	b.WriteToken("SET")
	for i, a := range n.Set {
		if i > 0 {
			b.WriteRaw(",")
		}
		a.Render(b)
	}
	if n.Where != nil {
		b.WriteToken("WHERE")
		n.Where.Render(b)
	}
}

// TxIsolationLevel enumerates transaction isolation levels.
type TxIsolationLevel string

const (
	IsolationNone            TxIsolationLevel = ""
	IsolationReadUncommitted TxIsolationLevel = "READ UNCOMMITTED"
	IsolationReadCommitted   TxIsolationLevel = "READ COMMITTED"
	IsolationRepeatableRead  TxIsolationLevel = "REPEATABLE READ"
	IsolationSerializable    TxIsolationLevel = "SERIALIZABLE"
)

// TxAccessMode is READ ONLY or READ WRITE.
type TxAccessMode string

const (
	AccessModeNone      TxAccessMode = ""
	AccessModeReadOnly  TxAccessMode = "READ ONLY"
	AccessModeReadWrite TxAccessMode = "READ WRITE"
)

// TxCharacteristics is the ISOLATION LEVEL / access-mode clause shared by
// START TRANSACTION and SET TRANSACTION.
type TxCharacteristics struct {
	Isolation  TxIsolationLevel
	AccessMode TxAccessMode
}

func (c TxCharacteristics) render(b *Builder) {
	if c.Isolation != IsolationNone {
		b.WriteToken("ISOLATION LEVEL")
		b.WriteToken(string(c.Isolation))
	}
	if c.AccessMode != AccessModeNone {
		b.WriteToken(string(c.AccessMode))
	}
}

// StartTransactionStatement is START TRANSACTION|BEGIN [WORK|TRANSACTION]
// with optional characteristics.
type StartTransactionStatement struct {
	Begin           bool // true if spelled BEGIN
	Characteristics *TxCharacteristics
}

func (n *StartTransactionStatement) stmtNode() {}
func (n *StartTransactionStatement) Render(b *Builder) {
	if n.Begin {
		b.WriteToken("BEGIN")
	} else {
		b.WriteToken("START TRANSACTION")
	}
	if n.Characteristics != nil {
		n.Characteristics.render(b)
	}
}

// SetTransactionStatement is SET [LOCAL|GLOBAL|SESSION] TRANSACTION
// <characteristics>; characteristics are required here.
type SetTransactionStatement struct {
	Scope           string // "", "LOCAL", "GLOBAL", "SESSION"
	Characteristics TxCharacteristics
}

func (n *SetTransactionStatement) stmtNode() {}
func (n *SetTransactionStatement) Render(b *Builder) {
	b.WriteToken("SET")
	if n.Scope != "" {
		b.WriteToken(n.Scope)
	}
	b.WriteToken("TRANSACTION")
	n.Characteristics.render(b)
}

// CommitStatement is COMMIT [WORK|TRANSACTION] [AND [NO] CHAIN].
type CommitStatement struct {
	HasChain bool
	NoChain  bool
}

func (n *CommitStatement) stmtNode() {}
func (n *CommitStatement) Render(b *Builder) {
	b.WriteToken("COMMIT")
	renderChain(b, n.HasChain, n.NoChain)
}

// RollbackStatement is ROLLBACK [WORK|TRANSACTION] [AND [NO] CHAIN], or
// ROLLBACK TO SAVEPOINT <name>.
type RollbackStatement struct {
	ToSavepoint *Ident
	HasChain    bool
	NoChain     bool
}

func (n *RollbackStatement) stmtNode() {}
func (n *RollbackStatement) Render(b *Builder) {
	b.WriteToken("ROLLBACK")
	if n.ToSavepoint != nil {
		b.WriteToken("TO SAVEPOINT")
		n.ToSavepoint.Render(b)
		return
	}
	renderChain(b, n.HasChain, n.NoChain)
}

func renderChain(b *Builder, has, no bool) {
	if !has {
		return
	}
	b.WriteToken("AND")
	if no {
		b.WriteToken("NO")
	}
	b.WriteToken("CHAIN")
}

// SavepointStatement is SAVEPOINT <name>.
type SavepointStatement struct{ Name *Ident }

func (n *SavepointStatement) stmtNode() {}
func (n *SavepointStatement) Render(b *Builder) {
	b.WriteToken("SAVEPOINT")
	n.Name.Render(b)
}

// ReleaseSavepointStatement is RELEASE SAVEPOINT <name>.
type ReleaseSavepointStatement struct{ Name *Ident }

func (n *ReleaseSavepointStatement) stmtNode() {}
func (n *ReleaseSavepointStatement) Render(b *Builder) {
	b.WriteToken("RELEASE SAVEPOINT")
	n.Name.Render(b)
}

// ExplainStatement wraps any parseable statement.
type ExplainStatement struct{ Stmt Statement }

func (n *ExplainStatement) stmtNode() {}
func (n *ExplainStatement) Render(b *Builder) {
	b.WriteToken("EXPLAIN")
	n.Stmt.Render(b)
}

// CallStatement is CALL <name>(<args>).
type CallStatement struct {
	Name *CompoundIdent
	Args []Expr
}

func (n *CallStatement) stmtNode() {}
func (n *CallStatement) Render(b *Builder) {
	b.WriteToken("CALL")
	n.Name.Render(b)
	b.WriteRaw("(")
	for i, a := range n.Args {
		if i > 0 {
			b.WriteRaw(", ")
		}
		a.Render(b)
	}
	b.WriteRaw(")")
}
