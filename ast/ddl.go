package ast

import "strconv"

// RefAction is the ON DELETE/ON UPDATE action of a foreign key.
type RefAction string

const (
	ActionNone       RefAction = ""
	ActionNoAction   RefAction = "NO ACTION"
	ActionRestrict   RefAction = "RESTRICT"
	ActionCascade    RefAction = "CASCADE"
	ActionSetNull    RefAction = "SET NULL"
	ActionSetDefault RefAction = "SET DEFAULT"
)

// ForeignKeyRef is a column-level or table-level REFERENCES clause.
type ForeignKeyRef struct {
	Table    *CompoundIdent
	Columns  []*Ident
	OnDelete RefAction
	OnUpdate RefAction
}

func (r ForeignKeyRef) Render(b *Builder) {
	b.WriteToken("REFERENCES")
	r.Table.Render(b)
	if len(r.Columns) > 0 {
		b.WriteRaw(" (")
		for i, c := range r.Columns {
			if i > 0 {
				b.WriteRaw(", ")
			}
			c.Render(b)
		}
		b.WriteRaw(")")
	}
	if r.OnDelete != ActionNone {
		b.WriteToken("ON DELETE")
		b.WriteToken(string(r.OnDelete))
	}
	if r.OnUpdate != ActionNone {
		b.WriteToken("ON UPDATE")
		b.WriteToken(string(r.OnUpdate))
	}
}

// ColumnDef is one column definition in a CREATE TABLE.
type ColumnDef struct {
	Name          *Ident
	Type          DataType
	NotNull       bool
	Default       Expr
	PrimaryKey    bool
	Unique        bool
	AutoIncrement bool // MySQL
	Collate       string
	Check         Expr
	References    *ForeignKeyRef
}

func (c ColumnDef) Render(b *Builder) {
	c.Name.Render(b)
	c.Type.Render(b)
	if c.NotNull {
		b.WriteToken("NOT NULL")
	}
	if c.Default != nil {
		b.WriteToken("DEFAULT")
		c.Default.Render(b)
	}
	if c.AutoIncrement {
		b.WriteToken("AUTO_INCREMENT")
	}
	if c.PrimaryKey {
		b.WriteToken("PRIMARY KEY")
	}
	if c.Unique {
		b.WriteToken("UNIQUE")
	}
	if c.Collate != "" {
		b.WriteToken("COLLATE")
		b.WriteToken(c.Collate)
	}
	if c.Check != nil {
		b.WriteToken("CHECK")
		b.WriteToken("(")
		c.Check.Render(b)
		b.WriteRaw(")")
	}
	if c.References != nil {
		c.References.Render(b)
	}
}

// TableConstraintKind enumerates table-level constraint shapes.
type TableConstraintKind uint8

const (
	ConstraintPrimaryKey TableConstraintKind = iota
	ConstraintUnique
	ConstraintForeignKey
	ConstraintCheck
)

// TableConstraint is a table-level constraint, optionally named via
// CONSTRAINT <name>.
type TableConstraint struct {
	Name    *Ident
	Kind    TableConstraintKind
	Columns []*Ident       // PrimaryKey, Unique, ForeignKey
	Ref     *ForeignKeyRef // ForeignKey
	Check   Expr           // Check
}

func (c TableConstraint) Render(b *Builder) {
	if c.Name != nil {
		b.WriteToken("CONSTRAINT")
		c.Name.Render(b)
	}
	switch c.Kind {
	case ConstraintPrimaryKey:
		b.WriteToken("PRIMARY KEY")
		renderColList(b, c.Columns)
	case ConstraintUnique:
		b.WriteToken("UNIQUE")
		renderColList(b, c.Columns)
	case ConstraintForeignKey:
		b.WriteToken("FOREIGN KEY")
		renderColList(b, c.Columns)
		c.Ref.Render(b)
	case ConstraintCheck:
		b.WriteToken("CHECK")
		b.WriteToken("(")
		c.Check.Render(b)
		b.WriteRaw(")")
	}
}

func renderColList(b *Builder, cols []*Ident) {
	b.WriteToken("(")
	for i, c := range cols {
		if i > 0 {
			b.WriteRaw(", ")
		}
		c.Render(b)
	}
	b.WriteRaw(")")
}

// CreateTableStatement is CREATE TABLE [IF NOT EXISTS] name (cols, constraints).
type CreateTableStatement struct {
	Name        *CompoundIdent
	IfNotExists bool
	Columns     []ColumnDef
	Constraints []TableConstraint
	AsQuery     *Query // CREATE TABLE ... AS SELECT
}

func (n *CreateTableStatement) stmtNode() {}
func (n *CreateTableStatement) Render(b *Builder) {
	b.WriteToken("CREATE TABLE")
	if n.IfNotExists {
		b.WriteToken("IF NOT EXISTS")
	}
	n.Name.Render(b)
	if n.AsQuery != nil {
		b.WriteToken("AS")
		n.AsQuery.Render(b)
		return
	}
	b.WriteToken("(")
	first := true
	for _, c := range n.Columns {
		if !first {
			b.WriteRaw(",")
		}
		first = false
		c.Render(b)
	}
	for _, c := range n.Constraints {
		if !first {
			b.WriteRaw(",")
		}
		first = false
		c.Render(b)
	}
	b.WriteRaw(")")
}

// AlterTableCommand is one sub-command of ALTER TABLE.
type AlterTableCommand interface {
	Node
	alterCmdNode()
}

type AddColumnCommand struct{ Column ColumnDef }

func (c *AddColumnCommand) alterCmdNode() {}
func (c *AddColumnCommand) Render(b *Builder) {
	b.WriteToken("ADD COLUMN")
	c.Column.Render(b)
}

type DropColumnCommand struct{ Name *Ident }

func (c *DropColumnCommand) alterCmdNode() {}
func (c *DropColumnCommand) Render(b *Builder) {
	b.WriteToken("DROP COLUMN")
	c.Name.Render(b)
}

type ModifyColumnCommand struct{ Column ColumnDef }

func (c *ModifyColumnCommand) alterCmdNode() {}
func (c *ModifyColumnCommand) Render(b *Builder) {
	b.WriteToken("MODIFY COLUMN")
	c.Column.Render(b)
}

type AlterColumnTypeCommand struct {
	Name *Ident
	Type DataType
}

func (c *AlterColumnTypeCommand) alterCmdNode() {}
func (c *AlterColumnTypeCommand) Render(b *Builder) {
	b.WriteToken("ALTER COLUMN")
	c.Name.Render(b)
	b.WriteToken("TYPE")
	c.Type.Render(b)
}

type AddTableConstraintCommand struct{ Constraint TableConstraint }

func (c *AddTableConstraintCommand) alterCmdNode() {}
func (c *AddTableConstraintCommand) Render(b *Builder) {
	b.WriteToken("ADD")
	c.Constraint.Render(b)
}

type DropConstraintCommand struct{ Name *Ident }

func (c *DropConstraintCommand) alterCmdNode() {}
func (c *DropConstraintCommand) Render(b *Builder) {
	b.WriteToken("DROP CONSTRAINT")
	c.Name.Render(b)
}

type RenameTableCommand struct{ NewName *Ident }

func (c *RenameTableCommand) alterCmdNode() {}
func (c *RenameTableCommand) Render(b *Builder) {
	b.WriteToken("RENAME TO")
	c.NewName.Render(b)
}

type RenameColumnCommand struct{ OldName, NewName *Ident }

func (c *RenameColumnCommand) alterCmdNode() {}
func (c *RenameColumnCommand) Render(b *Builder) {
	b.WriteToken("RENAME COLUMN")
	c.OldName.Render(b)
	b.WriteToken("TO")
	c.NewName.Render(b)
}

// AlterTableStatement is ALTER TABLE <name> <cmd> [, <cmd>]*.
type AlterTableStatement struct {
	Name     *CompoundIdent
	Commands []AlterTableCommand
}

func (n *AlterTableStatement) stmtNode() {}
func (n *AlterTableStatement) Render(b *Builder) {
	b.WriteToken("ALTER TABLE")
	n.Name.Render(b)
	for i, c := range n.Commands {
		if i > 0 {
			b.WriteRaw(",")
		}
		c.Render(b)
	}
}

// ObjectKind enumerates the kinds DROP accepts.
type ObjectKind string

const (
	ObjectTable    ObjectKind = "TABLE"
	ObjectView     ObjectKind = "VIEW"
	ObjectSchema   ObjectKind = "SCHEMA"
	ObjectDomain   ObjectKind = "DOMAIN"
	ObjectType     ObjectKind = "TYPE"
	ObjectDatabase ObjectKind = "DATABASE"
	ObjectIndex    ObjectKind = "INDEX"
)

// DropBehavior is the optional CASCADE/RESTRICT trailer.
type DropBehavior string

const (
	DropBehaviorNone     DropBehavior = ""
	DropBehaviorCascade  DropBehavior = "CASCADE"
	DropBehaviorRestrict DropBehavior = "RESTRICT"
)

// DropStatement is DROP <kind> [IF EXISTS] <names> [CASCADE|RESTRICT].
type DropStatement struct {
	Kind     ObjectKind
	IfExists bool
	Names    []*CompoundIdent
	Behavior DropBehavior
}

func (n *DropStatement) stmtNode() {}
func (n *DropStatement) Render(b *Builder) {
	b.WriteToken("DROP")
	b.WriteToken(string(n.Kind))
	if n.IfExists {
		b.WriteToken("IF EXISTS")
	}
	for i, name := range n.Names {
		if i > 0 {
			b.WriteRaw(",")
		}
		name.Render(b)
	}
	if n.Behavior != DropBehaviorNone {
		b.WriteToken(string(n.Behavior))
	}
}

// IndexColumn is a column in a CREATE INDEX column list, with an optional
// length and an optional ASC/DESC direction.
type IndexColumn struct {
	Name      *Ident
	Length    int
	HasLength bool
	Desc      bool
	HasDir    bool
}

func (c IndexColumn) Render(b *Builder) {
	c.Name.Render(b)
	if c.HasLength {
		b.WriteRaw(" (")
		b.WriteRaw(strconv.Itoa(c.Length))
		b.WriteRaw(")")
	}
	if c.HasDir {
		if c.Desc {
			b.WriteToken("DESC")
		} else {
			b.WriteToken("ASC")
		}
	}
}

// CreateIndexStatement is CREATE [UNIQUE] INDEX <name> ON <table> (<cols>).
type CreateIndexStatement struct {
	Unique  bool
	Name    *Ident
	Table   *CompoundIdent
	Columns []IndexColumn
}

func (n *CreateIndexStatement) stmtNode() {}
func (n *CreateIndexStatement) Render(b *Builder) {
	b.WriteToken("CREATE")
	if n.Unique {
		b.WriteToken("UNIQUE")
	}
	b.WriteToken("INDEX")
	n.Name.Render(b)
	b.WriteToken("ON")
	n.Table.Render(b)
	b.WriteToken("(")
	for i, c := range n.Columns {
		if i > 0 {
			b.WriteRaw(", ")
		}
		c.Render(b)
	}
	b.WriteRaw(")")
}

// DropIndexStatement covers both the MySQL ("DROP INDEX name ON table")
// and PostgreSQL/SQLite ("DROP INDEX [IF EXISTS] name") surfaces.
type DropIndexStatement struct {
	Name     *Ident
	Table    *CompoundIdent // nil unless the MySQL ON-table form was used
	IfExists bool
}

func (n *DropIndexStatement) stmtNode() {}
func (n *DropIndexStatement) Render(b *Builder) {
	b.WriteToken("DROP INDEX")
	if n.IfExists {
		b.WriteToken("IF EXISTS")
	}
	n.Name.Render(b)
	if n.Table != nil {
		b.WriteToken("ON")
		n.Table.Render(b)
	}
}

// CreateViewStatement is CREATE [OR REPLACE] VIEW <name> [(cols)] AS <query>.
type CreateViewStatement struct {
	OrReplace bool
	Name      *CompoundIdent
	Columns   []*Ident
	Query     *Query
}

func (n *CreateViewStatement) stmtNode() {}
func (n *CreateViewStatement) Render(b *Builder) {
	b.WriteToken("CREATE")
	if n.OrReplace {
		b.WriteToken("OR REPLACE")
	}
	b.WriteToken("VIEW")
	n.Name.Render(b)
	if len(n.Columns) > 0 {
		renderColList(b, n.Columns)
	}
	b.WriteToken("AS")
	n.Query.Render(b)
}

// SchemaOrDatabaseKind distinguishes SCHEMA from DATABASE surfaces, which
// share one DDL family (matching original_source's treatment of schema
// and database as siblings).
type SchemaOrDatabaseKind string

const (
	KindDatabase SchemaOrDatabaseKind = "DATABASE"
	KindSchema   SchemaOrDatabaseKind = "SCHEMA"
)

// CreateDatabaseStatement is CREATE {DATABASE|SCHEMA} [IF NOT EXISTS] <name>.
type CreateDatabaseStatement struct {
	Kind        SchemaOrDatabaseKind
	Name        *Ident
	IfNotExists bool
}

func (n *CreateDatabaseStatement) stmtNode() {}
func (n *CreateDatabaseStatement) Render(b *Builder) {
	b.WriteToken("CREATE")
	b.WriteToken(string(n.Kind))
	if n.IfNotExists {
		b.WriteToken("IF NOT EXISTS")
	}
	n.Name.Render(b)
}

// AlterDatabaseStatement is ALTER {DATABASE|SCHEMA} <name> RENAME TO <new>.
type AlterDatabaseStatement struct {
	Kind    SchemaOrDatabaseKind
	Name    *Ident
	NewName *Ident
}

func (n *AlterDatabaseStatement) stmtNode() {}
func (n *AlterDatabaseStatement) Render(b *Builder) {
	b.WriteToken("ALTER")
	b.WriteToken(string(n.Kind))
	n.Name.Render(b)
	b.WriteToken("RENAME TO")
	n.NewName.Render(b)
}

// CreateDomainStatement is CREATE DOMAIN <name> AS <type> [DEFAULT <expr>]
// [CHECK (<expr>)].
type CreateDomainStatement struct {
	Name    *CompoundIdent
	Type    DataType
	Default Expr
	Check   Expr
}

func (n *CreateDomainStatement) stmtNode() {}
func (n *CreateDomainStatement) Render(b *Builder) {
	b.WriteToken("CREATE DOMAIN")
	n.Name.Render(b)
	b.WriteToken("AS")
	n.Type.Render(b)
	if n.Default != nil {
		b.WriteToken("DEFAULT")
		n.Default.Render(b)
	}
	if n.Check != nil {
		b.WriteToken("CHECK")
		b.WriteToken("(")
		n.Check.Render(b)
		b.WriteRaw(")")
	}
}

// TypeField is one field of a CREATE TYPE ... AS (<fields>) composite.
type TypeField struct {
	Name *Ident
	Type DataType
}

// CreateTypeStatement is CREATE TYPE <name> AS (<fields>) or
// CREATE TYPE <name> AS ENUM (<labels>).
type CreateTypeStatement struct {
	Name       *CompoundIdent
	Fields     []TypeField // composite form
	EnumLabels []string    // enum form; mutually exclusive with Fields
}

func (n *CreateTypeStatement) stmtNode() {}
func (n *CreateTypeStatement) Render(b *Builder) {
	b.WriteToken("CREATE TYPE")
	n.Name.Render(b)
	b.WriteToken("AS")
	if len(n.EnumLabels) > 0 {
		b.WriteToken("ENUM")
		b.WriteToken("(")
		for i, l := range n.EnumLabels {
			if i > 0 {
				b.WriteRaw(", ")
			}
			b.WriteRaw("'" + escapeString(l) + "'")
		}
		b.WriteRaw(")")
		return
	}
	b.WriteToken("(")
	for i, f := range n.Fields {
		if i > 0 {
			b.WriteRaw(", ")
		}
		f.Name.Render(b)
		f.Type.Render(b)
	}
	b.WriteRaw(")")
}

// CreateSchemaStatement is CREATE SCHEMA [IF NOT EXISTS] <name>.
type CreateSchemaStatement struct {
	Name        *Ident
	IfNotExists bool
}

func (n *CreateSchemaStatement) stmtNode() {}
func (n *CreateSchemaStatement) Render(b *Builder) {
	b.WriteToken("CREATE SCHEMA")
	if n.IfNotExists {
		b.WriteToken("IF NOT EXISTS")
	}
	n.Name.Render(b)
}
