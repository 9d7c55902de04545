package parser

import (
	"github.com/oarkflow/usql/ast"
	"github.com/oarkflow/usql/token"
)

// parseCreate dispatches CREATE TABLE/INDEX/VIEW/DATABASE/SCHEMA/DOMAIN/TYPE
// per spec.md §4.7's DDL supplement.
func (p *parser) parseCreate() (ast.Statement, error) {
	p.c.next() // CREATE
	switch {
	case p.c.isKeyword("TABLE"):
		return p.parseCreateTable(false)
	case p.c.isKeyword("UNIQUE"):
		return p.parseCreateIndex(true)
	case p.c.isKeyword("INDEX"):
		return p.parseCreateIndex(false)
	case p.c.isKeyword("OR"):
		return p.parseCreateView()
	case p.c.isKeyword("VIEW"):
		return p.parseCreateView()
	case p.c.isKeyword("DATABASE"):
		return p.parseCreateDatabase(ast.KindDatabase)
	case p.c.isKeyword("SCHEMA"):
		return p.parseCreateSchema()
	case p.c.isKeyword("DOMAIN"):
		return p.parseCreateDomain()
	case p.c.isKeyword("TYPE"):
		return p.parseCreateType()
	}
	return nil, p.expected("TABLE, INDEX, VIEW, DATABASE, SCHEMA, DOMAIN or TYPE")
}

func (p *parser) parseIfNotExists() bool {
	if !p.c.isKeyword("IF") {
		return false
	}
	n := p.c.peekNext()
	p.c.resetPeekCursor()
	if !n.IsKeyword("NOT") {
		return false
	}
	p.c.next() // IF
	p.c.next() // NOT
	p.c.nextIfKeyword("EXISTS")
	return true
}

func (p *parser) parseCreateTable(ifNotExists bool) (ast.Statement, error) {
	p.c.next() // TABLE
	ifNotExists = ifNotExists || p.parseIfNotExists()
	name, err := p.parseCompoundIdent()
	if err != nil {
		return nil, err
	}
	stmt := &ast.CreateTableStatement{Name: name, IfNotExists: ifNotExists}

	if _, ok := p.c.nextIfKeyword("AS"); ok {
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		stmt.AsQuery = q
		return stmt, nil
	}

	if _, ok := p.c.nextIfPunct('('); !ok {
		return nil, p.expected("(")
	}
	for {
		if p.startsTableConstraint() {
			tc, err := p.parseTableConstraint()
			if err != nil {
				return nil, err
			}
			stmt.Constraints = append(stmt.Constraints, tc)
		} else {
			col, err := p.parseColumnDef()
			if err != nil {
				return nil, err
			}
			stmt.Columns = append(stmt.Columns, col)
		}
		if _, ok := p.c.nextIfPunct(','); !ok {
			break
		}
	}
	if _, ok := p.c.nextIfPunct(')'); !ok {
		return nil, p.expected(")")
	}
	return stmt, nil
}

func (p *parser) startsTableConstraint() bool {
	return p.c.isKeyword("CONSTRAINT") || p.c.isKeyword("PRIMARY") ||
		p.c.isKeyword("UNIQUE") || p.c.isKeyword("FOREIGN") || p.c.isKeyword("CHECK")
}

func (p *parser) parseTableConstraint() (ast.TableConstraint, error) {
	var tc ast.TableConstraint
	if _, ok := p.c.nextIfKeyword("CONSTRAINT"); ok {
		name, err := p.parseIdentSegment()
		if err != nil {
			return tc, p.expected("constraint name")
		}
		tc.Name = name
	}
	switch {
	case p.c.isKeyword("PRIMARY"):
		p.c.next()
		if _, ok := p.c.nextIfKeyword("KEY"); !ok {
			return tc, p.expected("KEY")
		}
		cols, err := p.parseIdentList()
		if err != nil {
			return tc, err
		}
		tc.Kind = ast.ConstraintPrimaryKey
		tc.Columns = cols
	case p.c.isKeyword("UNIQUE"):
		p.c.next()
		cols, err := p.parseIdentList()
		if err != nil {
			return tc, err
		}
		tc.Kind = ast.ConstraintUnique
		tc.Columns = cols
	case p.c.isKeyword("FOREIGN"):
		p.c.next()
		if _, ok := p.c.nextIfKeyword("KEY"); !ok {
			return tc, p.expected("KEY")
		}
		cols, err := p.parseIdentList()
		if err != nil {
			return tc, err
		}
		ref, err := p.parseForeignKeyRef()
		if err != nil {
			return tc, err
		}
		tc.Kind = ast.ConstraintForeignKey
		tc.Columns = cols
		tc.Ref = ref
	case p.c.isKeyword("CHECK"):
		p.c.next()
		if _, ok := p.c.nextIfPunct('('); !ok {
			return tc, p.expected("(")
		}
		e, err := p.parseExpr(0)
		if err != nil {
			return tc, err
		}
		if _, ok := p.c.nextIfPunct(')'); !ok {
			return tc, p.expected(")")
		}
		tc.Kind = ast.ConstraintCheck
		tc.Check = e
	default:
		return tc, p.expected("PRIMARY KEY, UNIQUE, FOREIGN KEY or CHECK")
	}
	return tc, nil
}

func (p *parser) parseIdentList() ([]*ast.Ident, error) {
	if _, ok := p.c.nextIfPunct('('); !ok {
		return nil, p.expected("(")
	}
	var cols []*ast.Ident
	for {
		col, err := p.parseIdentSegment()
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
		if _, ok := p.c.nextIfPunct(','); !ok {
			break
		}
	}
	if _, ok := p.c.nextIfPunct(')'); !ok {
		return nil, p.expected(")")
	}
	return cols, nil
}

func (p *parser) parseRefAction() (ast.RefAction, error) {
	switch {
	case p.c.isKeyword("NO"):
		p.c.next()
		if _, ok := p.c.nextIfKeyword("ACTION"); !ok {
			return "", p.expected("ACTION")
		}
		return ast.ActionNoAction, nil
	case p.c.isKeyword("RESTRICT"):
		p.c.next()
		return ast.ActionRestrict, nil
	case p.c.isKeyword("CASCADE"):
		p.c.next()
		return ast.ActionCascade, nil
	case p.c.isKeyword("SET"):
		p.c.next()
		switch {
		case p.c.isKeyword("NULL"):
			p.c.next()
			return ast.ActionSetNull, nil
		case p.c.isKeyword("DEFAULT"):
			p.c.next()
			return ast.ActionSetDefault, nil
		}
		return "", p.expected("NULL or DEFAULT")
	}
	return "", p.expected("referential action")
}

func (p *parser) parseForeignKeyRef() (*ast.ForeignKeyRef, error) {
	if _, ok := p.c.nextIfKeyword("REFERENCES"); !ok {
		return nil, p.expected("REFERENCES")
	}
	table, err := p.parseCompoundIdent()
	if err != nil {
		return nil, err
	}
	ref := &ast.ForeignKeyRef{Table: table}
	if p.c.isPunct('(') {
		cols, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		ref.Columns = cols
	}
	for {
		switch {
		case p.c.isKeyword("ON"):
			n := p.c.peekNext()
			p.c.resetPeekCursor()
			p.c.next() // ON
			switch {
			case n.IsKeyword("DELETE"):
				p.c.next() // DELETE
				act, err := p.parseRefAction()
				if err != nil {
					return nil, err
				}
				ref.OnDelete = act
			case n.IsKeyword("UPDATE"):
				p.c.next() // UPDATE
				act, err := p.parseRefAction()
				if err != nil {
					return nil, err
				}
				ref.OnUpdate = act
			default:
				return nil, p.expected("DELETE or UPDATE")
			}
		default:
			return ref, nil
		}
	}
}

// parseColumnDef parses one CREATE TABLE column definition per
// SPEC_FULL.md's supplement: name, type, then any mix of NOT NULL,
// DEFAULT, PRIMARY KEY, UNIQUE, AUTO_INCREMENT, COLLATE, CHECK and a
// column-level REFERENCES clause.
func (p *parser) parseColumnDef() (ast.ColumnDef, error) {
	name, err := p.parseIdentSegment()
	if err != nil {
		return ast.ColumnDef{}, p.expected("column name")
	}
	dt, err := p.parseDataType()
	if err != nil {
		return ast.ColumnDef{}, err
	}
	col := ast.ColumnDef{Name: name, Type: dt}
	for {
		switch {
		case p.c.isKeyword("NOT"):
			n := p.c.peekNext()
			p.c.resetPeekCursor()
			if !n.IsKeyword("NULL") {
				return col, nil
			}
			p.c.next()
			p.c.next()
			col.NotNull = true
		case p.c.isKeyword("DEFAULT"):
			p.c.next()
			e, err := p.parseExpr(precCmp)
			if err != nil {
				return col, err
			}
			col.Default = e
		case p.c.isKeyword("PRIMARY"):
			n := p.c.peekNext()
			p.c.resetPeekCursor()
			if !n.IsKeyword("KEY") {
				return col, nil
			}
			p.c.next()
			p.c.next()
			col.PrimaryKey = true
		case p.c.isKeyword("UNIQUE"):
			p.c.next()
			col.Unique = true
		case p.c.isKeyword("AUTO_INCREMENT"):
			p.c.next()
			col.AutoIncrement = true
		case p.c.isKeyword("COLLATE"):
			p.c.next()
			nameTok := p.c.peek()
			if nameTok.Kind != token.Word {
				return col, p.expected("collation name")
			}
			p.c.next()
			col.Collate = nameTok.Value
		case p.c.isKeyword("CHECK"):
			p.c.next()
			if _, ok := p.c.nextIfPunct('('); !ok {
				return col, p.expected("(")
			}
			e, err := p.parseExpr(0)
			if err != nil {
				return col, err
			}
			if _, ok := p.c.nextIfPunct(')'); !ok {
				return col, p.expected(")")
			}
			col.Check = e
		case p.c.isKeyword("REFERENCES"):
			ref, err := p.parseForeignKeyRef()
			if err != nil {
				return col, err
			}
			col.References = ref
		default:
			return col, nil
		}
	}
}

// parseAlter dispatches ALTER TABLE/DATABASE/SCHEMA.
func (p *parser) parseAlter() (ast.Statement, error) {
	p.c.next() // ALTER
	switch {
	case p.c.isKeyword("TABLE"):
		return p.parseAlterTable()
	case p.c.isKeyword("DATABASE"):
		return p.parseAlterDatabase(ast.KindDatabase)
	case p.c.isKeyword("SCHEMA"):
		return p.parseAlterDatabase(ast.KindSchema)
	}
	return nil, p.expected("TABLE, DATABASE or SCHEMA")
}

func (p *parser) parseAlterTable() (ast.Statement, error) {
	p.c.next() // TABLE
	name, err := p.parseCompoundIdent()
	if err != nil {
		return nil, err
	}
	stmt := &ast.AlterTableStatement{Name: name}
	for {
		cmd, err := p.parseAlterTableCommand()
		if err != nil {
			return nil, err
		}
		stmt.Commands = append(stmt.Commands, cmd)
		if _, ok := p.c.nextIfPunct(','); !ok {
			return stmt, nil
		}
	}
}

func (p *parser) parseAlterTableCommand() (ast.AlterTableCommand, error) {
	switch {
	case p.c.isKeyword("ADD"):
		p.c.next()
		if p.startsTableConstraint() {
			tc, err := p.parseTableConstraint()
			if err != nil {
				return nil, err
			}
			return &ast.AddTableConstraintCommand{Constraint: tc}, nil
		}
		p.c.nextIfKeyword("COLUMN")
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		return &ast.AddColumnCommand{Column: col}, nil
	case p.c.isKeyword("DROP"):
		p.c.next()
		switch {
		case p.c.isKeyword("COLUMN"):
			p.c.next()
			name, err := p.parseIdentSegment()
			if err != nil {
				return nil, p.expected("column name")
			}
			return &ast.DropColumnCommand{Name: name}, nil
		case p.c.isKeyword("CONSTRAINT"):
			p.c.next()
			name, err := p.parseIdentSegment()
			if err != nil {
				return nil, p.expected("constraint name")
			}
			return &ast.DropConstraintCommand{Name: name}, nil
		}
		return nil, p.expected("COLUMN or CONSTRAINT")
	case p.c.isKeyword("MODIFY"):
		p.c.next()
		p.c.nextIfKeyword("COLUMN")
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		return &ast.ModifyColumnCommand{Column: col}, nil
	case p.c.isKeyword("ALTER"):
		p.c.next()
		p.c.nextIfKeyword("COLUMN")
		name, err := p.parseIdentSegment()
		if err != nil {
			return nil, p.expected("column name")
		}
		if _, ok := p.c.nextIfKeyword("TYPE"); !ok {
			return nil, p.expected("TYPE")
		}
		dt, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		return &ast.AlterColumnTypeCommand{Name: name, Type: dt}, nil
	case p.c.isKeyword("RENAME"):
		p.c.next()
		switch {
		case p.c.isKeyword("COLUMN"):
			p.c.next()
			oldName, err := p.parseIdentSegment()
			if err != nil {
				return nil, p.expected("column name")
			}
			if _, ok := p.c.nextIfKeyword("TO"); !ok {
				return nil, p.expected("TO")
			}
			newName, err := p.parseIdentSegment()
			if err != nil {
				return nil, p.expected("column name")
			}
			return &ast.RenameColumnCommand{OldName: oldName, NewName: newName}, nil
		case p.c.isKeyword("TO"):
			p.c.next()
			newName, err := p.parseIdentSegment()
			if err != nil {
				return nil, p.expected("table name")
			}
			return &ast.RenameTableCommand{NewName: newName}, nil
		default:
			newName, err := p.parseIdentSegment()
			if err != nil {
				return nil, p.expected("table name")
			}
			return &ast.RenameTableCommand{NewName: newName}, nil
		}
	}
	return nil, p.expected("ADD, DROP, MODIFY, ALTER or RENAME")
}

func (p *parser) parseAlterDatabase(kind ast.SchemaOrDatabaseKind) (ast.Statement, error) {
	p.c.next() // DATABASE/SCHEMA
	name, err := p.parseIdentSegment()
	if err != nil {
		return nil, p.expected("name")
	}
	if _, ok := p.c.nextIfKeyword("RENAME"); !ok {
		return nil, p.expected("RENAME")
	}
	if _, ok := p.c.nextIfKeyword("TO"); !ok {
		return nil, p.expected("TO")
	}
	newName, err := p.parseIdentSegment()
	if err != nil {
		return nil, p.expected("name")
	}
	return &ast.AlterDatabaseStatement{Kind: kind, Name: name, NewName: newName}, nil
}

// parseDrop dispatches DROP TABLE/INDEX/VIEW/DATABASE/SCHEMA/DOMAIN/TYPE,
// folding both DROP INDEX surfaces (MySQL's ON-table form and the
// Postgres/SQLite IF-EXISTS form) into one DropIndexStatement.
func (p *parser) parseDrop() (ast.Statement, error) {
	p.c.next() // DROP
	switch {
	case p.c.isKeyword("INDEX"):
		return p.parseDropIndex()
	case p.c.isKeyword("TABLE"):
		return p.parseDropGeneric(ast.ObjectTable)
	case p.c.isKeyword("VIEW"):
		return p.parseDropGeneric(ast.ObjectView)
	case p.c.isKeyword("SCHEMA"):
		return p.parseDropGeneric(ast.ObjectSchema)
	case p.c.isKeyword("DOMAIN"):
		return p.parseDropGeneric(ast.ObjectDomain)
	case p.c.isKeyword("TYPE"):
		return p.parseDropGeneric(ast.ObjectType)
	case p.c.isKeyword("DATABASE"):
		return p.parseDropGeneric(ast.ObjectDatabase)
	}
	return nil, p.expected("TABLE, INDEX, VIEW, DATABASE, SCHEMA, DOMAIN or TYPE")
}

func (p *parser) parseDropBehavior() ast.DropBehavior {
	switch {
	case p.c.isKeyword("CASCADE"):
		p.c.next()
		return ast.DropBehaviorCascade
	case p.c.isKeyword("RESTRICT"):
		p.c.next()
		return ast.DropBehaviorRestrict
	}
	return ast.DropBehaviorNone
}

func (p *parser) parseDropGeneric(kind ast.ObjectKind) (ast.Statement, error) {
	p.c.next() // TABLE/VIEW/SCHEMA/DOMAIN/TYPE/DATABASE
	ifExists := false
	if p.c.isKeyword("IF") {
		n := p.c.peekNext()
		p.c.resetPeekCursor()
		if n.IsKeyword("EXISTS") {
			p.c.next()
			p.c.next()
			ifExists = true
		}
	}
	stmt := &ast.DropStatement{Kind: kind, IfExists: ifExists}
	for {
		name, err := p.parseCompoundIdent()
		if err != nil {
			return nil, err
		}
		stmt.Names = append(stmt.Names, name)
		if _, ok := p.c.nextIfPunct(','); !ok {
			break
		}
	}
	stmt.Behavior = p.parseDropBehavior()
	return stmt, nil
}

// parseDropIndex covers "DROP INDEX name ON table" (MySQL) and
// "DROP INDEX [IF EXISTS] name" (Postgres/SQLite).
func (p *parser) parseDropIndex() (ast.Statement, error) {
	p.c.next() // INDEX
	ifExists := false
	if p.c.isKeyword("IF") {
		n := p.c.peekNext()
		p.c.resetPeekCursor()
		if n.IsKeyword("EXISTS") {
			p.c.next()
			p.c.next()
			ifExists = true
		}
	}
	name, err := p.parseIdentSegment()
	if err != nil {
		return nil, p.expected("index name")
	}
	stmt := &ast.DropIndexStatement{Name: name, IfExists: ifExists}
	if _, ok := p.c.nextIfKeyword("ON"); ok {
		table, err := p.parseCompoundIdent()
		if err != nil {
			return nil, err
		}
		stmt.Table = table
	}
	return stmt, nil
}

func (p *parser) parseCreateIndex(unique bool) (ast.Statement, error) {
	if unique {
		p.c.next() // UNIQUE
		if _, ok := p.c.nextIfKeyword("INDEX"); !ok {
			return nil, p.expected("INDEX")
		}
	} else {
		p.c.next() // INDEX
	}
	name, err := p.parseIdentSegment()
	if err != nil {
		return nil, p.expected("index name")
	}
	if _, ok := p.c.nextIfKeyword("ON"); !ok {
		return nil, p.expected("ON")
	}
	table, err := p.parseCompoundIdent()
	if err != nil {
		return nil, err
	}
	stmt := &ast.CreateIndexStatement{Unique: unique, Name: name, Table: table}
	if _, ok := p.c.nextIfPunct('('); !ok {
		return nil, p.expected("(")
	}
	for {
		col, err := p.parseIndexColumn()
		if err != nil {
			return nil, err
		}
		stmt.Columns = append(stmt.Columns, col)
		if _, ok := p.c.nextIfPunct(','); !ok {
			break
		}
	}
	if _, ok := p.c.nextIfPunct(')'); !ok {
		return nil, p.expected(")")
	}
	return stmt, nil
}

func (p *parser) parseIndexColumn() (ast.IndexColumn, error) {
	name, err := p.parseIdentSegment()
	if err != nil {
		return ast.IndexColumn{}, p.expected("column name")
	}
	col := ast.IndexColumn{Name: name}
	if n, ok := p.parseParenInt(); ok {
		col.Length, col.HasLength = n, true
	}
	switch {
	case p.c.isKeyword("ASC"):
		p.c.next()
		col.HasDir = true
	case p.c.isKeyword("DESC"):
		p.c.next()
		col.HasDir, col.Desc = true, true
	}
	return col, nil
}

func (p *parser) parseCreateView() (ast.Statement, error) {
	orReplace := false
	if p.c.isKeyword("OR") {
		p.c.next()
		if _, ok := p.c.nextIfKeyword("REPLACE"); !ok {
			return nil, p.expected("REPLACE")
		}
		orReplace = true
	}
	if _, ok := p.c.nextIfKeyword("VIEW"); !ok {
		return nil, p.expected("VIEW")
	}
	name, err := p.parseCompoundIdent()
	if err != nil {
		return nil, err
	}
	stmt := &ast.CreateViewStatement{OrReplace: orReplace, Name: name}
	if p.c.isPunct('(') {
		cols, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		stmt.Columns = cols
	}
	if _, ok := p.c.nextIfKeyword("AS"); !ok {
		return nil, p.expected("AS")
	}
	q, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	stmt.Query = q
	return stmt, nil
}

func (p *parser) parseCreateDatabase(kind ast.SchemaOrDatabaseKind) (ast.Statement, error) {
	p.c.next() // DATABASE
	ifNotExists := p.parseIfNotExists()
	name, err := p.parseIdentSegment()
	if err != nil {
		return nil, p.expected("name")
	}
	return &ast.CreateDatabaseStatement{Kind: kind, Name: name, IfNotExists: ifNotExists}, nil
}

func (p *parser) parseCreateSchema() (ast.Statement, error) {
	p.c.next() // SCHEMA
	ifNotExists := p.parseIfNotExists()
	name, err := p.parseIdentSegment()
	if err != nil {
		return nil, p.expected("name")
	}
	return &ast.CreateSchemaStatement{Name: name, IfNotExists: ifNotExists}, nil
}

func (p *parser) parseCreateDomain() (ast.Statement, error) {
	p.c.next() // DOMAIN
	name, err := p.parseCompoundIdent()
	if err != nil {
		return nil, err
	}
	if _, ok := p.c.nextIfKeyword("AS"); !ok {
		return nil, p.expected("AS")
	}
	dt, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	stmt := &ast.CreateDomainStatement{Name: name, Type: dt}
	if _, ok := p.c.nextIfKeyword("DEFAULT"); ok {
		e, err := p.parseExpr(precCmp)
		if err != nil {
			return nil, err
		}
		stmt.Default = e
	}
	if _, ok := p.c.nextIfKeyword("CHECK"); ok {
		if _, ok := p.c.nextIfPunct('('); !ok {
			return nil, p.expected("(")
		}
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if _, ok := p.c.nextIfPunct(')'); !ok {
			return nil, p.expected(")")
		}
		stmt.Check = e
	}
	return stmt, nil
}

// parseCreateType handles both the composite-struct form
// (CREATE TYPE name AS (field type, ...)) and the enum form
// (CREATE TYPE name AS ENUM ('a', 'b', ...)).
func (p *parser) parseCreateType() (ast.Statement, error) {
	p.c.next() // TYPE
	name, err := p.parseCompoundIdent()
	if err != nil {
		return nil, err
	}
	if _, ok := p.c.nextIfKeyword("AS"); !ok {
		return nil, p.expected("AS")
	}
	stmt := &ast.CreateTypeStatement{Name: name}
	if _, ok := p.c.nextIfKeyword("ENUM"); ok {
		if _, ok := p.c.nextIfPunct('('); !ok {
			return nil, p.expected("(")
		}
		for {
			t := p.c.peek()
			if t.Kind != token.String {
				return nil, p.expected("string")
			}
			p.c.next()
			stmt.EnumLabels = append(stmt.EnumLabels, t.Value)
			if _, ok := p.c.nextIfPunct(','); !ok {
				break
			}
		}
		if _, ok := p.c.nextIfPunct(')'); !ok {
			return nil, p.expected(")")
		}
		return stmt, nil
	}
	if _, ok := p.c.nextIfPunct('('); !ok {
		return nil, p.expected("(")
	}
	for {
		fname, err := p.parseIdentSegment()
		if err != nil {
			return nil, p.expected("field name")
		}
		dt, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		stmt.Fields = append(stmt.Fields, ast.TypeField{Name: fname, Type: dt})
		if _, ok := p.c.nextIfPunct(','); !ok {
			break
		}
	}
	if _, ok := p.c.nextIfPunct(')'); !ok {
		return nil, p.expected(")")
	}
	return stmt, nil
}
