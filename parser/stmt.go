package parser

import (
	"github.com/oarkflow/usql/ast"
)

// parseStatement implements the top-level statement dispatch of spec.md
// §4.7: look at the leading keyword(s) and route to the matching
// sub-parser.
func (p *parser) parseStatement() (ast.Statement, error) {
	switch {
	case p.c.isKeyword("CREATE"):
		return p.parseCreate()
	case p.c.isKeyword("ALTER"):
		return p.parseAlter()
	case p.c.isKeyword("DROP"):
		return p.parseDrop()
	case p.c.isKeyword("INSERT"):
		return p.parseInsert()
	case p.c.isKeyword("DELETE"):
		return p.parseDelete()
	case p.c.isKeyword("UPDATE"):
		return p.parseUpdate()
	case p.c.isKeyword("SELECT"), p.c.isKeyword("WITH"), p.c.isKeyword("VALUES"), p.c.isKeyword("TABLE"):
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		return &ast.SelectStatement{Query: q}, nil
	case p.c.isKeyword("START"), p.c.isKeyword("BEGIN"):
		return p.parseStartTransaction()
	case p.c.isKeyword("SET"):
		return p.parseSetTransaction()
	case p.c.isKeyword("COMMIT"):
		return p.parseCommit()
	case p.c.isKeyword("ROLLBACK"):
		return p.parseRollback()
	case p.c.isKeyword("SAVEPOINT"):
		return p.parseSavepoint()
	case p.c.isKeyword("RELEASE"):
		return p.parseReleaseSavepoint()
	case p.c.isKeyword("EXPLAIN"):
		return p.parseExplain()
	case p.c.isKeyword("CALL"):
		return p.parseCall()
	}
	if p.c.isPunct('(') {
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		return &ast.SelectStatement{Query: q}, nil
	}
	return nil, p.expected("statement")
}

func (p *parser) parseAssignments() ([]ast.Assignment, error) {
	var list []ast.Assignment
	for {
		col, err := p.parseIdentSegment()
		if err != nil {
			return nil, p.expected("column")
		}
		if _, ok := p.c.nextIfPunct('='); !ok {
			return nil, p.expected("=")
		}
		val, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		list = append(list, ast.Assignment{Column: col, Value: val})
		if _, ok := p.c.nextIfPunct(','); !ok {
			return list, nil
		}
	}
}

// parseInsert implements INSERT INTO, including the Postgres/SQLite
// "ON CONFLICT [(cols)] DO {NOTHING|UPDATE SET ...}" upsert and the
// MySQL "ON DUPLICATE KEY UPDATE ..." upsert. Both forms are accepted
// under every dialect; they are mutually exclusive within one statement.
func (p *parser) parseInsert() (ast.Statement, error) {
	p.c.next() // INSERT
	if _, ok := p.c.nextIfKeyword("INTO"); !ok {
		return nil, p.expected("INTO")
	}
	table, err := p.parseCompoundIdent()
	if err != nil {
		return nil, err
	}
	stmt := &ast.InsertStatement{Table: table}

	if _, ok := p.c.nextIfPunct('('); ok {
		for {
			col, err := p.parseIdentSegment()
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
	}

	if _, ok := p.c.nextIfKeyword("OVERRIDING"); ok {
		switch {
		case p.c.isKeyword("SYSTEM"):
			p.c.next()
			stmt.Overriding = ast.OverridingSystem
		case p.c.isKeyword("USER"):
			p.c.next()
			stmt.Overriding = ast.OverridingUser
		default:
			return nil, p.expected("SYSTEM or USER")
		}
		if _, ok := p.c.nextIfKeyword("VALUE"); !ok {
			return nil, p.expected("VALUE")
		}
	}

	switch {
	case p.c.isKeyword("DEFAULT"):
		p.c.next()
		if _, ok := p.c.nextIfKeyword("VALUES"); !ok {
			return nil, p.expected("VALUES")
		}
		stmt.DefaultValues = true
	case p.c.isKeyword("VALUES"):
		p.c.next()
		for {
			if _, ok := p.c.nextIfPunct('('); !ok {
				return nil, p.expected("(")
			}
			row, err := p.parseExprList()
			if err != nil {
				return nil, err
			}
			if _, ok := p.c.nextIfPunct(')'); !ok {
				return nil, p.expected(")")
			}
			stmt.Rows = append(stmt.Rows, row)
			if _, ok := p.c.nextIfPunct(','); !ok {
				break
			}
		}
	default:
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		stmt.Query = q
	}

	if p.c.isKeyword("ON") {
		n := p.c.peekNext()
		p.c.resetPeekCursor()
		if n.IsKeyword("CONFLICT") {
			p.c.next() // ON
			p.c.next() // CONFLICT
			oc := &ast.OnConflict{}
			if _, ok := p.c.nextIfPunct('('); ok {
				for {
					col, err := p.parseIdentSegment()
					if err != nil {
						return nil, err
					}
					oc.Columns = append(oc.Columns, col)
					if _, ok := p.c.nextIfPunct(','); !ok {
						break
					}
				}
				if _, ok := p.c.nextIfPunct(')'); !ok {
					return nil, p.expected(")")
				}
			}
			if _, ok := p.c.nextIfKeyword("DO"); !ok {
				return nil, p.expected("DO")
			}
			switch {
			case p.c.isKeyword("NOTHING"):
				p.c.next()
				oc.Action.DoNothing = true
			case p.c.isKeyword("UPDATE"):
				p.c.next()
				if _, ok := p.c.nextIfKeyword("SET"); !ok {
					return nil, p.expected("SET")
				}
				assigns, err := p.parseAssignments()
				if err != nil {
					return nil, err
				}
				oc.Action.Updates = assigns
			default:
				return nil, p.expected("NOTHING or UPDATE")
			}
			stmt.OnConflict = oc
		}
	}
	if stmt.OnConflict == nil && p.c.isKeyword("ON") {
		n := p.c.peekNext()
		p.c.resetPeekCursor()
		if n.IsKeyword("DUPLICATE") {
			p.c.next() // ON
			p.c.next() // DUPLICATE
			if _, ok := p.c.nextIfKeyword("KEY"); !ok {
				return nil, p.expected("KEY")
			}
			if _, ok := p.c.nextIfKeyword("UPDATE"); !ok {
				return nil, p.expected("UPDATE")
			}
			assigns, err := p.parseAssignments()
			if err != nil {
				return nil, err
			}
			stmt.OnDuplicateKey = assigns
		}
	}

	return stmt, nil
}

func (p *parser) parseDelete() (ast.Statement, error) {
	p.c.next() // DELETE
	if _, ok := p.c.nextIfKeyword("FROM"); !ok {
		return nil, p.expected("FROM")
	}
	table, err := p.parseCompoundIdent()
	if err != nil {
		return nil, err
	}
	stmt := &ast.DeleteStatement{Table: table}
	alias, _, err := p.parseOptionalTableAlias()
	if err != nil {
		return nil, err
	}
	stmt.Alias = alias
	if _, ok := p.c.nextIfKeyword("WHERE"); ok {
		where, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}
	return stmt, nil
}

func (p *parser) parseUpdate() (ast.Statement, error) {
	p.c.next() // UPDATE
	table, err := p.parseCompoundIdent()
	if err != nil {
		return nil, err
	}
	stmt := &ast.UpdateStatement{Table: table}
	alias, _, err := p.parseOptionalTableAlias()
	if err != nil {
		return nil, err
	}
	stmt.Alias = alias
	if _, ok := p.c.nextIfKeyword("SET"); !ok {
		return nil, p.expected("SET")
	}
	assigns, err := p.parseAssignments()
	if err != nil {
		return nil, err
	}
	stmt.Set = assigns
	if _, ok := p.c.nextIfKeyword("WHERE"); ok {
		where, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}
	return stmt, nil
}

func (p *parser) parseTxCharacteristics() (ast.TxCharacteristics, error) {
	var tc ast.TxCharacteristics
	for {
		switch {
		case p.c.isKeyword("ISOLATION"):
			p.c.next()
			if _, ok := p.c.nextIfKeyword("LEVEL"); !ok {
				return tc, p.expected("LEVEL")
			}
			switch {
			case p.c.isKeyword("READ"):
				p.c.next()
				switch {
				case p.c.isKeyword("UNCOMMITTED"):
					p.c.next()
					tc.Isolation = ast.IsolationReadUncommitted
				case p.c.isKeyword("COMMITTED"):
					p.c.next()
					tc.Isolation = ast.IsolationReadCommitted
				default:
					return tc, p.expected("UNCOMMITTED or COMMITTED")
				}
			case p.c.isKeyword("REPEATABLE"):
				p.c.next()
				if _, ok := p.c.nextIfKeyword("READ"); !ok {
					return tc, p.expected("READ")
				}
				tc.Isolation = ast.IsolationRepeatableRead
			case p.c.isKeyword("SERIALIZABLE"):
				p.c.next()
				tc.Isolation = ast.IsolationSerializable
			default:
				return tc, p.expected("isolation level")
			}
		case p.c.isKeyword("READ"):
			p.c.next()
			switch {
			case p.c.isKeyword("ONLY"):
				p.c.next()
				tc.AccessMode = ast.AccessModeReadOnly
			case p.c.isKeyword("WRITE"):
				p.c.next()
				tc.AccessMode = ast.AccessModeReadWrite
			default:
				return tc, p.expected("ONLY or WRITE")
			}
		default:
			return tc, nil
		}
		if _, ok := p.c.nextIfPunct(','); !ok {
			return tc, nil
		}
	}
}

func (p *parser) parseStartTransaction() (ast.Statement, error) {
	begin := p.c.isKeyword("BEGIN")
	p.c.next() // START/BEGIN
	if begin {
		p.c.nextIfKeyword("WORK")
		p.c.nextIfKeyword("TRANSACTION")
	} else {
		if _, ok := p.c.nextIfKeyword("TRANSACTION"); !ok {
			if _, ok := p.c.nextIfKeyword("WORK"); !ok {
				return nil, p.expected("TRANSACTION")
			}
		}
	}
	stmt := &ast.StartTransactionStatement{Begin: begin}
	if p.c.isKeyword("ISOLATION") || p.c.isKeyword("READ") {
		tc, err := p.parseTxCharacteristics()
		if err != nil {
			return nil, err
		}
		stmt.Characteristics = &tc
	}
	return stmt, nil
}

func (p *parser) parseSetTransaction() (ast.Statement, error) {
	p.c.next() // SET
	scope := ""
	switch {
	case p.c.isKeyword("GLOBAL"):
		p.c.next()
		scope = "GLOBAL"
	case p.c.isKeyword("SESSION"):
		p.c.next()
		scope = "SESSION"
	case p.c.isKeyword("LOCAL"):
		p.c.next()
		scope = "LOCAL"
	}
	if _, ok := p.c.nextIfKeyword("TRANSACTION"); !ok {
		return nil, p.expected("TRANSACTION")
	}
	tc, err := p.parseTxCharacteristics()
	if err != nil {
		return nil, err
	}
	return &ast.SetTransactionStatement{Scope: scope, Characteristics: tc}, nil
}

func (p *parser) parseCommit() (ast.Statement, error) {
	p.c.next() // COMMIT
	p.c.nextIfKeyword("WORK")
	stmt := &ast.CommitStatement{}
	if p.c.isKeyword("AND") {
		p.c.next()
		stmt.HasChain = true
		if _, ok := p.c.nextIfKeyword("NO"); ok {
			stmt.NoChain = true
		}
		if _, ok := p.c.nextIfKeyword("CHAIN"); !ok {
			return nil, p.expected("CHAIN")
		}
	}
	return stmt, nil
}

func (p *parser) parseRollback() (ast.Statement, error) {
	p.c.next() // ROLLBACK
	p.c.nextIfKeyword("WORK")
	stmt := &ast.RollbackStatement{}
	if _, ok := p.c.nextIfKeyword("TO"); ok {
		p.c.nextIfKeyword("SAVEPOINT")
		name, err := p.parseIdentSegment()
		if err != nil {
			return nil, p.expected("savepoint name")
		}
		stmt.ToSavepoint = name
		return stmt, nil
	}
	if p.c.isKeyword("AND") {
		p.c.next()
		stmt.HasChain = true
		if _, ok := p.c.nextIfKeyword("NO"); ok {
			stmt.NoChain = true
		}
		if _, ok := p.c.nextIfKeyword("CHAIN"); !ok {
			return nil, p.expected("CHAIN")
		}
	}
	return stmt, nil
}

func (p *parser) parseSavepoint() (ast.Statement, error) {
	p.c.next() // SAVEPOINT
	name, err := p.parseIdentSegment()
	if err != nil {
		return nil, p.expected("savepoint name")
	}
	return &ast.SavepointStatement{Name: name}, nil
}

func (p *parser) parseReleaseSavepoint() (ast.Statement, error) {
	p.c.next() // RELEASE
	p.c.nextIfKeyword("SAVEPOINT")
	name, err := p.parseIdentSegment()
	if err != nil {
		return nil, p.expected("savepoint name")
	}
	return &ast.ReleaseSavepointStatement{Name: name}, nil
}

func (p *parser) parseExplain() (ast.Statement, error) {
	p.c.next() // EXPLAIN
	p.c.nextIfKeyword("ANALYZE")
	inner, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.ExplainStatement{Stmt: inner}, nil
}

func (p *parser) parseCall() (ast.Statement, error) {
	p.c.next() // CALL
	name, err := p.parseCompoundIdent()
	if err != nil {
		return nil, err
	}
	stmt := &ast.CallStatement{Name: name}
	if _, ok := p.c.nextIfPunct('('); ok {
		if !p.c.isPunct(')') {
			args, err := p.parseExprList()
			if err != nil {
				return nil, err
			}
			stmt.Args = args
		}
		if _, ok := p.c.nextIfPunct(')'); !ok {
			return nil, p.expected(")")
		}
	}
	return stmt, nil
}
