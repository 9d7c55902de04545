package parser_test

import (
	"testing"

	"github.com/oarkflow/usql/ast"
	"github.com/oarkflow/usql/dialect"
	"github.com/oarkflow/usql/parser"
)

func mustParseStatement(t *testing.T, d *dialect.Dialect, sql string) ast.Statement {
	t.Helper()
	stmt, err := parser.ParseStatement(d, sql)
	if err != nil {
		t.Fatalf("parse error: %v\nSQL: %s", err, sql)
	}
	return stmt
}

func mustParseQuery(t *testing.T, d *dialect.Dialect, sql string) *ast.Query {
	t.Helper()
	q, err := parser.ParseQuery(d, sql)
	if err != nil {
		t.Fatalf("parse error: %v\nSQL: %s", err, sql)
	}
	return q
}

func mustParseExpr(t *testing.T, d *dialect.Dialect, sql string) ast.Expr {
	t.Helper()
	e, err := parser.ParseExpr(d, sql)
	if err != nil {
		t.Fatalf("parse error: %v\nSQL: %s", err, sql)
	}
	return e
}

// assertStmtRoundTrip checks property P1 for statements: rendering n as
// text and re-parsing it under the same dialect yields an AST whose
// canonical text is stable under a second render.
func assertStmtRoundTrip(t *testing.T, d *dialect.Dialect, n ast.Statement) {
	t.Helper()
	text := parser.Render(n)
	again, err := parser.ParseStatement(d, text)
	if err != nil {
		t.Fatalf("round-trip reparse failed on %q: %v", text, err)
	}
	if text2 := parser.Render(again); text != text2 {
		t.Fatalf("round-trip mismatch:\nfirst:  %s\nsecond: %s", text, text2)
	}
}

// ---- SELECT ----

func TestSelectSimple(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "SELECT 1")
	sel, ok := stmt.(*ast.SelectStatement)
	if !ok {
		t.Fatalf("expected *SelectStatement, got %T", stmt)
	}
	qs, ok := sel.Query.Body.(*ast.QuerySpec)
	if !ok {
		t.Fatalf("expected *QuerySpec body, got %T", sel.Query.Body)
	}
	if len(qs.Items) != 1 {
		t.Fatalf("expected 1 select item, got %d", len(qs.Items))
	}
	assertStmtRoundTrip(t, dialect.ANSI(), stmt)
}

func TestSelectStar(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "SELECT * FROM users")
	assertStmtRoundTrip(t, dialect.ANSI(), stmt)
}

func TestSelectMultiColAndAlias(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "SELECT id, name AS n, email FROM users")
	sel := stmt.(*ast.SelectStatement)
	qs := sel.Query.Body.(*ast.QuerySpec)
	if len(qs.Items) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(qs.Items))
	}
	if qs.Items[1].Alias == nil || qs.Items[1].Alias.Name != "n" {
		t.Fatalf("expected alias n, got %+v", qs.Items[1].Alias)
	}
}

func TestSelectWhere(t *testing.T) {
	mustParseStatement(t, dialect.ANSI(), "SELECT * FROM users WHERE id = 42 AND active = TRUE")
}

func TestSelectJoin(t *testing.T) {
	stmt := mustParseStatement(t, dialect.Postgres(), `
		SELECT u.id, o.total
		FROM users u
		INNER JOIN orders o ON u.id = o.user_id
		WHERE o.total > 100
		ORDER BY o.total DESC
		LIMIT 10`)
	assertStmtRoundTrip(t, dialect.Postgres(), stmt)
}

func TestAnsiRejectsLimitClause(t *testing.T) {
	_, err := parser.ParseStatement(dialect.ANSI(), "SELECT * FROM t LIMIT 10")
	if err == nil {
		t.Fatalf("expected ANSI to reject a LIMIT clause")
	}
}

func TestSelectNaturalJoin(t *testing.T) {
	mustParseStatement(t, dialect.MySQL(), "SELECT * FROM a NATURAL LEFT JOIN b")
}

func TestSelectJoinUsing(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "SELECT * FROM a JOIN b USING (id, kind)")
	sel := stmt.(*ast.SelectStatement)
	qs := sel.Query.Body.(*ast.QuerySpec)
	join := qs.From[0].Joins[0]
	if join.Constraint.Kind != ast.ConstraintUsing || len(join.Constraint.Using) != 2 {
		t.Fatalf("expected USING(id, kind), got %+v", join.Constraint)
	}
}

func TestSelectSubquery(t *testing.T) {
	mustParseStatement(t, dialect.ANSI(), `
		SELECT * FROM (
			SELECT id, name FROM users WHERE active = 1
		) sub WHERE sub.name LIKE 'A%'`)
}

func TestSelectCTE(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), `
		WITH active_users AS (
			SELECT id, name FROM users WHERE active = 1
		)
		SELECT * FROM active_users`)
	assertStmtRoundTrip(t, dialect.ANSI(), stmt)
}

func TestSelectRecursiveCTE(t *testing.T) {
	mustParseStatement(t, dialect.MySQL(), `
		WITH RECURSIVE t(n) AS (
			SELECT 1
			UNION ALL
			SELECT n + 1 FROM t WHERE n < 10
		)
		SELECT n FROM t`)
}

func TestSelfReferencingCTERequiresRecursiveKeyword(t *testing.T) {
	_, err := parser.ParseStatement(dialect.MySQL(), `
		WITH t(n) AS (
			SELECT 1
			UNION ALL
			SELECT n + 1 FROM t WHERE n < 10
		)
		SELECT n FROM t`)
	if err == nil {
		t.Fatalf("expected a self-referencing CTE without RECURSIVE to be rejected")
	}
}

func TestNonRecursiveCTEWithoutRecursiveKeywordIsFine(t *testing.T) {
	mustParseStatement(t, dialect.MySQL(), `
		WITH active_users AS (
			SELECT id, name FROM users WHERE active = 1
		)
		SELECT * FROM active_users`)
}

func TestSelectGroupByRollup(t *testing.T) {
	mustParseStatement(t, dialect.ANSI(), "SELECT a, b, COUNT(*) FROM t GROUP BY ROLLUP (a, b)")
}

func TestSelectGroupByEmptyGroupingSet(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "SELECT COUNT(*) FROM t GROUP BY ()")
	sel := stmt.(*ast.SelectStatement)
	qs := sel.Query.Body.(*ast.QuerySpec)
	if qs.GroupBy == nil || len(qs.GroupBy.Elements) != 1 || qs.GroupBy.Elements[0].Kind != ast.GroupingEmpty {
		t.Fatalf("expected one empty grouping element, got %+v", qs.GroupBy)
	}
}

func TestSelectGroupByParenColumnList(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "SELECT a, b FROM t GROUP BY (a, b)")
	sel := stmt.(*ast.SelectStatement)
	qs := sel.Query.Body.(*ast.QuerySpec)
	if qs.GroupBy == nil || len(qs.GroupBy.Elements) != 1 || qs.GroupBy.Elements[0].Kind != ast.GroupingColumns {
		t.Fatalf("expected one column-list grouping element, got %+v", qs.GroupBy)
	}
	if len(qs.GroupBy.Elements[0].Columns) != 2 {
		t.Fatalf("expected 2 columns in grouping element, got %d", len(qs.GroupBy.Elements[0].Columns))
	}
}

func TestSelectWindow(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), `
		SELECT name, SUM(amount) OVER (
			PARTITION BY dept ORDER BY amount
			ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW
		) FROM sales`)
	assertStmtRoundTrip(t, dialect.ANSI(), stmt)
}

func TestSelectNamedWindow(t *testing.T) {
	mustParseStatement(t, dialect.ANSI(), `
		SELECT name, RANK() OVER w FROM sales
		WINDOW w AS (PARTITION BY dept ORDER BY amount DESC)`)
}

func TestFetchAndOffset(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "SELECT * FROM t ORDER BY id OFFSET 5 ROWS FETCH FIRST 10 ROWS ONLY")
	assertStmtRoundTrip(t, dialect.ANSI(), stmt)
}

// P8: a query AST never carries both LIMIT and FETCH.
func TestLimitFetchMutuallyExclusive(t *testing.T) {
	_, err := parser.ParseStatement(dialect.Postgres(), "SELECT * FROM t LIMIT 5 FETCH FIRST 10 ROWS ONLY")
	if err == nil {
		t.Fatalf("expected error for LIMIT followed by FETCH")
	}
	want := "OFFSET clause expected, LIMIT or FETCH already set"
	if !containsSubstring(err.Error(), want) {
		t.Fatalf("expected error containing %q, got %q", want, err.Error())
	}
}

func containsSubstring(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

// P4: "A UNION B INTERSECT C" parses with INTERSECT as the inner operator
// under every supplied dialect.
func TestSetOpPrecedence(t *testing.T) {
	for _, d := range []*dialect.Dialect{dialect.ANSI(), dialect.MySQL(), dialect.Postgres(), dialect.SQLite()} {
		q := mustParseQuery(t, d, "SELECT a FROM x UNION SELECT b FROM y INTERSECT SELECT c FROM z")
		top, ok := q.Body.(*ast.SetOperation)
		if !ok {
			t.Fatalf("[%s] expected top-level SetOperation, got %T", d.Name, q.Body)
		}
		if top.Op != ast.SetOpUnion {
			t.Fatalf("[%s] expected top-level UNION, got %s", d.Name, top.Op)
		}
		right, ok := top.Right.(*ast.SetOperation)
		if !ok || right.Op != ast.SetOpIntersect {
			t.Fatalf("[%s] expected INTERSECT as the inner operator, got %+v", d.Name, top.Right)
		}
	}
}

func TestSetOpExceptLeftAssociative(t *testing.T) {
	q := mustParseQuery(t, dialect.ANSI(), "SELECT a FROM x EXCEPT SELECT b FROM y EXCEPT SELECT c FROM z")
	top, ok := q.Body.(*ast.SetOperation)
	if !ok || top.Op != ast.SetOpExcept {
		t.Fatalf("expected top-level EXCEPT, got %T", q.Body)
	}
	if _, ok := top.Left.(*ast.SetOperation); !ok {
		t.Fatalf("expected left-associative nesting on the left, got %+v", top.Left)
	}
}

// ---- expressions ----

// P5: "x NOT BETWEEN a AND b" is a single Between node with Negate=true,
// never a UnaryOp NOT wrapping a Between.
func TestNotBetweenAttachment(t *testing.T) {
	e := mustParseExpr(t, dialect.ANSI(), "x NOT BETWEEN 1 AND 10")
	between, ok := e.(*ast.Between)
	if !ok {
		t.Fatalf("expected *Between, got %T", e)
	}
	if !between.Negate {
		t.Fatalf("expected Negate=true")
	}
}

func TestNotInAttachment(t *testing.T) {
	e := mustParseExpr(t, dialect.ANSI(), "x NOT IN (1, 2, 3)")
	in, ok := e.(*ast.InList)
	if !ok || !in.Negate {
		t.Fatalf("expected negated *InList, got %+v", e)
	}
}

func TestBetweenDoesNotSwallowOuterAnd(t *testing.T) {
	e := mustParseExpr(t, dialect.ANSI(), "x BETWEEN 1 AND 2 AND y")
	top, ok := e.(*ast.BinaryOp)
	if !ok || top.Op != "AND" {
		t.Fatalf("expected outer AND BinaryOp, got %+v", e)
	}
	if _, ok := top.Left.(*ast.Between); !ok {
		t.Fatalf("expected Between on the left of outer AND, got %T", top.Left)
	}
}

func TestIsNotDistinctFrom(t *testing.T) {
	e := mustParseExpr(t, dialect.ANSI(), "a IS NOT DISTINCT FROM b")
	idf, ok := e.(*ast.IsDistinctFrom)
	if !ok || !idf.Negate {
		t.Fatalf("expected negated *IsDistinctFrom, got %+v", e)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	e := mustParseExpr(t, dialect.ANSI(), "1 + 2 * 3")
	bin, ok := e.(*ast.BinaryOp)
	if !ok || bin.Op != "+" {
		t.Fatalf("expected top-level +, got %+v", e)
	}
	if _, ok := bin.Right.(*ast.BinaryOp); !ok {
		t.Fatalf("expected nested * on the right, got %T", bin.Right)
	}
}

func TestUnaryMinusBindsTighterThanMul(t *testing.T) {
	e := mustParseExpr(t, dialect.ANSI(), "-1 * 2")
	bin, ok := e.(*ast.BinaryOp)
	if !ok || bin.Op != "*" {
		t.Fatalf("expected top-level *, got %+v", e)
	}
	if _, ok := bin.Left.(*ast.UnaryOp); !ok {
		t.Fatalf("expected UnaryOp on the left, got %T", bin.Left)
	}
}

func TestCaseExpr(t *testing.T) {
	e := mustParseExpr(t, dialect.ANSI(), "CASE x WHEN 1 THEN 'one' WHEN 2 THEN 'two' ELSE 'other' END")
	c, ok := e.(*ast.Case)
	if !ok || len(c.Whens) != 2 || c.Else == nil {
		t.Fatalf("unexpected CASE shape: %+v", c)
	}
}

func TestCastAndTryCast(t *testing.T) {
	mustParseExpr(t, dialect.ANSI(), "CAST(x AS INTEGER)")
	mustParseExpr(t, dialect.ANSI(), "TRY_CAST(x AS VARCHAR(10))")
}

func TestCastOperatorShorthand(t *testing.T) {
	e := mustParseExpr(t, dialect.Postgres(), "x::int")
	cast, ok := e.(*ast.Cast)
	if !ok || cast.Type.Name != "INT" {
		t.Fatalf("expected Cast to INT, got %+v", e)
	}
}

func TestExtractSubstringTrim(t *testing.T) {
	mustParseExpr(t, dialect.ANSI(), "EXTRACT(YEAR FROM order_date)")
	mustParseExpr(t, dialect.ANSI(), "SUBSTRING(name FROM 1 FOR 3)")
	mustParseExpr(t, dialect.ANSI(), "SUBSTRING(name, 1, 3)")
	mustParseExpr(t, dialect.ANSI(), "TRIM(BOTH ' ' FROM name)")
	mustParseExpr(t, dialect.ANSI(), "TRIM(name)")
}

func TestListAggWithinGroup(t *testing.T) {
	e := mustParseExpr(t, dialect.ANSI(), "LISTAGG(name, ', ') WITHIN GROUP (ORDER BY name)")
	la, ok := e.(*ast.ListAgg)
	if !ok || la.Separator == nil || len(la.OrderBy) != 1 {
		t.Fatalf("unexpected LISTAGG shape: %+v", la)
	}
}

func TestIntervalFractionalSeconds(t *testing.T) {
	e := mustParseExpr(t, dialect.ANSI(), "INTERVAL '10' SECOND(3)")
	iv, ok := e.(*ast.Interval)
	if !ok || !iv.HasFractionalSecondsPrec || iv.FractionalSecondsPrec != 3 {
		t.Fatalf("unexpected INTERVAL shape: %+v", iv)
	}
}

func TestIntervalRange(t *testing.T) {
	e := mustParseExpr(t, dialect.ANSI(), "INTERVAL '1-2' YEAR TO MONTH")
	iv, ok := e.(*ast.Interval)
	if !ok || !iv.HasTrailing || iv.Trailing != ast.IntervalMonth {
		t.Fatalf("unexpected INTERVAL shape: %+v", iv)
	}
}

func TestTypedDateLiteral(t *testing.T) {
	e := mustParseExpr(t, dialect.ANSI(), "DATE '2024-01-01'")
	ts, ok := e.(*ast.TypedString)
	if !ok || ts.Type.Name != "DATE" {
		t.Fatalf("unexpected typed string: %+v", e)
	}
}

func TestFunctionCallNamedArgsAndDistinct(t *testing.T) {
	e := mustParseExpr(t, dialect.ANSI(), "make_point(x => 1, y => 2)")
	fc, ok := e.(*ast.FunctionCall)
	if !ok || len(fc.Args) != 2 || fc.Args[0].Name != "x" {
		t.Fatalf("unexpected function call shape: %+v", e)
	}
	e2 := mustParseExpr(t, dialect.ANSI(), "COUNT(DISTINCT id)")
	fc2 := e2.(*ast.FunctionCall)
	if !fc2.Distinct {
		t.Fatalf("expected DISTINCT flag set")
	}
}

func TestPostfixIndex(t *testing.T) {
	e := mustParseExpr(t, dialect.Postgres(), "arr[1]")
	if _, ok := e.(*ast.Index); !ok {
		t.Fatalf("expected *Index, got %+v", e)
	}
}

func TestCollatePostfix(t *testing.T) {
	e := mustParseExpr(t, dialect.ANSI(), "name COLLATE utf8_bin")
	col, ok := e.(*ast.Collate)
	if !ok || col.Name != "utf8_bin" {
		t.Fatalf("unexpected COLLATE shape: %+v", e)
	}
}

func TestExprRoundTrip(t *testing.T) {
	exprs := []string{
		"1 + 2 * 3",
		"a AND b OR c",
		"NOT a AND b",
		"x NOT BETWEEN 1 AND 10",
		"CASE WHEN a THEN 1 ELSE 2 END",
		"f(a, b, c)",
		"a.b.c",
	}
	for _, src := range exprs {
		e := mustParseExpr(t, dialect.ANSI(), src)
		text := parser.Render(e)
		again, err := parser.ParseExpr(dialect.ANSI(), text)
		if err != nil {
			t.Fatalf("round-trip reparse of %q (rendered from %q) failed: %v", text, src, err)
		}
		if text2 := parser.Render(again); text != text2 {
			t.Fatalf("round-trip mismatch for %q:\nfirst:  %s\nsecond: %s", src, text, text2)
		}
	}
}

// ---- DML ----

func TestInsertValues(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "INSERT INTO users (id, name) VALUES (1, 'alice'), (2, 'bob')")
	ins, ok := stmt.(*ast.InsertStatement)
	if !ok || len(ins.Rows) != 2 {
		t.Fatalf("unexpected insert shape: %+v", stmt)
	}
	assertStmtRoundTrip(t, dialect.ANSI(), stmt)
}

func TestInsertSelect(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "INSERT INTO archive SELECT * FROM users WHERE active = 0")
	ins := stmt.(*ast.InsertStatement)
	if ins.Query == nil {
		t.Fatalf("expected Query set on INSERT ... SELECT")
	}
}

func TestInsertDefaultValues(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "INSERT INTO logs DEFAULT VALUES")
	ins := stmt.(*ast.InsertStatement)
	if !ins.DefaultValues {
		t.Fatalf("expected DefaultValues=true, got %+v", ins)
	}
}

func TestInsertOnConflictDoNothing(t *testing.T) {
	stmt := mustParseStatement(t, dialect.Postgres(), "INSERT INTO users (id) VALUES (1) ON CONFLICT (id) DO NOTHING")
	ins := stmt.(*ast.InsertStatement)
	if ins.OnConflict == nil || !ins.OnConflict.Action.DoNothing {
		t.Fatalf("expected ON CONFLICT DO NOTHING, got %+v", ins.OnConflict)
	}
}

func TestInsertOnConflictDoUpdate(t *testing.T) {
	stmt := mustParseStatement(t, dialect.Postgres(),
		"INSERT INTO users (id, name) VALUES (1, 'a') ON CONFLICT (id) DO UPDATE SET name = 'a'")
	ins := stmt.(*ast.InsertStatement)
	if ins.OnConflict == nil || len(ins.OnConflict.Action.Updates) != 1 {
		t.Fatalf("expected ON CONFLICT DO UPDATE SET, got %+v", ins.OnConflict)
	}
}

func TestInsertOnDuplicateKeyUpdate(t *testing.T) {
	stmt := mustParseStatement(t, dialect.MySQL(),
		"INSERT INTO users (id, name) VALUES (1, 'a') ON DUPLICATE KEY UPDATE name = 'a'")
	ins := stmt.(*ast.InsertStatement)
	if len(ins.OnDuplicateKey) != 1 {
		t.Fatalf("expected ON DUPLICATE KEY UPDATE, got %+v", ins.OnDuplicateKey)
	}
}

func TestDelete(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "DELETE FROM users AS u WHERE u.id = 1")
	del, ok := stmt.(*ast.DeleteStatement)
	if !ok || del.Alias == nil || del.Where == nil {
		t.Fatalf("unexpected delete shape: %+v", stmt)
	}
	assertStmtRoundTrip(t, dialect.ANSI(), stmt)
}

func TestUpdate(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "UPDATE users SET active = 0, name = 'x' WHERE id = 1")
	upd, ok := stmt.(*ast.UpdateStatement)
	if !ok || len(upd.Set) != 2 {
		t.Fatalf("unexpected update shape: %+v", stmt)
	}
	assertStmtRoundTrip(t, dialect.ANSI(), stmt)
}

// ---- DDL ----

func TestCreateTableFull(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), `
		CREATE TABLE IF NOT EXISTS orders (
			id INTEGER NOT NULL PRIMARY KEY,
			customer_id INTEGER NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
			total DECIMAL(10, 2) DEFAULT 0,
			status VARCHAR(20) NOT NULL,
			CONSTRAINT uq_orders_ref UNIQUE (customer_id, id),
			CHECK (total >= 0)
		)`)
	ct, ok := stmt.(*ast.CreateTableStatement)
	if !ok || !ct.IfNotExists || len(ct.Columns) != 4 || len(ct.Constraints) != 2 {
		t.Fatalf("unexpected create-table shape: %+v", stmt)
	}
	assertStmtRoundTrip(t, dialect.ANSI(), stmt)
}

func TestCreateTableAsSelect(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "CREATE TABLE t2 AS SELECT * FROM t1")
	ct := stmt.(*ast.CreateTableStatement)
	if ct.AsQuery == nil {
		t.Fatalf("expected AsQuery set")
	}
}

func TestAlterTableCommands(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), `
		ALTER TABLE orders
			ADD COLUMN note TEXT,
			DROP COLUMN status,
			RENAME COLUMN total TO grand_total,
			RENAME TO purchase_orders`)
	at, ok := stmt.(*ast.AlterTableStatement)
	if !ok || len(at.Commands) != 4 {
		t.Fatalf("unexpected alter-table shape: %+v", stmt)
	}
	assertStmtRoundTrip(t, dialect.ANSI(), stmt)
}

func TestDropTableCascade(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "DROP TABLE IF EXISTS a, b CASCADE")
	drop, ok := stmt.(*ast.DropStatement)
	if !ok || !drop.IfExists || len(drop.Names) != 2 || drop.Behavior != ast.DropBehaviorCascade {
		t.Fatalf("unexpected drop shape: %+v", stmt)
	}
}

func TestCreateIndex(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "CREATE UNIQUE INDEX idx_users_email ON users (email DESC, id)")
	ci, ok := stmt.(*ast.CreateIndexStatement)
	if !ok || !ci.Unique || len(ci.Columns) != 2 {
		t.Fatalf("unexpected create-index shape: %+v", stmt)
	}
	assertStmtRoundTrip(t, dialect.ANSI(), stmt)
}

func TestDropIndexMySQLOnTable(t *testing.T) {
	stmt := mustParseStatement(t, dialect.MySQL(), "DROP INDEX idx_users_email ON users")
	di, ok := stmt.(*ast.DropIndexStatement)
	if !ok || di.Table == nil {
		t.Fatalf("unexpected drop-index shape: %+v", stmt)
	}
}

func TestDropIndexPostgresIfExists(t *testing.T) {
	stmt := mustParseStatement(t, dialect.Postgres(), "DROP INDEX IF EXISTS idx_users_email")
	di, ok := stmt.(*ast.DropIndexStatement)
	if !ok || !di.IfExists || di.Table != nil {
		t.Fatalf("unexpected drop-index shape: %+v", stmt)
	}
}

func TestCreateView(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "CREATE OR REPLACE VIEW active_users AS SELECT * FROM users WHERE active = 1")
	cv, ok := stmt.(*ast.CreateViewStatement)
	if !ok || !cv.OrReplace {
		t.Fatalf("unexpected create-view shape: %+v", stmt)
	}
	assertStmtRoundTrip(t, dialect.ANSI(), stmt)
}

func TestCreateDatabaseAndSchema(t *testing.T) {
	mustParseStatement(t, dialect.ANSI(), "CREATE DATABASE IF NOT EXISTS shop")
	mustParseStatement(t, dialect.ANSI(), "CREATE SCHEMA IF NOT EXISTS shop")
	mustParseStatement(t, dialect.ANSI(), "ALTER DATABASE shop RENAME TO store")
}

func TestCreateDomain(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "CREATE DOMAIN positive_int AS INTEGER DEFAULT 0 CHECK (VALUE > 0)")
	cd, ok := stmt.(*ast.CreateDomainStatement)
	if !ok || cd.Default == nil || cd.Check == nil {
		t.Fatalf("unexpected create-domain shape: %+v", stmt)
	}
}

func TestCreateTypeComposite(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "CREATE TYPE point AS (x INTEGER, y INTEGER)")
	ct, ok := stmt.(*ast.CreateTypeStatement)
	if !ok || len(ct.Fields) != 2 {
		t.Fatalf("unexpected create-type shape: %+v", stmt)
	}
}

func TestCreateTypeEnum(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "CREATE TYPE mood AS ENUM ('sad', 'ok', 'happy')")
	ct, ok := stmt.(*ast.CreateTypeStatement)
	if !ok || len(ct.EnumLabels) != 3 {
		t.Fatalf("unexpected create-type shape: %+v", stmt)
	}
}

// ---- transactions ----

func TestStartTransactionWithCharacteristics(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "START TRANSACTION ISOLATION LEVEL SERIALIZABLE, READ ONLY")
	st, ok := stmt.(*ast.StartTransactionStatement)
	if !ok || st.Characteristics == nil || st.Characteristics.Isolation != ast.IsolationSerializable {
		t.Fatalf("unexpected start-transaction shape: %+v", stmt)
	}
}

func TestBeginBare(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "BEGIN")
	st, ok := stmt.(*ast.StartTransactionStatement)
	if !ok || !st.Begin {
		t.Fatalf("unexpected begin shape: %+v", stmt)
	}
}

func TestSetTransactionRequiresCharacteristics(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "SET SESSION TRANSACTION ISOLATION LEVEL READ COMMITTED")
	st, ok := stmt.(*ast.SetTransactionStatement)
	if !ok || st.Scope != "SESSION" || st.Characteristics.Isolation != ast.IsolationReadCommitted {
		t.Fatalf("unexpected set-transaction shape: %+v", stmt)
	}
}

func TestCommitAndChain(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "COMMIT AND CHAIN")
	c, ok := stmt.(*ast.CommitStatement)
	if !ok || !c.HasChain || c.NoChain {
		t.Fatalf("unexpected commit shape: %+v", stmt)
	}
}

func TestCommitAndNoChain(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "COMMIT AND NO CHAIN")
	c, ok := stmt.(*ast.CommitStatement)
	if !ok || !c.HasChain || !c.NoChain {
		t.Fatalf("unexpected commit shape: %+v", stmt)
	}
}

func TestRollbackToSavepoint(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "ROLLBACK TO SAVEPOINT sp1")
	r, ok := stmt.(*ast.RollbackStatement)
	if !ok || r.ToSavepoint == nil || r.ToSavepoint.Name != "sp1" {
		t.Fatalf("unexpected rollback shape: %+v", stmt)
	}
}

func TestSavepointAndRelease(t *testing.T) {
	mustParseStatement(t, dialect.ANSI(), "SAVEPOINT sp1")
	mustParseStatement(t, dialect.ANSI(), "RELEASE SAVEPOINT sp1")
}

// ---- EXPLAIN / CALL ----

func TestExplainSelect(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "EXPLAIN SELECT * FROM users")
	ex, ok := stmt.(*ast.ExplainStatement)
	if !ok {
		t.Fatalf("expected *ExplainStatement, got %T", stmt)
	}
	if _, ok := ex.Stmt.(*ast.SelectStatement); !ok {
		t.Fatalf("expected wrapped SelectStatement, got %T", ex.Stmt)
	}
}

func TestExplainAnalyze(t *testing.T) {
	mustParseStatement(t, dialect.Postgres(), "EXPLAIN ANALYZE SELECT * FROM users")
}

func TestCallProcedure(t *testing.T) {
	stmt := mustParseStatement(t, dialect.ANSI(), "CALL rebuild_index('users', 5)")
	c, ok := stmt.(*ast.CallStatement)
	if !ok || len(c.Args) != 2 {
		t.Fatalf("unexpected call shape: %+v", stmt)
	}
}

// ---- error handling ----

func TestParseErrorFormat(t *testing.T) {
	_, err := parser.ParseStatement(dialect.ANSI(), "SELECT FROM")
	if err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestTrailingGarbageIsError(t *testing.T) {
	_, err := parser.ParseStatement(dialect.ANSI(), "SELECT 1; SELECT 2")
	if err == nil {
		t.Fatalf("expected trailing input after first statement to be an error")
	}
}
