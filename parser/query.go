package parser

import (
	"strings"

	"github.com/oarkflow/usql/ast"
	"github.com/oarkflow/usql/token"
)

// parseQuery implements the <query> production of spec.md §4.6 in its
// fixed parse order: WITH, body (set-operation tree), ORDER BY, then
// OFFSET/LIMIT/FETCH in any order with LIMIT and FETCH mutually
// exclusive.
func (p *parser) parseQuery() (*ast.Query, error) {
	q := &ast.Query{}

	if p.c.isKeyword("WITH") {
		with, err := p.parseWith()
		if err != nil {
			return nil, err
		}
		q.With = with
	}

	body, err := p.parseSetOp(0)
	if err != nil {
		return nil, err
	}
	q.Body = body

	if _, ok := p.c.nextIfKeyword("ORDER"); ok {
		if _, ok := p.c.nextIfKeyword("BY"); !ok {
			return nil, p.expected("BY")
		}
		items, err := p.parseOrderByList()
		if err != nil {
			return nil, err
		}
		q.OrderBy = items
	}

	haveLimit, haveFetch := false, false
	for {
		switch {
		case p.c.isKeyword("OFFSET"):
			off, err := p.parseOffset()
			if err != nil {
				return nil, err
			}
			q.Offset = off
		case p.c.isKeyword("LIMIT"):
			if !p.d.Parser.AllowLimitClause {
				return nil, p.errorf("LIMIT clause not supported by dialect %s", p.d.Name)
			}
			if haveFetch {
				return nil, p.errorf("OFFSET clause expected, LIMIT or FETCH already set")
			}
			lim, err := p.parseLimit()
			if err != nil {
				return nil, err
			}
			q.Limit = lim
			haveLimit = true
		case p.c.isKeyword("FETCH"):
			if haveLimit {
				return nil, p.errorf("OFFSET clause expected, LIMIT or FETCH already set")
			}
			fetch, err := p.parseFetch()
			if err != nil {
				return nil, err
			}
			q.Fetch = fetch
			haveFetch = true
		default:
			return q, nil
		}
	}
}

func (p *parser) parseWith() (*ast.With, error) {
	p.c.next() // WITH
	w := &ast.With{}
	if _, ok := p.c.nextIfKeyword("RECURSIVE"); ok {
		w.Recursive = true
	}
	for {
		cte, err := p.parseCTE()
		if err != nil {
			return nil, err
		}
		w.CTEs = append(w.CTEs, cte)
		if _, ok := p.c.nextIfPunct(','); !ok {
			break
		}
	}
	if !w.Recursive && p.d.Parser.RecursiveCTEKeywordRequired {
		for _, cte := range w.CTEs {
			if cte.Name != nil && queryBodyReferencesTable(cte.Query.Body, cte.Name.Name) {
				return nil, p.errorf("RECURSIVE keyword required: CTE %q references itself", cte.Name.Name)
			}
		}
	}
	return w, nil
}

// queryBodyReferencesTable reports whether body's FROM/JOIN tree
// contains a named table matching name (case-insensitive), without
// descending into subqueries (a derived table establishes its own
// scope, so a reference inside one is not a self-reference of the
// enclosing CTE).
func queryBodyReferencesTable(body ast.QueryBody, name string) bool {
	switch b := body.(type) {
	case *ast.QuerySpec:
		for _, t := range b.From {
			if tableRefReferencesTable(t, name) {
				return true
			}
		}
		return false
	case *ast.SetOperation:
		return queryBodyReferencesTable(b.Left, name) || queryBodyReferencesTable(b.Right, name)
	default:
		return false
	}
}

func tableRefReferencesTable(t ast.TableRefWithJoins, name string) bool {
	if tableFactorReferencesTable(t.Factor, name) {
		return true
	}
	for _, j := range t.Joins {
		if tableFactorReferencesTable(j.Factor, name) {
			return true
		}
	}
	return false
}

func tableFactorReferencesTable(f ast.TableFactor, name string) bool {
	switch tf := f.(type) {
	case *ast.NamedTable:
		if tf.Name == nil || len(tf.Name.Parts) == 0 {
			return false
		}
		last := tf.Name.Parts[len(tf.Name.Parts)-1]
		return strings.EqualFold(last.Name, name)
	case *ast.NestedJoin:
		if tf.TableRefWithJoins == nil {
			return false
		}
		return tableRefReferencesTable(*tf.TableRefWithJoins, name)
	default:
		return false
	}
}

func (p *parser) parseCTE() (ast.CTE, error) {
	name, err := p.parseIdentSegment()
	if err != nil {
		return ast.CTE{}, p.expected("CTE name")
	}
	cte := ast.CTE{Name: name}
	if _, ok := p.c.nextIfPunct('('); ok {
		for {
			col, err := p.parseIdentSegment()
			if err != nil {
				return ast.CTE{}, err
			}
			cte.Columns = append(cte.Columns, col)
			if _, ok := p.c.nextIfPunct(','); !ok {
				break
			}
		}
		if _, ok := p.c.nextIfPunct(')'); !ok {
			return ast.CTE{}, p.expected(")")
		}
	}
	if _, ok := p.c.nextIfKeyword("AS"); !ok {
		return ast.CTE{}, p.expected("AS")
	}
	if _, ok := p.c.nextIfPunct('('); !ok {
		return ast.CTE{}, p.expected("(")
	}
	q, err := p.parseQuery()
	if err != nil {
		return ast.CTE{}, err
	}
	if _, ok := p.c.nextIfPunct(')'); !ok {
		return ast.CTE{}, p.expected(")")
	}
	cte.Query = q
	return cte, nil
}

// Set-operation precedence: INTERSECT (20) binds tighter than UNION/EXCEPT
// (10), all left-associative, so "A UNION B INTERSECT C" parses with
// INTERSECT as the inner operator (P4).
const (
	precUnionExcept = 10
	precIntersect   = 20
)

func (p *parser) setOpPrec() (ast.SetOp, int, bool) {
	switch {
	case p.c.isKeyword("UNION"):
		return ast.SetOpUnion, precUnionExcept, true
	case p.c.isKeyword("EXCEPT"):
		return ast.SetOpExcept, precUnionExcept, true
	case p.c.isKeyword("INTERSECT"):
		return ast.SetOpIntersect, precIntersect, true
	}
	return "", 0, false
}

func (p *parser) parseSetOp(minPrec int) (ast.QueryBody, error) {
	left, err := p.parseQueryPrimary()
	if err != nil {
		return nil, err
	}
	for {
		op, prec, ok := p.setOpPrec()
		if !ok || prec < minPrec {
			return left, nil
		}
		p.c.next() // UNION/EXCEPT/INTERSECT
		quant, err := p.parseOptionalQuantifier()
		if err != nil {
			return nil, err
		}
		right, err := p.parseSetOp(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.SetOperation{Op: op, Quantifier: quant, Left: left, Right: right}
	}
}

func (p *parser) parseOptionalQuantifier() (ast.SetQuantifier, error) {
	switch {
	case p.c.isKeyword("ALL"):
		p.c.next()
		return ast.QuantifierAll, nil
	case p.c.isKeyword("DISTINCT"):
		p.c.next()
		return ast.QuantifierDistinct, nil
	}
	return ast.QuantifierNone, nil
}

func (p *parser) parseQueryPrimary() (ast.QueryBody, error) {
	switch {
	case p.c.isKeyword("SELECT"):
		return p.parseQuerySpec()
	case p.c.isKeyword("VALUES"):
		return p.parseValues()
	case p.c.isKeyword("TABLE"):
		return p.parseExplicitTable()
	case p.c.isPunct('('):
		p.c.next()
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if _, ok := p.c.nextIfPunct(')'); !ok {
			return nil, p.expected(")")
		}
		return &ast.ParenQuery{Query: q}, nil
	}
	return nil, p.expected("SELECT, VALUES, TABLE or (")
}

func (p *parser) parseValues() (ast.QueryBody, error) {
	p.c.next() // VALUES
	v := &ast.Values{}
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
		v.Rows = append(v.Rows, row)
		if _, ok := p.c.nextIfPunct(','); !ok {
			break
		}
	}
	return v, nil
}

func (p *parser) parseExplicitTable() (ast.QueryBody, error) {
	p.c.next() // TABLE
	name, err := p.parseCompoundIdent()
	if err != nil {
		return nil, err
	}
	return &ast.ExplicitTable{Name: name}, nil
}

func (p *parser) parseCompoundIdent() (*ast.CompoundIdent, error) {
	first, err := p.parseIdentSegment()
	if err != nil {
		return nil, err
	}
	parts := []*ast.Ident{first}
	for p.c.isPunct('.') {
		p.c.next()
		seg, err := p.parseIdentSegment()
		if err != nil {
			return nil, err
		}
		parts = append(parts, seg)
	}
	return &ast.CompoundIdent{Parts: parts}, nil
}

func (p *parser) parseQuerySpec() (ast.QueryBody, error) {
	p.c.next() // SELECT
	qs := &ast.QuerySpec{}
	quant, err := p.parseOptionalQuantifier()
	if err != nil {
		return nil, err
	}
	qs.Quantifier = quant

	items, err := p.parseSelectItems()
	if err != nil {
		return nil, err
	}
	qs.Items = items

	if _, ok := p.c.nextIfKeyword("FROM"); ok {
		refs, err := p.parseTableRefList()
		if err != nil {
			return nil, err
		}
		qs.From = refs
	}

	if _, ok := p.c.nextIfKeyword("WHERE"); ok {
		where, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		qs.Where = where
	}

	if p.c.isKeyword("GROUP") {
		gb, err := p.parseGroupBy()
		if err != nil {
			return nil, err
		}
		qs.GroupBy = gb
	}

	if _, ok := p.c.nextIfKeyword("HAVING"); ok {
		having, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		qs.Having = having
	}

	if _, ok := p.c.nextIfKeyword("WINDOW"); ok {
		wins, err := p.parseNamedWindows()
		if err != nil {
			return nil, err
		}
		qs.Windows = wins
	}

	return qs, nil
}

func (p *parser) parseSelectItems() ([]ast.SelectItem, error) {
	var items []ast.SelectItem
	for {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if _, ok := p.c.nextIfPunct(','); !ok {
			return items, nil
		}
	}
}

func (p *parser) parseSelectItem() (ast.SelectItem, error) {
	e, err := p.parseExpr(0)
	if err != nil {
		return ast.SelectItem{}, err
	}
	item := ast.SelectItem{Expr: e}
	if _, ok := p.c.nextIfKeyword("AS"); ok {
		alias, err := p.parseIdentSegment()
		if err != nil {
			return ast.SelectItem{}, p.expected("alias")
		}
		item.Alias = alias
	} else if p.c.peek().Kind == token.Word && p.c.peek().Keyword == "" {
		alias, err := p.parseIdentSegment()
		if err != nil {
			return ast.SelectItem{}, err
		}
		item.Alias = alias
	}
	return item, nil
}

// parseTableRefList parses a comma-separated FROM list; each element is a
// primary table factor followed by a greedily-consumed stream of joins.
func (p *parser) parseTableRefList() ([]ast.TableRefWithJoins, error) {
	var refs []ast.TableRefWithJoins
	for {
		ref, err := p.parseTableRefWithJoins()
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
		if _, ok := p.c.nextIfPunct(','); !ok {
			return refs, nil
		}
	}
}

func (p *parser) parseTableRefWithJoins() (ast.TableRefWithJoins, error) {
	factor, err := p.parseTableFactor()
	if err != nil {
		return ast.TableRefWithJoins{}, err
	}
	t := ast.TableRefWithJoins{Factor: factor}
	for {
		join, ok, err := p.parseJoin()
		if err != nil {
			return ast.TableRefWithJoins{}, err
		}
		if !ok {
			return t, nil
		}
		t.Joins = append(t.Joins, join)
	}
}

// parseJoin implements the join dispatch table of spec.md §4.6: which
// lookahead combination of NATURAL/CROSS/INNER/LEFT/RIGHT/FULL/JOIN
// produces which Join, stopping (ok=false) once none match.
func (p *parser) parseJoin() (ast.Join, bool, error) {
	natural := false
	if p.d.Parser.AllowNaturalJoin && p.c.isKeyword("NATURAL") {
		natural = true
		p.c.next()
	}

	var kind ast.JoinKind
	outer := false
	switch {
	case p.c.isKeyword("CROSS"):
		p.c.next()
		if _, ok := p.c.nextIfKeyword("JOIN"); !ok {
			return ast.Join{}, false, p.expected("JOIN")
		}
		kind = ast.JoinCross
	case p.c.isKeyword("INNER"):
		p.c.next()
		if _, ok := p.c.nextIfKeyword("JOIN"); !ok {
			return ast.Join{}, false, p.expected("JOIN")
		}
		kind = ast.JoinInner
	case p.c.isKeyword("LEFT"):
		p.c.next()
		if _, ok := p.c.nextIfKeyword("OUTER"); ok {
			outer = true
		}
		if _, ok := p.c.nextIfKeyword("JOIN"); !ok {
			return ast.Join{}, false, p.expected("JOIN")
		}
		kind = ast.JoinLeft
	case p.c.isKeyword("RIGHT"):
		p.c.next()
		if _, ok := p.c.nextIfKeyword("OUTER"); ok {
			outer = true
		}
		if _, ok := p.c.nextIfKeyword("JOIN"); !ok {
			return ast.Join{}, false, p.expected("JOIN")
		}
		kind = ast.JoinRight
	case p.c.isKeyword("FULL"):
		p.c.next()
		if _, ok := p.c.nextIfKeyword("OUTER"); ok {
			outer = true
		}
		if _, ok := p.c.nextIfKeyword("JOIN"); !ok {
			return ast.Join{}, false, p.expected("JOIN")
		}
		kind = ast.JoinFull
	case p.c.isKeyword("JOIN"):
		p.c.next()
		kind = ast.JoinInner
	default:
		if natural {
			return ast.Join{}, false, p.expected("join type")
		}
		return ast.Join{}, false, nil
	}

	factor, err := p.parseTableFactor()
	if err != nil {
		return ast.Join{}, false, err
	}
	j := ast.Join{Natural: natural, Kind: kind, Outer: outer, Factor: factor}

	if natural || kind == ast.JoinCross {
		return j, true, nil
	}
	switch {
	case p.c.isKeyword("ON"):
		p.c.next()
		on, err := p.parseExpr(0)
		if err != nil {
			return ast.Join{}, false, err
		}
		j.Constraint = ast.JoinConstraint{Kind: ast.ConstraintOn, On: on}
	case p.c.isKeyword("USING"):
		p.c.next()
		if _, ok := p.c.nextIfPunct('('); !ok {
			return ast.Join{}, false, p.expected("(")
		}
		var cols []*ast.Ident
		for {
			col, err := p.parseIdentSegment()
			if err != nil {
				return ast.Join{}, false, err
			}
			cols = append(cols, col)
			if _, ok := p.c.nextIfPunct(','); !ok {
				break
			}
		}
		if _, ok := p.c.nextIfPunct(')'); !ok {
			return ast.Join{}, false, p.expected(")")
		}
		j.Constraint = ast.JoinConstraint{Kind: ast.ConstraintUsing, Using: cols}
	default:
		return ast.Join{}, false, p.expected("ON or USING")
	}
	return j, true, nil
}

func (p *parser) parseTableFactor() (ast.TableFactor, error) {
	lateral := false
	if p.c.isKeyword("LATERAL") {
		lateral = true
		p.c.next()
	}
	if p.c.isPunct('(') {
		n := p.c.peekNext()
		p.c.resetPeekCursor()
		if n.IsKeyword("SELECT") || n.IsKeyword("WITH") || n.IsKeyword("VALUES") || n.IsKeyword("TABLE") {
			p.c.next()
			q, err := p.parseQuery()
			if err != nil {
				return nil, err
			}
			if _, ok := p.c.nextIfPunct(')'); !ok {
				return nil, p.expected(")")
			}
			d := &ast.DerivedTable{Lateral: lateral, Query: q}
			alias, cols, err := p.parseOptionalTableAlias()
			if err != nil {
				return nil, err
			}
			d.Alias, d.Columns = alias, cols
			return d, nil
		}
		p.c.next() // '('
		nested, err := p.parseTableRefWithJoins()
		if err != nil {
			return nil, err
		}
		if _, ok := p.c.nextIfPunct(')'); !ok {
			return nil, p.expected(")")
		}
		return &ast.NestedJoin{TableRefWithJoins: &nested}, nil
	}

	name, err := p.parseCompoundIdent()
	if err != nil {
		return nil, err
	}
	t := &ast.NamedTable{Name: name}
	alias, cols, err := p.parseOptionalTableAlias()
	if err != nil {
		return nil, err
	}
	t.Alias, t.Columns = alias, cols
	return t, nil
}

func (p *parser) parseOptionalTableAlias() (*ast.Ident, []*ast.Ident, error) {
	hasAs := false
	if _, ok := p.c.nextIfKeyword("AS"); ok {
		hasAs = true
	}
	if p.c.peek().Kind != token.Word || p.c.peek().Keyword != "" {
		if hasAs {
			return nil, nil, p.expected("alias")
		}
		return nil, nil, nil
	}
	alias, err := p.parseIdentSegment()
	if err != nil {
		return nil, nil, err
	}
	var cols []*ast.Ident
	if _, ok := p.c.nextIfPunct('('); ok {
		for {
			col, err := p.parseIdentSegment()
			if err != nil {
				return nil, nil, err
			}
			cols = append(cols, col)
			if _, ok := p.c.nextIfPunct(','); !ok {
				break
			}
		}
		if _, ok := p.c.nextIfPunct(')'); !ok {
			return nil, nil, p.expected(")")
		}
	}
	return alias, cols, nil
}

// parseGroupBy implements spec.md §4.6's GROUP BY grammar, including the
// two-token lookahead that distinguishes "()" (the empty grouping
// element) from "(col, ...)" (an ordinary parenthesized column set).
func (p *parser) parseGroupBy() (*ast.GroupBy, error) {
	p.c.next() // GROUP
	if _, ok := p.c.nextIfKeyword("BY"); !ok {
		return nil, p.expected("BY")
	}
	gb := &ast.GroupBy{}
	quant, err := p.parseOptionalQuantifier()
	if err != nil {
		return nil, err
	}
	gb.Quantifier = quant
	for {
		el, err := p.parseGroupingElement()
		if err != nil {
			return nil, err
		}
		gb.Elements = append(gb.Elements, el)
		if _, ok := p.c.nextIfPunct(','); !ok {
			return gb, nil
		}
	}
}

func (p *parser) parseGroupingElement() (ast.GroupingElement, error) {
	switch {
	case p.c.isKeyword("ROLLUP"):
		p.c.next()
		cols, err := p.parseParenExprList()
		if err != nil {
			return ast.GroupingElement{}, err
		}
		return ast.GroupingElement{Kind: ast.GroupingRollup, Columns: cols}, nil
	case p.c.isKeyword("CUBE"):
		p.c.next()
		cols, err := p.parseParenExprList()
		if err != nil {
			return ast.GroupingElement{}, err
		}
		return ast.GroupingElement{Kind: ast.GroupingCube, Columns: cols}, nil
	case p.c.isKeyword("GROUPING"):
		p.c.next()
		if _, ok := p.c.nextIfKeyword("SETS"); !ok {
			return ast.GroupingElement{}, p.expected("SETS")
		}
		if _, ok := p.c.nextIfPunct('('); !ok {
			return ast.GroupingElement{}, p.expected("(")
		}
		var sets []ast.GroupingElement
		for {
			el, err := p.parseGroupingElement()
			if err != nil {
				return ast.GroupingElement{}, err
			}
			sets = append(sets, el)
			if _, ok := p.c.nextIfPunct(','); !ok {
				break
			}
		}
		if _, ok := p.c.nextIfPunct(')'); !ok {
			return ast.GroupingElement{}, p.expected(")")
		}
		return ast.GroupingElement{Kind: ast.GroupingSets, Sets: sets}, nil
	case p.c.isPunct('('):
		// Two-token lookahead to tell "()" (empty grouping set) from
		// "(col, ...)" (an ordinary parenthesized column list).
		n := p.c.peekNext()
		p.c.resetPeekCursor()
		if n.IsPunct(')') {
			p.c.next()
			p.c.next()
			return ast.GroupingElement{Kind: ast.GroupingEmpty}, nil
		}
		cols, err := p.parseParenExprList()
		if err != nil {
			return ast.GroupingElement{}, err
		}
		return ast.GroupingElement{Kind: ast.GroupingColumns, Columns: cols}, nil
	}
	e, err := p.parseExpr(0)
	if err != nil {
		return ast.GroupingElement{}, err
	}
	return ast.GroupingElement{Kind: ast.GroupingColumns, Columns: []ast.Expr{e}}, nil
}

func (p *parser) parseParenExprList() ([]ast.Expr, error) {
	if _, ok := p.c.nextIfPunct('('); !ok {
		return nil, p.expected("(")
	}
	list, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if _, ok := p.c.nextIfPunct(')'); !ok {
		return nil, p.expected(")")
	}
	return list, nil
}

// parseNamedWindows parses the top-level "WINDOW name AS (spec) [, ...]"
// clause, distinct from an expression's inline "OVER (...)" window.
func (p *parser) parseNamedWindows() ([]ast.NamedWindow, error) {
	var wins []ast.NamedWindow
	for {
		nameTok := p.c.peek()
		if nameTok.Kind != token.Word {
			return nil, p.expected("window name")
		}
		p.c.next()
		if _, ok := p.c.nextIfKeyword("AS"); !ok {
			return nil, p.expected("AS")
		}
		spec, err := p.parseWindowSpecBody()
		if err != nil {
			return nil, err
		}
		spec.Name = nameTok.Value
		wins = append(wins, ast.NamedWindow{Name: nameTok.Value, Spec: spec})
		if _, ok := p.c.nextIfPunct(','); !ok {
			return wins, nil
		}
	}
}

func (p *parser) parseOffset() (*ast.Offset, error) {
	p.c.next() // OFFSET
	count, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	off := &ast.Offset{Count: count}
	switch {
	case p.c.isKeyword("ROWS"):
		p.c.next()
		off.HasRowWord, off.RowsPlural = true, true
	case p.c.isKeyword("ROW"):
		p.c.next()
		off.HasRowWord = true
	default:
		if !p.d.Parser.AllowOffsetWithoutRowKeyword {
			return nil, p.expected("ROW or ROWS")
		}
	}
	return off, nil
}

func (p *parser) parseLimit() (*ast.Limit, error) {
	p.c.next() // LIMIT
	if _, ok := p.c.nextIfKeyword("ALL"); ok {
		return &ast.Limit{All: true}, nil
	}
	count, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	return &ast.Limit{Count: count}, nil
}

func (p *parser) parseFetch() (*ast.Fetch, error) {
	p.c.next() // FETCH
	f := &ast.Fetch{}
	switch {
	case p.c.isKeyword("FIRST"):
		p.c.next()
		f.Direction = ast.FetchFirst
	case p.c.isKeyword("NEXT"):
		p.c.next()
		f.Direction = ast.FetchNext
	default:
		return nil, p.expected("FIRST or NEXT")
	}
	if p.c.peek().Kind == token.Number {
		count, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		f.Count = count
	}
	if _, ok := p.c.nextIfKeyword("PERCENT"); ok {
		f.Percent = true
	}
	switch {
	case p.c.isKeyword("ROWS"):
		p.c.next()
		f.RowsPlural = true
	case p.c.isKeyword("ROW"):
		p.c.next()
	default:
		return nil, p.expected("ROW or ROWS")
	}
	switch {
	case p.c.isKeyword("ONLY"):
		p.c.next()
	case p.c.isKeyword("WITH"):
		p.c.next()
		if _, ok := p.c.nextIfKeyword("TIES"); !ok {
			return nil, p.expected("TIES")
		}
		f.WithTies = true
	default:
		return nil, p.expected("ONLY or WITH TIES")
	}
	return f, nil
}
