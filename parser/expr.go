package parser

import (
	"strconv"
	"strings"

	"github.com/oarkflow/usql/ast"
	"github.com/oarkflow/usql/token"
)

// Precedence levels of the expression grammar; higher binds tighter. A
// left-associative operator at level L parses its right operand at L+1,
// so a run of same-precedence operators never right-nests.
const (
	precOr        = 10
	precAnd       = 15
	precNotPrefix = 17
	precCmp       = 20 // comparisons, IS [NOT] NULL/DISTINCT, IN, BETWEEN, LIKE, ILIKE
	precConcat    = 25 // ||, |, &
	precShift     = 27 // <<, >>
	precAddSub    = 30
	precMulDiv    = 40
	precUnary     = 45
	precPostfix   = 50 // COLLATE, ::, [index]

	// levelAboveAnd is used for BETWEEN's low bound so the AND separating
	// low/high isn't swallowed by an outer AND (x NOT BETWEEN 1 AND 2 AND y).
	levelAboveAnd = 16
)

func (p *parser) parseExpr(minPrec int) (ast.Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekInfix()
		if !ok || op.prec < minPrec {
			return left, nil
		}
		left, err = p.parseInfix(left, op)
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) parsePrefix() (ast.Expr, error) {
	if p.c.peekIsEOF() {
		return nil, p.expected("expression")
	}
	t := p.c.peek()

	switch t.Kind {
	case token.Number:
		p.c.next()
		return &ast.Literal{Kind: ast.LitNumber, Value: t.Value, Span: t.Span}, nil
	case token.String:
		p.c.next()
		return &ast.Literal{Kind: ast.LitString, Value: t.Value, Span: t.Span}, nil
	case token.NationalString:
		p.c.next()
		return &ast.Literal{Kind: ast.LitNationalString, Value: t.Value, Span: t.Span}, nil
	case token.HexString:
		p.c.next()
		return &ast.Literal{Kind: ast.LitHexString, Value: t.Value, Span: t.Span}, nil
	case token.BitString:
		p.c.next()
		return &ast.Literal{Kind: ast.LitBitString, Value: t.Value, Span: t.Span}, nil
	}

	if t.IsPunct('*') {
		p.c.next()
		return &ast.Wildcard{Span: t.Span}, nil
	}
	if t.IsPunct('+') || t.IsPunct('-') {
		p.c.next()
		operand, err := p.parseExpr(precUnary)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: t.Value, Operand: operand}, nil
	}
	if t.IsPunct('(') {
		return p.parseParenExprOrSubquery()
	}

	if t.Kind == token.Word {
		switch t.Keyword {
		case "NOT":
			p.c.next()
			operand, err := p.parseExpr(precNotPrefix)
			if err != nil {
				return nil, err
			}
			return &ast.UnaryOp{Op: "NOT", Operand: operand}, nil
		case "NULL":
			p.c.next()
			return &ast.Literal{Kind: ast.LitNull, Span: t.Span}, nil
		case "TRUE", "FALSE":
			p.c.next()
			return &ast.Literal{Kind: ast.LitBoolean, Value: strings.ToLower(t.Keyword), Span: t.Span}, nil
		case "EXISTS":
			return p.parseExists()
		case "CASE":
			return p.parseCase()
		case "CAST":
			return p.parseCast(false)
		case "TRY_CAST":
			return p.parseCast(true)
		case "EXTRACT":
			return p.parseExtract()
		case "SUBSTRING":
			return p.parseSubstring()
		case "TRIM":
			return p.parseTrim()
		case "LISTAGG":
			return p.parseListAgg()
		case "INTERVAL":
			return p.parseInterval()
		case "DATE", "TIME", "TIMESTAMP":
			if p.c.at(p.c.pos+1).Kind == token.String {
				return p.parseTypedString(t.Keyword)
			}
		}
		return p.parseIdentOrFunctionCall()
	}

	return nil, p.expected("expression")
}

func (p *parser) parseIdentSegment() (*ast.Ident, error) {
	t := p.c.peek()
	if t.Kind != token.Word {
		return nil, p.expected("identifier")
	}
	p.c.next()
	return &ast.Ident{Name: t.Value, Quote: t.Quote, Span: t.Span}, nil
}

func (p *parser) parseIdentOrFunctionCall() (ast.Expr, error) {
	first, err := p.parseIdentSegment()
	if err != nil {
		return nil, err
	}
	parts := []*ast.Ident{first}
	for p.c.isPunct('.') {
		p.c.next()
		if p.c.isPunct('*') {
			p.c.next()
			return &ast.QualifiedWildcard{Qualifier: parts}, nil
		}
		seg, err := p.parseIdentSegment()
		if err != nil {
			return nil, err
		}
		parts = append(parts, seg)
	}
	if len(parts) == 1 && p.c.isPunct('(') {
		return p.parseFunctionCall(parts[0])
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return &ast.CompoundIdent{Parts: parts}, nil
}

func (p *parser) startsQuery() bool {
	return p.c.isKeyword("SELECT") || p.c.isKeyword("WITH") ||
		p.c.isKeyword("VALUES") || p.c.isKeyword("TABLE")
}

func (p *parser) parseParenExprOrSubquery() (ast.Expr, error) {
	p.c.next() // '('
	if p.startsQuery() {
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if _, ok := p.c.nextIfPunct(')'); !ok {
			return nil, p.expected(")")
		}
		return &ast.Subquery{Query: q}, nil
	}
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if _, ok := p.c.nextIfPunct(')'); !ok {
		return nil, p.expected(")")
	}
	return &ast.Nested{Expr: e}, nil
}

func (p *parser) parseExists() (ast.Expr, error) {
	p.c.next() // EXISTS
	if _, ok := p.c.nextIfPunct('('); !ok {
		return nil, p.expected("(")
	}
	q, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	if _, ok := p.c.nextIfPunct(')'); !ok {
		return nil, p.expected(")")
	}
	return &ast.Exists{Query: q}, nil
}

func (p *parser) parseCase() (ast.Expr, error) {
	p.c.next() // CASE
	c := &ast.Case{}
	if !p.c.isKeyword("WHEN") {
		operand, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		c.Operand = operand
	}
	if !p.c.isKeyword("WHEN") {
		return nil, p.expected("WHEN")
	}
	for p.c.isKeyword("WHEN") {
		p.c.next()
		cond, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if _, ok := p.c.nextIfKeyword("THEN"); !ok {
			return nil, p.expected("THEN")
		}
		result, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		c.Whens = append(c.Whens, ast.CaseWhen{Cond: cond, Result: result})
	}
	if _, ok := p.c.nextIfKeyword("ELSE"); ok {
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		c.Else = e
	}
	if _, ok := p.c.nextIfKeyword("END"); !ok {
		return nil, p.expected("END")
	}
	return c, nil
}

func (p *parser) parseCast(try bool) (ast.Expr, error) {
	p.c.next() // CAST / TRY_CAST
	if _, ok := p.c.nextIfPunct('('); !ok {
		return nil, p.expected("(")
	}
	e, err := p.parseExpr(0)
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
	if _, ok := p.c.nextIfPunct(')'); !ok {
		return nil, p.expected(")")
	}
	return &ast.Cast{Expr: e, Type: dt, Try: try}, nil
}

func (p *parser) parseExtract() (ast.Expr, error) {
	p.c.next() // EXTRACT
	if _, ok := p.c.nextIfPunct('('); !ok {
		return nil, p.expected("(")
	}
	fieldTok := p.c.peek()
	if fieldTok.Kind != token.Word {
		return nil, p.expected("field")
	}
	p.c.next()
	field := fieldTok.Value
	if fieldTok.Keyword != "" {
		field = fieldTok.Keyword
	}
	if _, ok := p.c.nextIfKeyword("FROM"); !ok {
		return nil, p.expected("FROM")
	}
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if _, ok := p.c.nextIfPunct(')'); !ok {
		return nil, p.expected(")")
	}
	return &ast.Extract{Field: field, Expr: e}, nil
}

// parseSubstring accepts both the SQL-standard SUBSTRING(e FROM f FOR l)
// form and the common SUBSTRING(e, f, l) comma form; the AST does not
// distinguish which surface form was used.
func (p *parser) parseSubstring() (ast.Expr, error) {
	p.c.next() // SUBSTRING
	if _, ok := p.c.nextIfPunct('('); !ok {
		return nil, p.expected("(")
	}
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	s := &ast.Substring{Expr: e}
	if _, ok := p.c.nextIfPunct(','); ok {
		from, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		s.From = from
		if _, ok := p.c.nextIfPunct(','); ok {
			forExpr, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			s.For = forExpr
		}
	} else {
		if _, ok := p.c.nextIfKeyword("FROM"); ok {
			from, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			s.From = from
		}
		if _, ok := p.c.nextIfKeyword("FOR"); ok {
			forExpr, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			s.For = forExpr
		}
	}
	if _, ok := p.c.nextIfPunct(')'); !ok {
		return nil, p.expected(")")
	}
	return s, nil
}

func (p *parser) parseTrim() (ast.Expr, error) {
	p.c.next() // TRIM
	if _, ok := p.c.nextIfPunct('('); !ok {
		return nil, p.expected("(")
	}
	tr := &ast.Trim{}
	switch {
	case p.c.isKeyword("BOTH"):
		tr.Side = ast.TrimBoth
		p.c.next()
	case p.c.isKeyword("LEADING"):
		tr.Side = ast.TrimLeading
		p.c.next()
	case p.c.isKeyword("TRAILING"):
		tr.Side = ast.TrimTrailing
		p.c.next()
	}
	if tr.Side != "" && p.c.isKeyword("FROM") {
		p.c.next()
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		tr.Expr = e
		if _, ok := p.c.nextIfPunct(')'); !ok {
			return nil, p.expected(")")
		}
		return tr, nil
	}
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if _, ok := p.c.nextIfKeyword("FROM"); ok {
		tr.What = e
		e2, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		tr.Expr = e2
	} else {
		tr.Expr = e
	}
	if _, ok := p.c.nextIfPunct(')'); !ok {
		return nil, p.expected(")")
	}
	return tr, nil
}

func (p *parser) parseListAgg() (ast.Expr, error) {
	p.c.next() // LISTAGG
	if _, ok := p.c.nextIfPunct('('); !ok {
		return nil, p.expected("(")
	}
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	la := &ast.ListAgg{Expr: e}
	if _, ok := p.c.nextIfPunct(','); ok {
		sep, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		la.Separator = sep
	}
	if _, ok := p.c.nextIfPunct(')'); !ok {
		return nil, p.expected(")")
	}
	if _, ok := p.c.nextIfKeyword("WITHIN"); ok {
		if _, ok := p.c.nextIfKeyword("GROUP"); !ok {
			return nil, p.expected("GROUP")
		}
		if _, ok := p.c.nextIfPunct('('); !ok {
			return nil, p.expected("(")
		}
		if _, ok := p.c.nextIfKeyword("ORDER"); !ok {
			return nil, p.expected("ORDER")
		}
		if _, ok := p.c.nextIfKeyword("BY"); !ok {
			return nil, p.expected("BY")
		}
		items, err := p.parseOrderByList()
		if err != nil {
			return nil, err
		}
		la.OrderBy = items
		if _, ok := p.c.nextIfPunct(')'); !ok {
			return nil, p.expected(")")
		}
	}
	return la, nil
}

// parseParenInt parses an optional "(n)" and reports whether one was
// present. parseInterval calls it after the leading and after the trailing
// field, so the precision belongs to whichever field was parsed most
// recently.
func (p *parser) parseParenInt() (int, bool) {
	if !p.c.isPunct('(') {
		return 0, false
	}
	p.c.next()
	t := p.c.peek()
	if t.Kind != token.Number {
		return 0, false
	}
	p.c.next()
	n, _ := strconv.Atoi(t.Value)
	p.c.nextIfPunct(')')
	return n, true
}

func (p *parser) parseIntervalField() (ast.IntervalField, bool) {
	fields := []ast.IntervalField{
		ast.IntervalYear, ast.IntervalMonth, ast.IntervalDay,
		ast.IntervalHour, ast.IntervalMinute, ast.IntervalSecond,
	}
	for _, f := range fields {
		if p.c.isKeyword(string(f)) {
			p.c.next()
			return f, true
		}
	}
	return "", false
}

func (p *parser) parseInterval() (ast.Expr, error) {
	p.c.next() // INTERVAL
	t := p.c.peek()
	if t.Kind != token.String {
		return nil, p.expected("string")
	}
	p.c.next()
	iv := &ast.Interval{Value: t.Value}
	if field, ok := p.parseIntervalField(); ok {
		iv.Leading = field
		if n, ok := p.parseParenInt(); ok {
			iv.FractionalSecondsPrec, iv.HasFractionalSecondsPrec = n, true
		}
		if _, ok := p.c.nextIfKeyword("TO"); ok {
			trailing, ok := p.parseIntervalField()
			if !ok {
				return nil, p.expected("interval field")
			}
			iv.HasTrailing = true
			iv.Trailing = trailing
			if n, ok := p.parseParenInt(); ok {
				iv.FractionalSecondsPrec, iv.HasFractionalSecondsPrec = n, true
			}
		}
	}
	return iv, nil
}

func (p *parser) parseTypedString(kw string) (ast.Expr, error) {
	p.c.next() // DATE/TIME/TIMESTAMP
	t := p.c.peek()
	if t.Kind != token.String {
		return nil, p.expected("string")
	}
	p.c.next()
	return &ast.TypedString{Type: ast.DataType{Name: kw}, Value: t.Value}, nil
}

func (p *parser) peekArrow() bool {
	if p.c.peekIsEOF() {
		return false
	}
	t := p.c.peek()
	if t.Kind != token.Word {
		return false
	}
	eq := p.c.at(p.c.pos + 1)
	if !eq.IsPunct('=') || eq.Spacing != token.Joint {
		return false
	}
	gt := p.c.at(p.c.pos + 2)
	return gt.IsPunct('>')
}

func (p *parser) parseFuncArg() (ast.FuncArg, error) {
	if p.peekArrow() {
		nameTok := p.c.peek()
		p.c.next() // name
		p.c.next() // '='
		p.c.next() // '>'
		e, err := p.parseExpr(0)
		if err != nil {
			return ast.FuncArg{}, err
		}
		return ast.FuncArg{Name: nameTok.Value, Expr: e}, nil
	}
	e, err := p.parseExpr(0)
	if err != nil {
		return ast.FuncArg{}, err
	}
	return ast.FuncArg{Expr: e}, nil
}

func (p *parser) parseFunctionCall(name *ast.Ident) (ast.Expr, error) {
	p.c.next() // '('
	fc := &ast.FunctionCall{Name: name}
	if !p.c.isPunct(')') {
		if _, ok := p.c.nextIfKeyword("DISTINCT"); ok {
			fc.Distinct = true
		}
		for {
			arg, err := p.parseFuncArg()
			if err != nil {
				return nil, err
			}
			fc.Args = append(fc.Args, arg)
			if _, ok := p.c.nextIfPunct(','); !ok {
				break
			}
		}
	}
	if _, ok := p.c.nextIfPunct(')'); !ok {
		return nil, p.expected(")")
	}
	over, err := p.parseOptionalOver()
	if err != nil {
		return nil, err
	}
	fc.Over = over
	return fc, nil
}

func (p *parser) parseOptionalOver() (*ast.WindowSpec, error) {
	if _, ok := p.c.nextIfKeyword("OVER"); !ok {
		return nil, nil
	}
	if t := p.c.peek(); t.Kind == token.Word && t.Keyword == "" {
		p.c.next()
		return &ast.WindowSpec{RefName: t.Value}, nil
	}
	return p.parseWindowSpecBody()
}

// parseWindowSpecBody always expects the leading '('. A bare "OVER name"
// is handled by parseOptionalOver; ast.WindowSpec.Render wraps even a bare
// named-window reference in parentheses, which parses back to the same spec.
func (p *parser) parseWindowSpecBody() (*ast.WindowSpec, error) {
	if _, ok := p.c.nextIfPunct('('); !ok {
		return nil, p.expected("(")
	}
	ws := &ast.WindowSpec{}
	if p.c.peek().Kind == token.Word && p.c.peek().Keyword == "" {
		refTok := p.c.peek()
		p.c.next()
		ws.RefName = refTok.Value
	}
	if _, ok := p.c.nextIfKeyword("PARTITION"); ok {
		if _, ok := p.c.nextIfKeyword("BY"); !ok {
			return nil, p.expected("BY")
		}
		exprs, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		ws.PartitionBy = exprs
	}
	if _, ok := p.c.nextIfKeyword("ORDER"); ok {
		if _, ok := p.c.nextIfKeyword("BY"); !ok {
			return nil, p.expected("BY")
		}
		items, err := p.parseOrderByList()
		if err != nil {
			return nil, err
		}
		ws.OrderBy = items
	}
	if p.c.isKeyword("ROWS") || p.c.isKeyword("RANGE") || p.c.isKeyword("GROUPS") {
		frame, err := p.parseWindowFrame()
		if err != nil {
			return nil, err
		}
		ws.Frame = frame
	}
	if _, ok := p.c.nextIfPunct(')'); !ok {
		return nil, p.expected(")")
	}
	return ws, nil
}

func (p *parser) parseWindowFrame() (*ast.WindowFrame, error) {
	t := p.c.peek()
	var unit ast.WindowFrameUnit
	switch {
	case t.IsKeyword("ROWS"):
		unit = ast.FrameRows
	case t.IsKeyword("RANGE"):
		unit = ast.FrameRange
	case t.IsKeyword("GROUPS"):
		unit = ast.FrameGroups
	default:
		return nil, p.expected("ROWS, RANGE or GROUPS")
	}
	p.c.next()
	f := &ast.WindowFrame{Unit: unit}
	if _, ok := p.c.nextIfKeyword("BETWEEN"); ok {
		start, err := p.parseFrameBound()
		if err != nil {
			return nil, err
		}
		if _, ok := p.c.nextIfKeyword("AND"); !ok {
			return nil, p.expected("AND")
		}
		end, err := p.parseFrameBound()
		if err != nil {
			return nil, err
		}
		f.Start = start
		f.End = &end
	} else {
		start, err := p.parseFrameBound()
		if err != nil {
			return nil, err
		}
		f.Start = start
	}
	if p.c.isKeyword("EXCLUDE") {
		p.c.next()
		switch {
		case p.c.isKeyword("CURRENT"):
			p.c.next()
			p.c.nextIfKeyword("ROW")
			f.Exclude = ast.ExcludeCurrentRow
		case p.c.isKeyword("GROUP"):
			p.c.next()
			f.Exclude = ast.ExcludeGroup
		case p.c.isKeyword("TIES"):
			p.c.next()
			f.Exclude = ast.ExcludeTies
		case p.c.isKeyword("NO"):
			p.c.next()
			p.c.nextIfKeyword("OTHERS")
			f.Exclude = ast.ExcludeNoOthers
		}
	}
	return f, nil
}

func (p *parser) parseFrameBound() (ast.FrameBound, error) {
	if p.c.isKeyword("CURRENT") {
		p.c.next()
		if _, ok := p.c.nextIfKeyword("ROW"); !ok {
			return ast.FrameBound{}, p.expected("ROW")
		}
		return ast.FrameBound{Kind: ast.BoundCurrentRow}, nil
	}
	if p.c.isKeyword("UNBOUNDED") {
		p.c.next()
		switch {
		case p.c.isKeyword("PRECEDING"):
			p.c.next()
			return ast.FrameBound{Kind: ast.BoundUnboundedPreceding}, nil
		case p.c.isKeyword("FOLLOWING"):
			p.c.next()
			return ast.FrameBound{Kind: ast.BoundUnboundedFollowing}, nil
		}
		return ast.FrameBound{}, p.expected("PRECEDING or FOLLOWING")
	}
	offset, err := p.parseExpr(0)
	if err != nil {
		return ast.FrameBound{}, err
	}
	switch {
	case p.c.isKeyword("PRECEDING"):
		p.c.next()
		return ast.FrameBound{Kind: ast.BoundPreceding, Offset: offset}, nil
	case p.c.isKeyword("FOLLOWING"):
		p.c.next()
		return ast.FrameBound{Kind: ast.BoundFollowing, Offset: offset}, nil
	}
	return ast.FrameBound{}, p.expected("PRECEDING or FOLLOWING")
}

func (p *parser) parseExprList() ([]ast.Expr, error) {
	var list []ast.Expr
	for {
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
		if _, ok := p.c.nextIfPunct(','); !ok {
			return list, nil
		}
	}
}

func (p *parser) parseOrderByList() ([]ast.OrderByItem, error) {
	var items []ast.OrderByItem
	for {
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		item := ast.OrderByItem{Expr: e}
		switch {
		case p.c.isKeyword("ASC"):
			p.c.next()
			item.HasDir = true
		case p.c.isKeyword("DESC"):
			p.c.next()
			item.HasDir, item.Desc = true, true
		}
		if _, ok := p.c.nextIfKeyword("NULLS"); ok {
			switch {
			case p.c.isKeyword("FIRST"):
				p.c.next()
				item.HasNulls, item.NullsFirst = true, true
			case p.c.isKeyword("LAST"):
				p.c.next()
				item.HasNulls = true
			default:
				return nil, p.expected("FIRST or LAST")
			}
		}
		items = append(items, item)
		if _, ok := p.c.nextIfPunct(','); !ok {
			return items, nil
		}
	}
}

func isTypeContinuationWord(t token.Token) bool {
	switch t.Keyword {
	case "PRECISION", "VARYING":
		return true
	}
	return false
}

func (p *parser) parseDataType() (ast.DataType, error) {
	t := p.c.peek()
	if t.Kind != token.Word {
		return ast.DataType{}, p.expected("type name")
	}
	p.c.next()
	name := t.Value
	if t.Keyword != "" {
		name = t.Keyword
	}
	for isTypeContinuationWord(p.c.peek()) {
		cont := p.c.peek()
		p.c.next()
		w := cont.Value
		if cont.Keyword != "" {
			w = cont.Keyword
		}
		name += " " + w
	}
	dt := ast.DataType{Name: name}
	if _, ok := p.c.nextIfPunct('('); ok {
		for {
			numTok := p.c.peek()
			if numTok.Kind != token.Number {
				return ast.DataType{}, p.expected("number")
			}
			p.c.next()
			n, _ := strconv.Atoi(numTok.Value)
			dt.Args = append(dt.Args, n)
			if _, ok := p.c.nextIfPunct(','); !ok {
				break
			}
		}
		if _, ok := p.c.nextIfPunct(')'); !ok {
			return ast.DataType{}, p.expected(")")
		}
	}
	if _, ok := p.c.nextIfPunct('['); ok {
		dt.Array = true
		if numTok := p.c.peek(); numTok.Kind == token.Number {
			p.c.next()
			n, _ := strconv.Atoi(numTok.Value)
			dt.ArrayLen, dt.HasArrayLen = n, true
		}
		if _, ok := p.c.nextIfPunct(']'); !ok {
			return ast.DataType{}, p.expected("]")
		}
	} else if p.c.isKeyword("ARRAY") {
		p.c.next()
		dt.Array = true
	}
	return dt, nil
}

// infixOp describes one recognized infix/postfix operator at the current
// cursor position. ntoks counts the punctuation tokens peekPunctOp fused
// (1 or 2); it is unused for keyword-led operators, which consume their
// own fixed keyword sequence in parseInfix.
type infixOp struct {
	prec   int
	kind   string
	opText string
	negate bool
	ntoks  int
}

// twoCharOps is the set of Joint-spaced two-Punct-token combinations the
// lexer deliberately leaves unfused (spec: lex-time fusion of multi-char
// operators is a parser concern). "!=" is a non-standard alias of "<>".
var twoCharOps = map[string]string{
	"<>": "<>", "<=": "<=", ">=": ">=", "||": "||",
	"<<": "<<", ">>": ">>", "!=": "<>", "::": "::",
}

func canonicalCmp(op string) string {
	if op == "!=" {
		return "<>"
	}
	return op
}

// peekPunctOp returns the operator text at the cursor (a single Punct
// token, or a fused two-token combo when the first is Joint-spaced and
// matches a known combination) plus how many tokens it occupies.
func (p *parser) peekPunctOp() (string, int) {
	t := p.c.peek()
	if t.Kind != token.Punct {
		return "", 0
	}
	if t.Spacing == token.Joint {
		n := p.c.peekNext()
		p.c.resetPeekCursor()
		if n.Kind == token.Punct {
			if _, ok := twoCharOps[t.Value+n.Value]; ok {
				return t.Value + n.Value, 2
			}
		}
	}
	return t.Value, 1
}

func (p *parser) consumePunctOp(n int) {
	for i := 0; i < n; i++ {
		p.c.next()
	}
}

func (p *parser) peekInfix() (infixOp, bool) {
	if p.c.peekIsEOF() {
		return infixOp{}, false
	}
	t := p.c.peek()

	switch {
	case t.IsKeyword("OR"):
		return infixOp{prec: precOr, kind: "or"}, true
	case t.IsKeyword("AND"):
		return infixOp{prec: precAnd, kind: "and"}, true
	case t.IsKeyword("IS"):
		return infixOp{prec: precCmp, kind: "is"}, true
	case t.IsKeyword("BETWEEN"):
		return infixOp{prec: precCmp, kind: "between"}, true
	case t.IsKeyword("IN"):
		return infixOp{prec: precCmp, kind: "in"}, true
	case t.IsKeyword("LIKE"):
		return infixOp{prec: precCmp, kind: "like", opText: "LIKE"}, true
	case t.IsKeyword("ILIKE"):
		return infixOp{prec: precCmp, kind: "like", opText: "ILIKE"}, true
	case t.IsKeyword("COLLATE"):
		return infixOp{prec: precPostfix, kind: "collate"}, true
	case t.IsKeyword("NOT"):
		nt := p.c.at(p.c.pos + 1)
		switch {
		case nt.IsKeyword("BETWEEN"):
			return infixOp{prec: precCmp, kind: "between", negate: true}, true
		case nt.IsKeyword("IN"):
			return infixOp{prec: precCmp, kind: "in", negate: true}, true
		case nt.IsKeyword("LIKE"):
			return infixOp{prec: precCmp, kind: "like", opText: "LIKE", negate: true}, true
		case nt.IsKeyword("ILIKE"):
			return infixOp{prec: precCmp, kind: "like", opText: "ILIKE", negate: true}, true
		}
		return infixOp{}, false
	}

	if t.Kind != token.Punct {
		return infixOp{}, false
	}
	op, n := p.peekPunctOp()
	switch op {
	case "=", "<", ">", "<=", ">=", "<>", "!=":
		return infixOp{prec: precCmp, kind: "cmp", opText: canonicalCmp(op), ntoks: n}, true
	case "||", "|", "&":
		return infixOp{prec: precConcat, kind: "bin", opText: op, ntoks: n}, true
	case "<<", ">>":
		return infixOp{prec: precShift, kind: "bin", opText: op, ntoks: n}, true
	case "+", "-":
		return infixOp{prec: precAddSub, kind: "bin", opText: op, ntoks: n}, true
	case "*", "/", "%":
		return infixOp{prec: precMulDiv, kind: "bin", opText: op, ntoks: n}, true
	case "::":
		return infixOp{prec: precPostfix, kind: "cast", ntoks: n}, true
	case "[":
		return infixOp{prec: precPostfix, kind: "index", ntoks: n}, true
	}
	return infixOp{}, false
}

func (p *parser) parseInfix(left ast.Expr, op infixOp) (ast.Expr, error) {
	switch op.kind {
	case "or":
		p.c.next()
		right, err := p.parseExpr(op.prec + 1)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Op: "OR", Left: left, Right: right}, nil

	case "and":
		p.c.next()
		right, err := p.parseExpr(op.prec + 1)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Op: "AND", Left: left, Right: right}, nil

	case "bin", "cmp":
		p.consumePunctOp(op.ntoks)
		right, err := p.parseExpr(op.prec + 1)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Op: op.opText, Left: left, Right: right}, nil

	case "is":
		p.c.next() // IS
		negate := false
		if _, ok := p.c.nextIfKeyword("NOT"); ok {
			negate = true
		}
		if _, ok := p.c.nextIfKeyword("DISTINCT"); ok {
			if _, ok := p.c.nextIfKeyword("FROM"); !ok {
				return nil, p.expected("FROM")
			}
			right, err := p.parseExpr(op.prec + 1)
			if err != nil {
				return nil, err
			}
			return &ast.IsDistinctFrom{Left: left, Right: right, Negate: negate}, nil
		}
		if _, ok := p.c.nextIfKeyword("NULL"); !ok {
			return nil, p.expected("NULL or DISTINCT")
		}
		return &ast.IsNull{Expr: left, Negate: negate}, nil

	case "between":
		if op.negate {
			p.c.next() // NOT
		}
		p.c.next() // BETWEEN
		low, err := p.parseExpr(levelAboveAnd)
		if err != nil {
			return nil, err
		}
		if _, ok := p.c.nextIfKeyword("AND"); !ok {
			return nil, p.expected("AND")
		}
		high, err := p.parseExpr(op.prec + 1)
		if err != nil {
			return nil, err
		}
		return &ast.Between{Expr: left, Low: low, High: high, Negate: op.negate}, nil

	case "in":
		if op.negate {
			p.c.next() // NOT
		}
		p.c.next() // IN
		if _, ok := p.c.nextIfPunct('('); !ok {
			return nil, p.expected("(")
		}
		if p.startsQuery() {
			q, err := p.parseQuery()
			if err != nil {
				return nil, err
			}
			if _, ok := p.c.nextIfPunct(')'); !ok {
				return nil, p.expected(")")
			}
			return &ast.InSubquery{Expr: left, Query: q, Negate: op.negate}, nil
		}
		list, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		if _, ok := p.c.nextIfPunct(')'); !ok {
			return nil, p.expected(")")
		}
		return &ast.InList{Expr: left, List: list, Negate: op.negate}, nil

	case "like":
		if op.negate {
			p.c.next() // NOT
		}
		p.c.next() // LIKE/ILIKE
		right, err := p.parseExpr(op.prec + 1)
		if err != nil {
			return nil, err
		}
		opText := op.opText
		if op.negate {
			opText = "NOT " + opText
		}
		return &ast.BinaryOp{Op: opText, Left: left, Right: right}, nil

	case "collate":
		p.c.next() // COLLATE
		nameTok := p.c.peek()
		if nameTok.Kind != token.Word {
			return nil, p.expected("collation name")
		}
		p.c.next()
		return &ast.Collate{Expr: left, Name: nameTok.Value}, nil

	case "cast":
		p.consumePunctOp(op.ntoks)
		dt, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		return &ast.Cast{Expr: left, Type: dt}, nil

	case "index":
		p.consumePunctOp(op.ntoks) // '['
		idx, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if _, ok := p.c.nextIfPunct(']'); !ok {
			return nil, p.expected("]")
		}
		return &ast.Index{Expr: left, Index: idx}, nil
	}
	return nil, p.errorf("unhandled infix operator %q", op.kind)
}
