// Package exprparse implements the VimL expression grammar of spec §4.2: a
// Pratt-style precedence-climbing recursive-descent parser, grounded on
// cue/parser/parser.go's parseBinaryExpr(prec1 int) shape (teacher
// cuelang.org/go) but built over VimL's own operator set and precedence
// table, which has no CUE equivalent (ternary, is/isnot, case-compare
// suffixes, string-vs-number ambiguity).
package exprparse

import (
	"strings"

	"vimlua.dev/vl/ast"
	"vimlua.dev/vl/lex"
	"vimlua.dev/vl/token"
	"vimlua.dev/vl/vimlerr"
)

// Parser parses one VimL expression out of a string, starting at a given
// base offset within a token.File so positions line up with the
// surrounding Ex command.
type Parser struct {
	file *token.File
	src  string
	base int // offset of src[0] within file
	i    int // current offset within src
	cpo  lex.CPOFlags
	err  *vimlerr.Error
}

// New returns a Parser over src, whose byte 0 is at offset base within
// file.
func New(file *token.File, base int, src string, cpo lex.CPOFlags) *Parser {
	return &Parser{file: file, src: src, base: base, cpo: cpo}
}

// ParseExpr0 parses one top-level VimL expression from a standalone
// string (spec §6's parse_expr0 entry point), with no surrounding Ex
// command context.
func ParseExpr0(src string) (*ast.Expr, *vimlerr.Error) {
	f := token.NewFile("", len(src))
	p := New(f, 0, src, 0)
	e := p.ParseExpr()
	if p.err != nil {
		return nil, p.err
	}
	p.skipWhite()
	if p.i != len(p.src) {
		return nil, p.errorf(p.i, "E15: trailing characters after expression: %q", p.rest())
	}
	return e, nil
}

func (p *Parser) pos(offset int) token.Pos { return p.file.Pos(p.base + offset) }

func (p *Parser) rest() string {
	if p.i >= len(p.src) {
		return ""
	}
	n := len(p.src) - p.i
	if n > 20 {
		n = 20
	}
	return p.src[p.i : p.i+n]
}

func (p *Parser) errorf(offset int, format string, args ...interface{}) *vimlerr.Error {
	if p.err == nil {
		code := vimlerr.E475Invalid
		if i := strings.IndexByte(format, ':'); i > 1 && format[0] == 'E' {
			code = vimlerr.Code(format[:i])
		}
		p.err = vimlerr.Newf(p.pos(offset), code, format, args...)
	}
	return p.err
}

func (p *Parser) skipWhite() { p.i = lex.SkipWhite(p.src, p.i) }

func (p *Parser) peek() byte {
	if p.i >= len(p.src) {
		return 0
	}
	return p.src[p.i]
}

func (p *Parser) peekAt(n int) byte {
	if p.i+n >= len(p.src) {
		return 0
	}
	return p.src[p.i+n]
}

func (p *Parser) eof() bool { return p.i >= len(p.src) }

// ParseExpr is the entry point used by Ex-command argument sub-parsers
// (spec §4.3's "invokes the expression parser where an argument type
// demands it").
func (p *Parser) ParseExpr() *ast.Expr {
	return p.parseTernary()
}

// Err reports the first error encountered, if any.
func (p *Parser) Err() *vimlerr.Error { return p.err }

// Remaining returns the offset just past the last consumed byte, so a
// caller (excmd) knows where to resume scanning after an embedded
// expression.
func (p *Parser) Remaining() int { return p.i }

// ---- precedence ladder, loosest to tightest (spec §4.2) ----

func (p *Parser) parseTernary() *ast.Expr {
	start := p.i
	cond := p.parseOr()
	if p.err != nil {
		return cond
	}
	p.skipWhite()
	if p.peek() != '?' {
		return cond
	}
	p.i++
	p.skipWhite()
	thenE := p.parseTernary()
	p.skipWhite()
	if p.peek() != ':' {
		p.errorf(p.i, "E109: missing ':' after '?'")
		return cond
	}
	p.i++
	p.skipWhite()
	elseE := p.parseTernary()
	return &ast.Expr{
		Kind:     ast.ExprTernary,
		StartPos: p.pos(start), EndPos: p.pos(p.i),
		Children: []*ast.Expr{cond, thenE, elseE},
	}
}

func (p *Parser) parseOr() *ast.Expr {
	start := p.i
	x := p.parseAnd()
	for {
		p.skipWhite()
		if p.peek() == '|' && p.peekAt(1) == '|' {
			p.i += 2
			p.skipWhite()
			y := p.parseAnd()
			x = &ast.Expr{Kind: ast.ExprOr, StartPos: p.pos(start), EndPos: p.pos(p.i), Children: []*ast.Expr{x, y}}
			continue
		}
		return x
	}
}

func (p *Parser) parseAnd() *ast.Expr {
	start := p.i
	x := p.parseComparison()
	for {
		p.skipWhite()
		if p.peek() == '&' && p.peekAt(1) == '&' {
			p.i += 2
			p.skipWhite()
			y := p.parseComparison()
			x = &ast.Expr{Kind: ast.ExprAnd, StartPos: p.pos(start), EndPos: p.pos(p.i), Children: []*ast.Expr{x, y}}
			continue
		}
		return x
	}
}

// parseComparison handles the non-chainable comparison level: both
// operands are parsed at the additive level, so a second comparison
// operator is left unconsumed rather than chaining (spec §4.2).
func (p *Parser) parseComparison() *ast.Expr {
	start := p.i
	x := p.parseAdditive()
	p.skipWhite()
	op, opLen, ok := p.peekCompareOp()
	if !ok {
		return x
	}
	p.i += opLen
	caseMode := p.parseCaseSuffix()
	p.skipWhite()
	y := p.parseAdditive()
	return &ast.Expr{
		Kind: ast.ExprCompare, CmpOp: op, CaseMode: caseMode,
		StartPos: p.pos(start), EndPos: p.pos(p.i),
		Children: []*ast.Expr{x, y},
	}
}

func (p *Parser) parseCaseSuffix() ast.CaseCompare {
	switch p.peek() {
	case '#':
		p.i++
		return ast.CaseMatch
	case '?':
		p.i++
		return ast.CaseIgnore
	default:
		return ast.CaseUseOption
	}
}

// peekCompareOp recognizes a comparison operator at the current position
// without consuming it beyond the operator token itself (the case-compare
// suffix, if any, is consumed separately by parseCaseSuffix).
func (p *Parser) peekCompareOp() (ast.CompareOp, int, bool) {
	s := p.src[p.i:]
	switch {
	case strings.HasPrefix(s, "=="):
		return ast.CmpEq, 2, true
	case strings.HasPrefix(s, "!="):
		return ast.CmpNe, 2, true
	case strings.HasPrefix(s, ">="):
		return ast.CmpGe, 2, true
	case strings.HasPrefix(s, "<="):
		return ast.CmpLe, 2, true
	case strings.HasPrefix(s, "=~"):
		return ast.CmpMatches, 2, true
	case strings.HasPrefix(s, "!~"):
		return ast.CmpNotMatches, 2, true
	case strings.HasPrefix(s, ">"):
		return ast.CmpGt, 1, true
	case strings.HasPrefix(s, "<"):
		return ast.CmpLt, 1, true
	case strings.HasPrefix(s, "is"):
		// "is"/"isnot" are identifier operators, recognised only when a
		// non-identifier character follows (spec §4.2).
		rest := s[2:]
		if strings.HasPrefix(rest, "not") {
			if len(rest) == 3 || !lex.IsWordChar(rest[3]) {
				return ast.CmpIsNot, 5, true
			}
			return 0, 0, false
		}
		if len(rest) == 0 || !lex.IsWordChar(rest[0]) {
			return ast.CmpIs, 2, true
		}
	}
	return 0, 0, false
}

func (p *Parser) parseAdditive() *ast.Expr {
	start := p.i
	x := p.parseMultiplicative()
	for {
		p.skipWhite()
		var kind ast.ExprKind
		switch p.peek() {
		case '+':
			kind = ast.ExprAdd
		case '-':
			kind = ast.ExprSub
		case '.':
			// A lone '.' that isn't the start of a float continuation is
			// string concatenation; '.' immediately followed by a digit
			// at this level never occurs since operands are already
			// parsed, so '.' here is unambiguously concat.
			if p.peekAt(1) == '.' {
				return x // belongs to range-like syntax elsewhere; stop
			}
			kind = ast.ExprConcat
		default:
			return x
		}
		if p.peekAt(1) == '=' {
			return x // "+=", "-=", ".=": a :let operator, not an operand
		}
		p.i++
		p.skipWhite()
		y := p.parseMultiplicative()
		x = &ast.Expr{Kind: kind, StartPos: p.pos(start), EndPos: p.pos(p.i), Children: []*ast.Expr{x, y}}
	}
}

func (p *Parser) parseMultiplicative() *ast.Expr {
	start := p.i
	x := p.parseUnary()
	for {
		p.skipWhite()
		var kind ast.ExprKind
		switch p.peek() {
		case '*':
			kind = ast.ExprMul
		case '/':
			kind = ast.ExprDiv
		case '%':
			kind = ast.ExprMod
		default:
			return x
		}
		p.i++
		p.skipWhite()
		y := p.parseUnary()
		x = &ast.Expr{Kind: kind, StartPos: p.pos(start), EndPos: p.pos(p.i), Children: []*ast.Expr{x, y}}
	}
}

// parseUnary applies !, -, + right-to-left (spec §4.2). A '+' is kept in
// the tree as an explicit node only when written; it is semantically
// identity and the runtime may fold it away.
func (p *Parser) parseUnary() *ast.Expr {
	start := p.i
	switch p.peek() {
	case '!':
		p.i++
		x := p.parseUnary()
		return &ast.Expr{Kind: ast.ExprNot, StartPos: p.pos(start), EndPos: p.pos(p.i), Children: []*ast.Expr{x}}
	case '-':
		p.i++
		x := p.parseUnary()
		return &ast.Expr{Kind: ast.ExprNeg, StartPos: p.pos(start), EndPos: p.pos(p.i), Children: []*ast.Expr{x}}
	case '+':
		p.i++
		x := p.parseUnary()
		return &ast.Expr{Kind: ast.ExprPos, StartPos: p.pos(start), EndPos: p.pos(p.i), Children: []*ast.Expr{x}}
	default:
		return p.parsePostfix(p.parsePrimary())
	}
}

// parsePostfix applies the subscription/call chain left-to-right; no
// whitespace is allowed before '[', '.', or '(' (spec §4.2).
func (p *Parser) parsePostfix(x *ast.Expr) *ast.Expr {
	start := x.Pos()
	for {
		switch p.peek() {
		case '[':
			x = p.parseSubscript(x, start)
		case '.':
			if !identStart(p.peekAt(1)) {
				return x
			}
			p.i++
			nameStart := p.i
			for !p.eof() && lex.IsWordChar(p.peek()) {
				p.i++
			}
			x = &ast.Expr{
				Kind: ast.ExprConcatOrSub, FieldName: p.src[nameStart:p.i],
				StartPos: start, EndPos: p.pos(p.i),
				Children: []*ast.Expr{x},
			}
		case '(':
			x = p.parseCall(x, start)
		default:
			return x
		}
		if p.err != nil {
			return x
		}
	}
}

func identStart(b byte) bool { return lex.IsAlpha(b) || b == '_' }

func (p *Parser) parseSubscript(x *ast.Expr, start token.Pos) *ast.Expr {
	p.i++ // consume '['
	p.skipWhite()
	var lo, hi *ast.Expr
	isSlice := false
	if p.peek() == ':' {
		lo = &ast.Expr{Kind: ast.ExprEmptySub, StartPos: p.pos(p.i), EndPos: p.pos(p.i)}
		isSlice = true
	} else {
		lo = p.ParseExpr()
		p.skipWhite()
	}
	if p.peek() == ':' {
		isSlice = true
		p.i++
		p.skipWhite()
		if p.peek() == ']' {
			hi = &ast.Expr{Kind: ast.ExprEmptySub, StartPos: p.pos(p.i), EndPos: p.pos(p.i)}
		} else {
			hi = p.ParseExpr()
			p.skipWhite()
		}
	}
	if p.peek() != ']' {
		p.errorf(p.i, "E111: missing ']'")
		return x
	}
	p.i++
	if isSlice {
		return &ast.Expr{Kind: ast.ExprSlice, StartPos: start, EndPos: p.pos(p.i), Children: []*ast.Expr{x, lo, hi}}
	}
	return &ast.Expr{Kind: ast.ExprIndex, StartPos: start, EndPos: p.pos(p.i), Children: []*ast.Expr{x, lo}}
}

// maxCallArgs is the hard cap of spec §4.2.
const maxCallArgs = 20

func (p *Parser) parseCall(fn *ast.Expr, start token.Pos) *ast.Expr {
	p.i++ // consume '('
	p.skipWhite()
	children := []*ast.Expr{fn}
	if p.peek() != ')' {
		for {
			if len(children)-1 >= maxCallArgs {
				p.errorf(p.i, "E740: too many arguments for function")
				break
			}
			arg := p.ParseExpr()
			children = append(children, arg)
			p.skipWhite()
			if p.peek() == ',' {
				p.i++
				p.skipWhite()
				continue
			}
			break
		}
	}
	if p.peek() != ')' {
		p.errorf(p.i, "E116: missing ')'")
	} else {
		p.i++
	}
	return &ast.Expr{Kind: ast.ExprCall, StartPos: start, EndPos: p.pos(p.i), Children: children}
}

