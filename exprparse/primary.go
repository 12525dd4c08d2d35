package exprparse

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"vimlua.dev/vl/ast"
	"vimlua.dev/vl/lex"
)

// parsePrimary parses literals, names, parenthesised expressions, and
// collection constructors (spec §4.2 "Primaries").
func (p *Parser) parsePrimary() *ast.Expr {
	if p.err != nil {
		return &ast.Expr{Kind: ast.ExprInvalid}
	}
	switch c := p.peek(); {
	case lex.IsDigit(c):
		return p.parseNumber()
	case c == '.' && lex.IsDigit(p.peekAt(1)):
		return p.parseNumber()
	case c == '\'':
		return p.parseSingleQuoted()
	case c == '"':
		return p.parseDoubleQuoted()
	case c == '&':
		return p.parseOption()
	case c == '@':
		return p.parseRegister()
	case c == '$':
		return p.parseEnvVar()
	case c == '[':
		return p.parseList()
	case c == '{':
		return p.parseDictOrCurly()
	case c == '(':
		return p.parseParen()
	case identStart(c) || c == ':': // scope letters also start with a letter; ':' handled via scope prefix below
		return p.parseName()
	default:
		p.errorf(p.i, "E15: unexpected character %q in expression", string(c))
		return &ast.Expr{Kind: ast.ExprInvalid, StartPos: p.pos(p.i), EndPos: p.pos(p.i)}
	}
}

// ---- numbers ----

func (p *Parser) parseNumber() *ast.Expr {
	start := p.i
	if p.peek() == '0' && (p.peekAt(1) == 'x' || p.peekAt(1) == 'X') {
		j := p.i + 2
		for j < len(p.src) && lex.IsHexDigit(p.src[j]) {
			j++
		}
		v, _, _ := lex.StrToNr(p.src, p.i)
		p.i = j
		return &ast.Expr{Kind: ast.ExprNumber, IntValue: v, StartPos: p.pos(start), EndPos: p.pos(p.i)}
	}

	j := lex.SkipDigits(p.src, p.i)
	isFloat := j < len(p.src) && p.src[j] == '.' && j+1 < len(p.src) && lex.IsDigit(p.src[j+1])
	if isFloat {
		j++
		j = lex.SkipDigits(p.src, j)
		if j < len(p.src) && (p.src[j] == 'e' || p.src[j] == 'E') {
			k := j + 1
			if k < len(p.src) && (p.src[k] == '+' || p.src[k] == '-') {
				k++
			}
			if k < len(p.src) && lex.IsDigit(p.src[k]) {
				j = lex.SkipDigits(p.src, k)
			}
		}
		text := p.src[p.i:j]
		p.i = j
		d, _, err := apd.NewFromString(text)
		if err != nil {
			d = apd.New(0, 0)
		}
		return &ast.Expr{Kind: ast.ExprFloat, FloatValue: d, StartPos: p.pos(start), EndPos: p.pos(p.i)}
	}

	// Octal is only recognised when every digit is <= 7 and the first is
	// '0'; a lone "0" or any 8/9 digit disables it (spec §4.2).
	v, _, length := lex.StrToNr(p.src, p.i)
	p.i += length
	return &ast.Expr{Kind: ast.ExprNumber, IntValue: v, StartPos: p.pos(start), EndPos: p.pos(p.i)}
}

// ---- strings ----

func (p *Parser) parseSingleQuoted() *ast.Expr {
	start := p.i
	p.i++ // opening '
	var b strings.Builder
	for {
		if p.eof() {
			p.errorf(p.i, "E115: missing quote: %s", p.src[start:])
			break
		}
		c := p.src[p.i]
		if c == '\'' {
			if p.peekAt(1) == '\'' {
				b.WriteByte('\'')
				p.i += 2
				continue
			}
			p.i++
			break
		}
		b.WriteByte(c)
		p.i++
	}
	return &ast.Expr{Kind: ast.ExprSQString, StrValue: b.String(), StartPos: p.pos(start), EndPos: p.pos(p.i)}
}

func (p *Parser) parseDoubleQuoted() *ast.Expr {
	start := p.i
	p.i++ // opening "
	var b strings.Builder
	for {
		if p.eof() {
			p.errorf(p.i, "E114: missing quote: %s", p.src[start:])
			break
		}
		c := p.src[p.i]
		if c == '"' {
			p.i++
			break
		}
		if c == '\\' {
			p.i++
			p.decodeDQEscape(&b)
			continue
		}
		b.WriteByte(c)
		p.i++
	}
	return &ast.Expr{Kind: ast.ExprDQString, StrValue: b.String(), StartPos: p.pos(start), EndPos: p.pos(p.i)}
}

// decodeDQEscape decodes one backslash escape of a double-quoted string
// (spec §4.2): C-style escapes, \xHH, \XHH, \uHHHH, \UHHHHHHHH, octal
// \ooo, and \<KeyName> via lex.ReplaceTermcodes.
func (p *Parser) decodeDQEscape(b *strings.Builder) {
	if p.eof() {
		return
	}
	c := p.src[p.i]
	switch c {
	case 'n':
		b.WriteByte('\n')
		p.i++
	case 't':
		b.WriteByte('\t')
		p.i++
	case 'r':
		b.WriteByte('\r')
		p.i++
	case 'b':
		b.WriteByte('\b')
		p.i++
	case 'e':
		b.WriteByte(0x1b)
		p.i++
	case '\\', '"':
		b.WriteByte(c)
		p.i++
	case 'x', 'X':
		p.i++
		p.writeHexEscape(b, 2)
	case 'u':
		p.i++
		p.writeHexEscape(b, 4)
	case 'U':
		p.i++
		p.writeHexEscape(b, 8)
	case '<':
		// \<KeyName> routed through the key-translation helper.
		if end := strings.IndexByte(p.src[p.i:], '>'); end > 0 {
			raw := p.src[p.i : p.i+end+1]
			b.WriteString(lex.ReplaceTermcodes(raw, 0))
			p.i += end + 1
		} else {
			b.WriteByte('<')
			p.i++
		}
	default:
		if lex.IsOctDigit(c) {
			n := 0
			for n < 3 && p.i < len(p.src) && lex.IsOctDigit(p.src[p.i]) {
				n = n*8 + int(p.src[p.i]-'0')
				p.i++
			}
			b.WriteByte(byte(n))
		} else {
			b.WriteByte(c)
			p.i++
		}
	}
}

func (p *Parser) writeHexEscape(b *strings.Builder, maxDigits int) {
	j := p.i
	for j < len(p.src) && j < p.i+maxDigits && lex.IsHexDigit(p.src[j]) {
		j++
	}
	if j == p.i {
		return
	}
	n, err := strconv.ParseInt(p.src[p.i:j], 16, 64)
	p.i = j
	if err == nil {
		b.WriteRune(rune(n))
	}
}

// ---- options, registers, env vars ----

func (p *Parser) parseOption() *ast.Expr {
	start := p.i
	p.i++ // '&'
	var scope byte
	if (p.peek() == 'g' || p.peek() == 'l') && p.peekAt(1) == ':' {
		scope = p.peek()
		p.i += 2
	}
	nameStart := p.i
	if strings.HasPrefix(p.src[p.i:], "t_") && p.i+4 <= len(p.src) {
		p.i += 4
	} else {
		for !p.eof() && lex.IsWordChar(p.peek()) {
			p.i++
		}
	}
	return &ast.Expr{
		Kind: ast.ExprOption, OptionScope: scope, StrValue: p.src[nameStart:p.i],
		StartPos: p.pos(start), EndPos: p.pos(p.i),
	}
}

func (p *Parser) parseRegister() *ast.Expr {
	start := p.i
	p.i++ // '@'
	var name string
	if p.eof() {
		name = `"`
	} else {
		name = string(p.src[p.i])
		p.i++
	}
	return &ast.Expr{Kind: ast.ExprRegister, StrValue: name, StartPos: p.pos(start), EndPos: p.pos(p.i)}
}

func (p *Parser) parseEnvVar() *ast.Expr {
	start := p.i
	p.i++ // '$'
	nameStart := p.i
	for !p.eof() && lex.IsWordChar(p.peek()) {
		p.i++
	}
	return &ast.Expr{Kind: ast.ExprEnvVar, StrValue: p.src[nameStart:p.i], StartPos: p.pos(start), EndPos: p.pos(p.i)}
}

// ---- collections ----

func (p *Parser) parseList() *ast.Expr {
	start := p.i
	p.i++ // '['
	p.skipWhite()
	var children []*ast.Expr
	if p.peek() != ']' {
		for {
			children = append(children, p.ParseExpr())
			p.skipWhite()
			if p.peek() == ',' {
				p.i++
				p.skipWhite()
				if p.peek() == ']' {
					break // tolerate a trailing comma before ']'
				}
				continue
			}
			break
		}
	}
	if p.peek() != ']' {
		p.errorf(p.i, "E696: missing ']'")
	} else {
		p.i++
	}
	return &ast.Expr{Kind: ast.ExprList, Children: children, StartPos: p.pos(start), EndPos: p.pos(p.i)}
}

// parseDictOrCurly disambiguates {k: v, ...} from a curly-braces name
// chunk by first trying to parse one expression followed by '}' — if that
// succeeds, it's a parenthesised name piece; otherwise parsing resumes as
// a dictionary (spec §4.2).
func (p *Parser) parseDictOrCurly() *ast.Expr {
	start := p.i
	save := *p
	p.i++ // '{'
	p.skipWhite()
	if p.peek() != '}' {
		trial := p.ParseExpr()
		if p.err == nil {
			p.skipWhite()
			if p.peek() == '}' {
				p.i++
				return &ast.Expr{Kind: ast.ExprCurlyName, Children: []*ast.Expr{trial}, StartPos: p.pos(start), EndPos: p.pos(p.i)}
			}
		}
	}
	*p = save
	return p.parseDict(start)
}

func (p *Parser) parseDict(start int) *ast.Expr {
	p.err = nil
	p.i++ // '{'
	p.skipWhite()
	var children []*ast.Expr
	if p.peek() != '}' {
		for {
			key := p.ParseExpr()
			p.skipWhite()
			if p.peek() != ':' {
				p.errorf(p.i, "E720: missing colon in dictionary")
				break
			}
			p.i++
			p.skipWhite()
			val := p.ParseExpr()
			children = append(children, key, val)
			p.skipWhite()
			if p.peek() == ',' {
				p.i++
				p.skipWhite()
				if p.peek() == '}' {
					break
				}
				continue
			}
			break
		}
	}
	if p.peek() != '}' {
		p.errorf(p.i, "E722: missing '}' in dictionary")
	} else {
		p.i++
	}
	return &ast.Expr{Kind: ast.ExprDict, Children: children, StartPos: p.pos(start), EndPos: p.pos(p.i)}
}

func (p *Parser) parseParen() *ast.Expr {
	start := p.i
	p.i++ // '('
	p.skipWhite()
	x := p.ParseExpr()
	p.skipWhite()
	if p.peek() != ')' {
		p.errorf(p.i, "E116: missing ')'")
	} else {
		p.i++
	}
	return &ast.Expr{Kind: ast.ExprParen, Children: []*ast.Expr{x}, StartPos: p.pos(start), EndPos: p.pos(p.i)}
}
