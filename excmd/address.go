package excmd

import (
	"vimlua.dev/vl/ast"
	"vimlua.dev/vl/lex"
)

// parseRange parses a command's leading line-address prefix (spec §3
// "Ranges and addresses", §4.3). It returns nil when no address atom is
// present at all.
func (p *Parser) parseRange() *ast.Range {
	start := p.i

	switch p.peek() {
	case '%':
		p.i++
		return p.twoMarkRange(start, ast.AddrFixedLine, ast.AddrEndOfFile, 1, 0)
	case '*':
		p.i++
		return p.markPairRange(start, '<', '>')
	}

	var head, tail *ast.Range
	any := false
	for {
		segStart := p.i
		addr, ok := p.parseAddressAtom()
		if !ok {
			addr = &ast.Address{Kind: ast.AddrMissing, StartPos: p.pos(segStart), EndPos: p.pos(segStart)}
		} else {
			any = true
		}
		node := &ast.Range{Addr: addr, StartPos: p.pos(segStart), EndPos: p.pos(p.i)}
		if head == nil {
			head = node
		} else {
			tail.Next = node
		}
		tail = node

		switch p.peek() {
		case ',':
			node.Separator = ast.SepComma
			p.i++
			any = true
			continue
		case ';':
			node.Separator = ast.SepSemi
			p.i++
			any = true
			continue
		}
		break
	}
	if !any {
		return nil
	}
	head.EndPos = p.pos(p.i)
	return head
}

func (p *Parser) twoMarkRange(start int, k1, k2 ast.AddressKind, line1 int64, _ int) *ast.Range {
	a1 := &ast.Address{Kind: k1, Line: line1, StartPos: p.pos(start), EndPos: p.pos(p.i)}
	a2 := &ast.Address{Kind: k2, StartPos: p.pos(start), EndPos: p.pos(p.i)}
	r2 := &ast.Range{Addr: a2, StartPos: p.pos(start), EndPos: p.pos(p.i)}
	r1 := &ast.Range{Addr: a1, Separator: ast.SepComma, Next: r2, StartPos: p.pos(start), EndPos: p.pos(p.i)}
	return r1
}

func (p *Parser) markPairRange(start int, m1, m2 byte) *ast.Range {
	a1 := &ast.Address{Kind: ast.AddrMark, Mark: m1, StartPos: p.pos(start), EndPos: p.pos(p.i)}
	a2 := &ast.Address{Kind: ast.AddrMark, Mark: m2, StartPos: p.pos(start), EndPos: p.pos(p.i)}
	r2 := &ast.Range{Addr: a2, StartPos: p.pos(start), EndPos: p.pos(p.i)}
	r1 := &ast.Range{Addr: a1, Separator: ast.SepComma, Next: r2, StartPos: p.pos(start), EndPos: p.pos(p.i)}
	return r1
}

// parseAddressAtom parses one address atom and any shift/search followups
// chained onto it (spec §3).
func (p *Parser) parseAddressAtom() (*ast.Address, bool) {
	start := p.i
	var addr *ast.Address

	switch c := p.peek(); {
	case c == '.':
		p.i++
		addr = &ast.Address{Kind: ast.AddrCurrentLine}
	case c == '$':
		p.i++
		addr = &ast.Address{Kind: ast.AddrEndOfFile}
	case lex.IsDigit(c):
		n, next := lex.GetDigits(p.src, p.i)
		p.i = next
		addr = &ast.Address{Kind: ast.AddrFixedLine, Line: n}
	case c == '\'':
		p.i++
		m := p.peek()
		if m != 0 {
			p.i++
		}
		addr = &ast.Address{Kind: ast.AddrMark, Mark: m}
	case c == '/':
		addr = p.parseAddressRegex('/', ast.AddrForwardRegex)
	case c == '?':
		addr = p.parseAddressRegex('?', ast.AddrBackwardRegex)
	case c == '\\':
		switch p.peekAt(1) {
		case '/':
			p.i += 2
			addr = &ast.Address{Kind: ast.AddrForwardPrevious}
		case '?':
			p.i += 2
			addr = &ast.Address{Kind: ast.AddrBackwardPrevious}
		case '&':
			p.i += 2
			addr = &ast.Address{Kind: ast.AddrSubstitutePrevious}
		default:
			return nil, false
		}
	default:
		return nil, false
	}

	addr.StartPos = p.pos(start)
	addr.EndPos = p.pos(p.i)
	addr.Followups = p.parseFollowups()
	addr.EndPos = p.pos(p.i)
	return addr, true
}

func (p *Parser) parseAddressRegex(delim byte, kind ast.AddressKind) *ast.Address {
	start := p.i
	p.i++ // opening delimiter
	regexStart := p.i
	for !p.eof() {
		if p.peek() == '\\' {
			p.i += 2
			continue
		}
		if p.peek() == delim {
			break
		}
		p.i++
	}
	regex := &ast.Regex{
		Source: p.src[regexStart:p.i], Delim: delim,
		StartPos: p.pos(regexStart), EndPos: p.pos(p.i),
	}
	if p.peek() == delim {
		p.i++
	}
	return &ast.Address{Kind: kind, Regex: regex, StartPos: p.pos(start)}
}

// parseFollowups reads the chain of +N / -N / /pat/ / ?pat? modifiers that
// may trail an address atom (spec §3).
func (p *Parser) parseFollowups() []*ast.AddressFollowup {
	var out []*ast.AddressFollowup
	for {
		start := p.i
		switch c := p.peek(); {
		case c == '+' || c == '-':
			sign := int64(1)
			if c == '-' {
				sign = -1
			}
			p.i++
			if lex.IsDigit(p.peek()) {
				n, next := lex.GetDigits(p.src, p.i)
				p.i = next
				out = append(out, &ast.AddressFollowup{
					Kind: ast.FollowupShift, Shift: sign * n,
					StartPos: p.pos(start), EndPos: p.pos(p.i),
				})
			} else {
				out = append(out, &ast.AddressFollowup{
					Kind: ast.FollowupShift, Shift: sign,
					StartPos: p.pos(start), EndPos: p.pos(p.i),
				})
			}
		case lex.IsDigit(c):
			n, next := lex.GetDigits(p.src, p.i)
			p.i = next
			out = append(out, &ast.AddressFollowup{
				Kind: ast.FollowupShift, Shift: n,
				StartPos: p.pos(start), EndPos: p.pos(p.i),
			})
		case c == '/':
			addr := p.parseAddressRegex('/', ast.AddrForwardRegex)
			out = append(out, &ast.AddressFollowup{
				Kind: ast.FollowupForwardRegex, Regex: addr.Regex,
				StartPos: p.pos(start), EndPos: p.pos(p.i),
			})
		case c == '?':
			addr := p.parseAddressRegex('?', ast.AddrBackwardRegex)
			out = append(out, &ast.AddressFollowup{
				Kind: ast.FollowupBackwardRegex, Regex: addr.Regex,
				StartPos: p.pos(start), EndPos: p.pos(p.i),
			})
		default:
			return out
		}
	}
}
