package exprparse

import (
	"strings"

	"vimlua.dev/vl/ast"
	"vimlua.dev/vl/lex"
)

var scopePrefixes = map[string]ast.ScopePrefix{
	"s:": ast.ScopeScript, "v:": ast.ScopeVim, "a:": ast.ScopeArg,
	"l:": ast.ScopeLocal, "g:": ast.ScopeGlobal, "t:": ast.ScopeTab,
	"w:": ast.ScopeWindow, "b:": ast.ScopeBuffer,
}

const sidEncoded = string(rune(lex.KSpecial)) + string(rune(lex.KSExtra)) + string(rune(lex.KESNR))

// parseName parses a simple or compound variable name (spec §4.2
// "Names"). `<SID>` is recognised and lowered to an "s:" scope segment; a
// scope prefix (s:, v:, a:, l:, g:, t:, w:, b:) is folded into the first
// identifier piece's text exactly as written, since scope resolution
// itself is a translator concern, not a parser one.
func (p *Parser) parseName() *ast.Expr {
	start := p.i
	sidLen := 0

	if strings.HasPrefix(p.src[p.i:], "<SID>") {
		sidLen = len("<SID>")
		p.i += sidLen
	}

	pieces, hasCurly := p.parseNamePieces()
	text := p.src[start:p.i]
	if sidLen > 0 {
		text = sidEncoded + p.src[start+sidLen:p.i]
	}
	if !hasCurly && len(pieces) == 1 && pieces[0].Kind == ast.ExprIdentPiece {
		return &ast.Expr{
			Kind: ast.ExprSimpleName, StrValue: text,
			StartPos: p.pos(start), EndPos: p.pos(p.i),
		}
	}
	return &ast.Expr{
		Kind: ast.ExprVarName, StrValue: text,
		Children: pieces, StartPos: p.pos(start), EndPos: p.pos(p.i),
	}
}

// parseNamePieces reads a run of identifier text and {expr} chunks,
// alternating IdentPiece and CurlyName nodes in source order (spec §3's
// invariant on variable-name children).
func (p *Parser) parseNamePieces() (pieces []*ast.Expr, hasCurly bool) {
	for {
		pieceStart := p.i
		for !p.eof() && isNameByte(p.peek()) {
			p.i++
		}
		if p.i > pieceStart {
			pieces = append(pieces, &ast.Expr{
				Kind: ast.ExprIdentPiece, StrValue: p.src[pieceStart:p.i],
				StartPos: p.pos(pieceStart), EndPos: p.pos(p.i),
			})
		}
		if p.peek() != '{' {
			break
		}
		hasCurly = true
		curlyStart := p.i
		p.i++ // '{'
		inner := p.ParseExpr()
		if p.peek() == '}' {
			p.i++
		} else {
			p.errorf(p.i, "E116: missing '}' in curly-brace name")
		}
		pieces = append(pieces, &ast.Expr{
			Kind: ast.ExprCurlyName, Children: []*ast.Expr{inner},
			StartPos: p.pos(curlyStart), EndPos: p.pos(p.i),
		})
	}
	return pieces, hasCurly
}

func isNameByte(b byte) bool {
	return lex.IsWordChar(b) || b == ':' || b == '#'
}
