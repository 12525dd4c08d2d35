package dump

import (
	"strings"

	"vimlua.dev/vl/ast"
)

// exprRepr renders one expression node (spec §4.4's expression dumper):
// operator glyph from a fixed table, a case-compare suffix on comparisons,
// [+content+]/[!c!] markers around literals, parenthesised operator
// children, comma-separated siblings.
func exprRepr(e *ast.Expr) string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case ast.ExprNumber:
		return literalMark(hexSigned(e.IntValue))
	case ast.ExprFloat:
		if e.FloatValue == nil {
			return literalMark("0")
		}
		return literalMark(e.FloatValue.String())
	case ast.ExprDQString:
		return literalMark(vimStringRepr(e.StrValue))
	case ast.ExprSQString:
		return literalMark(vimStringRepr(e.StrValue))
	case ast.ExprOption:
		var b strings.Builder
		b.WriteByte('&')
		if e.OptionScope != 0 {
			b.WriteByte(e.OptionScope)
			b.WriteByte(':')
		}
		b.WriteString(e.StrValue)
		return literalMark(b.String())
	case ast.ExprRegister:
		return literalMark("@" + e.StrValue)
	case ast.ExprEnvVar:
		return literalMark("$" + e.StrValue)

	case ast.ExprSimpleName:
		return e.StrValue
	case ast.ExprIdentPiece:
		return e.StrValue
	case ast.ExprCurlyName:
		return "{" + exprRepr(child(e, 0)) + "}"
	case ast.ExprVarName:
		var b strings.Builder
		for _, c := range e.Children {
			b.WriteString(exprRepr(c))
		}
		return b.String()

	case ast.ExprList:
		return "[" + joinExprs(e.Children) + "]"
	case ast.ExprDict:
		var parts []string
		for i := 0; i+1 < len(e.Children); i += 2 {
			parts = append(parts, exprRepr(e.Children[i])+": "+exprRepr(e.Children[i+1]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case ast.ExprParen:
		return "(" + exprRepr(child(e, 0)) + ")"
	case ast.ExprEmptySub:
		return ""

	case ast.ExprIndex:
		return exprRepr(child(e, 0)) + "[" + exprRepr(child(e, 1)) + "]"
	case ast.ExprSlice:
		return exprRepr(child(e, 0)) + "[" + exprRepr(child(e, 1)) + ":" + exprRepr(child(e, 2)) + "]"
	case ast.ExprConcatOrSub:
		return exprRepr(child(e, 0)) + "." + e.FieldName
	case ast.ExprCall:
		if len(e.Children) == 0 {
			return "()"
		}
		return exprRepr(e.Children[0]) + "(" + joinExprs(e.Children[1:]) + ")"

	case ast.ExprTernary:
		return "(" + exprRepr(child(e, 0)) + " ? " + exprRepr(child(e, 1)) + " : " + exprRepr(child(e, 2)) + ")"
	case ast.ExprOr:
		return binaryRepr(e, "||")
	case ast.ExprAnd:
		return binaryRepr(e, "&&")
	case ast.ExprCompare:
		return "(" + exprRepr(child(e, 0)) + " " + cmpGlyph(e.CmpOp) + caseSuffix(e.CaseMode) + " " + exprRepr(child(e, 1)) + ")"
	case ast.ExprAdd:
		return binaryRepr(e, "+")
	case ast.ExprSub:
		return binaryRepr(e, "-")
	case ast.ExprConcat:
		return binaryRepr(e, ".")
	case ast.ExprMul:
		return binaryRepr(e, "*")
	case ast.ExprDiv:
		return binaryRepr(e, "/")
	case ast.ExprMod:
		return binaryRepr(e, "%")
	case ast.ExprNot:
		return "(!" + exprRepr(child(e, 0)) + ")"
	case ast.ExprNeg:
		return "(-" + exprRepr(child(e, 0)) + ")"
	case ast.ExprPos:
		return "(+" + exprRepr(child(e, 0)) + ")"
	}
	return "<invalid>"
}

// literalMark wraps a literal's content in the position markers spec §4.4
// calls for ("[+content+] ... for literals").
func literalMark(s string) string {
	return "[+" + s + "+]"
}

func child(e *ast.Expr, i int) *ast.Expr {
	if i >= len(e.Children) {
		return nil
	}
	return e.Children[i]
}

func binaryRepr(e *ast.Expr, glyph string) string {
	return "(" + exprRepr(child(e, 0)) + " " + glyph + " " + exprRepr(child(e, 1)) + ")"
}

func joinExprs(exprs []*ast.Expr) string {
	parts := make([]string, len(exprs))
	for i, c := range exprs {
		parts[i] = exprRepr(c)
	}
	return strings.Join(parts, ", ")
}

func cmpGlyph(op ast.CompareOp) string {
	switch op {
	case ast.CmpEq:
		return "=="
	case ast.CmpNe:
		return "!="
	case ast.CmpGt:
		return ">"
	case ast.CmpGe:
		return ">="
	case ast.CmpLt:
		return "<"
	case ast.CmpLe:
		return "<="
	case ast.CmpIs:
		return "is"
	case ast.CmpIsNot:
		return "isnot"
	case ast.CmpMatches:
		return "=~"
	case ast.CmpNotMatches:
		return "!~"
	}
	return "?"
}

func caseSuffix(c ast.CaseCompare) string {
	switch c {
	case ast.CaseMatch:
		return "#"
	case ast.CaseIgnore:
		return "?"
	default:
		return ""
	}
}

// specialArgFlagsRepr renders a bitmask flags slot (used by :map, :menu,
// :autocmd and friends) as a hex literal when no textual form is known.
func specialArgFlagsRepr(fl uint32) string {
	return hexUnsigned(uint64(fl))
}
