package translate

import (
	"fmt"
	"strings"

	"vimlua.dev/vl/ast"
)

// expr lowers one expression node to a Lua value expression (spec §4.5).
func (t *Translator) expr(e *ast.Expr) string {
	if e == nil {
		return "nil"
	}
	switch e.Kind {
	case ast.ExprNumber:
		return fmt.Sprintf("vim.number.new(state, %d)", e.IntValue)
	case ast.ExprFloat:
		if e.FloatValue == nil {
			return "vim.float:new(state, 0)"
		}
		return fmt.Sprintf("vim.float:new(state, %s)", e.FloatValue.String())
	case ast.ExprDQString, ast.ExprSQString:
		return fmt.Sprintf("vim.string.new(state, %s)", luaStringLiteral(e.StrValue))
	case ast.ExprOption:
		return t.optionExpr(e)
	case ast.ExprRegister:
		return fmt.Sprintf("state.registers[%s]", luaStringLiteral(e.StrValue))
	case ast.ExprEnvVar:
		return fmt.Sprintf("state.environment[%s]", luaStringLiteral(e.StrValue))

	case ast.ExprSimpleName, ast.ExprVarName:
		return fmt.Sprintf("vim.subscript.subscript(state, false, %s)", t.scopeAndKeyArgs(e))

	case ast.ExprList:
		return fmt.Sprintf("vim.list:new(state%s)", prefixedCSV(t.exprCSV(e.Children)))
	case ast.ExprDict:
		return t.dictExpr(e)
	case ast.ExprParen:
		return "(" + t.expr(child(e, 0)) + ")"
	case ast.ExprEmptySub:
		return "nil"

	case ast.ExprIndex:
		return fmt.Sprintf("vim.subscript.subscript(state, true, %s, %s)", t.expr(child(e, 0)), t.expr(child(e, 1)))
	case ast.ExprSlice:
		return fmt.Sprintf("vim.subscript.slice(state, %s, %s, %s)", t.expr(child(e, 0)), t.exprOrNil(child(e, 1)), t.exprOrNil(child(e, 2)))
	case ast.ExprConcatOrSub:
		return fmt.Sprintf("vim.concat_or_subscript(state, %s, %s)", luaStringLiteral(e.FieldName), t.expr(child(e, 0)))
	case ast.ExprCall:
		return t.callExpr(e)

	case ast.ExprTernary:
		return fmt.Sprintf("(function() if vim.get_boolean(state, %s) then return %s else return %s end end)()",
			t.expr(child(e, 0)), t.expr(child(e, 1)), t.expr(child(e, 2)))
	case ast.ExprOr:
		return fmt.Sprintf("vim.op.logical_or(state, %s, %s)", t.expr(child(e, 0)), t.expr(child(e, 1)))
	case ast.ExprAnd:
		return fmt.Sprintf("vim.op.logical_and(state, %s, %s)", t.expr(child(e, 0)), t.expr(child(e, 1)))
	case ast.ExprCompare:
		return t.compareExpr(e)
	case ast.ExprAdd:
		return fmt.Sprintf("vim.op.add(state, %s, %s)", t.expr(child(e, 0)), t.expr(child(e, 1)))
	case ast.ExprSub:
		return fmt.Sprintf("vim.op.subtract(state, %s, %s)", t.expr(child(e, 0)), t.expr(child(e, 1)))
	case ast.ExprConcat:
		return fmt.Sprintf("vim.op.concat(state, %s, %s)", t.expr(child(e, 0)), t.expr(child(e, 1)))
	case ast.ExprMul:
		return fmt.Sprintf("vim.op.multiply(state, %s, %s)", t.expr(child(e, 0)), t.expr(child(e, 1)))
	case ast.ExprDiv:
		return fmt.Sprintf("vim.op.divide(state, %s, %s)", t.expr(child(e, 0)), t.expr(child(e, 1)))
	case ast.ExprMod:
		return fmt.Sprintf("vim.op.modulo(state, %s, %s)", t.expr(child(e, 0)), t.expr(child(e, 1)))
	case ast.ExprNot:
		return fmt.Sprintf("vim.op.negate_logical(state, %s)", t.expr(child(e, 0)))
	case ast.ExprNeg:
		return fmt.Sprintf("vim.op.negate(state, %s)", t.expr(child(e, 0)))
	case ast.ExprPos:
		return fmt.Sprintf("vim.op.promote_integer(state, %s)", t.expr(child(e, 0)))
	}
	return "nil"
}

func (t *Translator) exprOrNil(e *ast.Expr) string {
	if e == nil || e.Kind == ast.ExprEmptySub {
		return "nil"
	}
	return t.expr(e)
}

func child(e *ast.Expr, i int) *ast.Expr {
	if i >= len(e.Children) {
		return nil
	}
	return e.Children[i]
}

func (t *Translator) exprCSV(exprs []*ast.Expr) string {
	parts := make([]string, len(exprs))
	for i, c := range exprs {
		parts[i] = t.expr(c)
	}
	return strings.Join(parts, ", ")
}

func (t *Translator) dictExpr(e *ast.Expr) string {
	var parts []string
	for i := 0; i+1 < len(e.Children); i += 2 {
		parts = append(parts, t.expr(e.Children[i]), t.expr(e.Children[i+1]))
	}
	return fmt.Sprintf("vim.dict:new(state%s)", prefixedCSV(strings.Join(parts, ", ")))
}

// prefixedCSV prepends ", " to a non-empty comma-separated argument list, so
// a trailing vim.list:new(state)/vim.dict:new(state) call stays valid when
// there are no elements.
func prefixedCSV(csv string) string {
	if csv == "" {
		return ""
	}
	return ", " + csv
}

// callExpr lowers a call expression to vim.subscript.call, the same
// OPERATOR-family helper the original translator uses for kExprCall: the
// callee is its first argument, the remaining arguments follow positionally.
func (t *Translator) callExpr(e *ast.Expr) string {
	if len(e.Children) == 0 {
		return "vim.subscript.call(state, nil)"
	}
	callee := e.Children[0]
	args := e.Children[1:]
	return fmt.Sprintf("vim.subscript.call(state, %s%s)", t.funcRefExpr(callee), prefixedCSV(t.exprCSV(args)))
}

// funcRefExpr resolves a call's callee through the same name-subscript path
// as a variable read, but with the scope selection biased toward
// vim.functions for a bare lowercase name (spec §4.5's TS_FUNCCALL rule).
func (t *Translator) funcRefExpr(callee *ast.Expr) string {
	if callee.Kind == ast.ExprSimpleName && isBuiltinFuncName(callee.StrValue) {
		return fmt.Sprintf("vim.subscript.subscript(state, false, vim.functions, %s)", luaStringLiteral(callee.StrValue))
	}
	if callee.Kind == ast.ExprSimpleName || callee.Kind == ast.ExprVarName {
		return fmt.Sprintf("vim.subscript.subscript(state, false, %s)", t.scopeAndKeyArgs(callee))
	}
	// A parenthesised or subscripted expression in callee position
	// (e.g. `g:Handlers[i]()`) is already a function value.
	return t.expr(callee)
}

func isBuiltinFuncName(name string) bool {
	return len(name) > 0 && name[0] >= 'a' && name[0] <= 'z' && !strings.ContainsAny(name, ":#")
}

// optionExpr lowers &name / &g:name / &l:name to the locality-aware option
// lookup spec §4.5 describes.
func (t *Translator) optionExpr(e *ast.Expr) string {
	switch e.OptionScope {
	case 'g':
		return fmt.Sprintf("vim.options.get_global(state, %s)", luaStringLiteral(e.StrValue))
	case 'l':
		return fmt.Sprintf("vim.options.get_local(state, %s)", luaStringLiteral(e.StrValue))
	default:
		return fmt.Sprintf("vim.options.get(state, %s)", luaStringLiteral(e.StrValue))
	}
}

// compareExpr lowers a comparison, wrapping the negative family (!=, isnot,
// !~) in vim.op.negate_logical around the positive comparator (spec §4.5).
func (t *Translator) compareExpr(e *ast.Expr) string {
	ignoreCase := caseModeIgnoreArg(e.CaseMode)
	lhs, rhs := t.expr(child(e, 0)), t.expr(child(e, 1))
	switch e.CmpOp {
	case ast.CmpNe:
		return fmt.Sprintf("vim.op.negate_logical(state, vim.op.compare(state, \"==\", %s, %s, %s))", ignoreCase, lhs, rhs)
	case ast.CmpIsNot:
		return fmt.Sprintf("vim.op.negate_logical(state, vim.op.compare(state, \"is\", %s, %s, %s))", ignoreCase, lhs, rhs)
	case ast.CmpNotMatches:
		return fmt.Sprintf("vim.op.negate_logical(state, vim.op.compare(state, \"=~\", %s, %s, %s))", ignoreCase, lhs, rhs)
	default:
		return fmt.Sprintf("vim.op.compare(state, %s, %s, %s, %s)", luaStringLiteral(cmpOpName(e.CmpOp)), ignoreCase, lhs, rhs)
	}
}

func cmpOpName(op ast.CompareOp) string {
	switch op {
	case ast.CmpEq:
		return "=="
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
	case ast.CmpMatches:
		return "=~"
	}
	return "=="
}

func caseModeIgnoreArg(c ast.CaseCompare) string {
	switch c {
	case ast.CaseMatch:
		return "false"
	case ast.CaseIgnore:
		return "true"
	default:
		return "state.global.options.ignorecase"
	}
}
