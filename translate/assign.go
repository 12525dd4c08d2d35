package translate

import (
	"fmt"

	"vimlua.dev/vl/ast"
)

// emitLet lowers a :let/:const command (spec §4.5). A bare `:let x` with no
// operator (len(Args) == 1) only prints the variable and has no assignment
// to lower.
func (t *Translator) emitLet(n *ast.Cmd) {
	if len(n.Args) < 2 {
		return
	}
	lhs := n.Args[0].Expr
	rhsText := t.expr(n.Args[1].Expr)
	if n.AssignOp != ast.AssignSet {
		cur := t.expr(lhs)
		rhsText = fmt.Sprintf("%s(state, %s, %s)", modOpHelper(n.AssignOp), cur, rhsText)
	}
	t.emitAssign(lhs, rhsText)
}

func modOpHelper(op ast.AssignOp) string {
	switch op {
	case ast.AssignAdd:
		return "vim.op.mod_add"
	case ast.AssignSub:
		return "vim.op.mod_subtract"
	case ast.AssignConcat:
		return "vim.op.mod_concat"
	default:
		return "vim.op.mod_add"
	}
}

// emitAssign lowers one assignment target. A list literal target (`:let
// [a, b] = ...`) destructures; every other shape is a single assign call.
func (t *Translator) emitAssign(lhs *ast.Expr, rhs string) {
	if lhs.Kind == ast.ExprList {
		t.emitListDestructure(lhs, rhs)
		return
	}
	t.writeIndentf("%s\n", t.assignStmt(lhs, rhs))
}

// assignStmt renders the single-statement assignment form for lhs. A single
// subscript, a dot-access, and a plain name all lower through ass_dict; only
// a genuine slice target uses ass_slice (spec §4.5's vim.assign.* family,
// which names the target shape "dict" in every case but a two-bound slice).
func (t *Translator) assignStmt(lhs *ast.Expr, rhs string) string {
	switch lhs.Kind {
	case ast.ExprIndex:
		base, sub := t.expr(child(lhs, 0)), t.expr(child(lhs, 1))
		return fmt.Sprintf("vim.assign.ass_dict(state, %s, %s, %s)", rhs, base, sub)
	case ast.ExprSlice:
		base := t.expr(child(lhs, 0))
		lo, hi := t.exprOrNil(child(lhs, 1)), t.exprOrNil(child(lhs, 2))
		return fmt.Sprintf("vim.assign.ass_slice(state, %s, %s, %s, %s)", rhs, base, lo, hi)
	case ast.ExprConcatOrSub:
		base := t.expr(child(lhs, 0))
		return fmt.Sprintf("vim.assign.ass_dict(state, %s, %s, %s)", rhs, base, luaStringLiteral(lhs.FieldName))
	default:
		return fmt.Sprintf("vim.assign.ass_dict(state, %s, %s)", rhs, t.scopeAndKeyArgs(lhs))
	}
}

// emitListDestructure lowers `:let [a, b] = list` / `:let [a; rest] = list`
// to the length-checked assignment spec §4.5 describes: an exact-length
// match assigns each target, a longer list raises E688, a shorter one
// raises E687.
func (t *Translator) emitListDestructure(lhs *ast.Expr, rhs string) {
	n := len(lhs.Children)
	tmp := t.gensymName("rhs")
	t.writeIndentf("local %s = %s\n", tmp, rhs)
	t.writeIndentf("local %s_n = vim.list.length(state, %s)\n", tmp, tmp)
	t.writeIndentf("if %s_n == %d then\n", tmp, n)
	t.depth++
	for i, sub := range lhs.Children {
		item := fmt.Sprintf("vim.list.index(state, %s, %d)", tmp, i)
		t.writeIndentf("%s\n", t.assignStmt(sub, item))
	}
	t.depth--
	t.writeIndentf("elseif %s_n > %d then\n", tmp, n)
	t.depth++
	t.writeIndentln(`vim.err.err(state, "E688", "More targets than List items")`)
	t.depth--
	t.writeIndentln("else")
	t.depth++
	t.writeIndentln(`vim.err.err(state, "E687", "Less targets than List items")`)
	t.depth--
	t.writeIndentln("end")
}

// emitDelete lowers :unlet/:delfunction: each lvalue becomes one
// vim.assign.del_dict (or del_dict_function) call carrying the bang flag
// that silences a missing-target error.
func (t *Translator) emitDelete(n *ast.Cmd, isFunction bool) {
	if len(n.Args) == 0 {
		return
	}
	helper := "vim.assign.del_dict"
	if isFunction {
		helper = "vim.assign.del_dict_function"
	}
	for _, e := range n.Args[0].Exprs {
		t.writeIndentf("%s\n", t.deleteStmt(helper, luaBool(n.Bang), e))
	}
}

func (t *Translator) deleteStmt(helper, bang string, lhs *ast.Expr) string {
	switch lhs.Kind {
	case ast.ExprIndex:
		base, sub := t.expr(child(lhs, 0)), t.expr(child(lhs, 1))
		return fmt.Sprintf("%s(state, %s, %s, %s)", helper, bang, base, sub)
	case ast.ExprSlice:
		base := t.expr(child(lhs, 0))
		lo, hi := t.exprOrNil(child(lhs, 1)), t.exprOrNil(child(lhs, 2))
		return fmt.Sprintf("vim.assign.del_slice(state, %s, %s, %s, %s)", bang, base, lo, hi)
	case ast.ExprConcatOrSub:
		base := t.expr(child(lhs, 0))
		return fmt.Sprintf("%s(state, %s, %s, %s)", helper, bang, base, luaStringLiteral(lhs.FieldName))
	default:
		return fmt.Sprintf("%s(state, %s, %s)", helper, bang, t.scopeAndKeyArgs(lhs))
	}
}
