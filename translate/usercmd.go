package translate

import "vimlua.dev/vl/ast"

// emitUserCmd lowers a user-defined command to the generic dispatcher (spec
// §4.5): the parser doesn't know the command's own argument grammar, so the
// raw trailing text is handed through verbatim for vim.run_user_command to
// re-parse against the definition's -nargs/-complete spec at run time.
func (t *Translator) emitUserCmd(n *ast.Cmd) {
	raw := ""
	if len(n.Args) > 0 {
		raw = n.Args[0].Str
	}
	t.writeIndentf("vim.run_user_command(state, %s, %s, %s, %s)\n",
		luaStringLiteral(n.UserName), t.rangeExpr(n.Range), luaBool(n.Bang), luaStringLiteral(raw))
}
