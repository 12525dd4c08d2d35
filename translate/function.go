package translate

import (
	"fmt"
	"strings"

	"vimlua.dev/vl/ast"
)

// emitFunction lowers a :function/:endfunction definition (spec §4.5) to
// vim.assign.ass_dict_function(state, notUnique, function(state, self, ...)
// ... end, scope, 'name'), descending into the body with the lowering
// context switched to ContextFunction so nested :return/:finish resolve
// correctly.
func (t *Translator) emitFunction(n *ast.Cmd) {
	if len(n.Args) == 0 {
		return // bare `:function`: lists all functions, nothing to lower
	}
	name := ""
	if n.Args[0].Regex != nil {
		name = n.Args[0].Regex.Source
	}
	var params []string
	if len(n.Args) > 1 {
		params = n.Args[1].Strings
	}

	var sig strings.Builder
	sig.WriteString("function(state, self")
	variadic := false
	for _, p := range params {
		if p == "..." {
			variadic = true
			continue
		}
		fmt.Fprintf(&sig, ", %s", p)
	}
	if variadic {
		sig.WriteString(", ...")
	}
	sig.WriteString(")")

	scope, key := splitScopedName(name)

	t.writeIndentf("vim.assign.ass_dict_function(state, %s, %s\n", luaBool(n.Bang), sig.String())
	t.depth++
	savedCtx := t.ctx
	t.ctx = ContextFunction
	t.body(n.FirstChild)
	t.ctx = savedCtx
	t.writeIndentln("return vim.number.new(state, 0)")
	t.depth--
	t.writeIndentf("end, %s, %s)\n", scope, luaStringLiteral(key))
}
