package translate

import (
	"fmt"
	"strings"

	"vimlua.dev/vl/ast"
)

// scopeTable maps a scope letter to the Lua table it reads/writes through
// (spec §4.5: "a scope translator ... producing either a scope table and a
// key ... or state.current_scope").
var scopeTable = map[byte]string{
	'g': "state.g",
	's': "state.s",
	'v': "state.v",
	'a': "state.a",
	'l': "state.l",
	't': "state.tabpage.t",
	'w': "state.window.w",
	'b': "state.buffer.b",
}

// scopeAndKeyArgs returns the "scope, key" argument pair for a name
// expression, spliced into a vim.subscript.subscript/vim.assign.ass_dict call.
// A plain identifier resolves its scope prefix directly; a compound
// (curly-brace) name defers to vim.get_scope_and_key at runtime, since the
// scope prefix itself can be the product of a sub-expression.
func (t *Translator) scopeAndKeyArgs(e *ast.Expr) string {
	if e.Kind == ast.ExprSimpleName {
		scope, key := splitScopedName(e.StrValue)
		return fmt.Sprintf("%s, %s", scope, luaStringLiteral(key))
	}
	return fmt.Sprintf("vim.get_scope_and_key(state, %s)", t.concatName(e))
}

// splitScopedName separates a name's scope prefix ("g:", "s:", ...) from
// its key, defaulting to the current lexical scope when there is none.
func splitScopedName(name string) (scope, key string) {
	if len(name) >= 2 && name[1] == ':' {
		if table, ok := scopeTable[name[0]]; ok {
			return table, name[2:]
		}
	}
	return "state.current_scope", name
}

// concatName lowers a compound (curly-brace) name to a vim.concat call
// joining each piece's text (spec §4.5's "vim.concat(state, ...)").
func (t *Translator) concatName(e *ast.Expr) string {
	if e.Kind == ast.ExprSimpleName {
		return luaStringLiteral(e.StrValue)
	}
	parts := make([]string, len(e.Children))
	for i, c := range e.Children {
		switch c.Kind {
		case ast.ExprIdentPiece:
			parts[i] = luaStringLiteral(c.StrValue)
		case ast.ExprCurlyName:
			parts[i] = fmt.Sprintf("vim.to_string(state, %s)", t.expr(child(c, 0)))
		default:
			parts[i] = t.expr(c)
		}
	}
	return fmt.Sprintf("vim.concat(state, %s)", strings.Join(parts, ", "))
}
