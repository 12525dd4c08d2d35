package translate

import (
	"fmt"

	"vimlua.dev/vl/ast"
	"vimlua.dev/vl/exprparse"
)

func argCond(n *ast.Cmd) *ast.Expr {
	if len(n.Args) == 0 {
		return nil
	}
	return n.Args[0].Expr
}

// emitIfChain lowers an :if/:elseif*/:else?/:endif group (spec §4.5). The
// continuations are linked as Next siblings of the opener, not children
// (the block reconciler's shape, shared with dump); the chain ends at the
// first sibling that is neither :elseif nor :else.
func (t *Translator) emitIfChain(n *ast.Cmd) *ast.Cmd {
	t.writeIndentf("if vim.get_boolean(state, %s) then\n", t.expr(argCond(n)))
	t.depth++
	t.body(n.FirstChild)
	t.depth--

	cur := n.Next
	for cur != nil && (string(cur.Kind) == "elseif" || string(cur.Kind) == "else") {
		if string(cur.Kind) == "elseif" {
			t.writeIndentf("elseif vim.get_boolean(state, %s) then\n", t.expr(argCond(cur)))
		} else {
			t.writeIndentln("else")
		}
		t.depth++
		t.body(cur.FirstChild)
		t.depth--
		cur = cur.Next
	}
	t.writeIndentln("end")
	return cur
}

// emitWhile lowers a :while/:endwhile block to a native Lua while loop.
func (t *Translator) emitWhile(n *ast.Cmd) {
	t.writeIndentf("while vim.get_boolean(state, %s) do\n", t.expr(argCond(n)))
	t.depth++
	t.body(n.FirstChild)
	t.writeIndentln("::continue::")
	t.depth--
	t.writeIndentln("end")
}

// emitFor lowers a :for/:endfor block to `for _, item in vim.iter(...) do`,
// destructuring the loop variable(s) on entry the same way :let does (spec
// §4.5).
func (t *Translator) emitFor(n *ast.Cmd) {
	if len(n.Args) < 2 {
		return
	}
	varSpec := n.Args[0].Str
	listExpr := t.expr(n.Args[1].Expr)
	item := t.gensymName("item")
	t.writeIndentf("for _, %s in vim.iter(state, %s) do\n", item, listExpr)
	t.depth++
	if lhs, err := exprparse.ParseExpr0(varSpec); err == nil {
		t.emitAssign(lhs, item)
	}
	t.body(n.FirstChild)
	t.writeIndentln("::continue::")
	t.depth--
	t.writeIndentln("end")
}

// emitTryChain lowers a :try/:catch*/:finally?/:endtry group (spec §4.5):
// the guarded body runs under pcall, a pattern-matched dispatcher tries
// each :catch in turn, an uncaught error propagates via vim.err.propagate,
// and the :finally body (if any) always runs, with the return value
// threaded through a local.
func (t *Translator) emitTryChain(n *ast.Cmd) *ast.Cmd {
	ok, errv := t.gensymName("ok"), t.gensymName("err")
	ret := t.gensymName("ret")
	t.writeIndentln("do")
	t.depth++
	t.writeIndentf("local %s\n", ret)
	t.writeIndentf("local %s, %s = pcall(function()\n", ok, errv)
	t.depth++
	t.writeIndentf("%s = (function()\n", ret)
	t.depth++
	t.body(n.FirstChild)
	t.depth--
	t.writeIndentln("end)()")
	t.depth--
	t.writeIndentln("end)")

	cur := n.Next
	var catches []*ast.Cmd
	var finally *ast.Cmd
	for cur != nil && (string(cur.Kind) == "catch" || string(cur.Kind) == "finally") {
		if string(cur.Kind) == "catch" {
			catches = append(catches, cur)
		} else {
			finally = cur
		}
		cur = cur.Next
	}

	if len(catches) > 0 {
		t.writeIndentf("if not %s then\n", ok)
		t.depth++
		t.writeIndentln("local handled = false")
		for i, c := range catches {
			pattern := `".*"`
			if len(c.Args) > 0 && c.Args[0].Regex != nil {
				pattern = luaStringLiteral(c.Args[0].Regex.Source)
			}
			cond := fmt.Sprintf("vim.err.matches(state, %s, %s)", errv, pattern)
			if i == 0 {
				t.writeIndentf("if %s then\n", cond)
			} else {
				t.writeIndentf("elseif %s then\n", cond)
			}
			t.depth++
			t.writeIndentln("handled = true")
			t.body(c.FirstChild)
			t.depth--
		}
		t.writeIndentln("end")
		t.writeIndentln("if not handled then")
		t.depth++
		t.writeIndentf("vim.err.propagate(state, %s)\n", errv)
		t.depth--
		t.writeIndentln("end")
		t.depth--
		t.writeIndentln("end")
	} else {
		t.writeIndentf("if not %s then\n", ok)
		t.depth++
		t.writeIndentf("vim.err.propagate(state, %s)\n", errv)
		t.depth--
		t.writeIndentln("end")
	}

	if finally != nil {
		t.writeIndentln("do")
		t.depth++
		t.body(finally.FirstChild)
		t.depth--
		t.writeIndentln("end")
	}
	t.depth--
	t.writeIndentln("end")
	return cur
}

// emitReturn lowers :return. Outside a function body it is a static error
// (E133), mirroring spec §4.5's context-dependent rule.
func (t *Translator) emitReturn(n *ast.Cmd) {
	if t.ctx != ContextFunction {
		t.writeIndentln(`vim.err.err(state, "E133", ":return not inside a function")`)
		return
	}
	if len(n.Args) > 0 && n.Args[0].Expr != nil {
		t.writeIndentf("return %s\n", t.expr(n.Args[0].Expr))
		return
	}
	t.writeIndentln("return vim.number.new(state, 0)")
}

// emitFinish lowers :finish. In a sourced script it ends the run function
// early; everywhere else it is a static error (E168), per spec §4.5.
func (t *Translator) emitFinish(n *ast.Cmd) {
	if t.ctx == ContextScript {
		t.writeIndentln("return nil")
		return
	}
	t.writeIndentln(`vim.err.err(state, "E168", ":finish used outside of a sourced file")`)
}
