package translate

import (
	"fmt"
	"strings"

	"vimlua.dev/vl/ast"
)

// rangeExpr lowers a command's address range to the vim.range.compose chain
// spec §4.5 describes, or the literal nil a command without a range passes.
// Each atom is paired with a setpos flag: a ';' separator moves the cursor
// to the previous atom's line before the next one is evaluated, a ','
// doesn't.
func (t *Translator) rangeExpr(r *ast.Range) string {
	if r == nil || r.Empty() {
		return "nil"
	}
	var parts []string
	setpos := "false"
	for n := r; n != nil; n = n.Next {
		parts = append(parts, t.addressAtom(n.Addr), setpos)
		if n.Separator == ast.SepSemi {
			setpos = "true"
		} else {
			setpos = "false"
		}
	}
	return fmt.Sprintf("vim.range.compose(state, %s)", strings.Join(parts, ", "))
}

// addressAtom lowers one address atom to its vim.range.* constructor call,
// with any followups folded in via vim.range.apply_followup (spec §4.5).
func (t *Translator) addressAtom(a *ast.Address) string {
	if a == nil {
		return "vim.range.current(state)"
	}
	var atom string
	switch a.Kind {
	case ast.AddrFixedLine:
		atom = fmt.Sprintf("vim.range.line(state, %d)", a.Line)
	case ast.AddrEndOfFile:
		atom = "vim.range.last(state)"
	case ast.AddrCurrentLine:
		atom = "vim.range.current(state)"
	case ast.AddrMark:
		atom = fmt.Sprintf("vim.range.mark(state, %s)", luaStringLiteral(string(a.Mark)))
	case ast.AddrForwardRegex:
		atom = fmt.Sprintf("vim.range.forward_search(state, %s)", luaStringLiteral(regexSource(a.Regex)))
	case ast.AddrBackwardRegex:
		atom = fmt.Sprintf("vim.range.backward_search(state, %s)", luaStringLiteral(regexSource(a.Regex)))
	case ast.AddrForwardPrevious:
		atom = "vim.range.forward_previous_search(state)"
	case ast.AddrBackwardPrevious:
		atom = "vim.range.backward_previous_search(state)"
	case ast.AddrSubstitutePrevious:
		atom = "vim.range.substitute_search(state)"
	default:
		atom = "vim.range.current(state)"
	}
	for _, f := range a.Followups {
		atom = t.followupExpr(f, atom)
	}
	return atom
}

func (t *Translator) followupExpr(f *ast.AddressFollowup, atom string) string {
	switch f.Kind {
	case ast.FollowupShift:
		return fmt.Sprintf("vim.range.apply_followup(state, \"shift\", %d, %s)", f.Shift, atom)
	case ast.FollowupForwardRegex:
		return fmt.Sprintf("vim.range.apply_followup(state, \"forward_search\", %s, %s)", luaStringLiteral(regexSource(f.Regex)), atom)
	case ast.FollowupBackwardRegex:
		return fmt.Sprintf("vim.range.apply_followup(state, \"backward_search\", %s, %s)", luaStringLiteral(regexSource(f.Regex)), atom)
	}
	return atom
}

func regexSource(r *ast.Regex) string {
	if r == nil {
		return ""
	}
	return r.Source
}

// argExpr lowers one ast.Arg slot to a Lua argument expression, used by
// emitSimple for every command without bespoke control-flow handling.
func (t *Translator) argExpr(a ast.Arg) string {
	switch a.Kind {
	case ast.ArgExpression:
		return t.expr(a.Expr)
	case ast.ArgExpressions:
		return fmt.Sprintf("{%s}", t.exprCSV(a.Exprs))
	case ast.ArgFlags:
		if a.Flags != 0 {
			return fmt.Sprintf("%d", a.Flags)
		}
		if len(a.Strings) > 0 {
			parts := make([]string, len(a.Strings))
			for i, s := range a.Strings {
				parts[i] = luaStringLiteral(s)
			}
			return "{" + strings.Join(parts, ", ") + "}"
		}
		return luaStringLiteral(a.Str)
	case ast.ArgNumber:
		return fmt.Sprintf("%d", a.Number)
	case ast.ArgUNumber:
		return fmt.Sprintf("%d", a.UNumber)
	case ast.ArgNumberArray:
		parts := make([]string, len(a.Numbers))
		for i, n := range a.Numbers {
			parts[i] = fmt.Sprintf("%d", n)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case ast.ArgChar:
		return luaStringLiteral(string(a.Char))
	case ast.ArgString:
		return luaStringLiteral(a.Str)
	case ast.ArgStringArray:
		parts := make([]string, len(a.Strings))
		for i, s := range a.Strings {
			parts[i] = luaStringLiteral(s)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case ast.ArgPattern:
		return luaStringLiteral(regexSource(a.Pattern))
	case ast.ArgGlob:
		return luaStringLiteral(a.Glob)
	case ast.ArgRegex:
		return luaStringLiteral(regexSource(a.Regex))
	case ast.ArgReplacement:
		return luaStringLiteral(a.Replacement)
	case ast.ArgMenuChain:
		return luaStringLiteral(menuChainText(a.MenuChain))
	case ast.ArgAutocmdEvents:
		names := make([]string, len(a.Events))
		for i, ev := range a.Events {
			names[i] = luaStringLiteral(ev.Name)
		}
		return "{" + strings.Join(names, ", ") + "}"
	case ast.ArgAddress:
		return fmt.Sprintf("vim.range.compose(state, %s, false)", t.addressAtom(a.Address))
	case ast.ArgCmdComplete:
		if a.Complete == nil {
			return "nil"
		}
		return fmt.Sprintf("{kind = %s, custom = %s}", luaStringLiteral(a.Complete.Kind), luaStringLiteral(a.Complete.Custom))
	case ast.ArgSubArgs:
		return luaStringLiteral(a.ExprSource)
	case ast.ArgPosition:
		return fmt.Sprintf("{line = %d, column = %d}", a.Position.Line, a.Position.Column)
	case ast.ArgColumn:
		return fmt.Sprintf("%d", a.Column)
	case ast.ArgCommand:
		return "nil" // a nested command has no value form; :global passes its source text through the ArgSubArgs slot
	}
	return "nil"
}

func menuChainText(m *ast.MenuItem) string {
	var parts []string
	for n := m; n != nil; n = n.SubItem {
		parts = append(parts, n.Name)
	}
	return strings.Join(parts, ".")
}
