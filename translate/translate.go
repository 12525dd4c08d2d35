// Package translate implements the Lua emitter of spec §4.5: it lowers an
// ast.Cmd sibling chain to Lua source text that drives the vim.* runtime
// (out of this module's scope, see spec.md's Non-goals) through a small,
// fixed calling convention: every command becomes a vim.commands.NAME call,
// every expression lowers to a vim.* helper call or table lookup, and
// control flow lowers to native Lua if/while/for/pcall.
//
// The printer-over-a-writer shape follows cue/format's formatter: a single
// struct carrying the output writer and the current indent depth, with one
// method per node shape instead of a configurable pretty-printer.
package translate

import (
	"fmt"
	"io"
	"strings"

	"vimlua.dev/vl/ast"
)

// Context is the lowering context spec §4.5 threads through the visitor:
// it changes what :return, :finish and the top-level wrapper produce.
type Context int

const (
	// ContextScript is a sourced script: the top level wraps in a
	// { run = function(state) ... end } module table.
	ContextScript Context = iota
	// ContextUser is a single interactively-typed command or colon-range:
	// the top level is a bare statement sequence fetching the top state.
	ContextUser
	// ContextFunction is the body of a :function definition.
	ContextFunction
)

// Translator lowers one sibling chain of ast.Cmd nodes to Lua, writing
// incrementally to w so a caller can stream large scripts without holding
// the whole output in memory.
type Translator struct {
	w      io.Writer
	err    error
	depth  int
	ctx    Context
	indent string
	gensym int
}

// New returns a Translator writing to w in context ctx. indentWidth is the
// number of spaces per nesting level; 0 selects the default of two.
func New(w io.Writer, ctx Context, indentWidth int) *Translator {
	if indentWidth <= 0 {
		indentWidth = 2
	}
	return &Translator{w: w, ctx: ctx, indent: strings.Repeat(" ", indentWidth)}
}

// Translate lowers root's sibling chain to Lua source (spec §4.5), writing
// the script/user top-level shape around it. It returns the first write
// error encountered, if any; once a write fails, translation stops
// emitting and every subsequent step is a no-op (spec §4.5's "a writer
// callback failure short-circuits the translation with a failure status").
func Translate(w io.Writer, ctx Context, root *ast.Cmd, indentWidth int) error {
	t := New(w, ctx, indentWidth)
	switch ctx {
	case ContextScript:
		t.writeln("return {")
		t.writeln(t.indent + "run = function(state)")
		t.depth = 2
		t.body(root)
		t.depth = 0
		t.writeln(t.indent + "end,")
		t.writeln("}")
	default:
		t.writeln("local state = vim.state.get_top()")
		t.body(root)
	}
	return t.err
}

func (t *Translator) fail(err error) {
	if t.err == nil {
		t.err = err
	}
}

func (t *Translator) writeIndentf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	prefix := strings.Repeat(t.indent, t.depth)
	if _, err := io.WriteString(t.w, prefix); err != nil {
		t.fail(err)
		return
	}
	if _, err := fmt.Fprintf(t.w, format, args...); err != nil {
		t.fail(err)
	}
}

func (t *Translator) writeIndentln(s string) {
	t.writeIndentf("%s\n", s)
}

func (t *Translator) writeln(s string) {
	if t.err != nil {
		return
	}
	if _, err := fmt.Fprintf(t.w, "%s\n", s); err != nil {
		t.fail(err)
	}
}

// gensymName returns a fresh local-variable name, used for destructuring
// targets and pcall result holders where a stable name would shadow on
// nested use.
func (t *Translator) gensymName(base string) string {
	t.gensym++
	return fmt.Sprintf("__vl_%s%d", base, t.gensym)
}

// body translates the Next-chain starting at c at the translator's current
// depth. It special-cases :if/:try chains, whose :elseif/:else/:catch/
// :finally continuations are linked as Next siblings of the opener rather
// than as children (spec §4.4's block-reconciler shape, reused here).
func (t *Translator) body(c *ast.Cmd) {
	for n := c; n != nil; {
		n = t.emitOne(n)
	}
}

// emitOne emits one command, consuming any attached continuation siblings,
// and returns the sibling translation should resume from.
func (t *Translator) emitOne(n *ast.Cmd) *ast.Cmd {
	if n.Kind == ast.CmdSyntaxError {
		// A line that failed to parse has no Lua rendering; a comment
		// marks where it would have gone so the surrounding line numbers
		// stay legible in the generated source.
		t.writeIndentln("-- syntax error, not translated")
		return n.Next
	}
	switch string(n.Kind) {
	case "if":
		return t.emitIfChain(n)
	case "try":
		return t.emitTryChain(n)
	case "while":
		t.emitWhile(n)
		return n.Next
	case "for":
		t.emitFor(n)
		return n.Next
	case "function":
		t.emitFunction(n)
		return n.Next
	case "let", "const":
		t.emitLet(n)
		return n.Next
	case "unlet":
		t.emitDelete(n, false)
		return n.Next
	case "delfunction":
		t.emitDelete(n, true)
		return n.Next
	case "return":
		t.emitReturn(n)
		return n.Next
	case "finish":
		t.emitFinish(n)
		return n.Next
	case "break":
		t.writeIndentln("break")
		return n.Next
	case "continue":
		t.writeIndentln("goto continue")
		return n.Next
	case string(ast.CmdMissing), string(ast.CmdComment), string(ast.CmdHashbangComment):
		// Blank lines and comments carry no runtime effect. A range-only
		// line is CmdPrint and lowers like an explicit :print.
		return n.Next
	default:
		if n.Kind == ast.CmdUser {
			t.emitUserCmd(n)
		} else {
			t.emitSimple(n)
		}
		return n.Next
	}
}

// emitSimple lowers every command without bespoke control-flow handling to
// a single vim.commands.NAME(state, range, bang, exflags, args...) call
// (spec §4.5): the common case covering :echo, :call, :substitute, and the
// bulk of the command table.
func (t *Translator) emitSimple(n *ast.Cmd) {
	name := commandCallName(string(n.Kind))
	var b strings.Builder
	fmt.Fprintf(&b, "vim.commands.%s(state, %s, %s, %s", name, t.rangeExpr(n.Range), luaBool(n.Bang), exflagsTable(n.ExFlags))
	for _, arg := range n.Args {
		b.WriteString(", ")
		b.WriteString(t.argExpr(arg))
	}
	b.WriteString(")")
	t.writeIndentf("%s\n", b.String())
}

// commandCallName resolves the key under vim.commands a command's name
// lowers to, bracket-quoting it when it isn't a valid Lua identifier (spec
// §4.5: "bracket-quoted name if non-alphabetic").
func commandCallName(name string) string {
	alnum := true
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_') {
			alnum = false
			break
		}
	}
	if alnum && name != "" {
		return name
	}
	return "[" + luaStringLiteral(name) + "]"
}

func luaBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func exflagsTable(fl ast.ExFlags) string {
	var parts []string
	if fl&ast.ExFlagList != 0 {
		parts = append(parts, "list = true")
	}
	if fl&ast.ExFlagHash != 0 {
		parts = append(parts, "hash = true")
	}
	if fl&ast.ExFlagPrint != 0 {
		parts = append(parts, "print = true")
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// luaStringLiteral renders s as a double-quoted Lua string literal, escaping
// quotes, backslashes, and control bytes as \NNN decimal triples (spec
// §4.5's description of the translator's string-literal escaping, shared
// with dump's vim.string.new convention).
func luaStringLiteral(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20:
			fmt.Fprintf(&b, `\%03d`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
