package translate

import (
	"bytes"
	"testing"

	"github.com/go-quicktest/qt"

	"vimlua.dev/vl/ast"
	"vimlua.dev/vl/excmd"
	"vimlua.dev/vl/token"
)

func parseOne(t *testing.T, line string) *ast.Cmd {
	t.Helper()
	file := token.NewFile("test", len(line))
	cmd, errs := excmd.ParseOneCmd(file, 0, line, 0)
	qt.Assert(t, qt.HasLen(errs, 0))
	return cmd
}

func parseSeq(t *testing.T, lines []string) *ast.Cmd {
	t.Helper()
	file := token.NewFile("test", 0)
	seq, errs := excmd.ParseCmdSequence(file, excmd.NewSliceLineGetter(lines), 0)
	qt.Assert(t, qt.HasLen(errs, 0))
	return seq
}

func bodyOf(t *testing.T, ctx Context, cmd *ast.Cmd) string {
	t.Helper()
	var buf bytes.Buffer
	tr := New(&buf, ctx, 2)
	tr.body(cmd)
	qt.Assert(t, qt.IsNil(tr.err))
	return buf.String()
}

func TestEmitEcho(t *testing.T) {
	got := bodyOf(t, ContextUser, parseOne(t, "echo 1"))
	want := "vim.commands.echo(state, nil, false, {}, {vim.number.new(state, 1)})\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestEmitPrintWithRange(t *testing.T) {
	got := bodyOf(t, ContextUser, parseOne(t, "1,$print"))
	want := "vim.commands.print(state, vim.range.compose(state, vim.range.line(state, 1), false, vim.range.last(state), false), false, {})\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestEmitLetSimple(t *testing.T) {
	got := bodyOf(t, ContextUser, parseOne(t, "let x = 1"))
	want := "vim.assign.ass_dict(state, vim.number.new(state, 1), state.current_scope, \"x\")\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestEmitLetCompoundOp(t *testing.T) {
	got := bodyOf(t, ContextUser, parseOne(t, "let x += 1"))
	want := "vim.assign.ass_dict(state, vim.op.mod_add(state, vim.subscript.subscript(state, false, state.current_scope, \"x\"), vim.number.new(state, 1)), state.current_scope, \"x\")\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestEmitLetScopedName(t *testing.T) {
	got := bodyOf(t, ContextUser, parseOne(t, "let g:x = 1"))
	want := "vim.assign.ass_dict(state, vim.number.new(state, 1), state.g, \"x\")\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestEmitIfElse(t *testing.T) {
	got := bodyOf(t, ContextUser, parseSeq(t, []string{"if 1", "echo 2", "else", "echo 3", "endif"}))
	want := "if vim.get_boolean(state, vim.number.new(state, 1)) then\n" +
		"  vim.commands.echo(state, nil, false, {}, {vim.number.new(state, 2)})\n" +
		"else\n" +
		"  vim.commands.echo(state, nil, false, {}, {vim.number.new(state, 3)})\n" +
		"end\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestEmitWhile(t *testing.T) {
	got := bodyOf(t, ContextUser, parseSeq(t, []string{"while 1", "echo 2", "endwhile"}))
	want := "while vim.get_boolean(state, vim.number.new(state, 1)) do\n" +
		"  vim.commands.echo(state, nil, false, {}, {vim.number.new(state, 2)})\n" +
		"  ::continue::\n" +
		"end\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestEmitUnlet(t *testing.T) {
	got := bodyOf(t, ContextUser, parseOne(t, "unlet x"))
	want := "vim.assign.del_dict(state, false, state.current_scope, \"x\")\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestEmitReturnOutsideFunction(t *testing.T) {
	got := bodyOf(t, ContextUser, parseOne(t, "return 1"))
	want := "vim.err.err(state, \"E133\", \":return not inside a function\")\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestEmitReturnInFunction(t *testing.T) {
	got := bodyOf(t, ContextFunction, parseOne(t, "return 1"))
	want := "return vim.number.new(state, 1)\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestEmitFinishInScript(t *testing.T) {
	got := bodyOf(t, ContextScript, parseOne(t, "finish"))
	qt.Assert(t, qt.Equals(got, "return nil\n"))
}

func TestLuaStringLiteralEscaping(t *testing.T) {
	got := luaStringLiteral("a\"b\\c\x01")
	qt.Assert(t, qt.Equals(got, `"a\"b\\c\001"`))
}

func TestEmitCallExpression(t *testing.T) {
	got := bodyOf(t, ContextUser, parseOne(t, "echo printf('%d', 1)"))
	want := "vim.commands.echo(state, nil, false, {}, {vim.subscript.call(state, vim.subscript.subscript(state, false, vim.functions, \"printf\"), vim.string.new(state, \"%d\"), vim.number.new(state, 1))})\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestEmitListAndDictLiterals(t *testing.T) {
	got := bodyOf(t, ContextUser, parseOne(t, "echo [1, 2]"))
	want := "vim.commands.echo(state, nil, false, {}, {vim.list:new(state, vim.number.new(state, 1), vim.number.new(state, 2))})\n"
	qt.Assert(t, qt.Equals(got, want))

	got = bodyOf(t, ContextUser, parseOne(t, "echo {'a': 1}"))
	want = "vim.commands.echo(state, nil, false, {}, {vim.dict:new(state, vim.string.new(state, \"a\"), vim.number.new(state, 1))})\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestEmitUnaryMinusAndPlus(t *testing.T) {
	got := bodyOf(t, ContextUser, parseOne(t, "echo -1 + +1"))
	want := "vim.commands.echo(state, nil, false, {}, {vim.op.add(state, vim.op.negate(state, vim.number.new(state, 1)), vim.op.promote_integer(state, vim.number.new(state, 1)))})\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestSplitScopedName(t *testing.T) {
	scope, key := splitScopedName("g:foo")
	qt.Assert(t, qt.Equals(scope, "state.g"))
	qt.Assert(t, qt.Equals(key, "foo"))

	scope, key = splitScopedName("foo")
	qt.Assert(t, qt.Equals(scope, "state.current_scope"))
	qt.Assert(t, qt.Equals(key, "foo"))
}
