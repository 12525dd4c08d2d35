package driver_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"vimlua.dev/vl/driver"
	"vimlua.dev/vl/token"
	"vimlua.dev/vl/translate"
)

func TestParseCmdTest(t *testing.T) {
	got, errs := driver.ParseCmdTest("echo 1")
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.Equals(got, "echo [++0X1+]\n"))
}

func TestParseSequenceTest(t *testing.T) {
	got, errs := driver.ParseSequenceTest([]string{"if 1", "echo 2", "endif"})
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.StringContains(got, "if [++0X1+]"))
	qt.Assert(t, qt.StringContains(got, "echo [++0X2+]"))
}

func TestParseExpr0(t *testing.T) {
	expr, err := driver.ParseExpr0("1 + 2")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNotNil(expr))
}

func TestParseOneCmdAndSequence(t *testing.T) {
	file := token.NewFile("test", len("echo 1"))
	cmd, errs := driver.ParseOneCmd(file, 0, "echo 1", 0)
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.IsNotNil(cmd))

	file2 := token.NewFile("test", 0)
	seq, errs := driver.ParseCmdSequence(file2, driver.NewSliceLineGetter([]string{"echo 1", "echo 2"}), 0)
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.IsNotNil(seq))
}

func TestTranslate(t *testing.T) {
	file := token.NewFile("test", len("echo 1"))
	cmd, errs := driver.ParseOneCmd(file, 0, "echo 1", 0)
	qt.Assert(t, qt.HasLen(errs, 0))

	var buf bytes.Buffer
	err := driver.Translate(&buf, translate.ContextUser, cmd)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(buf.String(), "local state = vim.state.get_top()\nvim.commands.echo(state, nil, false, {}, {vim.number.new(state, 1)})\n"))
}

func TestFreeCmdAndExprAreNilSafe(t *testing.T) {
	driver.FreeCmd(nil)
	driver.FreeExpr(nil)
}

func TestFileLineGetter(t *testing.T) {
	r := strings.NewReader("echo 1\necho 2\n")
	get := driver.NewFileLineGetter(r)
	file := token.NewFile("test", 0)
	seq, errs := driver.ParseCmdSequence(file, get, 0)
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.IsNotNil(seq))
}
