package dump_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"vimlua.dev/vl/dump"
	"vimlua.dev/vl/excmd"
	"vimlua.dev/vl/token"
)

func TestDumpSimpleCommand(t *testing.T) {
	file := token.NewFile("test", len("quit"))
	cmd, errs := excmd.ParseOneCmd(file, 0, "quit", 0)
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.Equals(dump.Dump(cmd), "quit\n"))
}

func TestDumpBang(t *testing.T) {
	file := token.NewFile("test", len("quit!"))
	cmd, errs := excmd.ParseOneCmd(file, 0, "quit!", 0)
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.Equals(dump.Dump(cmd), "quit!\n"))
}

func TestDumpRange(t *testing.T) {
	line := "1,$print"
	file := token.NewFile("test", len(line))
	cmd, errs := excmd.ParseOneCmd(file, 0, line, 0)
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.Equals(dump.Dump(cmd), "0X1,$ print\n"))
}

func TestDumpLetAssignment(t *testing.T) {
	line := "let x = 1 + 2"
	file := token.NewFile("test", len(line))
	cmd, errs := excmd.ParseOneCmd(file, 0, line, 0)
	qt.Assert(t, qt.HasLen(errs, 0))
	got := dump.Dump(cmd)
	qt.Assert(t, qt.Equals(got, "let x = ([++0X1+] + [++0X2+])\n"))
}

func TestDumpLetCompoundOp(t *testing.T) {
	line := "let x += 1"
	file := token.NewFile("test", len(line))
	cmd, errs := excmd.ParseOneCmd(file, 0, line, 0)
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.Equals(dump.Dump(cmd), "let x += [++0X1+]\n"))
}

func TestDumpIfBlock(t *testing.T) {
	file := token.NewFile("test", 0)
	lines := []string{"if 1", "echo 2", "endif"}
	seq, errs := excmd.ParseCmdSequence(file, excmd.NewSliceLineGetter(lines), 0)
	qt.Assert(t, qt.HasLen(errs, 0))
	got := dump.Dump(seq)
	want := "if [++0X1+]\n" +
		"  echo [++0X2+]\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestDumpIfElseBlock(t *testing.T) {
	file := token.NewFile("test", 0)
	lines := []string{"if 1", "echo 2", "else", "echo 3", "endif"}
	seq, errs := excmd.ParseCmdSequence(file, excmd.NewSliceLineGetter(lines), 0)
	qt.Assert(t, qt.HasLen(errs, 0))
	got := dump.Dump(seq)
	want := "if [++0X1+]\n" +
		"  echo [++0X2+]\n" +
		"else\n" +
		"  echo [++0X3+]\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestDumpUnterminatedBlockReportsError(t *testing.T) {
	file := token.NewFile("test", 0)
	lines := []string{"if 1", "echo 2"}
	seq, errs := excmd.ParseCmdSequence(file, excmd.NewSliceLineGetter(lines), 0)
	qt.Assert(t, qt.Not(qt.HasLen(errs, 0)))
	got := dump.Dump(seq)
	qt.Assert(t, qt.StringContains(got, "if [++0X1+]"))
	qt.Assert(t, qt.StringContains(got, "^"))
}

func TestDumpMismatchedCloserReportsError(t *testing.T) {
	file := token.NewFile("test", 0)
	lines := []string{"while 1", "endfor"}
	_, errs := excmd.ParseCmdSequence(file, excmd.NewSliceLineGetter(lines), 0)
	qt.Assert(t, qt.Not(qt.HasLen(errs, 0)))
	found := false
	for _, e := range errs {
		if e.Code == "E732" {
			found = true
		}
	}
	qt.Assert(t, qt.IsTrue(found))
}

func TestDumpEchoStringLiteral(t *testing.T) {
	line := `echo "ab"`
	file := token.NewFile("test", len(line))
	cmd, errs := excmd.ParseOneCmd(file, 0, line, 0)
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.Equals(dump.Dump(cmd), `echo [+vim.string.new("ab")+]`+"\n"))
}
