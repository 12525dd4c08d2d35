// Package driver wires the lexer, expression parser, Ex-command parser,
// dumper, and translator behind the small set of entry points spec §6
// describes: parse one command, parse a whole sequence, parse a bare
// expression, dump a parse to its canonical echo representation, and
// translate a parse to Lua. It adds no parsing or lowering logic of its
// own — every method here is a thin composition of the packages that do.
package driver

import (
	"io"

	"vimlua.dev/vl/ast"
	"vimlua.dev/vl/dump"
	"vimlua.dev/vl/excmd"
	"vimlua.dev/vl/exprparse"
	"vimlua.dev/vl/lex"
	"vimlua.dev/vl/token"
	"vimlua.dev/vl/translate"
	"vimlua.dev/vl/vimlerr"
)

// LineGetter re-exports excmd's line-source contract (spec §4.6): return the
// next line without its trailing newline, or io.EOF once exhausted.
type LineGetter = excmd.LineGetter

// NewSliceLineGetter adapts a pre-split line array to LineGetter.
func NewSliceLineGetter(lines []string) LineGetter {
	return excmd.NewSliceLineGetter(lines)
}

// NewFileLineGetter adapts an io.Reader, scanning it one line at a time.
func NewFileLineGetter(r io.Reader) LineGetter {
	return excmd.NewFileLineGetter(r)
}

// ParseOneCmd parses one Ex command starting at base within line, possibly
// consuming continuation lines from a sequence-level caller. It is a direct
// pass-through to excmd.ParseOneCmd: the driver adds no behavior of its own
// here, only a stable, file-independent import surface for callers that
// don't want to depend on excmd directly.
func ParseOneCmd(file *token.File, base int, line string, cpo lex.CPOFlags) (*ast.Cmd, vimlerr.List) {
	return excmd.ParseOneCmd(file, base, line, cpo)
}

// ParseCmdSequence loops ParseOneCmd plus the block reconciler over get
// until end-of-input, returning the root of the resulting sibling chain.
func ParseCmdSequence(file *token.File, get LineGetter, cpo lex.CPOFlags) (*ast.Cmd, vimlerr.List) {
	return excmd.ParseCmdSequence(file, get, cpo)
}

// ParseExpr0 parses one top-level VimL expression.
func ParseExpr0(src string) (*ast.Expr, *vimlerr.Error) {
	return exprparse.ParseExpr0(src)
}

// ParseCmdTest parses src as a single Ex command and renders it through the
// dumper, returning the canonical echo representation used as the test
// oracle (spec §4.6's "parse-and-dump" entry point).
func ParseCmdTest(src string) (string, vimlerr.List) {
	file := token.NewFile("test", len(src))
	cmd, errs := excmd.ParseOneCmd(file, 0, src, 0)
	return dump.Dump(cmd), errs
}

// ParseSequenceTest parses a full line sequence and renders it through the
// dumper, for tests that exercise block structure (:if/:while/:function
// nesting) rather than a single command.
func ParseSequenceTest(lines []string) (string, vimlerr.List) {
	file := token.NewFile("test", 0)
	cmd, errs := excmd.ParseCmdSequence(file, excmd.NewSliceLineGetter(lines), 0)
	return dump.Dump(cmd), errs
}

// Translate lowers a parsed command chain to Lua source, writing it to w
// under the given top-level context (spec §4.5/§6: ctx is one of
// script/user/function).
func Translate(w io.Writer, ctx translate.Context, tree *ast.Cmd) error {
	return translate.Translate(w, ctx, tree, 2)
}

// FreeCmd releases a parsed command tree. The Go implementation has nothing
// to release explicitly (the garbage collector owns every node once it is
// unreachable), so this only exists to keep the driver's entry-point surface
// matching spec §6; it is safe to call on a nil tree.
func FreeCmd(c *ast.Cmd) {
	c.Free()
}

// FreeExpr releases a parsed expression tree; see FreeCmd.
func FreeExpr(e *ast.Expr) {
	e.Free()
}
