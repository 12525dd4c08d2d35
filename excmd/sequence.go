package excmd

import (
	"bufio"
	"io"

	"vimlua.dev/vl/ast"
	"vimlua.dev/vl/lex"
	"vimlua.dev/vl/token"
	"vimlua.dev/vl/vimlerr"
)

// MaxNestBlocks bounds the block reconciler's stack depth (spec §4.3's
// "bounded block stack (hard cap MAX_NEST_BLOCKS)").
const MaxNestBlocks = 50

// LineGetter supplies input lines on demand (spec §4.6): each call returns
// the next line without its trailing newline, or io.EOF once the source is
// exhausted.
type LineGetter interface {
	NextLine() (string, error)
}

// sliceLines is the in-memory LineGetter adaptor (spec §4.6): a pre-split
// string array, grounded on bmizerany-linebased's Decoder.readLine loop
// generalized from a single io.Reader to a caller-supplied slice.
type sliceLines struct {
	lines []string
	i     int
}

// NewSliceLineGetter builds a LineGetter over an already-split line array.
func NewSliceLineGetter(lines []string) LineGetter {
	return &sliceLines{lines: lines}
}

func (s *sliceLines) NextLine() (string, error) {
	if s.i >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.i]
	s.i++
	return line, nil
}

// fileLines is the file-based LineGetter adaptor (spec §4.6), wrapping a
// bufio.Scanner the way bmizerany-linebased's Decoder wraps a bufio.Reader.
type fileLines struct {
	scanner *bufio.Scanner
}

// NewFileLineGetter builds a LineGetter that scans r one line at a time.
func NewFileLineGetter(r io.Reader) LineGetter {
	return &fileLines{scanner: bufio.NewScanner(r)}
}

func (f *fileLines) NextLine() (string, error) {
	if !f.scanner.Scan() {
		if err := f.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return f.scanner.Text(), nil
}

// blockKind classifies the block-opening commands the reconciler tracks
// (spec §4.3's block reconciler).
type blockKind int

const (
	blockTop blockKind = iota // the sentinel bottom frame: top-level sequencing
	blockIf
	blockWhile
	blockFor
	blockFunction
	blockTry
)

var openerKind = map[string]blockKind{
	"if": blockIf, "while": blockWhile, "for": blockFor,
	"function": blockFunction, "try": blockTry,
}

var closerKind = map[string]blockKind{
	"endif": blockIf, "endwhile": blockWhile, "endfor": blockFor,
	"endfunction": blockFunction, "endtry": blockTry,
}

// blockFrame is one entry in the reconciler's stack: the block kind and the
// currently-open branch within it (the opener itself, or the most recent
// elseif/else/catch/finally sibling). branch is nil only for the sentinel
// bottom frame, where top-level sequencing is tracked by the sequencer's own
// head/tail fields instead.
type blockFrame struct {
	kind       blockKind
	branch     *ast.Cmd
	sawElse    bool
	sawFinally bool
}

func missingTerminator(kind blockKind) (vimlerr.Code, string) {
	switch kind {
	case blockIf:
		return vimlerr.E171MissingEnd, "E171: Missing :endif"
	case blockWhile:
		return vimlerr.E170MissingEnd, "E170: Missing :endwhile"
	case blockFor:
		return vimlerr.E170MissingEnd, "E170: Missing :endfor"
	case blockFunction:
		return vimlerr.E126MissingFunc, "E126: Missing :endfunction"
	case blockTry:
		return vimlerr.E603NoTry, "E603: Missing :endtry"
	}
	return vimlerr.CodeNone, "missing block terminator"
}

// sequencer drives parse_cmd_sequence (spec §6): it repeatedly calls
// ParseOneCmd and reconciles block structure across the resulting nodes,
// matching openers (if/while/for/function/try) to their continuations and
// terminators (spec §4.3 "Block reconciler").
type sequencer struct {
	file  *token.File
	cpo   lex.CPOFlags
	stack []blockFrame
	head  *ast.Cmd
	tail  *ast.Cmd
	errs  vimlerr.List
}

// ParseCmdSequence parses every Ex command line returned by get, reconciling
// block structure as it goes, and returns the root of the resulting sibling
// chain (nil for empty input) plus the accumulated diagnostics (spec §6's
// parse_cmd_sequence entry point).
func ParseCmdSequence(file *token.File, get LineGetter, cpo lex.CPOFlags) (*ast.Cmd, vimlerr.List) {
	sq := &sequencer{file: file, cpo: cpo, stack: []blockFrame{{kind: blockTop}}}

	base := 0
	for {
		line, err := get.NextLine()
		if err != nil {
			break
		}
		cmd, lineErrs := ParseOneCmd(file, base, line, cpo)
		base += len(line) + 1 // +1 for the newline the getter stripped
		sq.errs = append(sq.errs, lineErrs...)

		if isBodyCommand(cmd.Kind) {
			body, consumed := readBodyLines(get)
			base += consumed
			cmd.Args = []ast.Arg{{Kind: ast.ArgStringArray, Strings: body}}
		}

		sq.process(cmd)
	}
	sq.closeUnterminated()
	return sq.head, sq.errs
}

// isBodyCommand reports whether kind consumes a text body terminated by a
// lone "." line (spec §4.6's ordering guarantee: ":append body" is read
// before the next command line is requested).
func isBodyCommand(kind ast.CmdKind) bool {
	switch string(kind) {
	case "append", "insert", "change":
		return true
	}
	return false
}

// readBodyLines reads lines from get until a line containing only "." (or
// end of input), returning the body lines and the number of bytes consumed
// so the caller's position tracking stays in sync.
func readBodyLines(get LineGetter) (lines []string, consumed int) {
	for {
		line, err := get.NextLine()
		if err != nil {
			return lines, consumed
		}
		consumed += len(line) + 1
		if line == "." {
			return lines, consumed
		}
		lines = append(lines, line)
	}
}

func (sq *sequencer) top() *blockFrame { return &sq.stack[len(sq.stack)-1] }

// attach links cmd into the tree at the current nesting level: as a child
// of the innermost open branch, or onto the top-level sibling chain when no
// block is open (spec §3(ii)/(iii)).
func (sq *sequencer) attach(cmd *ast.Cmd) {
	f := sq.top()
	if f.branch == nil {
		if sq.tail == nil {
			sq.head = cmd
		} else {
			sq.tail.Next = cmd
			cmd.Prev = sq.tail
		}
		sq.tail = cmd
		return
	}
	f.branch.AppendChild(cmd)
}

// rebranch replaces frame's current branch with cmd, linking cmd as a
// sibling of the old branch within the enclosing scope (spec §4.3(iii):
// "a sibling of the previous branch ... not a child of the opener").
func (sq *sequencer) rebranch(f *blockFrame, cmd *ast.Cmd) {
	old := f.branch
	ast.AppendSibling(old, cmd)
	if old.Parent == nil {
		// old was itself a top-level node (an un-nested if/try).
		sq.tail = cmd
	}
	f.branch = cmd
}

func (sq *sequencer) addErrf(pos token.Pos, code vimlerr.Code, format string, args ...interface{}) {
	sq.errs.AddNewf(pos, code, format, args...)
}

// findFrame scans the stack from the top (excluding the bottom sentinel)
// for the innermost frame of the given kind, returning its index or -1.
func (sq *sequencer) findFrame(kind blockKind) int {
	for i := len(sq.stack) - 1; i >= 1; i-- {
		if sq.stack[i].kind == kind {
			return i
		}
	}
	return -1
}

// popAbove pops every frame above idx, emitting a missing-terminator error
// for each: these blocks were left open when a continuation or closer for
// an enclosing block arrived (spec §4.3: "pop sub-blocks until the matching
// opener is on top").
func (sq *sequencer) popAbove(idx int) {
	for i := len(sq.stack) - 1; i > idx; i-- {
		f := sq.stack[i]
		code, msg := missingTerminator(f.kind)
		sq.addErrf(f.branch.EndPos, code, "%s", msg)
		sq.stack = sq.stack[:i]
	}
}

func (sq *sequencer) process(cmd *ast.Cmd) {
	name := string(cmd.Kind)

	if kind, ok := openerKind[name]; ok {
		sq.attach(cmd)
		if len(sq.stack) >= MaxNestBlocks {
			sq.addErrf(cmd.StartPos, vimlerr.E579TooDeep, "E579: block nesting too deep")
			return
		}
		sq.stack = append(sq.stack, blockFrame{kind: kind, branch: cmd})
		return
	}

	switch name {
	case "elseif", "else":
		idx := sq.findFrame(blockIf)
		if idx == -1 {
			if name == "else" {
				sq.addErrf(cmd.StartPos, vimlerr.E581NoIf, "E581: :else without :if")
			} else {
				sq.addErrf(cmd.StartPos, vimlerr.E582NoWhile, "E582: :elseif without :if")
			}
			return
		}
		sq.popAbove(idx)
		f := sq.top()
		if name == "elseif" {
			if f.sawElse {
				sq.addErrf(cmd.StartPos, vimlerr.E584ElseifAfter, "E584: :elseif after :else")
			}
		} else {
			if f.sawElse {
				sq.addErrf(cmd.StartPos, vimlerr.E583MultiElse, "E583: multiple :else")
			}
			f.sawElse = true
		}
		sq.rebranch(f, cmd)
		return

	case "catch", "finally":
		idx := sq.findFrame(blockTry)
		if idx == -1 {
			if name == "catch" {
				sq.addErrf(cmd.StartPos, vimlerr.E606NoCatch, "E606: :catch without :try")
			} else {
				sq.addErrf(cmd.StartPos, vimlerr.E605NoTry, "E605: :finally without :try")
			}
			return
		}
		sq.popAbove(idx)
		f := sq.top()
		if name == "catch" {
			if f.sawFinally {
				sq.addErrf(cmd.StartPos, vimlerr.E604CatchAfter, "E604: :catch after :finally")
			}
		} else {
			if f.sawFinally {
				sq.addErrf(cmd.StartPos, vimlerr.E607MultiFinal, "E607: multiple :finally")
			}
			f.sawFinally = true
		}
		sq.rebranch(f, cmd)
		return

	case "endif", "endwhile", "endfor", "endfunction", "endtry":
		sq.processCloser(name, cmd)
		return
	}

	sq.attach(cmd)
}

func (sq *sequencer) processCloser(name string, cmd *ast.Cmd) {
	expected := closerKind[name]
	idx := sq.findFrame(expected)

	if idx == -1 {
		// :endfor/:endwhile closing the wrong loop kind is a distinct
		// mismatch (E732/E733), not a plain "without opener" error.
		if len(sq.stack) > 1 {
			top := sq.top()
			switch {
			case expected == blockFor && top.kind == blockWhile:
				sq.addErrf(cmd.StartPos, vimlerr.E732WrongEnd, "E732: Using :endfor with :while")
				sq.stack = sq.stack[:len(sq.stack)-1]
				return
			case expected == blockWhile && top.kind == blockFor:
				sq.addErrf(cmd.StartPos, vimlerr.E733WrongEnd, "E733: Using :endwhile with :for")
				sq.stack = sq.stack[:len(sq.stack)-1]
				return
			}
		}
		code, msg := noOpenerForCloser(name)
		sq.addErrf(cmd.StartPos, code, "%s", msg)
		return
	}

	sq.popAbove(idx)
	// Drop the matched frame: its terminator is consumed, not kept as a
	// sibling (spec §3(ii)).
	sq.stack = sq.stack[:idx]
}

func noOpenerForCloser(name string) (vimlerr.Code, string) {
	switch name {
	case "endif":
		return vimlerr.E580NoEndif, "E580: :endif without :if"
	case "endwhile":
		return vimlerr.E588NoWhile, "E588: :endwhile without :while"
	case "endfor":
		return vimlerr.E602NoFor, "E602: :endfor without :for"
	case "endfunction":
		return vimlerr.E193Endfunction, "E193: :endfunction not inside a function"
	case "endtry":
		return vimlerr.E603NoTry, "E603: :endtry without :try"
	}
	return vimlerr.CodeNone, "unmatched block terminator"
}

// closeUnterminated handles end-of-input with blocks still open: each
// materialises a trailing synthetic syntax-error sibling carrying the
// opener-specific "missing terminator" message (spec §4.3).
func (sq *sequencer) closeUnterminated() {
	for i := len(sq.stack) - 1; i >= 1; i-- {
		f := sq.stack[i]
		code, msg := missingTerminator(f.kind)
		sq.addErrf(f.branch.EndPos, code, "%s", msg)
		errNode := ast.NewSyntaxError(f.branch.EndPos, "", msg, 0)
		ast.AppendSibling(f.branch, errNode)
		if f.branch.Parent == nil {
			sq.tail = errNode
		}
	}
	sq.stack = sq.stack[:1]
}
