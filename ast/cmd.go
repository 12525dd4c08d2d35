package ast

import "vimlua.dev/vl/token"

// CmdKind tags a command node. Built-in commands are tagged by their
// canonical descriptor name (see package cmddef); a handful of synthetic
// kinds exist outside the descriptor table for constructs the Ex parser
// produces directly (spec §3's "~200 kinds including unknown, user,
// syntax-error, comment, hashbang-comment, missing, print").
type CmdKind string

const (
	CmdUnknown         CmdKind = "unknown"
	CmdUser            CmdKind = "user"
	CmdSyntaxError     CmdKind = "syntax-error"
	CmdComment         CmdKind = "comment"
	CmdHashbangComment CmdKind = "hashbang-comment"
	CmdMissing         CmdKind = "missing"
	CmdPrint           CmdKind = "print"
)

// CountKind tags how a command's count/register prefix was supplied (spec §3).
type CountKind int

const (
	CountMissing CountKind = iota
	CountPlain             // a bare integer count
	CountBuffer            // N-prefixed buffer reference, e.g. :3bdelete
	CountRegister          // a register-name count, e.g. :3,5d a
	CountExprRegister      // an expression register count
)

// ExFlags is the bitmask of trailing ex-flags a command may carry (spec §3).
type ExFlags uint8

const (
	ExFlagList ExFlags = 1 << iota // 'l'
	ExFlagHash                     // '#'
	ExFlagPrint                    // 'p'
)

// ArgKind tags the payload carried by one Arg slot (spec §3).
type ArgKind int

const (
	ArgCommand ArgKind = iota
	ArgExpression
	ArgExpressions
	ArgFlags
	ArgNumber
	ArgUNumber
	ArgNumberArray
	ArgChar
	ArgString
	ArgStringArray
	ArgPattern
	ArgGlob
	ArgRegex
	ArgReplacement
	ArgMenuChain
	ArgAutocmdEvents
	ArgAddress
	ArgCmdComplete
	ArgSubArgs
	ArgPosition
	ArgColumn
)

// CmdComplete describes a `:command -complete=...` descriptor (spec §3).
type CmdComplete struct {
	Kind   string // e.g. "file", "buffer", "custom"
	Custom string // function name, when Kind == "custom"/"customlist"
}

// Arg is one tagged-union argument slot, sized and typed by the owning
// command's descriptor (spec §3). Only the field matching Kind is
// meaningful; this mirrors the spec's "payload access is pattern-matched,
// not casted" re-architecting note (spec §9) instead of a void* union.
type Arg struct {
	Kind ArgKind

	Cmd         *Cmd
	Expr        *Expr
	ExprSource  string // original source text alongside an ArgExpression, spec §3
	Exprs       []*Expr
	Flags       uint32
	Number      int64
	UNumber     uint64
	Numbers     []int64
	Char        rune
	Str         string
	Strings     []string
	Pattern     *Regex
	Glob        string
	Regex       *Regex
	Replacement string
	MenuChain   *MenuItem
	Events      []AutocmdEvent
	Address     *Address
	Complete    *CmdComplete
	SubArgs     []Arg
	Position    token.Position
	Column      int
}

// AutocmdEvent is one recognised :autocmd event tag (spec §9's supplement;
// see cmddef.AutocmdEvents for the fixed name table it is validated
// against).
type AutocmdEvent struct {
	Name string
	Pos  token.Pos
}

// AssignOp is the operator of a :let command (spec §9's Open Question:
// stored as a typed field, following "the newer path").
type AssignOp int

const (
	AssignSet    AssignOp = iota // =
	AssignAdd                    // +=
	AssignSub                    // -=
	AssignConcat                 // .=
)

// Cmd is one Ex command node (spec §3).
type Cmd struct {
	Kind CmdKind

	// UserName holds the user-command name when Kind == CmdUser.
	UserName string

	Range     *Range
	CountKind CountKind
	Count     int64

	ExFlags ExFlags
	Bang    bool

	Args []Arg

	// AssignOp is meaningful only for :let.
	AssignOp AssignOp

	// FirstChild/LastChild hold the block body (for if/while/for/function/
	// try); the body itself is a Next/Prev sibling chain, exactly as a
	// top-level command sequence is. elseif/else/catch/finally are
	// appended as siblings of the preceding if/try within the *enclosing*
	// scope's chain, not linked as children of the opener (spec §3(iii)).
	FirstChild *Cmd
	LastChild  *Cmd
	Parent     *Cmd
	Next       *Cmd
	Prev       *Cmd

	Position token.Position

	StartPos, EndPos token.Pos
}

func (c *Cmd) Pos() token.Pos { return c.StartPos }
func (c *Cmd) End() token.Pos { return c.EndPos }

// Free is a no-op; see the package doc.
func (c *Cmd) Free() {}

// SyntaxErrorInfo extracts the three pieces of data a syntax-error node
// carries (spec §3(iv)): the offending line, message, and byte offset of
// the error. It panics if c.Kind != CmdSyntaxError.
func (c *Cmd) SyntaxErrorInfo() (line, message string, offset int) {
	if c.Kind != CmdSyntaxError {
		panic("ast: SyntaxErrorInfo on non-syntax-error node")
	}
	return c.Args[0].Str, c.Args[1].Str, c.Args[2].Column
}

// NewSyntaxError builds a syntax-error node (spec §3(iv), §4.3, §7).
func NewSyntaxError(pos token.Pos, line, message string, offset int) *Cmd {
	return &Cmd{
		Kind:     CmdSyntaxError,
		StartPos: pos,
		EndPos:   pos,
		Args: []Arg{
			{Kind: ArgString, Str: line},
			{Kind: ArgString, Str: message},
			{Kind: ArgColumn, Column: offset},
		},
	}
}

// Walk calls fn for c and every node reachable through its FirstChild and
// Next chains, depth first, matching the way the dumper and translator
// traverse the tree (spec §4.4, §4.5).
func Walk(c *Cmd, fn func(*Cmd)) {
	for n := c; n != nil; n = n.Next {
		fn(n)
		if n.FirstChild != nil {
			Walk(n.FirstChild, fn)
		}
	}
}

// AppendChild links child onto the end of c's body chain, updating
// FirstChild/LastChild/Parent/Prev.
func (c *Cmd) AppendChild(child *Cmd) {
	child.Parent = c
	if c.LastChild == nil {
		c.FirstChild = child
	} else {
		c.LastChild.Next = child
		child.Prev = c.LastChild
	}
	c.LastChild = child
}

// AppendSibling links next directly after tail, updating Prev, Parent
// (inherited from tail) and the parent's LastChild.
func AppendSibling(tail, next *Cmd) {
	tail.Next = next
	next.Prev = tail
	next.Parent = tail.Parent
	if tail.Parent != nil {
		tail.Parent.LastChild = next
	}
}
