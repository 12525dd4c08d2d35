// Package ast defines the typed AST produced by the VimL Ex-command and
// expression parsers (spec §3): ranges and addresses, expression nodes, and
// command nodes with their tagged-union argument slots.
//
// The original implementation this is distilled from owns its tree through
// manual malloc/free cascades (spec §9's re-architecting note). Here the
// tree is an ordinary Go value graph collected by the garbage collector
// (Parent and Prev back-links included), so there is nothing for a
// destructor to do. The Free methods are kept as no-ops only so callers
// following spec §6's free_cmd/free_expr entry points have something to
// call.
package ast

import "vimlua.dev/vl/token"

// Node is implemented by every AST node: expressions, commands, ranges,
// and addresses all report their source span.
type Node interface {
	Pos() token.Pos
	End() token.Pos
}

// -----------------------------------------------------------------------------
// Addresses and ranges (spec §3 "Ranges and addresses")

// AddressKind tags an Address's payload (spec §3).
type AddressKind int

const (
	AddrMissing AddressKind = iota
	AddrFixedLine
	AddrEndOfFile
	AddrCurrentLine
	AddrMark
	AddrForwardRegex
	AddrBackwardRegex
	AddrForwardPrevious  // \/
	AddrBackwardPrevious // \?
	AddrSubstitutePrevious // \&
)

// FollowupKind tags an AddressFollowup (spec §3).
type FollowupKind int

const (
	FollowupShift FollowupKind = iota
	FollowupForwardRegex
	FollowupBackwardRegex
)

// AddressFollowup is one modifier chained onto an Address: a numeric shift
// (+N, -N) or a subsequent search pattern.
type AddressFollowup struct {
	Kind  FollowupKind
	Shift int64  // valid when Kind == FollowupShift
	Regex *Regex // valid when Kind is one of the regex kinds

	StartPos, EndPos token.Pos
}

func (f *AddressFollowup) Pos() token.Pos { return f.StartPos }
func (f *AddressFollowup) End() token.Pos { return f.EndPos }

// Address is one address atom within a Range (spec §3).
type Address struct {
	Kind AddressKind

	Line  int64  // valid when Kind == AddrFixedLine
	Mark  byte   // valid when Kind == AddrMark
	Regex *Regex // valid when Kind is AddrForwardRegex/AddrBackwardRegex

	Followups []*AddressFollowup

	StartPos, EndPos token.Pos
}

func (a *Address) Pos() token.Pos { return a.StartPos }
func (a *Address) End() token.Pos { return a.EndPos }

// Free is a no-op kept for API parity with spec §6's free_cmd/free_expr;
// the tree is ordinary garbage-collected Go memory (see package doc).
func (a *Address) Free() {}

// RangeSeparator distinguishes the two ways successive address atoms in a
// Range may be joined (spec §3).
type RangeSeparator int

const (
	SepNone  RangeSeparator = iota
	SepComma                // ','
	SepSemi                 // ';' -- repositions the cursor between bounds
)

// Range is a (possibly empty) chain of addresses, one per RangeSeparator
// hop, terminating a command's line-address prefix (spec §3). A command
// carries one Range head; an empty Range has Addr.Kind == AddrMissing and
// no Next.
type Range struct {
	Addr      *Address
	Separator RangeSeparator
	Next      *Range

	StartPos, EndPos token.Pos
}

func (r *Range) Pos() token.Pos { return r.StartPos }
func (r *Range) End() token.Pos { return r.EndPos }

// Empty reports whether r carries no address information at all.
func (r *Range) Empty() bool {
	return r == nil || (r.Addr == nil || r.Addr.Kind == AddrMissing) && r.Next == nil
}

// -----------------------------------------------------------------------------
// Regex and menu items

// Regex stores the raw, uncompiled source text between a pattern's
// delimiters. Compilation is an explicit non-goal (spec §1, §9): the
// runtime owns it.
type Regex struct {
	Source           string
	Delim            byte
	StartPos, EndPos token.Pos
}

func (r *Regex) Pos() token.Pos { return r.StartPos }
func (r *Regex) End() token.Pos { return r.EndPos }

// MenuItem is one element of a dotted menu path (spec §3).
type MenuItem struct {
	Name    string // unescaped
	SubItem *MenuItem
}
