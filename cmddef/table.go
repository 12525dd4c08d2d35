// Package cmddef holds the Ex-command metadata table of spec §4.3: for
// each recognised command, its canonical name, flag bitmask, and
// argument-type list. The table itself lives in zz_generated_table.go,
// generated by cmd/gencmddef from the declarative commands.yaml source —
// resolving spec §9's open question that the descriptor table ("shipped as
// a generated C header" in the original) should be a build-time
// code-generator input here, not a hand-duplicated literal.
//
// Per-command sub-parsers are not data and so are not part of the
// generated table; excmd registers them by name in its own init, keyed
// against this package's Descriptor.Name.
package cmddef

//go:generate go run ../cmd/gencmddef -in commands.yaml -out zz_generated_table.go

import "vimlua.dev/vl/ast"

// Flags is the per-command bitmask of spec §4.3.
type Flags uint32

const (
	FlagRange      Flags = 1 << iota // RANGE: accepts a line-address prefix
	FlagBang                         // BANG: accepts a trailing '!'
	FlagCount                        // COUNT: accepts a leading count
	FlagExFlags                      // EXFLAGS: accepts l/#/p flags
	FlagExtra                        // EXTRA: accepts a non-empty argument
	FlagTrlBar                       // TRLBAR: '|' terminates the command
	FlagUseCtrlV                     // USECTRLV: keep the Ctrl-V escape byte
	FlagNoTrlCom                     // NOTRLCOM: no trailing-comment/whitespace trim
	FlagXFile                        // XFILE: argument is filename-like (raw scan)
	FlagIsGrep                       // ISGREP: grep-like raw argument scanning
	FlagIsExpr                       // ISEXPR: argument is an expression (raw scan)
	FlagLiteral                      // LITERAL: argument copied verbatim
	FlagIsModifier                   // ISMODIFIER: a command modifier, not a command
)

// Has reports whether f has every bit in want set.
func (f Flags) Has(want Flags) bool { return f&want == want }

// Descriptor is one command's metadata (spec §4.3).
type Descriptor struct {
	Name    string
	Flags   Flags
	ArgKind []ast.ArgKind
}

// NumArgs reports the descriptor's fixed argument-slot count (spec §3(i)).
func (d Descriptor) NumArgs() int { return len(d.ArgKind) }

// ByName looks up a descriptor by its exact canonical name.
func ByName(name string) (Descriptor, bool) {
	d, ok := byName[name]
	return d, ok
}

// FirstLetterLookup returns every descriptor whose name begins with letter,
// in table order, matching spec §4.3's "first-letter dispatch table
// maps the 26 lowercase letters plus '!' to the first descriptor index
// whose name begins with that letter; lookup scans forward until a
// different first letter appears."
func FirstLetterLookup(letter byte) []Descriptor {
	return byFirstLetter[letter]
}

// All returns every descriptor, in table order.
func All() []Descriptor { return table }
