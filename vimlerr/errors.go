// Copyright 2018 The original authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package vimlerr defines the error taxonomy used by the VimL parser and
// translator: position-carrying errors matching Vim's own E-number
// diagnostics (spec §7), collected into a sortable, dedupable List.
package vimlerr

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"vimlua.dev/vl/token"
)

// Code identifies one of Vim's diagnostic numbers, kept so error messages
// stay recognizable to someone used to Vim's own command-line parser.
type Code string

// The subset of E-codes the parser and block reconciler can emit, per
// spec §7 and §4.3.
const (
	CodeNone        Code = ""
	E110InvalidExpr Code = "E110"
	E111MissingExpr Code = "E111"
	E112Unknown     Code = "E112"
	E114MissingQ    Code = "E114"
	E116ArgNum      Code = "E116"
	E133Return      Code = "E133"
	E168Finish      Code = "E168"
	E192Recursive   Code = "E192"
	E193Endfunction Code = "E193"
	E216UnknownEv   Code = "E216"
	E475Invalid     Code = "E475"
	E579TooDeep     Code = "E579"
	E580NoEndif     Code = "E580"
	E581NoIf        Code = "E581"
	E582NoWhile     Code = "E582" // :elseif without :if
	E583MultiElse   Code = "E583"
	E584ElseifAfter Code = "E584"
	E588NoWhile     Code = "E588" // :endwhile without :while
	E602NoFor       Code = "E602"
	E603NoTry       Code = "E603"
	E604CatchAfter  Code = "E604"
	E605NoTry       Code = "E605" // :finally without :try
	E606NoCatch     Code = "E606"
	E607MultiFinal  Code = "E607"
	E688MoreTargets Code = "E688"
	E687FewTargets  Code = "E687"
	E696Missing     Code = "E696"
	E697Missing     Code = "E697"
	E720Missing     Code = "E720"
	E722MissingDo   Code = "E722"
	E723MissingIn   Code = "E723"
	E732WrongEnd    Code = "E732"
	E733WrongEnd    Code = "E733"
	E792EmptyMenu   Code = "E792"
	E126MissingFunc Code = "E126"
	E170MissingEnd  Code = "E170"
	E171MissingEnd  Code = "E171"
)

// Error is one diagnostic: a Vim E-code (may be empty for ad hoc messages),
// a human message, and the position within the offending line.
type Error struct {
	Code Code
	Pos  token.Pos
	Msg  string
}

func (e *Error) Error() string {
	if e.Code == CodeNone {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Newf creates an Error with the given position, code, and message.
func Newf(pos token.Pos, code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// List is a list of Errors accumulated across a parse. The zero List is an
// empty list ready to use.
type List []*Error

// AddNewf appends a new Error built from position, code, and message.
func (p *List) AddNewf(pos token.Pos, code Code, format string, args ...interface{}) {
	*p = append(*p, Newf(pos, code, format, args...))
}

// Add appends err to the list.
func (p *List) Add(err *Error) {
	*p = append(*p, err)
}

// Err returns an error equivalent to the list, or nil if it is empty.
func (p List) Err() error {
	if len(p) == 0 {
		return nil
	}
	return p
}

// Error implements the error interface, combining all messages.
func (p List) Error() string {
	switch len(p) {
	case 0:
		return "no errors"
	case 1:
		return p[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", p[0], len(p)-1)
	}
}

// Sort orders the list by position, then by code, then by message.
func (p List) Sort() {
	slices.SortFunc(p, func(a, b *Error) int {
		if c := comparePosWithNoPosFirst(a.Pos, b.Pos); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Code, b.Code); c != 0 {
			return c
		}
		return cmp.Compare(a.Msg, b.Msg)
	})
}

func comparePosWithNoPosFirst(a, b token.Pos) int {
	if a == b {
		return 0
	} else if a == token.NoPos {
		return -1
	} else if b == token.NoPos {
		return +1
	}
	return a.Compare(b)
}

// RemoveMultiples sorts the list and removes duplicate-looking errors (same
// position and code), keeping the first.
func (p *List) RemoveMultiples() {
	p.Sort()
	*p = slices.CompactFunc(*p, func(a, b *Error) bool {
		return a.Pos == b.Pos && a.Code == b.Code
	})
}

// Print writes one line per error to w, in the same "file:line:col: message"
// shape a command-line VimL tool would report.
func Print(w io.Writer, errs List) {
	for _, e := range errs {
		pos := e.Pos.Position()
		var b strings.Builder
		if pos.IsValid() {
			b.WriteString(pos.String())
			b.WriteString(": ")
		}
		b.WriteString(e.Error())
		fmt.Fprintln(w, b.String())
	}
}
