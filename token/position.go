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

// Package token holds source position information for the VimL parser and
// translator: a byte offset within a single source (one script, one line
// getter session), plus line/column unpacking for diagnostics.
package token

import (
	"cmp"
	"fmt"
)

// Position describes an arbitrary and printable source position: an offset,
// a line, a column, and the file it belongs to, if any.
//
// A Position is valid if the line number is > 0.
type Position struct {
	Filename string // filename, if any
	Offset   int    // offset, starting at 0
	Line     int    // line number, starting at 1
	Column   int    // column number, starting at 1 (byte count)
}

// IsValid reports whether the position is valid.
func (pos *Position) IsValid() bool { return pos.Line > 0 }

// String returns a human-readable form of a position in one of several
// forms:
//
//	file:line:column    valid position with file name
//	line:column         valid position without file name
//	file                invalid position with file name
//	-                   invalid position without file name
func (pos Position) String() string {
	s := pos.Filename
	if pos.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	}
	if s == "" {
		s = "-"
	}
	return s
}

// Pos is a compact encoding of a source position: an offset into a *File.
// The zero Pos is NoPos and carries no file.
type Pos struct {
	file   *File
	offset int // 1-based; 0 means NoPos
}

// NoPos is the zero value for Pos; it has no file or line information.
var NoPos = Pos{}

// File returns the file containing p, or nil for NoPos.
func (p Pos) File() *File {
	return p.file
}

// IsValid reports whether p carries file and offset information.
func (p Pos) IsValid() bool {
	return p != NoPos
}

// Offset reports the byte offset of p relative to its file.
func (p Pos) Offset() int {
	if p.file == nil {
		return 0
	}
	return p.offset - 1
}

// Position unpacks p into a flat, printable Position.
func (p Pos) Position() Position {
	if p.file == nil {
		return Position{}
	}
	return p.file.Position(p)
}

// String returns a human-readable form of p.
func (p Pos) String() string {
	return p.Position().String()
}

// Add returns a position n bytes after p, within the same file.
func (p Pos) Add(n int) Pos {
	if p.file == nil {
		return p
	}
	return p.file.Pos(p.Offset() + n)
}

// Compare orders two positions: -1 if p < q, 0 if equal, +1 if p > q.
// NoPos sorts after any valid position.
func (p Pos) Compare(q Pos) int {
	switch {
	case p == q:
		return 0
	case p == NoPos:
		return +1
	case q == NoPos:
		return -1
	}
	if c := cmp.Compare(p.Filename(), q.Filename()); c != 0 {
		return c
	}
	return cmp.Compare(p.Offset(), q.Offset())
}

// Filename returns the name of the file p belongs to, if any.
func (p Pos) Filename() string {
	if p.file == nil {
		return ""
	}
	return p.file.name
}

// -----------------------------------------------------------------------------
// File

// A File tracks one VimL source: its name and a line-offset table, so byte
// offsets can be unpacked into line/column pairs for diagnostics.
//
// Unlike a build-graph front-end, a VimL parse deals with exactly one source
// at a time (the line getter of spec §4.6 draws from a single script or a
// single in-memory line array), so there is no FileSet here — just one File
// per parse.
type File struct {
	name  string
	size  int
	lines []int // offset of first byte of each line; lines[0] == 0
}

// NewFile returns a new File for the given name and content size.
func NewFile(name string, size int) *File {
	return &File{name: name, size: size, lines: []int{0}}
}

// Name returns the file's name.
func (f *File) Name() string { return f.name }

// Size returns the file's content size in bytes.
func (f *File) Size() int { return f.size }

// AddLine records the offset of the first byte of a new line. Offsets must
// be added in increasing order; out-of-order or out-of-range offsets are
// ignored.
func (f *File) AddLine(offset int) {
	if n := len(f.lines); (n == 0 || f.lines[n-1] < offset) && offset < f.size {
		f.lines = append(f.lines, offset)
	}
}

// SetLinesForContent recomputes the line table from raw content.
func (f *File) SetLinesForContent(content []byte) {
	lines := []int{0}
	for offset, b := range content {
		if b == '\n' && offset+1 < len(content) {
			lines = append(lines, offset+1)
		}
	}
	f.lines = lines
}

func (f *File) fixOffset(offset int) int {
	switch {
	case offset < 0:
		return 0
	case offset > f.size:
		return f.size
	default:
		return offset
	}
}

// Pos returns the Pos for the given byte offset within f.
func (f *File) Pos(offset int) Pos {
	return Pos{file: f, offset: f.fixOffset(offset) + 1}
}

// Offset returns the byte offset of p, which must belong to f or be NoPos.
func (f *File) Offset(p Pos) int {
	if p.file != f {
		return 0
	}
	return f.fixOffset(p.offset - 1)
}

func searchInts(a []int, x int) int {
	i, j := 0, len(a)
	for i < j {
		h := i + (j-i)/2
		if a[h] <= x {
			i = h + 1
		} else {
			j = h
		}
	}
	return i - 1
}

// Position returns the unpacked Position for p, which must belong to f.
func (f *File) Position(p Pos) (pos Position) {
	if p == NoPos {
		return Position{}
	}
	offset := f.Offset(p)
	pos.Filename = f.name
	pos.Offset = offset
	if i := searchInts(f.lines, offset); i >= 0 {
		pos.Line = i + 1
		pos.Column = offset - f.lines[i] + 1
	}
	return pos
}

// LineStart returns the Pos of the first byte of the given 1-based line.
func (f *File) LineStart(line int) Pos {
	if line < 1 || line > len(f.lines) {
		return NoPos
	}
	return f.Pos(f.lines[line-1])
}
