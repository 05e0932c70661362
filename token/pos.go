// SPDX-FileCopyrightText: © 2022 The lithe authors <https://github.com/golangee/lithe/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import "strconv"

// Node contains access to the start and end positions of a parse tree node.
type Node interface {
	Begin() Pos
	End() Pos
}

// A Pos describes a resolved position within a source.
type Pos struct {
	// File contains the file name, which may be empty for anonymous sources like stdin.
	File string
	// Line denotes the one-based line number in the denoted File.
	Line int
	// Col denotes the one-based column number in the denoted Line.
	Col int
	// Offset is the zero-based byte offset into the source.
	Offset int
}

// String returns the content in the "file:line:col" format.
func (p Pos) String() string {
	file := p.File
	if file == "" {
		file = "<input>"
	}

	return file + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

// Position is embeddable and implements Node.
type Position struct {
	BeginPos Pos
	EndPos   Pos
}

func (p Position) Begin() Pos {
	return p.BeginPos
}

func (p Position) End() Pos {
	return p.EndPos
}

// NewNode returns a Node spanning from begin to end.
func NewNode(begin, end Pos) Node {
	return Position{BeginPos: begin, EndPos: end}
}
