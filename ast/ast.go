// Copyright 2022 The lithe authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ast contains the grammar of the lithe language. The types are used by participle
// to build the parse tree and consumed by the tree builder.
package ast

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/golangee/lithe/token"
)

// File is the root of the parse tree and contains one entry per source line.
type File struct {
	Pos, EndPos lexer.Position
	Lines       []*Line `@@*`
}

func (n *File) Begin() token.Pos {
	return WrapPos(n.Pos)
}

func (n *File) End() token.Pos {
	return WrapPos(n.EndPos)
}

// Line is a single source line. A blank line has neither Doctype, Comment nor Element set.
type Line struct {
	Pos, EndPos lexer.Position
	Indent      string   `@Indent?`
	Doctype     *Doctype `( @@`
	Comment     *Comment `  | @@`
	Element     *Element `  | @@ )? Newline`
}

// Depth is the width of the leading whitespace.
func (n *Line) Depth() int {
	return len(n.Indent)
}

// Blank reports if the line has no content besides indentation.
func (n *Line) Blank() bool {
	return n.Doctype == nil && n.Comment == nil && n.Element == nil
}

func (n *Line) Begin() token.Pos {
	return WrapPos(n.Pos)
}

func (n *Line) End() token.Pos {
	return WrapPos(n.EndPos)
}

// Doctype declares the document type by a shorthand of the html or xhtml vocabulary or xml.
// Extra is an optional trailing token, like the encoding of an xml doctype.
type Doctype struct {
	Pos, EndPos lexer.Position
	Value       string `Doctype @( "xml" | "html" | "5" | "1.1" | "strict" | "frameset" | "mobile" | "basic" | "transitional" )`
	Extra       string `@Word?`
}

func (n *Doctype) Begin() token.Pos {
	return WrapPos(n.Pos)
}

func (n *Doctype) End() token.Pos {
	return WrapPos(n.EndPos)
}

// Comment is either a code comment (/) or a html comment (/!) up to the end of line.
type Comment struct {
	Pos, EndPos lexer.Position
	Raw         string `@( HTMLComment | CodeComment )`
}

// IsHTML reports if this is a /! comment.
func (n *Comment) IsHTML() bool {
	return strings.HasPrefix(n.Raw, "/!")
}

// Text returns the comment without its marker and surrounding blanks.
func (n *Comment) Text() string {
	s := strings.TrimPrefix(n.Raw, "/")
	s = strings.TrimPrefix(s, "!")

	return strings.TrimSpace(s)
}

func (n *Comment) Begin() token.Pos {
	return WrapPos(n.Pos)
}

func (n *Comment) End() token.Pos {
	return WrapPos(n.EndPos)
}

// Element is a tag name followed by attributes.
type Element struct {
	Pos, EndPos lexer.Position
	Name        string  `@Ident`
	Attrs       []*Attr `@@*`
}

func (n *Element) Begin() token.Pos {
	return WrapPos(n.Pos)
}

func (n *Element) End() token.Pos {
	return WrapPos(n.EndPos)
}

// Attr is a name with an optional value. Without a value, the attribute value is empty.
type Attr struct {
	Pos, EndPos lexer.Position
	Name        string `@Name`
	Value       *Value `( "=" @@ )?`
}

// Text returns the unquoted value.
func (n *Attr) Text() string {
	if n.Value == nil {
		return ""
	}

	return n.Value.Text()
}

func (n *Attr) Begin() token.Pos {
	return WrapPos(n.Pos)
}

func (n *Attr) End() token.Pos {
	return WrapPos(n.EndPos)
}

// Value is either a single or double quoted string or a bare word.
type Value struct {
	Pos, EndPos lexer.Position
	Raw         string `@( String | Bare )`
}

// Quoted reports if the value has been written in quotes.
func (n *Value) Quoted() bool {
	return len(n.Raw) >= 2 && (n.Raw[0] == '"' || n.Raw[0] == '\'')
}

// Text returns the value without quotes.
func (n *Value) Text() string {
	if n.Quoted() {
		return n.Raw[1 : len(n.Raw)-1]
	}

	return n.Raw
}

func (n *Value) Begin() token.Pos {
	return WrapPos(n.Pos)
}

func (n *Value) End() token.Pos {
	return WrapPos(n.EndPos)
}

// WrapPos converts a participle position into a token.Pos.
func WrapPos(p lexer.Position) token.Pos {
	return token.Pos{
		File:   p.Filename,
		Line:   p.Line,
		Col:    p.Column,
		Offset: p.Offset,
	}
}
