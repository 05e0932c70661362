// SPDX-FileCopyrightText: © 2022 The lithe authors <https://github.com/golangee/lithe/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package dom contains the document model which is built from a parsed source and consumed by the encoder.
// Edges are owned top-down only, an Element never refers to its parent.
package dom

import "github.com/golangee/lithe/dtd"

// Element is a structural node. An empty Name denotes a comment placeholder, which occupies a
// position in the tree but never produces output.
type Element struct {
	Name       string
	Attributes NamedNodeMap
	Children   []*Element
}

// NewElement allocates an Element without attributes and children.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// NewComment allocates a comment placeholder.
func NewComment() *Element {
	return &Element{}
}

// IsComment reports if the element is a comment placeholder.
func (e *Element) IsComment() bool {
	return e.Name == ""
}

// AppendChild adds c as the last child.
func (e *Element) AppendChild(c *Element) {
	e.Children = append(e.Children, c)
}

// DocumentType is the resolved doctype declaration.
type DocumentType struct {
	// Dialect is the vocabulary the Name was resolved in.
	Dialect dtd.Dialect
	// Name is the shorthand as written, e.g. "5" or "strict".
	Name     string
	PublicID string
	SystemID string
}

// NewDocumentType resolves the shorthand name within the dialect. The xml pseudo dialect and unknown
// shorthands have empty identifiers.
func NewDocumentType(dialect dtd.Dialect, name string) *DocumentType {
	pub, sys := dtd.Resolve(dialect, name)

	return &DocumentType{
		Dialect:  dialect,
		Name:     name,
		PublicID: pub,
		SystemID: sys,
	}
}

// Document is the root aggregate. Type is nil if the source had no doctype line.
type Document struct {
	Type     *DocumentType
	Children []*Element
}

// NewDocument allocates an empty Document.
func NewDocument() *Document {
	return &Document{}
}

// AppendChild adds c as the last top level element.
func (d *Document) AppendChild(c *Element) {
	d.Children = append(d.Children, c)
}

// Walk visits all elements depth first in document order. The ancestors of each element are
// passed along, the last one being the direct parent. Walking stops if f returns false.
func (d *Document) Walk(f func(e *Element, ancestors []*Element) bool) {
	var walk func(list []*Element, ancestors []*Element) bool
	walk = func(list []*Element, ancestors []*Element) bool {
		for _, e := range list {
			if !f(e, ancestors) {
				return false
			}

			if !walk(e.Children, append(ancestors[:len(ancestors):len(ancestors)], e)) {
				return false
			}
		}

		return true
	}

	walk(d.Children, nil)
}
