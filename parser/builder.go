// SPDX-FileCopyrightText: © 2022 The lithe authors <https://github.com/golangee/lithe/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"github.com/golangee/lithe/ast"
	"github.com/golangee/lithe/dom"
	"github.com/golangee/lithe/dtd"
	"github.com/sirupsen/logrus"
)

// frame is an open element together with the indentation width of its line.
type frame struct {
	depth int
	elem  *dom.Element
}

// builder folds the lines of a parse tree into a document. openNodes is the chain of currently
// opened ancestors, the last one being the innermost.
type builder struct {
	opts      options
	doc       *dom.Document
	openNodes []frame
}

// Build folds the parse tree into a document in a single pass. The tree must come from ParseFile.
func Build(file *ast.File, opts ...Option) *dom.Document {
	return build(file, newOptions(opts))
}

func build(file *ast.File, o options) *dom.Document {
	b := &builder{
		opts: o,
		doc:  dom.NewDocument(),
	}

	for _, line := range file.Lines {
		b.line(line)
	}

	return b.doc
}

func (b *builder) line(l *ast.Line) {
	switch {
	case l.Doctype != nil:
		b.doctype(l.Doctype)
	case l.Comment != nil:
		// comments take a position but never open a scope
		b.appendChild(l.Depth(), dom.NewComment())
	case l.Element != nil:
		elem := b.element(l.Element)
		b.appendChild(l.Depth(), elem)
		b.push(l.Depth(), elem)
	}
}

// doctype assigns the document type. The first declaration wins.
func (b *builder) doctype(d *ast.Doctype) {
	log := b.opts.logger.WithFields(logrus.Fields{
		"pos":     d.Begin().String(),
		"doctype": d.Value,
	})

	if b.doc.Type != nil {
		log.Debug("ignoring repeated doctype")
		return
	}

	dialect, ok := dtd.Detect(b.opts.dialect, d.Value)
	if !ok {
		log.Debug("unresolved doctype shorthand")
	}

	if d.Extra != "" {
		log.WithField("extra", d.Extra).Debug("dropping doctype parameter")
	}

	b.doc.Type = dom.NewDocumentType(dialect, d.Value)
}

func (b *builder) element(e *ast.Element) *dom.Element {
	elem := dom.NewElement(e.Name)
	for _, a := range e.Attrs {
		elem.Attributes.Add(a.Name, a.Text())
	}

	return elem
}

// appendChild closes all open elements which are not shallower than depth and appends
// elem to the innermost remaining one or to the document.
func (b *builder) appendChild(depth int, elem *dom.Element) {
	for len(b.openNodes) > 0 && b.peek().depth >= depth {
		b.pop()
	}

	if len(b.openNodes) == 0 {
		b.doc.AppendChild(elem)
		return
	}

	b.peek().elem.AppendChild(elem)
}

func (b *builder) push(depth int, elem *dom.Element) {
	b.openNodes = append(b.openNodes, frame{depth: depth, elem: elem})
}

func (b *builder) peek() frame {
	return b.openNodes[len(b.openNodes)-1]
}

func (b *builder) pop() {
	b.openNodes = b.openNodes[:len(b.openNodes)-1]
}
