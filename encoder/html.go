// SPDX-FileCopyrightText: © 2022 The lithe authors <https://github.com/golangee/lithe/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package encoder serializes a dom.Document into html text. No line breaks or indentation are emitted.
package encoder

import (
	"bufio"
	"io"
	"strings"

	"github.com/golangee/lithe/dom"
	"github.com/golangee/lithe/dtd"
	"github.com/pkg/errors"
	"golang.org/x/net/html/atom"
)

// voidElements never have an end tag and their children are never written.
var voidElements = map[atom.Atom]struct{}{
	atom.Area:   {},
	atom.Base:   {},
	atom.Br:     {},
	atom.Col:    {},
	atom.Embed:  {},
	atom.Hr:     {},
	atom.Img:    {},
	atom.Input:  {},
	atom.Link:   {},
	atom.Meta:   {},
	atom.Source: {},
	atom.Track:  {},
	atom.Wbr:    {},
}

// IsVoid reports if name is a void element like link or br. Names are case-sensitive.
func IsVoid(name string) bool {
	a := atom.Lookup([]byte(name))
	if a == 0 {
		return false
	}

	_, ok := voidElements[a]

	return ok
}

// DoctypeTag returns the declaration for the document type. The xml pseudo dialect, unknown dialects
// and nil have no declaration and return the empty string.
func DoctypeTag(dt *dom.DocumentType) string {
	if dt == nil {
		return ""
	}

	switch dt.Dialect {
	case dtd.HTML:
		if dt.PublicID == "" && dt.SystemID == "" {
			return "<!DOCTYPE HTML>"
		}

		return `<!DOCTYPE HTML PUBLIC "` + dt.PublicID + `" "` + dt.SystemID + `">`
	case dtd.XHTML:
		// xhtml is xml and the root element is lower case, there is no short form
		return `<!DOCTYPE html PUBLIC "` + dt.PublicID + `" "` + dt.SystemID + `">`
	default:
		return ""
	}
}

// HTMLEncoder writes documents to an io.Writer.
type HTMLEncoder struct {
	writer *bufio.Writer
}

func NewHTMLEncoder(w io.Writer) *HTMLEncoder {
	return &HTMLEncoder{
		writer: bufio.NewWriter(w),
	}
}

// Encode writes the doctype declaration and all elements depth first. In case of an error incomplete
// output may already have been written.
func (e *HTMLEncoder) Encode(doc *dom.Document) error {
	if doc == nil {
		return errors.New("cannot encode nil document")
	}

	if err := e.writeString(DoctypeTag(doc.Type)); err != nil {
		return err
	}

	for _, elem := range doc.Children {
		if err := e.element(elem); err != nil {
			return err
		}
	}

	return e.finalize()
}

func (e *HTMLEncoder) element(elem *dom.Element) error {
	if elem.IsComment() {
		return nil
	}

	// Build the opening tag with all attributes
	var tag strings.Builder

	tag.WriteString("<")
	tag.WriteString(elem.Name)

	for _, attr := range elem.Attributes {
		tag.WriteString(" ")
		tag.WriteString(attr.Name)
		tag.WriteString(`="`)
		tag.WriteString(escapeQuotes(attr.Value))
		tag.WriteString(`"`)
	}

	if IsVoid(elem.Name) {
		tag.WriteString(" />")
		return e.writeString(tag.String())
	}

	tag.WriteString(">")

	if err := e.writeString(tag.String()); err != nil {
		return err
	}

	for _, child := range elem.Children {
		if err := e.element(child); err != nil {
			return err
		}
	}

	return e.writeString("</" + elem.Name + ">")
}

func (e *HTMLEncoder) finalize() error {
	if err := e.writer.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush written html")
	}

	return nil
}

// writeString is a convenience method to write strings to the underlying writer.
func (e *HTMLEncoder) writeString(s string) error {
	if _, err := e.writer.WriteString(s); err != nil {
		return errors.Wrap(err, "failed to write html")
	}

	return nil
}

// escapeQuotes keeps values verbatim. Only a value holding a quote, which is possible from a single quoted
// source value and would terminate the attribute, is changed.
func escapeQuotes(s string) string {
	if !strings.Contains(s, `"`) {
		return s
	}

	return strings.ReplaceAll(s, `"`, "&quot;")
}

// Render returns the html text of the document.
func Render(doc *dom.Document) (string, error) {
	var sb strings.Builder
	if err := NewHTMLEncoder(&sb).Encode(doc); err != nil {
		return "", err
	}

	return sb.String(), nil
}
