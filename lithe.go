// SPDX-FileCopyrightText: © 2022 The lithe authors <https://github.com/golangee/lithe/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package lithe compiles an indentation based template shorthand into html.
//
//  doctype html
//  html lang=en
//    head
//      link rel="stylesheet" href="style.css"
//    body
//
// compiles into
//
//  <!DOCTYPE HTML><html lang="en"><head><link rel="stylesheet" href="style.css" /></head><body></body></html>
//
// Each line is a doctype, a comment (/ or /!) or an element name followed by attributes.
// Children are indented deeper than their parent. Comments are never rendered.
package lithe

import (
	"io"

	"github.com/golangee/lithe/dom"
	"github.com/golangee/lithe/encoder"
	"github.com/golangee/lithe/parser"
	"github.com/pkg/errors"
)

// Parse parses the source into a document. Errors are *token.PosError values which can Explain themselves.
func Parse(src string, opts ...parser.Option) (*dom.Document, error) {
	return parser.Parse(src, opts...)
}

// Render returns the html text of the document.
func Render(doc *dom.Document) (string, error) {
	return encoder.Render(doc)
}

// Compile reads the entire source from r and writes the html to w. Nothing is written if the source
// cannot be parsed.
func Compile(r io.Reader, w io.Writer, opts ...parser.Option) error {
	buf, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "unable to read source")
	}

	doc, err := parser.Parse(string(buf), opts...)
	if err != nil {
		return err
	}

	return encoder.NewHTMLEncoder(w).Encode(doc)
}
