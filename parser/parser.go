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

// Package parser turns lithe source text into a dom.Document. ParseFile runs the grammar and
// returns the raw parse tree, Build folds that tree into a document and Parse does both.
package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/golangee/lithe/ast"
	"github.com/golangee/lithe/dom"
	"github.com/sirupsen/logrus"
)

// grammar is immutable after construction and safe for concurrent use.
var grammar = participle.MustBuild[ast.File](
	participle.Lexer(lexerDef),
	participle.Elide("Blank"),
)

// ParseFile parses src into a parse tree. Any failure is a *token.PosError, inspect it using
// Explain for a nice rendering of the offending line.
func ParseFile(filename, src string) (*ast.File, error) {
	if src == "" {
		return &ast.File{}, nil
	}

	// every line, including the last one, is terminated for the grammar
	text := src
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	file, err := grammar.ParseString(filename, text)
	if err != nil {
		return nil, newGrammarError(src, err)
	}

	return file, nil
}

// Parse parses src and builds the document. There is never a partial document on error.
func Parse(src string, opts ...Option) (*dom.Document, error) {
	o := newOptions(opts)

	file, err := ParseFile(o.filename, src)
	if err != nil {
		return nil, err
	}

	doc := build(file, o)
	elements, comments, depth := stats(doc)
	o.logger.WithFields(logrus.Fields{
		"file":     o.filename,
		"lines":    len(file.Lines),
		"elements": elements,
		"comments": comments,
		"depth":    depth,
	}).Debug("parsed document")

	return doc, nil
}

// stats counts the elements and comments of doc and returns the deepest nesting level.
func stats(doc *dom.Document) (elements, comments, depth int) {
	doc.Walk(func(e *dom.Element, ancestors []*dom.Element) bool {
		if e.IsComment() {
			comments++
		} else {
			elements++
		}

		if len(ancestors)+1 > depth {
			depth = len(ancestors) + 1
		}

		return true
	})

	return elements, comments, depth
}
