// SPDX-FileCopyrightText: © 2022 The lithe authors <https://github.com/golangee/lithe/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"sort"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/golangee/lithe/ast"
	"github.com/golangee/lithe/dtd"
	"github.com/golangee/lithe/token"
	"github.com/pkg/errors"
)

// positional is implemented by the lexer and grammar errors of participle.
type positional interface {
	error
	Message() string
	Position() lexer.Position
}

// newGrammarError converts a participle error into a *token.PosError. The src is used to give a hint
// if a doctype line has been rejected.
func newGrammarError(src string, err error) error {
	var perr positional
	if !errors.As(err, &perr) {
		return errors.Wrap(err, "unable to parse")
	}

	pos := ast.WrapPos(perr.Position())
	posErr := token.NewPosError(token.NewNode(pos, pos), perr.Message()).SetCause(err)

	if strings.HasPrefix(strings.TrimLeft(lineAt(src, pos.Line), " \t"), "doctype") {
		posErr.SetHint("supported doctypes are " + strings.Join(doctypeVocabulary(), ", "))
	}

	return posErr
}

// lineAt returns the one-based line of src or the empty string.
func lineAt(src string, line int) string {
	lines := strings.Split(src, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}

	return lines[line-1]
}

// doctypeVocabulary returns every shorthand accepted after the doctype keyword.
func doctypeVocabulary() []string {
	set := map[string]struct{}{string(dtd.XML): {}}
	for _, d := range []dtd.Dialect{dtd.HTML, dtd.XHTML} {
		for _, s := range dtd.Shorthands(d) {
			set[s] = struct{}{}
		}
	}

	var res []string
	for s := range set {
		res = append(res, s)
	}

	sort.Strings(res)

	return res
}
