// SPDX-FileCopyrightText: © 2022 The lithe authors <https://github.com/golangee/lithe/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import "github.com/alecthomas/participle/v2/lexer"

const (
	// sTagName is an element name like "html", "h1" or "svg:rect".
	sTagName = `[a-zA-Z][\w:-]*`

	// sAttrName is an attribute name like "href", "data-id", "xml:lang" or "@click".
	sAttrName = `[a-zA-Z_:@][\w:.-]*`

	// sString is a single or double quoted value which cannot span lines. There are no escapes.
	sString = `"[^"\r\n]*"|'[^'\r\n]*'`

	// sBare is an unquoted attribute value like "css/style.css" or "a?x=1". It cannot start with a quote or '='.
	sBare = `[^\s"'=]\S*`
)

// lithe is line oriented, so the lexer starts each line in the Root state, which is the only place where
// leading blanks are emitted as Indent tokens. The rest of a line is lexed within a state depending on
// the first word and a Newline always returns to Root. An attribute value is lexed in its own state after
// '=', so that it is a single token regardless of the characters it contains.
var lexerDef = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Newline", Pattern: `\r?\n`, Action: nil},
		{Name: "Indent", Pattern: `[ \t]+`, Action: nil},
		{Name: "HTMLComment", Pattern: `/![^\r\n]*`, Action: nil},
		{Name: "CodeComment", Pattern: `/[^\r\n]*`, Action: nil},
		{Name: "Doctype", Pattern: `doctype\b`, Action: lexer.Push("Doctype")},
		{Name: "Ident", Pattern: sTagName, Action: lexer.Push("Line")},
	},
	"Doctype": {
		{Name: "Newline", Pattern: `\r?\n`, Action: lexer.Pop()},
		{Name: "Blank", Pattern: `[ \t]+`, Action: nil},
		{Name: "Word", Pattern: `\S+`, Action: nil},
	},
	"Line": {
		{Name: "Newline", Pattern: `\r?\n`, Action: lexer.Pop()},
		{Name: "Blank", Pattern: `[ \t]+`, Action: nil},
		{Name: "Assign", Pattern: `=`, Action: lexer.Push("Value")},
		{Name: "Name", Pattern: sAttrName, Action: nil},
	},
	"Value": {
		{Name: "String", Pattern: sString, Action: lexer.Pop()},
		{Name: "Bare", Pattern: sBare, Action: lexer.Pop()},
	},
})
