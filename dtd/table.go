// SPDX-FileCopyrightText: © 2022 The lithe authors <https://github.com/golangee/lithe/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package dtd maps doctype shorthands like "strict" or "1.1" to the formal public and system identifiers
// of the html and xhtml document type definitions.
package dtd

import (
	"sort"

	"github.com/pkg/errors"
)

// A Dialect selects one of the shorthand vocabularies.
type Dialect string

const (
	HTML  Dialect = "html"
	XHTML Dialect = "xhtml"
	// XML is a pseudo dialect for "doctype xml". It has no identifiers and is never resolved through the table.
	XML Dialect = "xml"
)

// Identifiers holds the formal identifiers of a document type definition.
type Identifiers struct {
	PublicID string
	SystemID string
}

var tables = map[Dialect]map[string]Identifiers{
	XHTML: {
		"html": {},
		"5":    {},
		"1.1": {
			PublicID: "-//W3C//DTD XHTML 1.1//EN",
			SystemID: "http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd",
		},
		"strict": {
			PublicID: "-//W3C//DTD XHTML 1.0 Strict//EN",
			SystemID: "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd",
		},
		"frameset": {
			PublicID: "-//W3C//DTD XHTML 1.0 Frameset//EN",
			SystemID: "http://www.w3.org/TR/xhtml1/DTD/xhtml1-frameset.dtd",
		},
		"mobile": {
			PublicID: "-//WAPFORUM//DTD XHTML Mobile 1.2//EN",
			SystemID: "http://www.openmobilealliance.org/tech/DTD/xhtml-mobile12.dtd",
		},
		"basic": {
			PublicID: "-//W3C//DTD XHTML Basic 1.1//EN",
			SystemID: "http://www.w3.org/TR/xhtml-basic/xhtml-basic11.dtd",
		},
		"transitional": {
			PublicID: "-//W3C//DTD XHTML 1.0 Transitional//EN",
			SystemID: "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd",
		},
	},
	HTML: {
		"html": {},
		"5":    {},
		"strict": {
			PublicID: "-//W3C//DTD HTML 4.01//EN",
			SystemID: "http://www.w3.org/TR/html4/strict.dtd",
		},
		"frameset": {
			PublicID: "-//W3C//DTD HTML 4.01 Frameset//EN",
			SystemID: "http://www.w3.org/TR/html4/frameset.dtd",
		},
		"transitional": {
			PublicID: "-//W3C//DTD HTML 4.01 Transitional//EN",
			SystemID: "http://www.w3.org/TR/html4/loose.dtd",
		},
	},
}

// Lookup returns the identifiers for the shorthand in the given dialect and reports if the pair is known.
func Lookup(dialect Dialect, shorthand string) (Identifiers, bool) {
	ids, ok := tables[dialect][shorthand]
	return ids, ok
}

// Resolve returns the public and system identifier of the shorthand. Unknown dialects or shorthands
// resolve to empty identifiers.
func Resolve(dialect Dialect, shorthand string) (publicID, systemID string) {
	ids, _ := Lookup(dialect, shorthand)
	return ids.PublicID, ids.SystemID
}

// Shorthands returns the sorted vocabulary of the dialect. XML and unknown dialects have none.
func Shorthands(dialect Dialect) []string {
	var res []string
	for name := range tables[dialect] {
		res = append(res, name)
	}

	sort.Strings(res)

	return res
}

// Detect returns the dialect in which the shorthand is resolved. The preferred dialect wins if it
// knows the shorthand, otherwise the remaining table is asked, so that "1.1" is always xhtml.
// "xml" always selects the XML pseudo dialect. The result is false if no dialect knows the shorthand.
func Detect(preferred Dialect, shorthand string) (Dialect, bool) {
	if shorthand == string(XML) {
		return XML, true
	}

	if _, ok := Lookup(preferred, shorthand); ok {
		return preferred, true
	}

	for _, d := range []Dialect{HTML, XHTML} {
		if _, ok := Lookup(d, shorthand); ok {
			return d, true
		}
	}

	return preferred, false
}

// ParseDialect converts a configuration value into a Dialect which can be used to resolve shorthands.
func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(s); d {
	case HTML, XHTML:
		return d, nil
	default:
		return "", errors.Errorf("unknown dialect %q, expected %q or %q", s, HTML, XHTML)
	}
}
