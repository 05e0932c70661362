// SPDX-FileCopyrightText: © 2022 The lithe authors <https://github.com/golangee/lithe/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"fmt"
	"strconv"
	"strings"
)

// PosError represents a very specific positional error with a lot of explaining noise. Use Explain.
type PosError struct {
	Node    Node
	Message string
	Cause   error
	Hint    string
}

// NewPosError creates a new PosError for the given node.
func NewPosError(node Node, msg string) *PosError {
	return &PosError{
		Node:    node,
		Message: msg,
	}
}

func (p *PosError) SetCause(err error) *PosError {
	p.Cause = err
	return p
}

func (p *PosError) SetHint(str string) *PosError {
	p.Hint = str
	return p
}

func (p *PosError) Unwrap() error {
	return p.Cause
}

// Pos returns the begin of the offending node.
func (p *PosError) Pos() Pos {
	if p.Node == nil {
		return Pos{}
	}

	return p.Node.Begin()
}

func (p *PosError) Error() string {
	if p.Node == nil {
		return p.Message
	}

	return p.Node.Begin().String() + ": " + p.Message
}

// posLine returns the line from lines which fits to the given pos.
func posLine(lines []string, pos Pos) string {
	no := pos.Line - 1

	if no >= len(lines) {
		no = len(lines) - 1
	}

	ltext := ""
	if no < len(lines) && no >= 0 {
		ltext = strings.TrimRight(lines[no], "\r")
	}

	return ltext
}

// Explain returns a multi-line text suited to be printed into the console.
// The src is the text which has been parsed and is used to quote the offending line.
func (p *PosError) Explain(src string) string {
	if p.Node == nil {
		return p.Message + "\n"
	}

	begin, end := p.Node.Begin(), p.Node.End()

	// grab the required indent for the line number
	indent := len(strconv.Itoa(begin.Line))
	pad := fmt.Sprintf("%"+strconv.Itoa(indent)+"s", "")

	sb := &strings.Builder{}
	sb.WriteString(begin.String())
	sb.WriteString("\n")

	sb.WriteString(pad + " |\n")
	sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"d |", begin.Line))
	sb.WriteString(posLine(strings.Split(src, "\n"), begin))
	sb.WriteString("\n")

	sb.WriteString(pad + " |")

	if begin.Col > 1 {
		sb.WriteString(strings.Repeat(" ", begin.Col-1))
	}

	if end.Line != begin.Line || end.Col-begin.Col <= 1 {
		sb.WriteString("^~~~ ")
	} else {
		sb.WriteString(strings.Repeat("^", end.Col-begin.Col))
		sb.WriteRune(' ')
	}

	sb.WriteString(p.Message)
	sb.WriteString("\n")

	if p.Hint != "" {
		sb.WriteString(pad + " |\n")
		sb.WriteString(pad + " = hint: " + p.Hint + "\n")
	}

	return sb.String()
}
