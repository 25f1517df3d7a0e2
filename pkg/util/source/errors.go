// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

import "fmt"

// Phase identifies which stage of the front-end pipeline raised a given syntax
// error.  The pipeline fails fast, hence exactly one phase is ever reported for
// a given input.
type Phase uint8

const (
	// LexError indicates an error arising during lexical analysis, such as an
	// unrecognised character sequence or an unterminated block comment.
	LexError Phase = iota
	// LayoutError indicates an illegal indentation-derived declaration
	// boundary.
	LayoutError
	// ParseError indicates an error arising during parsing proper, such as an
	// expected-token mismatch or an unexpected end of input.
	ParseError
)

func (p Phase) String() string {
	switch p {
	case LexError:
		return "lex"
	case LayoutError:
		return "layout"
	case ParseError:
		return "parse"
	}
	//
	return "unknown"
}

// SyntaxError is a structured error which retains the span of the original
// string where an error occurred, along with an error message and the phase
// which raised it.
type SyntaxError struct {
	srcfile *File
	// Phase of the pipeline which raised this error.
	phase Phase
	// Span of the string being parsed where the error arose.
	span Span
	// Error message being reported
	msg string
}

// SourceFile returns the underlying source file that this syntax error covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Phase returns the pipeline phase which raised this error.
func (p *SyntaxError) Phase() Phase {
	return p.phase
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Position returns the line and column (both counting from 1) at which this
// error begins.
func (p *SyntaxError) Position() (line int, column int) {
	return p.srcfile.Position(p.span.start)
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	line, col := p.Position()
	return fmt.Sprintf("%s:%d:%d: %s", p.phase, line, col, p.msg)
}

// FirstEnclosingLine determines the first line in this source file to which
// this error is associated.  Observe that, if the position is beyond the bounds
// of the source file then the last physical line is returned.  Also, the
// returned line is not guaranteed to enclose the entire span, as these can
// cross multiple lines.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.EnclosingLine(p.span.start)
}
