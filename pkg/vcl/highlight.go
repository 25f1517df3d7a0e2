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
package vcl

import (
	"github.com/vcl-lang/go-vcl/pkg/util/source"
	"github.com/vcl-lang/go-vcl/pkg/util/source/lex"
)

// TokenClass buckets token kinds into the categories an editor colours
// uniformly.  Builtin type names and primitives class as keywords.
type TokenClass uint8

const (
	// ClassWhitespace is whitespace between tokens.
	ClassWhitespace TokenClass = iota
	// ClassComment is a line or block comment.
	ClassComment
	// ClassKeyword is a reserved word, builtin type or primitive.
	ClassKeyword
	// ClassAnnotation is a declaration annotation such as "@property".
	ClassAnnotation
	// ClassOperator is an operator or punctuation mark.
	ClassOperator
	// ClassLiteral is a numeric or Boolean literal.
	ClassLiteral
	// ClassIdentifier is a general identifier.
	ClassIdentifier
	// ClassHole is a typed hole "?name".
	ClassHole
)

func (p TokenClass) String() string {
	switch p {
	case ClassWhitespace:
		return "whitespace"
	case ClassComment:
		return "comment"
	case ClassKeyword:
		return "keyword"
	case ClassAnnotation:
		return "annotation"
	case ClassOperator:
		return "operator"
	case ClassLiteral:
		return "literal"
	case ClassIdentifier:
		return "identifier"
	case ClassHole:
		return "hole"
	}
	//
	return "unknown"
}

// ClassOf determines the class of a given token kind.
func ClassOf(kind uint) TokenClass {
	switch {
	case kind == END_OF || kind == WHITESPACE:
		return ClassWhitespace
	case kind == LINE_COMMENT || kind == BLOCK_COMMENT:
		return ClassComment
	case kind == TRUE || kind == FALSE || kind == NATURAL || kind == RATIONAL:
		return ClassLiteral
	case kind == IDENTIFIER:
		return ClassIdentifier
	case kind == HOLE:
		return ClassHole
	case kind >= KEYWORD_FORALLT && kind <= HAS_FOLD:
		return ClassKeyword
	case kind >= AT_NETWORK && kind <= AT_ZERO:
		return ClassAnnotation
	}
	//
	return ClassOperator
}

// HighlightToken is one classified token of the raw stream.
type HighlightToken struct {
	Kind  uint
	Class TokenClass
	Span  source.Span
}

// Highlighter streams classified tokens straight off the lexer, without
// assembling layout or building any tree.  A file which fails to lex simply
// yields a truncated stream; Remaining reports how much input was left.
type Highlighter struct {
	lexer *lex.Lexer[rune]
}

// NewHighlighter constructs a highlighter for the given source file.
func NewHighlighter(srcfile *source.File) *Highlighter {
	return &Highlighter{lex.NewLexer(srcfile.Contents(), rules...)}
}

// HasNext checks whether any tokens remain.
func (p *Highlighter) HasNext() bool {
	return p.lexer.HasNext()
}

// Next returns the next classified token and advances the stream.
func (p *Highlighter) Next() HighlightToken {
	token := p.lexer.Next()
	//
	return HighlightToken{token.Kind, ClassOf(token.Kind), token.Span}
}

// Remaining reports how many characters of input were never tokenised.  This
// is zero after a complete pass, and non-zero exactly when the input fails to
// lex.
func (p *Highlighter) Remaining() uint {
	return p.lexer.Remaining()
}
