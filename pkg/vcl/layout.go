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

// layoutContext records one open layout block: the column its items are
// anchored at, and whether it is a let block (closed by "in") or the top-level
// block (closed by end of input).
type layoutContext struct {
	column int
	let    bool
}

// Assemble declaration boundaries from indentation.  Top-level declarations
// are not separated by any explicit token; instead, a new declaration begins
// whenever the first token of a line appears at the column established by the
// first declaration's first token.  Let blocks follow the same rule, locally
// anchored at the column of the first token after "let" and bounded by the
// enclosing "in".  This pass makes those boundaries explicit by inserting
// semicolon tokens, so the parser itself never tracks columns.
//
// A first-of-line token strictly left of the top-level declaration column is a
// layout error: nothing can legally begin there.
func assembleLayout(srcfile *source.File, tokens []lex.Token) ([]lex.Token, []source.SyntaxError) {
	var (
		out      = make([]lex.Token, 0, len(tokens))
		contexts []layoutContext
		prevLine = -1
		// Set when the previous token was "let"; the next token anchors the
		// new block and never gets a separator itself.
		pendingLet = false
		// Set between "forall"/"exists" and the end of its binder list, so
		// that a bounded quantifier's "in" is not mistaken for the "in"
		// closing a let block.
		pendingQuantifier = false
	)
	//
	for _, token := range tokens {
		if token.Kind == END_OF {
			out = append(out, token)
			break
		}
		//
		line, column := srcfile.Position(token.Span.Start())
		firstOfLine := line > prevLine
		prevLine = line
		//
		switch {
		case pendingLet:
			// This token anchors the let block.
			contexts = append(contexts, layoutContext{column, true})
			pendingLet = false
		case len(contexts) == 0:
			// This token anchors the top-level block.
			contexts = append(contexts, layoutContext{column, false})
		case token.Kind == KEYWORD_IN && pendingQuantifier:
			// This "in" bounds a quantifier binder, not a let block.
			pendingQuantifier = false
		case token.Kind == KEYWORD_IN:
			// Close the innermost let block.  An "in" without an open let
			// block is left for the parser to reject.
			if top := &contexts[len(contexts)-1]; top.let {
				contexts = contexts[:len(contexts)-1]
			}
		case firstOfLine:
			// Dedenting past a let block closes it implicitly; the parser
			// then reports the missing "in".
			for len(contexts) > 1 && column < contexts[len(contexts)-1].column {
				contexts = contexts[:len(contexts)-1]
			}
			//
			top := contexts[len(contexts)-1]
			//
			if column < top.column {
				err := srcfile.SyntaxError(source.LayoutError, token.Span, "illegal indentation")
				return nil, []source.SyntaxError{*err}
			} else if column == top.column {
				// New item in the enclosing block.
				start := token.Span.Start()
				out = append(out, lex.Token{Kind: SEMICOLON, Span: source.NewSpan(start, start)})
			}
		}
		//
		switch token.Kind {
		case KEYWORD_LET:
			pendingLet = true
		case KEYWORD_FORALL, KEYWORD_EXISTS:
			pendingQuantifier = true
		case DOT:
			// Ends the binder list of an unbounded quantifier.
			pendingQuantifier = false
		}
		//
		out = append(out, token)
	}
	//
	return out, nil
}
