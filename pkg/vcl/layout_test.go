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
	"slices"
	"testing"

	"github.com/vcl-lang/go-vcl/pkg/util/source"
)

func TestLayout_00(t *testing.T) {
	checkLayout(t, "x = 1",
		IDENTIFIER, EQUALS, NATURAL, END_OF)
}

// Two declarations anchored at the same column are separated.
func TestLayout_01(t *testing.T) {
	checkLayout(t, "x = 1\ny = 2",
		IDENTIFIER, EQUALS, NATURAL, SEMICOLON, IDENTIFIER, EQUALS, NATURAL, END_OF)
}

// An indented line continues the enclosing declaration.
func TestLayout_02(t *testing.T) {
	checkLayout(t, "x = 1 +\n  2\ny = 3",
		IDENTIFIER, EQUALS, NATURAL, ADD, NATURAL,
		SEMICOLON, IDENTIFIER, EQUALS, NATURAL, END_OF)
}

// Blank lines are irrelevant.
func TestLayout_03(t *testing.T) {
	checkLayout(t, "x = 1\n\n\ny = 2",
		IDENTIFIER, EQUALS, NATURAL, SEMICOLON, IDENTIFIER, EQUALS, NATURAL, END_OF)
}

// The declaration column is set by the first declaration, wherever it starts.
func TestLayout_04(t *testing.T) {
	checkLayout(t, "  x = 1\n  y = 2",
		IDENTIFIER, EQUALS, NATURAL, SEMICOLON, IDENTIFIER, EQUALS, NATURAL, END_OF)
}

// Let bindings anchored at the same column are separated, and "in" closes the
// block without a separator.
func TestLayout_05(t *testing.T) {
	checkLayout(t, "f = let a = 1\n        b = 2\n    in a",
		IDENTIFIER, EQUALS, KEYWORD_LET,
		IDENTIFIER, EQUALS, NATURAL,
		SEMICOLON, IDENTIFIER, EQUALS, NATURAL,
		KEYWORD_IN, IDENTIFIER, END_OF)
}

// A single-line let needs no synthetic separator at all.
func TestLayout_06(t *testing.T) {
	checkLayout(t, "f = let a = 1 in a",
		IDENTIFIER, EQUALS, KEYWORD_LET, IDENTIFIER, EQUALS, NATURAL,
		KEYWORD_IN, IDENTIFIER, END_OF)
}

// A declaration following a let block is still separated at top level.
func TestLayout_07(t *testing.T) {
	checkLayout(t, "f = let a = 1\n    in a\ng = 2",
		IDENTIFIER, EQUALS, KEYWORD_LET, IDENTIFIER, EQUALS, NATURAL,
		KEYWORD_IN, IDENTIFIER,
		SEMICOLON, IDENTIFIER, EQUALS, NATURAL, END_OF)
}

// Nested lets close innermost first.
func TestLayout_08(t *testing.T) {
	checkLayout(t, "f = let a = let b = 1\n            in b\n    in a",
		IDENTIFIER, EQUALS, KEYWORD_LET,
		IDENTIFIER, EQUALS, KEYWORD_LET, IDENTIFIER, EQUALS, NATURAL,
		KEYWORD_IN, IDENTIFIER,
		KEYWORD_IN, IDENTIFIER, END_OF)
}

// A bounded quantifier's "in" does not close the enclosing let block.
func TestLayout_09(t *testing.T) {
	checkLayout(t, "f = let a = forall x in xs . q x\n        b = 2\n    in a",
		IDENTIFIER, EQUALS, KEYWORD_LET,
		IDENTIFIER, EQUALS, KEYWORD_FORALL, IDENTIFIER, KEYWORD_IN, IDENTIFIER,
		DOT, IDENTIFIER, IDENTIFIER,
		SEMICOLON, IDENTIFIER, EQUALS, NATURAL,
		KEYWORD_IN, IDENTIFIER, END_OF)
}

// After the "." of an unbounded quantifier, "in" closes lets again.
func TestLayout_10(t *testing.T) {
	checkLayout(t, "f = let a = 1 in forall x . let b = a in b",
		IDENTIFIER, EQUALS, KEYWORD_LET, IDENTIFIER, EQUALS, NATURAL,
		KEYWORD_IN, KEYWORD_FORALL, IDENTIFIER, DOT,
		KEYWORD_LET, IDENTIFIER, EQUALS, IDENTIFIER,
		KEYWORD_IN, IDENTIFIER, END_OF)
}

// A bounded exists inside a let body whose own "in" follows on the same line.
func TestLayout_11(t *testing.T) {
	checkLayout(t, "f = let a = 1 in exists y in ys . y > a",
		IDENTIFIER, EQUALS, KEYWORD_LET, IDENTIFIER, EQUALS, NATURAL,
		KEYWORD_IN, KEYWORD_EXISTS, IDENTIFIER, KEYWORD_IN, IDENTIFIER,
		DOT, IDENTIFIER, GREATER_THAN, IDENTIFIER, END_OF)
}

func TestLayoutErr_00(t *testing.T) {
	checkLayoutFails(t, "  x = 1\ny = 2")
}

func TestLayoutErr_01(t *testing.T) {
	checkLayoutFails(t, "   x = 1\n y = 2")
}

// ==================================================================
// Framework
// ==================================================================

func checkLayout(t *testing.T, input string, expected ...uint) {
	srcfile := source.NewSourceFile("test.vcl", []byte(input))
	//
	tokens, errs := Lex(srcfile)
	if len(errs) > 0 {
		t.Fatalf("unexpected error: %s", errs[0].Error())
	}
	//
	tokens, errs = assembleLayout(srcfile, tokens)
	if len(errs) > 0 {
		t.Fatalf("unexpected error: %s", errs[0].Error())
	}
	//
	kinds := make([]uint, len(tokens))
	//
	for i, token := range tokens {
		kinds[i] = token.Kind
	}
	//
	if !slices.Equal(kinds, expected) {
		t.Errorf("got %v, expected %v", kinds, expected)
	}
}

func checkLayoutFails(t *testing.T, input string) {
	srcfile := source.NewSourceFile("test.vcl", []byte(input))
	//
	tokens, errs := Lex(srcfile)
	if len(errs) > 0 {
		t.Fatalf("unexpected error: %s", errs[0].Error())
	}
	//
	if _, errs = assembleLayout(srcfile, tokens); len(errs) == 0 {
		t.Fatalf("expected layout to fail")
	} else if errs[0].Phase() != source.LayoutError {
		t.Errorf("got %s phase, expected layout", errs[0].Phase())
	} else if errs[0].Message() != "illegal indentation" {
		t.Errorf("unexpected message: %q", errs[0].Message())
	}
}
