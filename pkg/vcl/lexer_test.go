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

func TestVclLexer_00(t *testing.T) {
	checkLexer(t, "", END_OF)
}

func TestVclLexer_01(t *testing.T) {
	checkLexer(t, "(x)", LBRACE, IDENTIFIER, RBRACE, END_OF)
}

func TestVclLexer_02(t *testing.T) {
	checkLexer(t, "forall", KEYWORD_FORALL, END_OF)
}

func TestVclLexer_03(t *testing.T) {
	checkLexer(t, "forallT", KEYWORD_FORALLT, END_OF)
}

// A reserved word which is a strict prefix of the maximal run does not fire.
func TestVclLexer_04(t *testing.T) {
	checkLexer(t, "forallTx", IDENTIFIER, END_OF)
}

func TestVclLexer_05(t *testing.T) {
	checkLexer(t, "forally", IDENTIFIER, END_OF)
}

func TestVclLexer_06(t *testing.T) {
	checkLexer(t, "x :: y", IDENTIFIER, CONS, IDENTIFIER, END_OF)
}

func TestVclLexer_07(t *testing.T) {
	checkLexer(t, "x ::v y", IDENTIFIER, VECTOR_CONS, IDENTIFIER, END_OF)
}

func TestVclLexer_08(t *testing.T) {
	checkLexer(t, "x <= y", IDENTIFIER, LESS_THAN_EQUALS, IDENTIFIER, END_OF)
}

func TestVclLexer_09(t *testing.T) {
	checkLexer(t, "x < y", IDENTIFIER, LESS_THAN, IDENTIFIER, END_OF)
}

func TestVclLexer_10(t *testing.T) {
	checkLexer(t, "1", NATURAL, END_OF)
}

func TestVclLexer_11(t *testing.T) {
	checkLexer(t, "1.5", RATIONAL, END_OF)
}

func TestVclLexer_12(t *testing.T) {
	checkLexer(t, "True False Trueish", TRUE, FALSE, IDENTIFIER, END_OF)
}

func TestVclLexer_13(t *testing.T) {
	checkLexer(t, "?foo ?", HOLE, HOLE, END_OF)
}

func TestVclLexer_14(t *testing.T) {
	checkLexer(t, "@0 @property", AT_ZERO, AT_PROPERTY, END_OF)
}

func TestVclLexer_15(t *testing.T) {
	checkLexer(t, "in input", KEYWORD_IN, IDENTIFIER, END_OF)
}

func TestVclLexer_16(t *testing.T) {
	checkLexer(t, "-- comment\nx", IDENTIFIER, END_OF)
}

func TestVclLexer_17(t *testing.T) {
	checkLexer(t, "x {- comment -} y", IDENTIFIER, IDENTIFIER, END_OF)
}

func TestVclLexer_18(t *testing.T) {
	checkLexer(t, "a -> b => c", IDENTIFIER, RIGHTARROW, IDENTIFIER, IMPLIES, IDENTIFIER, END_OF)
}

func TestVclLexer_19(t *testing.T) {
	checkLexer(t, "{{x}} {y}", DOUBLE_LCURLY, IDENTIFIER, DOUBLE_RCURLY, LCURLY, IDENTIFIER, RCURLY, END_OF)
}

func TestVclLexer_20(t *testing.T) {
	checkLexer(t, "map fold dfold zipWith indices fromNat fromInt",
		BUILTIN_MAP, BUILTIN_FOLD, BUILTIN_DFOLD, BUILTIN_ZIPWITH,
		BUILTIN_INDICES, BUILTIN_FROMNAT, BUILTIN_FROMINT, END_OF)
}

func TestVclLexer_21(t *testing.T) {
	checkLexer(t, "Vector Rat Tensor Real", TYPE_VECTOR, TYPE_RAT, TYPE_TENSOR, TYPE_REAL, END_OF)
}

func TestVclLexer_22(t *testing.T) {
	checkLexer(t, "v ! 0 != 1", IDENTIFIER, BANG, NATURAL, NOT_EQUALS, NATURAL, END_OF)
}

// "1." is not a rational; the dot lexes separately.
func TestVclLexer_23(t *testing.T) {
	checkLexer(t, "1 . 1.", NATURAL, DOT, NATURAL, DOT, END_OF)
}

func TestVclLexer_24(t *testing.T) {
	checkLexer(t, "HasEq HasFold", HAS_EQ, HAS_FOLD, END_OF)
}

// The first "-}" closes the comment; no nesting.
func TestVclLexer_25(t *testing.T) {
	checkLexer(t, "x {- a {- b -} y", IDENTIFIER, IDENTIFIER, END_OF)
}

// A negated implicit argument needs a space after "{", since "{-" opens a
// comment.
func TestVclLexer_26(t *testing.T) {
	checkLexer(t, "f { - x }", IDENTIFIER, LCURLY, SUB, IDENTIFIER, RCURLY, END_OF)
}

func TestVclLexerErr_00(t *testing.T) {
	checkLexerFails(t, "{- unterminated", "unterminated block comment")
}

func TestVclLexerErr_01(t *testing.T) {
	checkLexerFails(t, "x £ y", "unrecognised character sequence")
}

func TestVclLexerErr_02(t *testing.T) {
	// No nesting, so the first "-}" closes the first comment and the second
	// "{-" dangles.
	checkLexerFails(t, "x {- a -} {- b", "unterminated block comment")
}

func TestVclLexerErr_03(t *testing.T) {
	checkLexerFails(t, "{- never closed", "unterminated block comment")
}

func TestVclLexerErr_04(t *testing.T) {
	checkLexerFails(t, "f {-x}", "unterminated block comment")
}

// The "-" after "{" may itself begin a longer token.
func TestVclLexerErr_05(t *testing.T) {
	checkLexerFails(t, "x = {-- nope", "unterminated block comment")
}

func TestVclLexerErr_06(t *testing.T) {
	checkLexerFails(t, "x = {->}", "unterminated block comment")
}

// ==================================================================
// Framework
// ==================================================================

func checkLexer(t *testing.T, input string, expected ...uint) {
	srcfile := source.NewSourceFile("test.vcl", []byte(input))
	//
	tokens, errs := Lex(srcfile)
	//
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

func checkLexerFails(t *testing.T, input string, msg string) {
	srcfile := source.NewSourceFile("test.vcl", []byte(input))
	//
	_, errs := Lex(srcfile)
	//
	if len(errs) == 0 {
		t.Fatalf("expected lexing to fail")
	} else if errs[0].Phase() != source.LexError {
		t.Errorf("got %s phase, expected lex", errs[0].Phase())
	} else if errs[0].Message() != msg {
		t.Errorf("got %q, expected %q", errs[0].Message(), msg)
	}
}
