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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vcl-lang/go-vcl/pkg/util/source"
)

// ==================================================================
// Operator levels
// ==================================================================

func TestParser_00(t *testing.T) {
	checkParser(t, "x = 1 + 2 * 3", "x = (1 + (2 * 3))")
}

func TestParser_01(t *testing.T) {
	checkParser(t, "x = 1 * 2 + 3", "x = ((1 * 2) + 3)")
}

// All binary operators associate to the right.
func TestParser_02(t *testing.T) {
	checkParser(t, "x = 1 - 2 - 3", "x = (1 - (2 - 3))")
}

func TestParser_03(t *testing.T) {
	checkParser(t, "x = a :: b :: nil", "x = (a :: (b :: nil))")
}

func TestParser_04(t *testing.T) {
	checkParser(t, "p = a and b or c", "p = ((a and b) or c)")
}

func TestParser_05(t *testing.T) {
	checkParser(t, "p = a == b != c", "p = (a == (b != c))")
}

func TestParser_06(t *testing.T) {
	checkParser(t, "p = 1 <= 2", "p = (1 <= 2)")
}

func TestParser_07(t *testing.T) {
	checkParser(t, "p = not a and b", "p = ((not a) and b)")
}

func TestParser_08(t *testing.T) {
	checkParser(t, "x = - 1", "x = (- 1)")
}

func TestParser_09(t *testing.T) {
	checkParser(t, "x = 1 : Nat", "x = (1 : Nat)")
}

func TestParser_10(t *testing.T) {
	checkParser(t, "y = v ! i ! j", "y = ((v ! i) ! j)")
}

func TestParser_11(t *testing.T) {
	checkParser(t, "z = f (x + 1) y", "z = (f (x + 1) y)")
}

func TestParser_12(t *testing.T) {
	checkParser(t, "y = f {Nat} {{inst}} x", "y = (f {Nat} {{inst}} x)")
}

func TestParser_13(t *testing.T) {
	checkParser(t, "v = x ::v []", "v = (x ::v [])")
}

func TestParser_14(t *testing.T) {
	checkParser(t, "v = [1, 2, 3]", "v = [1, 2, 3]")
}

// ==================================================================
// Binding constructs
// ==================================================================

// The body of a quantifier extends across an implication.
func TestParser_15(t *testing.T) {
	checkParser(t, "p = forall x . q x => r x", "p = (forall x . ((q x) => (r x)))")
}

func TestParser_16(t *testing.T) {
	checkParser(t, "p = forall x y . x < y", "p = (forall x y . (x < y))")
}

func TestParser_17(t *testing.T) {
	checkParser(t, "p = forall x . exists y . x < y", "p = (forall x . (exists y . (x < y)))")
}

func TestParser_18(t *testing.T) {
	checkParser(t, "p = forall x in xs . q x", "p = (forall x in xs . (q x))")
}

func TestParser_19(t *testing.T) {
	checkParser(t, "p = exists x in xs . q x", "p = (exists x in xs . (q x))")
}

func TestParser_20(t *testing.T) {
	checkParser(t, "p = foreach i . v ! i", "p = (foreach i . (v ! i))")
}

func TestParser_21(t *testing.T) {
	checkParser(t, "v = if c then 1 else 2 + 1", "v = (if c then 1 else (2 + 1))")
}

func TestParser_22(t *testing.T) {
	checkParser(t, "f = \\x y -> x + y", "f = (\\x y -> (x + y))")
}

func TestParser_23(t *testing.T) {
	checkParser(t, "f = let a = 1 in a + 2", "f = (let a = 1 in (a + 2))")
}

func TestParser_24(t *testing.T) {
	checkParser(t, "f = let a = 1\n        b = 2\n    in a + b",
		"f = (let a = 1; b = 2 in (a + b))")
}

func TestParser_25(t *testing.T) {
	checkParser(t, "f : forallT {n : Nat} . Vector Nat n",
		"f : (forallT {n : Nat} . (Vector Nat n))")
}

// ==================================================================
// Types
// ==================================================================

func TestParser_26(t *testing.T) {
	checkParser(t, "f : Nat -> Bool", "f : (Nat -> Bool)")
}

func TestParser_27(t *testing.T) {
	checkParser(t, "f : Nat -> Nat -> Bool", "f : (Nat -> (Nat -> Bool))")
}

func TestParser_28(t *testing.T) {
	checkParser(t, "f : (x : Nat) -> Bool", "f : ((x : Nat) -> Bool)")
}

func TestParser_29(t *testing.T) {
	checkParser(t, "f : (x : Nat) {y : Bool} -> Nat", "f : ((x : Nat) {y : Bool} -> Nat)")
}

// A parenthesised ascription is not a function type domain.
func TestParser_30(t *testing.T) {
	checkParser(t, "y = (x : Nat)", "y = (x : Nat)")
}

// ==================================================================
// Declarations
// ==================================================================

func TestParser_31(t *testing.T) {
	checkParser(t, "@property\np : Bool", "@property", "p : Bool")
}

func TestParser_32(t *testing.T) {
	checkParser(t, "@network(free = True, standard = False)",
		"@network(free = True, standard = False)")
}

func TestParser_33(t *testing.T) {
	checkParser(t, "type T a = List a", "type T a = (List a)")
}

func TestParser_34(t *testing.T) {
	checkParser(t, "f (x : Nat) {y : Bool} {{z : T}} = x",
		"f (x : Nat) {y : Bool} {{z : T}} = x")
}

func TestParser_35(t *testing.T) {
	checkParser(t, "f (@0 x : Nat) = x", "f (@0 x : Nat) = x")
}

func TestParser_36(t *testing.T) {
	checkParser(t, "x = ?a", "x = ?a")
}

func TestParser_37(t *testing.T) {
	checkParser(t, "x = 0.25", "x = 0.25")
}

func TestParser_38(t *testing.T) {
	checkParser(t, "x = 1.50", "x = 1.5")
}

func TestParser_39(t *testing.T) {
	checkParser(t, "x = 1\ny = x + 1\nz = y", "x = 1", "y = (x + 1)", "z = y")
}

// A bounded quantifier inside a let-binding value must not end the block; the
// following binding line still gets its separator.
func TestParser_40(t *testing.T) {
	checkParser(t, "f = let a = forall x in xs . q x\n        b = 2\n    in a",
		"f = (let a = (forall x in xs . (q x)); b = 2 in a)")
}

func TestParser_41(t *testing.T) {
	checkParser(t, "f = let a = 1 in exists y in ys . y",
		"f = (let a = 1 in (exists y in ys . y))")
}

// ==================================================================
// Errors
// ==================================================================

func TestParserErr_00(t *testing.T) {
	checkParserFails(t, "x :", source.ParseError, "expected expression")
}

func TestParserErr_01(t *testing.T) {
	checkParserFails(t, "f x", source.ParseError, "expected ':' or '=' after declaration name")
}

func TestParserErr_02(t *testing.T) {
	checkParserFails(t, "@network(free = 1)", source.ParseError, "expected Boolean option value")
}

func TestParserErr_03(t *testing.T) {
	checkParserFails(t, "42", source.ParseError, "unknown declaration")
}

func TestParserErr_04(t *testing.T) {
	checkParserFails(t, "x = (1", source.ParseError, "expected ')'")
}

func TestParserErr_05(t *testing.T) {
	checkParserFails(t, "f = forall . x", source.ParseError, "expected binder")
}

func TestParserErr_06(t *testing.T) {
	checkParserFails(t, "f = let x = 1", source.ParseError, "expected 'in' after let bindings")
}

func TestParserErr_07(t *testing.T) {
	checkParserFails(t, "x = {- ", source.LexError, "unterminated block comment")
}

func TestParserErr_08(t *testing.T) {
	checkParserFails(t, "  x = 1\ny = 2", source.LayoutError, "illegal indentation")
}

func TestParserErr_09(t *testing.T) {
	checkParserFails(t, "p = forall x y in xs . q x", source.ParseError,
		"bounded quantifier takes exactly one binder")
}

// ==================================================================
// Source mapping
// ==================================================================

func TestParserSourceMap_00(t *testing.T) {
	srcfile := source.NewSourceFile("test.vcl", []byte("x = 1 + 2"))
	//
	parsed, errs := Parse(srcfile)
	if len(errs) > 0 {
		t.Fatalf("unexpected error: %s", errs[0].Error())
	}
	// The declaration spans the whole line.
	span := parsed.SourceMap.Get(parsed.Program.Decls[0])
	//
	if span.Start() != 0 || span.End() != 9 {
		t.Errorf("got span %d..%d, expected 0..9", span.Start(), span.End())
	}
}

// ==================================================================
// Corpus
// ==================================================================

func TestParserTestdata(t *testing.T) {
	filenames, err := filepath.Glob("../../testdata/*.vcl")
	if err != nil {
		t.Fatal(err)
	} else if len(filenames) == 0 {
		t.Fatal("no test files found")
	}
	//
	for _, filename := range filenames {
		bytes, err := os.ReadFile(filename)
		if err != nil {
			t.Fatal(err)
		}
		//
		srcfile := source.NewSourceFile(filename, bytes)
		//
		if _, errs := Parse(srcfile); len(errs) > 0 {
			t.Errorf("%s: %s", filename, errs[0].Error())
		}
	}
}

// ==================================================================
// Framework
// ==================================================================

// Check that a given input parses, and that its declarations render as
// expected in canonical form.
func checkParser(t *testing.T, input string, expected ...string) {
	srcfile := source.NewSourceFile("test.vcl", []byte(input))
	//
	parsed, errs := Parse(srcfile)
	//
	if len(errs) > 0 {
		t.Fatalf("unexpected error: %s", errs[0].Error())
	}
	//
	if len(parsed.Program.Decls) != len(expected) {
		t.Fatalf("got %d declaration(s), expected %d", len(parsed.Program.Decls), len(expected))
	}
	//
	for i, decl := range parsed.Program.Decls {
		if actual := PrintDecl(decl); actual != expected[i] {
			t.Errorf("got %q, expected %q", actual, expected[i])
		}
	}
}

func checkParserFails(t *testing.T, input string, phase source.Phase, msg string) {
	srcfile := source.NewSourceFile("test.vcl", []byte(input))
	//
	_, errs := Parse(srcfile)
	//
	if len(errs) == 0 {
		t.Fatalf("expected parsing to fail")
	} else if errs[0].Phase() != phase {
		t.Errorf("got %s phase, expected %s", errs[0].Phase(), phase)
	} else if !strings.HasPrefix(errs[0].Message(), msg) {
		t.Errorf("got %q, expected %q", errs[0].Message(), msg)
	}
}
