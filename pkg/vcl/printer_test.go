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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vcl-lang/go-vcl/pkg/util/source"
)

func TestPrinter_00(t *testing.T) {
	checkRoundTrip(t, "x = 1 + 2 * 3")
}

func TestPrinter_01(t *testing.T) {
	checkRoundTrip(t, "p = forall x . q x => r x")
}

func TestPrinter_02(t *testing.T) {
	checkRoundTrip(t, "f = \\x y -> x + y")
}

func TestPrinter_03(t *testing.T) {
	checkRoundTrip(t, "f = let a = 1\n        b = 2\n    in a + b")
}

func TestPrinter_04(t *testing.T) {
	checkRoundTrip(t, "f : (x : Nat) {y : Bool} -> Nat")
}

func TestPrinter_05(t *testing.T) {
	checkRoundTrip(t, "@network(free = True)\nclassifier : Vector Rat 784 -> Vector Rat 10")
}

func TestPrinter_06(t *testing.T) {
	checkRoundTrip(t, "x = 0.125\ny = - 2.5\nz = [1, 2.0, ?h]")
}

func TestPrinter_07(t *testing.T) {
	checkRoundTrip(t, "p = if a <= b then a :: nil else b ::v []")
}

func TestPrinter_08(t *testing.T) {
	checkRoundTrip(t, "type T a = List a\nf (@0 x : T Nat) = x")
}

func TestPrintRational_00(t *testing.T) {
	assert.Equal(t, "0.125", printRational(big.NewRat(1, 8)))
	assert.Equal(t, "0.2", printRational(big.NewRat(1, 5)))
	assert.Equal(t, "1.5", printRational(big.NewRat(3, 2)))
	assert.Equal(t, "3.0", printRational(big.NewRat(3, 1)))
	// Denominators with other prime factors cannot print exactly in decimal.
	assert.Equal(t, "1/3", printRational(big.NewRat(1, 3)))
}

// ==================================================================
// Framework
// ==================================================================

// Check that canonical printing is a fixpoint: parse, print, reparse the
// canonical form and print again, expecting identical text.
func checkRoundTrip(t *testing.T, input string) {
	srcfile := source.NewSourceFile("test.vcl", []byte(input))
	//
	parsed, errs := Parse(srcfile)
	if len(errs) > 0 {
		t.Fatalf("unexpected error: %s", errs[0].Error())
	}
	//
	canonical := PrintProgram(parsed.Program)
	//
	reparsed, errs := Parse(source.NewSourceFile("canonical.vcl", []byte(canonical)))
	if len(errs) > 0 {
		t.Fatalf("canonical form fails to parse: %s", errs[0].Error())
	}
	//
	assert.Equal(t, canonical, PrintProgram(reparsed.Program))
}
