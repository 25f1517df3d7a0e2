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
package ast

// Visibility determines how a binder (or its mirroring argument) is passed:
// explicitly, implicitly, or via instance resolution.  Call sites and
// definitions agree positionally through this single tagging.
type Visibility uint8

const (
	// Explicit visibility, written "(x : A)" in binder position or as a bare
	// juxtaposed expression in argument position.
	Explicit Visibility = iota
	// Implicit visibility, written "{x : A}" respectively "{e}".
	Implicit
	// Instance visibility, written "{{x : A}}" respectively "{{e}}".
	Instance
)

func (p Visibility) String() string {
	switch p {
	case Explicit:
		return "explicit"
	case Implicit:
		return "implicit"
	case Instance:
		return "instance"
	}
	//
	return "unknown"
}

// Modality marks whether a binder's argument is computationally relevant.  An
// irrelevant binder is written with a leading "@0" and its argument is erased
// downstream; the modality belongs to the binder, never to its body.
type Modality uint8

const (
	// Relevant is the default modality.
	Relevant Modality = iota
	// Irrelevant marks a binder whose argument is computationally irrelevant.
	Irrelevant
)

// Binder is a name introduction site.  In "full" binder positions the type is
// mandatory; in name-only positions (lambda, quantifiers, let) it is nil and
// must be inferred downstream.
type Binder struct {
	Visibility Visibility
	Modality   Modality
	Name       string
	// Declared type of the bound name, or nil in name-only positions.
	Type Expr
}

// Arg is an argument at a call site, tagged with the same visibility
// enumeration as binders.
type Arg struct {
	Visibility Visibility
	Expr       Expr
}
