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

// AnnotationKind identifies one of the fixed declaration annotations.
type AnnotationKind uint8

const (
	// Network marks the following declaration as a neural network resource.
	Network AnnotationKind = iota
	// Dataset marks the following declaration as a dataset resource.
	Dataset
	// Parameter marks the following declaration as an external parameter.
	Parameter
	// Property marks the following declaration as a verifiable property.
	Property
	// Postulate marks the following declaration as assumed without proof.
	Postulate
	// Noinline prevents the following declaration from being inlined.
	Noinline
)

func (p AnnotationKind) String() string {
	switch p {
	case Network:
		return "@network"
	case Dataset:
		return "@dataset"
	case Parameter:
		return "@parameter"
	case Property:
		return "@property"
	case Postulate:
		return "@postulate"
	case Noinline:
		return "@noinline"
	}
	//
	return "@??"
}

// Option is a single "name = Boolean" entry in an annotation's option list.
// Duplicate names are permitted syntactically; resolving them is a semantic
// concern outside this front-end.
type Option struct {
	Name  string
	Value bool
}

// Annotation is a standalone annotation declaration, optionally carrying a
// parenthesised option list.
type Annotation struct {
	Kind    AnnotationKind
	Options []Option
}

// TypeSynonym binds a name over zero or more binders to a type expression,
// "type N bs = e".
type TypeSynonym struct {
	Synonym string
	Binders []Binder
	Body    Expr
}

// TypeSignature declares the type of a name, "n : T".
type TypeSignature struct {
	Declared string
	Type     Expr
}

// Definition binds a name over zero or more binders to a body, "n bs = e".
type Definition struct {
	Defined string
	Binders []Binder
	Body    Expr
}

// Name implements the Decl interface; annotations introduce no name
// themselves.
func (p *Annotation) Name() string { return "" }

// Name returns the name bound by this type synonym.
func (p *TypeSynonym) Name() string { return p.Synonym }

// Name returns the name whose type is declared.
func (p *TypeSignature) Name() string { return p.Declared }

// Name returns the name bound by this definition.
func (p *Definition) Name() string { return p.Defined }

func (p *Annotation) isNode()    {}
func (p *TypeSynonym) isNode()   {}
func (p *TypeSignature) isNode() {}
func (p *Definition) isNode()    {}
