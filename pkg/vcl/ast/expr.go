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

import "math/big"

// Ann is a type ascription "e : t".
type Ann struct {
	Expr Expr
	Type Expr
}

// ForallT is universal type quantification "forallT bs . e".
type ForallT struct {
	Binders []Binder
	Body    Expr
}

// LetBinding is a single "name = expr" pair within a let block.
type LetBinding struct {
	Name  string
	Value Expr
}

// Let is an ordered sequence of bindings scoping over a body,
// "let x = e1; y = e2 in e".
type Let struct {
	Bindings []LetBinding
	Body     Expr
}

// Lam is lambda abstraction over one or more binders, "\bs -> e".
type Lam struct {
	Binders []Binder
	Body    Expr
}

// Fun is the (non-dependent) function type "a -> b".
type Fun struct {
	From Expr
	To   Expr
}

// Pi is the dependent function type "(x : A) -> b", where the codomain may
// reference the bound name.
type Pi struct {
	Binders []Binder
	To      Expr
}

// App is application of a function to one or more arguments by juxtaposition.
type App struct {
	Fn   Expr
	Args []Arg
}

// Var is a reference to a name.
type Var struct {
	Name string
}

// Hole is a placeholder "?name" standing for a value to be inferred by a
// downstream elaborator.
type Hole struct {
	Name string
}

// BoolLit is a Boolean literal, "True" or "False".
type BoolLit struct {
	Value bool
}

// NatLit is a natural number literal.
type NatLit struct {
	Value *big.Int
}

// RatLit is a rational literal, written in decimal notation.
type RatLit struct {
	Value *big.Rat
}

// Forall is unbounded universal quantification "forall bs . e".
type Forall struct {
	Binders []Binder
	Body    Expr
}

// Exists is unbounded existential quantification "exists bs . e".
type Exists struct {
	Binders []Binder
	Body    Expr
}

// Foreach quantifies over the elements of a vector, "foreach bs . e".
type Foreach struct {
	Binders []Binder
	Body    Expr
}

// ForallIn is bounded universal quantification "forall x in e . b".
type ForallIn struct {
	Binder Binder
	Domain Expr
	Body   Expr
}

// ExistsIn is bounded existential quantification "exists x in e . b".
type ExistsIn struct {
	Binder Binder
	Domain Expr
	Body   Expr
}

// If is the conditional "if c then t else f".
type If struct {
	Condition   Expr
	TrueBranch  Expr
	FalseBranch Expr
}

// Impl is logical implication "a => b".
type Impl struct {
	Lhs Expr
	Rhs Expr
}

// Or is logical disjunction.
type Or struct {
	Lhs Expr
	Rhs Expr
}

// And is logical conjunction.
type And struct {
	Lhs Expr
	Rhs Expr
}

// Not is logical negation.
type Not struct {
	Arg Expr
}

// CmpOp identifies a comparison operator.
type CmpOp uint8

const (
	// EQ is equality "==".
	EQ CmpOp = iota
	// NEQ is inequality "!=".
	NEQ
	// LT is strict less-than "<".
	LT
	// LTEQ is non-strict less-than "<=".
	LTEQ
	// GT is strict greater-than ">".
	GT
	// GTEQ is non-strict greater-than ">=".
	GTEQ
)

func (p CmpOp) String() string {
	switch p {
	case EQ:
		return "=="
	case NEQ:
		return "!="
	case LT:
		return "<"
	case LTEQ:
		return "<="
	case GT:
		return ">"
	case GTEQ:
		return ">="
	}
	//
	return "??"
}

// Cmp is a comparison between two expressions.
type Cmp struct {
	Op  CmpOp
	Lhs Expr
	Rhs Expr
}

// Add is addition.
type Add struct {
	Lhs Expr
	Rhs Expr
}

// Sub is subtraction.
type Sub struct {
	Lhs Expr
	Rhs Expr
}

// Mul is multiplication.
type Mul struct {
	Lhs Expr
	Rhs Expr
}

// Div is division.
type Div struct {
	Lhs Expr
	Rhs Expr
}

// Neg is unary arithmetic negation.
type Neg struct {
	Arg Expr
}

// Nil is the empty list.
type Nil struct{}

// Cons is list construction "x :: xs".
type Cons struct {
	Head Expr
	Tail Expr
}

// VecCons is vector construction "x ::v xs".
type VecCons struct {
	Head Expr
	Tail Expr
}

// VecLit is a literal sequence "[e1, ..., en]".
type VecLit struct {
	Elements []Expr
}

// At indexes a vector, "xs ! i".
type At struct {
	Vector Expr
	Index  Expr
}

// BuiltinKind identifies a primitive type or higher-order primitive.
type BuiltinKind uint8

const (
	// Unit is the unit type.
	Unit BuiltinKind = iota
	// Bool is the Boolean type.
	Bool
	// Nat is the natural number type.
	Nat
	// Int is the integer type.
	Int
	// Rat is the rational type.
	Rat
	// Real is the real number type.
	Real
	// List is the list type constructor.
	List
	// Vector is the fixed-length vector type constructor.
	Vector
	// Tensor is the tensor type constructor.
	Tensor
	// Index is the bounded index type constructor.
	Index
	// Type is the type of types.
	Type
	// Map applies a function to every element of a container.
	Map
	// Fold reduces a container with a binary function.
	Fold
	// Dfold is the dependent fold over a container.
	Dfold
	// ZipWith combines two vectors pointwise.
	ZipWith
	// Indices yields the vector of indices below a bound.
	Indices
	// FromNat coerces a natural literal into another numeric type.
	FromNat
	// FromInt coerces an integer literal into another numeric type.
	FromInt
)

func (p BuiltinKind) String() string {
	switch p {
	case Unit:
		return "Unit"
	case Bool:
		return "Bool"
	case Nat:
		return "Nat"
	case Int:
		return "Int"
	case Rat:
		return "Rat"
	case Real:
		return "Real"
	case List:
		return "List"
	case Vector:
		return "Vector"
	case Tensor:
		return "Tensor"
	case Index:
		return "Index"
	case Type:
		return "Type"
	case Map:
		return "map"
	case Fold:
		return "fold"
	case Dfold:
		return "dfold"
	case ZipWith:
		return "zipWith"
	case Indices:
		return "indices"
	case FromNat:
		return "fromNat"
	case FromInt:
		return "fromInt"
	}
	//
	return "??"
}

// Builtin is a primitive type name or higher-order primitive appearing in
// expression position.
type Builtin struct {
	Kind BuiltinKind
}

func (p *Ann) isNode()      {}
func (p *ForallT) isNode()  {}
func (p *Let) isNode()      {}
func (p *Lam) isNode()      {}
func (p *Fun) isNode()      {}
func (p *Pi) isNode()       {}
func (p *App) isNode()      {}
func (p *Var) isNode()      {}
func (p *Hole) isNode()     {}
func (p *BoolLit) isNode()  {}
func (p *NatLit) isNode()   {}
func (p *RatLit) isNode()   {}
func (p *Forall) isNode()   {}
func (p *Exists) isNode()   {}
func (p *Foreach) isNode()  {}
func (p *ForallIn) isNode() {}
func (p *ExistsIn) isNode() {}
func (p *If) isNode()       {}
func (p *Impl) isNode()     {}
func (p *Or) isNode()       {}
func (p *And) isNode()      {}
func (p *Not) isNode()      {}
func (p *Cmp) isNode()      {}
func (p *Add) isNode()      {}
func (p *Sub) isNode()      {}
func (p *Mul) isNode()      {}
func (p *Div) isNode()      {}
func (p *Neg) isNode()      {}
func (p *Nil) isNode()      {}
func (p *Cons) isNode()     {}
func (p *VecCons) isNode()  {}
func (p *VecLit) isNode()   {}
func (p *At) isNode()       {}
func (p *Builtin) isNode()  {}

func (p *Ann) isExpr()      {}
func (p *ForallT) isExpr()  {}
func (p *Let) isExpr()      {}
func (p *Lam) isExpr()      {}
func (p *Fun) isExpr()      {}
func (p *Pi) isExpr()       {}
func (p *App) isExpr()      {}
func (p *Var) isExpr()      {}
func (p *Hole) isExpr()     {}
func (p *BoolLit) isExpr()  {}
func (p *NatLit) isExpr()   {}
func (p *RatLit) isExpr()   {}
func (p *Forall) isExpr()   {}
func (p *Exists) isExpr()   {}
func (p *Foreach) isExpr()  {}
func (p *ForallIn) isExpr() {}
func (p *ExistsIn) isExpr() {}
func (p *If) isExpr()       {}
func (p *Impl) isExpr()     {}
func (p *Or) isExpr()       {}
func (p *And) isExpr()      {}
func (p *Not) isExpr()      {}
func (p *Cmp) isExpr()      {}
func (p *Add) isExpr()      {}
func (p *Sub) isExpr()      {}
func (p *Mul) isExpr()      {}
func (p *Div) isExpr()      {}
func (p *Neg) isExpr()      {}
func (p *Nil) isExpr()      {}
func (p *Cons) isExpr()     {}
func (p *VecCons) isExpr()  {}
func (p *VecLit) isExpr()   {}
func (p *At) isExpr()       {}
func (p *Builtin) isExpr()  {}
