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

// Node is implemented by every element of the abstract syntax tree.  Nodes are
// always manipulated by pointer, hence they can be used as source-map keys to
// recover the span of original text they were parsed from.
type Node interface {
	isNode()
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	isExpr()
}

// Decl is implemented by every top-level declaration node.
type Decl interface {
	Node
	// Name returns the name this declaration introduces, or "" for
	// annotations (which name nothing themselves).
	Name() string
}

// Program is an ordered sequence of declarations.  Order is semantically
// significant, since declarations may reference earlier ones.
type Program struct {
	Decls []Decl
}
