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
	"github.com/vcl-lang/go-vcl/pkg/vcl/ast"
)

// Expressions are parsed by a ladder of fifteen parse functions, one per
// binding-power level (1 loosest, 15 tightest).  Each function handles the
// constructs anchored at exactly its own level and otherwise falls through to
// the next tighter level, so any tighter expression coerces into a looser
// position for free.  Binary operators recurse at their own level on the
// right operand and at the next tighter level on the left, which makes every
// chain right-associative by construction.  Binding constructs (forallT, let,
// lambda, the quantifiers) parse maximal bodies at their own level.
//
// The ladder is:
//
//	 1: ascription, forallT, let, lambda     2: (dependent) function types
//	 3: quantifiers, conditionals            4: implication
//	 5: disjunction                          6: conjunction
//	 7: (in)equality                         8: ordering comparisons
//	 9: cons                                10: additive
//	11: multiplicative                      12: prefix negation / not
//	13: application                         14: indexing
//	15: atoms

// ATOM_START captures the tokens which can begin an atom (level 15).  These
// are also precisely the tokens which can begin an explicit argument.
var ATOM_START = []uint{
	TRUE, FALSE, NATURAL, RATIONAL, IDENTIFIER, HOLE, KEYWORD_NIL,
	BUILTIN_MAP, BUILTIN_FOLD, BUILTIN_DFOLD, BUILTIN_ZIPWITH, BUILTIN_INDICES,
	BUILTIN_FROMNAT, BUILTIN_FROMINT,
	TYPE_UNIT, TYPE_BOOL, TYPE_NAT, TYPE_INT, TYPE_RAT, TYPE_REAL, TYPE_LIST,
	TYPE_VECTOR, TYPE_TENSOR, TYPE_INDEX, TYPE_TYPE,
	HAS_EQ, HAS_NOT_EQ, HAS_LEQ, HAS_ADD, HAS_SUB, HAS_MUL, HAS_MAP, HAS_FOLD,
	LSQUARE, LBRACE,
}

// Mapping of builtin token kinds to their AST counterpart.
var builtinKinds = map[uint]ast.BuiltinKind{
	TYPE_UNIT:       ast.Unit,
	TYPE_BOOL:       ast.Bool,
	TYPE_NAT:        ast.Nat,
	TYPE_INT:        ast.Int,
	TYPE_RAT:        ast.Rat,
	TYPE_REAL:       ast.Real,
	TYPE_LIST:       ast.List,
	TYPE_VECTOR:     ast.Vector,
	TYPE_TENSOR:     ast.Tensor,
	TYPE_INDEX:      ast.Index,
	TYPE_TYPE:       ast.Type,
	BUILTIN_MAP:     ast.Map,
	BUILTIN_FOLD:    ast.Fold,
	BUILTIN_DFOLD:   ast.Dfold,
	BUILTIN_ZIPWITH: ast.ZipWith,
	BUILTIN_INDICES: ast.Indices,
	BUILTIN_FROMNAT: ast.FromNat,
	BUILTIN_FROMINT: ast.FromInt,
}

// Level 1: type ascription and the outermost binding constructs.
func (p *Parser) parseExpr() (ast.Expr, []source.SyntaxError) {
	var start = p.index
	//
	switch p.lookahead().Kind {
	case KEYWORD_FORALLT:
		return p.parseForallT()
	case KEYWORD_LET:
		return p.parseLet()
	case BACKSLASH:
		return p.parseLambda()
	}
	//
	expr, errs := p.parseFunType()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	// Check for ascription
	if p.match(COLON) {
		datatype, errs := p.parseExpr()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		expr = &ast.Ann{Expr: expr, Type: datatype}
		p.record(expr, start)
	}
	//
	return expr, nil
}

func (p *Parser) parseForallT() (ast.Expr, []source.SyntaxError) {
	var (
		start   = p.index
		binders []ast.Binder
		body    ast.Expr
		errs    []source.SyntaxError
	)
	//
	if _, errs = p.expect(KEYWORD_FORALLT, "expected 'forallT'"); len(errs) > 0 {
		return nil, errs
	} else if binders, errs = p.parseBinderList(true); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(DOT, "expected '.' after binders"); len(errs) > 0 {
		return nil, errs
	} else if body, errs = p.parseExpr(); len(errs) > 0 {
		return nil, errs
	}
	//
	expr := &ast.ForallT{Binders: binders, Body: body}
	p.record(expr, start)
	//
	return expr, nil
}

func (p *Parser) parseLet() (ast.Expr, []source.SyntaxError) {
	var (
		start    = p.index
		bindings []ast.LetBinding
		errs     []source.SyntaxError
	)
	//
	if _, errs = p.expect(KEYWORD_LET, "expected 'let'"); len(errs) > 0 {
		return nil, errs
	}
	// Parse one or more bindings.  The separators are either explicit
	// semicolons or ones the layout assembler derived from indentation.
	for {
		var (
			name  string
			value ast.Expr
		)
		//
		if name, errs = p.parseIdentifier(); len(errs) > 0 {
			return nil, errs
		} else if _, errs = p.expect(EQUALS, "expected '=' in let binding"); len(errs) > 0 {
			return nil, errs
		} else if value, errs = p.parseExpr(); len(errs) > 0 {
			return nil, errs
		}
		//
		bindings = append(bindings, ast.LetBinding{Name: name, Value: value})
		//
		if !p.match(SEMICOLON) {
			break
		}
	}
	//
	if _, errs = p.expect(KEYWORD_IN, "expected 'in' after let bindings"); len(errs) > 0 {
		return nil, errs
	}
	//
	body, errs := p.parseExpr()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	expr := &ast.Let{Bindings: bindings, Body: body}
	p.record(expr, start)
	//
	return expr, nil
}

func (p *Parser) parseLambda() (ast.Expr, []source.SyntaxError) {
	var (
		start   = p.index
		binders []ast.Binder
		body    ast.Expr
		errs    []source.SyntaxError
	)
	//
	if _, errs = p.expect(BACKSLASH, "expected lambda"); len(errs) > 0 {
		return nil, errs
	} else if binders, errs = p.parseBinderList(true); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(RIGHTARROW, "expected '->' after lambda binders"); len(errs) > 0 {
		return nil, errs
	} else if body, errs = p.parseExpr(); len(errs) > 0 {
		return nil, errs
	}
	//
	expr := &ast.Lam{Binders: binders, Body: body}
	p.record(expr, start)
	//
	return expr, nil
}

// Level 2: function types, including the dependent form whose domain is a
// bracketed, typed binder group.
func (p *Parser) parseFunType() (ast.Expr, []source.SyntaxError) {
	var start = p.index
	// A binder group followed by '->' is a dependent function type; anything
	// else starting with a bracket is an ordinary expression.
	if expr, errs, ok := p.tryDependentFun(); ok {
		return expr, errs
	}
	//
	lhs, errs := p.parseQuantified()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	if p.match(RIGHTARROW) {
		rhs, errs := p.parseFunType()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		lhs = &ast.Fun{From: lhs, To: rhs}
		p.record(lhs, start)
	}
	//
	return lhs, nil
}

// Attempt to parse one or more typed binder groups followed by '->'.  Since a
// parenthesised ascription is indistinguishable from an explicit binder until
// the arrow, this resets the cursor and reports no match on failure.  Once
// the arrow has been consumed the parse is committed.
func (p *Parser) tryDependentFun() (ast.Expr, []source.SyntaxError, bool) {
	var (
		start   = p.index
		binders []ast.Binder
	)
	//
	for p.follows(LBRACE, LCURLY, DOUBLE_LCURLY) {
		var (
			binder ast.Binder
			errs   []source.SyntaxError
		)
		//
		switch p.lookahead().Kind {
		case LBRACE:
			binder, errs = p.parseBinderGroup(LBRACE, RBRACE, ast.Explicit, false)
		case LCURLY:
			binder, errs = p.parseBinderGroup(LCURLY, RCURLY, ast.Implicit, false)
		case DOUBLE_LCURLY:
			binder, errs = p.parseBinderGroup(DOUBLE_LCURLY, DOUBLE_RCURLY, ast.Instance, false)
		}
		//
		if len(errs) > 0 {
			p.index = start
			return nil, nil, false
		}
		//
		binders = append(binders, binder)
	}
	//
	if len(binders) == 0 || !p.match(RIGHTARROW) {
		p.index = start
		return nil, nil, false
	}
	//
	to, errs := p.parseFunType()
	//
	if len(errs) > 0 {
		return nil, errs, true
	}
	//
	expr := &ast.Pi{Binders: binders, To: to}
	p.record(expr, start)
	//
	return expr, nil, true
}

// Level 3: quantifiers and conditionals.
func (p *Parser) parseQuantified() (ast.Expr, []source.SyntaxError) {
	switch p.lookahead().Kind {
	case KEYWORD_FORALL, KEYWORD_EXISTS:
		return p.parseQuantifier()
	case KEYWORD_FOREACH:
		return p.parseForeach()
	case KEYWORD_IF:
		return p.parseConditional()
	}
	//
	return p.parseImplication()
}

// Parse a bounded or unbounded forall/exists.  The body extends as far right
// as a valid expression allows: it is parsed at this same level, hence spans
// implications and everything tighter.
func (p *Parser) parseQuantifier() (ast.Expr, []source.SyntaxError) {
	var (
		start   = p.index
		keyword = p.lookahead()
		domain  ast.Expr
		expr    ast.Expr
	)
	//
	p.match(keyword.Kind)
	//
	binders, errs := p.parseBinderList(true)
	//
	if len(errs) > 0 {
		return nil, errs
	}
	// Check for bounded form
	if p.match(KEYWORD_IN) {
		if len(binders) != 1 {
			return nil, p.syntaxErrors(keyword, "bounded quantifier takes exactly one binder")
		}
		//
		if domain, errs = p.parseImplication(); len(errs) > 0 {
			return nil, errs
		}
	}
	//
	if _, errs = p.expect(DOT, "expected '.' after binders"); len(errs) > 0 {
		return nil, errs
	}
	//
	body, errs := p.parseQuantified()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	switch {
	case domain != nil && keyword.Kind == KEYWORD_FORALL:
		expr = &ast.ForallIn{Binder: binders[0], Domain: domain, Body: body}
	case domain != nil:
		expr = &ast.ExistsIn{Binder: binders[0], Domain: domain, Body: body}
	case keyword.Kind == KEYWORD_FORALL:
		expr = &ast.Forall{Binders: binders, Body: body}
	default:
		expr = &ast.Exists{Binders: binders, Body: body}
	}
	//
	p.record(expr, start)
	//
	return expr, nil
}

func (p *Parser) parseForeach() (ast.Expr, []source.SyntaxError) {
	var (
		start   = p.index
		binders []ast.Binder
		body    ast.Expr
		errs    []source.SyntaxError
	)
	//
	if _, errs = p.expect(KEYWORD_FOREACH, "expected 'foreach'"); len(errs) > 0 {
		return nil, errs
	} else if binders, errs = p.parseBinderList(true); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(DOT, "expected '.' after binders"); len(errs) > 0 {
		return nil, errs
	} else if body, errs = p.parseQuantified(); len(errs) > 0 {
		return nil, errs
	}
	//
	expr := &ast.Foreach{Binders: binders, Body: body}
	p.record(expr, start)
	//
	return expr, nil
}

func (p *Parser) parseConditional() (ast.Expr, []source.SyntaxError) {
	var (
		start                     = p.index
		condition, truthy, falsey ast.Expr
		errs                      []source.SyntaxError
	)
	//
	if _, errs = p.expect(KEYWORD_IF, "expected 'if'"); len(errs) > 0 {
		return nil, errs
	} else if condition, errs = p.parseImplication(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(KEYWORD_THEN, "expected 'then'"); len(errs) > 0 {
		return nil, errs
	} else if truthy, errs = p.parseImplication(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(KEYWORD_ELSE, "expected 'else'"); len(errs) > 0 {
		return nil, errs
	} else if falsey, errs = p.parseImplication(); len(errs) > 0 {
		return nil, errs
	}
	//
	expr := &ast.If{Condition: condition, TrueBranch: truthy, FalseBranch: falsey}
	p.record(expr, start)
	//
	return expr, nil
}

// Level 4: implication.
func (p *Parser) parseImplication() (ast.Expr, []source.SyntaxError) {
	var start = p.index
	//
	lhs, errs := p.parseDisjunction()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	if p.match(IMPLIES) {
		rhs, errs := p.parseImplication()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		lhs = &ast.Impl{Lhs: lhs, Rhs: rhs}
		p.record(lhs, start)
	}
	//
	return lhs, nil
}

// Level 5: disjunction.
func (p *Parser) parseDisjunction() (ast.Expr, []source.SyntaxError) {
	var start = p.index
	//
	lhs, errs := p.parseConjunction()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	if p.match(KEYWORD_OR) {
		rhs, errs := p.parseDisjunction()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		lhs = &ast.Or{Lhs: lhs, Rhs: rhs}
		p.record(lhs, start)
	}
	//
	return lhs, nil
}

// Level 6: conjunction.
func (p *Parser) parseConjunction() (ast.Expr, []source.SyntaxError) {
	var start = p.index
	//
	lhs, errs := p.parseEquality()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	if p.match(KEYWORD_AND) {
		rhs, errs := p.parseConjunction()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		lhs = &ast.And{Lhs: lhs, Rhs: rhs}
		p.record(lhs, start)
	}
	//
	return lhs, nil
}

// Level 7: equality and inequality.
func (p *Parser) parseEquality() (ast.Expr, []source.SyntaxError) {
	var start = p.index
	//
	lhs, errs := p.parseComparison()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	if p.follows(EQUALS_EQUALS, NOT_EQUALS) {
		op := ast.EQ
		//
		if p.lookahead().Kind == NOT_EQUALS {
			op = ast.NEQ
		}
		//
		p.match(p.lookahead().Kind)
		//
		rhs, errs := p.parseEquality()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		lhs = &ast.Cmp{Op: op, Lhs: lhs, Rhs: rhs}
		p.record(lhs, start)
	}
	//
	return lhs, nil
}

// Level 8: ordering comparisons.
func (p *Parser) parseComparison() (ast.Expr, []source.SyntaxError) {
	var (
		start = p.index
		op    ast.CmpOp
	)
	//
	lhs, errs := p.parseConsExpr()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	switch p.lookahead().Kind {
	case LESS_THAN:
		op = ast.LT
	case LESS_THAN_EQUALS:
		op = ast.LTEQ
	case GREATER_THAN:
		op = ast.GT
	case GREATER_THAN_EQUALS:
		op = ast.GTEQ
	default:
		return lhs, nil
	}
	//
	p.match(p.lookahead().Kind)
	//
	rhs, errs := p.parseComparison()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	expr := &ast.Cmp{Op: op, Lhs: lhs, Rhs: rhs}
	p.record(expr, start)
	//
	return expr, nil
}

// Level 9: list and vector cons.
func (p *Parser) parseConsExpr() (ast.Expr, []source.SyntaxError) {
	var start = p.index
	//
	lhs, errs := p.parseAdditive()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	if p.follows(CONS, VECTOR_CONS) {
		vector := p.lookahead().Kind == VECTOR_CONS
		//
		p.match(p.lookahead().Kind)
		//
		rhs, errs := p.parseConsExpr()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		if vector {
			lhs = &ast.VecCons{Head: lhs, Tail: rhs}
		} else {
			lhs = &ast.Cons{Head: lhs, Tail: rhs}
		}
		//
		p.record(lhs, start)
	}
	//
	return lhs, nil
}

// Level 10: addition and subtraction.
func (p *Parser) parseAdditive() (ast.Expr, []source.SyntaxError) {
	var start = p.index
	//
	lhs, errs := p.parseMultiplicative()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	if p.follows(ADD, SUB) {
		add := p.lookahead().Kind == ADD
		//
		p.match(p.lookahead().Kind)
		//
		rhs, errs := p.parseAdditive()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		if add {
			lhs = &ast.Add{Lhs: lhs, Rhs: rhs}
		} else {
			lhs = &ast.Sub{Lhs: lhs, Rhs: rhs}
		}
		//
		p.record(lhs, start)
	}
	//
	return lhs, nil
}

// Level 11: multiplication and division.
func (p *Parser) parseMultiplicative() (ast.Expr, []source.SyntaxError) {
	var start = p.index
	//
	lhs, errs := p.parsePrefix()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	if p.follows(MUL, DIV) {
		mul := p.lookahead().Kind == MUL
		//
		p.match(p.lookahead().Kind)
		//
		rhs, errs := p.parseMultiplicative()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		if mul {
			lhs = &ast.Mul{Lhs: lhs, Rhs: rhs}
		} else {
			lhs = &ast.Div{Lhs: lhs, Rhs: rhs}
		}
		//
		p.record(lhs, start)
	}
	//
	return lhs, nil
}

// Level 12: prefix negation and logical not.
func (p *Parser) parsePrefix() (ast.Expr, []source.SyntaxError) {
	var (
		start = p.index
		expr  ast.Expr
	)
	//
	switch {
	case p.match(SUB):
		arg, errs := p.parsePrefix()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		expr = &ast.Neg{Arg: arg}
	case p.match(KEYWORD_NOT):
		arg, errs := p.parsePrefix()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		expr = &ast.Not{Arg: arg}
	default:
		return p.parseApplication()
	}
	//
	p.record(expr, start)
	//
	return expr, nil
}

// Level 13: application.  There is no operator token: an application is
// recognised by an argument directly following a level-14 expression.
// Explicit arguments are atoms; implicit and instance arguments are full
// expressions in the matching braces.
func (p *Parser) parseApplication() (ast.Expr, []source.SyntaxError) {
	var (
		start = p.index
		args  []ast.Arg
	)
	//
	fn, errs := p.parseIndexExpr()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	for {
		var arg ast.Arg
		//
		switch {
		case p.follows(ATOM_START...):
			expr, errs := p.parseAtom()
			//
			if len(errs) > 0 {
				return nil, errs
			}
			//
			arg = ast.Arg{Visibility: ast.Explicit, Expr: expr}
		case p.match(LCURLY):
			expr, errs := p.parseExpr()
			//
			if len(errs) > 0 {
				return nil, errs
			} else if _, errs = p.expect(RCURLY, "unterminated implicit argument"); len(errs) > 0 {
				return nil, errs
			}
			//
			arg = ast.Arg{Visibility: ast.Implicit, Expr: expr}
		case p.match(DOUBLE_LCURLY):
			expr, errs := p.parseExpr()
			//
			if len(errs) > 0 {
				return nil, errs
			} else if _, errs = p.expect(DOUBLE_RCURLY, "unterminated instance argument"); len(errs) > 0 {
				return nil, errs
			}
			//
			arg = ast.Arg{Visibility: ast.Instance, Expr: expr}
		default:
			// No further arguments.
			if len(args) == 0 {
				return fn, nil
			}
			//
			expr := &ast.App{Fn: fn, Args: args}
			p.record(expr, start)
			//
			return expr, nil
		}
		//
		args = append(args, arg)
	}
}

// Level 14: vector indexing.
func (p *Parser) parseIndexExpr() (ast.Expr, []source.SyntaxError) {
	var start = p.index
	//
	lhs, errs := p.parseAtom()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	for p.match(BANG) {
		rhs, errs := p.parseAtom()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		lhs = &ast.At{Vector: lhs, Index: rhs}
		p.record(lhs, start)
	}
	//
	return lhs, nil
}

// Level 15: atoms.
func (p *Parser) parseAtom() (ast.Expr, []source.SyntaxError) {
	var (
		start     = p.index
		lookahead = p.lookahead()
		expr      ast.Expr
	)
	//
	switch lookahead.Kind {
	case TRUE:
		expr = &ast.BoolLit{Value: true}
	case FALSE:
		expr = &ast.BoolLit{Value: false}
	case NATURAL:
		expr = &ast.NatLit{Value: p.natural(lookahead)}
	case RATIONAL:
		expr = &ast.RatLit{Value: p.rational(lookahead)}
	case IDENTIFIER:
		expr = &ast.Var{Name: p.string(lookahead)}
	case HAS_EQ, HAS_NOT_EQ, HAS_LEQ, HAS_ADD, HAS_SUB, HAS_MUL, HAS_MAP, HAS_FOLD:
		// Type-class tokens are ordinary identifiers at the syntax level.
		expr = &ast.Var{Name: p.string(lookahead)}
	case HOLE:
		expr = &ast.Hole{Name: p.string(lookahead)[1:]}
	case KEYWORD_NIL:
		expr = &ast.Nil{}
	case LSQUARE:
		return p.parseVectorLiteral()
	case LBRACE:
		return p.parseBracketedExpr()
	default:
		if kind, ok := builtinKinds[lookahead.Kind]; ok {
			expr = &ast.Builtin{Kind: kind}
			break
		}
		//
		return nil, p.syntaxErrors(lookahead, "expected expression")
	}
	//
	p.match(lookahead.Kind)
	p.record(expr, start)
	//
	return expr, nil
}

func (p *Parser) parseVectorLiteral() (ast.Expr, []source.SyntaxError) {
	var (
		start    = p.index
		elements []ast.Expr
		errs     []source.SyntaxError
	)
	//
	if _, errs = p.expect(LSQUARE, "expected '['"); len(errs) > 0 {
		return nil, errs
	}
	// Parse entries until end bracket
	for p.lookahead().Kind != RSQUARE {
		var element ast.Expr
		// look for ","
		if len(elements) > 0 {
			if _, errs = p.expect(COMMA, "expected ',' between vector elements"); len(errs) > 0 {
				return nil, errs
			}
		}
		//
		if element, errs = p.parseExpr(); len(errs) > 0 {
			return nil, errs
		}
		//
		elements = append(elements, element)
	}
	// Advance past "]"
	p.match(RSQUARE)
	//
	expr := &ast.VecLit{Elements: elements}
	p.record(expr, start)
	//
	return expr, nil
}

// A parenthesised expression restores level 1, and contributes no node of its
// own (hence no additional source mapping).
func (p *Parser) parseBracketedExpr() (ast.Expr, []source.SyntaxError) {
	p.match(LBRACE)
	//
	expr, errs := p.parseExpr()
	//
	if len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(RBRACE, "expected ')'"); len(errs) > 0 {
		return nil, errs
	}
	//
	return expr, nil
}
