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
	"slices"

	"github.com/vcl-lang/go-vcl/pkg/util/source"
	"github.com/vcl-lang/go-vcl/pkg/util/source/lex"
	"github.com/vcl-lang/go-vcl/pkg/vcl/ast"
)

// SourceFile captures a source file which has been successfully parsed.  The
// source map relates every node of the program back to the span of original
// text it was parsed from.
type SourceFile struct {
	Program ast.Program
	// Mapping of AST nodes back to the source file.
	SourceMap *source.Map[ast.Node]
}

// Parse accepts a given source file representing one specification, and parses
// it into a program.  The pipeline is lexing, layout assembly, then
// declaration parsing; it fails fast with the first error arising.
func Parse(srcfile *source.File) (SourceFile, []source.SyntaxError) {
	parser := NewParser(srcfile)
	//
	return parser.Parse()
}

// ANNOTATIONS captures the set of annotation tokens.
var ANNOTATIONS = []uint{AT_NETWORK, AT_DATASET, AT_PARAMETER, AT_PROPERTY, AT_POSTULATE, AT_NOINLINE}

// BINDER_START captures the tokens which can begin a binder.
var BINDER_START = []uint{IDENTIFIER, AT_ZERO, LBRACE, LCURLY, DOUBLE_LCURLY}

// ============================================================================
// Parser
// ============================================================================

// Parser is a parser for the surface syntax of specification files.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Source mapping
	srcmap *source.Map[ast.Node]
	// Position within the tokens
	index int
}

// NewParser constructs a new parser for a given source file.
func NewParser(srcfile *source.File) *Parser {
	// Construct (initially empty) source mapping
	srcmap := source.NewSourceMap[ast.Node](*srcfile)
	//
	return &Parser{srcfile, nil, srcmap, 0}
}

// Parse the given source file into a program, or some number of syntax
// errors.
func (p *Parser) Parse() (SourceFile, []source.SyntaxError) {
	var (
		item   SourceFile
		errors []source.SyntaxError
		decl   ast.Decl
	)
	// Convert source file into tokens
	if p.tokens, errors = Lex(p.srcfile); len(errors) > 0 {
		return item, errors
	}
	// Make declaration boundaries explicit
	if p.tokens, errors = assembleLayout(p.srcfile, p.tokens); len(errors) > 0 {
		return item, errors
	}
	// Continue going until all consumed
	for p.lookahead().Kind != END_OF {
		if decl, errors = p.parseDeclaration(); len(errors) > 0 {
			return item, errors
		}
		//
		item.Program.Decls = append(item.Program.Decls, decl)
		// Declarations are separated by (synthetic) semicolons.
		if !p.match(SEMICOLON) && p.lookahead().Kind != END_OF {
			return item, p.syntaxErrors(p.lookahead(), "unexpected token after declaration")
		}
	}
	//
	item.SourceMap = p.srcmap
	//
	return item, nil
}

// ============================================================================
// Declarations
// ============================================================================

func (p *Parser) parseDeclaration() (ast.Decl, []source.SyntaxError) {
	lookahead := p.lookahead()
	//
	switch {
	case p.follows(ANNOTATIONS...):
		return p.parseAnnotation()
	case lookahead.Kind == KEYWORD_TYPE:
		return p.parseTypeSynonym()
	case lookahead.Kind == IDENTIFIER:
		return p.parseNamedDeclaration()
	}
	//
	return nil, p.syntaxErrors(lookahead, "unknown declaration")
}

func (p *Parser) parseAnnotation() (ast.Decl, []source.SyntaxError) {
	var (
		start = p.index
		token = p.lookahead()
		kind  ast.AnnotationKind
	)
	//
	switch token.Kind {
	case AT_NETWORK:
		kind = ast.Network
	case AT_DATASET:
		kind = ast.Dataset
	case AT_PARAMETER:
		kind = ast.Parameter
	case AT_PROPERTY:
		kind = ast.Property
	case AT_POSTULATE:
		kind = ast.Postulate
	case AT_NOINLINE:
		kind = ast.Noinline
	}
	//
	p.match(token.Kind)
	// Parse optional option list
	options, errs := p.parseAnnotationOptions()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	annotation := &ast.Annotation{Kind: kind, Options: options}
	p.record(annotation, start)
	//
	return annotation, nil
}

// Parse a parenthesised, comma-separated list of "name = Boolean" options.
// Duplicate option names are permitted here; they are a semantic concern.
func (p *Parser) parseAnnotationOptions() ([]ast.Option, []source.SyntaxError) {
	var (
		options []ast.Option
		errs    []source.SyntaxError
	)
	// Option list is optional in its entirety.
	if !p.match(LBRACE) {
		return nil, nil
	}
	// Parse entries until end brace
	for p.lookahead().Kind != RBRACE {
		var (
			name  string
			value bool
		)
		// look for ","
		if len(options) > 0 {
			if _, errs = p.expect(COMMA, "expected ',' between annotation options"); len(errs) > 0 {
				return nil, errs
			}
		}
		//
		if name, errs = p.parseIdentifier(); len(errs) > 0 {
			return nil, errs
		} else if _, errs = p.expect(EQUALS, "expected '=' after option name"); len(errs) > 0 {
			return nil, errs
		}
		// Option values are Boolean literals only.
		switch {
		case p.match(TRUE):
			value = true
		case p.match(FALSE):
			value = false
		default:
			return nil, p.syntaxErrors(p.lookahead(), "expected Boolean option value")
		}
		//
		options = append(options, ast.Option{Name: name, Value: value})
	}
	// Advance past ")"
	p.match(RBRACE)
	//
	return options, nil
}

func (p *Parser) parseTypeSynonym() (ast.Decl, []source.SyntaxError) {
	var (
		start   = p.index
		name    string
		binders []ast.Binder
		body    ast.Expr
		errs    []source.SyntaxError
	)
	//
	if _, errs = p.expect(KEYWORD_TYPE, "expected 'type'"); len(errs) > 0 {
		return nil, errs
	} else if name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if binders, errs = p.parseBinderList(false); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(EQUALS, "expected '=' after type synonym name"); len(errs) > 0 {
		return nil, errs
	} else if body, errs = p.parseExpr(); len(errs) > 0 {
		return nil, errs
	}
	//
	synonym := &ast.TypeSynonym{Synonym: name, Binders: binders, Body: body}
	p.record(synonym, start)
	//
	return synonym, nil
}

// Parse either a type signature "n : T" or a definition "n bs = e", which are
// distinguished by the token following the name and the optional binder list.
func (p *Parser) parseNamedDeclaration() (ast.Decl, []source.SyntaxError) {
	var (
		start   = p.index
		name    string
		binders []ast.Binder
		errs    []source.SyntaxError
	)
	//
	if name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	}
	// A signature is signalled by an immediate ':'.
	if p.match(COLON) {
		declared, errs := p.parseExpr()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		signature := &ast.TypeSignature{Declared: name, Type: declared}
		p.record(signature, start)
		//
		return signature, nil
	}
	// Otherwise this is a definition with an optional binder list.
	if binders, errs = p.parseBinderList(false); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(EQUALS, "expected ':' or '=' after declaration name"); len(errs) > 0 {
		return nil, errs
	}
	//
	body, errs := p.parseExpr()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	definition := &ast.Definition{Defined: name, Binders: binders, Body: body}
	p.record(definition, start)
	//
	return definition, nil
}

// ============================================================================
// Binders & arguments
// ============================================================================

// Parse zero or more binders (or one or more when atLeastOne is set).  A
// binder is either a bare (possibly @0-marked) name, or a bracketed group
// whose bracket style fixes its visibility.  The type clause is optional
// here; full binder positions requiring one are enforced by parseBinderGroup.
func (p *Parser) parseBinderList(atLeastOne bool) ([]ast.Binder, []source.SyntaxError) {
	var binders []ast.Binder
	//
	for p.follows(BINDER_START...) {
		binder, errs := p.parseBinder()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		binders = append(binders, binder)
	}
	//
	if atLeastOne && len(binders) == 0 {
		return nil, p.syntaxErrors(p.lookahead(), "expected binder")
	}
	//
	return binders, nil
}

func (p *Parser) parseBinder() (ast.Binder, []source.SyntaxError) {
	var empty ast.Binder
	//
	switch p.lookahead().Kind {
	case LBRACE:
		return p.parseBinderGroup(LBRACE, RBRACE, ast.Explicit, true)
	case LCURLY:
		return p.parseBinderGroup(LCURLY, RCURLY, ast.Implicit, true)
	case DOUBLE_LCURLY:
		return p.parseBinderGroup(DOUBLE_LCURLY, DOUBLE_RCURLY, ast.Instance, true)
	case AT_ZERO, IDENTIFIER:
		modality := p.parseModality()
		//
		name, errs := p.parseIdentifier()
		if len(errs) > 0 {
			return empty, errs
		}
		// Bare binders are explicit and untyped.
		return ast.Binder{Visibility: ast.Explicit, Modality: modality, Name: name}, nil
	}
	//
	return empty, p.syntaxErrors(p.lookahead(), "expected binder")
}

// Parse one bracketed binder group.  All three bracket styles share this
// single path, parameterised by their delimiters and resulting visibility.
// When optionalType is false the ": Type" clause is mandatory ("full" binder
// positions); otherwise it may be omitted ("name-only" positions).
func (p *Parser) parseBinderGroup(open uint, close uint, visibility ast.Visibility,
	optionalType bool) (ast.Binder, []source.SyntaxError) {
	//
	var (
		empty    ast.Binder
		datatype ast.Expr
		errs     []source.SyntaxError
	)
	//
	if _, errs = p.expect(open, "expected binder"); len(errs) > 0 {
		return empty, errs
	}
	//
	modality := p.parseModality()
	//
	name, errs := p.parseIdentifier()
	if len(errs) > 0 {
		return empty, errs
	}
	// Parse type clause
	if p.match(COLON) {
		if datatype, errs = p.parseExpr(); len(errs) > 0 {
			return empty, errs
		}
	} else if !optionalType {
		return empty, p.syntaxErrors(p.lookahead(), "expected ':' in binder")
	}
	//
	if _, errs = p.expect(close, "unterminated binder"); len(errs) > 0 {
		return empty, errs
	}
	//
	return ast.Binder{Visibility: visibility, Modality: modality, Name: name, Type: datatype}, nil
}

// Parse an optional irrelevance modality.
func (p *Parser) parseModality() ast.Modality {
	if p.match(AT_ZERO) {
		return ast.Irrelevant
	}
	//
	return ast.Relevant
}

// ============================================================================
// Helpers
// ============================================================================

func (p *Parser) parseIdentifier() (string, []source.SyntaxError) {
	tok, errs := p.expect(IDENTIFIER, "expected identifier")
	//
	if len(errs) > 0 {
		return "", errs
	}
	//
	return p.string(tok), nil
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

// Get the natural number representing the given token.
func (p *Parser) natural(token lex.Token) *big.Int {
	var number big.Int
	//
	number.SetString(p.string(token), 10)
	//
	return &number
}

// Get the rational number representing the given token.
func (p *Parser) rational(token lex.Token) *big.Rat {
	var number big.Rat
	//
	number.SetString(p.string(token))
	//
	return &number
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

// Expect returns an error if the next token is not what was expected.
func (p *Parser) expect(kind uint, msg string) (lex.Token, []source.SyntaxError) {
	lookahead := p.lookahead()
	//
	if lookahead.Kind != kind {
		return lookahead, p.syntaxErrors(lookahead, msg)
	}
	//
	p.index++
	//
	return lookahead, nil
}

// Match attempts to match the given token.
func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Record a source mapping for a node spanning all tokens from the given start
// index up to (exclusive) the current position.  Nodes which simply passed
// through a parse level unchanged are already mapped and left alone.
func (p *Parser) record(node ast.Node, start int) {
	if !p.srcmap.Has(node) {
		p.srcmap.Put(node, p.spanOf(start, max(start, p.index-1)))
	}
}

func (p *Parser) spanOf(firstToken, lastToken int) source.Span {
	//
	start := p.tokens[firstToken].Span.Start()
	end := p.tokens[lastToken].Span.End()
	//
	return source.NewSpan(start, end)
}

func (p *Parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(source.ParseError, token.Span, msg)}
}
