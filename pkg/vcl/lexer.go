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
	"github.com/vcl-lang/go-vcl/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LINE_COMMENT signals "-- ... \n"
const LINE_COMMENT uint = 2

// BLOCK_COMMENT signals "{- ... -}"
const BLOCK_COMMENT uint = 3

// LBRACE signals "("
const LBRACE uint = 4

// RBRACE signals ")"
const RBRACE uint = 5

// LCURLY signals "{"
const LCURLY uint = 6

// RCURLY signals "}"
const RCURLY uint = 7

// DOUBLE_LCURLY signals "{{"
const DOUBLE_LCURLY uint = 8

// DOUBLE_RCURLY signals "}}"
const DOUBLE_RCURLY uint = 9

// LSQUARE signals "["
const LSQUARE uint = 10

// RSQUARE signals "]"
const RSQUARE uint = 11

// COMMA signals ","
const COMMA uint = 12

// SEMICOLON signals ";".  These are mostly synthetic, inserted by the layout
// assembler at declaration boundaries, but explicit semicolons are accepted.
const SEMICOLON uint = 13

// DOT signals "."
const DOT uint = 14

// COLON signals ":"
const COLON uint = 15

// EQUALS signals "="
const EQUALS uint = 16

// RIGHTARROW signals "->"
const RIGHTARROW uint = 17

// IMPLIES signals "=>"
const IMPLIES uint = 18

// BACKSLASH signals "\" (lambda abstraction)
const BACKSLASH uint = 19

// EQUALS_EQUALS signals "=="
const EQUALS_EQUALS uint = 20

// NOT_EQUALS signals "!="
const NOT_EQUALS uint = 21

// LESS_THAN_EQUALS signals "<="
const LESS_THAN_EQUALS uint = 22

// GREATER_THAN_EQUALS signals ">="
const GREATER_THAN_EQUALS uint = 23

// LESS_THAN signals "<"
const LESS_THAN uint = 24

// GREATER_THAN signals ">"
const GREATER_THAN uint = 25

// ADD signals "+"
const ADD uint = 26

// SUB signals "-"
const SUB uint = 27

// MUL signals "*"
const MUL uint = 28

// DIV signals "/"
const DIV uint = 29

// BANG signals "!" (vector indexing)
const BANG uint = 30

// CONS signals "::"
const CONS uint = 31

// VECTOR_CONS signals "::v"
const VECTOR_CONS uint = 32

// NATURAL signals a natural number literal
const NATURAL uint = 33

// RATIONAL signals a rational literal "digits.digits"
const RATIONAL uint = 34

// TRUE signals the Boolean literal "True"
const TRUE uint = 35

// FALSE signals the Boolean literal "False"
const FALSE uint = 36

// IDENTIFIER signals a general identifier
const IDENTIFIER uint = 37

// HOLE signals "?" followed by identifier characters
const HOLE uint = 38

// KEYWORD_FORALLT signals "forallT"
const KEYWORD_FORALLT uint = 40

// KEYWORD_FORALL signals "forall"
const KEYWORD_FORALL uint = 41

// KEYWORD_EXISTS signals "exists"
const KEYWORD_EXISTS uint = 42

// KEYWORD_FOREACH signals "foreach"
const KEYWORD_FOREACH uint = 43

// KEYWORD_LET signals "let"
const KEYWORD_LET uint = 44

// KEYWORD_IN signals "in"
const KEYWORD_IN uint = 45

// KEYWORD_IF signals "if"
const KEYWORD_IF uint = 46

// KEYWORD_THEN signals "then"
const KEYWORD_THEN uint = 47

// KEYWORD_ELSE signals "else"
const KEYWORD_ELSE uint = 48

// KEYWORD_NOT signals "not"
const KEYWORD_NOT uint = 49

// KEYWORD_AND signals "and"
const KEYWORD_AND uint = 50

// KEYWORD_OR signals "or"
const KEYWORD_OR uint = 51

// KEYWORD_NIL signals "nil"
const KEYWORD_NIL uint = 52

// KEYWORD_TYPE signals "type" (type synonym declarations)
const KEYWORD_TYPE uint = 53

// BUILTIN_MAP signals "map"
const BUILTIN_MAP uint = 60

// BUILTIN_FOLD signals "fold"
const BUILTIN_FOLD uint = 61

// BUILTIN_DFOLD signals "dfold"
const BUILTIN_DFOLD uint = 62

// BUILTIN_ZIPWITH signals "zipWith"
const BUILTIN_ZIPWITH uint = 63

// BUILTIN_INDICES signals "indices"
const BUILTIN_INDICES uint = 64

// BUILTIN_FROMNAT signals "fromNat"
const BUILTIN_FROMNAT uint = 65

// BUILTIN_FROMINT signals "fromInt"
const BUILTIN_FROMINT uint = 66

// TYPE_UNIT signals "Unit"
const TYPE_UNIT uint = 70

// TYPE_BOOL signals "Bool"
const TYPE_BOOL uint = 71

// TYPE_NAT signals "Nat"
const TYPE_NAT uint = 72

// TYPE_INT signals "Int"
const TYPE_INT uint = 73

// TYPE_RAT signals "Rat"
const TYPE_RAT uint = 74

// TYPE_REAL signals "Real"
const TYPE_REAL uint = 75

// TYPE_LIST signals "List"
const TYPE_LIST uint = 76

// TYPE_VECTOR signals "Vector"
const TYPE_VECTOR uint = 77

// TYPE_TENSOR signals "Tensor"
const TYPE_TENSOR uint = 78

// TYPE_INDEX signals "Index"
const TYPE_INDEX uint = 79

// TYPE_TYPE signals "Type"
const TYPE_TYPE uint = 80

// HAS_EQ signals "HasEq"
const HAS_EQ uint = 85

// HAS_NOT_EQ signals "HasNotEq"
const HAS_NOT_EQ uint = 86

// HAS_LEQ signals "HasLeq"
const HAS_LEQ uint = 87

// HAS_ADD signals "HasAdd"
const HAS_ADD uint = 88

// HAS_SUB signals "HasSub"
const HAS_SUB uint = 89

// HAS_MUL signals "HasMul"
const HAS_MUL uint = 90

// HAS_MAP signals "HasMap"
const HAS_MAP uint = 91

// HAS_FOLD signals "HasFold"
const HAS_FOLD uint = 92

// AT_NETWORK signals "@network"
const AT_NETWORK uint = 100

// AT_DATASET signals "@dataset"
const AT_DATASET uint = 101

// AT_PARAMETER signals "@parameter"
const AT_PARAMETER uint = 102

// AT_PROPERTY signals "@property"
const AT_PROPERTY uint = 103

// AT_POSTULATE signals "@postulate"
const AT_POSTULATE uint = 104

// AT_NOINLINE signals "@noinline"
const AT_NOINLINE uint = 105

// AT_ZERO signals "@0" (irrelevance modality on a binder)
const AT_ZERO uint = 106

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit(' '), lex.Unit('\t'), lex.Unit('\r'), lex.Unit('\n')))

// Line comments start with "--" and continue until a newline or EOF.
var lineComment lex.Scanner[rune] = lex.And(lex.Unit('-', '-'), lex.Until('\n'))

// Block comments are delimited by "{-" and "-}" and are not nested.  An
// unterminated block comment fails to match at all; LexAll reports it as a
// dedicated lexing error.
var blockComment lex.Scanner[rune] = lex.Enclosed("{-", "-}")

var digits lex.Scanner[rune] = lex.And(lex.Within('0', '9'), lex.Many(lex.Within('0', '9')))

// Rule for describing natural number literals
var natural lex.Scanner[rune] = digits

// Rule for describing rational literals: digits immediately followed by "."
// and more digits.
var rational lex.Scanner[rune] = lex.Sequence(digits, lex.Unit('.'), digits)

var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner[rune] = lex.And(identifierStart, identifierRest)

// Rule for describing holes: "?" followed by zero or more identifier
// characters.
var hole lex.Scanner[rune] = lex.Or(
	lex.Sequence(lex.Unit('?'), identifierRest),
	lex.Unit('?'))

// Lexing rules, in the grammar's declared order.  The lexer prefers the
// longest match with ties broken by rule order, hence every fixed spelling
// must precede the identifier fallback: "forallT" then beats "forall", both
// beat an identifier of the same length, and "forallTx" still lexes as an
// identifier because its maximal run is longer than any fixed spelling.
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lineComment, LINE_COMMENT),
	lex.Rule(blockComment, BLOCK_COMMENT),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(lex.String("True"), TRUE),
	lex.Rule(lex.String("False"), FALSE),
	lex.Rule(rational, RATIONAL),
	lex.Rule(natural, NATURAL),
	lex.Rule(lex.Unit('-', '>'), RIGHTARROW),
	lex.Rule(lex.Unit('=', '>'), IMPLIES),
	lex.Rule(lex.Unit('=', '='), EQUALS_EQUALS),
	lex.Rule(lex.Unit('!', '='), NOT_EQUALS),
	lex.Rule(lex.Unit('<', '='), LESS_THAN_EQUALS),
	lex.Rule(lex.Unit('>', '='), GREATER_THAN_EQUALS),
	lex.Rule(lex.String("::v"), VECTOR_CONS),
	lex.Rule(lex.Unit(':', ':'), CONS),
	lex.Rule(lex.Unit('<'), LESS_THAN),
	lex.Rule(lex.Unit('>'), GREATER_THAN),
	lex.Rule(lex.Unit('='), EQUALS),
	lex.Rule(lex.Unit('+'), ADD),
	lex.Rule(lex.Unit('-'), SUB),
	lex.Rule(lex.Unit('*'), MUL),
	lex.Rule(lex.Unit('/'), DIV),
	lex.Rule(lex.Unit('!'), BANG),
	lex.Rule(lex.Unit('\\'), BACKSLASH),
	lex.Rule(lex.Unit('.'), DOT),
	lex.Rule(lex.Unit(':'), COLON),
	lex.Rule(lex.Unit(';'), SEMICOLON),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('{', '{'), DOUBLE_LCURLY),
	lex.Rule(lex.Unit('}', '}'), DOUBLE_RCURLY),
	lex.Rule(lex.Unit('{'), LCURLY),
	lex.Rule(lex.Unit('}'), RCURLY),
	lex.Rule(lex.Unit('['), LSQUARE),
	lex.Rule(lex.Unit(']'), RSQUARE),
	lex.Rule(lex.String("@network"), AT_NETWORK),
	lex.Rule(lex.String("@dataset"), AT_DATASET),
	lex.Rule(lex.String("@parameter"), AT_PARAMETER),
	lex.Rule(lex.String("@property"), AT_PROPERTY),
	lex.Rule(lex.String("@postulate"), AT_POSTULATE),
	lex.Rule(lex.String("@noinline"), AT_NOINLINE),
	lex.Rule(lex.String("@0"), AT_ZERO),
	lex.Rule(lex.String("forallT"), KEYWORD_FORALLT),
	lex.Rule(lex.String("forall"), KEYWORD_FORALL),
	lex.Rule(lex.String("exists"), KEYWORD_EXISTS),
	lex.Rule(lex.String("foreach"), KEYWORD_FOREACH),
	lex.Rule(lex.String("let"), KEYWORD_LET),
	lex.Rule(lex.String("in"), KEYWORD_IN),
	lex.Rule(lex.String("if"), KEYWORD_IF),
	lex.Rule(lex.String("then"), KEYWORD_THEN),
	lex.Rule(lex.String("else"), KEYWORD_ELSE),
	lex.Rule(lex.String("not"), KEYWORD_NOT),
	lex.Rule(lex.String("and"), KEYWORD_AND),
	lex.Rule(lex.String("or"), KEYWORD_OR),
	lex.Rule(lex.String("nil"), KEYWORD_NIL),
	lex.Rule(lex.String("type"), KEYWORD_TYPE),
	lex.Rule(lex.String("map"), BUILTIN_MAP),
	lex.Rule(lex.String("dfold"), BUILTIN_DFOLD),
	lex.Rule(lex.String("fold"), BUILTIN_FOLD),
	lex.Rule(lex.String("zipWith"), BUILTIN_ZIPWITH),
	lex.Rule(lex.String("indices"), BUILTIN_INDICES),
	lex.Rule(lex.String("fromNat"), BUILTIN_FROMNAT),
	lex.Rule(lex.String("fromInt"), BUILTIN_FROMINT),
	lex.Rule(lex.String("Unit"), TYPE_UNIT),
	lex.Rule(lex.String("Bool"), TYPE_BOOL),
	lex.Rule(lex.String("Nat"), TYPE_NAT),
	lex.Rule(lex.String("Int"), TYPE_INT),
	lex.Rule(lex.String("Rat"), TYPE_RAT),
	lex.Rule(lex.String("Real"), TYPE_REAL),
	lex.Rule(lex.String("List"), TYPE_LIST),
	lex.Rule(lex.String("Vector"), TYPE_VECTOR),
	lex.Rule(lex.String("Tensor"), TYPE_TENSOR),
	lex.Rule(lex.String("Index"), TYPE_INDEX),
	lex.Rule(lex.String("Type"), TYPE_TYPE),
	lex.Rule(lex.String("HasEq"), HAS_EQ),
	lex.Rule(lex.String("HasNotEq"), HAS_NOT_EQ),
	lex.Rule(lex.String("HasLeq"), HAS_LEQ),
	lex.Rule(lex.String("HasAdd"), HAS_ADD),
	lex.Rule(lex.String("HasSub"), HAS_SUB),
	lex.Rule(lex.String("HasMul"), HAS_MUL),
	lex.Rule(lex.String("HasMap"), HAS_MAP),
	lex.Rule(lex.String("HasFold"), HAS_FOLD),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(hole, HOLE),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// LexAll converts a given source file into a sequence of tokens, retaining
// whitespace and comments.  This is the raw stream the syntax highlighter
// consumes; parsing uses Lex instead.
func LexAll(srcfile *source.File) ([]lex.Token, []source.SyntaxError) {
	var (
		lexer = lex.NewLexer(srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start := int(lexer.Index())
		end := start + int(lexer.Remaining())
		err := srcfile.SyntaxError(source.LexError, source.NewSpan(start, end), "unrecognised character sequence")
		// errors
		return nil, []source.SyntaxError{*err}
	}
	// An unterminated block comment never reaches this point, since longest
	// match falls back to lexing its opening "{-" as "{" followed by whatever
	// the "-" begins.  A "{" token is only ever emitted once the comment rule
	// has failed at its position, so "{" directly followed by "-" in the
	// input always means an unterminated comment.
	contents := srcfile.Contents()
	//
	for _, token := range tokens {
		if token.Kind == LCURLY && token.Span.End() < len(contents) && contents[token.Span.End()] == '-' {
			span := source.NewSpan(token.Span.Start(), len(contents))
			err := srcfile.SyntaxError(source.LexError, span, "unterminated block comment")
			//
			return nil, []source.SyntaxError{*err}
		}
	}
	// Done
	return tokens, nil
}

// Lex a given source file into a sequence of zero or more tokens with
// whitespace and comments removed, along with any syntax errors arising.
func Lex(srcfile *source.File) ([]lex.Token, []source.SyntaxError) {
	tokens, errors := LexAll(srcfile)
	//
	if len(errors) > 0 {
		return nil, errors
	}
	// Remove anything the parser never sees
	tokens = removeMatching(tokens, func(t lex.Token) bool {
		return t.Kind == WHITESPACE || t.Kind == LINE_COMMENT || t.Kind == BLOCK_COMMENT
	})
	// Done
	return tokens, nil
}

// Remove all matching tokens, retaining the order of those remaining.
func removeMatching(tokens []lex.Token, fn func(lex.Token) bool) []lex.Token {
	kept := make([]lex.Token, 0, len(tokens))
	//
	for _, t := range tokens {
		if !fn(t) {
			kept = append(kept, t)
		}
	}
	//
	return kept
}
