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
	"fmt"
	"math/big"
	"strings"

	"github.com/vcl-lang/go-vcl/pkg/vcl/ast"
)

// PrintProgram renders a program in canonical form, one declaration per line.
// Every compound expression is parenthesised, so the output reparses to the
// same tree regardless of operator levels, and every rational literal prints
// as an exact decimal.
func PrintProgram(program ast.Program) string {
	var builder strings.Builder
	//
	for _, decl := range program.Decls {
		builder.WriteString(PrintDecl(decl))
		builder.WriteString("\n")
	}
	//
	return builder.String()
}

// PrintDecl renders a single declaration in canonical form.
func PrintDecl(decl ast.Decl) string {
	switch d := decl.(type) {
	case *ast.Annotation:
		return printAnnotation(d)
	case *ast.TypeSynonym:
		return fmt.Sprintf("type %s%s = %s", d.Synonym, printBinders(d.Binders), PrintExpr(d.Body))
	case *ast.TypeSignature:
		return fmt.Sprintf("%s : %s", d.Declared, PrintExpr(d.Type))
	case *ast.Definition:
		return fmt.Sprintf("%s%s = %s", d.Defined, printBinders(d.Binders), PrintExpr(d.Body))
	}
	//
	panic("unknown declaration")
}

func printAnnotation(annotation *ast.Annotation) string {
	var builder strings.Builder
	//
	builder.WriteString(annotation.Kind.String())
	//
	if len(annotation.Options) > 0 {
		builder.WriteString("(")
		//
		for i, option := range annotation.Options {
			if i != 0 {
				builder.WriteString(", ")
			}
			//
			if option.Value {
				fmt.Fprintf(&builder, "%s = True", option.Name)
			} else {
				fmt.Fprintf(&builder, "%s = False", option.Name)
			}
		}
		//
		builder.WriteString(")")
	}
	//
	return builder.String()
}

// PrintExpr renders an expression in canonical (fully parenthesised) form.
func PrintExpr(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ann:
		return fmt.Sprintf("(%s : %s)", PrintExpr(e.Expr), PrintExpr(e.Type))
	case *ast.ForallT:
		return fmt.Sprintf("(forallT%s . %s)", printBinders(e.Binders), PrintExpr(e.Body))
	case *ast.Let:
		return printLet(e)
	case *ast.Lam:
		return fmt.Sprintf("(\\%s -> %s)", strings.TrimPrefix(printBinders(e.Binders), " "), PrintExpr(e.Body))
	case *ast.Fun:
		return fmt.Sprintf("(%s -> %s)", PrintExpr(e.From), PrintExpr(e.To))
	case *ast.Pi:
		return fmt.Sprintf("(%s -> %s)", strings.TrimPrefix(printBinders(e.Binders), " "), PrintExpr(e.To))
	case *ast.App:
		return printApp(e)
	case *ast.Var:
		return e.Name
	case *ast.Hole:
		return "?" + e.Name
	case *ast.BoolLit:
		if e.Value {
			return "True"
		}
		//
		return "False"
	case *ast.NatLit:
		return e.Value.String()
	case *ast.RatLit:
		return printRational(e.Value)
	case *ast.Forall:
		return fmt.Sprintf("(forall%s . %s)", printBinders(e.Binders), PrintExpr(e.Body))
	case *ast.Exists:
		return fmt.Sprintf("(exists%s . %s)", printBinders(e.Binders), PrintExpr(e.Body))
	case *ast.Foreach:
		return fmt.Sprintf("(foreach%s . %s)", printBinders(e.Binders), PrintExpr(e.Body))
	case *ast.ForallIn:
		return fmt.Sprintf("(forall %s in %s . %s)", printBinder(e.Binder), PrintExpr(e.Domain), PrintExpr(e.Body))
	case *ast.ExistsIn:
		return fmt.Sprintf("(exists %s in %s . %s)", printBinder(e.Binder), PrintExpr(e.Domain), PrintExpr(e.Body))
	case *ast.If:
		return fmt.Sprintf("(if %s then %s else %s)",
			PrintExpr(e.Condition), PrintExpr(e.TrueBranch), PrintExpr(e.FalseBranch))
	case *ast.Impl:
		return fmt.Sprintf("(%s => %s)", PrintExpr(e.Lhs), PrintExpr(e.Rhs))
	case *ast.Or:
		return fmt.Sprintf("(%s or %s)", PrintExpr(e.Lhs), PrintExpr(e.Rhs))
	case *ast.And:
		return fmt.Sprintf("(%s and %s)", PrintExpr(e.Lhs), PrintExpr(e.Rhs))
	case *ast.Not:
		return fmt.Sprintf("(not %s)", PrintExpr(e.Arg))
	case *ast.Cmp:
		return fmt.Sprintf("(%s %s %s)", PrintExpr(e.Lhs), e.Op, PrintExpr(e.Rhs))
	case *ast.Add:
		return fmt.Sprintf("(%s + %s)", PrintExpr(e.Lhs), PrintExpr(e.Rhs))
	case *ast.Sub:
		return fmt.Sprintf("(%s - %s)", PrintExpr(e.Lhs), PrintExpr(e.Rhs))
	case *ast.Mul:
		return fmt.Sprintf("(%s * %s)", PrintExpr(e.Lhs), PrintExpr(e.Rhs))
	case *ast.Div:
		return fmt.Sprintf("(%s / %s)", PrintExpr(e.Lhs), PrintExpr(e.Rhs))
	case *ast.Neg:
		return fmt.Sprintf("(- %s)", PrintExpr(e.Arg))
	case *ast.Nil:
		return "nil"
	case *ast.Cons:
		return fmt.Sprintf("(%s :: %s)", PrintExpr(e.Head), PrintExpr(e.Tail))
	case *ast.VecCons:
		return fmt.Sprintf("(%s ::v %s)", PrintExpr(e.Head), PrintExpr(e.Tail))
	case *ast.VecLit:
		return printVecLit(e)
	case *ast.At:
		return fmt.Sprintf("(%s ! %s)", PrintExpr(e.Vector), PrintExpr(e.Index))
	case *ast.Builtin:
		return e.Kind.String()
	}
	//
	panic("unknown expression")
}

func printLet(let *ast.Let) string {
	var builder strings.Builder
	//
	builder.WriteString("(let ")
	//
	for i, binding := range let.Bindings {
		if i != 0 {
			builder.WriteString("; ")
		}
		//
		fmt.Fprintf(&builder, "%s = %s", binding.Name, PrintExpr(binding.Value))
	}
	//
	fmt.Fprintf(&builder, " in %s)", PrintExpr(let.Body))
	//
	return builder.String()
}

func printApp(app *ast.App) string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	builder.WriteString(PrintExpr(app.Fn))
	//
	for _, arg := range app.Args {
		switch arg.Visibility {
		case ast.Implicit:
			fmt.Fprintf(&builder, " {%s}", PrintExpr(arg.Expr))
		case ast.Instance:
			fmt.Fprintf(&builder, " {{%s}}", PrintExpr(arg.Expr))
		default:
			fmt.Fprintf(&builder, " %s", PrintExpr(arg.Expr))
		}
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

func printVecLit(vec *ast.VecLit) string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, element := range vec.Elements {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(PrintExpr(element))
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}

// Render a binder list as written after a declaration name or binding keyword,
// with a leading space before every binder (hence the empty string for an
// empty list).
func printBinders(binders []ast.Binder) string {
	var builder strings.Builder
	//
	for _, binder := range binders {
		builder.WriteString(" ")
		builder.WriteString(printBinder(binder))
	}
	//
	return builder.String()
}

func printBinder(binder ast.Binder) string {
	var inner string
	//
	if binder.Modality == ast.Irrelevant {
		inner = "@0 " + binder.Name
	} else {
		inner = binder.Name
	}
	//
	if binder.Type != nil {
		inner = fmt.Sprintf("%s : %s", inner, PrintExpr(binder.Type))
	}
	//
	switch binder.Visibility {
	case ast.Implicit:
		return fmt.Sprintf("{%s}", inner)
	case ast.Instance:
		return fmt.Sprintf("{{%s}}", inner)
	default:
		if binder.Type != nil {
			return fmt.Sprintf("(%s)", inner)
		}
		// Bare explicit binder
		return inner
	}
}

// Render a rational as an exact decimal.  Every rational arising from a
// literal has a denominator of the form 2^a * 5^b, for which max(a, b)
// decimal places are exact.
func printRational(number *big.Rat) string {
	var (
		five      = big.NewInt(5)
		remainder = new(big.Int).Set(number.Denom())
		twos      = 0
		fives     = 0
	)
	//
	for remainder.Bit(0) == 0 {
		remainder.Rsh(remainder, 1)
		twos++
	}
	//
	for new(big.Int).Mod(remainder, five).Sign() == 0 {
		remainder.Div(remainder, five)
		fives++
	}
	// Other prime factors cannot arise from decimal literals; fall back to the
	// raw fraction rather than print an inexact decimal.
	if remainder.Cmp(big.NewInt(1)) != 0 {
		return number.RatString()
	}
	//
	places := max(twos, fives, 1)
	//
	return number.FloatString(places)
}
