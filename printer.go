// printer.go — value stringification and the canonical source formatter.
//
// Two printers live here:
//
//   - Stringify renders runtime values the way `print` shows them.
//   - FormatProgram / FormatExpr render an AST back to Lox source. The output
//     re-parses to a program with identical evaluation semantics; composite
//     subexpressions are parenthesized so the printed text cannot re-associate
//     under the grammar. Desugared `for` loops print as their while form.
package lox

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

/* ---------- value stringification ---------- */

// Stringify converts a runtime value to its print representation: "nil",
// "true"/"false", numbers without a trailing ".0" when integral, strings
// verbatim, functions as "<fn NAME>" and natives as "<native fn>".
func Stringify(v Value) string {
	switch v.Tag {
	case VTNil:
		return "nil"
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTNum:
		return stringifyNumber(v.Data.(float64))
	case VTStr:
		return v.Data.(string)
	case VTCallable:
		if s, ok := v.Data.(fmt.Stringer); ok {
			return s.String()
		}
		return "<native fn>"
	default:
		return "<unknown>"
	}
}

// stringifyNumber prints the shortest round-trip decimal, suppressing the
// fractional part for mathematically integral values in the normal printing
// range. Non-finite values print as inf/-inf/nan.
func stringifyNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == math.Trunc(f) && math.Abs(f) < 1e15:
		return strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

/* ---------- small writer with indentation ---------- */

type srcOut struct {
	b     strings.Builder
	depth int
}

func (o *srcOut) line(s string) {
	o.b.WriteString(strings.Repeat("    ", o.depth))
	o.b.WriteString(s)
	o.b.WriteByte('\n')
}

/* ---------- source formatting ---------- */

// FormatProgram renders statements as canonical Lox source.
func FormatProgram(statements []Stmt) string {
	o := &srcOut{}
	for _, s := range statements {
		formatStmt(o, s)
	}
	return o.b.String()
}

// FormatExpr renders a single expression as Lox source.
func FormatExpr(e Expr) string { return exprString(e) }

func formatStmt(o *srcOut, stmt Stmt) {
	switch s := stmt.(type) {
	case ExpressionStmt:
		o.line(exprString(s.Expr) + ";")

	case PrintStmt:
		o.line("print " + exprString(s.Expr) + ";")

	case VarStmt:
		if s.Initializer == nil {
			o.line("var " + s.Name.Lexeme + ";")
		} else {
			o.line("var " + s.Name.Lexeme + " = " + exprString(s.Initializer) + ";")
		}

	case BlockStmt:
		o.line("{")
		o.depth++
		for _, inner := range s.Statements {
			formatStmt(o, inner)
		}
		o.depth--
		o.line("}")

	case IfStmt:
		o.line("if (" + exprString(s.Cond) + ")")
		formatNested(o, s.Then)
		if s.Else != nil {
			o.line("else")
			formatNested(o, s.Else)
		}

	case WhileStmt:
		o.line("while (" + exprString(s.Cond) + ")")
		formatNested(o, s.Body)

	case FunctionStmt:
		params := make([]string, len(s.Params))
		for i, p := range s.Params {
			params[i] = p.Lexeme
		}
		o.line("fun " + s.Name.Lexeme + "(" + strings.Join(params, ", ") + ") {")
		o.depth++
		for _, inner := range s.Body {
			formatStmt(o, inner)
		}
		o.depth--
		o.line("}")

	case ReturnStmt:
		if s.Value == nil {
			o.line("return;")
		} else {
			o.line("return " + exprString(s.Value) + ";")
		}

	default:
		panic(fmt.Sprintf("lox: unknown statement node %T", stmt))
	}
}

// formatNested prints a control-flow body. Blocks already carry braces; any
// other single statement is indented one level.
func formatNested(o *srcOut, s Stmt) {
	if _, ok := s.(BlockStmt); ok {
		formatStmt(o, s)
		return
	}
	o.depth++
	formatStmt(o, s)
	o.depth--
}

func exprString(e Expr) string {
	switch x := e.(type) {
	case LiteralExpr:
		return literalSource(x.Value)
	case VariableExpr:
		return x.Name.Lexeme
	case AssignExpr:
		return x.Name.Lexeme + " = " + sub(x.Value)
	case UnaryExpr:
		return x.Op.Lexeme + sub(x.Right)
	case BinaryExpr:
		return sub(x.Left) + " " + x.Op.Lexeme + " " + sub(x.Right)
	case LogicalExpr:
		return sub(x.Left) + " " + x.Op.Lexeme + " " + sub(x.Right)
	case GroupingExpr:
		return "(" + exprString(x.Inner) + ")"
	case CallExpr:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = exprString(a)
		}
		return sub(x.Callee) + "(" + strings.Join(args, ", ") + ")"
	default:
		panic(fmt.Sprintf("lox: unknown expression node %T", e))
	}
}

// sub parenthesizes composite subexpressions so the printed text keeps the
// tree's shape under re-parsing. Atoms print bare.
func sub(e Expr) string {
	switch e.(type) {
	case LiteralExpr, VariableExpr, GroupingExpr, CallExpr:
		return exprString(e)
	default:
		return "(" + exprString(e) + ")"
	}
}

// literalSource renders a literal as scannable source text. Number literals
// print in plain decimal ('f' form) because the scanner accepts no exponent
// syntax; string literals carry no escapes in Lox, so quoting is verbatim.
func literalSource(v Value) string {
	switch v.Tag {
	case VTNil:
		return "nil"
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTNum:
		return strconv.FormatFloat(v.Data.(float64), 'f', -1, 64)
	case VTStr:
		return `"` + v.Data.(string) + `"`
	default:
		panic(fmt.Sprintf("lox: literal cannot carry %v", v.Tag))
	}
}
