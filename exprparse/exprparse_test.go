package exprparse_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"vimlua.dev/vl/ast"
	"vimlua.dev/vl/exprparse"
)

func parse(t *testing.T, src string) *ast.Expr {
	t.Helper()
	e, err := exprparse.ParseExpr0(src)
	qt.Assert(t, qt.IsNil(err))
	return e
}

func TestParseNumberLiteral(t *testing.T) {
	e := parse(t, "42")
	qt.Assert(t, qt.Equals(e.Kind, ast.ExprNumber))
	qt.Assert(t, qt.Equals(e.IntValue, int64(42)))
}

func TestParseAdditivePrecedence(t *testing.T) {
	e := parse(t, "1 + 2 * 3")
	qt.Assert(t, qt.Equals(e.Kind, ast.ExprAdd))
	qt.Assert(t, qt.Equals(e.Children[1].Kind, ast.ExprMul))
}

func TestParseLeftAssociativity(t *testing.T) {
	e := parse(t, "1 - 2 - 3")
	qt.Assert(t, qt.Equals(e.Kind, ast.ExprSub))
	qt.Assert(t, qt.Equals(e.Children[0].Kind, ast.ExprSub))
	qt.Assert(t, qt.Equals(e.Children[1].Kind, ast.ExprNumber))
}

func TestParseUnaryRightAssociative(t *testing.T) {
	e := parse(t, "!!1")
	qt.Assert(t, qt.Equals(e.Kind, ast.ExprNot))
	qt.Assert(t, qt.Equals(e.Children[0].Kind, ast.ExprNot))
}

func TestParseTernary(t *testing.T) {
	e := parse(t, "1 ? 2 : 3")
	qt.Assert(t, qt.Equals(e.Kind, ast.ExprTernary))
	qt.Assert(t, qt.HasLen(e.Children, 3))
}

func TestParseComparisonDoesNotChain(t *testing.T) {
	e := parse(t, "1 == 2")
	qt.Assert(t, qt.Equals(e.Kind, ast.ExprCompare))
	qt.Assert(t, qt.Equals(e.CmpOp, ast.CmpEq))
	qt.Assert(t, qt.Equals(e.CaseMode, ast.CaseUseOption))

	_, err := exprparse.ParseExpr0("1 == 2 == 3")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestParseComparisonCaseSuffix(t *testing.T) {
	e := parse(t, "'a' ==? 'A'")
	qt.Assert(t, qt.Equals(e.CaseMode, ast.CaseIgnore))

	e = parse(t, "'a' ==# 'A'")
	qt.Assert(t, qt.Equals(e.CaseMode, ast.CaseMatch))
}

func TestParseIsNot(t *testing.T) {
	e := parse(t, "a isnot b")
	qt.Assert(t, qt.Equals(e.Kind, ast.ExprCompare))
	qt.Assert(t, qt.Equals(e.CmpOp, ast.CmpIsNot))
}

func TestParseIndexAndSlice(t *testing.T) {
	e := parse(t, "a[1]")
	qt.Assert(t, qt.Equals(e.Kind, ast.ExprIndex))

	e = parse(t, "a[1:2]")
	qt.Assert(t, qt.Equals(e.Kind, ast.ExprSlice))
	qt.Assert(t, qt.Equals(e.Children[1].Kind, ast.ExprNumber))
	qt.Assert(t, qt.Equals(e.Children[2].Kind, ast.ExprNumber))

	e = parse(t, "a[:2]")
	qt.Assert(t, qt.Equals(e.Children[1].Kind, ast.ExprEmptySub))

	e = parse(t, "a[1:]")
	qt.Assert(t, qt.Equals(e.Children[2].Kind, ast.ExprEmptySub))
}

func TestParseDotAccessVsConcat(t *testing.T) {
	e := parse(t, "a.b")
	qt.Assert(t, qt.Equals(e.Kind, ast.ExprConcatOrSub))
	qt.Assert(t, qt.Equals(e.FieldName, "b"))

	e = parse(t, "a . b")
	qt.Assert(t, qt.Equals(e.Kind, ast.ExprConcat))
}

func TestParseCall(t *testing.T) {
	e := parse(t, "f(1, 2, 3)")
	qt.Assert(t, qt.Equals(e.Kind, ast.ExprCall))
	qt.Assert(t, qt.HasLen(e.Children, 4))
}

func TestParseCallChainedWithIndex(t *testing.T) {
	e := parse(t, "f()[0]")
	qt.Assert(t, qt.Equals(e.Kind, ast.ExprIndex))
	qt.Assert(t, qt.Equals(e.Children[0].Kind, ast.ExprCall))
}

func TestParseTooManyCallArgsErrors(t *testing.T) {
	src := "f(" + repeatArgs(21) + ")"
	_, err := exprparse.ParseExpr0(src)
	qt.Assert(t, qt.IsNotNil(err))
}

func repeatArgs(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			s += ", "
		}
		s += "1"
	}
	return s
}

func TestParseMissingCloseParenErrors(t *testing.T) {
	_, err := exprparse.ParseExpr0("f(1")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestParseTrailingCharactersErrors(t *testing.T) {
	_, err := exprparse.ParseExpr0("1 2")
	qt.Assert(t, qt.IsNotNil(err))
}
