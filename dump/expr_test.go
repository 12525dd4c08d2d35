package dump

import (
	"testing"

	"github.com/go-quicktest/qt"

	"vimlua.dev/vl/exprparse"
)

func TestExprRepr(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 + 2", "([++0X1+] + [++0X2+])"},
		{"1 - 2", "([++0X1+] - [++0X2+])"},
		{"1 * 2", "([++0X1+] * [++0X2+])"},
		{"1 == 2", "([++0X1+] == [++0X2+])"},
		{"1 ==# 2", "([++0X1+] ==# [++0X2+])"},
		{"1 ==? 2", "([++0X1+] ==? [++0X2+])"},
		{"!1", "(![++0X1+])"},
		{"-1", "(-[++0X1+])"},
		{"1 ? 2 : 3", "([++0X1+] ? [++0X2+] : [++0X3+])"},
		{"[1, 2]", "[[++0X1+], [++0X2+]]"},
		{`"abc"`, `[+vim.string.new("abc")+]`},
		{"foo", "foo"},
		{"&number", "[+&number+]"},
		{"&g:number", "[+&g:number+]"},
		{"@a", "[+@a+]"},
		{"$HOME", "[+$HOME+]"},
	}
	for _, c := range cases {
		e, err := exprparse.ParseExpr0(c.src)
		qt.Assert(t, qt.IsNil(err))
		got := exprRepr(e)
		qt.Assert(t, qt.Equals(got, c.want))
	}
}

func TestVimStringReprEscaping(t *testing.T) {
	got := vimStringRepr("a\"b\\c\x01")
	qt.Assert(t, qt.Equals(got, `vim.string.new("a\"b\\c\001")`))
}

func TestHexSignedAndUnsigned(t *testing.T) {
	qt.Assert(t, qt.Equals(hexSigned(5), "+0X5"))
	qt.Assert(t, qt.Equals(hexSigned(-5), "-0X5"))
	qt.Assert(t, qt.Equals(hexUnsigned(5), "0X5"))
}
