package ast

import (
	"github.com/cockroachdb/apd/v3"

	"vimlua.dev/vl/token"
)

// ExprKind tags an Expr node (spec §3 "Expressions").
type ExprKind int

const (
	ExprInvalid ExprKind = iota

	// Literals
	ExprNumber      // decimal/octal/hex integer
	ExprFloat       // float, exact decimal form preserved via apd.Decimal
	ExprDQString    // "..."
	ExprSQString    // '...'
	ExprOption      // &name, &g:name, &l:name
	ExprRegister    // @x
	ExprEnvVar      // $NAME

	// Names
	ExprSimpleName // identifier with no curly braces
	ExprIdentPiece // one plain-text piece of a compound name
	ExprCurlyName  // one {expr} piece of a compound name
	ExprVarName    // a compound of IdentPiece/CurlyName children, in order

	// Containers
	ExprList    // [a, b, c]
	ExprDict    // {k: v, ...}
	ExprParen   // (expr)
	ExprEmptySub // the missing side of a[:x] / a[x:]

	// Subscription
	ExprIndex        // a[b]
	ExprSlice        // a[b:c]
	ExprConcatOrSub  // a.name
	ExprCall         // f(args...)

	// Operators
	ExprTernary // ?:
	ExprOr      // ||
	ExprAnd     // &&
	ExprCompare // ==, !=, >, >=, <, <=, is, isnot, =~, !~
	ExprAdd     // +
	ExprSub     // -
	ExprConcat  // .
	ExprMul     // *
	ExprDiv     // /
	ExprMod     // %
	ExprNot     // unary !
	ExprNeg     // unary -
	ExprPos     // unary +, kept only when explicit
)

// CompareOp enumerates the comparison operators (spec §3/§4.2).
type CompareOp int

const (
	CmpEq CompareOp = iota
	CmpNe
	CmpGt
	CmpGe
	CmpLt
	CmpLe
	CmpIs
	CmpIsNot
	CmpMatches
	CmpNotMatches
)

// CaseCompare is the case-sensitivity strategy a comparison carries (spec
// §3). It is only meaningful on ExprCompare nodes.
type CaseCompare int

const (
	CaseUseOption CaseCompare = iota // no suffix: resolved at runtime
	CaseMatch                        // '#' suffix
	CaseIgnore                       // '?' suffix
)

// Expr is one node of the expression tree. Only the fields relevant to Kind
// are meaningful; see the comments by each Kind above and the parser for
// which fields it populates.
type Expr struct {
	Kind ExprKind

	StartPos, EndPos token.Pos

	// Literals
	IntValue   int64
	FloatValue *apd.Decimal
	StrValue   string // decoded content for D/SQ strings; raw name for option/env/register

	OptionScope byte // 'g', 'l', or 0 for unspecified, valid when Kind == ExprOption

	// Operators
	CmpOp    CompareOp
	CaseMode CaseCompare

	// Ternary: Children[0]=cond, [1]=then, [2]=else.
	// Binary ops: Children[0], Children[1].
	// Unary ops, Paren, CurlyName, ConcatOrSub(lhs): Children[0].
	// List/Dict/VarName/Call(args): Children is the full ordered list.
	// Dict: Children alternate key, value.
	// Index: Children[0]=base, [1]=subscript.
	// Slice: Children[0]=base, [1]=low (or ExprEmptySub), [2]=high (or ExprEmptySub).
	// Call: Children[0]=callee, Children[1:]=args.
	Children []*Expr

	// ConcatOrSub / field-style access keeps the field name separately
	// since it is not itself a sub-expression.
	FieldName string
}

func (e *Expr) Pos() token.Pos { return e.StartPos }
func (e *Expr) End() token.Pos { return e.EndPos }

// Free is a no-op; see the package doc.
func (e *Expr) Free() {}

// ScopePrefix identifies one of VimL's named variable scopes (spec §3, §4.2).
type ScopePrefix byte

const (
	ScopeNone ScopePrefix = 0
	ScopeGlobal ScopePrefix = 'g'
	ScopeScript ScopePrefix = 's'
	ScopeVim    ScopePrefix = 'v'
	ScopeArg    ScopePrefix = 'a'
	ScopeLocal  ScopePrefix = 'l'
	ScopeTab    ScopePrefix = 't'
	ScopeWindow ScopePrefix = 'w'
	ScopeBuffer ScopePrefix = 'b'
)
