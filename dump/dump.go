// Package dump implements the canonical textual echo of spec §4.4: a
// deterministic rendering of the AST used as the parser's test oracle.
// The printer-over-a-writer shape is grounded on cue/format/node.go's
// config-driven printer (teacher cuelang.org/go), simplified since this
// oracle has exactly one presentation, not a configurable formatter.
package dump

import (
	"fmt"
	"io"
	"strings"

	"vimlua.dev/vl/ast"
)

// Dump renders root and its sibling chain as the canonical echo (spec
// §4.4), returning it as a single string.
func Dump(root *ast.Cmd) string {
	var b strings.Builder
	p := &printer{w: &b}
	p.cmdChain(root, 0)
	return b.String()
}

// Fprint writes the canonical echo of root's sibling chain to w.
func Fprint(w io.Writer, root *ast.Cmd) error {
	p := &printer{w: w}
	p.cmdChain(root, 0)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = err
	}
}

func (p *printer) cmdChain(c *ast.Cmd, depth int) {
	for n := c; n != nil; n = n.Next {
		p.cmd(n, depth)
	}
}

// cmd renders one node: indentation, then its single-line form, then a
// newline, then its block body recursively at depth+1 (spec §4.4).
func (p *printer) cmd(c *ast.Cmd, depth int) {
	indent := strings.Repeat("  ", depth)
	p.printf("%s", indent)
	if c.Kind == ast.CmdSyntaxError {
		p.syntaxErrorBody(c, indent)
		return
	}
	p.cmdInline(c)
	p.printf("\n")
	if c.FirstChild != nil {
		p.cmdChain(c.FirstChild, depth+1)
	}
}

// syntaxErrorBody renders the caret-annotated block (spec §4.4): the
// offending line, a caret line pointing at the error offset, then the
// message. The caller has already written the line's indentation.
func (p *printer) syntaxErrorBody(c *ast.Cmd, indent string) {
	line, msg, offset := c.SyntaxErrorInfo()
	p.printf("%s\n", line)
	p.printf("%s%s^\n", indent, strings.Repeat(" ", offset))
	p.printf("%s%s\n", indent, msg)
}

// cmdInline renders one node's single line: range, name, bang, count, ex
// flags, then kind-specific argument text, with no trailing newline.
func (p *printer) cmdInline(c *ast.Cmd) {
	p.rangeRepr(c.Range)
	p.printf("%s", cmdName(c))
	if c.Bang {
		p.printf("!")
	}
	p.countRepr(c)
	p.exflagsRepr(c.ExFlags)
	p.argsRepr(c)
}

// cmdName resolves a node's printed name (spec §4.4: "command name (or
// user-command name, or the built-in name, or empty for virtual nodes)").
func cmdName(c *ast.Cmd) string {
	switch c.Kind {
	case ast.CmdUser:
		return c.UserName
	case ast.CmdUnknown, ast.CmdMissing, ast.CmdComment, ast.CmdHashbangComment, ast.CmdSyntaxError:
		return ""
	default:
		return string(c.Kind)
	}
}

func (p *printer) countRepr(c *ast.Cmd) {
	if c.CountKind == ast.CountMissing {
		return
	}
	p.printf(" %s", hexSigned(c.Count))
}

func (p *printer) exflagsRepr(fl ast.ExFlags) {
	var b strings.Builder
	if fl&ast.ExFlagList != 0 {
		b.WriteByte('l')
	}
	if fl&ast.ExFlagHash != 0 {
		b.WriteByte('#')
	}
	if fl&ast.ExFlagPrint != 0 {
		b.WriteByte('p')
	}
	if b.Len() > 0 {
		p.printf(" %s", b.String())
	}
}

// rangeRepr renders a command's leading address range (spec §4.4's
// "Kind-specific rendering" for ranges).
func (p *printer) rangeRepr(r *ast.Range) {
	if r.Empty() {
		return
	}
	var parts []string
	for n := r; n != nil; n = n.Next {
		parts = append(parts, addressAtomRepr(n.Addr))
		switch n.Separator {
		case ast.SepComma:
			parts = append(parts, ",")
		case ast.SepSemi:
			parts = append(parts, ";")
		}
	}
	p.printf("%s ", strings.Join(parts, ""))
}

func addressAtomRepr(a *ast.Address) string {
	if a == nil {
		return ""
	}
	var b strings.Builder
	switch a.Kind {
	case ast.AddrMissing:
		return ""
	case ast.AddrFixedLine:
		b.WriteString(hexUnsigned(uint64(a.Line)))
	case ast.AddrEndOfFile:
		b.WriteByte('$')
	case ast.AddrCurrentLine:
		b.WriteByte('.')
	case ast.AddrMark:
		b.WriteByte('\'')
		b.WriteByte(a.Mark)
	case ast.AddrForwardRegex:
		fmt.Fprintf(&b, "/%s/", regexSource(a.Regex))
	case ast.AddrBackwardRegex:
		fmt.Fprintf(&b, "?%s?", regexSource(a.Regex))
	case ast.AddrForwardPrevious:
		b.WriteString(`\/`)
	case ast.AddrBackwardPrevious:
		b.WriteString(`\?`)
	case ast.AddrSubstitutePrevious:
		b.WriteString(`\&`)
	}
	for _, f := range a.Followups {
		b.WriteString(followupRepr(f))
	}
	return b.String()
}

func followupRepr(f *ast.AddressFollowup) string {
	switch f.Kind {
	case ast.FollowupShift:
		if f.Shift < 0 {
			return hexSigned(f.Shift)
		}
		return "+" + hexUnsigned(uint64(f.Shift))
	case ast.FollowupForwardRegex:
		return "/" + regexSource(f.Regex) + "/"
	case ast.FollowupBackwardRegex:
		return "?" + regexSource(f.Regex) + "?"
	}
	return ""
}

// argsRepr dispatches to a command's argument renderer by name, mirroring
// excmd's own bespoke/generic split (spec §4.3, §4.4): a handful of
// commands get hand-shaped output, the rest fall back to a uniform
// per-slot renderer.
func (p *printer) argsRepr(c *ast.Cmd) {
	switch string(c.Kind) {
	case "let", "const":
		p.letArgsRepr(c)
	case "substitute":
		p.substituteArgsRepr(c)
	case "global", "vglobal":
		p.globalArgsRepr(c)
	case "autocmd":
		p.autocmdArgsRepr(c)
	case "doautocmd", "doautoall":
		p.doautocmdArgsRepr(c)
	case "map", "noremap", "nmap", "vmap", "imap", "cmap", "omap", "xmap", "smap",
		"abbreviate", "noreabbrev", "unmap":
		p.mapArgsRepr(c)
	case "menu", "amenu":
		p.menuArgsRepr(c)
	case "function":
		p.functionArgsRepr(c)
	case "for":
		p.forArgsRepr(c)
	default:
		p.genericArgsRepr(c)
	}
}

func (p *printer) genericArgsRepr(c *ast.Cmd) {
	for _, a := range c.Args {
		if r := p.argRepr(a); r != "" {
			p.printf(" %s", r)
		}
	}
}

func (p *printer) letArgsRepr(c *ast.Cmd) {
	if len(c.Args) == 0 {
		return
	}
	p.printf(" %s", exprArgRepr(c.Args[0]))
	if len(c.Args) < 2 {
		return
	}
	p.printf(" %s %s", assignOpGlyph(c.AssignOp), exprArgRepr(c.Args[1]))
}

func exprArgRepr(a ast.Arg) string {
	if a.Expr == nil {
		return ""
	}
	return exprRepr(a.Expr)
}

func assignOpGlyph(op ast.AssignOp) string {
	switch op {
	case ast.AssignAdd:
		return "+="
	case ast.AssignSub:
		return "-="
	case ast.AssignConcat:
		return ".="
	default:
		return "="
	}
}

func (p *printer) substituteArgsRepr(c *ast.Cmd) {
	if len(c.Args) < 3 {
		return
	}
	delim := byte('/')
	src := ""
	if r := c.Args[0].Regex; r != nil {
		src = r.Source
		if r.Delim != 0 {
			delim = r.Delim
		}
	}
	p.printf(" %c%s%c%s%c%s", delim, src, delim, c.Args[1].Replacement, delim, c.Args[2].Str)
}

func (p *printer) globalArgsRepr(c *ast.Cmd) {
	if len(c.Args) < 2 {
		return
	}
	delim := byte('/')
	src := ""
	if r := c.Args[0].Regex; r != nil {
		src = r.Source
		if r.Delim != 0 {
			delim = r.Delim
		}
	}
	p.printf(" %c%s%c", delim, src, delim)
	for _, sub := range c.Args[1].SubArgs {
		if sub.Kind == ast.ArgCommand && sub.Cmd != nil {
			p.printf(" ")
			p.cmdInline(sub.Cmd)
		}
	}
}

func (p *printer) autocmdArgsRepr(c *ast.Cmd) {
	if len(c.Args) < 4 {
		return
	}
	if g := c.Args[0].Str; g != "" {
		p.printf(" %s", g)
	}
	if ev := eventListRepr(c.Args[1].Events); ev != "" {
		p.printf(" %s", ev)
	}
	if pat := c.Args[2].Pattern; pat != nil && pat.Source != "" {
		p.printf(" %s", pat.Source)
	}
	if fl := c.Args[3].Flags; fl != 0 {
		p.printf(" %s", specialArgFlagsRepr(fl))
	}
}

func (p *printer) doautocmdArgsRepr(c *ast.Cmd) {
	if len(c.Args) < 4 {
		return
	}
	if fl := c.Args[0].Flags; fl != 0 {
		p.printf(" %s", specialArgFlagsRepr(fl))
	}
	if g := c.Args[1].Str; g != "" {
		p.printf(" %s", g)
	}
	if ev := eventListRepr(c.Args[2].Events); ev != "" {
		p.printf(" %s", ev)
	}
	if rest := c.Args[3].Str; rest != "" {
		p.printf(" %s", rest)
	}
}

func (p *printer) mapArgsRepr(c *ast.Cmd) {
	if len(c.Args) == 0 {
		return
	}
	if fl := c.Args[0].Flags; fl != 0 {
		p.printf(" %s", specialArgFlagsRepr(fl))
	}
	for _, a := range c.Args[1:] {
		if a.Str != "" {
			p.printf(" %s", a.Str)
		}
	}
}

func (p *printer) menuArgsRepr(c *ast.Cmd) {
	if len(c.Args) < 4 {
		return
	}
	if fl := c.Args[0].Flags; fl != 0 {
		p.printf(" %s", specialArgFlagsRepr(fl))
	}
	if nums := c.Args[1].Numbers; len(nums) > 0 {
		parts := make([]string, len(nums))
		for i, n := range nums {
			parts[i] = hexUnsigned(uint64(n))
		}
		p.printf(" %s", strings.Join(parts, "."))
	}
	if chain := c.Args[2].MenuChain; chain != nil {
		p.printf(" %s", menuChainRepr(chain))
	}
	if rhs := c.Args[3].Str; rhs != "" {
		p.printf(" %s", rhs)
	}
}

func (p *printer) functionArgsRepr(c *ast.Cmd) {
	if len(c.Args) == 0 {
		return
	}
	if r := c.Args[0].Regex; r != nil && r.Source != "" {
		p.printf(" %s", r.Source)
	}
	if len(c.Args) > 1 {
		p.printf("(%s)", strings.Join(c.Args[1].Strings, ", "))
	}
	if len(c.Args) > 2 && len(c.Args[2].Strings) > 0 {
		p.printf(" %s", strings.Join(c.Args[2].Strings, " "))
	}
}

func (p *printer) forArgsRepr(c *ast.Cmd) {
	if len(c.Args) < 2 {
		return
	}
	p.printf(" %s in %s", c.Args[0].Str, exprArgRepr(c.Args[1]))
}

// argRepr renders one argument slot generically, by kind (spec §4.4): used
// by every command without a bespoke renderer above.
func (p *printer) argRepr(a ast.Arg) string {
	switch a.Kind {
	case ast.ArgCommand:
		if a.Cmd == nil {
			return ""
		}
		return strings.TrimRight(Dump(a.Cmd), "\n")
	case ast.ArgExpression:
		return exprArgRepr(a)
	case ast.ArgExpressions:
		parts := make([]string, len(a.Exprs))
		for i, e := range a.Exprs {
			parts[i] = exprRepr(e)
		}
		return strings.Join(parts, ", ")
	case ast.ArgFlags:
		if a.Str != "" {
			return a.Str
		}
		if len(a.Strings) > 0 {
			return strings.Join(a.Strings, " ")
		}
		if a.Flags != 0 {
			return specialArgFlagsRepr(a.Flags)
		}
		return ""
	case ast.ArgNumber:
		return hexSigned(a.Number)
	case ast.ArgUNumber:
		return hexUnsigned(a.UNumber)
	case ast.ArgNumberArray:
		parts := make([]string, len(a.Numbers))
		for i, n := range a.Numbers {
			parts[i] = hexSigned(n)
		}
		return strings.Join(parts, ",")
	case ast.ArgChar:
		if a.Char == 0 {
			return ""
		}
		return "[!" + string(a.Char) + "!]"
	case ast.ArgString:
		if a.Str == "" {
			return ""
		}
		return vimStringRepr(a.Str)
	case ast.ArgStringArray:
		parts := make([]string, len(a.Strings))
		for i, s := range a.Strings {
			parts[i] = vimStringRepr(s)
		}
		return strings.Join(parts, ", ")
	case ast.ArgPattern:
		return regexRepr(a.Pattern)
	case ast.ArgGlob:
		return a.Glob
	case ast.ArgRegex:
		return regexRepr(a.Regex)
	case ast.ArgReplacement:
		if a.Replacement == "" {
			return ""
		}
		return vimStringRepr(a.Replacement)
	case ast.ArgMenuChain:
		return menuChainRepr(a.MenuChain)
	case ast.ArgAutocmdEvents:
		return eventListRepr(a.Events)
	case ast.ArgAddress:
		return addressAtomRepr(a.Address)
	case ast.ArgCmdComplete:
		if a.Complete == nil {
			return ""
		}
		if a.Complete.Custom != "" {
			return a.Complete.Kind + ":" + a.Complete.Custom
		}
		return a.Complete.Kind
	case ast.ArgSubArgs:
		return a.ExprSource
	case ast.ArgPosition:
		return a.Position.String()
	case ast.ArgColumn:
		return hexSigned(int64(a.Column))
	}
	return ""
}

func regexSource(r *ast.Regex) string {
	if r == nil {
		return ""
	}
	return r.Source
}

func regexRepr(r *ast.Regex) string {
	if r == nil {
		return ""
	}
	delim := byte('/')
	if r.Delim != 0 {
		delim = r.Delim
	}
	return fmt.Sprintf("%c%s%c", delim, r.Source, delim)
}

func menuChainRepr(m *ast.MenuItem) string {
	var parts []string
	for n := m; n != nil; n = n.SubItem {
		parts = append(parts, n.Name)
	}
	return strings.Join(parts, ".")
}

func eventListRepr(events []ast.AutocmdEvent) string {
	parts := make([]string, len(events))
	for i, e := range events {
		parts[i] = e.Name
	}
	return strings.Join(parts, ",")
}

func hexSigned(n int64) string {
	if n < 0 {
		return fmt.Sprintf("-0X%X", -n)
	}
	return fmt.Sprintf("+0X%X", n)
}

func hexUnsigned(n uint64) string {
	return fmt.Sprintf("0X%X", n)
}

// vimStringRepr renders s the way the translator's string literals are
// written out (spec §4.4's "vim.string.new(…)-style escaping"): control
// bytes and the delimiter/backslash are escaped, everything else verbatim.
func vimStringRepr(s string) string {
	var b strings.Builder
	b.WriteString(`vim.string.new("`)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20:
			fmt.Fprintf(&b, `\%03d`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteString(`")`)
	return b.String()
}
