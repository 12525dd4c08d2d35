package excmd

import (
	"strings"

	"github.com/google/shlex"

	"vimlua.dev/vl/ast"
	"vimlua.dev/vl/cmddef"
	"vimlua.dev/vl/lex"
	"vimlua.dev/vl/vimlerr"
)

// isNameByte reports whether b may appear in a variable or function name
// (spec §4.1(c)): a word character, ':' (scope separator), or '#'
// (autoload separator).
func isNameByte(b byte) bool {
	return lex.IsWordChar(b) || b == ':' || b == '#'
}

// SpecialArgFlag bitmasks the `<buffer>`/`<silent>`/... markers shared by
// :map, :abbreviate, and :autocmd (spec §9's supplement).
type SpecialArgFlag uint32

const (
	FlagBuffer SpecialArgFlag = 1 << iota
	FlagSilent
	FlagArgExpr
	FlagUnique
	FlagScript
	FlagNoWait
)

var specialArgMarkers = []struct {
	text string
	flag SpecialArgFlag
}{
	{"<buffer>", FlagBuffer}, {"<silent>", FlagSilent}, {"<expr>", FlagArgExpr},
	{"<unique>", FlagUnique}, {"<script>", FlagScript}, {"<nowait>", FlagNoWait},
}

func (p *Parser) parseSpecialArgs() uint32 {
	var fl uint32
	for {
		p.skipWhite()
		matched := false
		for _, m := range specialArgMarkers {
			if strings.HasPrefix(p.src[p.i:], m.text) {
				fl |= uint32(m.flag)
				p.i += len(m.text)
				matched = true
				break
			}
		}
		if !matched {
			return fl
		}
	}
}

// parseArgsRaw handles FlagNoTrlCom commands (`:!`, `:terminal`): the rest
// of the line is the sole argument, taken verbatim.
func (p *Parser) parseArgsRaw(d cmddef.Descriptor) []ast.Arg {
	text := p.src[p.i:]
	p.i = len(p.src)
	return []ast.Arg{{Kind: ast.ArgString, Str: text}}
}

// parseArgsFor dispatches to a command's argument sub-parser by name,
// falling back to the descriptor-driven generic parser for commands whose
// argument slots are simple sequential tokens (spec §4.3, §9).
func (p *Parser) parseArgsFor(name string, d cmddef.Descriptor, cmd *ast.Cmd) {
	trlbar := d.Flags.Has(cmddef.FlagTrlBar)
	switch name {
	case "if", "elseif", "while":
		cmd.Args = []ast.Arg{{Kind: ast.ArgExpression, Expr: p.parseEmbeddedExpr()}}
	case "return", "throw":
		p.skipWhite()
		if p.atBoundary(trlbar) {
			cmd.Args = []ast.Arg{{Kind: ast.ArgExpression}}
			return
		}
		cmd.Args = []ast.Arg{{Kind: ast.ArgExpression, Expr: p.parseEmbeddedExpr()}}
	case "echo", "echon", "echomsg", "echoerr", "execute", "call":
		cmd.Args = []ast.Arg{{Kind: ast.ArgExpressions, Exprs: p.parseExprList(trlbar)}}
	case "for":
		cmd.Args = p.parseForArgs()
	case "function":
		cmd.Args = p.parseFunctionArgs()
	case "try", "endtry", "endif", "endwhile", "endfor", "endfunction", "else", "finally",
		"break", "continue", "finish":
		cmd.Args = nil
	case "catch":
		cmd.Args = p.parseCatchArgs()
	case "let", "const":
		cmd.Args = p.parseLetArgs(cmd)
	case "unlet", "delfunction":
		cmd.Args = []ast.Arg{{Kind: ast.ArgExpressions, Exprs: p.parseExprList(trlbar)}}
	case "lockvar", "unlockvar":
		cmd.Args = p.parseLockvarArgs(trlbar)
	case "map", "noremap", "nmap", "vmap", "imap", "cmap", "omap", "xmap", "smap",
		"abbreviate", "noreabbrev":
		cmd.Args = p.parseMapArgs(trlbar)
	case "unmap":
		cmd.Args = p.parseUnmapArgs(trlbar)
	case "mapclear", "abclear":
		cmd.Args = []ast.Arg{{Kind: ast.ArgFlags, Flags: p.parseSpecialArgs()}}
	case "menu", "amenu":
		cmd.Args = p.parseMenuArgs(trlbar)
	case "unmenu":
		cmd.Args = []ast.Arg{{Kind: ast.ArgMenuChain, MenuChain: p.parseMenuChain()}}
	case "substitute":
		cmd.Args = p.parseSubstituteArgs()
	case "global", "vglobal":
		cmd.Args = p.parseGlobalArgs(name)
	case "sort":
		cmd.Args = p.parseSortArgs()
	case "append", "insert", "change":
		cmd.Args = []ast.Arg{{Kind: ast.ArgStringArray}} // body lines are supplied by the line getter (spec §4.3)
	case "autocmd":
		cmd.Args = p.parseAutocmdArgs()
	case "doautocmd", "doautoall":
		cmd.Args = p.parseDoautocmdArgs()
	case "normal":
		p.skipWhite()
		text := p.src[p.i:]
		p.i = len(p.src)
		cmd.Args = []ast.Arg{{Kind: ast.ArgString, Str: text}}
	default:
		cmd.Args = p.parseGenericArgs(d, trlbar)
	}
}

func (p *Parser) atBoundary(trlbar bool) bool { return p.i >= p.boundary(trlbar) }

// parseExprList parses a comma-separated list of expressions, as :echo,
// :execute, and :call's argument list all share (spec §4.2, §4.3).
func (p *Parser) parseExprList(trlbar bool) []*ast.Expr {
	var out []*ast.Expr
	p.skipWhite()
	if p.atBoundary(trlbar) {
		return out
	}
	for {
		out = append(out, p.parseEmbeddedExpr())
		p.skipWhite()
		if p.peek() == ',' {
			p.i++
			p.skipWhite()
			continue
		}
		break
	}
	return out
}

func (p *Parser) parseForArgs() []ast.Arg {
	p.skipWhite()
	varStart := p.i
	if p.peek() == '[' {
		depth := 0
		for !p.eof() {
			switch p.peek() {
			case '[':
				depth++
			case ']':
				depth--
			}
			p.i++
			if depth == 0 {
				break
			}
		}
	} else {
		for !p.eof() && (p.peek() != ' ' && p.peek() != '\t') {
			p.i++
		}
	}
	varSpec := p.src[varStart:p.i]
	p.skipWhite()
	if strings.HasPrefix(p.src[p.i:], "in") && (p.i+2 >= len(p.src) || p.src[p.i+2] == ' ' || p.src[p.i+2] == '\t') {
		p.i += 2
	} else {
		p.addErr(p.i, vimlerr.E723MissingIn, "E723: missing \"in\" after :for")
	}
	p.skipWhite()
	list := p.parseEmbeddedExpr()
	return []ast.Arg{
		{Kind: ast.ArgString, Str: varSpec},
		{Kind: ast.ArgExpression, Expr: list},
	}
}

func (p *Parser) parseFunctionArgs() []ast.Arg {
	p.skipWhite()
	if p.atBoundary(false) {
		return nil // `:function` alone: list all functions
	}
	nameStart := p.i
	for !p.eof() && (isNameByte(p.peek()) || p.peek() == '{') {
		if p.peek() == '{' {
			depth := 0
			for !p.eof() {
				if p.peek() == '{' {
					depth++
				} else if p.peek() == '}' {
					depth--
				}
				p.i++
				if depth == 0 {
					break
				}
			}
			continue
		}
		p.i++
	}
	name := &ast.Regex{Source: p.src[nameStart:p.i], StartPos: p.pos(nameStart), EndPos: p.pos(p.i)}

	p.skipWhite()
	var params []string
	if p.peek() == '(' {
		p.i++
		p.skipWhite()
		for p.peek() != ')' && !p.eof() {
			pstart := p.i
			for !p.eof() && p.peek() != ',' && p.peek() != ')' {
				p.i++
			}
			params = append(params, strings.TrimSpace(p.src[pstart:p.i]))
			if p.peek() == ',' {
				p.i++
				p.skipWhite()
			}
		}
		if p.peek() == ')' {
			p.i++
		}
	}

	var flagsText []string
	for {
		p.skipWhite()
		matched := false
		for _, kw := range []string{"range", "abort", "dict", "closure"} {
			if strings.HasPrefix(p.src[p.i:], kw) {
				flagsText = append(flagsText, kw)
				p.i += len(kw)
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}

	return []ast.Arg{
		{Kind: ast.ArgRegex, Regex: name},
		{Kind: ast.ArgStringArray, Strings: params},
		{Kind: ast.ArgFlags, Strings: flagsText},
	}
}

func (p *Parser) parseCatchArgs() []ast.Arg {
	p.skipWhite()
	if p.eof() || p.peek() == '|' {
		return nil
	}
	delim := p.peek()
	p.i++
	start := p.i
	for !p.eof() {
		if p.peek() == '\\' {
			p.i += 2
			continue
		}
		if p.peek() == delim {
			break
		}
		p.i++
	}
	regex := &ast.Regex{Source: p.src[start:p.i], Delim: delim, StartPos: p.pos(start), EndPos: p.pos(p.i)}
	if p.peek() == delim {
		p.i++
	}
	return []ast.Arg{{Kind: ast.ArgRegex, Regex: regex}}
}

func (p *Parser) parseLetArgs(cmd *ast.Cmd) []ast.Arg {
	p.skipWhite()
	if p.atBoundary(true) {
		return nil // bare `:let`/`:const`: list all variables
	}
	lhsStart := p.i
	lhs := p.parseEmbeddedExpr()
	lhsEnd := p.i
	p.skipWhite()

	op, opLen := ast.AssignSet, 0
	switch {
	case strings.HasPrefix(p.src[p.i:], "+="):
		op, opLen = ast.AssignAdd, 2
	case strings.HasPrefix(p.src[p.i:], "-="):
		op, opLen = ast.AssignSub, 2
	case strings.HasPrefix(p.src[p.i:], ".="):
		op, opLen = ast.AssignConcat, 2
	case strings.HasPrefix(p.src[p.i:], "="):
		op, opLen = ast.AssignSet, 1
	default:
		// no operator: `:let x` alone, print the variable's value
		return []ast.Arg{{Kind: ast.ArgExpression, Expr: lhs, ExprSource: p.src[lhsStart:lhsEnd]}}
	}
	cmd.AssignOp = op
	p.i += opLen
	p.skipWhite()
	rhs := p.parseEmbeddedExpr()
	return []ast.Arg{
		{Kind: ast.ArgExpression, Expr: lhs, ExprSource: p.src[lhsStart:lhsEnd]},
		{Kind: ast.ArgExpression, Expr: rhs},
	}
}

func (p *Parser) parseLockvarArgs(trlbar bool) []ast.Arg {
	var depth int64 = -1
	p.skipWhite()
	if lex.IsDigit(p.peek()) {
		n, next := lex.GetDigits(p.src, p.i)
		p.i = next
		depth = n
	}
	return []ast.Arg{
		{Kind: ast.ArgExpressions, Exprs: p.parseExprList(trlbar)},
		{Kind: ast.ArgUNumber, UNumber: uint64(depth)},
	}
}

func (p *Parser) parseMapArgs(trlbar bool) []ast.Arg {
	flags := p.parseSpecialArgs()
	p.skipWhite()
	lhsStart := p.i
	for !p.eof() && p.peek() != ' ' && p.peek() != '\t' {
		p.i++
	}
	lhs := p.src[lhsStart:p.i]
	p.skipWhite()
	rhs := p.rawArgText(trlbar)
	p.i += len(rhs)
	return []ast.Arg{
		{Kind: ast.ArgFlags, Flags: flags},
		{Kind: ast.ArgString, Str: lhs},
		{Kind: ast.ArgString, Str: rhs},
	}
}

func (p *Parser) parseUnmapArgs(trlbar bool) []ast.Arg {
	flags := p.parseSpecialArgs()
	p.skipWhite()
	text := p.rawArgText(trlbar)
	p.i += len(text)
	return []ast.Arg{{Kind: ast.ArgFlags, Flags: flags}, {Kind: ast.ArgString, Str: text}}
}

func (p *Parser) parseMenuArgs(trlbar bool) []ast.Arg {
	flags := p.parseSpecialArgs()
	p.skipWhite()
	var priorities []int64
	for lex.IsDigit(p.peek()) {
		n, next := lex.GetDigits(p.src, p.i)
		p.i = next
		priorities = append(priorities, n)
		if p.peek() == '.' {
			p.i++
		}
	}
	p.skipWhite()
	chain := p.parseMenuChain()
	p.skipWhite()
	rhs := p.rawArgText(trlbar)
	p.i += len(rhs)
	return []ast.Arg{
		{Kind: ast.ArgFlags, Flags: flags},
		{Kind: ast.ArgNumberArray, Numbers: priorities},
		{Kind: ast.ArgMenuChain, MenuChain: chain},
		{Kind: ast.ArgString, Str: rhs},
	}
}

// parseMenuChain parses a `.`-joined, backslash-escapable menu path into a
// linked MenuItem chain (spec §3).
func (p *Parser) parseMenuChain() *ast.MenuItem {
	var head, tail *ast.MenuItem
	for {
		var b strings.Builder
		for !p.eof() {
			c := p.peek()
			if c == '\\' && p.peekAt(1) != 0 {
				b.WriteByte(p.peekAt(1))
				p.i += 2
				continue
			}
			if c == '.' || c == ' ' || c == '\t' || c == 0 {
				break
			}
			b.WriteByte(c)
			p.i++
		}
		item := &ast.MenuItem{Name: b.String()}
		if head == nil {
			head = item
		} else {
			tail.SubItem = item
		}
		tail = item
		if p.peek() != '.' {
			break
		}
		p.i++
	}
	return head
}

func (p *Parser) parseSubstituteArgs() []ast.Arg {
	p.skipWhite()
	if p.eof() || p.peek() == '|' {
		return []ast.Arg{{Kind: ast.ArgRegex}, {Kind: ast.ArgReplacement}, {Kind: ast.ArgFlags}}
	}
	delim := p.peek()
	p.i++
	patStart := p.i
	for !p.eof() {
		if p.peek() == '\\' {
			p.i += 2
			continue
		}
		if p.peek() == delim {
			break
		}
		p.i++
	}
	regex := &ast.Regex{Source: p.src[patStart:p.i], Delim: delim, StartPos: p.pos(patStart), EndPos: p.pos(p.i)}
	if p.peek() == delim {
		p.i++
	}
	replStart := p.i
	for !p.eof() {
		if p.peek() == '\\' {
			p.i += 2
			continue
		}
		if p.peek() == delim {
			break
		}
		p.i++
	}
	repl := p.src[replStart:p.i]
	if p.peek() == delim {
		p.i++
	}
	flagsStart := p.i
	for lex.IsAlpha(p.peek()) {
		p.i++
	}
	return []ast.Arg{
		{Kind: ast.ArgRegex, Regex: regex},
		{Kind: ast.ArgReplacement, Replacement: repl},
		{Kind: ast.ArgFlags, Str: p.src[flagsStart:p.i]},
	}
}

func (p *Parser) parseGlobalArgs(name string) []ast.Arg {
	p.skipWhite()
	if p.eof() {
		return []ast.Arg{{Kind: ast.ArgRegex}, {Kind: ast.ArgSubArgs}}
	}
	delim := p.peek()
	p.i++
	patStart := p.i
	for !p.eof() {
		if p.peek() == '\\' {
			p.i += 2
			continue
		}
		if p.peek() == delim {
			break
		}
		p.i++
	}
	regex := &ast.Regex{Source: p.src[patStart:p.i], Delim: delim, StartPos: p.pos(patStart), EndPos: p.pos(p.i)}
	if p.peek() == delim {
		p.i++
	}
	subStart := p.i
	sub, _ := ParseOneCmd(p.file, p.base+p.i, p.src[p.i:], p.cpo)
	p.i = len(p.src)
	return []ast.Arg{
		{Kind: ast.ArgRegex, Regex: regex},
		{Kind: ast.ArgSubArgs, SubArgs: []ast.Arg{{Kind: ast.ArgCommand, Cmd: sub}}, ExprSource: p.src[subStart:]},
	}
}

func (p *Parser) parseSortArgs() []ast.Arg {
	p.skipWhite()
	var flagChars []byte
	for lex.IsAlpha(p.peek()) {
		flagChars = append(flagChars, p.peek())
		p.i++
	}
	p.skipWhite()
	var regex *ast.Regex
	if p.peek() == '/' {
		p.i++
		start := p.i
		for !p.eof() && p.peek() != '/' {
			if p.peek() == '\\' {
				p.i++
			}
			p.i++
		}
		regex = &ast.Regex{Source: p.src[start:p.i], Delim: '/', StartPos: p.pos(start), EndPos: p.pos(p.i)}
		if p.peek() == '/' {
			p.i++
		}
	}
	return []ast.Arg{
		{Kind: ast.ArgFlags, Str: string(flagChars)},
		{Kind: ast.ArgRegex, Regex: regex},
	}
}

func (p *Parser) parseAutocmdArgs() []ast.Arg {
	p.skipWhite()
	groupStart := p.i
	for isNameByte(p.peek()) {
		p.i++
	}
	group := p.src[groupStart:p.i]
	if isKnownAutocmdEvent(group) || p.peek() == ',' {
		p.i, group = groupStart, "" // the first word is an event, not a group
	}
	p.skipWhite()
	events := p.parseAutocmdEventList()
	p.skipWhite()
	patStart := p.i
	for !p.eof() && p.peek() != ' ' && p.peek() != '\t' {
		p.i++
	}
	pattern := &ast.Regex{Source: p.src[patStart:p.i], StartPos: p.pos(patStart), EndPos: p.pos(p.i)}
	p.skipWhite()
	flags := p.parseSpecialArgs()
	return []ast.Arg{
		{Kind: ast.ArgString, Str: group},
		{Kind: ast.ArgAutocmdEvents, Events: events},
		{Kind: ast.ArgPattern, Pattern: pattern},
		{Kind: ast.ArgFlags, Flags: flags},
	}
}

func (p *Parser) parseDoautocmdArgs() []ast.Arg {
	flags := p.parseSpecialArgs()
	p.skipWhite()
	groupStart := p.i
	for isNameByte(p.peek()) {
		p.i++
	}
	group := p.src[groupStart:p.i]
	if isKnownAutocmdEvent(group) || p.peek() == ',' {
		p.i, group = groupStart, "" // the first word is an event, not a group
	}
	p.skipWhite()
	events := p.parseAutocmdEventList()
	p.skipWhite()
	rest := p.rawArgText(true)
	p.i += len(rest)
	return []ast.Arg{
		{Kind: ast.ArgFlags, Flags: flags},
		{Kind: ast.ArgString, Str: group},
		{Kind: ast.ArgAutocmdEvents, Events: events},
		{Kind: ast.ArgString, Str: rest},
	}
}

func (p *Parser) parseAutocmdEventList() []ast.AutocmdEvent {
	var out []ast.AutocmdEvent
	for {
		start := p.i
		for lex.IsWordChar(p.peek()) {
			p.i++
		}
		if p.i == start {
			break
		}
		name := p.src[start:p.i]
		if !isKnownAutocmdEvent(name) {
			p.addErr(start, vimlerr.E216UnknownEv, "E216: no such event: %s", name)
		}
		out = append(out, ast.AutocmdEvent{Name: name, Pos: p.pos(start)})
		if p.peek() == ',' {
			p.i++
			continue
		}
		break
	}
	return out
}

func isKnownAutocmdEvent(name string) bool {
	for _, e := range cmddef.AutocmdEvents {
		if strings.EqualFold(e, name) {
			return true
		}
	}
	return false
}

// parseGenericArgs drives a command's remaining descriptor-declared slots
// sequentially: the table (spec §9) records each slot's type, and this
// function knows how to consume one value of each type, so most
// straightforward commands need no bespoke parser at all.
func (p *Parser) parseGenericArgs(d cmddef.Descriptor, trlbar bool) []ast.Arg {
	args := make([]ast.Arg, 0, len(d.ArgKind))
	for _, k := range d.ArgKind {
		p.skipWhite()
		args = append(args, p.parseOneGenericArg(k, trlbar))
	}
	return args
}

func (p *Parser) parseOneGenericArg(k ast.ArgKind, trlbar bool) ast.Arg {
	switch k {
	case ast.ArgExpression:
		if p.atBoundary(trlbar) {
			return ast.Arg{Kind: k}
		}
		return ast.Arg{Kind: k, Expr: p.parseEmbeddedExpr()}
	case ast.ArgExpressions:
		return ast.Arg{Kind: k, Exprs: p.parseExprList(trlbar)}
	case ast.ArgFlags:
		return ast.Arg{Kind: k, Flags: p.parseSpecialArgs()}
	case ast.ArgNumber:
		n, next := lex.GetDigits(p.src, p.i)
		p.i = next
		return ast.Arg{Kind: k, Number: n}
	case ast.ArgUNumber:
		n, next := lex.GetDigits(p.src, p.i)
		p.i = next
		return ast.Arg{Kind: k, UNumber: uint64(n)}
	case ast.ArgNumberArray:
		var nums []int64
		for lex.IsDigit(p.peek()) {
			n, next := lex.GetDigits(p.src, p.i)
			p.i = next
			nums = append(nums, n)
			if p.peek() == ',' {
				p.i++
				p.skipWhite()
			}
		}
		return ast.Arg{Kind: k, Numbers: nums}
	case ast.ArgChar:
		var c rune
		if !p.eof() {
			c = rune(p.peek())
			p.i++
		}
		return ast.Arg{Kind: k, Char: c}
	case ast.ArgString:
		text := p.rawArgText(trlbar)
		p.i += len(text)
		return ast.Arg{Kind: k, Str: text}
	case ast.ArgStringArray:
		text := p.rawArgText(trlbar)
		p.i += len(text)
		words, err := shlex.Split(text)
		if err != nil {
			words = strings.Fields(text)
		}
		return ast.Arg{Kind: k, Strings: words}
	case ast.ArgPattern:
		return ast.Arg{Kind: k, Pattern: p.parseDelimitedRegex()}
	case ast.ArgRegex:
		return ast.Arg{Kind: k, Regex: p.parseDelimitedRegex()}
	case ast.ArgGlob:
		text := p.rawArgText(trlbar)
		p.i += len(text)
		return ast.Arg{Kind: k, Glob: text}
	case ast.ArgReplacement:
		text := p.rawArgText(trlbar)
		p.i += len(text)
		return ast.Arg{Kind: k, Replacement: text}
	case ast.ArgMenuChain:
		return ast.Arg{Kind: k, MenuChain: p.parseMenuChain()}
	case ast.ArgAutocmdEvents:
		return ast.Arg{Kind: k, Events: p.parseAutocmdEventList()}
	case ast.ArgAddress:
		addr, _ := p.parseAddressAtom()
		return ast.Arg{Kind: k, Address: addr}
	case ast.ArgSubArgs:
		text := p.rawArgText(trlbar)
		p.i += len(text)
		return ast.Arg{Kind: k, ExprSource: text}
	default:
		return ast.Arg{Kind: k}
	}
}

// parseDelimitedRegex parses an unadorned pattern: if the next character is
// punctuation it is treated as an explicit delimiter pair, otherwise the
// pattern runs to the first blank (used for every regex- or pattern-typed
// slot that parseOneGenericArg fills).
func (p *Parser) parseDelimitedRegex() *ast.Regex {
	if p.eof() {
		return nil
	}
	c := p.peek()
	if lex.IsWordChar(c) || c == '<' || c == '*' || c == '\\' {
		start := p.i
		for !p.eof() && p.peek() != ' ' && p.peek() != '\t' {
			p.i++
		}
		return &ast.Regex{Source: p.src[start:p.i], StartPos: p.pos(start), EndPos: p.pos(p.i)}
	}
	delim := c
	p.i++
	start := p.i
	for !p.eof() {
		if p.peek() == '\\' {
			p.i += 2
			continue
		}
		if p.peek() == delim {
			break
		}
		p.i++
	}
	r := &ast.Regex{Source: p.src[start:p.i], Delim: delim, StartPos: p.pos(start), EndPos: p.pos(p.i)}
	if p.peek() == delim {
		p.i++
	}
	return r
}
