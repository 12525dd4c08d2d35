// Package excmd implements the Ex-command parser of spec §4.3: the
// modifier loop, range parser, command-name lookup against cmddef's
// descriptor table, and the per-command argument sub-parsers, producing
// the ast.Cmd tree that dump and translate consume.
package excmd

import (
	"sort"
	"strings"

	"vimlua.dev/vl/ast"
	"vimlua.dev/vl/cmddef"
	"vimlua.dev/vl/exprparse"
	"vimlua.dev/vl/lex"
	"vimlua.dev/vl/token"
	"vimlua.dev/vl/vimlerr"
)

// Parser parses Ex commands out of one line at a time, sharing a token.File
// with the surrounding sequence so positions stay consistent across lines.
type Parser struct {
	file *token.File
	src  string
	base int
	i    int
	cpo  lex.CPOFlags
	errs vimlerr.List
}

func newParser(file *token.File, base int, src string, cpo lex.CPOFlags) *Parser {
	return &Parser{file: file, src: src, base: base, cpo: cpo}
}

// ParseOneCmd parses a single Ex command line (spec §6's parse_one_cmd entry
// point). base is the line's starting byte offset within file, so
// diagnostics and node positions point at the right place in multi-line
// input.
func ParseOneCmd(file *token.File, base int, line string, cpo lex.CPOFlags) (*ast.Cmd, vimlerr.List) {
	p := newParser(file, base, line, cpo)
	cmd := p.parseOneCmd()
	return cmd, p.errs
}

func (p *Parser) pos(offset int) token.Pos { return p.file.Pos(p.base + offset) }

func (p *Parser) addErr(offset int, code vimlerr.Code, format string, args ...interface{}) {
	p.errs.AddNewf(p.pos(offset), code, format, args...)
}

func (p *Parser) peek() byte {
	if p.i >= len(p.src) {
		return 0
	}
	return p.src[p.i]
}

func (p *Parser) peekAt(n int) byte {
	if p.i+n >= len(p.src) {
		return 0
	}
	return p.src[p.i+n]
}

func (p *Parser) eof() bool { return p.i >= len(p.src) }

func (p *Parser) skipWhite() { p.i = lex.SkipWhite(p.src, p.i) }

// identEnd returns the offset just past a run of ASCII letters starting at i.
func identEnd(s string, i int) int {
	j := i
	for j < len(s) && lex.IsAlpha(s[j]) {
		j++
	}
	return j
}

func (p *Parser) parseOneCmd() *ast.Cmd {
	start := p.i

	if p.base == 0 && strings.HasPrefix(p.src, "#!") {
		return &ast.Cmd{
			Kind: ast.CmdHashbangComment, StartPos: p.pos(0), EndPos: p.pos(len(p.src)),
			Args: []ast.Arg{{Kind: ast.ArgString, Str: p.src}},
		}
	}

	rng := p.parseRange()
	p.skipWhite()
	p.parseModifiers()
	p.skipWhite()

	if p.eof() {
		kind := ast.CmdPrint
		if rng == nil {
			kind = ast.CmdMissing
		}
		return &ast.Cmd{Kind: kind, Range: rng, StartPos: p.pos(start), EndPos: p.pos(p.i)}
	}

	if p.peek() == '"' {
		return &ast.Cmd{
			Kind: ast.CmdComment, StartPos: p.pos(start), EndPos: p.pos(len(p.src)),
			Args: []ast.Arg{{Kind: ast.ArgString, Str: p.src[p.i:]}},
		}
	}

	nameStart := p.i
	name, found := p.resolveCmdName()
	if !found {
		if len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z' {
			return p.parseUserCmd(rng, name, start)
		}
		line, msg := p.src, "E492: not an editor command: "+p.src[nameStart:]
		return ast.NewSyntaxError(p.pos(nameStart), line, msg, nameStart)
	}
	d, _ := cmddef.ByName(name)

	bang := false
	if d.Flags.Has(cmddef.FlagBang) && p.peek() == '!' {
		bang = true
		p.i++
	}

	countKind := ast.CountMissing
	var count int64
	if d.Flags.Has(cmddef.FlagCount) {
		p.skipWhite()
		if lex.IsDigit(p.peek()) {
			n, next := lex.GetDigits(p.src, p.i)
			p.i = next
			count = n
			countKind = ast.CountPlain
		}
	}

	cmd := &ast.Cmd{
		Kind: ast.CmdKind(name), Range: rng, Bang: bang,
		CountKind: countKind, Count: count,
		StartPos: p.pos(start),
	}

	p.skipWhite()
	if exflags, ok := tryParseExFlags(d, p); ok {
		cmd.ExFlags = exflags
	}

	if d.Flags.Has(cmddef.FlagNoTrlCom) {
		// The rest of the line belongs to the command verbatim (e.g. `:!`,
		// shell filters): no bar-splitting, no comment trimming.
		cmd.Args = p.parseArgsRaw(d)
		cmd.EndPos = p.pos(p.i)
		return cmd
	}

	p.parseArgsFor(name, d, cmd)

	if d.Flags.Has(cmddef.FlagTrlBar) {
		p.skipWhite()
	}
	cmd.EndPos = p.pos(p.i)
	return cmd
}

// parseUserCmd builds a CmdUser node for a capitalised name that didn't
// resolve against cmddef's table (spec §4.3: user-defined commands are
// recognised by convention, not by a descriptor, so the whole remainder of
// the line is kept verbatim for the translator to hand to vim.run_user_command).
func (p *Parser) parseUserCmd(rng *ast.Range, name string, start int) *ast.Cmd {
	bang := false
	if p.peek() == '!' {
		bang = true
		p.i++
	}
	p.skipWhite()
	rest := p.rawArgText(true)
	cmd := &ast.Cmd{
		Kind:      ast.CmdUser,
		UserName:  name,
		Range:     rng,
		Bang:      bang,
		CountKind: ast.CountMissing,
		Args:      []ast.Arg{{Kind: ast.ArgString, Str: rest}},
		StartPos:  p.pos(start),
	}
	p.i = p.boundary(true)
	p.skipWhite()
	cmd.EndPos = p.pos(p.i)
	return cmd
}

// resolveCmdName reads the command-name token at the parser's current
// position and resolves it against cmddef's table, accepting any
// unambiguous abbreviation the way Vim's own command lookup does (spec
// §4.3's first-letter dispatch table).
func (p *Parser) resolveCmdName() (string, bool) {
	if p.peek() == '!' {
		p.i++
		return "!", true
	}
	if p.peek() == '&' {
		p.i++
		return "substitute", true // `:&` repeats the last :substitute
	}
	end := identEnd(p.src, p.i)
	if end == p.i {
		return "", false
	}
	ident := p.src[p.i:end]
	p.i = end

	if _, ok := cmddef.ByName(ident); ok {
		return ident, true
	}
	candidates := cmddef.FirstLetterLookup(ident[0])
	best := ""
	for _, c := range candidates {
		if c.Flags.Has(cmddef.FlagIsModifier) {
			continue
		}
		if strings.HasPrefix(c.Name, ident) {
			if best == "" || len(c.Name) < len(best) {
				best = c.Name
			}
		}
	}
	if best != "" {
		return best, true
	}
	return ident, false
}

var modifierSet map[string]cmddef.Descriptor

func init() {
	modifierSet = make(map[string]cmddef.Descriptor)
	for _, d := range cmddef.All() {
		if d.Flags.Has(cmddef.FlagIsModifier) {
			modifierSet[d.Name] = d
		}
	}
}

// parseModifiers consumes the leading run of command modifiers (spec
// §4.3(4)): `:silent call Foo()`, `:vertical belowright split`, and so on.
func (p *Parser) parseModifiers() {
	for {
		p.skipWhite()
		end := identEnd(p.src, p.i)
		word := p.src[p.i:end]
		d, ok := modifierSet[word]
		if !ok {
			return
		}
		p.i = end
		if d.Flags.Has(cmddef.FlagBang) && p.peek() == '!' {
			p.i++
		}
		if d.Flags.Has(cmddef.FlagCount) {
			p.skipWhite()
			if lex.IsDigit(p.peek()) {
				_, next := lex.GetDigits(p.src, p.i)
				p.i = next
			}
		}
	}
}

func tryParseExFlags(d cmddef.Descriptor, p *Parser) (ast.ExFlags, bool) {
	if !d.Flags.Has(cmddef.FlagExFlags) {
		return 0, false
	}
	var fl ast.ExFlags
	for {
		switch p.peek() {
		case 'l':
			fl |= ast.ExFlagList
			p.i++
		case '#':
			fl |= ast.ExFlagHash
			p.i++
		case 'p':
			fl |= ast.ExFlagPrint
			p.i++
		default:
			return fl, true
		}
	}
}

// boundary returns the offset the current textual argument ends at: just
// before an unescaped trailing '|' when the command honours one, otherwise
// end of line.
func (p *Parser) boundary(trlbar bool) int {
	if !trlbar {
		return len(p.src)
	}
	for j := p.i; j < len(p.src); j++ {
		if p.src[j] == '\\' {
			j++
			continue
		}
		if p.src[j] == '|' {
			return j
		}
	}
	return len(p.src)
}

// rawArgText returns the trimmed text between the parser's current position and
// its boundary, without consuming it.
func (p *Parser) rawArgText(trlbar bool) string {
	end := p.boundary(trlbar)
	return strings.TrimRight(p.src[p.i:end], " \t")
}

func (p *Parser) newExprParser() *exprparse.Parser {
	return exprparse.New(p.file, p.base+p.i, p.src[p.i:], p.cpo)
}

// parseEmbeddedExpr runs the expression parser at the current offset and
// advances past what it consumed.
func (p *Parser) parseEmbeddedExpr() *ast.Expr {
	ep := p.newExprParser()
	e := ep.ParseExpr()
	p.i += ep.Remaining()
	if err := ep.Err(); err != nil {
		p.errs.Add(err)
	}
	return e
}

// sortedModifierNames returns the recognised modifier names in sorted
// order; nothing in this package calls it.
func sortedModifierNames() []string {
	names := make([]string, 0, len(modifierSet))
	for n := range modifierSet {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
