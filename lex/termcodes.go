package lex

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// CPOFlags bundles the "compatible options" toggles that alter key-notation
// and escape handling, per spec §4.1(g) and §6.
type CPOFlags uint8

const (
	// CPOBackslashLiteral makes backslash a literal character in
	// mapping/menu LHS and RHS text instead of an escape introducer.
	CPOBackslashLiteral CPOFlags = 1 << iota
	// CPONoSpecial disables <...> key-name recognition.
	CPONoSpecial
	// CPONoKeycode disables raw terminal-code matching via the termcode
	// table.
	CPONoKeycode
)

// Special lead bytes for the internal key-sequence encoding (spec §4.1(g)).
const (
	KSpecial  = 0x80 // K_SPECIAL: introduces a multi-byte internal code
	KSExtra   = 0x01 // KS_EXTRA second byte, used by <SID> among others
	KSSpecial = 0x02 // KS_SPECIAL second byte: literal K_SPECIAL triple
	KEFiller  = 0x00 // KE_FILLER third byte of the literal K_SPECIAL triple
	KESNR     = 0x0D // KE_SNR: third byte after KS_EXTRA for <SID>
)

// termcodeTable maps a subset of well-known terminal key names to their
// two-byte internal code (the byte following K_SPECIAL). This is the
// read-only termcode table of spec §4.1(g)/§5; it is populated once and
// never mutated during parsing.
var termcodeTable = map[string][2]byte{
	"Up": {'k', 'u'}, "Down": {'k', 'd'}, "Left": {'k', 'l'}, "Right": {'k', 'r'},
	"F1": {'k', '1'}, "F2": {'k', '2'}, "F3": {'k', '3'}, "F4": {'k', '4'},
	"F5": {'k', '5'}, "F6": {'k', '6'}, "F7": {'k', '7'}, "F8": {'k', '8'},
	"F9": {'k', '9'}, "F10": {'k', ';'},
	"Home": {'k', 'h'}, "End": {'@', '7'}, "Insert": {'k', 'I'}, "Del": {'k', 'D'},
	"PageUp": {'k', 'P'}, "PageDown": {'k', 'N'},
	"BS": {'k', 'b'}, "Tab": {KSExtra, 'I'}, "Esc": {KSExtra, 'V'},
	"CR": {KSExtra, 'M'}, "Enter": {KSExtra, 'M'}, "Return": {KSExtra, 'M'},
	"Space": {KSExtra, ' '}, "Leader": {KSExtra, 'L'}, "LocalLeader": {KSExtra, 'l'},
	"Nul": {KSExtra, '@'},
}

// modifierPrefix recognizes a "C-", "S-", "M-", "A-", "D-" modifier prefix
// at the start of an angle-bracket body, returning the modifier bit and the
// remaining body.
func modifierPrefix(body string) (bit byte, rest string, ok bool) {
	if len(body) < 2 || body[1] != '-' {
		return 0, body, false
	}
	switch body[0] {
	case 'C', 'c':
		return 0x02, body[2:], true
	case 'S', 's':
		return 0x04, body[2:], true
	case 'M', 'm', 'A', 'a':
		return 0x08, body[2:], true
	case 'D', 'd':
		return 0x20, body[2:], true
	}
	return 0, body, false
}

// ReplaceTermcodes rewrites angle-bracketed key names (<C-X>, <Leader>,
// <SID>, <t_xx>, <Char-NNN>) in s into the internal binary key-sequence
// encoding, honouring the three CPO toggles (spec §4.1(g)). Any literal
// K_SPECIAL byte already in s is tripled (K_SPECIAL, KS_SPECIAL, KE_FILLER)
// to keep the encoding transparent to consumers that scan for K_SPECIAL.
func ReplaceTermcodes(s string, flags CPOFlags) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == byte(KSpecial):
			b.WriteByte(KSpecial)
			b.WriteByte(KSSpecial)
			b.WriteByte(KEFiller)
			i++
		case c == '\\' && flags&CPOBackslashLiteral == 0 && i+1 < len(s):
			b.WriteByte(s[i+1])
			i += 2
		case c == '<' && flags&CPONoSpecial == 0:
			if end := strings.IndexByte(s[i:], '>'); end > 0 {
				body := s[i+1 : i+end]
				if n, ok := encodeAngleBody(body, flags); ok {
					b.WriteString(n)
					i += end + 1
					continue
				}
			}
			b.WriteByte(c)
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

func encodeAngleBody(body string, flags CPOFlags) (string, bool) {
	if body == "" {
		return "", false
	}
	if body == "SID" {
		return string([]byte{KSpecial, KSExtra, KESNR}), true
	}
	mod := byte(0)
	for {
		if bit, rest, ok := modifierPrefix(body); ok {
			mod |= bit
			body = rest
			continue
		}
		break
	}
	if strings.HasPrefix(body, "t_") && len(body) == 4 && flags&CPONoKeycode == 0 {
		code := [2]byte{body[2], body[3]}
		return applyMod(mod, code), true
	}
	if strings.HasPrefix(body, "Char-") {
		if n, err := strconv.Atoi(body[len("Char-"):]); err == nil {
			return string(rune(n)), true
		}
		return "", false
	}
	if code, ok := termcodeTable[body]; ok {
		return applyMod(mod, code), true
	}
	return "", false
}

func applyMod(mod byte, code [2]byte) string {
	if mod == 0 {
		return string([]byte{KSpecial, code[0], code[1]})
	}
	return string([]byte{KSpecial, 'K', mod, code[0], code[1]})
}

// IsFullwidthKey reports whether r should be treated as occupying two
// terminal cells when deciding how a raw multi-byte key in a mapping RHS
// must be escaped. This mirrors the full/half-width distinction the
// termcode table keys on for CJK terminal keys, using x/text/width instead
// of a hand-rolled East Asian Width table.
func IsFullwidthKey(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	default:
		return false
	}
}
