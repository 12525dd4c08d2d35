// Command gencmddef reads cmddef/commands.yaml and emits
// cmddef/zz_generated_table.go, the Descriptor table consumed by the Ex
// parser (spec §4.3, §9). Invoked via `//go:generate` from cmddef/table.go.
package main

import (
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

type commandFile struct {
	Commands []commandEntry `yaml:"commands"`
}

type commandEntry struct {
	Name  string   `yaml:"name"`
	Flags []string `yaml:"flags"`
	Args  []string `yaml:"args"`
}

var flagNames = map[string]string{
	"range": "FlagRange", "bang": "FlagBang", "count": "FlagCount",
	"exflags": "FlagExFlags", "extra": "FlagExtra", "trlbar": "FlagTrlBar",
	"usectrlv": "FlagUseCtrlV", "notrlcom": "FlagNoTrlCom", "xfile": "FlagXFile",
	"isgrep": "FlagIsGrep", "isexpr": "FlagIsExpr", "literal": "FlagLiteral",
	"ismodifier": "FlagIsModifier",
}

var argNames = map[string]string{
	"command": "ArgCommand", "expression": "ArgExpression", "expressions": "ArgExpressions",
	"flags": "ArgFlags", "number": "ArgNumber", "unumber": "ArgUNumber",
	"number_array": "ArgNumberArray", "char": "ArgChar", "string": "ArgString",
	"string_array": "ArgStringArray", "pattern": "ArgPattern", "glob": "ArgGlob",
	"regex": "ArgRegex", "replacement": "ArgReplacement", "menuchain": "ArgMenuChain",
	"autocmdevents": "ArgAutocmdEvents", "address": "ArgAddress", "cmdcomplete": "ArgCmdComplete",
	"subargs": "ArgSubArgs", "position": "ArgPosition", "column": "ArgColumn",
}

func main() {
	in := flag.String("in", "commands.yaml", "path to the declarative command table")
	out := flag.String("out", "zz_generated_table.go", "output Go file")
	flag.Parse()

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("gencmddef: %v", err)
	}
	var cf commandFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		log.Fatalf("gencmddef: parsing %s: %v", *in, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by cmd/gencmddef from %s; DO NOT EDIT.\n\npackage cmddef\n\nimport \"vimlua.dev/vl/ast\"\n\nvar table = []Descriptor{\n", *in)
	for _, c := range cf.Commands {
		flagExpr, err := joinFlags(c.Flags)
		if err != nil {
			log.Fatalf("gencmddef: command %q: %v", c.Name, err)
		}
		argExpr, err := joinArgs(c.Args)
		if err != nil {
			log.Fatalf("gencmddef: command %q: %v", c.Name, err)
		}
		fmt.Fprintf(&b, "\t{Name: %q, Flags: %s", c.Name, flagExpr)
		if argExpr != "" {
			fmt.Fprintf(&b, ",\n\t\tArgKind: []ast.ArgKind{%s}", argExpr)
		}
		b.WriteString("},\n")
	}
	b.WriteString("}\n\nvar byName map[string]Descriptor\n\nvar byFirstLetter map[byte][]Descriptor\n\nfunc init() {\n\tbyName = make(map[string]Descriptor, len(table))\n\tbyFirstLetter = make(map[byte][]Descriptor)\n\tfor _, d := range table {\n\t\tbyName[d.Name] = d\n\t\tletter := d.Name[0]\n\t\tbyFirstLetter[letter] = append(byFirstLetter[letter], d)\n\t}\n}\n")

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		log.Fatalf("gencmddef: gofmt: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("gencmddef: writing %s: %v", *out, err)
	}
}

func joinFlags(names []string) (string, error) {
	if len(names) == 0 {
		return "0", nil
	}
	parts := make([]string, len(names))
	for i, n := range names {
		f, ok := flagNames[n]
		if !ok {
			return "", fmt.Errorf("unknown flag %q", n)
		}
		parts[i] = f
	}
	return strings.Join(parts, " | "), nil
}

func joinArgs(names []string) (string, error) {
	if len(names) == 0 {
		return "", nil
	}
	parts := make([]string, len(names))
	for i, n := range names {
		a, ok := argNames[n]
		if !ok {
			return "", fmt.Errorf("unknown arg kind %q", n)
		}
		parts[i] = "ast." + a
	}
	return strings.Join(parts, ", "), nil
}

var _ = template.New // reserved for a future richer template; joinFlags/joinArgs cover today's needs
