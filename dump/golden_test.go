package dump_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kr/pretty"
	"github.com/rogpeppe/go-internal/txtar"

	"vimlua.dev/vl/dump"
	"vimlua.dev/vl/excmd"
	"vimlua.dev/vl/token"
)

// TestDumpGolden replays testdata/golden.txtar, grounded on the teacher's
// txtar-golden-file convention (internal/core/export/export_test.go): each
// "name.viml"/"name.want" pair is one input line and its expected canonical
// echo (spec §4.4, §6's parse_cmd_test oracle).
func TestDumpGolden(t *testing.T) {
	ar, err := txtar.ParseFile("testdata/golden.txtar")
	if err != nil {
		t.Fatal(err)
	}

	wants := make(map[string]string)
	for _, f := range ar.Files {
		if strings.HasSuffix(f.Name, ".want") {
			// Blank separator lines between txtar sections land in the
			// preceding file's data; normalise to exactly one trailing
			// newline to match dump.Dump's own convention.
			wants[strings.TrimSuffix(f.Name, ".want")] = strings.TrimRight(string(f.Data), "\n") + "\n"
		}
	}

	for _, f := range ar.Files {
		if !strings.HasSuffix(f.Name, ".viml") {
			continue
		}
		name := strings.TrimSuffix(f.Name, ".viml")
		src := strings.TrimRight(string(f.Data), "\n")
		want, ok := wants[name]
		if !ok {
			t.Fatalf("%s: no matching .want section", name)
		}

		t.Run(name, func(t *testing.T) {
			file := token.NewFile(name, len(src))
			cmd, errs := excmd.ParseOneCmd(file, 0, src, 0)
			if len(errs) != 0 {
				t.Fatalf("parse errors: %v", errs)
			}
			got := dump.Dump(cmd)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("dump mismatch (-want +got):\n%s\nfull diff:\n%s", diff, pretty.Diff(want, got))
			}
		})
	}
}
