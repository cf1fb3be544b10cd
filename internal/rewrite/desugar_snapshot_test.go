package rewrite_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/forlang/forc/internal/compfile"
	"github.com/forlang/forc/internal/prettyprinter"
	"github.com/forlang/forc/internal/rewrite"
)

var update = flag.Bool("update", false, "update snapshot files")

func TestDesugarSnapshots(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"identity_elision", `clauses:
  - bind: { pattern: a, from: gen }
yield: a
`},
		{"filter_map", `clauses:
  - bind: { pattern: x, from: xs }
  - when: "x > 1"
yield: { raw: "x * 2" }
`},
		{"alias_flatmap", `clauses:
  - bind: { pattern: a, from: ints }
  - let: { pattern: b, value: "a + 1" }
yield: { tuple: [a, b] }
`},
		{"alias_guard_tuple", `clauses:
  - bind: { pattern: a, from: ints }
  - let: { pattern: b, value: "a + 1" }
  - when: "b > 1"
yield: b
`},
		{"exec_tail", `clauses:
  - bind: { pattern: a, from: actions }
  - run: "log(a)"
`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			comp, derr := compfile.Decode([]byte(tc.input))
			if derr != nil {
				t.Fatalf("decoding failed: %v", derr)
			}

			result, rerr := rewrite.Desugar(comp, rewrite.Options{})
			if rerr != nil {
				t.Fatalf("desugaring failed: %v", rerr)
			}

			tp := prettyprinter.NewTreePrinter()
			result.Accept(tp)
			cp := prettyprinter.NewCodePrinter()
			result.Accept(cp)

			actual := "--- Input ---\n" + tc.input + "\n--- Tree ---\n" + tp.String() + "--- Source ---\n" + cp.String() + "\n"

			snapshotFile := filepath.Join("testdata", tc.name+".snap")

			if *update {
				if err := os.WriteFile(snapshotFile, []byte(actual), 0644); err != nil {
					t.Fatalf("failed to update snapshot: %v", err)
				}
				return
			}

			expected, err := os.ReadFile(snapshotFile)
			if err != nil {
				t.Fatalf("failed to read snapshot file: %v. Run with -update flag to create it.", err)
			}

			if string(expected) != actual {
				t.Errorf("snapshot mismatch:\n--- expected\n%s\n--- actual\n%s", string(expected), actual)
			}
		})
	}
}
