package placid

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIndent(t *testing.T) {
	compact := `{"a":1,"b":[{"c":"x,y"},{"d":null}],"e":"f"}`

	expect := strings.Join([]string{
		`{`,
		"\t" + `"a":1,`,
		"\t" + `"b":[`,
		"\t\t" + `{`,
		"\t\t\t" + `"c":"x,y"`,
		"\t\t" + `},`,
		"\t\t" + `{`,
		"\t\t\t" + `"d":null`,
		"\t\t" + `}`,
		"\t" + `],`,
		"\t" + `"e":"f"`,
		`}`,
	}, "\n")

	if e, a := expect, string(Indent([]byte(compact))); e != a {
		t.Errorf("expect:\n%s\ngot:\n%s", e, a)
	}
}

func TestIndentQuotedStructureOpaque(t *testing.T) {
	// Braces, commas and escaped quotes inside string literals must not
	// influence the layout.
	compact := `{"a":"{[,]}\"}","b":1}`

	got := string(Indent([]byte(compact)))
	expect := strings.Join([]string{
		`{`,
		"\t" + `"a":"{[,]}\"}",`,
		"\t" + `"b":1`,
		`}`,
	}, "\n")
	if e, a := expect, got; e != a {
		t.Errorf("expect:\n%s\ngot:\n%s", e, a)
	}
}

// Indentation is a pure text rewrite: re-parsing indented output yields the
// same value as parsing the compact text it came from.
func TestIndentPurity(t *testing.T) {
	inputs := []string{
		`{"a":1,"b":[1,2,{"c":null}],"d":{"e":"x"}}`,
		`[[1,2],[],{},{"k":"v"}]`,
		`{"s":"a\nb\t\"c\""}`,
		`true`,
		`"just a string"`,
	}

	for _, input := range inputs {
		fromCompact := Decode([]byte(input))
		fromIndented := Decode(Indent([]byte(input)))
		if diff := cmp.Diff(fromCompact, fromIndented); diff != "" {
			t.Errorf("input %q: indent changed the value (-compact +indented):\n%s", input, diff)
		}
	}
}

func TestMarshalIndentRoundTrip(t *testing.T) {
	type shape struct {
		Name  string
		Items []int
		Inner *shape
	}

	want := shape{Name: "n", Items: []int{1, 2}, Inner: &shape{Name: "i"}}

	var got shape
	if err := Unmarshal(MarshalIndent(want, IncludeNulls()), &got); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round-trip mismatch (-expect +actual):\n%s", diff)
	}
}
