package scan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCondense(t *testing.T) {
	cases := map[string]struct {
		input  string
		expect string
	}{
		"between tokens": {
			input:  "{ \"a\" : 1 ,\n\t\"b\" : [ 1 , 2 ] }",
			expect: `{"a":1,"b":[1,2]}`,
		},
		"inside quotes preserved": {
			input:  `{"a": "x y\tz"}`,
			expect: `{"a":"x y\tz"}`,
		},
		"escaped quote does not end the string": {
			input:  `{"a": "x \" y"}`,
			expect: `{"a":"x \" y"}`,
		},
		"leading and trailing": {
			input:  "\n  true  \n",
			expect: "true",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if e, a := c.expect, Condense([]byte(c.input)); e != a {
				t.Errorf("expect %q, got %q", e, a)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	cases := map[string]struct {
		input  string
		expect []string
	}{
		"empty object": {
			input:  "{}",
			expect: []string{},
		},
		"empty array": {
			input:  "[]",
			expect: []string{},
		},
		"array elements": {
			input:  "[1,2,3]",
			expect: []string{"1", "2", "3"},
		},
		"object pairs split on comma and colon": {
			input:  `{"a":1,"b":2}`,
			expect: []string{`"a"`, "1", `"b"`, "2"},
		},
		"nested containers stay whole": {
			input:  `[[1,2],{"k":3}]`,
			expect: []string{"[1,2]", `{"k":3}`},
		},
		"separators inside quotes are opaque": {
			input:  `{"a,b":"c:d"}`,
			expect: []string{`"a,b"`, `"c:d"`},
		},
		"escaped quotes inside strings": {
			input:  `{"a\"b":1}`,
			expect: []string{`"a\"b"`, "1"},
		},
		"missing closer best effort": {
			input:  `{"a":1`,
			expect: []string{`"a"`, "1"},
		},
		"missing value keeps even alternation": {
			input:  `{"a":}`,
			expect: []string{`"a"`, ""},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			segs := Split(c.input)
			defer Recycle(segs)

			if diff := cmp.Diff(c.expect, append([]string{}, segs...)); diff != "" {
				t.Errorf("segment mismatch (-expect +actual):\n%s", diff)
			}
		})
	}
}

func TestSplitObjectSegmentCountEven(t *testing.T) {
	inputs := []string{
		`{}`,
		`{"a":1}`,
		`{"a":1,"b":{"c":2}}`,
		`{"a":}`,
	}
	for _, input := range inputs {
		segs := Split(input)
		if len(segs)%2 != 0 {
			t.Errorf("expect even segment count for %q, got %d", input, len(segs))
		}
		Recycle(segs)
	}
}
