package placid

import (
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func TestDecodeDynamicShapes(t *testing.T) {
	cases := map[string]struct {
		input  string
		expect interface{}
	}{
		"object": {
			input:  `{"a":1,"b":"two"}`,
			expect: map[string]interface{}{"a": int32(1), "b": "two"},
		},
		"array": {
			input:  `[1,"two",true,null]`,
			expect: []interface{}{int32(1), "two", true, nil},
		},
		"string":             {`"hi"`, "hi"},
		"float":              {`1.5`, 1.5},
		"exponent":           {`1e3`, float64(1000)},
		"bool upper":         {`TRUE`, true},
		"bool lower":         {`false`, false},
		"null":               {`null`, nil},
		"garbage":            {`wobble`, nil},
		"odd object is null": {`{"a":1,"b"}`, nil},
		"nested": {
			input: `{"a":{"b":[1,{"c":null}]}}`,
			expect: map[string]interface{}{
				"a": map[string]interface{}{
					"b": []interface{}{int32(1), map[string]interface{}{"c": nil}},
				},
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(c.expect, Decode([]byte(c.input))); diff != "" {
				t.Errorf("value mismatch (-expect +actual):\n%s", diff)
			}
		})
	}
}

func TestDecodeDynamicIntegerWidening(t *testing.T) {
	got := Decode([]byte(`[2147483647,4294967295,-2147483648,-2147483649]`))

	expect := []interface{}{
		int32(2147483647),
		int64(4294967295),
		int32(-2147483648),
		int64(-2147483649),
	}
	if diff := cmp.Diff(expect, got); diff != "" {
		t.Errorf("value mismatch (-expect +actual):\n%s", diff)
	}
}

// Differential check of the dynamic path against an independent decoder.
// Numeric widths differ by design (int32/int64 leaves rather than float64),
// so the comparison normalizes numbers to float64 first.
func TestDecodeDynamicDifferential(t *testing.T) {
	inputs := []string{
		`{"a":1,"b":[true,false,null],"c":{"d":"text","e":1.25}}`,
		`[[],{},"",0,-1,12345.6789]`,
		`{"nested":{"deep":[{"x":[1,2,3]}]}}`,
	}

	for _, input := range inputs {
		var expect interface{}
		if err := gojson.Unmarshal([]byte(input), &expect); err != nil {
			t.Fatalf("oracle failed on %q: %v", input, err)
		}

		got := normalizeNumbers(Decode([]byte(input)))
		if diff := cmp.Diff(expect, got); diff != "" {
			t.Errorf("input %q mismatch (-oracle +actual):\n%s", input, diff)
		}
	}
}

func normalizeNumbers(v interface{}) interface{} {
	switch v := v.(type) {
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, e := range v {
			out[k] = normalizeNumbers(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = normalizeNumbers(e)
		}
		return out
	default:
		return v
	}
}
