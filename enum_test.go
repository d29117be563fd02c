package placid

import (
	"testing"
)

type fontStyle int

type color uint8

func init() {
	RegisterFlags(fontStyle(0), []EnumValue{
		{Name: "None", Value: 0},
		{Name: "Bold", Value: 1},
		{Name: "Italic", Value: 2},
		{Name: "Underline", Value: 4},
		{Name: "Strike", Value: 8},
	})
	RegisterEnum(color(0), []EnumValue{
		{Name: "Red", Value: 0},
		{Name: "Green", Value: 1},
		{Name: "Blue", Value: 2},
	})
}

func TestEnumDecode(t *testing.T) {
	cases := map[string]struct {
		input  string
		expect color
	}{
		"by name":          {`"Green"`, color(1)},
		"case insensitive": {`"green"`, color(1)},
		"by value":         {`2`, color(2)},
		"quoted value":     {`"1"`, color(1)},
		"unknown to zero":  {`"Mauve"`, color(0)},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var got color
			if err := Unmarshal([]byte(c.input), &got); err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if e, a := c.expect, got; e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestEnumDecodeNullable(t *testing.T) {
	var got *color
	if err := Unmarshal([]byte(`"Mauve"`), &got); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if got != nil {
		t.Errorf("expect nil for unknown member against nullable target, got %v", *got)
	}
}

func TestFlagsDecode(t *testing.T) {
	var got fontStyle
	if err := Unmarshal([]byte(`"Bold, Italic"`), &got); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := fontStyle(3), got; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestEnumEncode(t *testing.T) {
	cases := map[string]struct {
		input  interface{}
		expect string
	}{
		"single name":       {color(2), `"Blue"`},
		"flag combination":  {fontStyle(3), `"Bold, Italic"`},
		"flag zero name":    {fontStyle(0), `"None"`},
		"unnamed bit combo": {fontStyle(19), `"19"`},
		"unnamed plain":     {color(9), `"9"`},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if e, a := c.expect, string(Marshal(c.input)); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestFlagsRoundTrip(t *testing.T) {
	out := Marshal(fontStyle(3))
	if e, a := `"Bold, Italic"`, string(out); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}

	var back fontStyle
	if err := Unmarshal(out, &back); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := fontStyle(3), back; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}
