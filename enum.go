package placid

import (
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// EnumValue associates one enumeration member name with its integral value.
type EnumValue struct {
	Name  string
	Value int64
}

type enumDesc struct {
	values []EnumValue
	byName map[string]int64
	flags  bool
}

var enumRegistry sync.Map // reflect.Type -> *enumDesc

// RegisterEnum declares a named integer type as an enumeration. The codec
// reads enumeration values by member name (falling back to the integral
// value) and writes them as the quoted member name. Registration must happen
// before the type is first decoded or encoded, typically from an init
// function. Panics if zero does not have an integer kind.
func RegisterEnum(zero interface{}, values []EnumValue) {
	register(zero, values, false)
}

// RegisterFlags declares a named integer type as a flag enumeration whose
// values combine bitwise. Combinations read and write as comma-separated
// member name lists; a bit pattern with no named decomposition writes as a
// quoted decimal.
func RegisterFlags(zero interface{}, values []EnumValue) {
	register(zero, values, true)
}

func register(zero interface{}, values []EnumValue, flags bool) {
	t := reflect.TypeOf(zero)
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		panic("placid: enumeration type must have an integer kind")
	}

	d := &enumDesc{
		values: append([]EnumValue(nil), values...),
		byName: make(map[string]int64, len(values)),
		flags:  flags,
	}
	for _, v := range values {
		d.byName[v.Name] = v.Value
	}
	enumRegistry.Store(t, d)
}

func lookupEnum(t reflect.Type) (*enumDesc, bool) {
	if v, ok := enumRegistry.Load(t); ok {
		return v.(*enumDesc), true
	}
	return nil, false
}

// parse resolves member names, comma-separated name lists, and bare integral
// text to a value. Name matching is exact first, then case-insensitive.
func (d *enumDesc) parse(s string) (int64, bool) {
	if strings.Contains(s, ",") {
		var combined int64
		for _, part := range strings.Split(s, ",") {
			v, ok := d.parseSingle(strings.TrimSpace(part))
			if !ok {
				return 0, false
			}
			combined |= v
		}
		return combined, true
	}
	if v, ok := d.parseSingle(strings.TrimSpace(s)); ok {
		return v, true
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, true
	}
	return 0, false
}

func (d *enumDesc) parseSingle(name string) (int64, bool) {
	if v, ok := d.byName[name]; ok {
		return v, true
	}
	for _, ev := range d.values {
		if strings.EqualFold(ev.Name, name) {
			return ev.Value, true
		}
	}
	return 0, false
}

// format renders a value as its member name, or for flag enumerations as a
// comma-and-space-joined list of the set member names in registration order.
// Returns false when no named rendering exists.
func (d *enumDesc) format(v int64) (string, bool) {
	for _, ev := range d.values {
		if ev.Value == v {
			return ev.Name, true
		}
	}
	if !d.flags || v == 0 {
		return "", false
	}

	var names []string
	rest := v
	for _, ev := range d.values {
		if ev.Value == 0 {
			continue
		}
		if rest&ev.Value == ev.Value {
			names = append(names, ev.Name)
			rest &^= ev.Value
		}
	}
	if rest != 0 || len(names) == 0 {
		return "", false
	}
	return strings.Join(names, ", "), true
}
