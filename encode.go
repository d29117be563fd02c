package placid

import (
	"math/big"
	"reflect"
	"strconv"
	"time"

	"github.com/valyala/bytebufferpool"

	"github.com/placidjson/placid/internal/scan"
	"github.com/placidjson/placid/internal/serde"
	"github.com/placidjson/placid/internal/timefmt"
	"github.com/placidjson/placid/uuid"
)

// MarshalOption adjusts how values are written.
type MarshalOption func(*marshalConfig)

type marshalConfig struct {
	includeNulls bool
}

// IncludeNulls emits aggregate members whose value is absent instead of
// omitting them.
func IncludeNulls() MarshalOption {
	return func(c *marshalConfig) {
		c.includeNulls = true
	}
}

// Marshal renders v as compact JSON text. The writer never fails: absence
// renders as the null literal and an unsupported mapping key type degrades to
// an empty object.
func Marshal(v interface{}, opts ...MarshalOption) []byte {
	var cfg marshalConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	bb.B = appendValue(bb.B, reflect.ValueOf(v), cfg)
	out := make([]byte, len(bb.B))
	copy(out, bb.B)
	return out
}

// MarshalIndent renders v compactly and then rewrites the text into the
// tab-indented form.
func MarshalIndent(v interface{}, opts ...MarshalOption) []byte {
	return Indent(Marshal(v, opts...))
}

var nullLiteral = []byte("null")

// appendValue mirrors the reader's category dispatch.
func appendValue(dst []byte, v reflect.Value, cfg marshalConfig) []byte {
	if !v.IsValid() {
		return append(dst, nullLiteral...)
	}

	t := v.Type()
	switch classify(t) {
	case classPointer, classAny, classIface:
		if v.IsNil() {
			return append(dst, nullLiteral...)
		}
		return appendValue(dst, v.Elem(), cfg)

	case classBool:
		return strconv.AppendBool(dst, v.Bool())

	case classInt:
		return strconv.AppendInt(dst, v.Int(), 10)

	case classUint:
		return strconv.AppendUint(dst, v.Uint(), 10)

	case classFloat:
		return strconv.AppendFloat(dst, v.Float(), 'g', -1, t.Bits())

	case classEnum:
		return appendEnum(dst, v)

	case classString:
		return scan.AppendQuoted(dst, v.String())

	case classTime:
		return scan.AppendQuoted(dst, timefmt.Format(v.Interface().(time.Time)))

	case classDuration:
		return scan.AppendQuoted(dst, time.Duration(v.Int()).String())

	case classUUID:
		return scan.AppendQuoted(dst, v.Interface().(uuid.UUID).String())

	case classBigInt:
		n := v.Interface().(big.Int)
		return append(dst, n.String()...)

	case classBigFloat:
		f := v.Interface().(big.Float)
		return append(dst, f.Text('g', -1)...)

	case classSlice:
		if v.IsNil() {
			return append(dst, nullLiteral...)
		}
		fallthrough
	case classArray:
		dst = append(dst, '[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendValue(dst, v.Index(i), cfg)
		}
		return append(dst, ']')

	case classMap:
		return appendMap(dst, v, cfg)

	case classStruct:
		return appendStruct(dst, v, cfg)

	default:
		return append(dst, nullLiteral...)
	}
}

func appendEnum(dst []byte, v reflect.Value) []byte {
	d, _ := lookupEnum(v.Type())
	var n int64
	if isUintKind(v.Kind()) {
		n = int64(v.Uint())
	} else {
		n = v.Int()
	}
	if s, ok := d.format(n); ok {
		return scan.AppendQuoted(dst, s)
	}
	// No named combination covers this bit pattern.
	return scan.AppendQuoted(dst, strconv.FormatInt(n, 10))
}

func appendMap(dst []byte, v reflect.Value, cfg marshalConfig) []byte {
	if v.IsNil() {
		return append(dst, nullLiteral...)
	}
	if !validMapKey(classify(v.Type().Key())) {
		// Degrade rather than fail.
		return append(dst, '{', '}')
	}

	dst = append(dst, '{')
	first := true
	iter := v.MapRange()
	for iter.Next() {
		if !first {
			dst = append(dst, ',')
		}
		first = false
		dst = appendMapKey(dst, iter.Key(), cfg)
		dst = append(dst, ':')
		dst = appendValue(dst, iter.Value(), cfg)
	}
	return append(dst, '}')
}

// appendMapKey renders a mapping key, quote-wrapping any key whose natural
// rendering is not already quote-delimited.
func appendMapKey(dst []byte, key reflect.Value, cfg marshalConfig) []byte {
	if classify(key.Type()) == classString {
		return scan.AppendQuoted(dst, key.String())
	}

	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	bb.B = appendValue(bb.B, key, cfg)
	if len(bb.B) > 0 && bb.B[0] == '"' {
		return append(dst, bb.B...)
	}
	dst = append(dst, '"')
	dst = append(dst, bb.B...)
	return append(dst, '"')
}

func appendStruct(dst []byte, v reflect.Value, cfg marshalConfig) []byte {
	fields := serde.GetFields(v.Type())

	dst = append(dst, '{')
	first := true
	for _, f := range fields.All() {
		if !f.Writable {
			continue
		}
		fv := v.FieldByIndex(f.Index)
		if !cfg.includeNulls && isAbsent(fv) {
			continue
		}
		if !first {
			dst = append(dst, ',')
		}
		first = false
		dst = scan.AppendQuoted(dst, f.Name)
		dst = append(dst, ':')
		dst = appendValue(dst, fv, cfg)
	}
	return append(dst, '}')
}

func isAbsent(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}
