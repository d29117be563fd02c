package placid

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/placidjson/placid/internal/scan"
	"github.com/placidjson/placid/internal/timefmt"
	"github.com/placidjson/placid/uuid"
)

// class is the cached capability classification of a target type. Special
// value types and big numerics are classified ahead of the generic kind
// switch: time.Time and the big numerics are structs, time.Duration is a
// named int64 and uuid.UUID is a byte array, so kind dispatch alone would
// misfile them as containers or plain integers.
type class int

const (
	classOther class = iota
	classBool
	classInt
	classUint
	classFloat
	classString
	classEnum
	classTime
	classDuration
	classUUID
	classBigInt
	classBigFloat
	classPointer
	classArray
	classSlice
	classMap
	classStruct
	classAny
	classIface
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	uuidType     = reflect.TypeOf(uuid.UUID{})
	bigIntType   = reflect.TypeOf(big.Int{})
	bigFloatType = reflect.TypeOf(big.Float{})
)

// classCache is process-wide and never evicts; the type universe of a
// program is bounded. Races on first use recompute the same entry.
var classCache sync.Map // reflect.Type -> class

func classify(t reflect.Type) class {
	if c, ok := classCache.Load(t); ok {
		return c.(class)
	}
	c := classifySlow(t)
	classCache.Store(t, c)
	return c
}

func classifySlow(t reflect.Type) class {
	switch t {
	case timeType:
		return classTime
	case durationType:
		return classDuration
	case uuidType:
		return classUUID
	case bigIntType:
		return classBigInt
	case bigFloatType:
		return classBigFloat
	}
	if _, ok := lookupEnum(t); ok {
		return classEnum
	}

	switch t.Kind() {
	case reflect.Bool:
		return classBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return classUint
	case reflect.Float32, reflect.Float64:
		return classFloat
	case reflect.String:
		return classString
	case reflect.Pointer:
		return classPointer
	case reflect.Array:
		return classArray
	case reflect.Slice:
		return classSlice
	case reflect.Map:
		return classMap
	case reflect.Struct:
		return classStruct
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return classAny
		}
		return classIface
	default:
		return classOther
	}
}

// decodeValue parses one condensed segment against the settable destination.
// The boolean result distinguishes a resolved value from a soft failure that
// left the destination at its zero value; a pointer destination stays nil
// when its element parse fails softly. The error return is reserved for the
// fatal case of a non-empty interface destination.
func decodeValue(seg string, dst reflect.Value) (bool, error) {
	t := dst.Type()

	if seg == "" || seg == "null" {
		dst.Set(reflect.Zero(t))
		return true, nil
	}

	switch classify(t) {
	case classPointer:
		p := reflect.New(t.Elem())
		ok, err := decodeValue(seg, p.Elem())
		if err != nil {
			return false, err
		}
		if ok {
			dst.Set(p)
		}
		return ok, nil

	case classBool:
		b, err := strconv.ParseBool(seg)
		if err != nil {
			return false, nil
		}
		dst.SetBool(b)
		return true, nil

	case classInt:
		n, err := strconv.ParseInt(seg, 10, t.Bits())
		if err != nil {
			return false, nil
		}
		dst.SetInt(n)
		return true, nil

	case classUint:
		n, err := strconv.ParseUint(seg, 10, t.Bits())
		if err != nil {
			return false, nil
		}
		dst.SetUint(n)
		return true, nil

	case classFloat:
		f, err := strconv.ParseFloat(seg, t.Bits())
		if err != nil {
			return false, nil
		}
		dst.SetFloat(f)
		return true, nil

	case classEnum:
		d, _ := lookupEnum(t)
		v, ok := d.parse(decodeString(seg))
		if !ok {
			return false, nil
		}
		if isUintKind(t.Kind()) {
			dst.SetUint(uint64(v))
		} else {
			dst.SetInt(v)
		}
		return true, nil

	case classString:
		dst.SetString(decodeString(seg))
		return true, nil

	case classTime:
		v, err := timefmt.Parse(decodeString(seg))
		if err != nil {
			return false, nil
		}
		dst.Set(reflect.ValueOf(v))
		return true, nil

	case classDuration:
		v, err := time.ParseDuration(decodeString(seg))
		if err != nil {
			return false, nil
		}
		dst.SetInt(int64(v))
		return true, nil

	case classUUID:
		v, err := uuid.Parse(decodeString(seg))
		if err != nil {
			return false, nil
		}
		dst.Set(reflect.ValueOf(v))
		return true, nil

	case classBigInt:
		n, ok := new(big.Int).SetString(decodeString(seg), 10)
		if !ok {
			return false, nil
		}
		dst.Set(reflect.ValueOf(*n))
		return true, nil

	case classBigFloat:
		f, ok := new(big.Float).SetString(decodeString(seg))
		if !ok {
			return false, nil
		}
		dst.Set(reflect.ValueOf(*f))
		return true, nil

	case classArray:
		if seg[0] != '[' || seg[len(seg)-1] != ']' {
			return false, nil
		}
		segs := scan.Split(seg)
		defer scan.Recycle(segs)
		for i := 0; i < len(segs) && i < t.Len(); i++ {
			if _, err := decodeValue(segs[i], dst.Index(i)); err != nil {
				return false, err
			}
		}
		return true, nil

	case classSlice:
		if seg[0] != '[' {
			return false, nil
		}
		segs := scan.Split(seg)
		defer scan.Recycle(segs)
		out := reflect.MakeSlice(t, len(segs), len(segs))
		for i := range segs {
			if _, err := decodeValue(segs[i], out.Index(i)); err != nil {
				return false, err
			}
		}
		dst.Set(out)
		return true, nil

	case classMap:
		return decodeMap(seg, dst)

	case classAny:
		if v := decodeDynamic(seg); v != nil {
			dst.Set(reflect.ValueOf(v))
		}
		return true, nil

	case classStruct:
		return decodeStruct(seg, dst)

	case classIface:
		return false, fmt.Errorf("placid: cannot construct value of interface type %s", t)

	default:
		return false, nil
	}
}

func decodeMap(seg string, dst reflect.Value) (bool, error) {
	if seg[0] != '{' {
		return false, nil
	}

	t := dst.Type()
	if !validMapKey(classify(t.Key())) {
		return false, nil
	}

	segs := scan.Split(seg)
	defer scan.Recycle(segs)
	if len(segs)%2 != 0 {
		return false, nil
	}

	out := reflect.MakeMapWithSize(t, len(segs)/2)
	keyIsString := classify(t.Key()) == classString
	for i := 0; i+1 < len(segs); i += 2 {
		raw := segs[i]
		if !keyIsString && strings.HasPrefix(raw, `"`) {
			raw = scan.Unquote(raw)
		}

		key := reflect.New(t.Key()).Elem()
		if _, err := decodeValue(raw, key); err != nil {
			return false, err
		}
		val := reflect.New(t.Elem()).Elem()
		if _, err := decodeValue(segs[i+1], val); err != nil {
			return false, err
		}
		// Later duplicates overwrite earlier ones.
		out.SetMapIndex(key, val)
	}
	dst.Set(out)
	return true, nil
}

// validMapKey gates the key types a mapping target accepts: strings, any
// scalar, enumerations, big numerics and the special value types.
func validMapKey(c class) bool {
	switch c {
	case classString, classBool, classInt, classUint, classFloat,
		classEnum, classBigInt, classBigFloat,
		classTime, classDuration, classUUID:
		return true
	}
	return false
}

// decodeDynamic resolves a segment with no static type into the dynamic value
// graph: string-keyed maps for objects, []interface{} for arrays, and
// bool/int32/int64/float64/string leaves. Integral values outside the 32-bit
// signed range keep their 64-bit width rather than being truncated.
func decodeDynamic(seg string) interface{} {
	if seg == "" || seg == "null" {
		return nil
	}

	switch c := seg[0]; {
	case c == '{':
		segs := scan.Split(seg)
		defer scan.Recycle(segs)
		if len(segs)%2 != 0 {
			return nil
		}
		m := make(map[string]interface{}, len(segs)/2)
		for i := 0; i+1 < len(segs); i += 2 {
			m[decodeString(segs[i])] = decodeDynamic(segs[i+1])
		}
		return m

	case c == '[':
		segs := scan.Split(seg)
		defer scan.Recycle(segs)
		out := make([]interface{}, len(segs))
		for i := range segs {
			out[i] = decodeDynamic(segs[i])
		}
		return out

	case c == '"':
		return scan.Unquote(seg)

	case c == '-' || (c >= '0' && c <= '9'):
		if strings.ContainsRune(seg, '.') {
			if f, err := strconv.ParseFloat(seg, 64); err == nil {
				return f
			}
			return nil
		}
		if n, err := strconv.ParseInt(seg, 10, 64); err == nil {
			if n >= math.MinInt32 && n <= math.MaxInt32 {
				return int32(n)
			}
			return n
		}
		if f, err := strconv.ParseFloat(seg, 64); err == nil {
			return f
		}
		return nil

	case strings.EqualFold(seg, "true"):
		return true

	case strings.EqualFold(seg, "false"):
		return false

	default:
		return nil
	}
}

// decodeString unquotes a quoted segment; bare text passes through verbatim.
// Special value types route through here as well, since their canonical wire
// form is a quoted literal.
func decodeString(seg string) string {
	if strings.HasPrefix(seg, `"`) {
		return scan.Unquote(seg)
	}
	return seg
}

func isUintKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
