package placid

import (
	"fmt"
	"reflect"

	"github.com/placidjson/placid/internal/scan"
)

// Unmarshal parses JSON text into the value pointed to by v, resolving
// members by runtime type introspection. Malformed input never fails:
// any shape mismatch degrades to absence (pointer targets) or a zero
// value (value targets) at the smallest enclosing scope, preserving siblings
// already resolved.
//
// The only errors returned are fatal ones with no sensible default: a nil or
// non-pointer target, or a (possibly nested) target of a non-empty interface
// type, which the codec cannot construct.
func Unmarshal(data []byte, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("placid: target must be a non-nil pointer, got %T", v)
	}

	_, err := decodeValue(scan.Condense(data), rv.Elem())
	return err
}

// Decode parses JSON text with no static target type, producing the dynamic
// value graph: map[string]interface{} for objects, []interface{} for arrays,
// and bool, int32, int64, float64, string or nil leaves.
func Decode(data []byte) interface{} {
	return decodeDynamic(scan.Condense(data))
}
