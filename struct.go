package placid

import (
	"reflect"
	"strings"

	"github.com/placidjson/placid/internal/scan"
	"github.com/placidjson/placid/internal/serde"
)

// decodeStruct populates a freshly zeroed struct from an object-shaped
// segment. Default-value directives apply before any JSON pair so the
// baseline is independent of input key order; member resolution is
// case-insensitive; a matched but non-writable member is silently skipped;
// unmatched keys are ignored for forward compatibility. An odd segment count
// yields the instance as constructed, not an error.
func decodeStruct(seg string, dst reflect.Value) (bool, error) {
	if seg[0] != '{' {
		return false, nil
	}

	fields := serde.GetFields(dst.Type())
	for _, f := range fields.All() {
		if !f.HasDefault || !f.Writable {
			continue
		}
		if err := applyDefault(f.DefaultText, dst.FieldByIndex(f.Index)); err != nil {
			return false, err
		}
	}

	segs := scan.Split(seg)
	defer scan.Recycle(segs)
	if len(segs)%2 != 0 {
		return true, nil
	}

	for i := 0; i+1 < len(segs); i += 2 {
		key := segs[i]
		if strings.HasPrefix(key, `"`) {
			key = scan.Unquote(key)
		}

		f, ok := fields.FieldByName(key)
		if !ok || !f.Writable {
			continue
		}
		if _, err := decodeValue(segs[i+1], dst.FieldByIndex(f.Index)); err != nil {
			return false, err
		}
	}
	return true, nil
}

// applyDefault converts a default-value directive from its tag text to the
// member's type through the normal dispatch. String members take the text
// verbatim; the directive text is not JSON.
func applyDefault(text string, dst reflect.Value) error {
	if classify(dst.Type()) == classString {
		dst.SetString(text)
		return nil
	}
	_, err := decodeValue(text, dst)
	return err
}
