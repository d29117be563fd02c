// Package serde provides the cached per-type member tables used by the codec
// when reading and writing struct values. Tables are built once per concrete
// type and shared process-wide; concurrent first-use rebuilds are idempotent.
package serde

import (
	"reflect"
	"strings"
	"sync"
)

var fieldCache fieldCacher

type fieldCacher struct {
	cache sync.Map // reflect.Type -> *CachedFields
}

func (c *fieldCacher) Load(t reflect.Type) (*CachedFields, bool) {
	if v, ok := c.cache.Load(t); ok {
		return v.(*CachedFields), true
	}
	return nil, false
}

func (c *fieldCacher) LoadOrStore(t reflect.Type, fs *CachedFields) (*CachedFields, bool) {
	v, ok := c.cache.LoadOrStore(t, fs)
	return v.(*CachedFields), ok
}

// Field describes one settable or readable struct member together with its
// declarative metadata: the lookup/emission name (after any rename), the
// field's index path, an optional default-value directive, and whether the
// member can be written at all.
type Field struct {
	Name        string
	Index       []int
	Type        reflect.Type
	DefaultText string
	HasDefault  bool
	Writable    bool
}

// CachedFields is the member table for one struct type, in declaration order.
type CachedFields struct {
	fields       []Field
	fieldsByName map[string]int
}

// All returns the members in declaration order.
func (f *CachedFields) All() []Field {
	return f.fields
}

// FieldByName resolves a member by name. An exact match wins; otherwise the
// table is scanned case-insensitively.
func (f *CachedFields) FieldByName(name string) (Field, bool) {
	if i, ok := f.fieldsByName[name]; ok {
		return f.fields[i], ok
	}
	for _, fld := range f.fields {
		if strings.EqualFold(fld.Name, name) {
			return fld, true
		}
	}
	return Field{}, false
}

// GetFields returns the cached member table for a struct type, building it on
// first use. Members tagged json:"-" are excluded entirely; a json:"name" tag
// substitutes the lookup and emission name; a default:"text" tag records a
// default-value directive. Unexported members are kept as non-writable so the
// reader can skip them deliberately rather than fail to resolve them.
//
// Exported embedded structs without a rename are flattened breadth-first, so
// their promoted members appear in the table under their own names. A
// shallower member shadows a deeper one of the same name, folding case the
// way member resolution does. Embedded pointers and unexported embedded
// structs are not traversed.
func GetFields(t reflect.Type) *CachedFields {
	if fs, ok := fieldCache.Load(t); ok {
		return fs
	}

	fs := &CachedFields{fieldsByName: map[string]int{}}

	type level struct {
		t     reflect.Type
		index []int
	}
	current := []level{{t: t}}
	for len(current) > 0 {
		var next []level
		for _, lv := range current {
			for i := 0; i < lv.t.NumField(); i++ {
				sf := lv.t.Field(i)

				name := sf.Name
				renamed := false
				if tag, ok := sf.Tag.Lookup("json"); ok {
					tag, _, _ = strings.Cut(tag, ",")
					if tag == "-" {
						continue
					}
					if tag != "" {
						name = tag
						renamed = true
					}
				}

				index := make([]int, 0, len(lv.index)+1)
				index = append(index, lv.index...)
				index = append(index, i)

				if sf.Anonymous && !renamed && sf.Type.Kind() == reflect.Struct {
					if !sf.IsExported() {
						continue
					}
					next = append(next, level{t: sf.Type, index: index})
					continue
				}
				if _, ok := fs.FieldByName(name); ok {
					continue
				}

				fld := Field{
					Name:     name,
					Index:    index,
					Type:     sf.Type,
					Writable: sf.IsExported(),
				}
				if def, ok := sf.Tag.Lookup("default"); ok {
					fld.DefaultText = def
					fld.HasDefault = true
				}

				fs.fieldsByName[name] = len(fs.fields)
				fs.fields = append(fs.fields, fld)
			}
		}
		current = next
	}

	fs, _ = fieldCache.LoadOrStore(t, fs)
	return fs
}
