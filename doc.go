// Package placid is a forgiving, type-directed JSON codec. It converts JSON
// text into statically-typed Go values (and back) using runtime type
// introspection, with no code generation, and it never panics or errors on
// malformed input: shape mismatches degrade to absence or a zero value at the
// smallest enclosing scope while siblings already resolved are preserved.
//
// Decoding is driven by the target type. Scalars, pointers (nullable
// wrappers), registered enumerations, time.Time, time.Duration, uuid.UUID,
// big.Int and big.Float, arrays, slices, maps and structs are all handled;
// an interface{} target produces a dynamic graph of maps, slices and scalar
// leaves. Struct members are matched case-insensitively and honor json:"..."
// rename and exclusion tags plus default:"..." directives.
//
// Encoding mirrors the same categories and never fails. Output is compact;
// MarshalIndent applies a purely textual tab-indentation pass.
package placid
