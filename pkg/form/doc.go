// Package form provides the field objects the scaffolder assembles: leaf
// inputs, headings, relation grids, composite containers and tabs, plus the
// ordered FieldList that holds them.
//
// Field types declare the configuration methods they support through a
// MethodSet, so callers can apply declarative method calls such as
//
//	methods:
//	  setDescription: "Shown under the input"
//	  setAttribute: [placeholder, "Untitled"]
//
// by name without reflection. Method names are matched case-insensitively.
// Field types are resolved by name through a Registry which also records
// whether a type is composite-capable.
package form
