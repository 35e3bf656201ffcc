// Package scaffold compiles declarative field configuration into an ordered
// tree of form fields.
//
// A configuration is a nested mapping. Keys holding a dot (`Root.Main`) name
// the tab subsequent fields land in when scaffolding in tabbed mode; `fields`
// keys hold ordered field descriptors; mappings with `type` and `fields`
// describe composite containers:
//
//	Root.Main:
//	  fields:
//	    - Title
//	    - h2
//	    - Details:
//	        type: FieldGroup
//	        fields: [FirstName, Surname]
//	        methods:
//	          addExtraClass: stacked
//
// Object types without configuration are handed to a Fallback generator.
package scaffold
