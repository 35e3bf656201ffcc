// Package config models the declarative field configuration consumed by the
// scaffolder. Configuration is a tree of ordered mappings, sequences and
// scalars; order matters because it becomes the rendering order of tabs and
// fields, so documents are decoded through the yaml.v3 node API instead of
// plain Go maps. A Store indexes the `cms_fields` setting of every object type
// found in a directory of YAML/JSON documents.
package config
