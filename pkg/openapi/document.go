package openapi

import "errors"

// Document is a loaded OpenAPI payload together with the Source it came
// from. Parsing happens later, in a Parser.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument copies raw into a Document. Both arguments are required.
func NewDocument(src Source, raw []byte) (Document, error) {
	switch {
	case src == nil:
		return Document{}, errors.New("openapi: document source is nil")
	case len(raw) == 0:
		return Document{}, errors.New("openapi: document payload is empty")
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// MustNewDocument is NewDocument for fixtures; it panics on error.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

func (d Document) Source() Source { return d.source }

// Raw returns a copy of the payload.
func (d Document) Raw() []byte { return append([]byte(nil), d.raw...) }

// Location is the source location, or "" for the zero Document.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}
