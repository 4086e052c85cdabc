package schemadoc

import (
	"bytes"
	"encoding/json"

	"github.com/friendsofgo/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Undefined is shown wherever a document does not declare a type
const Undefined = "<undefined>"

// ErrNotSchemaDocument is returned for documents without a top-level type
var ErrNotSchemaDocument = errors.New("not a JSON-Schema document")

// ParseError is returned when a document is not valid JSON
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

const (
	TypeObject = "object"
	TypeArray  = "array"
)

// Document is a parsed JSON Schema document
type Document struct {
	RawID         json.RawMessage `json:"$id,omitempty"`
	RawSchema     json.RawMessage `json:"$schema,omitempty"`
	RawType       json.RawMessage `json:"type,omitempty"`
	RawProperties json.RawMessage `json:"properties,omitempty"`
	Items         json.RawMessage `json:"items,omitempty"`

	// Instance is the full document as decoded by the validator, numbers are kept as json.Number
	Instance any `json:"-"`
	// Raw is the JSON text the document was parsed from
	Raw []byte `json:"-"`
}

// Parse decodes a JSON document.
// Syntax errors are returned as *ParseError, a top-level value that is not an object wraps ErrNotSchemaDocument.
func Parse(data []byte) (*Document, error) {
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	if _, ok := instance.(map[string]any); !ok {
		return nil, errors.Wrap(ErrNotSchemaDocument, "top-level value is not an object")
	}

	doc := Document{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	doc.Instance = instance
	doc.Raw = data

	return &doc, nil
}

// ID returns the $id of the document
func (d *Document) ID() (string, bool) {
	return rawString(d.RawID)
}

// SchemaRef returns the $schema of the document
func (d *Document) SchemaRef() (string, bool) {
	return rawString(d.RawSchema)
}

// Type returns the declared type.
// Types that are not a plain string, like ["string", "null"], are returned as compact JSON.
func (d *Document) Type() (string, bool) {
	return typeString(d.RawType)
}

// Properties returns the declared properties in declaration order, nil when there are none.
// A properties value that is not an object wraps ErrNotSchemaDocument.
func (d *Document) Properties() (*orderedmap.OrderedMap[string, json.RawMessage], error) {
	if len(d.RawProperties) == 0 || bytes.Equal(d.RawProperties, []byte("null")) {
		return nil, nil
	}

	if !bytes.HasPrefix(bytes.TrimSpace(d.RawProperties), []byte("{")) {
		return nil, errors.Wrap(ErrNotSchemaDocument, "properties is not an object")
	}

	properties := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(d.RawProperties, properties); err != nil {
		return nil, errors.Wrap(err, "failed to read properties")
	}
	return properties, nil
}

// ItemsType returns the type of the items sub-schema
func (d *Document) ItemsType() (string, bool) {
	return subSchemaType(d.Items)
}

// IDOrUndefined is used in banners, where a missing $id is not an error
func (d *Document) IDOrUndefined() string {
	if id, ok := d.ID(); ok {
		return id
	}
	return Undefined
}

func rawString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func typeString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	if s, ok := rawString(raw); ok {
		return s, true
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return string(raw), true
	}
	return compact.String(), true
}

// subSchemaType reads "type" from a sub-schema. Boolean schemas have no type
func subSchemaType(raw json.RawMessage) (string, bool) {
	var sub struct {
		Type json.RawMessage `json:"type"`
	}
	if len(raw) == 0 || json.Unmarshal(raw, &sub) != nil {
		return "", false
	}
	return typeString(sub.Type)
}
