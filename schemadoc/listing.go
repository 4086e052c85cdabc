package schemadoc

import (
	"fmt"
	"io"
)

// Entry is a single described property of a document
type Entry struct {
	Name string
	Type string
}

func (e Entry) String() string {
	return fmt.Sprintf("%q: type - %s", e.Name, e.Type)
}

// Listing describes the top level of a document
type Listing struct {
	// DocumentType is the declared type of the document
	DocumentType string
	// Entries holds one entry per property for object documents, in declaration order
	Entries []Entry
	// ItemsType is set for array documents
	ItemsType string
}

// Describe builds the listing of a document.
// Returns ErrNotSchemaDocument when the document declares no type, or object properties that are not an object.
func Describe(doc *Document) (*Listing, error) {
	docType, ok := doc.Type()
	if !ok {
		return nil, ErrNotSchemaDocument
	}

	listing := &Listing{DocumentType: docType}
	switch docType {
	case TypeObject:
		properties, err := doc.Properties()
		if err != nil {
			return nil, err
		}
		if properties == nil {
			break
		}
		listing.Entries = make([]Entry, 0, properties.Len())
		for pair := properties.Oldest(); pair != nil; pair = pair.Next() {
			propType, ok := subSchemaType(pair.Value)
			if !ok {
				propType = Undefined
			}
			listing.Entries = append(listing.Entries, Entry{Name: pair.Key, Type: propType})
		}
	case TypeArray:
		itemsType, ok := doc.ItemsType()
		if !ok {
			itemsType = Undefined
		}
		listing.ItemsType = itemsType
	}

	return listing, nil
}

// Lines renders the listing, one string per output line
func (l *Listing) Lines() []string {
	switch l.DocumentType {
	case TypeObject:
		lines := make([]string, len(l.Entries))
		for i, entry := range l.Entries {
			lines[i] = entry.String()
		}
		return lines
	case TypeArray:
		return []string{fmt.Sprintf("<document>:type = array, item:type = %s", l.ItemsType)}
	default:
		return []string{fmt.Sprintf("<document>:type = %s", l.DocumentType)}
	}
}

// Write prints the listing followed by a blank line
func (l *Listing) Write(w io.Writer) error {
	for _, line := range l.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// comparable returns the entries a diff is computed over.
// Non-object documents are compared as a single pseudo-property.
func (l *Listing) comparable() []Entry {
	switch l.DocumentType {
	case TypeObject:
		return l.Entries
	case TypeArray:
		return []Entry{{Name: "<document>", Type: TypeArray}, {Name: "<items>", Type: l.ItemsType}}
	default:
		return []Entry{{Name: "<document>", Type: l.DocumentType}}
	}
}
