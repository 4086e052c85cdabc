// Package schemadoc reads JSON Schema documents and describes their top-level properties.
//
// Only a handful of keys are interpreted ($id, $schema, type, properties and items),
// everything else in a document is kept opaque.
package schemadoc
