// Package pocogen generates class declarations from xml schema
// documents.
//
// The pocogen package turns every complex element of a schema into a
// plain data class: C# partial classes annotated for XmlSerializer by
// default, or Go structs tagged for encoding/xml. Element references
// are resolved by name within the same document, repeated elements
// become lists, and schema documentation is carried over as comments.
package pocogen
