// Package xsd builds a tree of elements from XML Schema documents.
//
// The xsd package reads a practical subset of the XML Schema standard:
// element and attribute declarations, element references, maxOccurs
// based lists, restrictions of a base type and documentation. The
// document is read as a flat stream of tokens; nesting is reconstructed
// from the depth at which each declaration appears, so intermediate
// scaffolding such as <complexType> or <sequence> is skipped
// transparently. Choice groups, unions, substitution groups, imports and
// enumerations are not interpreted.
package xsd // import "github.com/CognitoIQ/xsd2poco/xsd"

import (
	"fmt"
	"regexp"
	"strings"
)

var identifierRe = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

// Identifier removes all characters from s that may not appear in
// an identifier.
func Identifier(s string) string {
	return identifierRe.ReplaceAllString(s, "")
}

// An Element is a single element or attribute declaration in a schema.
// An Element is complex if it has no primitive type of its own; its shape
// is then defined by its children.
type Element struct {
	// Name is OriginalName stripped of any character outside
	// [A-Za-z0-9_].
	Name string
	// The name as it appeared in the schema document.
	OriginalName string
	// The raw type token, such as "xs:string". Empty for complex
	// elements.
	Type string
	// True if the element was declared with <attribute>.
	Attribute bool
	// True if the element was declared with a ref="..." attribute
	// and stands in for a declaration elsewhere in the schema.
	Reference bool
	// True if maxOccurs > 1 or maxOccurs == "unbounded".
	List bool
	// Annotations for this element, as provided by the schema author.
	Doc string
	// Child declarations, in document order.
	Children []*Element
	// The enclosing declaration. Nil for top-level declarations.
	Parent *Element

	depth int
}

// SetName sets the Name and OriginalName of the Element. An empty
// name is ignored.
func (el *Element) SetName(name string) {
	if name == "" {
		return
	}
	el.Name = Identifier(name)
	el.OriginalName = name
}

// NameManipulated returns true if characters were removed from the
// original name to form the Name of el.
func (el *Element) NameManipulated() bool {
	return el.Name != el.OriginalName
}

// Complex returns true if the element has no type token.
func (el *Element) Complex() bool {
	return el.Type == ""
}

// TypeName returns the class name of a complex Element, or the
// language type its type token maps to.
func (el *Element) TypeName() string {
	if el.Complex() {
		return el.Name
	}
	return MapType(el.Type)
}

// PropertyTypeName returns the type of a property holding el. Complex
// types are wrapped in a list when asList is true. Primitive types are
// never wrapped.
func (el *Element) PropertyTypeName(asList bool) string {
	if !el.Complex() {
		return MapType(el.Type)
	}
	if asList {
		return "List<" + el.Name + ">"
	}
	return el.Name
}

// PropertyName returns the name of a property holding el, pluralized
// if el is a list.
func (el *Element) PropertyName() string {
	return PropertyName(el.Name, el.List)
}

// PropertyName returns name, pluralized when plural is true. Names
// ending in s, x, z, ch or sh take "es"; all others take "s". This
// departs from a plain trailing "s" so that Address becomes Addresses
// rather than Addresss, at the cost of Box becoming Boxes.
func PropertyName(name string, plural bool) string {
	if !plural || name == "" {
		return name
	}
	for _, suffix := range []string{"s", "x", "z", "ch", "sh"} {
		if strings.HasSuffix(name, suffix) {
			return name + "es"
		}
	}
	return name + "s"
}

func (el *Element) String() string {
	var list, typ, attr string
	if el.List {
		list = "List of "
	}
	typ = el.Type
	if el.Complex() {
		typ = "Complex"
	}
	if el.Attribute {
		attr = " [Attribute]"
	}
	if el.Reference {
		attr += " [Reference]"
	}
	return fmt.Sprintf("%s: %s%s%s", el.Name, list, typ, attr)
}

func newElement(parent *Element, name string, depth int) *Element {
	el := &Element{Parent: parent, depth: depth}
	el.SetName(name)
	if parent != nil {
		parent.Children = append(parent.Children, el)
	}
	return el
}
