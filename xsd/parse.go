package xsd

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// ParseFile opens the named schema document and parses it with Parse.
func ParseFile(filename string) ([]*Element, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	roots, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return roots, nil
}

// Parse reads a schema document and returns its top-level element
// and attribute declarations. Declarations nested inside another
// declaration, at any depth, are added to the Children of the nearest
// enclosing declaration.
//
// The document is consumed in a single pass. The only lookahead is
// the token following a <documentation> tag, which is taken as the
// documentation text when it is character data.
//
// Names are reduced to the characters [A-Za-z0-9_]. A declaration
// whose name has none of them, such as name="名前", cannot be given an
// identifier and Parse returns a *ParseError, even though such names
// are valid XML Schema.
func Parse(r io.Reader) ([]*Element, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	var (
		b       builder
		pending xml.Token
	)
	for {
		tok := pending
		pending = nil
		if tok == nil {
			var err error
			if tok, err = d.Token(); err == io.EOF {
				break
			} else if err != nil {
				return nil, err
			}
		}

		switch tok := tok.(type) {
		case xml.StartElement:
			if err := b.start(tok.Copy()); err != nil {
				return nil, err
			}
			if tok.Name.Local != "documentation" {
				continue
			}
			next, err := d.Token()
			if err == io.EOF {
				return b.roots, nil
			} else if err != nil {
				return nil, err
			}
			if text, ok := next.(xml.CharData); ok {
				b.document(string(text))
			} else {
				pending = next
			}
		case xml.EndElement:
			b.end()
		}
	}
	return b.roots, nil
}

type builder struct {
	roots  []*Element
	cursor *Element
	// start tags that have not been closed yet
	open []xml.StartElement
}

func (b *builder) errorf(format string, v ...interface{}) error {
	path := make([]xml.StartElement, len(b.open))
	copy(path, b.open)
	return &ParseError{Path: path, Err: fmt.Errorf(format, v...)}
}

func (b *builder) end() {
	if len(b.open) > 0 {
		b.open = b.open[:len(b.open)-1]
	}
}

func (b *builder) start(tag xml.StartElement) error {
	depth := len(b.open)
	b.open = append(b.open, tag)

	// Declarations that are no longer open stay behind in the tree.
	for b.cursor != nil && depth <= b.cursor.depth {
		b.cursor = b.cursor.Parent
	}

	switch tag.Name.Local {
	case "element":
		el, err := b.declare(tag, depth)
		if err != nil {
			return err
		}
		if ref := attr(tag, "ref"); ref == "" {
			el.Type = attr(tag, "type")
		}
		list, err := parseMaxOccurs(attr(tag, "maxOccurs"))
		if err != nil {
			return b.errorf("invalid maxOccurs: %w", err)
		}
		el.List = list
	case "attribute":
		el, err := b.declare(tag, depth)
		if err != nil {
			return err
		}
		el.Attribute = true
		if ref := attr(tag, "ref"); ref == "" {
			el.Type = attr(tag, "type")
		}
	case "restriction":
		if base := attr(tag, "base"); base != "" && b.cursor != nil {
			b.cursor.Type = base
		}
	}
	return nil
}

// declare attaches a new Element to the cursor, or adds it to the
// roots if there is no cursor, and moves the cursor to it.
func (b *builder) declare(tag xml.StartElement, depth int) (*Element, error) {
	name := attr(tag, "name")
	ref := attr(tag, "ref")
	if ref != "" {
		name = LocalName(ref)
	}
	if Identifier(name) == "" {
		return nil, b.errorf("<%s> has no usable name", tag.Name.Local)
	}
	el := newElement(b.cursor, name, depth)
	el.Reference = ref != ""
	if el.Parent == nil {
		b.roots = append(b.roots, el)
	}
	b.cursor = el
	return el, nil
}

func (b *builder) document(text string) {
	if b.cursor != nil {
		b.cursor.Doc = text
	}
}

// parseMaxOccurs reports whether a maxOccurs value allows more than
// one occurrence.
func parseMaxOccurs(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	if strings.EqualFold(s, "unbounded") {
		return true, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return false, err
	}
	return n > 1, nil
}
