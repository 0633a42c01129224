package xsd

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// A ParseError is returned when a schema declaration cannot be
// interpreted. Path holds the open tags leading to the declaration,
// outermost first.
type ParseError struct {
	Path []xml.StartElement
	Err  error
}

func (err *ParseError) Error() string {
	breadcrumbs := make([]string, 0, len(err.Path))
	for _, tag := range err.Path {
		piece := tag.Name.Local
		if name := attr(tag, "name"); name != "" {
			piece = fmt.Sprintf("%s(%s)", piece, name)
		} else if ref := attr(tag, "ref"); ref != "" {
			piece = fmt.Sprintf("%s(ref=%s)", piece, ref)
		}
		breadcrumbs = append(breadcrumbs, piece)
	}
	return "Error at " + strings.Join(breadcrumbs, ">") + ": " + err.Err.Error()
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// attr returns the value of the unqualified attribute local, or the
// empty string.
func attr(tag xml.StartElement, local string) string {
	for _, a := range tag.Attr {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// Walk calls fn for each Element in the forest, parents before their
// children. If fn returns false, the children of that Element are
// skipped.
func Walk(roots []*Element, fn func(*Element) bool) {
	for _, el := range roots {
		if fn(el) {
			Walk(el.Children, fn)
		}
	}
}

// Flatten returns every Element in the forest, attributes included,
// in pre-order.
func Flatten(roots []*Element) []*Element {
	var result []*Element
	Walk(roots, func(el *Element) bool {
		result = append(result, el)
		return true
	})
	return result
}
