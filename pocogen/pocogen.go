package pocogen // import "github.com/CognitoIQ/xsd2poco/pocogen"

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/CognitoIQ/xsd2poco/xsd"
)

// A Decl is a type declaration generated for a complex element.
type Decl struct {
	// Name of the declared type.
	Name string
	Doc  string
	// Members in the order their elements were declared.
	Members []Member
	// The element the type is generated for.
	Element *xsd.Element
}

// A Member is a property of a declared type.
type Member struct {
	// Property name, pluralized for lists.
	Name string
	// The element name to use when serializing the member. Empty if
	// the member is not a list and its name was not changed.
	XMLName string
	Doc     string
	List    bool
	// The declaration backing the member. For references, this is
	// the element the reference resolves to.
	Target *xsd.Element
}

// Declarations returns a Decl for every complex node in the forest
// that is not a reference, in pre-order. An attribute without a type
// is complex and gets a Decl of its own. Members are generated for all
// child elements; attribute children are skipped. An
// error is returned if a child reference does not resolve to exactly
// one declaration.
func Declarations(roots []*xsd.Element) ([]Decl, error) {
	var result []Decl
	flat := xsd.Flatten(roots)

	for _, el := range flat {
		if !el.Complex() || el.Reference {
			continue
		}
		decl := Decl{Name: el.TypeName(), Doc: el.Doc, Element: el}
		for _, child := range el.Children {
			if child.Attribute {
				continue
			}
			target, err := xsd.Resolve(flat, child)
			if err != nil {
				return nil, fmt.Errorf("declare %s: %w", el.Name, err)
			}
			// The same element may be repeated in one place and
			// single in another.
			list := target.List
			if child.Reference {
				list = child.List
			}
			m := Member{
				Name:   xsd.PropertyName(target.Name, list),
				Doc:    target.Doc,
				List:   list,
				Target: target,
			}
			if list || target.NameManipulated() {
				m.XMLName = target.OriginalName
			}
			decl.Members = append(decl.Members, m)
		}
		result = append(result, decl)
	}
	return result, nil
}

// BaseName returns the name of a file without its directory and
// extension.
func BaseName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// GenSource reads a schema document from r and returns the generated
// source. The filename is used to name the generated namespace or
// package.
func (cfg *Config) GenSource(filename string, r io.Reader) ([]byte, error) {
	roots, err := xsd.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg.genSource(filename, roots)
}

func (cfg *Config) genSource(filename string, roots []*xsd.Element) ([]byte, error) {
	decls, err := Declarations(roots)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	base := BaseName(filename)
	cfg.debugf("%s: %d declarations from %d top-level elements", filename, len(decls), len(roots))
	for _, d := range decls {
		cfg.debugf("declare %s with %d members", d.Name, len(d.Members))
	}

	switch cfg.lang {
	case CSharp:
		return cfg.genCSharp(cfg.module(base), decls), nil
	case Go:
		return cfg.genGo(base, decls)
	}
	return nil, fmt.Errorf("unsupported language %s", cfg.lang)
}

// OutputFile returns the name of the file generated for the schema
// filename.
func (cfg *Config) OutputFile(filename string) string {
	dir := cfg.outdir
	if dir == "" {
		dir = filepath.Dir(filename)
	}
	return filepath.Join(dir, BaseName(filename)+cfg.lang.Ext())
}

// GenFile converts the schema in filename and writes the result to
// the file named by OutputFile. The name of the written file is
// returned.
func (cfg *Config) GenFile(filename string) (string, error) {
	cfg.logf("Converting %s..", filepath.Base(filename))
	roots, err := xsd.ParseFile(filename)
	if err != nil {
		return "", err
	}
	src, err := cfg.genSource(filename, roots)
	if err != nil {
		return "", err
	}
	output := cfg.OutputFile(filename)
	if err := os.WriteFile(output, src, 0666); err != nil {
		return "", err
	}
	cfg.debugf("wrote %s", output)
	return output, nil
}

// GenFiles converts each schema file in turn. It stops at the first
// file that cannot be converted; files converted before it are kept.
func (cfg *Config) GenFiles(filenames ...string) error {
	for _, name := range filenames {
		if _, err := cfg.GenFile(name); err != nil {
			return err
		}
	}
	return nil
}
