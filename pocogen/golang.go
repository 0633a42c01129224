package pocogen

import (
	"fmt"
	"go/ast"
	"strings"

	"github.com/CognitoIQ/xsd2poco/internal/gen"
	"github.com/CognitoIQ/xsd2poco/xsd"
)

// Go equivalents of the primitive XML Schema types, keyed by
// lowercase local name.
var goBuiltinTbl = map[string]string{
	"string":        "string",
	"unsignedlong":  "uint64",
	"unsignedbyte":  "uint8",
	"unsignedint":   "uint32",
	"unsignedshort": "uint16",
	"short":         "int16",
	"long":          "int64",
	"byte":          "int8",
	"int":           "int32",
}

// packageName derives a Go package name from the base name of a
// schema file.
func packageName(base string) string {
	name := strings.ToLower(xsd.Identifier(base))
	if name == "" || name[0] == '_' || (name[0] >= '0' && name[0] <= '9') {
		name = "x" + name
	}
	return gen.Sanitize(name)
}

// goType returns the type expression of a field holding el.
func goType(el *xsd.Element, asList bool) ast.Expr {
	if !el.Complex() {
		return ast.NewIdent(xsd.Identifier(xsd.Lookup(goBuiltinTbl, el.Type)))
	}
	ident := gen.Public(el.Name)
	if asList {
		return gen.Slice(ident)
	}
	return ident
}

// genGo renders decls as struct types in a package named after the
// schema file. Complex members are struct values rather than
// pointers, so that they are never nil.
func (cfg *Config) genGo(base string, decls []Decl) ([]byte, error) {
	pkg := packageName(base)
	file := &ast.File{Name: ast.NewIdent(pkg)}
	gen.PackageDoc(file, fmt.Sprintf("Package %s contains types generated from the XML schema %s.",
		pkg, cfg.module(base)))

	for _, d := range decls {
		var fields []ast.Expr
		var docs []*ast.CommentGroup
		for _, m := range d.Members {
			name := gen.Public(m.Name)
			var tag ast.Expr
			// encoding/xml matches elements by field name unless
			// told otherwise.
			if name.Name != m.Target.OriginalName {
				tag = gen.String(fmt.Sprintf(`xml:"%s"`, m.Target.OriginalName))
			}
			typ := goType(m.Target, m.List)
			cfg.debugf("%s.%s: %s", d.Name, name.Name, gen.ExprString(typ))
			fields = append(fields, name, typ, tag)
			docs = append(docs, gen.CommentGroup(m.Doc))
		}
		expr := gen.Struct(fields...)
		for i, field := range expr.Fields.List {
			field.Doc = docs[i]
		}
		decl := gen.TypeDecl(gen.Public(d.Name), expr)
		decl.Doc = gen.CommentGroup(d.Doc)
		file.Decls = append(file.Decls, decl)
	}
	return gen.FormattedSource(file)
}
