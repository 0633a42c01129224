package gen

import (
	"go/ast"
	"strings"
	"testing"
)

func TestPublic(t *testing.T) {
	tests := map[string]string{
		"city":    "City",
		"City":    "City",
		"_hidden": "X_hidden",
		"9lives":  "X9lives",
	}
	for in, want := range tests {
		if got := Public(in).Name; got != want {
			t.Errorf("Public(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCommentGroup(t *testing.T) {
	if g := CommentGroup("", "  \n "); g != nil {
		t.Errorf("blank comments: got %d lines", len(g.List))
	}
	g := CommentGroup("\n  first\n\n  second  \n\n")
	var lines []string
	for _, c := range g.List {
		lines = append(lines, c.Text)
	}
	if got := strings.Join(lines, "|"); got != "// first|//|// second" {
		t.Errorf("got %s", got)
	}
}

func TestFormattedSource(t *testing.T) {
	decl := TypeDecl(Public("point"), Struct(
		ast.NewIdent("X"), ast.NewIdent("int32"), String(`xml:"x"`),
		ast.NewIdent("Tags"), Slice(ast.NewIdent("string")), nil,
	))
	decl.Doc = CommentGroup("A point on a plane.")
	file := PackageDoc(&ast.File{Name: ast.NewIdent("geo"), Decls: []ast.Decl{decl}},
		"Package geo is generated.")

	out, err := FormattedSource(file)
	if err != nil {
		t.Fatal(err)
	}
	src := string(out)
	for _, want := range []string{
		"// Package geo is generated.\npackage geo\n",
		"// A point on a plane.\ntype Point struct {",
		"X    int32 `xml:\"x\"`",
		"Tags []string",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("missing %q in\n%s", want, src)
		}
	}
}
