package pocogen

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var docEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// genCSharp renders decls as partial classes in the namespace ns.
func (cfg *Config) genCSharp(ns string, decls []Decl) []byte {
	var buf bytes.Buffer

	io.WriteString(&buf, "using System.Collections.Generic;\n")
	io.WriteString(&buf, "using System.Xml.Serialization;\n")
	fmt.Fprintf(&buf, "namespace %s;\n", ns)

	for _, d := range decls {
		io.WriteString(&buf, "\n")
		writeSummary(&buf, "", d.Doc)
		fmt.Fprintf(&buf, "public partial class %s {\n", d.Name)
		for _, m := range d.Members {
			io.WriteString(&buf, "\n")
			writeSummary(&buf, "\t", m.Doc)
			if m.XMLName != "" {
				fmt.Fprintf(&buf, "\t[XmlElement(%s)]\n", strconv.Quote(m.XMLName))
			}
			init := ""
			if m.Target.Complex() {
				init = " = new();"
			}
			fmt.Fprintf(&buf, "\tpublic %s %s {get;set;}%s\n",
				m.Target.PropertyTypeName(m.List), m.Name, init)
		}
		io.WriteString(&buf, "}\n")
	}
	return buf.Bytes()
}

// writeSummary writes doc as an XML documentation comment. Blank
// documentation is omitted.
func writeSummary(w io.Writer, indent, doc string) {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return
	}
	lines := strings.Split(doc, "\n")
	if len(lines) == 1 {
		fmt.Fprintf(w, "%s/// <summary>%s</summary>\n", indent, docEscaper.Replace(doc))
		return
	}
	fmt.Fprintf(w, "%s/// <summary>\n", indent)
	for _, line := range lines {
		if line = strings.TrimSpace(line); line == "" {
			fmt.Fprintf(w, "%s///\n", indent)
			continue
		}
		fmt.Fprintf(w, "%s/// %s\n", indent, docEscaper.Replace(line))
	}
	fmt.Fprintf(w, "%s/// </summary>\n", indent)
}
