// xsdtree prints the element declarations read from XML Schema
// documents, as used by xsd2poco to generate classes.
//
// Usage:
//
//	xsdtree [-format text|json|yaml] file.xsd ...
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/CognitoIQ/xsd2poco/xsd"
)

type node struct {
	Name         string `json:"name" yaml:"name"`
	OriginalName string `json:"originalName,omitempty" yaml:"originalName,omitempty"`
	Type         string `json:"type,omitempty" yaml:"type,omitempty"`
	Attribute    bool   `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	Reference    bool   `json:"reference,omitempty" yaml:"reference,omitempty"`
	List         bool   `json:"list,omitempty" yaml:"list,omitempty"`
	Doc          string `json:"doc,omitempty" yaml:"doc,omitempty"`
	Children     []node `json:"children,omitempty" yaml:"children,omitempty"`
}

func nodes(elts []*xsd.Element) []node {
	if len(elts) == 0 {
		return nil
	}
	result := make([]node, 0, len(elts))
	for _, el := range elts {
		n := node{
			Name:      el.Name,
			Type:      el.Type,
			Attribute: el.Attribute,
			Reference: el.Reference,
			List:      el.List,
			Doc:       strings.TrimSpace(el.Doc),
			Children:  nodes(el.Children),
		}
		if el.NameManipulated() {
			n.OriginalName = el.OriginalName
		}
		result = append(result, n)
	}
	return result
}

func printText(w io.Writer, roots []*xsd.Element) error {
	var err error
	var walk func(elts []*xsd.Element, indent string)
	walk = func(elts []*xsd.Element, indent string) {
		for _, el := range elts {
			if err == nil {
				_, err = fmt.Fprintf(w, "%s%s\n", indent, el)
			}
			walk(el.Children, indent+"  ")
		}
	}
	walk(roots, "")
	return err
}

func dump(w io.Writer, format string, roots []*xsd.Element) error {
	switch format {
	case "text":
		return printText(w, roots)
	case "json":
		data, err := json.MarshalIndent(nodes(roots), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nodes(roots)); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}

func main() {
	log.SetFlags(0)
	app := &cli.App{
		Name:      "xsdtree",
		Usage:     "print the element tree read from XML Schema documents",
		ArgsUsage: "file.xsd ...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format (text, json, yaml)",
				Value: "text",
			},
		},
		Action: func(cctx *cli.Context) error {
			if cctx.NArg() < 1 {
				return errors.New("Usage: xsdtree [-format text|json|yaml] file.xsd ...")
			}
			for _, filename := range cctx.Args().Slice() {
				roots, err := xsd.ParseFile(filename)
				if err != nil {
					return err
				}
				if err := dump(os.Stdout, cctx.String("format"), roots); err != nil {
					return err
				}
			}
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
