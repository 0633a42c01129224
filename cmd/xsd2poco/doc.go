/*
xsd2poco is a tool to generate plain data classes from XML Schema
documents.

Usage:

	xsd2poco (-f file.xsd | -d dir) [-n namespace] [-l lang] [-o dir] [-v]

Exactly one of -f and -d must be given. With -d, every *.xsd file
directly inside the directory is converted, one after the other; the
first file that fails to convert stops the run.

For each schema, xsd2poco writes a source file with the same base name
next to the schema, or into the directory given with -o. By default
the output is C#: a file-scoped namespace named after the schema file,
prefixed with the -n namespace if one is given, and one partial class
per complex element. The -l go flag generates Go struct types with
encoding/xml field tags instead.

Only a subset of XML Schema is understood: elements, attributes,
element references, maxOccurs and the base type of restrictions.
Attributes are read but not turned into members.

The xsd2poco command may be used with the go generate command:

	//go:generate xsd2poco -l go -f schema.xsd
*/
package main
