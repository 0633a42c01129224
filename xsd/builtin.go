package xsd

import "strings"

// The primitive types of XML Schema that have a direct equivalent
// among the built-in C# types, keyed by lowercase local name.
var builtinTbl = map[string]string{
	"string":        "string",
	"unsignedlong":  "ulong",
	"unsignedbyte":  "byte",
	"unsignedint":   "uint",
	"unsignedshort": "ushort",
	"short":         "short",
	"long":          "long",
	"byte":          "sbyte",
	"int":           "int",
}

// LocalName returns the part of a qualified name following the
// first colon, or qname itself if it has no prefix.
func LocalName(qname string) string {
	if i := strings.Index(qname, ":"); i >= 0 {
		return qname[i+1:]
	}
	return qname
}

// MapType maps an XML Schema type token such as "xs:unsignedInt" to
// the equivalent C# type. Matching is case-insensitive and ignores the
// namespace prefix. Names that are not built-in types are assumed to
// name a type declared elsewhere and pass through with their case
// kept, but always without their prefix: "tns:AddressType" maps to
// "AddressType", since a prefix is not part of a valid identifier.
func MapType(token string) string {
	return Lookup(builtinTbl, token)
}

// Lookup maps a type token through tbl, a table keyed by lowercase
// local name. Unknown names are returned without their prefix.
func Lookup(tbl map[string]string, token string) string {
	local := LocalName(token)
	if t, ok := tbl[strings.ToLower(local)]; ok {
		return t
	}
	return local
}
