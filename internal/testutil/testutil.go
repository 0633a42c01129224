// Package testutil contains common utility functions for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Schema wraps body in an <xs:schema> element declaring the xs
// prefix and a tns prefix for http://example.org/ns.
func Schema(body string) string {
	return `<?xml version="1.0" encoding="utf-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
           xmlns:tns="http://example.org/ns"
           targetNamespace="http://example.org/ns"
           elementFormDefault="qualified">
` + body + `
</xs:schema>
`
}

// WriteFile writes data to name inside dir and returns the path of
// the file. The test fails if the file cannot be written.
func WriteFile(t testing.TB, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

// Diff returns a line-oriented rendering of the differences between
// want and got, or the empty string if they are equal.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	return dmp.DiffPrettyText(diffs)
}
