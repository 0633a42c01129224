// Package commandline contains helpers for resolving the schema
// documents named on the command line.
package commandline // import "github.com/CognitoIQ/xsd2poco/internal/commandline"

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrNoSource is returned when neither a file nor a directory
	// was given.
	ErrNoSource = errors.New("provide one of the parameters directory or file")
	// ErrBothSources is returned when both a file and a directory
	// were given.
	ErrBothSources = errors.New("provide only one of the parameters directory or file")
)

// SchemaPattern matches the schema documents converted when a
// directory is given.
const SchemaPattern = "*.xsd"

// Sources returns the schema documents to convert. Exactly one of
// file and dir must be non-empty, and it must exist. For a directory,
// the files directly inside it matching SchemaPattern are returned in
// lexical order.
func Sources(file, dir string) ([]string, error) {
	switch {
	case file != "" && dir != "":
		return nil, ErrBothSources
	case file == "" && dir == "":
		return nil, ErrNoSource
	case file != "":
		fi, err := os.Stat(file)
		if err != nil {
			return nil, err
		}
		if fi.IsDir() {
			return nil, fmt.Errorf("%s is a directory", file)
		}
		return []string{file}, nil
	}

	fi, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	matches, err := filepath.Glob(filepath.Join(dir, SchemaPattern))
	if err != nil {
		return nil, err
	}
	result := matches[:0]
	for _, name := range matches {
		if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
			result = append(result, name)
		}
	}
	return result, nil
}
