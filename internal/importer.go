package internal

import (
	"fmt"
	"strings"
)

// Importer reads product data from an external file for bulk loading
// into the ledger.
type Importer interface {
	Import(path string) ([]Product, error)
}

// ImporterFunc is a function that implements Importer
type ImporterFunc func(path string) ([]Product, error)

func (f ImporterFunc) Import(path string) ([]Product, error) {
	return f(path)
}

// importers is the registry of available importers
var importers = map[string]Importer{}

// RegisterImporter registers an importer with the given format name
func RegisterImporter(format string, imp Importer) {
	importers[format] = imp
}

// GetImporter returns the importer for the given format
func GetImporter(format string) (Importer, error) {
	imp, ok := importers[format]
	if !ok {
		return nil, fmt.Errorf("unknown import format: %s (available: %v)", format, AvailableFormats())
	}
	return imp, nil
}

// AvailableFormats returns a list of registered import formats
func AvailableFormats() []string {
	var formats []string
	for name := range importers {
		formats = append(formats, name)
	}
	return formats
}

// ImporterForPath picks an importer from the file extension.
func ImporterForPath(path string) (Importer, error) {
	idx := strings.LastIndex(path, ".")
	if idx == -1 || idx == len(path)-1 {
		return nil, fmt.Errorf("cannot detect import format of %q (available: %v)", path, AvailableFormats())
	}
	return GetImporter(strings.ToLower(path[idx+1:]))
}
