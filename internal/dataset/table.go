package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrMalformedInput matches every error caused by an input table that cannot
// be used: unreadable, unparseable or missing a required column.
var ErrMalformedInput = errors.New("malformed input")

type MissingColumnError struct {
	Column string
	Header []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column %q (have %s)", e.Column, strings.Join(e.Header, ", "))
}

func (e *MissingColumnError) Unwrap() error {
	return ErrMalformedInput
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}

// Table is a header plus rows of string cells. Every row has len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// Column returns the index of name in the header.
func (t *Table) Column(name string) (int, error) {
	for i, h := range t.Header {
		if h == name {
			return i, nil
		}
	}
	return -1, &MissingColumnError{Column: name, Header: t.Header}
}

// SetColumn overwrites column name with values, appending it when absent.
func (t *Table) SetColumn(name string, values []string) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("column %q has %d values for %d rows", name, len(values), len(t.Rows))
	}

	idx, err := t.Column(name)
	if err != nil {
		t.Header = append(t.Header, name)
		for i := range t.Rows {
			t.Rows[i] = append(t.Rows[i], values[i])
		}
		return nil
	}
	for i := range t.Rows {
		t.Rows[i][idx] = values[i]
	}
	return nil
}

// Read loads a table, choosing the reader by file extension.
func Read(path string) (*Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ReadCSV(path, ',')
	case ".tsv":
		return ReadCSV(path, '\t')
	case ".json":
		return ReadJSON(path)
	case ".xml", ".rss", ".atom":
		return ReadFeed(path)
	default:
		return nil, malformed("unsupported input format %q", ext)
	}
}
