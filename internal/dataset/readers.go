package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienpequegnot/newsterms/internal/feed"
	"github.com/julienpequegnot/newsterms/internal/output"
)

var jsonAPI = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// FeedColumns is the header of a table read from a syndication feed.
var FeedColumns = []string{"title", "description", "content", "link", "author", "published_at", "category"}

const utf8BOM = "\uFEFF"

// ReadCSV reads a delimited file whose first record is the header. Rows with
// a different number of cells than the header are rejected.
func ReadCSV(path string, comma rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	defer f.Close()

	return ParseCSV(f, comma)
}

func ParseCSV(in io.Reader, comma rune) (*Table, error) {
	r := csv.NewReader(in)
	r.Comma = comma

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, malformed("empty table")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", ErrMalformedInput, err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	t := &Table{Header: header}
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// ReadJSON reads an array of flat objects. The header is the sorted union of
// all keys; a key missing from an object gives an empty cell.
func ReadJSON(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return ParseJSON(data)
}

func ParseJSON(data []byte) (*Table, error) {
	var records []map[string]any
	if err := jsonAPI.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: expected an array of objects: %w", ErrMalformedInput, err)
	}

	keys := make(map[string]struct{})
	for _, rec := range records {
		for k := range rec {
			keys[k] = struct{}{}
		}
	}
	header := make([]string, 0, len(keys))
	for k := range keys {
		header = append(header, k)
	}
	sort.Strings(header)

	t := &Table{Header: header, Rows: make([][]string, 0, len(records))}
	for _, rec := range records {
		row := make([]string, len(header))
		for i, k := range header {
			cell, err := stringify(rec[k])
			if err != nil {
				return nil, fmt.Errorf("%w: field %q: %w", ErrMalformedInput, k, err)
			}
			row[i] = cell
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func stringify(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case map[string]any, []any:
		return jsonAPI.MarshalToString(v)
	default:
		return fmt.Sprint(v), nil
	}
}

// ReadFeed reads an RSS or Atom file into a table with FeedColumns.
func ReadFeed(path string) (*Table, error) {
	items, err := feed.NewReader().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	t := &Table{Header: append([]string(nil), FeedColumns...), Rows: make([][]string, 0, len(items))}
	for _, it := range items {
		published := ""
		if !it.PublishedAt.IsZero() {
			published = it.PublishedAt.UTC().Format(time.RFC3339)
		}
		t.Rows = append(t.Rows, []string{
			it.Title, it.Description, it.Content, it.Link, it.Author, published, it.Category,
		})
	}
	return t, nil
}

// WriteCSV writes the table atomically as comma separated values.
func WriteCSV(path string, t *Table) error {
	return output.WriteFile(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(t.Header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		if err := cw.WriteAll(t.Rows); err != nil {
			return fmt.Errorf("failed to write rows: %w", err)
		}
		return nil
	})
}
