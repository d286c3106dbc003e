package article

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func writeResponse(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

func TestLoadDirSortedAndConcatenated(t *testing.T) {
	dir := t.TempDir()
	writeResponse(t, dir, "b.json", `{"status":"ok","totalResults":1,"articles":[{"source":{"id":null,"name":"AP"},"author":null,"title":"Second","url":"https://b"}]}`)
	writeResponse(t, dir, "a.json", `{"status":"ok","totalResults":1,"articles":[{"source":{"id":"cnn","name":"CNN"},"author":"Jane","title":"First","url":"https://a"}]}`)
	writeResponse(t, dir, "notes.txt", `ignored`)

	articles, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "First", articles[0].Title)
	assert.Equal(t, "Second", articles[1].Title)
	assert.Nil(t, articles[1].Author)
	require.NotNil(t, articles[0].Source.ID)
	assert.Equal(t, "cnn", *articles[0].Source.ID)
}

func TestLoadDirErrors(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	assert.ErrorContains(t, err, "no JSON files")

	dir := t.TempDir()
	writeResponse(t, dir, "bad.json", `{"articles": [`)
	_, err = LoadDir(dir)
	assert.ErrorContains(t, err, "failed to parse")
}

func TestDropRemoved(t *testing.T) {
	articles := []Article{
		{Title: "[Removed]"},
		{Title: "  [removed] "},
		{Title: "Trump rally"},
	}

	kept := DropRemoved(articles)
	require.Len(t, kept, 1)
	assert.Equal(t, "Trump rally", kept[0].Title)
}

func TestDedupe(t *testing.T) {
	articles := []Article{
		{Title: "Trump rally", Author: strPtr("Jane"), URL: "1"},
		{Title: " Trump rally ", Author: strPtr("Jane "), URL: "2"},
		{Title: "Trump rally", Author: strPtr("John"), URL: "3"},
		{Title: "Biden speech", URL: "4"},
		{Title: "Biden speech", Author: strPtr(""), URL: "5"},
	}

	unique, removed := Dedupe(articles)

	var uniqueURLs, removedURLs []string
	for _, a := range unique {
		uniqueURLs = append(uniqueURLs, a.URL)
	}
	for _, a := range removed {
		removedURLs = append(removedURLs, a.URL)
	}
	assert.Equal(t, []string{"1", "3", "4"}, uniqueURLs)
	assert.Equal(t, []string{"2", "5"}, removedURLs)
}

func TestSourceNames(t *testing.T) {
	articles := []Article{
		{Source: Source{Name: "Reuters"}},
		{Source: Source{Name: " AP "}},
		{Source: Source{Name: ""}},
		{Source: Source{Name: "Reuters"}},
	}
	assert.Equal(t, []string{"AP", "Reuters"}, SourceNames(articles))
}

func TestClean(t *testing.T) {
	articles := []Article{
		{Title: "[Removed]", Source: Source{Name: "Hidden"}},
		{Title: "Trump rally", Source: Source{Name: "CNN"}},
		{Title: "Trump rally", Source: Source{Name: "Fox"}},
	}

	res := Clean(articles)
	assert.Len(t, res.Unique, 1)
	assert.Len(t, res.Removed, 1)
	assert.Equal(t, []string{"CNN", "Fox"}, res.Sources)
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "remaining_articles.json")

	require.NoError(t, WriteJSON(path, []Article{{Title: "Trump rally", Source: Source{Name: "AP"}}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n        \"source\": {")
	assert.Contains(t, string(data), `"author": null`)

	empty := filepath.Join(t.TempDir(), "removed.json")
	_, removed := Dedupe(nil)
	require.NoError(t, WriteJSON(empty, removed))
	data, err = os.ReadFile(empty)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
