// Package article cleans NewsAPI "everything" responses saved as JSON files.
package article

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienpequegnot/newsterms/internal/output"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const removedTitle = "[removed]"

type Source struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

// Article mirrors one NewsAPI article. Nullable fields are pointers so they
// are written back as null.
type Article struct {
	Source      Source  `json:"source"`
	Author      *string `json:"author"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
	URLToImage  *string `json:"urlToImage"`
	PublishedAt string  `json:"publishedAt"`
	Content     *string `json:"content"`
}

type Response struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

// Key identifies duplicates: trimmed title and trimmed author, a null author
// counting as empty.
type Key struct {
	Title  string
	Author string
}

func (a Article) Key() Key {
	author := ""
	if a.Author != nil {
		author = strings.TrimSpace(*a.Author)
	}
	return Key{Title: strings.TrimSpace(a.Title), Author: author}
}

func (a Article) Removed() bool {
	return strings.ToLower(strings.TrimSpace(a.Title)) == removedTitle
}

// LoadDir concatenates the articles of every *.json file in dir, in file
// name order.
func LoadDir(dir string) ([]Article, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no JSON files found in %s", dir)
	}
	sort.Strings(files)

	var all []Article
	for _, file := range files {
		articles, err := LoadFile(file)
		if err != nil {
			return nil, err
		}
		all = append(all, articles...)
	}
	return all, nil
}

func LoadFile(path string) ([]Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return resp.Articles, nil
}

// DropRemoved filters out the "[Removed]" placeholders NewsAPI returns for
// deleted articles.
func DropRemoved(articles []Article) []Article {
	kept := make([]Article, 0, len(articles))
	for _, a := range articles {
		if !a.Removed() {
			kept = append(kept, a)
		}
	}
	return kept
}

// Dedupe keeps the first article per Key. Later copies are returned as removed.
func Dedupe(articles []Article) (unique, removed []Article) {
	unique = make([]Article, 0, len(articles))
	removed = make([]Article, 0)
	seen := make(map[Key]struct{}, len(articles))
	for _, a := range articles {
		k := a.Key()
		if _, ok := seen[k]; ok {
			removed = append(removed, a)
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, a)
	}
	return unique, removed
}

// SourceNames returns the distinct non-empty source names, sorted.
func SourceNames(articles []Article) []string {
	set := make(map[string]struct{})
	for _, a := range articles {
		if name := strings.TrimSpace(a.Source.Name); name != "" {
			set[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteJSON writes v with a four space indent, atomically.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return output.WriteBytes(path, data)
}

type Result struct {
	Unique  []Article
	Removed []Article
	Sources []string
}

// Clean drops placeholders, then dedupes. Source names are collected from
// every non-placeholder article, duplicates included.
func Clean(articles []Article) Result {
	kept := DropRemoved(articles)
	unique, removed := Dedupe(kept)
	return Result{Unique: unique, Removed: removed, Sources: SourceNames(kept)}
}
