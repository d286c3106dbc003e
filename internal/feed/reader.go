package feed

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mmcdole/gofeed"
)

type Item struct {
	Title       string
	Description string
	Content     string
	Link        string
	Author      string
	PublishedAt time.Time
	Category    string
}

type Reader struct {
	parser *gofeed.Parser
}

func NewReader() *Reader {
	return &Reader{parser: gofeed.NewParser()}
}

// ReadFile parses an RSS, Atom or JSON feed stored on disk.
func (r *Reader) ReadFile(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed: %w", err)
	}
	defer f.Close()

	return r.Parse(f)
}

func (r *Reader) Parse(in io.Reader) ([]Item, error) {
	feed, err := r.parser.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]Item, 0, len(feed.Items))
	for _, it := range feed.Items {
		item := Item{
			Title:       it.Title,
			Description: it.Description,
			Content:     it.Content,
			Link:        it.Link,
		}

		if it.Author != nil {
			item.Author = it.Author.Name
		} else if len(feed.Authors) > 0 && feed.Authors[0] != nil {
			item.Author = feed.Authors[0].Name
		}

		if it.PublishedParsed != nil {
			item.PublishedAt = *it.PublishedParsed
		} else if it.UpdatedParsed != nil {
			item.PublishedAt = *it.UpdatedParsed
		}

		if len(it.Categories) > 0 {
			item.Category = it.Categories[0]
		}

		items = append(items, item)
	}

	return items, nil
}
