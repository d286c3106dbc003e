package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Politics</title>
  <item>
    <title>Trump wins primary</title>
    <description>&lt;p&gt;Results are in&lt;/p&gt;</description>
    <link>https://example.com/a</link>
    <author>desk@example.com (Politics Desk)</author>
    <category>election</category>
    <pubDate>Mon, 04 Mar 2024 10:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Biden speech</title>
    <description>State of the union</description>
    <link>https://example.com/b</link>
  </item>
</channel>
</rss>`

func TestParseRSS(t *testing.T) {
	items, err := NewReader().Parse(strings.NewReader(sampleRSS))
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "Trump wins primary", first.Title)
	assert.Equal(t, "<p>Results are in</p>", first.Description)
	assert.Equal(t, "https://example.com/a", first.Link)
	assert.Equal(t, "election", first.Category)
	assert.Equal(t, 2024, first.PublishedAt.Year())

	assert.Empty(t, items[1].Category)
	assert.True(t, items[1].PublishedAt.IsZero())
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.rss")
	require.NoError(t, os.WriteFile(path, []byte(sampleRSS), 0644))

	items, err := NewReader().ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestParseInvalid(t *testing.T) {
	_, err := NewReader().Parse(strings.NewReader("not a feed"))
	assert.Error(t, err)

	_, err = NewReader().ReadFile(filepath.Join(t.TempDir(), "missing.rss"))
	assert.Error(t, err)
}
