package campus

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"
)

// NewsItem is one intranet news entry reduced to plain text.
type NewsItem struct {
	Title   string
	Content string
}

// NewsFeed reads the faculty's intranet RSS feed.
type NewsFeed struct {
	url    string
	parser *gofeed.Parser
}

func NewNewsFeed(url string) *NewsFeed {
	return &NewsFeed{
		url:    url,
		parser: gofeed.NewParser(),
	}
}

var htmlTagRegex = regexp.MustCompile(`<.*?>`)

// Latest returns up to limit news items, newest first, with the HTML markup
// of the feed descriptions stripped.
func (n *NewsFeed) Latest(ctx context.Context, limit int) ([]NewsItem, error) {
	feed, err := n.parser.ParseURLWithContext(n.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse news feed: %w", err)
	}

	items := make([]NewsItem, 0, limit)
	for _, item := range feed.Items {
		if len(items) == limit {
			break
		}
		items = append(items, NewsItem{
			Title:   strings.TrimSpace(item.Title),
			Content: cleanDescription(item.Description),
		})
	}

	return items, nil
}

func cleanDescription(description string) string {
	cleaned := strings.ReplaceAll(description, "<![CDATA[ ", "")
	cleaned = strings.ReplaceAll(cleaned, " ]]>", "")
	cleaned = htmlTagRegex.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
