package campus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const newsFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Fakultät IWI News</title>
    <item>
      <title>Klausurtermine online</title>
      <description><![CDATA[ <p>Die Termine stehen <b>jetzt</b> im Intranet.</p> ]]></description>
    </item>
    <item>
      <title>Neues Labor</title>
      <description>Eröffnung nächste Woche</description>
    </item>
    <item>
      <title>Drittes Item</title>
      <description>wird abgeschnitten</description>
    </item>
  </channel>
</rss>`

func TestLatestNewsStripsMarkupAndLimits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(newsFixture))
	}))
	t.Cleanup(server.Close)

	feed := NewNewsFeed(server.URL)
	items, err := feed.Latest(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Klausurtermine online", items[0].Title)
	assert.NotContains(t, items[0].Content, "<p>")
	assert.NotContains(t, items[0].Content, "CDATA")
	assert.Contains(t, items[0].Content, "Die Termine stehen")

	assert.Equal(t, "Neues Labor", items[1].Title)
	assert.Equal(t, "Eröffnung nächste Woche", items[1].Content)
}

func TestLatestNewsSurfacesFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	feed := NewNewsFeed(server.URL)
	_, err := feed.Latest(context.Background(), 3)
	assert.Error(t, err)
}
