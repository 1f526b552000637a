package client

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyon-ai/halcyon/internal/models"
)

func articlesHandler(record func(url.Values), respond func(url.Values) ArticlesPage) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if record != nil {
			record(q)
		}
		_ = json.NewEncoder(w).Encode(respond(q))
	})
}

func TestBrowserSearchResetsPageAndPageChangeKeepsSearch(t *testing.T) {
	var mu sync.Mutex
	var seen []url.Values
	c, _ := newTestClient(t, articlesHandler(
		func(q url.Values) {
			mu.Lock()
			seen = append(seen, q)
			mu.Unlock()
		},
		func(url.Values) ArticlesPage {
			return ArticlesPage{TotalPages: 10, Total: 120}
		},
	))
	b := NewArticleBrowser(c)

	b.SubmitSearch(context.Background(), "robotics")
	b.SetPage(context.Background(), 4)
	b.SubmitSearch(context.Background(), "funding")

	require.Len(t, seen, 3)
	assert.Equal(t, "robotics", seen[0].Get("search"))
	assert.Equal(t, "1", seen[0].Get("page"))
	assert.Equal(t, "12", seen[0].Get("limit"))

	// Page change preserves the search text.
	assert.Equal(t, "robotics", seen[1].Get("search"))
	assert.Equal(t, "4", seen[1].Get("page"))

	// A new search submit resets to page 1.
	assert.Equal(t, "funding", seen[2].Get("search"))
	assert.Equal(t, "1", seen[2].Get("page"))
	assert.Equal(t, 1, b.Page())
}

func TestBrowserSanitizesSearchInput(t *testing.T) {
	var mu sync.Mutex
	var seen []url.Values
	c, _ := newTestClient(t, articlesHandler(
		func(q url.Values) {
			mu.Lock()
			seen = append(seen, q)
			mu.Unlock()
		},
		func(url.Values) ArticlesPage { return ArticlesPage{TotalPages: 1} },
	))
	b := NewArticleBrowser(c)

	b.SubmitSearch(context.Background(), "<script>x</script>")

	require.Len(t, seen, 1)
	// The markup sanitizes away entirely, so no search parameter is sent.
	assert.False(t, seen[0].Has("search"))
	assert.Empty(t, b.Query())
}

func TestBrowserErrorCollapsesToEmptyState(t *testing.T) {
	failing := true
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(ArticlesPage{
			Articles:   nil,
			Total:      24,
			TotalPages: 2,
		})
	}))
	b := NewArticleBrowser(c)

	b.SubmitSearch(context.Background(), "ai")
	assert.Empty(t, b.Articles())
	assert.Zero(t, b.TotalPages())
	assert.Empty(t, b.Window())

	// The browser stays usable: the next fetch repopulates state.
	failing = false
	b.Refresh(context.Background())
	assert.Equal(t, 2, b.TotalPages())
}

func TestBrowserDiscardsStaleResponse(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("search")
		if q == "slow" {
			close(firstStarted)
			<-releaseFirst
			_ = json.NewEncoder(w).Encode(ArticlesPage{Total: 1, TotalPages: 1})
			return
		}
		_ = json.NewEncoder(w).Encode(ArticlesPage{Total: 99, TotalPages: 9})
	}))
	b := NewArticleBrowser(c)

	done := make(chan struct{})
	go func() {
		defer close(done)
		b.SubmitSearch(context.Background(), "slow")
	}()

	<-firstStarted
	b.SubmitSearch(context.Background(), "fast")
	assert.Equal(t, 9, b.TotalPages())

	// Let the superseded request finish; its response must not win.
	close(releaseFirst)
	<-done
	assert.Equal(t, 9, b.TotalPages())
	assert.Equal(t, 99, b.Total())
}

func TestBrowserConcurrentFetchesSettleOnCurrentQuery(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")
		time.Sleep(time.Duration(rand.IntN(200)) * time.Microsecond)
		_ = json.NewEncoder(w).Encode(ArticlesPage{
			Articles:   []models.ArticleSummary{{Title: search}},
			Total:      1,
			TotalPages: 1,
		})
	}))
	b := NewArticleBrowser(c)

	// Hammer the browser with overlapping submits. Whichever fetch holds
	// the newest generation owns the final state, so the displayed
	// articles must always match the current query once the dust settles.
	for i := 0; i < 50; i++ {
		var wg sync.WaitGroup
		for j := 0; j < 4; j++ {
			wg.Add(1)
			go func(j int) {
				defer wg.Done()
				b.SubmitSearch(context.Background(), fmt.Sprintf("q%d-%d", i, j))
			}(j)
		}
		wg.Wait()

		articles := b.Articles()
		require.Len(t, articles, 1)
		assert.Equal(t, b.Query(), articles[0].Title)
	}
}

func TestBrowserWindowTracksState(t *testing.T) {
	c, _ := newTestClient(t, articlesHandler(nil, func(url.Values) ArticlesPage {
		return ArticlesPage{Total: 1200, TotalPages: 100}
	}))
	b := NewArticleBrowser(c)

	b.SetPage(context.Background(), 50)
	window := b.Window()
	require.Len(t, window, 7)
	assert.Equal(t, "1", window[0].String())
	assert.True(t, window[1].IsEllipsis())
	assert.Equal(t, "50", window[3].String())
	assert.Equal(t, "100", window[6].String())
}
