package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/halcyon-ai/halcyon/internal/models"
	"github.com/halcyon-ai/halcyon/internal/pagination"
	"github.com/halcyon-ai/halcyon/internal/sanitize"
)

// ArticlesPerPage is the fixed page size of the news feed.
const ArticlesPerPage = 12

// ArticlesPage is one fetched page of the public feed.
type ArticlesPage struct {
	Articles   []models.ArticleSummary `json:"articles"`
	Total      int                     `json:"total"`
	Page       int                     `json:"page"`
	TotalPages int                     `json:"total_pages"`
}

// FetchArticles performs one raw feed request. search must already be
// sanitized; it is omitted from the query when empty.
func (c *Client) FetchArticles(ctx context.Context, page int, search string) (*ArticlesPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(ArticlesPerPage))
	if search != "" {
		query.Set("search", search)
	}
	var result ArticlesPage
	if err := c.do(ctx, http.MethodGet, "/articles", "", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ArticleBrowser drives the news listing: it owns the (query, page)
// pair, sanitizes search input, and fences overlapping fetches with a
// generation counter so a stale response can never overwrite newer
// state.
type ArticleBrowser struct {
	client *Client

	gen atomic.Uint64

	mu         sync.Mutex
	query      string
	page       int
	articles   []models.ArticleSummary
	total      int
	totalPages int
}

func NewArticleBrowser(c *Client) *ArticleBrowser {
	return &ArticleBrowser{client: c, page: 1}
}

// SubmitSearch applies a new search and resets to page 1.
func (b *ArticleBrowser) SubmitSearch(ctx context.Context, raw string) {
	b.mu.Lock()
	b.query = sanitize.Text(raw)
	b.page = 1
	b.mu.Unlock()
	b.fetch(ctx)
}

// SetPage moves to another page of the current search.
func (b *ArticleBrowser) SetPage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	b.mu.Lock()
	b.page = page
	b.mu.Unlock()
	b.fetch(ctx)
}

// Refresh refetches the current (query, page) pair.
func (b *ArticleBrowser) Refresh(ctx context.Context) {
	b.fetch(ctx)
}

func (b *ArticleBrowser) fetch(ctx context.Context) {
	generation := b.gen.Add(1)

	b.mu.Lock()
	query, page := b.query, b.page
	b.mu.Unlock()

	result, err := b.client.FetchArticles(ctx, page, query)

	b.mu.Lock()
	defer b.mu.Unlock()

	// Re-checked under the lock: a newer fetch may have started after
	// an unlocked check passed, and its result owns the state.
	if b.gen.Load() != generation {
		return
	}

	if err != nil {
		b.client.logger.Error("fetch articles failed", "error", err)
		b.articles = nil
		b.total = 0
		b.totalPages = 0
		return
	}
	b.articles = result.Articles
	b.total = result.Total
	b.totalPages = result.TotalPages
}

func (b *ArticleBrowser) Articles() []models.ArticleSummary {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.articles
}

func (b *ArticleBrowser) Query() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.query
}

func (b *ArticleBrowser) Page() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.page
}

func (b *ArticleBrowser) TotalPages() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totalPages
}

func (b *ArticleBrowser) Total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.total
}

// Window is the ellipsis-compressed page strip for the current state.
func (b *ArticleBrowser) Window() []pagination.Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return pagination.Window(b.page, b.totalPages)
}
