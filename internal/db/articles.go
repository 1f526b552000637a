package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/halcyon-ai/halcyon/internal/models"
)

// ListArticles returns one page of articles, newest first, optionally
// filtered by a case-insensitive substring match on title, excerpt or
// category, plus the total match count.
func (s *Store) ListArticles(ctx context.Context, limit, offset int, search string) ([]models.ArticleSummary, int, error) {
	var (
		listQuery  string
		countQuery string
		args       []any
	)
	if search != "" {
		listQuery = `
			SELECT id::text, title, excerpt, category, published_at
			FROM articles
			WHERE title ILIKE '%' || $1 || '%'
				OR excerpt ILIKE '%' || $1 || '%'
				OR category ILIKE '%' || $1 || '%'
			ORDER BY published_at DESC
			LIMIT $2 OFFSET $3
		`
		countQuery = `
			SELECT COUNT(*)
			FROM articles
			WHERE title ILIKE '%' || $1 || '%'
				OR excerpt ILIKE '%' || $1 || '%'
				OR category ILIKE '%' || $1 || '%'
		`
		args = []any{search}
	} else {
		listQuery = `
			SELECT id::text, title, excerpt, category, published_at
			FROM articles
			ORDER BY published_at DESC
			LIMIT $1 OFFSET $2
		`
		countQuery = `SELECT COUNT(*) FROM articles`
	}

	rows, err := s.db.Query(ctx, listQuery, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]models.ArticleSummary, 0, limit)
	for rows.Next() {
		var a models.ArticleSummary
		if err := rows.Scan(&a.ID, &a.Title, &a.Excerpt, &a.Category, &a.PublishedAt); err != nil {
			return nil, 0, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	var total int
	if err := s.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		if err == pgx.ErrNoRows {
			total = 0
		} else {
			return nil, 0, fmt.Errorf("count articles: %w", err)
		}
	}
	return articles, total, nil
}

// ListArticlesFull returns every article including content, for the
// admin console.
func (s *Store) ListArticlesFull(ctx context.Context) ([]models.Article, error) {
	const query = `
		SELECT id::text, title, excerpt, category, content, published_at
		FROM articles
		ORDER BY published_at DESC
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]models.Article, 0)
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Excerpt, &a.Category, &a.Content, &a.PublishedAt); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return articles, nil
}

func (s *Store) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	const query = `
		SELECT id::text, title, excerpt, category, content, published_at
		FROM articles
		WHERE id = $1
	`
	var a models.Article
	err := s.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.Title, &a.Excerpt, &a.Category, &a.Content, &a.PublishedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &a, nil
}

func (s *Store) CreateArticle(ctx context.Context, article models.Article) (*models.Article, error) {
	const query = `
		INSERT INTO articles (id, title, excerpt, category, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text, title, excerpt, category, content, published_at
	`
	var created models.Article
	err := s.db.QueryRow(ctx, query,
		uuid.NewString(), article.Title, article.Excerpt, article.Category, article.Content,
	).Scan(&created.ID, &created.Title, &created.Excerpt, &created.Category, &created.Content, &created.PublishedAt)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return &created, nil
}

func (s *Store) UpdateArticle(ctx context.Context, id string, article models.Article) (*models.Article, error) {
	const query = `
		UPDATE articles
		SET title = $2, excerpt = $3, category = $4, content = $5
		WHERE id = $1
		RETURNING id::text, title, excerpt, category, content, published_at
	`
	var updated models.Article
	err := s.db.QueryRow(ctx, query,
		id, article.Title, article.Excerpt, article.Category, article.Content,
	).Scan(&updated.ID, &updated.Title, &updated.Excerpt, &updated.Category, &updated.Content, &updated.PublishedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("update article: %w", err)
	}
	return &updated, nil
}

func (s *Store) DeleteArticle(ctx context.Context, id string) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete article: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
