package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/skowalczyk/forage"
)

// Compile-time interface verification.
var _ forage.WikiPageService = (*WikiPageService)(nil)

// WikiPageService implements forage.WikiPageService using SQLite.
// Categories and links are stored as JSON columns; they are only ever read
// back whole.
type WikiPageService struct {
	db *DB
}

// NewWikiPageService creates a new WikiPageService.
func NewWikiPageService(db *DB) *WikiPageService {
	return &WikiPageService{db: db}
}

// CreateWikiPage stores a wiki page record.
func (s *WikiPageService) CreateWikiPage(ctx context.Context, page *forage.WikiPage) error {
	categories := page.Categories
	if categories == nil {
		categories = []string{}
	}
	links := page.Links
	if links == nil {
		links = []forage.Link{}
	}

	categoriesJSON, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	linksJSON, err := json.Marshal(links)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO wiki_pages (id, title, categories, links, content, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), page.Title, string(categoriesJSON), string(linksJSON),
		page.Content, hashContent(page.Content), time.Now().UTC().Format(time.RFC3339))

	return err
}

// FindWikiPageByTitle retrieves a page by its exact title.
func (s *WikiPageService) FindWikiPageByTitle(ctx context.Context, title string) (*forage.WikiPage, error) {
	var (
		page           forage.WikiPage
		categoriesJSON string
		linksJSON      string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT title, categories, links, content
		FROM wiki_pages
		WHERE title = ?
	`, title).Scan(&page.Title, &categoriesJSON, &linksJSON, &page.Content)

	if err == sql.ErrNoRows {
		return nil, forage.Errorf(forage.ENOTFOUND, "wiki page %q not found", title)
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(categoriesJSON), &page.Categories); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(linksJSON), &page.Links); err != nil {
		return nil, err
	}

	return &page, nil
}

// CountWikiPages returns the number of stored pages.
func (s *WikiPageService) CountWikiPages(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM wiki_pages`).Scan(&count)
	return count, err
}
