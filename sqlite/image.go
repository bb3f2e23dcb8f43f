package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/skowalczyk/forage"
)

// Compile-time interface verification.
var _ forage.ImageService = (*ImageService)(nil)

// ImageService implements forage.ImageService using SQLite. The unique
// index on image_name backs the first-occurrence-wins contract when rows
// arrive from multiple scans.
type ImageService struct {
	db *DB
}

// NewImageService creates a new ImageService.
func NewImageService(db *DB) *ImageService {
	return &ImageService{db: db}
}

// CreateImage stores an image reference. Duplicate names are ignored, so
// the first stored reference for a name wins.
func (s *ImageService) CreateImage(ctx context.Context, ref *forage.ImageRef) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO images (id, image_name, extension, url, src, alt, title, source_file, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), ref.Name, ref.Extension, ref.URL, ref.Src, ref.Alt, ref.Title,
		ref.SourceFile, time.Now().UTC().Format(time.RFC3339))
	return err
}

// FindImages retrieves all stored references ordered by name.
func (s *ImageService) FindImages(ctx context.Context) ([]*forage.ImageRef, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT image_name, extension, url, src, alt, title, source_file
		FROM images
		ORDER BY image_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []*forage.ImageRef
	for rows.Next() {
		var ref forage.ImageRef
		if err := rows.Scan(&ref.Name, &ref.Extension, &ref.URL, &ref.Src, &ref.Alt,
			&ref.Title, &ref.SourceFile); err != nil {
			return nil, err
		}
		refs = append(refs, &ref)
	}
	return refs, rows.Err()
}
