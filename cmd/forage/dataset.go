package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/skowalczyk/forage"
	"github.com/skowalczyk/forage/fs"
	"github.com/skowalczyk/forage/sqlite"
)

// Run executes the dataset command.
func (c *DatasetCmd) Run(deps *Dependencies) error {
	if c.Forum == "" && c.Wiki == "" && c.Images == "" {
		return forage.Errorf(forage.EINVALID, "at least one of --forum, --wiki or --images is required")
	}

	db := sqlite.NewDB(c.DB)
	if err := db.Open(); err != nil {
		return err
	}
	defer db.Close()

	var counts datasetCounts

	if c.Forum != "" {
		loaded, skipped, failed, err := loadTopics(deps, sqlite.NewTopicService(db), c.Forum)
		if err != nil {
			return err
		}
		counts.topics = loaded
		fmt.Fprintf(deps.Stdout, "Loaded %d topics (%d empty skipped, %d failed) from %s\n",
			loaded, skipped, failed, c.Forum)
	}

	if c.Wiki != "" {
		loaded, failed, err := loadWikiPages(deps, sqlite.NewWikiPageService(db), c.Wiki)
		if err != nil {
			return err
		}
		counts.wikiPages = loaded
		fmt.Fprintf(deps.Stdout, "Loaded %d wiki pages (%d failed) from %s\n", loaded, failed, c.Wiki)
	}

	if c.Images != "" {
		loaded, err := loadImages(deps, sqlite.NewImageService(db), c.Images)
		if err != nil {
			return err
		}
		counts.images = loaded
		fmt.Fprintf(deps.Stdout, "Loaded %d image references from %s\n", loaded, c.Images)
	}

	if c.Readme {
		path, err := writeReadme(c.DB, counts)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	}

	return nil
}

// datasetCounts tracks what one assembly run loaded, for the README.
type datasetCounts struct {
	topics    int
	wikiPages int
	images    int
}

// loadTopics inserts every topic JSON record under dir. Topics with no
// posts are skipped. A record that fails to parse or insert is logged and
// counted, never fatal.
func loadTopics(deps *Dependencies, svc *sqlite.TopicService, dir string) (loaded, skipped, failed int, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0, 0, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		topic, err := fs.ReadTopicArtifact(path)
		if err != nil {
			failed++
			deps.Logger.Warn("skipping topic record", "path", path, "error", err)
			continue
		}
		if len(topic.Posts) == 0 {
			skipped++
			continue
		}
		if err := svc.CreateTopic(deps.Ctx, topic); err != nil {
			failed++
			deps.Logger.Warn("skipping topic record", "path", path, "error", err)
			continue
		}
		loaded++
	}
	return loaded, skipped, failed, nil
}

// loadWikiPages inserts every wiki text artifact under dir.
func loadWikiPages(deps *Dependencies, svc *sqlite.WikiPageService, dir string) (loaded, failed int, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			failed++
			deps.Logger.Warn("skipping wiki artifact", "path", path, "error", err)
			continue
		}
		page, err := fs.ParseWikiArtifact(string(content))
		if err != nil {
			failed++
			deps.Logger.Warn("skipping wiki artifact", "path", path, "error", err)
			continue
		}
		if err := svc.CreateWikiPage(deps.Ctx, page); err != nil {
			failed++
			deps.Logger.Warn("skipping wiki artifact", "path", path, "error", err)
			continue
		}
		loaded++
	}
	return loaded, failed, nil
}

// loadImages inserts every row of an image reference CSV.
func loadImages(deps *Dependencies, svc *sqlite.ImageService, csvPath string) (int, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	refs, err := fs.ReadImageIndex(f)
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, ref := range refs {
		ref := ref
		if err := svc.CreateImage(deps.Ctx, &ref); err != nil {
			deps.Logger.Warn("skipping image reference", "name", ref.Name, "error", err)
			continue
		}
		loaded++
	}
	return loaded, nil
}

// writeReadme renders a short dataset description next to the database file.
func writeReadme(dbPath string, counts datasetCounts) (string, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# Dataset\n\n")
	fmt.Fprintf(&b, "SQLite dataset assembled on %s.\n\n", time.Now().UTC().Format("2006-01-02"))
	fmt.Fprintf(&b, "- Database: %s\n", filepath.Base(dbPath))
	fmt.Fprintf(&b, "- Forum topics: %d\n", counts.topics)
	fmt.Fprintf(&b, "- Wiki pages: %d\n", counts.wikiPages)
	fmt.Fprintf(&b, "- Image references: %d\n", counts.images)

	path := filepath.Join(filepath.Dir(dbPath), "README.md")
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
