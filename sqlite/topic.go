package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skowalczyk/forage"
)

// Compile-time interface verification.
var _ forage.TopicService = (*TopicService)(nil)

// TopicService implements forage.TopicService using SQLite. Posts are
// stored in a child table in display order; quotes travel with their post
// as a JSON column.
type TopicService struct {
	db *DB
}

// NewTopicService creates a new TopicService.
func NewTopicService(db *DB) *TopicService {
	return &TopicService{db: db}
}

// CreateTopic stores a topic and its posts.
func (s *TopicService) CreateTopic(ctx context.Context, topic *forage.Topic) error {
	rowID := uuid.New().String()
	createdAt := time.Now().UTC().Format(time.RFC3339)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO topics (id, topic_id, post_id, title, url, section, author, author_id, timestamp, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rowID, nullableInt(topic.TopicID), nullableInt(topic.PostID), topic.Title, topic.URL,
		topic.Section, topic.Author, nullableInt(topic.AuthorID), topic.Timestamp, createdAt)
	if err != nil {
		return err
	}

	for i, post := range topic.Posts {
		quotes := post.Quotes
		if quotes == nil {
			quotes = []forage.Quote{}
		}
		quotesJSON, err := json.Marshal(quotes)
		if err != nil {
			return err
		}

		_, err = s.db.ExecContext(ctx, `
			INSERT INTO posts (id, topic_row_id, post_id, author, author_id, date, content, content_hash, quotes, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), rowID, nullableInt(post.PostID), post.Author, nullableInt(post.AuthorID),
			post.Date, post.Content, hashContent(post.Content), string(quotesJSON), i)
		if err != nil {
			return err
		}
	}

	return nil
}

// FindTopicByID retrieves a topic (with posts) by its forum topic id.
func (s *TopicService) FindTopicByID(ctx context.Context, topicID int) (*forage.Topic, error) {
	var (
		rowID    string
		topic    forage.Topic
		tid, pid sql.NullInt64
		aid      sql.NullInt64
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, topic_id, post_id, title, url, section, author, author_id, timestamp
		FROM topics
		WHERE topic_id = ?
	`, topicID).Scan(&rowID, &tid, &pid, &topic.Title, &topic.URL, &topic.Section, &topic.Author, &aid, &topic.Timestamp)

	if err == sql.ErrNoRows {
		return nil, forage.Errorf(forage.ENOTFOUND, "topic %d not found", topicID)
	}
	if err != nil {
		return nil, err
	}

	topic.TopicID = intPointer(tid)
	topic.PostID = intPointer(pid)
	topic.AuthorID = intPointer(aid)

	posts, err := s.findPosts(ctx, rowID)
	if err != nil {
		return nil, err
	}
	topic.Posts = posts

	return &topic, nil
}

// FindTopics retrieves topics matching the filter, posts included.
func (s *TopicService) FindTopics(ctx context.Context, filter forage.TopicFilter) ([]*forage.Topic, error) {
	var query strings.Builder
	query.WriteString(`
		SELECT id, topic_id, post_id, title, url, section, author, author_id, timestamp
		FROM topics
		WHERE 1=1`)

	var args []any
	if filter.Section != nil {
		query.WriteString(" AND section = ?")
		args = append(args, *filter.Section)
	}
	if filter.Author != nil {
		query.WriteString(" AND author = ?")
		args = append(args, *filter.Author)
	}
	query.WriteString(" ORDER BY topic_id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type scanned struct {
		rowID string
		topic *forage.Topic
	}
	var results []scanned

	for rows.Next() {
		var (
			rowID    string
			topic    forage.Topic
			tid, pid sql.NullInt64
			aid      sql.NullInt64
		)
		if err := rows.Scan(&rowID, &tid, &pid, &topic.Title, &topic.URL, &topic.Section,
			&topic.Author, &aid, &topic.Timestamp); err != nil {
			return nil, err
		}
		topic.TopicID = intPointer(tid)
		topic.PostID = intPointer(pid)
		topic.AuthorID = intPointer(aid)
		results = append(results, scanned{rowID: rowID, topic: &topic})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var topics []*forage.Topic
	for _, r := range results {
		posts, err := s.findPosts(ctx, r.rowID)
		if err != nil {
			return nil, err
		}
		r.topic.Posts = posts
		topics = append(topics, r.topic)
	}

	return topics, nil
}

// findPosts returns the posts of one topic row in display order.
func (s *TopicService) findPosts(ctx context.Context, topicRowID string) ([]forage.Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT post_id, author, author_id, date, content, quotes
		FROM posts
		WHERE topic_row_id = ?
		ORDER BY position
	`, topicRowID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []forage.Post
	for rows.Next() {
		var (
			post       forage.Post
			pid, aid   sql.NullInt64
			quotesJSON string
		)
		if err := rows.Scan(&pid, &post.Author, &aid, &post.Date, &post.Content, &quotesJSON); err != nil {
			return nil, err
		}
		post.PostID = intPointer(pid)
		post.AuthorID = intPointer(aid)
		if err := json.Unmarshal([]byte(quotesJSON), &post.Quotes); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
