package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/models"
)

// DefaultPostLimit applies when GetRecentPosts is called with a non-positive limit.
const DefaultPostLimit = 10

// GetRecentPosts returns up to limit posts, most recently published first.
func (s *Store) GetRecentPosts(ctx context.Context, limit int) ([]models.Post, error) {
	if limit <= 0 {
		limit = DefaultPostLimit
	}

	query, args, err := sq.Select("id", "content", "published_at", "likes", "comments", "shares", "url", "image_urls", "created_at").
		From("posts").
		OrderBy("published_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build posts query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var p models.Post
		var published, images sql.NullString
		var likes, comments, shares sql.NullInt64
		if err := rows.Scan(&p.ID, &p.Content, &published, &likes, &comments, &shares,
			&p.URL, &images, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		p.PublishedAt = nullToTime(published)
		p.Likes = int(likes.Int64)
		p.Comments = int(comments.Int64)
		p.Shares = int(shares.Int64)
		if p.ImageURLs, err = decodeList(images); err != nil {
			return nil, fmt.Errorf("post %q image urls: %w", p.ID, err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// InsertPosts upserts each post by id. Rows not in posts are left alone.
func (s *Store) InsertPosts(ctx context.Context, posts []models.Post) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, p := range posts {
			images, err := encodeList(p.ImageURLs)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO posts
				 (id, content, published_at, likes, comments, shares, url, image_urls)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				p.ID, p.Content, timeToNull(p.PublishedAt), p.Likes, p.Comments, p.Shares, p.URL, images,
			)
			if err != nil {
				return fmt.Errorf("upsert post %q: %w", p.ID, err)
			}
		}
		return nil
	})
}
