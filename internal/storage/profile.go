package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

var profileColumns = []string{
	"id", "first_name", "last_name", "headline", "summary", "location",
	"profile_url", "profile_picture", "connections_count", "followers_count", "updated_at",
}

// GetProfile returns the stored profile, or nil when none has been imported.
func (s *Store) GetProfile(ctx context.Context) (*models.Profile, error) {
	query, args, err := sq.Select(profileColumns...).From("profile").Where(sq.Eq{"id": models.ProfileID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile query: %w", err)
	}

	p, err := scanProfile(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpsertProfile writes the single profile row. The id is always
// models.ProfileID whatever p carries; updated_at is reset on every write.
func (s *Store) UpsertProfile(ctx context.Context, p models.Profile) error {
	p.ID = models.ProfileID
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO profile
		 (id, first_name, last_name, headline, summary, location, profile_url, profile_picture, connections_count, followers_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.FirstName, p.LastName, p.Headline, p.Summary, p.Location,
		p.ProfileURL, p.ProfilePicture, p.ConnectionsCount, p.FollowersCount,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func scanProfile(row rowScanner) (*models.Profile, error) {
	var p models.Profile
	var picture sql.NullString
	var connections, followers sql.NullInt64
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Headline, &p.Summary, &p.Location,
		&p.ProfileURL, &picture, &connections, &followers, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	p.ProfilePicture = picture.String
	p.ConnectionsCount = int(connections.Int64)
	p.FollowersCount = int(followers.Int64)
	return &p, nil
}
