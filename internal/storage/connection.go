package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/models"
)

// likeEscaper makes LIKE metacharacters literal under ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchConnections matches query as a literal substring of first name, last
// name, headline or company; % and _ in query are not wildcards. SQLite LIKE
// is case-insensitive for ASCII, and an empty query matches every row.
func (s *Store) SearchConnections(ctx context.Context, query string) ([]models.Connection, error) {
	pattern := "%" + likeEscaper.Replace(query) + "%"
	stmt, args, err := sq.Select("id", "first_name", "last_name", "headline", "profile_url", "company", "location", "connected_at", "created_at").
		From("connections").
		Where(sq.Or{
			sq.Expr(`first_name LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`last_name LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`headline LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`company LIKE ? ESCAPE '\'`, pattern),
		}).
		OrderBy("first_name", "last_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build connections query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("search connections: %w", err)
	}
	defer rows.Close()

	conns := []models.Connection{}
	for rows.Next() {
		var c models.Connection
		var connected sql.NullString
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Headline, &c.ProfileURL,
			&c.Company, &c.Location, &connected, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan connection: %w", err)
		}
		c.ConnectedAt = nullToTimePtr(connected)
		conns = append(conns, c)
	}
	return conns, rows.Err()
}

// UpsertConnections inserts each connection or replaces the row with the same id.
func (s *Store) UpsertConnections(ctx context.Context, conns []models.Connection) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, c := range conns {
			_, err := tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO connections
				 (id, first_name, last_name, headline, profile_url, company, location, connected_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				c.ID, c.FirstName, c.LastName, c.Headline, c.ProfileURL, c.Company, c.Location,
				timePtrToNull(c.ConnectedAt),
			)
			if err != nil {
				return fmt.Errorf("upsert connection %q: %w", c.ID, err)
			}
		}
		return nil
	})
}
