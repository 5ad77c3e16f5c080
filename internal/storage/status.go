package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/models"
)

// NeverSynced is reported as lastSync before any profile import.
const NeverSynced = "Never"

// countedTables maps status keys to table names.
var countedTables = []struct{ key, table string }{
	{"experience", "experience"},
	{"certifications", "certifications"},
	{"skills", "skills"},
	{"posts", "posts"},
	{"connections", "connections"},
}

// SyncStatus reports the profile's last update and per-entity row counts.
func (s *Store) SyncStatus(ctx context.Context) (*models.SyncStatus, error) {
	profile, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	status := &models.SyncStatus{
		LastSync: NeverSynced,
		Counts:   make(map[string]int, len(countedTables)),
	}
	if profile != nil {
		status.LastSync = profile.UpdatedAt
		status.DataStatus.Profile = true
	}

	for _, ct := range countedTables {
		n, err := s.count(ctx, ct.table)
		if err != nil {
			return nil, err
		}
		status.Counts[ct.key] = n
	}

	status.DataStatus.Experience = status.Counts["experience"] > 0
	status.DataStatus.Certifications = status.Counts["certifications"] > 0
	status.DataStatus.Skills = status.Counts["skills"] > 0
	status.DataStatus.Posts = status.Counts["posts"] > 0
	status.DataStatus.Connections = status.Counts["connections"] > 0
	return status, nil
}

func (s *Store) count(ctx context.Context, table string) (int, error) {
	query, args, err := sq.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}
	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
