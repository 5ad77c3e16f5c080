package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/models"
)

// GetSkills returns every skill, most endorsed first.
func (s *Store) GetSkills(ctx context.Context) ([]models.Skill, error) {
	query, args, err := sq.Select("id", "name", "endorsements", "featured", "created_at").
		From("skills").
		OrderBy("endorsements DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build skills query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	skills := []models.Skill{}
	for rows.Next() {
		var sk models.Skill
		var endorsements, featured sql.NullInt64
		if err := rows.Scan(&sk.ID, &sk.Name, &endorsements, &featured, &sk.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		sk.Endorsements = int(endorsements.Int64)
		sk.Featured = intToBool(featured)
		skills = append(skills, sk)
	}
	return skills, rows.Err()
}

// InsertSkills replaces the whole skills table.
func (s *Store) InsertSkills(ctx context.Context, skills []models.Skill) error {
	return s.replaceAll(ctx, "skills", len(skills), func(tx *sql.Tx, i int) error {
		sk := skills[i]
		_, err := tx.ExecContext(ctx,
			`INSERT INTO skills (id, name, endorsements, featured) VALUES (?, ?, ?, ?)`,
			sk.ID, sk.Name, sk.Endorsements, boolToInt(sk.Featured),
		)
		if err != nil {
			return fmt.Errorf("insert skill %q: %w", sk.ID, err)
		}
		return nil
	})
}
