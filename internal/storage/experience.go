package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/models"
)

var experienceColumns = []string{
	"id", "title", "company", "company_url", "location", "start_date",
	"end_date", "description", "skills", "current", "created_at",
}

// GetExperience returns every position, newest start date first. start_date is
// free text, so the order is lexical rather than chronological.
func (s *Store) GetExperience(ctx context.Context) ([]models.Experience, error) {
	query, args, err := sq.Select(experienceColumns...).From("experience").OrderBy("start_date DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build experience query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list experience: %w", err)
	}
	defer rows.Close()

	experience := []models.Experience{}
	for rows.Next() {
		var e models.Experience
		var endDate, skills sql.NullString
		var current sql.NullInt64
		if err := rows.Scan(&e.ID, &e.Title, &e.Company, &e.CompanyURL, &e.Location, &e.StartDate,
			&endDate, &e.Description, &skills, &current, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		e.EndDate = nullToStringPtr(endDate)
		e.Current = intToBool(current)
		if e.Skills, err = decodeList(skills); err != nil {
			return nil, fmt.Errorf("experience %q skills: %w", e.ID, err)
		}
		experience = append(experience, e)
	}
	return experience, rows.Err()
}

// InsertExperience replaces the whole experience table with experience.
// An empty slice leaves the table empty.
func (s *Store) InsertExperience(ctx context.Context, experience []models.Experience) error {
	return s.replaceAll(ctx, "experience", len(experience), func(tx *sql.Tx, i int) error {
		e := experience[i]
		skills, err := encodeList(e.Skills)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO experience
			 (id, title, company, company_url, location, start_date, end_date, description, skills, current)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Title, e.Company, e.CompanyURL, e.Location, e.StartDate,
			stringPtrToNull(e.EndDate), e.Description, skills, boolToInt(e.Current),
		)
		if err != nil {
			return fmt.Errorf("insert experience %q: %w", e.ID, err)
		}
		return nil
	})
}
