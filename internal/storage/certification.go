package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/models"
)

var certificationColumns = []string{
	"id", "name", "issuing_organization", "issue_date", "expiration_date",
	"credential_id", "credential_url", "skills", "created_at",
}

// GetCertifications returns every certification ordered by issue_date text, descending.
func (s *Store) GetCertifications(ctx context.Context) ([]models.Certification, error) {
	query, args, err := sq.Select(certificationColumns...).From("certifications").OrderBy("issue_date DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build certifications query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list certifications: %w", err)
	}
	defer rows.Close()

	certs := []models.Certification{}
	for rows.Next() {
		var c models.Certification
		var expiration, skills sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.IssuingOrganization, &c.IssueDate, &expiration,
			&c.CredentialID, &c.CredentialURL, &skills, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan certification: %w", err)
		}
		c.ExpirationDate = nullToStringPtr(expiration)
		if c.Skills, err = decodeList(skills); err != nil {
			return nil, fmt.Errorf("certification %q skills: %w", c.ID, err)
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}

// InsertCertifications replaces the whole certifications table.
func (s *Store) InsertCertifications(ctx context.Context, certs []models.Certification) error {
	return s.replaceAll(ctx, "certifications", len(certs), func(tx *sql.Tx, i int) error {
		c := certs[i]
		skills, err := encodeList(c.Skills)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO certifications
			 (id, name, issuing_organization, issue_date, expiration_date, credential_id, credential_url, skills)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.IssuingOrganization, c.IssueDate, stringPtrToNull(c.ExpirationDate),
			c.CredentialID, c.CredentialURL, skills,
		)
		if err != nil {
			return fmt.Errorf("insert certification %q: %w", c.ID, err)
		}
		return nil
	})
}
