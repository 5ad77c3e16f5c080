package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/apperror"
	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/logger"
	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/storage"
)

// File names probed in an official LinkedIn data export.
const (
	ProfileFile        = "Profile.csv"
	PositionsFile      = "Positions.csv"
	CertificationsFile = "Certifications.csv"
	SkillsFile         = "Skills.csv"
	ConnectionsFile    = "Connections.csv"
)

// Importer writes normalized export data into a store it does not own.
type Importer struct {
	store *storage.Store
	log   logger.Logger
}

func New(store *storage.Store, log logger.Logger) *Importer {
	return &Importer{store: store, log: log}
}

// Written records how many records of one entity type an import stored.
type Written struct {
	Entity string `json:"entity"`
	Count  int    `json:"count"`
}

// Report summarises one import run. Warnings lists manual-file values that
// fell back to defaults.
type Report struct {
	Source   string    `json:"source"`
	Written  []Written `json:"written"`
	Skipped  []string  `json:"skipped,omitempty"`
	Warnings []string  `json:"warnings,omitempty"`
}

func (r *Report) wrote(entity string, n int) {
	r.Written = append(r.Written, Written{Entity: entity, Count: n})
}

// Count returns the number of records written for entity, or -1 if it was not imported.
func (r *Report) Count(entity string) int {
	for _, w := range r.Written {
		if w.Entity == entity {
			return w.Count
		}
	}
	return -1
}

type exportStep struct {
	file   string
	entity string
	write  func(ctx context.Context, rows []Row) (int, error)
}

// ImportExport imports every known CSV present in dir. Missing files are
// skipped. The first failing step aborts the run; steps already completed stay
// committed.
func (im *Importer) ImportExport(ctx context.Context, dir string) (*Report, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperror.NewNotFound("export folder", dir)
		}
		return nil, fmt.Errorf("stat export folder: %w", err)
	}
	if !info.IsDir() {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("%s is not a directory", dir), nil)
	}

	log := im.log.With(zap.String("source", dir))
	log.Info("importing LinkedIn export")

	steps := []exportStep{
		{ProfileFile, "profile", im.writeProfileRows},
		{PositionsFile, "experience", im.writePositionRows},
		{CertificationsFile, "certifications", im.writeCertificationRows},
		{SkillsFile, "skills", im.writeSkillRows},
		{ConnectionsFile, "connections", im.writeConnectionRows},
	}

	report := &Report{Source: dir}
	for _, step := range steps {
		path := filepath.Join(dir, step.file)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Info("export file not present, skipping", zap.String("file", step.file))
				report.Skipped = append(report.Skipped, step.entity)
				continue
			}
			return report, fmt.Errorf("stat %s: %w", step.file, err)
		}

		rows, err := ReadCSVFile(path)
		if err != nil {
			return report, err
		}
		n, err := step.write(ctx, rows)
		if err != nil {
			return report, fmt.Errorf("import %s: %w", step.file, err)
		}
		report.wrote(step.entity, n)
		log.Info("imported export file", zap.String("file", step.file), zap.Int("count", n))
	}
	return report, nil
}

func (im *Importer) writeProfileRows(ctx context.Context, rows []Row) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if err := im.store.UpsertProfile(ctx, NormalizeProfile(rows[0])); err != nil {
		return 0, err
	}
	return 1, nil
}

func (im *Importer) writePositionRows(ctx context.Context, rows []Row) (int, error) {
	experience := NormalizePositions(rows)
	return len(experience), im.store.InsertExperience(ctx, experience)
}

func (im *Importer) writeCertificationRows(ctx context.Context, rows []Row) (int, error) {
	certs := NormalizeCertifications(rows)
	return len(certs), im.store.InsertCertifications(ctx, certs)
}

func (im *Importer) writeSkillRows(ctx context.Context, rows []Row) (int, error) {
	skills := NormalizeSkills(rows)
	return len(skills), im.store.InsertSkills(ctx, skills)
}

func (im *Importer) writeConnectionRows(ctx context.Context, rows []Row) (int, error) {
	conns := NormalizeConnections(rows)
	return len(conns), im.store.UpsertConnections(ctx, conns)
}
