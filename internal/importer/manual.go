package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/apperror"
	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/models"
)

// ManualFile is the hand-authored (or browser-scraped) import document.
// A nil field means the key was absent or null and that entity is left alone;
// an empty slice still replaces the table.
type ManualFile struct {
	Profile        *models.Profile        `json:"profile"`
	Experience     []models.Experience    `json:"experience"`
	Certifications []models.Certification `json:"certifications"`
	Skills         []models.Skill         `json:"skills"`
	Posts          []ManualPost           `json:"posts"`
	Connections    []ManualConnection     `json:"connections"`

	// Warnings lists values that were coerced or dropped while decoding.
	Warnings []string `json:"-"`
}

// ManualPost is a post as written by hand. PublishedAt is free text because
// scraped files carry whatever the page showed.
type ManualPost struct {
	ID          string   `json:"id"`
	Content     string   `json:"content"`
	PublishedAt string   `json:"publishedAt"`
	Likes       int      `json:"likes"`
	Comments    int      `json:"comments"`
	Shares      int      `json:"shares"`
	URL         string   `json:"url"`
	ImageURLs   []string `json:"imageUrls"`
}

// ManualConnection is a connection as written by hand.
type ManualConnection struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Headline    string `json:"headline"`
	ProfileURL  string `json:"profileUrl"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	ConnectedAt string `json:"connectedAt"`
}

// ParseManual decodes a manual import document. Files ending in .yaml or .yml
// are read as YAML, everything else as JSON. Only a syntax error or a
// non-object top level fails; mistyped fields fall back to zero values.
func ParseManual(path string, data []byte) (*ManualFile, error) {
	var doc any
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, apperror.NewInvalidInput("malformed YAML in "+path, err)
		}
	} else if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperror.NewInvalidInput("malformed JSON in "+path, err)
	}

	root, ok := asRecord(doc)
	if !ok {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("%s must hold an object, got %T", path, doc), nil)
	}
	return decodeManual(root), nil
}

func decodeManual(root map[string]any) *ManualFile {
	fr := &fieldReader{}
	mf := &ManualFile{}

	if n, ok := fr.object(root, "profile"); ok {
		mf.Profile = &models.Profile{
			ID:               models.ProfileID,
			FirstName:        n.str("firstName"),
			LastName:         n.str("lastName"),
			Headline:         n.str("headline"),
			Summary:          n.str("summary"),
			Location:         n.str("location"),
			ProfileURL:       n.str("profileUrl"),
			ProfilePicture:   n.str("profilePicture"),
			ConnectionsCount: n.num("connectionsCount"),
			FollowersCount:   n.num("followersCount"),
		}
	}

	if nodes, ok := fr.list(root, "experience"); ok {
		mf.Experience = make([]models.Experience, 0, len(nodes))
		for _, n := range nodes {
			mf.Experience = append(mf.Experience, models.Experience{
				ID:          n.str("id"),
				Title:       n.str("title"),
				Company:     n.str("company"),
				CompanyURL:  n.str("companyUrl"),
				Location:    n.str("location"),
				StartDate:   n.str("startDate"),
				EndDate:     n.optStr("endDate"),
				Description: n.str("description"),
				Skills:      n.strs("skills"),
				Current:     n.flag("current"),
			})
		}
	}

	if nodes, ok := fr.list(root, "certifications"); ok {
		mf.Certifications = make([]models.Certification, 0, len(nodes))
		for _, n := range nodes {
			mf.Certifications = append(mf.Certifications, models.Certification{
				ID:                  n.str("id"),
				Name:                n.str("name"),
				IssuingOrganization: n.str("issuingOrganization"),
				IssueDate:           n.str("issueDate"),
				ExpirationDate:      n.optStr("expirationDate"),
				CredentialID:        n.str("credentialId"),
				CredentialURL:       n.str("credentialUrl"),
				Skills:              n.strs("skills"),
			})
		}
	}

	if nodes, ok := fr.list(root, "skills"); ok {
		mf.Skills = make([]models.Skill, 0, len(nodes))
		for _, n := range nodes {
			mf.Skills = append(mf.Skills, models.Skill{
				ID:           n.str("id"),
				Name:         n.str("name"),
				Endorsements: n.num("endorsements"),
				Featured:     n.flag("featured"),
			})
		}
	}

	if nodes, ok := fr.list(root, "posts"); ok {
		mf.Posts = make([]ManualPost, 0, len(nodes))
		for _, n := range nodes {
			mf.Posts = append(mf.Posts, ManualPost{
				ID:          n.str("id"),
				Content:     n.str("content"),
				PublishedAt: n.timestamp("publishedAt"),
				Likes:       n.num("likes"),
				Comments:    n.num("comments"),
				Shares:      n.num("shares"),
				URL:         n.str("url"),
				ImageURLs:   n.strs("imageUrls"),
			})
		}
	}

	if nodes, ok := fr.list(root, "connections"); ok {
		mf.Connections = make([]ManualConnection, 0, len(nodes))
		for _, n := range nodes {
			mf.Connections = append(mf.Connections, ManualConnection{
				ID:          n.str("id"),
				FirstName:   n.str("firstName"),
				LastName:    n.str("lastName"),
				Headline:    n.str("headline"),
				ProfileURL:  n.str("profileUrl"),
				Company:     n.str("company"),
				Location:    n.str("location"),
				ConnectedAt: n.timestamp("connectedAt"),
			})
		}
	}

	mf.Warnings = fr.warnings
	return mf
}

// ImportManual imports the document at path. Each top-level key is optional;
// present keys are written in the order profile, experience, certifications,
// skills, posts, connections, and the first failure stops the run.
func (im *Importer) ImportManual(ctx context.Context, path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperror.NewNotFound("import file", path)
		}
		return nil, fmt.Errorf("read import file: %w", err)
	}
	mf, err := ParseManual(path, data)
	if err != nil {
		return nil, err
	}

	log := im.log.With(zap.String("source", path))
	log.Info("importing manual file")
	report := &Report{Source: path, Warnings: mf.Warnings}
	for _, w := range mf.Warnings {
		log.Warn("manual file value fell back to default", zap.String("detail", w))
	}

	if mf.Profile != nil {
		if err := im.store.UpsertProfile(ctx, *mf.Profile); err != nil {
			return report, err
		}
		report.wrote("profile", 1)
		log.Info("profile imported")
	} else {
		report.Skipped = append(report.Skipped, "profile")
	}

	if mf.Experience != nil {
		if err := im.store.InsertExperience(ctx, mf.Experience); err != nil {
			return report, err
		}
		report.wrote("experience", len(mf.Experience))
		log.Info("experience imported", zap.Int("count", len(mf.Experience)))
	} else {
		report.Skipped = append(report.Skipped, "experience")
	}

	if mf.Certifications != nil {
		if err := im.store.InsertCertifications(ctx, mf.Certifications); err != nil {
			return report, err
		}
		report.wrote("certifications", len(mf.Certifications))
		log.Info("certifications imported", zap.Int("count", len(mf.Certifications)))
	} else {
		report.Skipped = append(report.Skipped, "certifications")
	}

	if mf.Skills != nil {
		if err := im.store.InsertSkills(ctx, mf.Skills); err != nil {
			return report, err
		}
		report.wrote("skills", len(mf.Skills))
		log.Info("skills imported", zap.Int("count", len(mf.Skills)))
	} else {
		report.Skipped = append(report.Skipped, "skills")
	}

	if mf.Posts != nil {
		posts := make([]models.Post, 0, len(mf.Posts))
		for _, p := range mf.Posts {
			posts = append(posts, p.toPost())
		}
		if err := im.store.InsertPosts(ctx, posts); err != nil {
			return report, err
		}
		report.wrote("posts", len(posts))
		log.Info("posts imported", zap.Int("count", len(posts)))
	} else {
		report.Skipped = append(report.Skipped, "posts")
	}

	if mf.Connections != nil {
		conns := make([]models.Connection, 0, len(mf.Connections))
		for i, c := range mf.Connections {
			conns = append(conns, c.toConnection(i))
		}
		if err := im.store.UpsertConnections(ctx, conns); err != nil {
			return report, err
		}
		report.wrote("connections", len(conns))
		log.Info("connections imported", zap.Int("count", len(conns)))
	} else {
		report.Skipped = append(report.Skipped, "connections")
	}

	return report, nil
}

func (p ManualPost) toPost() models.Post {
	post := models.Post{
		ID:        p.ID,
		Content:   p.Content,
		Likes:     p.Likes,
		Comments:  p.Comments,
		Shares:    p.Shares,
		URL:       p.URL,
		ImageURLs: p.ImageURLs,
	}
	if t := parseTimestamp(p.PublishedAt); t != nil {
		post.PublishedAt = *t
	}
	return post
}

// toConnection fills a missing id the same way the CSV path derives one.
func (c ManualConnection) toConnection(index int) models.Connection {
	conn := models.Connection{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Headline:    c.Headline,
		ProfileURL:  c.ProfileURL,
		Company:     c.Company,
		Location:    c.Location,
		ConnectedAt: parseTimestamp(c.ConnectedAt),
	}
	if conn.ID == "" {
		conn.ID = connectionID(conn, index)
	}
	return conn
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp reads manual-file timestamps, falling back to the export
// date formats. Unparseable input yields nil.
func parseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return parseDate(s)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
