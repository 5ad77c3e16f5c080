package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/models"
)

// Template returns a manual import document filled with placeholder values.
func Template() ManualFile {
	return ManualFile{
		Profile: &models.Profile{
			ID:               models.ProfileID,
			FirstName:        "Your first name",
			LastName:         "Your last name",
			Headline:         "Your headline / professional title",
			Summary:          "Your professional summary...",
			Location:         "Your location",
			ProfileURL:       "https://linkedin.com/in/your-profile",
			ProfilePicture:   "",
			ConnectionsCount: 0,
			FollowersCount:   0,
		},
		Experience: []models.Experience{{
			ID:          "exp-1",
			Title:       "Job title",
			Company:     "Company name",
			CompanyURL:  "",
			Location:    "Location",
			StartDate:   "Jan 2023",
			EndDate:     nil,
			Description: "What you did there...",
			Skills:      []string{"Go", "SQL"},
			Current:     true,
		}},
		Certifications: []models.Certification{{
			ID:                  "cert-1",
			Name:                "Certificate name",
			IssuingOrganization: "Issuing organization",
			IssueDate:           "Jan 2023",
			ExpirationDate:      nil,
			CredentialID:        "ID-12345",
			CredentialURL:       "https://example.com/credential",
			Skills:              []string{"Related skill"},
		}},
		Skills: []models.Skill{{
			ID:           "skill-1",
			Name:         "Go",
			Endorsements: 25,
			Featured:     true,
		}},
		Posts: []ManualPost{{
			ID:          "post-1",
			Content:     "Post content...",
			PublishedAt: "2024-01-15T09:30:00Z",
			Likes:       10,
			Comments:    2,
			Shares:      1,
			URL:         "https://linkedin.com/posts/...",
			ImageURLs:   []string{},
		}},
		Connections: []ManualConnection{{
			ID:          "conn-1",
			FirstName:   "Jane",
			LastName:    "Doe",
			Headline:    "Engineering Manager",
			ProfileURL:  "https://linkedin.com/in/jane-doe",
			Company:     "Acme",
			Location:    "Remote",
			ConnectedAt: "2023-06-01",
		}},
	}
}

// WriteTemplate writes Template to path as JSON, or YAML for .yaml/.yml paths,
// creating the parent directory.
func WriteTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create template dir: %w", err)
	}

	data, err := json.MarshalIndent(Template(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal template: %w", err)
	}

	if isYAML(path) {
		// Round-trip through a generic value so YAML keys keep the JSON names.
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("convert template: %w", err)
		}
		if data, err = yaml.Marshal(doc); err != nil {
			return fmt.Errorf("marshal template: %w", err)
		}
	} else {
		data = append(data, '\n')
	}

	return os.WriteFile(path, data, 0o644)
}
