package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/models"
)

// connectionNamespace seeds the name-based UUIDs of imported connections.
var connectionNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://www.linkedin.com/mynetwork/connections"))

// NormalizeProfile maps the first row of Profile.csv.
func NormalizeProfile(row Row) models.Profile {
	return models.Profile{
		ID:               models.ProfileID,
		FirstName:        row.Get("First Name"),
		LastName:         row.Get("Last Name"),
		Headline:         row.Get("Headline"),
		Summary:          row.Get("Summary"),
		Location:         row.Get("Location", "Geo Location"),
		ProfileURL:       row.Get("Public Profile URL", "Websites"),
		ProfilePicture:   "",
		ConnectionsCount: leadingInt(row.Get("Connections")),
		FollowersCount:   leadingInt(row.Get("Followers")),
	}
}

// NormalizePositions maps Positions.csv. Ids follow row order, so re-importing
// the same file reproduces the same ids.
func NormalizePositions(rows []Row) []models.Experience {
	experience := make([]models.Experience, 0, len(rows))
	for i, row := range rows {
		end := optional(row.Get("Finished On"))
		experience = append(experience, models.Experience{
			ID:          fmt.Sprintf("exp-%d", i),
			Title:       row.Get("Title"),
			Company:     row.Get("Company Name"),
			CompanyURL:  row.Get("Company URL"),
			Location:    row.Get("Location"),
			StartDate:   row.Get("Started On"),
			EndDate:     end,
			Description: row.Get("Description"),
			Skills:      []string{},
			Current:     end == nil,
		})
	}
	return experience
}

// NormalizeCertifications maps Certifications.csv.
func NormalizeCertifications(rows []Row) []models.Certification {
	certs := make([]models.Certification, 0, len(rows))
	for i, row := range rows {
		certs = append(certs, models.Certification{
			ID:                  fmt.Sprintf("cert-%d", i),
			Name:                row.Get("Name"),
			IssuingOrganization: row.Get("Organization", "Authority"),
			IssueDate:           row.Get("Started On"),
			ExpirationDate:      optional(row.Get("Finished On")),
			CredentialID:        row.Get("License Number"),
			CredentialURL:       row.Get("Url", "URL"),
			Skills:              []string{},
		})
	}
	return certs
}

// NormalizeSkills maps Skills.csv. Exports without an endorsement column yield 0.
func NormalizeSkills(rows []Row) []models.Skill {
	skills := make([]models.Skill, 0, len(rows))
	for i, row := range rows {
		skills = append(skills, models.Skill{
			ID:           fmt.Sprintf("skill-%d", i),
			Name:         row.Get("Name"),
			Endorsements: leadingInt(row.Get("Endorsement Count")),
			Featured:     false,
		})
	}
	return skills
}

// NormalizeConnections maps Connections.csv. The id is derived from the
// profile URL, falling back to the name and row index, so re-imports upsert
// the same rows even if LinkedIn reorders the file.
func NormalizeConnections(rows []Row) []models.Connection {
	conns := make([]models.Connection, 0, len(rows))
	for i, row := range rows {
		c := models.Connection{
			FirstName:   row.Get("First Name"),
			LastName:    row.Get("Last Name"),
			Headline:    row.Get("Position", "Headline"),
			ProfileURL:  row.Get("URL", "Profile URL"),
			Company:     row.Get("Company"),
			Location:    row.Get("Location"),
			ConnectedAt: parseDate(row.Get("Connected On")),
		}
		c.ID = connectionID(c, i)
		conns = append(conns, c)
	}
	return conns
}

func connectionID(c models.Connection, index int) string {
	key := c.ProfileURL
	if key == "" {
		key = fmt.Sprintf("%s|%s|%d", c.FirstName, c.LastName, index)
	}
	return uuid.NewSHA1(connectionNamespace, []byte(key)).String()
}

// leadingInt reads the integer prefix of s ("500+" is 500, "1,204" is 1204).
// Anything without a leading digit is 0.
func leadingInt(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var dateLayouts = []string{
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 2006",
	"2006-01-02",
	time.RFC3339,
}

// parseDate accepts the date formats found in LinkedIn exports. Unknown
// formats yield nil.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
