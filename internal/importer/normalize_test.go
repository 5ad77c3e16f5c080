package importer

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/models"
)

func TestNormalizeProfile(t *testing.T) {
	p := NormalizeProfile(Row{
		"First Name":   "Ada",
		"Last Name":    "Lovelace",
		"Headline":     "Engineer",
		"Geo Location": "London",
		"Websites":     "https://ada.dev",
		"Connections":  "500+",
		"Followers":    "1,204",
	})

	assert.Equal(t, models.ProfileID, p.ID)
	assert.Equal(t, "London", p.Location)
	assert.Equal(t, "https://ada.dev", p.ProfileURL)
	assert.Equal(t, 500, p.ConnectionsCount)
	assert.Equal(t, 1204, p.FollowersCount)
	assert.Empty(t, p.ProfilePicture)
}

func TestNormalizePositions(t *testing.T) {
	exp := NormalizePositions([]Row{
		{"Title": "Staff Engineer", "Company Name": "Acme", "Started On": "Jan 2023", "Finished On": ""},
		{"Title": "Engineer", "Company Name": "Initech", "Started On": "May 2019", "Finished On": "Dec 2022"},
	})

	require.Len(t, exp, 2)
	assert.Equal(t, "exp-0", exp[0].ID)
	assert.True(t, exp[0].Current)
	assert.Nil(t, exp[0].EndDate)
	assert.Equal(t, []string{}, exp[0].Skills)

	assert.Equal(t, "exp-1", exp[1].ID)
	assert.False(t, exp[1].Current)
	require.NotNil(t, exp[1].EndDate)
	assert.Equal(t, "Dec 2022", *exp[1].EndDate)
}

func TestNormalizeCertifications(t *testing.T) {
	certs := NormalizeCertifications([]Row{
		{"Name": "CKA", "Authority": "CNCF", "Started On": "Mar 2024", "License Number": "LF-1", "URL": "https://cncf.io/c/1"},
	})

	require.Len(t, certs, 1)
	assert.Equal(t, "cert-0", certs[0].ID)
	assert.Equal(t, "CNCF", certs[0].IssuingOrganization)
	assert.Equal(t, "https://cncf.io/c/1", certs[0].CredentialURL)
	assert.Nil(t, certs[0].ExpirationDate)
}

func TestNormalizeSkills(t *testing.T) {
	skills := NormalizeSkills([]Row{{"Name": "Go", "Endorsement Count": "12"}, {"Name": "SQL"}})

	require.Len(t, skills, 2)
	assert.Equal(t, "skill-0", skills[0].ID)
	assert.Equal(t, 12, skills[0].Endorsements)
	assert.Equal(t, 0, skills[1].Endorsements)
	assert.False(t, skills[1].Featured)
}

func TestNormalizeConnectionsDeterministicIDs(t *testing.T) {
	rows := []Row{
		{"First Name": "Jane", "Last Name": "Doe", "URL": "https://www.linkedin.com/in/jane", "Company": "Acme", "Position": "CTO", "Connected On": "01 Jun 2023"},
		{"First Name": "John", "Last Name": "Roe", "Company": "Initech", "Connected On": "garbage"},
	}

	first := NormalizeConnections(rows)
	second := NormalizeConnections(rows)
	require.Len(t, first, 2)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[1].ID, second[1].ID)
	assert.NotEqual(t, first[0].ID, first[1].ID)

	_, err := uuid.Parse(first[0].ID)
	assert.NoError(t, err)

	assert.Equal(t, "CTO", first[0].Headline)
	require.NotNil(t, first[0].ConnectedAt)
	assert.True(t, first[0].ConnectedAt.Equal(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.Nil(t, first[1].ConnectedAt)
}

func TestConnectionIDIgnoresRowOrderWhenURLPresent(t *testing.T) {
	jane := Row{"First Name": "Jane", "URL": "https://www.linkedin.com/in/jane"}
	other := Row{"First Name": "Other", "URL": "https://www.linkedin.com/in/other"}

	a := NormalizeConnections([]Row{jane, other})
	b := NormalizeConnections([]Row{other, jane})
	assert.Equal(t, a[0].ID, b[1].ID)
}

func TestLeadingInt(t *testing.T) {
	cases := map[string]int{
		"":      0,
		"42":    42,
		"500+":  500,
		"1,204": 1204,
		" 7 ":   7,
		"n/a":   0,
	}
	for in, want := range cases {
		assert.Equal(t, want, leadingInt(in), "input %q", in)
	}
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"01 Jun 2023", "1 Jun 2023", "2023-06-01"} {
		got := parseDate(in)
		require.NotNil(t, got, in)
		assert.Equal(t, 2023, got.Year())
		assert.Equal(t, time.June, got.Month())
	}
	assert.Nil(t, parseDate(""))
	assert.Nil(t, parseDate("yesterday"))
}
