package models

import "time"

// ProfileID is the id of the single profile row.
const ProfileID = "me"

// Profile is the owner's top card.
type Profile struct {
	ID               string `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Headline         string `json:"headline"`
	Summary          string `json:"summary"`
	Location         string `json:"location"`
	ProfileURL       string `json:"profileUrl"`
	ProfilePicture   string `json:"profilePicture"`
	ConnectionsCount int    `json:"connectionsCount"`
	FollowersCount   int    `json:"followersCount"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}

// Experience is one position. A nil EndDate means the position is ongoing.
type Experience struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	CompanyURL  string   `json:"companyUrl"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Current     bool     `json:"current"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

// Certification is a license or certificate.
type Certification struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	IssuingOrganization string   `json:"issuingOrganization"`
	IssueDate           string   `json:"issueDate"`
	ExpirationDate      *string  `json:"expirationDate"`
	CredentialID        string   `json:"credentialId"`
	CredentialURL       string   `json:"credentialUrl"`
	Skills              []string `json:"skills"`
	CreatedAt           string   `json:"createdAt,omitempty"`
}

// Skill is a listed skill with its endorsement count.
type Skill struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Endorsements int    `json:"endorsements"`
	Featured     bool   `json:"featured"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// Post is an authored post. A zero PublishedAt is stored as NULL.
type Post struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"publishedAt"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	Shares      int       `json:"shares"`
	URL         string    `json:"url"`
	ImageURLs   []string  `json:"imageUrls"`
	CreatedAt   string    `json:"createdAt,omitempty"`
}

// Connection is a first-degree connection.
type Connection struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Headline    string     `json:"headline"`
	ProfileURL  string     `json:"profileUrl"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	ConnectedAt *time.Time `json:"connectedAt"`
	CreatedAt   string     `json:"createdAt,omitempty"`
}

// SyncStatus summarises what has been imported so far.
type SyncStatus struct {
	LastSync   string         `json:"lastSync"`
	DataStatus DataStatus     `json:"dataStatus"`
	Counts     map[string]int `json:"counts"`
}

// DataStatus flags which entity types hold at least one row.
type DataStatus struct {
	Profile        bool `json:"profile"`
	Experience     bool `json:"experience"`
	Certifications bool `json:"certifications"`
	Skills         bool `json:"skills"`
	Posts          bool `json:"posts"`
	Connections    bool `json:"connections"`
}
