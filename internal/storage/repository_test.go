package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/models"
)

func skillSet(names ...string) []models.Skill {
	skills := make([]models.Skill, len(names))
	for i, n := range names {
		skills[i] = models.Skill{ID: fmt.Sprintf("skill-%d", i), Name: n, Endorsements: len(names) - i}
	}
	return skills
}

func strPtr(s string) *string { return &s }

func TestProfileUpsert(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	got, err := s.GetProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "empty store has no profile")

	require.NoError(t, s.UpsertProfile(ctx, models.Profile{
		ID: "me", FirstName: "Ada", LastName: "Lovelace", Headline: "Engineer", ConnectionsCount: 500,
	}))
	require.NoError(t, s.UpsertProfile(ctx, models.Profile{
		ID: "me", FirstName: "Ada", LastName: "King", Headline: "Mathematician", FollowersCount: 42,
	}))

	got, err = s.GetProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "King", got.LastName)
	assert.Equal(t, "Mathematician", got.Headline)
	assert.Equal(t, 0, got.ConnectionsCount)
	assert.Equal(t, 42, got.FollowersCount)
	assert.NotEmpty(t, got.UpdatedAt)

	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM profile`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestProfileUpsertDefaultsID(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.UpsertProfile(ctx, models.Profile{FirstName: "Ada"}))
	got, err := s.GetProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.ProfileID, got.ID)
}

func TestProfileStaysSingleRow(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.UpsertProfile(ctx, models.Profile{ID: "x", FirstName: "Scraped"}))
	require.NoError(t, s.UpsertProfile(ctx, models.Profile{ID: models.ProfileID, FirstName: "Exported"}))

	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM profile`).Scan(&n))
	assert.Equal(t, 1, n)

	got, err := s.GetProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.ProfileID, got.ID)
	assert.Equal(t, "Exported", got.FirstName)
}

func TestExperienceRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.InsertExperience(ctx, []models.Experience{
		{ID: "exp-0", Title: "Staff Engineer", Company: "Acme", StartDate: "2022-01", Skills: []string{"x", "y"}, Current: true},
		{ID: "exp-1", Title: "Engineer", Company: "Initech", StartDate: "2019-05", EndDate: strPtr("2021-12"), Skills: nil},
	}))

	got, err := s.GetExperience(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "exp-0", got[0].ID)
	assert.Equal(t, []string{"x", "y"}, got[0].Skills)
	assert.True(t, got[0].Current)
	assert.Nil(t, got[0].EndDate)

	assert.Equal(t, []string{}, got[1].Skills, "absent skills read back as an empty list")
	assert.False(t, got[1].Current)
	require.NotNil(t, got[1].EndDate)
	assert.Equal(t, "2021-12", *got[1].EndDate)
}

func TestReplaceSemantics(t *testing.T) {
	ctx := context.Background()

	t.Run("experience", func(t *testing.T) {
		s := openTestStore(t)
		require.NoError(t, s.InsertExperience(ctx, []models.Experience{{ID: "a"}, {ID: "b"}}))
		require.NoError(t, s.InsertExperience(ctx, []models.Experience{{ID: "c"}}))

		got, err := s.GetExperience(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "c", got[0].ID)

		require.NoError(t, s.InsertExperience(ctx, nil))
		got, err = s.GetExperience(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("certifications", func(t *testing.T) {
		s := openTestStore(t)
		require.NoError(t, s.InsertCertifications(ctx, []models.Certification{{ID: "a"}, {ID: "b"}}))
		require.NoError(t, s.InsertCertifications(ctx, []models.Certification{{ID: "b", Name: "New"}}))

		got, err := s.GetCertifications(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "New", got[0].Name)

		require.NoError(t, s.InsertCertifications(ctx, []models.Certification{}))
		got, err = s.GetCertifications(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("skills", func(t *testing.T) {
		s := openTestStore(t)
		require.NoError(t, s.InsertSkills(ctx, skillSet("Go", "SQL", "Rust")))
		require.NoError(t, s.InsertSkills(ctx, skillSet("Kotlin")))

		got, err := s.GetSkills(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Kotlin", got[0].Name)

		require.NoError(t, s.InsertSkills(ctx, nil))
		got, err = s.GetSkills(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestReplaceRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.InsertSkills(ctx, skillSet("Go", "SQL")))

	// Duplicate ids violate the primary key halfway through the batch.
	err := s.InsertSkills(ctx, []models.Skill{{ID: "dup", Name: "A"}, {ID: "dup", Name: "B"}})
	require.Error(t, err)

	got, err := s.GetSkills(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2, "failed batch must leave the previous set in place")
}

func TestExperienceOrderIsLexical(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.InsertExperience(ctx, []models.Experience{
		{ID: "a", StartDate: "Jan 2023"},
		{ID: "b", StartDate: "Sep 2019"},
		{ID: "c", StartDate: "Dec 2021"},
	}))

	got, err := s.GetExperience(ctx)
	require.NoError(t, err)
	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	// Month names sort alphabetically, not by calendar.
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestCertificationsOrderedByIssueDate(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.InsertCertifications(ctx, []models.Certification{
		{ID: "old", IssueDate: "2019-03", Skills: []string{"k8s"}},
		{ID: "new", IssueDate: "2024-01", ExpirationDate: strPtr("2027-01")},
	}))

	got, err := s.GetCertifications(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "2027-01", *got[0].ExpirationDate)
	assert.Equal(t, []string{"k8s"}, got[1].Skills)
	assert.Nil(t, got[1].ExpirationDate)
}

func TestSkillsOrderedByEndorsements(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.InsertSkills(ctx, []models.Skill{
		{ID: "s1", Name: "SQL", Endorsements: 3},
		{ID: "s2", Name: "Go", Endorsements: 25, Featured: true},
		{ID: "s3", Name: "Rust", Endorsements: 10},
	}))

	got, err := s.GetSkills(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Go", got[0].Name)
	assert.True(t, got[0].Featured)
	assert.Equal(t, "Rust", got[1].Name)
	assert.False(t, got[1].Featured)
	assert.Equal(t, "SQL", got[2].Name)
}

func TestPostsUpsertKeepsOtherRows(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.InsertPosts(ctx, []models.Post{
		{ID: "p1", Content: "first", PublishedAt: base, ImageURLs: []string{"https://img/1"}},
		{ID: "p2", Content: "second", PublishedAt: base.Add(time.Hour)},
	}))
	require.NoError(t, s.InsertPosts(ctx, []models.Post{
		{ID: "p1", Content: "first (edited)", PublishedAt: base, Likes: 7},
	}))

	got, err := s.GetRecentPosts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	byID := map[string]models.Post{}
	for _, p := range got {
		byID[p.ID] = p
	}
	assert.Equal(t, "first (edited)", byID["p1"].Content)
	assert.Equal(t, 7, byID["p1"].Likes)
	assert.Equal(t, []string{}, byID["p1"].ImageURLs)
	assert.Equal(t, "second", byID["p2"].Content)
	assert.True(t, byID["p2"].PublishedAt.Equal(base.Add(time.Hour)))
}

func TestGetRecentPostsLimit(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.InsertPosts(ctx, []models.Post{
		{ID: "old", PublishedAt: base},
		{ID: "newest", PublishedAt: base.Add(48 * time.Hour)},
		{ID: "middle", PublishedAt: base.Add(24 * time.Hour)},
	}))

	got, err := s.GetRecentPosts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "newest", got[0].ID)
	assert.Equal(t, "middle", got[1].ID)
}

func TestGetRecentPostsDefaultLimit(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	posts := make([]models.Post, 15)
	for i := range posts {
		posts[i] = models.Post{ID: fmt.Sprintf("p%02d", i), PublishedAt: base.Add(time.Duration(i) * time.Minute)}
	}
	require.NoError(t, s.InsertPosts(ctx, posts))

	got, err := s.GetRecentPosts(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultPostLimit)
	assert.Equal(t, "p14", got[0].ID)
}

func TestPostWithoutPublishTimeSortsLast(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.InsertPosts(ctx, []models.Post{
		{ID: "undated"},
		{ID: "dated", PublishedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	}))

	got, err := s.GetRecentPosts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "dated", got[0].ID)
	assert.True(t, got[1].PublishedAt.IsZero())
}
