package ranking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-engine/internal/types"
)

func datePtr(year, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestRank_OrdersByRelevance(t *testing.T) {
	jd := "Backend role using Go, Kubernetes and PostgreSQL microservices."

	projects := []types.Project{
		{
			ID:           uuid.New(),
			Title:        "Inventory Tracker",
			Description:  "Desktop tool for warehouse counts",
			Technologies: []string{"Java", "Swing"},
		},
		{
			ID:           uuid.New(),
			Title:        "Order Platform",
			Description:  "Microservices platform handling order flow",
			Technologies: []string{"Go", "Kubernetes", "PostgreSQL"},
		},
	}

	ranked := Rank(projects, jd, 5)
	require.Len(t, ranked, 2)

	assert.Equal(t, "Order Platform", ranked[0].Title)
	assert.Greater(t, ranked[0].RelevanceScore, ranked[1].RelevanceScore)
	assert.ElementsMatch(t, []string{"Go", "Kubernetes", "PostgreSQL"}, ranked[0].MatchingTechnologies)
}

func TestRank_TieBrokenByRecency(t *testing.T) {
	jd := "Anything at all, really"

	finished := types.Project{
		ID: uuid.New(), Title: "Finished", Description: "unrelated",
		EndDate: datePtr(2022, 6, 1),
	}
	older := types.Project{
		ID: uuid.New(), Title: "Older", Description: "unrelated",
		EndDate: datePtr(2019, 1, 1),
	}
	ongoing := types.Project{
		ID: uuid.New(), Title: "Ongoing", Description: "unrelated",
	}

	ranked := Rank([]types.Project{older, finished, ongoing}, jd, 5)
	require.Len(t, ranked, 3)

	assert.Equal(t, "Ongoing", ranked[0].Title)
	assert.Equal(t, "Finished", ranked[1].Title)
	assert.Equal(t, "Older", ranked[2].Title)
}

func TestRank_LimitsResults(t *testing.T) {
	projects := make([]types.Project, 8)
	for i := range projects {
		projects[i] = types.Project{ID: uuid.New(), Title: "P", Description: "Go service"}
	}

	ranked := Rank(projects, "Go engineer wanted", 3)
	assert.Len(t, ranked, 3)
}

func TestRank_RelevanceWithinRange(t *testing.T) {
	projects := []types.Project{
		{ID: uuid.New(), Title: "Everything", Description: "Go Kubernetes PostgreSQL engineer backend"},
	}
	ranked := Rank(projects, "Go Kubernetes PostgreSQL engineer backend", 5)
	require.Len(t, ranked, 1)
	assert.GreaterOrEqual(t, ranked[0].RelevanceScore, 0.0)
	assert.LessOrEqual(t, ranked[0].RelevanceScore, 1.0)
}

func TestAggregateRelevance_MeanOfWindow(t *testing.T) {
	ranked := []types.ProjectRanking{
		{RelevanceScore: 0.8},
		{RelevanceScore: 0.4},
	}
	assert.InDelta(t, 60.0, AggregateRelevance(ranked), 0.001)
}

func TestAggregateRelevance_Empty(t *testing.T) {
	assert.Equal(t, 0.0, AggregateRelevance(nil))
}

func TestRank_Deterministic(t *testing.T) {
	jd := "Go, Python, Kafka and Terraform work"
	projects := []types.Project{
		{ID: uuid.New(), Title: "A", Description: "Go and Kafka pipelines", Technologies: []string{"Go", "Kafka"}},
		{ID: uuid.New(), Title: "B", Description: "Terraform modules", Technologies: []string{"Terraform"}},
		{ID: uuid.New(), Title: "C", Description: "Python scripts", Technologies: []string{"Python"}},
	}

	first := Rank(projects, jd, 5)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Rank(projects, jd, 5))
	}
}
