package recommender

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/amatch/skillmatch/internal/config"
	"github.com/amatch/skillmatch/internal/matcher"
	"github.com/amatch/skillmatch/internal/models"
	"github.com/amatch/skillmatch/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const positionsFixture = `{
  "current_positions": [],
  "open_positions": [
    {
      "id": "pos_analyst",
      "title": "Data Analyst",
      "department": "Analytics",
      "level": "mid",
      "required_skills": {"python": 3, "sql": 3, "data_analysis": 3},
      "preferred_skills": {"statistics": 2}
    },
    {
      "id": "pos_ml",
      "title": "ML Engineer",
      "department": "Analytics",
      "level": "senior",
      "required_skills": {"python": 4, "machine_learning": 4},
      "preferred_skills": {}
    }
  ]
}`

const resourcesFixture = `{
  "resources": [
    {
      "id": "res_python_ext",
      "title": "Python Course",
      "type": "course",
      "provider": "Coursera",
      "duration": "6 weeks",
      "skills": ["python"],
      "level": "beginner",
      "url": "https://example.com/python",
      "description": "Python",
      "rating": 4.9,
      "is_internal": false
    },
    {
      "id": "res_python_int",
      "title": "Internal Python Bootcamp",
      "type": "course",
      "provider": "L&D",
      "duration": "4 weeks",
      "skills": ["python"],
      "level": "beginner",
      "url": "https://learning.internal/python",
      "description": "Python",
      "rating": 4.0,
      "is_internal": true
    },
    {
      "id": "res_sql",
      "title": "SQL Essentials",
      "type": "course",
      "provider": "L&D",
      "duration": "3 weeks",
      "skills": ["sql", "data_analysis"],
      "level": "beginner",
      "url": "https://learning.internal/sql",
      "description": "SQL",
      "rating": 4.2,
      "is_internal": true
    },
    {
      "id": "res_leadership",
      "title": "Leadership Lab",
      "type": "workshop",
      "provider": "L&D",
      "duration": "4 weeks",
      "skills": ["leadership"],
      "level": "intermediate",
      "url": "https://learning.internal/leadership",
      "description": "Leadership",
      "rating": 4.8,
      "is_internal": true
    }
  ]
}`

func newTestRecommender(t *testing.T) *Recommender {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "positions.json"), []byte(positionsFixture), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "learning_resources.json"), []byte(resourcesFixture), 0644))

	cfg := &config.Config{
		DataDir:              dir,
		SkillMatchThreshold:  0.7,
		RecommendationCount:  5,
		MaxLearningResources: 10,
	}
	st := store.New(cfg)
	return New(cfg, st, matcher.New(cfg, st), nil)
}

func loadCatalog(t *testing.T, r *Recommender) []models.LearningResource {
	t.Helper()
	catalog, err := r.store.LearningResources()
	require.NoError(t, err)
	return catalog
}

func TestRankResources(t *testing.T) {
	r := newTestRecommender(t)
	catalog := loadCatalog(t, r)

	t.Run("empty gap list yields nothing", func(t *testing.T) {
		assert.Empty(t, RankResources(catalog, nil, true, 10))
	})

	t.Run("every result shares a tag with the gaps", func(t *testing.T) {
		gaps := []models.SkillGap{
			{SkillName: "python", Gap: 2},
			{SkillName: "sql", Gap: 1},
		}
		results := RankResources(catalog, gaps, true, 10)
		require.NotEmpty(t, results)

		gapSkills := map[string]bool{"python": true, "sql": true}
		for _, res := range results {
			found := false
			for _, tag := range res.Skills {
				if gapSkills[tag] {
					found = true
				}
			}
			assert.True(t, found, "resource %s shares no tag with the gap list", res.ID)
		}
	})

	t.Run("largest deficiency ranks first", func(t *testing.T) {
		gaps := []models.SkillGap{
			{SkillName: "python", Gap: 1},
			{SkillName: "sql", Gap: 3},
		}
		results := RankResources(catalog, gaps, true, 10)
		require.NotEmpty(t, results)
		assert.Equal(t, "res_sql", results[0].ID)
	})

	t.Run("internal before external at equal coverage", func(t *testing.T) {
		gaps := []models.SkillGap{{SkillName: "python", Gap: 2}}
		results := RankResources(catalog, gaps, true, 10)
		require.Len(t, results, 2)
		// Both python resources cover the same deficiency; the internal one
		// wins despite the lower rating.
		assert.Equal(t, "res_python_int", results[0].ID)
		assert.Equal(t, "res_python_ext", results[1].ID)
	})

	t.Run("external resources can be excluded", func(t *testing.T) {
		gaps := []models.SkillGap{{SkillName: "python", Gap: 2}}
		results := RankResources(catalog, gaps, false, 10)
		require.Len(t, results, 1)
		assert.True(t, results[0].IsInternal)
	})

	t.Run("result count is capped", func(t *testing.T) {
		gaps := []models.SkillGap{
			{SkillName: "python", Gap: 2},
			{SkillName: "sql", Gap: 2},
		}
		results := RankResources(catalog, gaps, true, 1)
		assert.Len(t, results, 1)
	})
}

func TestGenerateLearningPlan(t *testing.T) {
	r := newTestRecommender(t)

	employee := models.Employee{
		ID:     "emp1",
		Skills: map[string]int{"python": 1},
	}

	plan, err := r.GenerateLearningPlan(context.Background(), employee, "Data Analyst", true, 0)
	require.NoError(t, err)
	require.NotNil(t, plan)

	assert.Equal(t, "emp1", plan.EmployeeID)
	assert.Equal(t, "Data Analyst", plan.TargetRole)
	// Required {python:3, sql:3, data_analysis:3} against {python:1}.
	assert.Len(t, plan.SkillGaps, 3)
	assert.NotEmpty(t, plan.RecommendedResources)
	assert.NotEmpty(t, plan.EstimatedDuration)
}

func TestGenerateLearningPlanByPositionID(t *testing.T) {
	r := newTestRecommender(t)

	plan, err := r.GenerateLearningPlan(context.Background(), models.Employee{ID: "emp1"}, "pos_ml", true, 0)
	require.NoError(t, err)
	assert.Len(t, plan.SkillGaps, 2)
}

func TestGenerateLearningPlanInferredRole(t *testing.T) {
	r := newTestRecommender(t)

	// No catalog position is called "Machine Learning Engineer" in this
	// fixture set ("ML Engineer" is), so skills are inferred from the name.
	plan, err := r.GenerateLearningPlan(context.Background(), models.Employee{ID: "emp1"}, "Machine Learning Engineer", true, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, plan.SkillGaps)
	for _, gap := range plan.SkillGaps {
		assert.Contains(t, []string{"python", "machine_learning", "statistics", "data_analysis"}, gap.SkillName)
	}
}

func TestInferSkillGapsFromRole(t *testing.T) {
	t.Run("known role mapping", func(t *testing.T) {
		gaps := InferSkillGapsFromRole("Senior Data Analyst", map[string]int{"python": 3})
		require.NotEmpty(t, gaps)
		for _, gap := range gaps {
			assert.NotEqual(t, "python", gap.SkillName, "met skills should not appear as gaps")
		}
	})

	t.Run("keyword fallback", func(t *testing.T) {
		gaps := InferSkillGapsFromRole("Python and SQL wizard", nil)
		names := make([]string, len(gaps))
		for i, gap := range gaps {
			names[i] = gap.SkillName
		}
		assert.ElementsMatch(t, []string{"python", "sql"}, names)
	})

	t.Run("unknown role yields nothing", func(t *testing.T) {
		assert.Empty(t, InferSkillGapsFromRole("Chief Vibes Officer", nil))
	})
}

func TestTrendingSkills(t *testing.T) {
	r := newTestRecommender(t)

	trending, err := r.TrendingSkills()
	require.NoError(t, err)
	require.NotEmpty(t, trending)

	// python is required by both open positions and must lead.
	assert.Equal(t, "python", trending[0].Skill)
	assert.Equal(t, 2, trending[0].DemandCount)
	assert.InDelta(t, 3.5, trending[0].AverageLevel, 1e-9)
	assert.Equal(t, "medium", trending[0].Trend)

	for i := 1; i < len(trending); i++ {
		assert.LessOrEqual(t, trending[i].DemandCount, trending[i-1].DemandCount)
	}
}

func TestCareerPaths(t *testing.T) {
	r := newTestRecommender(t)

	employee := models.Employee{
		ID:     "emp1",
		Skills: map[string]int{"python": 3, "sql": 3, "data_analysis": 2},
	}

	suggestions, err := r.CareerPaths(employee)
	require.NoError(t, err)
	require.NotEmpty(t, suggestions)

	assert.Equal(t, "Data Analyst", suggestions[0].Position)
	for i := 1; i < len(suggestions); i++ {
		assert.LessOrEqual(t, suggestions[i].MatchScore, suggestions[i-1].MatchScore)
	}
}

func TestEstimateDuration(t *testing.T) {
	mk := func(durations ...string) []models.LearningResource {
		resources := make([]models.LearningResource, len(durations))
		for i, d := range durations {
			resources[i] = models.LearningResource{Duration: d}
		}
		return resources
	}

	tests := []struct {
		name      string
		resources []models.LearningResource
		want      string
	}{
		{"empty", nil, "0 hours"},
		{"hours only", mk("10 hours", "20 hours"), "30 hours"},
		{"weeks", mk("4 weeks"), "4 weeks"},
		{"range takes the lower bound", mk("6-8 weeks"), "6 weeks"},
		{"months dominate", mk("3 months", "6-8 weeks", "10 hours"), "4 months"},
		{"unparseable defaults to ten hours", mk("self-paced"), "10 hours"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateDuration(tt.resources))
		})
	}
}
