package gpt

import (
	"testing"

	"github.com/amatch/skillmatch/internal/config"
	"github.com/amatch/skillmatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnconfigured(t *testing.T) {
	assert.Nil(t, New(&config.Config{}), "no credentials means no generator")
}

func TestParseResources(t *testing.T) {
	t.Run("plain JSON array", func(t *testing.T) {
		raw := `[{"title": "Go Course", "provider": "Coursera", "skills": ["golang"], "level": "beginner", "url": "https://example.com", "description": "Go"}]`

		resources, err := ParseResources(raw)
		require.NoError(t, err)
		require.Len(t, resources, 1)
		assert.Equal(t, "Go Course", resources[0].Title)
		// Defaults fill the fields the model omitted.
		assert.Equal(t, "gpt_1", resources[0].ID)
		assert.Equal(t, "course", resources[0].Type)
		assert.Equal(t, "4-6 weeks", resources[0].Duration)
		assert.False(t, resources[0].IsInternal)
	})

	t.Run("markdown code fences are tolerated", func(t *testing.T) {
		raw := "```json\n[{\"title\": \"SQL Course\"}]\n```"

		resources, err := ParseResources(raw)
		require.NoError(t, err)
		require.Len(t, resources, 1)
		assert.Equal(t, "SQL Course", resources[0].Title)
	})

	t.Run("generated resources are never internal", func(t *testing.T) {
		raw := `[{"title": "X", "is_internal": true}]`

		resources, err := ParseResources(raw)
		require.NoError(t, err)
		assert.False(t, resources[0].IsInternal)
	})

	t.Run("prose is an error", func(t *testing.T) {
		_, err := ParseResources("Here are some great courses for you!")
		assert.Error(t, err)
	})
}

func TestFallbackResources(t *testing.T) {
	gaps := []models.SkillGap{
		{SkillName: "python", CurrentLevel: 0, RequiredLevel: 3, Gap: 3, Priority: "high"},
		{SkillName: "kubernetes", CurrentLevel: 2, RequiredLevel: 4, Gap: 2, Priority: "medium"},
	}

	resources := FallbackResources(gaps, 10)
	require.Len(t, resources, 2)

	// Curated template for python.
	assert.Equal(t, "Python for Everybody Specialization", resources[0].Title)
	assert.Equal(t, []string{"python"}, resources[0].Skills)

	// Generic template for unmapped skills; already at level 2 so the
	// resource targets intermediate.
	assert.Equal(t, "Learn Kubernetes", resources[1].Title)
	assert.Equal(t, "intermediate", resources[1].Level)

	for _, res := range resources {
		assert.False(t, res.IsInternal)
		assert.NotEmpty(t, res.URL)
	}
}

func TestFallbackResourcesCap(t *testing.T) {
	gaps := []models.SkillGap{
		{SkillName: "a", Gap: 1},
		{SkillName: "b", Gap: 1},
		{SkillName: "c", Gap: 1},
	}
	assert.Len(t, FallbackResources(gaps, 2), 2)
	assert.Empty(t, FallbackResources(nil, 5))
}
