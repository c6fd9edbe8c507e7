package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPPort)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 0.7, cfg.SkillMatchThreshold)
	assert.Equal(t, 5, cfg.RecommendationCount)
	assert.Equal(t, 10, cfg.MaxLearningResources)
	assert.Equal(t, "gpt-4", cfg.GPTModel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", ":9090")
	t.Setenv("SKILL_MATCH_THRESHOLD", "0.5")
	t.Setenv("RECOMMENDATION_COUNT", "3")
	t.Setenv("USE_GPT_RESOURCE_GENERATION", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPPort)
	assert.Equal(t, 0.5, cfg.SkillMatchThreshold)
	assert.Equal(t, 3, cfg.RecommendationCount)
	assert.False(t, cfg.UseGPTGeneration)
}

func TestLoadIgnoresGarbageNumbers(t *testing.T) {
	t.Setenv("RECOMMENDATION_COUNT", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.RecommendationCount)
}

func TestUseAzureOpenAI(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.UseAzureOpenAI())
	assert.False(t, cfg.GPTConfigured())

	cfg.OpenAIAPIKey = "sk-test"
	assert.True(t, cfg.GPTConfigured())
	assert.False(t, cfg.UseAzureOpenAI())

	cfg.AzureOpenAIEndpoint = "https://example.openai.azure.com"
	cfg.AzureOpenAIAPIKey = "key"
	assert.True(t, cfg.UseAzureOpenAI())
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"skills_taxonomy.json", "positions.json", "learning_resources.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644))
	}

	cfg := &Config{
		DataDir:             dir,
		SkillMatchThreshold: 0.7,
		UseGPTGeneration:    false,
	}
	assert.Empty(t, cfg.Validate())

	cfg.UseGPTGeneration = true
	issues := cfg.Validate()
	assert.Len(t, issues, 1)

	cfg.SkillMatchThreshold = 2
	assert.Len(t, cfg.Validate(), 2)

	cfg.DataDir = filepath.Join(dir, "missing")
	assert.Len(t, cfg.Validate(), 5)
}
