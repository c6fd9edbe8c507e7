package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string
	DataDir  string

	// Matching settings.
	SkillMatchThreshold  float64
	RecommendationCount  int
	MaxLearningResources int

	// Optional GPT resource generation. Credentials are never required by
	// the matching logic itself.
	UseGPTGeneration    bool
	GPTModel            string
	OpenAIAPIKey        string
	AzureOpenAIEndpoint string
	AzureOpenAIAPIKey   string
	AzureChatDeployment string
}

func Load() (*Config, error) {
	// .env is optional; a deployed instance may configure the environment
	// directly.
	_ = godotenv.Load()

	return &Config{
		HTTPPort: getEnv("HTTP_PORT", ":8080"),
		DataDir:  getEnv("DATA_DIR", "data"),

		SkillMatchThreshold:  getEnvFloat("SKILL_MATCH_THRESHOLD", 0.7),
		RecommendationCount:  getEnvInt("RECOMMENDATION_COUNT", 5),
		MaxLearningResources: getEnvInt("MAX_LEARNING_RESOURCES", 10),

		UseGPTGeneration:    getEnvBool("USE_GPT_RESOURCE_GENERATION", true),
		GPTModel:            getEnv("GPT_MODEL", "gpt-4"),
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		AzureOpenAIEndpoint: os.Getenv("AZURE_OPENAI_ENDPOINT"),
		AzureOpenAIAPIKey:   os.Getenv("AZURE_OPENAI_API_KEY"),
		AzureChatDeployment: getEnv("AZURE_OPENAI_CHAT_DEPLOYMENT", "gpt-4"),
	}, nil
}

// UseAzureOpenAI reports whether the Azure endpoint should be preferred over
// the public OpenAI API.
func (c *Config) UseAzureOpenAI() bool {
	return c.AzureOpenAIEndpoint != "" && c.AzureOpenAIAPIKey != ""
}

// GPTConfigured reports whether any chat-completions backend is reachable.
func (c *Config) GPTConfigured() bool {
	return c.UseAzureOpenAI() || c.OpenAIAPIKey != ""
}

func (c *Config) SkillsTaxonomyFile() string {
	return filepath.Join(c.DataDir, "skills_taxonomy.json")
}

func (c *Config) PositionsFile() string {
	return filepath.Join(c.DataDir, "positions.json")
}

func (c *Config) LearningResourcesFile() string {
	return filepath.Join(c.DataDir, "learning_resources.json")
}

func (c *Config) EmployeesFile() string {
	return filepath.Join(c.DataDir, "employees.json")
}

// Validate returns human-readable configuration problems. An empty slice
// means the service can start.
func (c *Config) Validate() []string {
	var issues []string

	if c.UseGPTGeneration && !c.GPTConfigured() {
		issues = append(issues, "USE_GPT_RESOURCE_GENERATION is enabled but neither Azure OpenAI nor OpenAI API key is configured")
	}
	if c.SkillMatchThreshold < 0 || c.SkillMatchThreshold > 1 {
		issues = append(issues, "SKILL_MATCH_THRESHOLD must be between 0 and 1")
	}

	for _, f := range []string{c.SkillsTaxonomyFile(), c.PositionsFile(), c.LearningResourcesFile()} {
		if _, err := os.Stat(f); err != nil {
			issues = append(issues, "data file missing: "+f)
		}
	}

	return issues
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return strings.EqualFold(v, "true") || v == "1"
	}
	return def
}
