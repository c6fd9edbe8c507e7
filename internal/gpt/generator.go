package gpt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/amatch/skillmatch/internal/config"
	"github.com/amatch/skillmatch/internal/models"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

const systemPrompt = `You are a learning resource expert. Given a list of skill gaps,
recommend specific, high-quality learning resources (real courses and
certifications where possible). Respond with ONLY a JSON array, no markdown,
where each element has the fields: "title", "type", "provider", "duration",
"skills" (array of skill names from the input), "level", "url", "description".`

// Generator asks a chat-completions model for learning-resource suggestions.
// Every failure path degrades to a static fallback catalog; callers never see
// an error from generation.
type Generator struct {
	cfg    *config.Config
	client *openai.Client
}

// New returns nil when no chat-completions backend is configured, which
// disables GPT generation without disabling the recommender.
func New(cfg *config.Config) *Generator {
	if !cfg.GPTConfigured() {
		return nil
	}

	var client *openai.Client
	if cfg.UseAzureOpenAI() {
		client = openai.NewClient(
			option.WithBaseURL(fmt.Sprintf("%s/openai/deployments/%s/", strings.TrimRight(cfg.AzureOpenAIEndpoint, "/"), cfg.AzureChatDeployment)),
			option.WithHeader("api-key", cfg.AzureOpenAIAPIKey),
			option.WithQuery("api-version", "2024-02-01"),
		)
	} else {
		client = openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey))
	}
	return &Generator{cfg: cfg, client: client}
}

// GenerateResources suggests up to max external resources for the top skill
// gaps.
func (g *Generator) GenerateResources(ctx context.Context, gaps []models.SkillGap, max int) []models.LearningResource {
	if len(gaps) == 0 || max <= 0 {
		return nil
	}

	// Only the worst three gaps go into the prompt; the rest would dilute it.
	top := gaps
	if len(top) > 3 {
		top = top[:3]
	}

	var lines []string
	for _, gap := range top {
		lines = append(lines, fmt.Sprintf("- %s: current level %d, need level %d (priority: %s)",
			strings.ReplaceAll(gap.SkillName, "_", " "), gap.CurrentLevel, gap.RequiredLevel, gap.Priority))
	}
	userPrompt := fmt.Sprintf("Recommend learning resources for these skill gaps:\n\n%s\n\nProvide %d resources total.",
		strings.Join(lines, "\n"), max)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		}),
		Model:       openai.F(g.cfg.GPTModel),
		MaxTokens:   openai.F(int64(1200)),
		Temperature: openai.F(0.7),
	})
	if err != nil {
		log.WithError(err).Warn("GPT resource generation failed, using fallback")
		return FallbackResources(gaps, max)
	}
	if len(completion.Choices) == 0 {
		return FallbackResources(gaps, max)
	}

	resources, err := ParseResources(completion.Choices[0].Message.Content)
	if err != nil {
		log.WithError(err).Warn("unparseable GPT response, using fallback")
		return FallbackResources(gaps, max)
	}
	if len(resources) > max {
		resources = resources[:max]
	}
	return resources
}

// ParseResources decodes a model response into resources, tolerating markdown
// code fences around the JSON.
func ParseResources(raw string) ([]models.LearningResource, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var resources []models.LearningResource
	if err := json.Unmarshal([]byte(raw), &resources); err != nil {
		return nil, fmt.Errorf("parsing generated resources: %w", err)
	}

	for i := range resources {
		if resources[i].ID == "" {
			resources[i].ID = fmt.Sprintf("gpt_%d", i+1)
		}
		if resources[i].Type == "" {
			resources[i].Type = "course"
		}
		if resources[i].Duration == "" {
			resources[i].Duration = "4-6 weeks"
		}
		resources[i].IsInternal = false
	}
	return resources, nil
}

// fallbackTemplates holds curated suggestions for common skills.
var fallbackTemplates = map[string]models.LearningResource{
	"python": {
		Title:    "Python for Everybody Specialization",
		Type:     "specialization",
		Provider: "Coursera",
		Level:    "beginner",
		URL:      "https://coursera.org/specializations/python",
	},
	"javascript": {
		Title:    "JavaScript: The Complete Guide",
		Type:     "course",
		Provider: "Udemy",
		Level:    "beginner",
		URL:      "https://udemy.com/javascript-complete-guide",
	},
	"machine_learning": {
		Title:    "Machine Learning Specialization",
		Type:     "specialization",
		Provider: "Coursera",
		Level:    "intermediate",
		URL:      "https://coursera.org/specializations/machine-learning-introduction",
	},
	"project_management": {
		Title:    "Google Project Management Certificate",
		Type:     "certification",
		Provider: "Coursera",
		Level:    "beginner",
		URL:      "https://coursera.org/professional-certificates/google-project-management",
	},
}

// FallbackResources builds generic suggestions when generation is
// unavailable, one per gap.
func FallbackResources(gaps []models.SkillGap, max int) []models.LearningResource {
	var resources []models.LearningResource
	for i, gap := range gaps {
		if len(resources) >= max {
			break
		}

		res, ok := fallbackTemplates[gap.SkillName]
		if !ok {
			display := strings.ReplaceAll(gap.SkillName, "_", " ")
			level := "beginner"
			if gap.CurrentLevel > 0 {
				level = "intermediate"
			}
			res = models.LearningResource{
				Title:    "Learn " + titleCase(display),
				Type:     "course",
				Provider: "Online Learning Platform",
				Level:    level,
				URL:      "https://www.coursera.org/search?query=" + strings.ReplaceAll(gap.SkillName, "_", "+"),
			}
		}

		res.ID = fmt.Sprintf("fallback_%d", i+1)
		res.Duration = "4-6 weeks"
		res.Skills = []string{gap.SkillName}
		res.Description = fmt.Sprintf("Develop your %s skills with this resource", strings.ReplaceAll(gap.SkillName, "_", " "))
		res.Rating = 4.0
		res.Price = "Variable"
		res.IsInternal = false
		resources = append(resources, res)
	}
	return resources
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
