package recommender

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/amatch/skillmatch/internal/config"
	"github.com/amatch/skillmatch/internal/gpt"
	"github.com/amatch/skillmatch/internal/matcher"
	"github.com/amatch/skillmatch/internal/models"
	"github.com/amatch/skillmatch/internal/store"
)

// Recommender turns skill gaps into ranked learning resources and full
// learning plans.
type Recommender struct {
	cfg       *config.Config
	store     *store.Store
	matcher   *matcher.Matcher
	generator *gpt.Generator
}

func New(cfg *config.Config, st *store.Store, m *matcher.Matcher, gen *gpt.Generator) *Recommender {
	return &Recommender{cfg: cfg, store: st, matcher: m, generator: gen}
}

// RankResources filters the catalog down to resources tagged with at least
// one gap skill and orders them: largest-deficiency coverage first, internal
// before external, then rating. An empty gap list yields an empty result.
func RankResources(catalog []models.LearningResource, gaps []models.SkillGap, includeExternal bool, max int) []models.LearningResource {
	if len(gaps) == 0 {
		return nil
	}

	gapBySkill := make(map[string]int, len(gaps))
	for _, gap := range gaps {
		gapBySkill[gap.SkillName] = gap.Gap
	}

	type scored struct {
		resource models.LearningResource
		coverage int
	}

	var candidates []scored
	for _, res := range catalog {
		if !includeExternal && !res.IsInternal {
			continue
		}
		coverage := 0
		for _, tag := range res.Skills {
			coverage += gapBySkill[tag]
		}
		if coverage == 0 {
			continue
		}
		candidates = append(candidates, scored{resource: res, coverage: coverage})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].coverage != candidates[j].coverage {
			return candidates[i].coverage > candidates[j].coverage
		}
		if candidates[i].resource.IsInternal != candidates[j].resource.IsInternal {
			return candidates[i].resource.IsInternal
		}
		return candidates[i].resource.Rating > candidates[j].resource.Rating
	})

	if max > 0 && len(candidates) > max {
		candidates = candidates[:max]
	}
	resources := make([]models.LearningResource, len(candidates))
	for i, c := range candidates {
		resources[i] = c.resource
	}
	return resources
}

// GenerateLearningPlan builds a plan towards targetRole, which may be a
// position id, a position title, or a free-form role name. Catalog hits come
// first; when GPT generation is enabled, external suggestions are appended
// to fill the remaining slots.
func (r *Recommender) GenerateLearningPlan(ctx context.Context, employee models.Employee, targetRole string, includeExternal bool, maxResources int) (*models.LearningPlan, error) {
	if maxResources <= 0 {
		maxResources = r.cfg.MaxLearningResources
	}

	target, err := r.findPosition(targetRole)
	if err != nil {
		return nil, err
	}

	var gaps []models.SkillGap
	if target != nil {
		gaps = matcher.CalculateSkillGaps(employee.Skills, target.RequiredSkills)
	} else {
		gaps = InferSkillGapsFromRole(targetRole, employee.Skills)
	}

	catalog, err := r.store.LearningResources()
	if err != nil {
		return nil, err
	}
	resources := RankResources(catalog, gaps, includeExternal, maxResources)

	if includeExternal && len(resources) < maxResources && r.cfg.UseGPTGeneration && r.generator != nil && len(gaps) > 0 {
		generated := r.generator.GenerateResources(ctx, gaps, maxResources-len(resources))
		resources = append(resources, generated...)
	}

	return &models.LearningPlan{
		EmployeeID:           employee.ID,
		TargetRole:           targetRole,
		SkillGaps:            gaps,
		RecommendedResources: resources,
		EstimatedDuration:    EstimateDuration(resources),
		CreatedAt:            time.Now(),
	}, nil
}

// SkillRecommendations returns resources for one skill at a target level.
func (r *Recommender) SkillRecommendations(ctx context.Context, skillName string, currentLevel, targetLevel int) ([]models.LearningResource, error) {
	gap := targetLevel - currentLevel
	if gap <= 0 {
		return nil, nil
	}

	gaps := []models.SkillGap{{
		SkillName:     skillName,
		CurrentLevel:  currentLevel,
		RequiredLevel: targetLevel,
		Gap:           gap,
		Priority:      matcher.GapPriority(gap),
	}}

	catalog, err := r.store.LearningResources()
	if err != nil {
		return nil, err
	}
	resources := RankResources(catalog, gaps, true, 5)

	if len(resources) == 0 && r.cfg.UseGPTGeneration && r.generator != nil {
		resources = r.generator.GenerateResources(ctx, gaps, 5)
	}
	return resources, nil
}

// TrendingSkills ranks skills by how often open positions require them.
func (r *Recommender) TrendingSkills() ([]models.TrendingSkill, error) {
	positions, err := r.store.OpenPositions()
	if err != nil {
		return nil, err
	}

	type demand struct {
		count int
		total int
	}
	bySkill := make(map[string]*demand)
	for _, position := range positions {
		for skill, level := range position.RequiredSkills {
			d, ok := bySkill[skill]
			if !ok {
				d = &demand{}
				bySkill[skill] = d
			}
			d.count++
			d.total += level
		}
	}

	trending := make([]models.TrendingSkill, 0, len(bySkill))
	for skill, d := range bySkill {
		avg := float64(d.total) / float64(d.count)
		trend := "low"
		if d.count >= 3 {
			trend = "high"
		} else if d.count >= 2 {
			trend = "medium"
		}
		trending = append(trending, models.TrendingSkill{
			Skill:        skill,
			DemandCount:  d.count,
			AverageLevel: float64(int(avg*10+0.5)) / 10,
			Trend:        trend,
		})
	}

	sort.SliceStable(trending, func(i, j int) bool {
		if trending[i].DemandCount != trending[j].DemandCount {
			return trending[i].DemandCount > trending[j].DemandCount
		}
		if trending[i].AverageLevel != trending[j].AverageLevel {
			return trending[i].AverageLevel > trending[j].AverageLevel
		}
		return trending[i].Skill < trending[j].Skill
	})
	if len(trending) > 10 {
		trending = trending[:10]
	}
	return trending, nil
}

// CareerPaths suggests positions worth growing towards, using a lower
// threshold than position matching.
func (r *Recommender) CareerPaths(employee models.Employee) ([]models.CareerPathSuggestion, error) {
	open, err := r.store.OpenPositions()
	if err != nil {
		return nil, err
	}
	current, err := r.store.CurrentPositions()
	if err != nil {
		return nil, err
	}

	var suggestions []models.CareerPathSuggestion
	for _, position := range append(open, current...) {
		score := matcher.MatchScore(employee.Skills, position)
		if score < 0.5 {
			continue
		}

		gaps := matcher.CalculateSkillGaps(employee.Skills, position.RequiredSkills)
		difficulty := "hard"
		if score >= 0.8 {
			difficulty = "easy"
		} else if score >= 0.6 {
			difficulty = "medium"
		}
		suggestions = append(suggestions, models.CareerPathSuggestion{
			Position:             position.Title,
			Department:           position.Department,
			MatchScore:           float64(int(score*100+0.5)) / 100,
			SkillGapsCount:       len(gaps),
			EstimatedDevelopment: fmt.Sprintf("%d months", len(gaps)*2),
			Difficulty:           difficulty,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchScore > suggestions[j].MatchScore
	})
	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return suggestions, nil
}

func (r *Recommender) findPosition(targetRole string) (*models.Position, error) {
	open, err := r.store.OpenPositions()
	if err != nil {
		return nil, err
	}
	current, err := r.store.CurrentPositions()
	if err != nil {
		return nil, err
	}

	for _, position := range append(open, current...) {
		if strings.EqualFold(position.Title, targetRole) || position.ID == targetRole {
			return &position, nil
		}
	}
	return nil, nil
}

// roleSkillMap covers common roles for which no catalog position exists.
var roleSkillMap = map[string][]string{
	"data analyst":              {"python", "sql", "data_analysis", "statistics"},
	"software developer":        {"python", "javascript", "sql", "problem_solving"},
	"project manager":           {"project_management", "leadership", "communication", "agile"},
	"machine learning engineer": {"python", "machine_learning", "statistics", "data_analysis"},
	"full stack developer":      {"javascript", "react", "nodejs", "sql"},
	"product manager":           {"business_analysis", "project_management", "communication", "agile"},
	"data scientist":            {"python", "machine_learning", "statistics", "data_analysis"},
	"frontend developer":        {"javascript", "react", "web_development"},
	"backend developer":         {"python", "nodejs", "sql", "web_development"},
}

var roleSkillKeywords = map[string]int{
	"python": 3, "javascript": 3, "sql": 3, "machine_learning": 4,
	"data_analysis": 3, "project_management": 3, "leadership": 3,
	"communication": 3, "agile": 3, "react": 3, "nodejs": 3,
}

// InferSkillGapsFromRole guesses required skills from a free-form role name
// when the role matches no catalog position. Matched skills default to
// intermediate level.
func InferSkillGapsFromRole(roleName string, currentSkills map[string]int) []models.SkillGap {
	roleLower := strings.ToLower(roleName)

	required := make(map[string]int)
	for role, skills := range roleSkillMap {
		if strings.Contains(roleLower, role) {
			for _, skill := range skills {
				required[skill] = models.LevelIntermediate
			}
			break
		}
	}
	if len(required) == 0 {
		for keyword, level := range roleSkillKeywords {
			if strings.Contains(roleLower, keyword) || strings.Contains(roleLower, strings.ReplaceAll(keyword, "_", " ")) {
				required[keyword] = level
			}
		}
	}

	return matcher.CalculateSkillGaps(currentSkills, required)
}

// EstimateDuration sums resource duration strings ("6-8 weeks", "3 months",
// "10 hours") into a single rough figure. Unparseable durations count as 10
// hours.
func EstimateDuration(resources []models.LearningResource) string {
	totalHours := 0
	for _, res := range resources {
		totalHours += durationHours(res.Duration)
	}

	switch {
	case totalHours < 40:
		return fmt.Sprintf("%d hours", totalHours)
	case totalHours < 160:
		return fmt.Sprintf("%d weeks", totalHours/10)
	default:
		return fmt.Sprintf("%d months", totalHours/40)
	}
}

func durationHours(duration string) int {
	d := strings.ToLower(duration)
	switch {
	case strings.Contains(d, "hour"):
		if n := leadingNumber(d, "hour"); n > 0 {
			return n
		}
		return 10
	case strings.Contains(d, "month"):
		if n := leadingNumber(d, "month"); n > 0 {
			return n * 40
		}
		return 40
	case strings.Contains(d, "week"):
		if n := leadingNumber(d, "week"); n > 0 {
			return n * 10
		}
		return 20
	default:
		return 10
	}
}

// leadingNumber returns the first run of digits before the unit, so a range
// like "6-8 weeks" reads as 6.
func leadingNumber(d, unit string) int {
	prefix := d[:strings.Index(d, unit)]
	var digits strings.Builder
	for _, r := range prefix {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		} else if digits.Len() > 0 {
			break
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}
