package matcher

import (
	"fmt"
	"sort"
	"strings"

	"github.com/amatch/skillmatch/internal/config"
	"github.com/amatch/skillmatch/internal/models"
	"github.com/amatch/skillmatch/internal/store"
	"github.com/ecodeclub/ekit/slice"
)

var priorityOrder = map[string]int{"high": 3, "medium": 2, "low": 1}

// Matcher compares employee profiles against position requirements.
// CalculateSkillGaps and MatchScore are pure; the Find/Analyze methods read
// the position catalog through the store.
type Matcher struct {
	cfg   *config.Config
	store *store.Store
}

func New(cfg *config.Config, st *store.Store) *Matcher {
	return &Matcher{cfg: cfg, store: st}
}

// GapPriority buckets a gap magnitude: >=3 high, >=2 medium, else low.
func GapPriority(gap int) string {
	switch {
	case gap >= 3:
		return "high"
	case gap >= 2:
		return "medium"
	default:
		return "low"
	}
}

// CalculateSkillGaps returns the positive gaps between current and required
// skills, largest gap first. A skill absent from the profile counts as
// level 0.
func CalculateSkillGaps(current, required map[string]int) []models.SkillGap {
	var gaps []models.SkillGap
	for skill, requiredLevel := range required {
		currentLevel := current[skill]
		gap := requiredLevel - currentLevel
		if gap <= 0 {
			continue
		}
		gaps = append(gaps, models.SkillGap{
			SkillName:     skill,
			CurrentLevel:  currentLevel,
			RequiredLevel: requiredLevel,
			Gap:           gap,
			Priority:      GapPriority(gap),
		})
	}

	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Gap != gaps[j].Gap {
			return gaps[i].Gap > gaps[j].Gap
		}
		if priorityOrder[gaps[i].Priority] != priorityOrder[gaps[j].Priority] {
			return priorityOrder[gaps[i].Priority] > priorityOrder[gaps[j].Priority]
		}
		return gaps[i].SkillName < gaps[j].SkillName
	})
	return gaps
}

// MatchScore computes the weighted match in [0,1] between a skill map and a
// position. Required skills earn partial credit up to their required level;
// preferred skills are weighted at 50% and feed a bonus worth up to 20% of
// the score. A position with no required skills scores 0.
func MatchScore(skills map[string]int, position models.Position) float64 {
	if len(position.RequiredSkills) == 0 {
		return 0
	}

	var total, maxPossible float64
	for skill, requiredLevel := range position.RequiredSkills {
		currentLevel := skills[skill]
		maxPossible += float64(requiredLevel)
		if currentLevel >= requiredLevel {
			total += float64(requiredLevel)
		} else {
			total += float64(currentLevel)
		}
	}

	var bonus, maxBonus float64
	for skill, preferredLevel := range position.PreferredSkills {
		currentLevel := skills[skill]
		maxBonus += float64(preferredLevel) * 0.5
		if currentLevel >= preferredLevel {
			bonus += float64(preferredLevel) * 0.5
		} else {
			bonus += float64(currentLevel) * 0.5
		}
	}

	score := total / maxPossible
	if maxBonus > 0 {
		score += (bonus / maxBonus) * 0.2
	}
	if score > 1 {
		score = 1
	}
	return score
}

// MissingSkills lists required skills entirely absent from the profile.
func MissingSkills(skills map[string]int, position models.Position) map[string]int {
	missing := make(map[string]int)
	for skill, level := range position.RequiredSkills {
		if _, ok := skills[skill]; !ok {
			missing[skill] = level
		}
	}
	return missing
}

// FindMatches scores the employee against open positions (and optionally the
// current-position catalog), keeping those at or above the configured
// threshold, best first, capped at RECOMMENDATION_COUNT.
func (m *Matcher) FindMatches(employee models.Employee, includeCurrent bool) ([]models.PositionMatch, error) {
	positions, err := m.store.OpenPositions()
	if err != nil {
		return nil, err
	}
	if includeCurrent {
		current, err := m.store.CurrentPositions()
		if err != nil {
			return nil, err
		}
		positions = append(positions, current...)
	}

	var matches []models.PositionMatch
	for _, position := range positions {
		score := MatchScore(employee.Skills, position)
		if score < m.cfg.SkillMatchThreshold {
			continue
		}

		gaps := CalculateSkillGaps(employee.Skills, position.RequiredSkills)
		missing := MissingSkills(employee.Skills, position)
		matches = append(matches, models.PositionMatch{
			Position:       position,
			MatchScore:     score,
			MissingSkills:  missing,
			SkillGaps:      gaps,
			Recommendation: buildRecommendation(score, gaps, missing),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	if len(matches) > m.cfg.RecommendationCount {
		matches = matches[:m.cfg.RecommendationCount]
	}
	return matches, nil
}

// AnalyzeProgression reports what it would take to grow into the target
// position. Returns nil when the position does not exist.
func (m *Matcher) AnalyzeProgression(employee models.Employee, targetPositionID string) (*models.CareerProgression, error) {
	target, err := m.store.PositionByID(targetPositionID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, nil
	}

	gaps := CalculateSkillGaps(employee.Skills, target.RequiredSkills)

	// Rough estimate: a month and a half per missing proficiency level.
	months := 0.0
	for _, gap := range gaps {
		months += float64(gap.Gap) * 1.5
	}

	var recommendations []string
	high := filterByPriority(gaps, "high")
	medium := filterByPriority(gaps, "medium")
	if len(high) > 0 {
		recommendations = append(recommendations, "Immediately focus on: "+joinSkillNames(high, 3))
	}
	if len(medium) > 0 {
		recommendations = append(recommendations, "Next, develop: "+joinSkillNames(medium, 3))
	}

	top := gaps
	if len(top) > 3 {
		top = top[:3]
	}

	return &models.CareerProgression{
		TargetPosition:  *target,
		CurrentMatch:    MatchScore(employee.Skills, *target),
		SkillGaps:       gaps,
		EstimatedMonths: int(months),
		Recommendations: recommendations,
		NextSteps:       nextSteps(top),
	}, nil
}

func buildRecommendation(score float64, gaps []models.SkillGap, missing map[string]int) string {
	var b strings.Builder
	switch {
	case score >= 0.9:
		b.WriteString("Excellent match! You meet most requirements.")
	case score >= 0.8:
		b.WriteString("Very good match with minor skill gaps.")
	case score >= 0.7:
		b.WriteString("Good match. Some skill development needed.")
	default:
		b.WriteString("Partial match. Significant upskilling required.")
	}

	if high := filterByPriority(gaps, "high"); len(high) > 0 {
		b.WriteString(" Focus on developing: " + joinSkillNames(high, 3) + ".")
	}

	if len(missing) > 0 {
		if len(missing) <= 2 {
			names := make([]string, 0, len(missing))
			for skill := range missing {
				names = append(names, skill)
			}
			sort.Strings(names)
			b.WriteString(" Consider learning: " + strings.Join(names, ", ") + ".")
		} else {
			b.WriteString(fmt.Sprintf(" %d new skills needed for this role.", len(missing)))
		}
	}
	return b.String()
}

func filterByPriority(gaps []models.SkillGap, priority string) []models.SkillGap {
	return slice.FilterDelete(append([]models.SkillGap(nil), gaps...), func(_ int, g models.SkillGap) bool {
		return g.Priority != priority
	})
}

func joinSkillNames(gaps []models.SkillGap, limit int) string {
	if len(gaps) > limit {
		gaps = gaps[:limit]
	}
	names := slice.Map(gaps, func(_ int, g models.SkillGap) string { return g.SkillName })
	return strings.Join(names, ", ")
}

func nextSteps(gaps []models.SkillGap) []string {
	steps := make([]string, 0, len(gaps))
	for _, gap := range gaps {
		if gap.CurrentLevel == 0 {
			steps = append(steps, fmt.Sprintf("Start learning %s basics", gap.SkillName))
		} else {
			steps = append(steps, fmt.Sprintf("Advance %s from level %d to %d", gap.SkillName, gap.CurrentLevel, gap.RequiredLevel))
		}
	}
	return steps
}
