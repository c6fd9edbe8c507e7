package models

import (
	"time"
)

// Proficiency scale used across profiles and position requirements.
const (
	LevelBeginner     = 1
	LevelNovice       = 2
	LevelIntermediate = 3
	LevelAdvanced     = 4
	LevelExpert       = 5
)

var skillLevelNames = map[int]string{
	LevelBeginner:     "Beginner",
	LevelNovice:       "Novice",
	LevelIntermediate: "Intermediate",
	LevelAdvanced:     "Advanced",
	LevelExpert:       "Expert",
}

func SkillLevelName(level int) string {
	if name, ok := skillLevelNames[level]; ok {
		return name
	}
	return "Unknown"
}

type Skill struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Description   string   `json:"description,omitempty"`
	RelatedSkills []string `json:"related_skills,omitempty"`
}

type Employee struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	CurrentPosition string         `json:"current_position"`
	Department      string         `json:"department"`
	Skills          map[string]int `json:"skills"` // skill name -> level, 1-5
	CareerGoals     []string       `json:"career_goals"`
	TargetRoles     []string       `json:"target_roles"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type Position struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Department      string         `json:"department"`
	Level           string         `json:"level"`
	RequiredSkills  map[string]int `json:"required_skills"`
	PreferredSkills map[string]int `json:"preferred_skills"`
	Description     string         `json:"description,omitempty"`
	IsOpen          bool           `json:"is_open"`
	Location        string         `json:"location,omitempty"`
	PostedDate      string         `json:"posted_date,omitempty"`
}

type LearningResource struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"` // course, workshop, certification, ...
	Provider    string   `json:"provider"`
	Duration    string   `json:"duration"`
	Skills      []string `json:"skills"`
	Level       string   `json:"level"` // beginner, intermediate, advanced
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating,omitempty"`
	Price       string   `json:"price,omitempty"`
	IsInternal  bool     `json:"is_internal"`
}

type SkillGap struct {
	SkillName     string `json:"skill_name"`
	CurrentLevel  int    `json:"current_level"`
	RequiredLevel int    `json:"required_level"`
	Gap           int    `json:"gap"`
	Priority      string `json:"priority"` // high, medium, low
}

type PositionMatch struct {
	Position       Position       `json:"position"`
	MatchScore     float64        `json:"match_score"`
	MissingSkills  map[string]int `json:"missing_skills"`
	SkillGaps      []SkillGap     `json:"skill_gaps"`
	Recommendation string         `json:"recommendation"`
}

type LearningPlan struct {
	EmployeeID           string             `json:"employee_id"`
	TargetRole           string             `json:"target_role"`
	SkillGaps            []SkillGap         `json:"skill_gaps"`
	RecommendedResources []LearningResource `json:"recommended_resources"`
	EstimatedDuration    string             `json:"estimated_duration"`
	CreatedAt            time.Time          `json:"created_at"`
}

type CareerProgression struct {
	TargetPosition  Position   `json:"target_position"`
	CurrentMatch    float64    `json:"current_match_score"`
	SkillGaps       []SkillGap `json:"skill_gaps"`
	EstimatedMonths int        `json:"estimated_development_months"`
	Recommendations []string   `json:"recommendations"`
	NextSteps       []string   `json:"next_steps"`
}

type TrendingSkill struct {
	Skill        string  `json:"skill"`
	DemandCount  int     `json:"demand_count"`
	AverageLevel float64 `json:"average_level"`
	Trend        string  `json:"trend"` // high, medium, low
}

type CareerPathSuggestion struct {
	Position             string  `json:"position"`
	Department           string  `json:"department"`
	MatchScore           float64 `json:"match_score"`
	SkillGapsCount       int     `json:"skill_gaps_count"`
	EstimatedDevelopment string  `json:"estimated_development"`
	Difficulty           string  `json:"difficulty"` // easy, medium, hard
}
