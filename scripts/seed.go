// Package scripts holds data bootstrap helpers shared by the seed command.
package scripts

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/amatch/skillmatch/internal/config"
	"github.com/amatch/skillmatch/internal/models"
)

type taxonomySkill struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	RelatedSkills []string `json:"related_skills"`
}

type taxonomyCategory struct {
	Name   string                   `json:"name"`
	Skills map[string]taxonomySkill `json:"skills"`
}

type taxonomy struct {
	SkillCategories map[string]taxonomyCategory `json:"skill_categories"`
}

type positions struct {
	CurrentPositions []models.Position `json:"current_positions"`
	OpenPositions    []models.Position `json:"open_positions"`
}

type resources struct {
	Resources []models.LearningResource `json:"resources"`
}

// Seed writes starter catalogs into the data directory. Existing files are
// left alone so reseeding never destroys curated data.
func Seed(cfg *config.Config) error {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	if err := writeIfMissing(cfg.SkillsTaxonomyFile(), defaultTaxonomy()); err != nil {
		return err
	}
	if err := writeIfMissing(cfg.PositionsFile(), defaultPositions()); err != nil {
		return err
	}
	return writeIfMissing(cfg.LearningResourcesFile(), defaultResources())
}

func writeIfMissing(path string, v any) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("%s already exists, skipping\n", path)
		return nil
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func defaultTaxonomy() taxonomy {
	return taxonomy{SkillCategories: map[string]taxonomyCategory{
		"technical": {
			Name: "Technical",
			Skills: map[string]taxonomySkill{
				"python":           {Name: "Python", Description: "Python programming", RelatedSkills: []string{"data_analysis", "machine_learning"}},
				"javascript":       {Name: "JavaScript", Description: "JavaScript and front-end scripting", RelatedSkills: []string{"react", "nodejs"}},
				"sql":              {Name: "SQL", Description: "Relational queries and data modeling", RelatedSkills: []string{"data_analysis"}},
				"react":            {Name: "React", Description: "React front-end framework", RelatedSkills: []string{"javascript"}},
				"nodejs":           {Name: "Node.js", Description: "Server-side JavaScript", RelatedSkills: []string{"javascript"}},
				"machine_learning": {Name: "Machine Learning", Description: "ML models and evaluation", RelatedSkills: []string{"python", "statistics"}},
				"data_analysis":    {Name: "Data Analysis", Description: "Exploring and interpreting data", RelatedSkills: []string{"sql", "statistics"}},
				"statistics":       {Name: "Statistics", Description: "Statistical methods", RelatedSkills: []string{"data_analysis"}},
				"docker":           {Name: "Docker", Description: "Containers and images", RelatedSkills: []string{"cloud_computing"}},
				"cloud_computing":  {Name: "Cloud Computing", Description: "Cloud platforms and deployment", RelatedSkills: []string{"docker"}},
			},
		},
		"business": {
			Name: "Business",
			Skills: map[string]taxonomySkill{
				"project_management": {Name: "Project Management", Description: "Planning and delivery", RelatedSkills: []string{"agile"}},
				"business_analysis":  {Name: "Business Analysis", Description: "Requirements and process analysis", RelatedSkills: []string{"project_management"}},
				"agile":              {Name: "Agile", Description: "Agile ways of working", RelatedSkills: []string{"project_management"}},
				"product_strategy":   {Name: "Product Strategy", Description: "Roadmaps and positioning", RelatedSkills: []string{"business_analysis"}},
			},
		},
		"soft": {
			Name: "Soft Skills",
			Skills: map[string]taxonomySkill{
				"communication":   {Name: "Communication", Description: "Written and verbal communication", RelatedSkills: []string{"leadership"}},
				"leadership":      {Name: "Leadership", Description: "Leading teams and initiatives", RelatedSkills: []string{"communication"}},
				"problem_solving": {Name: "Problem Solving", Description: "Structured problem solving", RelatedSkills: nil},
				"mentoring":       {Name: "Mentoring", Description: "Coaching colleagues", RelatedSkills: []string{"leadership"}},
			},
		},
	}}
}

func defaultPositions() positions {
	return positions{
		CurrentPositions: []models.Position{
			{
				ID: "pos_junior_analyst", Title: "Junior Data Analyst", Department: "Analytics", Level: "junior",
				RequiredSkills:  map[string]int{"sql": 2, "data_analysis": 2},
				PreferredSkills: map[string]int{"python": 2},
			},
			{
				ID: "pos_software_engineer", Title: "Software Engineer", Department: "Engineering", Level: "mid",
				RequiredSkills:  map[string]int{"javascript": 3, "sql": 2, "problem_solving": 3},
				PreferredSkills: map[string]int{"react": 2, "nodejs": 2},
			},
		},
		OpenPositions: []models.Position{
			{
				ID: "pos_data_analyst", Title: "Data Analyst", Department: "Analytics", Level: "mid",
				RequiredSkills:  map[string]int{"python": 3, "sql": 3, "data_analysis": 3},
				PreferredSkills: map[string]int{"statistics": 2, "communication": 3},
				Description:     "Analyze product and business data to support decisions.",
			},
			{
				ID: "pos_ml_engineer", Title: "Machine Learning Engineer", Department: "Analytics", Level: "senior",
				RequiredSkills:  map[string]int{"python": 4, "machine_learning": 4, "statistics": 3},
				PreferredSkills: map[string]int{"docker": 2, "cloud_computing": 2},
				Description:     "Build and ship ML models.",
			},
			{
				ID: "pos_fullstack", Title: "Full Stack Developer", Department: "Engineering", Level: "mid",
				RequiredSkills:  map[string]int{"javascript": 4, "react": 3, "nodejs": 3, "sql": 2},
				PreferredSkills: map[string]int{"docker": 2},
				Description:     "Own features across the stack.",
			},
			{
				ID: "pos_project_manager", Title: "Project Manager", Department: "Delivery", Level: "senior",
				RequiredSkills:  map[string]int{"project_management": 4, "communication": 4, "agile": 3},
				PreferredSkills: map[string]int{"leadership": 3, "business_analysis": 2},
				Description:     "Run cross-team delivery.",
			},
		},
	}
}

func defaultResources() resources {
	return resources{Resources: []models.LearningResource{
		{
			ID: "res_python_bootcamp", Title: "Internal Python Bootcamp", Type: "course", Provider: "L&D Academy",
			Duration: "6 weeks", Skills: []string{"python"}, Level: "beginner",
			URL: "https://learning.internal/python-bootcamp", Description: "Hands-on Python fundamentals", Rating: 4.5, Price: "Free", IsInternal: true,
		},
		{
			ID: "res_advanced_python", Title: "Advanced Python Workshop", Type: "workshop", Provider: "L&D Academy",
			Duration: "2 weeks", Skills: []string{"python", "problem_solving"}, Level: "advanced",
			URL: "https://learning.internal/advanced-python", Description: "Idioms, testing, and performance", Rating: 4.7, Price: "Free", IsInternal: true,
		},
		{
			ID: "res_sql_essentials", Title: "SQL Essentials", Type: "course", Provider: "L&D Academy",
			Duration: "3 weeks", Skills: []string{"sql", "data_analysis"}, Level: "beginner",
			URL: "https://learning.internal/sql-essentials", Description: "Queries, joins, and modeling", Rating: 4.2, Price: "Free", IsInternal: true,
		},
		{
			ID: "res_ml_specialization", Title: "Machine Learning Specialization", Type: "specialization", Provider: "Coursera",
			Duration: "3 months", Skills: []string{"machine_learning", "python", "statistics"}, Level: "intermediate",
			URL: "https://coursera.org/specializations/machine-learning-introduction", Description: "End-to-end ML curriculum", Rating: 4.9, Price: "$49/month", IsInternal: false,
		},
		{
			ID: "res_statistics_primer", Title: "Statistics for Data Science", Type: "course", Provider: "edX",
			Duration: "8 weeks", Skills: []string{"statistics", "data_analysis"}, Level: "intermediate",
			URL: "https://edx.org/course/statistics-for-data-science", Description: "Inference and experiment design", Rating: 4.4, Price: "$99", IsInternal: false,
		},
		{
			ID: "res_react_path", Title: "React Developer Path", Type: "course", Provider: "Pluralsight",
			Duration: "6-8 weeks", Skills: []string{"react", "javascript"}, Level: "intermediate",
			URL: "https://pluralsight.com/paths/react", Description: "Component patterns and state management", Rating: 4.6, Price: "$29/month", IsInternal: false,
		},
		{
			ID: "res_node_backend", Title: "Node.js Backend Development", Type: "course", Provider: "Udemy",
			Duration: "5 weeks", Skills: []string{"nodejs", "javascript"}, Level: "intermediate",
			URL: "https://udemy.com/nodejs-backend", Description: "APIs and services with Node", Rating: 4.3, Price: "$19.99", IsInternal: false,
		},
		{
			ID: "res_pm_certificate", Title: "Project Management Certificate", Type: "certification", Provider: "L&D Academy",
			Duration: "8 weeks", Skills: []string{"project_management", "agile"}, Level: "intermediate",
			URL: "https://learning.internal/pm-certificate", Description: "Company-recognized PM certification", Rating: 4.1, Price: "Free", IsInternal: true,
		},
		{
			ID: "res_leadership_lab", Title: "Leadership Lab", Type: "workshop", Provider: "L&D Academy",
			Duration: "4 weeks", Skills: []string{"leadership", "communication", "mentoring"}, Level: "intermediate",
			URL: "https://learning.internal/leadership-lab", Description: "Practice-based leadership program", Rating: 4.8, Price: "Free", IsInternal: true,
		},
		{
			ID: "res_docker_deep_dive", Title: "Docker Deep Dive", Type: "course", Provider: "Pluralsight",
			Duration: "10 hours", Skills: []string{"docker", "cloud_computing"}, Level: "beginner",
			URL: "https://pluralsight.com/courses/docker-deep-dive", Description: "Containers from first principles", Rating: 4.5, Price: "$29/month", IsInternal: false,
		},
	}}
}
