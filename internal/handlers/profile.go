package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/amatch/skillmatch/internal/models"
	"github.com/amatch/skillmatch/internal/utils"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

type ProfileRequest struct {
	ID              string         `json:"id"`
	Name            string         `json:"name" binding:"required"`
	Email           string         `json:"email" binding:"required"`
	CurrentPosition string         `json:"current_position"`
	Department      string         `json:"department"`
	Skills          map[string]int `json:"skills"`
	CareerGoals     []string       `json:"career_goals"`
	TargetRoles     []string       `json:"target_roles"`
}

type ProfileSummary struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	CurrentPosition string    `json:"current_position"`
	Department      string    `json:"department"`
	SkillCount      int       `json:"skill_count"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ListSkills(c *gin.Context, env *Env) {
	skills, err := env.Store.AllSkills()
	if err != nil {
		log.WithError(err).Error("failed to load skills taxonomy")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load skills taxonomy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

func ListSkillCategories(c *gin.Context, env *Env) {
	byCategory, err := env.Store.SkillsByCategory()
	if err != nil {
		log.WithError(err).Error("failed to load skills taxonomy")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load skills taxonomy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": byCategory})
}

// SaveProfile upserts an employee profile from the assessment form. Levels
// outside the 1-5 scale are rejected.
func SaveProfile(c *gin.Context, env *Env) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload: " + err.Error()})
		return
	}

	for skill, level := range req.Skills {
		if level < models.LevelBeginner || level > models.LevelExpert {
			c.JSON(http.StatusBadRequest, gin.H{"error": "proficiency for " + skill + " must be between 1 and 5"})
			return
		}
	}

	now := time.Now()
	employee := models.Employee{
		ID:              req.ID,
		Name:            req.Name,
		Email:           req.Email,
		CurrentPosition: req.CurrentPosition,
		Department:      req.Department,
		Skills:          req.Skills,
		CareerGoals:     req.CareerGoals,
		TargetRoles:     req.TargetRoles,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if employee.Skills == nil {
		employee.Skills = map[string]int{}
	}

	if employee.ID == "" {
		employee.ID = uuid.New().String()
	} else {
		existing, err := env.Store.EmployeeByID(employee.ID)
		if err != nil {
			log.WithError(err).Error("failed to load profile")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
			return
		}
		if existing != nil {
			employee.CreatedAt = existing.CreatedAt
		}
	}

	if err := env.Store.SaveEmployee(employee); err != nil {
		log.WithError(err).Error("failed to save profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": employee})
}

func ListProfiles(c *gin.Context, env *Env) {
	employees, err := env.Store.Employees()
	if err != nil {
		log.WithError(err).Error("failed to load profiles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profiles"})
		return
	}

	sort.SliceStable(employees, func(i, j int) bool {
		return employees[i].UpdatedAt.After(employees[j].UpdatedAt)
	})

	summaries := slice.Map(employees, func(_ int, emp models.Employee) ProfileSummary {
		return ProfileSummary{
			ID:              emp.ID,
			Name:            emp.Name,
			CurrentPosition: emp.CurrentPosition,
			Department:      emp.Department,
			SkillCount:      len(emp.Skills),
			UpdatedAt:       emp.UpdatedAt,
		}
	})
	c.JSON(http.StatusOK, gin.H{"profiles": summaries})
}

func GetProfile(c *gin.Context, env *Env) {
	employee, err := env.Store.EmployeeByID(c.Param("id"))
	if err != nil {
		log.WithError(err).Error("failed to load profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}
	if employee == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": employee})
}

func DeleteProfile(c *gin.Context, env *Env) {
	if err := env.Store.DeleteEmployee(c.Param("id")); err != nil {
		log.WithError(err).Error("failed to delete profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// ImportResume extracts text from an uploaded PDF resume and suggests skill
// levels from taxonomy mentions. Nothing is persisted; the suggestions
// prefill the profile form.
func ImportResume(c *gin.Context, env *Env) {
	file, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no resume uploaded: " + err.Error()})
		return
	}

	if filepath.Ext(file.Filename) != ".pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only PDF resumes are supported"})
		return
	}

	if err := os.MkdirAll("uploads", 0755); err != nil {
		log.WithError(err).Error("failed to create upload directory")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}
	path := filepath.Join("uploads", uuid.New().String()+".pdf")
	if err := c.SaveUploadedFile(file, path); err != nil {
		log.WithError(err).Error("failed to store upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}
	defer os.Remove(path)

	text, err := utils.ExtractPDFText(path)
	if err != nil {
		log.WithError(err).Error("failed to extract resume text")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to extract resume text"})
		return
	}

	taxonomy, err := env.Store.AllSkills()
	if err != nil {
		log.WithError(err).Error("failed to load skills taxonomy")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load skills taxonomy"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suggested_skills": utils.ScanSkills(text, taxonomy),
		"text_length":      len(text),
	})
}
