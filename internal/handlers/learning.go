package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LearningPlanRequest struct {
	TargetRole      string `json:"target_role" binding:"required"`
	IncludeExternal *bool  `json:"include_external"`
	MaxResources    int    `json:"max_resources"`
}

// GenerateLearningPlan builds a learning plan for the profile towards a
// target role (position id, title, or free-form role name).
func GenerateLearningPlan(c *gin.Context, env *Env) {
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

	var req LearningPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid learning plan request: " + err.Error()})
		return
	}

	includeExternal := true
	if req.IncludeExternal != nil {
		includeExternal = *req.IncludeExternal
	}

	plan, err := env.Recommender.GenerateLearningPlan(c.Request.Context(), *employee, req.TargetRole, includeExternal, req.MaxResources)
	if err != nil {
		log.WithError(err).Error("failed to generate learning plan")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate learning plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func TrendingSkills(c *gin.Context, env *Env) {
	trending, err := env.Recommender.TrendingSkills()
	if err != nil {
		log.WithError(err).Error("failed to compute trending skills")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute trending skills"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trending": trending})
}

// SkillResources recommends resources for a single skill. Query params
// current and target default to 0 and 3.
func SkillResources(c *gin.Context, env *Env) {
	current, _ := strconv.Atoi(c.DefaultQuery("current", "0"))
	target, err := strconv.Atoi(c.DefaultQuery("target", "3"))
	if err != nil || target < 1 || target > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target must be a level between 1 and 5"})
		return
	}

	resources, err := env.Recommender.SkillRecommendations(c.Request.Context(), c.Param("skill"), current, target)
	if err != nil {
		log.WithError(err).Error("failed to recommend resources")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to recommend resources"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": resources})
}
