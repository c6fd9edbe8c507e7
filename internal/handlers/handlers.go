package handlers

import (
	"github.com/amatch/skillmatch/internal/config"
	"github.com/amatch/skillmatch/internal/matcher"
	"github.com/amatch/skillmatch/internal/recommender"
	"github.com/amatch/skillmatch/internal/store"
	"github.com/gin-gonic/gin"
)

// Env bundles the components handlers need.
type Env struct {
	Cfg         *config.Config
	Store       *store.Store
	Matcher     *matcher.Matcher
	Recommender *recommender.Recommender
}

func SetupRoutes(r *gin.Engine, env *Env) {
	r.GET("/health", HealthCheck)

	api := r.Group("/api/v1")

	api.GET("/skills", func(c *gin.Context) { ListSkills(c, env) })
	api.GET("/skills/categories", func(c *gin.Context) { ListSkillCategories(c, env) })
	api.GET("/skills/trending", func(c *gin.Context) { TrendingSkills(c, env) })
	api.GET("/resources/:skill", func(c *gin.Context) { SkillResources(c, env) })

	api.GET("/positions", func(c *gin.Context) { ListPositions(c, env) })
	api.GET("/positions/:id", func(c *gin.Context) { GetPosition(c, env) })

	api.POST("/profiles", func(c *gin.Context) { SaveProfile(c, env) })
	api.GET("/profiles", func(c *gin.Context) { ListProfiles(c, env) })
	api.GET("/profiles/:id", func(c *gin.Context) { GetProfile(c, env) })
	api.DELETE("/profiles/:id", func(c *gin.Context) { DeleteProfile(c, env) })
	api.POST("/profiles/import", func(c *gin.Context) { ImportResume(c, env) })

	api.GET("/profiles/:id/matches", func(c *gin.Context) { FindMatches(c, env) })
	api.GET("/profiles/:id/progression/:positionID", func(c *gin.Context) { AnalyzeProgression(c, env) })
	api.GET("/profiles/:id/career-paths", func(c *gin.Context) { CareerPaths(c, env) })
	api.POST("/profiles/:id/learning-plan", func(c *gin.Context) { GenerateLearningPlan(c, env) })
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
