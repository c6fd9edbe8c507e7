package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func ListPositions(c *gin.Context, env *Env) {
	open, err := env.Store.OpenPositions()
	if err != nil {
		log.WithError(err).Error("failed to load positions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load positions"})
		return
	}
	current, err := env.Store.CurrentPositions()
	if err != nil {
		log.WithError(err).Error("failed to load positions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load positions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"open_positions": open, "current_positions": current})
}

func GetPosition(c *gin.Context, env *Env) {
	position, err := env.Store.PositionByID(c.Param("id"))
	if err != nil {
		log.WithError(err).Error("failed to load positions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load positions"})
		return
	}
	if position == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "position not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"position": position})
}

// FindMatches scores the profile against open positions. Pass
// ?include_current=true to also consider currently staffed positions.
func FindMatches(c *gin.Context, env *Env) {
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

	includeCurrent := c.Query("include_current") == "true"
	matches, err := env.Matcher.FindMatches(*employee, includeCurrent)
	if err != nil {
		log.WithError(err).Error("failed to compute matches")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute matches"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

func AnalyzeProgression(c *gin.Context, env *Env) {
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

	progression, err := env.Matcher.AnalyzeProgression(*employee, c.Param("positionID"))
	if err != nil {
		log.WithError(err).Error("failed to analyze progression")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze progression"})
		return
	}
	if progression == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "position not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"progression": progression})
}

func CareerPaths(c *gin.Context, env *Env) {
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

	suggestions, err := env.Recommender.CareerPaths(*employee)
	if err != nil {
		log.WithError(err).Error("failed to build career paths")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build career paths"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"career_paths": suggestions})
}
