package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillLevelName(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{LevelBeginner, "Beginner"},
		{LevelNovice, "Novice"},
		{LevelIntermediate, "Intermediate"},
		{LevelAdvanced, "Advanced"},
		{LevelExpert, "Expert"},
		{0, "Unknown"},
		{6, "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SkillLevelName(tt.level))
	}
}
