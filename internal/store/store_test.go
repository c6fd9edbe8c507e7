package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amatch/skillmatch/internal/config"
	"github.com/amatch/skillmatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const taxonomyFixture = `{
  "skill_categories": {
    "technical": {
      "name": "Technical",
      "skills": {
        "python": {"name": "Python", "description": "Python programming", "related_skills": ["sql"]},
        "sql": {"name": "SQL", "description": "Queries", "related_skills": ["python"]}
      }
    },
    "soft": {
      "name": "Soft Skills",
      "skills": {
        "communication": {"name": "Communication", "description": "", "related_skills": []}
      }
    }
  }
}`

const positionsFixture = `{
  "current_positions": [
    {"id": "pos_current", "title": "Engineer", "department": "Eng", "level": "mid",
     "required_skills": {"python": 2}, "preferred_skills": {}}
  ],
  "open_positions": [
    {"id": "pos_open", "title": "Analyst", "department": "Analytics", "level": "mid",
     "required_skills": {"sql": 3}, "preferred_skills": {"python": 2}}
  ]
}`

const resourcesFixture = `{
  "resources": [
    {"id": "res1", "title": "SQL Course", "type": "course", "provider": "L&D",
     "duration": "3 weeks", "skills": ["sql"], "level": "beginner",
     "url": "https://learning.internal/sql", "description": "SQL", "is_internal": true}
  ]
}`

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skills_taxonomy.json"), []byte(taxonomyFixture), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "positions.json"), []byte(positionsFixture), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "learning_resources.json"), []byte(resourcesFixture), 0644))
	return New(&config.Config{DataDir: dir}), dir
}

func TestAllSkills(t *testing.T) {
	st, _ := newTestStore(t)

	skills, err := st.AllSkills()
	require.NoError(t, err)
	require.Len(t, skills, 3)

	// Sorted by display name.
	assert.Equal(t, "Communication", skills[0].Name)
	assert.Equal(t, "Python", skills[1].Name)
	assert.Equal(t, "SQL", skills[2].Name)

	assert.Equal(t, "python", skills[1].ID)
	assert.Equal(t, "technical", skills[1].Category)
	assert.Equal(t, []string{"sql"}, skills[1].RelatedSkills)
}

func TestSkillsByCategory(t *testing.T) {
	st, _ := newTestStore(t)

	byCategory, err := st.SkillsByCategory()
	require.NoError(t, err)
	require.Len(t, byCategory, 2)
	assert.Len(t, byCategory["Technical"], 2)
	assert.Len(t, byCategory["Soft Skills"], 1)
}

func TestRelatedSkills(t *testing.T) {
	st, _ := newTestStore(t)

	related, err := st.RelatedSkills()
	require.NoError(t, err)
	assert.Equal(t, []string{"sql"}, related["python"])
}

func TestPositions(t *testing.T) {
	st, _ := newTestStore(t)

	open, err := st.OpenPositions()
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.True(t, open[0].IsOpen, "open positions are flagged even when the file omits is_open")

	current, err := st.CurrentPositions()
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, "pos_current", current[0].ID)
}

func TestPositionByID(t *testing.T) {
	st, _ := newTestStore(t)

	pos, err := st.PositionByID("pos_open")
	require.NoError(t, err)
	require.NotNil(t, pos)
	assert.True(t, pos.IsOpen)

	pos, err = st.PositionByID("pos_current")
	require.NoError(t, err)
	require.NotNil(t, pos)
	assert.False(t, pos.IsOpen)

	pos, err = st.PositionByID("nope")
	require.NoError(t, err)
	assert.Nil(t, pos)
}

func TestLearningResources(t *testing.T) {
	st, _ := newTestStore(t)

	resources, err := st.LearningResources()
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.True(t, resources[0].IsInternal)
}

func TestEmployeesMissingFile(t *testing.T) {
	st, _ := newTestStore(t)

	employees, err := st.Employees()
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestSaveEmployeeRoundTrip(t *testing.T) {
	st, _ := newTestStore(t)

	employee := models.Employee{
		ID:              "emp1",
		Name:            "Dana",
		Email:           "dana@example.com",
		CurrentPosition: "Engineer",
		Department:      "Eng",
		Skills:          map[string]int{"python": 3},
		TargetRoles:     []string{"Analyst"},
		CreatedAt:       time.Now().Truncate(time.Second),
		UpdatedAt:       time.Now().Truncate(time.Second),
	}
	require.NoError(t, st.SaveEmployee(employee))

	loaded, err := st.EmployeeByID("emp1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Dana", loaded.Name)
	assert.Equal(t, map[string]int{"python": 3}, loaded.Skills)
}

func TestSaveEmployeeUpsert(t *testing.T) {
	st, _ := newTestStore(t)

	require.NoError(t, st.SaveEmployee(models.Employee{ID: "emp1", Name: "Before"}))
	require.NoError(t, st.SaveEmployee(models.Employee{ID: "emp1", Name: "After"}))
	require.NoError(t, st.SaveEmployee(models.Employee{ID: "emp2", Name: "Other"}))

	employees, err := st.Employees()
	require.NoError(t, err)
	require.Len(t, employees, 2)

	loaded, err := st.EmployeeByID("emp1")
	require.NoError(t, err)
	assert.Equal(t, "After", loaded.Name)
}

func TestDeleteEmployee(t *testing.T) {
	st, _ := newTestStore(t)

	require.NoError(t, st.SaveEmployee(models.Employee{ID: "emp1"}))
	require.NoError(t, st.DeleteEmployee("emp1"))

	loaded, err := st.EmployeeByID("emp1")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting a missing profile is not an error.
	require.NoError(t, st.DeleteEmployee("nope"))
}

func TestMostRecentEmployee(t *testing.T) {
	st, _ := newTestStore(t)

	latest, err := st.MostRecentEmployee()
	require.NoError(t, err)
	assert.Nil(t, latest)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, st.SaveEmployee(models.Employee{ID: "old", UpdatedAt: base}))
	require.NoError(t, st.SaveEmployee(models.Employee{ID: "new", UpdatedAt: base.Add(time.Hour)}))

	latest, err = st.MostRecentEmployee()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "new", latest.ID)
}

func TestMalformedCatalog(t *testing.T) {
	st, dir := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "positions.json"), []byte("{not json"), 0644))

	_, err := st.OpenPositions()
	assert.Error(t, err)
	assert.Error(t, st.ValidateCatalogs())
}

func TestValidateCatalogs(t *testing.T) {
	st, _ := newTestStore(t)
	assert.NoError(t, st.ValidateCatalogs())
}
