package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/amatch/skillmatch/internal/config"
	"github.com/amatch/skillmatch/internal/models"
)

// Store reads and writes the flat JSON collections. Every accessor loads its
// file wholesale; saves rewrite the whole file. There is no locking:
// concurrent writers are an accepted limitation of the storage model.
type Store struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Store {
	return &Store{cfg: cfg}
}

// taxonomyFile mirrors the on-disk layout of skills_taxonomy.json:
// categories keyed by id, each holding skills keyed by id.
type taxonomyFile struct {
	SkillCategories map[string]taxonomyCategory `json:"skill_categories"`
}

type taxonomyCategory struct {
	Name   string                   `json:"name"`
	Skills map[string]taxonomySkill `json:"skills"`
}

type taxonomySkill struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	RelatedSkills []string `json:"related_skills"`
}

type positionsFile struct {
	CurrentPositions []models.Position `json:"current_positions"`
	OpenPositions    []models.Position `json:"open_positions"`
}

type resourcesFile struct {
	Resources []models.LearningResource `json:"resources"`
}

type employeesFile struct {
	Employees []models.Employee `json:"employees"`
}

// EnsureDataDir creates the data directory if it does not exist yet.
func (s *Store) EnsureDataDir() error {
	return os.MkdirAll(s.cfg.DataDir, 0755)
}

// ValidateCatalogs loads every reference catalog once so a malformed file
// fails the service at startup instead of on first request.
func (s *Store) ValidateCatalogs() error {
	if _, err := s.AllSkills(); err != nil {
		return err
	}
	if _, err := s.OpenPositions(); err != nil {
		return err
	}
	if _, err := s.LearningResources(); err != nil {
		return err
	}
	return nil
}

func (s *Store) loadTaxonomy() (taxonomyFile, error) {
	var t taxonomyFile
	data, err := os.ReadFile(s.cfg.SkillsTaxonomyFile())
	if err != nil {
		return t, fmt.Errorf("reading skills taxonomy: %w", err)
	}
	if err := json.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parsing skills taxonomy: %w", err)
	}
	return t, nil
}

// AllSkills flattens the taxonomy into a name-sorted skill list.
func (s *Store) AllSkills() ([]models.Skill, error) {
	t, err := s.loadTaxonomy()
	if err != nil {
		return nil, err
	}

	var skills []models.Skill
	for catID, cat := range t.SkillCategories {
		for skillID, sk := range cat.Skills {
			skills = append(skills, models.Skill{
				ID:            skillID,
				Name:          sk.Name,
				Category:      catID,
				Description:   sk.Description,
				RelatedSkills: sk.RelatedSkills,
			})
		}
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills, nil
}

// SkillsByCategory groups taxonomy skills under their category display name.
func (s *Store) SkillsByCategory() (map[string][]models.Skill, error) {
	t, err := s.loadTaxonomy()
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]models.Skill, len(t.SkillCategories))
	for catID, cat := range t.SkillCategories {
		skills := make([]models.Skill, 0, len(cat.Skills))
		for skillID, sk := range cat.Skills {
			skills = append(skills, models.Skill{
				ID:            skillID,
				Name:          sk.Name,
				Category:      catID,
				Description:   sk.Description,
				RelatedSkills: sk.RelatedSkills,
			})
		}
		sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
		byCategory[cat.Name] = skills
	}
	return byCategory, nil
}

// RelatedSkills maps each skill id to its related skill ids from the taxonomy.
func (s *Store) RelatedSkills() (map[string][]string, error) {
	t, err := s.loadTaxonomy()
	if err != nil {
		return nil, err
	}

	related := make(map[string][]string)
	for _, cat := range t.SkillCategories {
		for skillID, sk := range cat.Skills {
			related[skillID] = sk.RelatedSkills
		}
	}
	return related, nil
}

func (s *Store) loadPositions() (positionsFile, error) {
	var p positionsFile
	data, err := os.ReadFile(s.cfg.PositionsFile())
	if err != nil {
		return p, fmt.Errorf("reading positions: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing positions: %w", err)
	}
	return p, nil
}

func (s *Store) OpenPositions() ([]models.Position, error) {
	p, err := s.loadPositions()
	if err != nil {
		return nil, err
	}
	open := make([]models.Position, len(p.OpenPositions))
	for i, pos := range p.OpenPositions {
		pos.IsOpen = true
		open[i] = pos
	}
	return open, nil
}

func (s *Store) CurrentPositions() ([]models.Position, error) {
	p, err := s.loadPositions()
	if err != nil {
		return nil, err
	}
	return p.CurrentPositions, nil
}

func (s *Store) PositionByID(id string) (*models.Position, error) {
	p, err := s.loadPositions()
	if err != nil {
		return nil, err
	}
	for _, pos := range p.CurrentPositions {
		if pos.ID == id {
			return &pos, nil
		}
	}
	for _, pos := range p.OpenPositions {
		if pos.ID == id {
			pos.IsOpen = true
			return &pos, nil
		}
	}
	return nil, nil
}

func (s *Store) LearningResources() ([]models.LearningResource, error) {
	var r resourcesFile
	data, err := os.ReadFile(s.cfg.LearningResourcesFile())
	if err != nil {
		return nil, fmt.Errorf("reading learning resources: %w", err)
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing learning resources: %w", err)
	}
	return r.Resources, nil
}

// Employees loads all profiles. A missing employees file means no one has
// submitted a profile yet and is not an error.
func (s *Store) Employees() ([]models.Employee, error) {
	data, err := os.ReadFile(s.cfg.EmployeesFile())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading employees: %w", err)
	}

	var e employeesFile
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("parsing employees: %w", err)
	}
	return e.Employees, nil
}

func (s *Store) EmployeeByID(id string) (*models.Employee, error) {
	employees, err := s.Employees()
	if err != nil {
		return nil, err
	}
	for _, emp := range employees {
		if emp.ID == id {
			return &emp, nil
		}
	}
	return nil, nil
}

// MostRecentEmployee returns the profile with the newest UpdatedAt, or nil.
func (s *Store) MostRecentEmployee() (*models.Employee, error) {
	employees, err := s.Employees()
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, nil
	}

	latest := employees[0]
	for _, emp := range employees[1:] {
		if emp.UpdatedAt.After(latest.UpdatedAt) {
			latest = emp
		}
	}
	return &latest, nil
}

// SaveEmployee upserts a profile by id and rewrites the employees file.
func (s *Store) SaveEmployee(employee models.Employee) error {
	employees, err := s.Employees()
	if err != nil {
		return err
	}

	updated := false
	for i, emp := range employees {
		if emp.ID == employee.ID {
			employees[i] = employee
			updated = true
			break
		}
	}
	if !updated {
		employees = append(employees, employee)
	}

	return s.writeEmployees(employees)
}

func (s *Store) DeleteEmployee(id string) error {
	employees, err := s.Employees()
	if err != nil {
		return err
	}

	kept := employees[:0]
	for _, emp := range employees {
		if emp.ID != id {
			kept = append(kept, emp)
		}
	}
	return s.writeEmployees(kept)
}

func (s *Store) writeEmployees(employees []models.Employee) error {
	if err := s.EnsureDataDir(); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if employees == nil {
		employees = []models.Employee{}
	}

	data, err := json.MarshalIndent(employeesFile{Employees: employees}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding employees: %w", err)
	}
	if err := os.WriteFile(s.cfg.EmployeesFile(), data, 0644); err != nil {
		return fmt.Errorf("writing employees: %w", err)
	}
	return nil
}
