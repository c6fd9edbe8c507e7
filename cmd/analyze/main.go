// Command analyze prints a summary of the data catalogs: collection sizes
// and which skills open positions demand most.
package main

import (
	"fmt"
	"os"

	"github.com/amatch/skillmatch/internal/config"
	"github.com/amatch/skillmatch/internal/gpt"
	"github.com/amatch/skillmatch/internal/matcher"
	"github.com/amatch/skillmatch/internal/recommender"
	"github.com/amatch/skillmatch/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	st := store.New(cfg)
	if err := st.ValidateCatalogs(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	skills, _ := st.AllSkills()
	byCategory, _ := st.SkillsByCategory()
	open, _ := st.OpenPositions()
	current, _ := st.CurrentPositions()
	resources, _ := st.LearningResources()
	employees, _ := st.Employees()

	fmt.Println("=== SKILL TAXONOMY ===")
	fmt.Printf("%d skills in %d categories\n", len(skills), len(byCategory))
	for category, categorySkills := range byCategory {
		fmt.Printf("  %-12s %d skills\n", category, len(categorySkills))
	}

	fmt.Println("\n=== POSITIONS ===")
	fmt.Printf("%d open, %d current\n", len(open), len(current))

	fmt.Println("\n=== LEARNING RESOURCES ===")
	internal := 0
	for _, res := range resources {
		if res.IsInternal {
			internal++
		}
	}
	fmt.Printf("%d resources (%d internal, %d external)\n", len(resources), internal, len(resources)-internal)

	fmt.Println("\n=== EMPLOYEE PROFILES ===")
	fmt.Printf("%d profiles\n", len(employees))

	rec := recommender.New(cfg, st, matcher.New(cfg, st), gpt.New(cfg))
	trending, err := rec.TrendingSkills()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("\n=== SKILL DEMAND (open positions) ===")
	for _, t := range trending {
		fmt.Printf("  %-24s demanded by %d positions, avg level %.1f (%s)\n",
			t.Skill, t.DemandCount, t.AverageLevel, t.Trend)
	}
}
