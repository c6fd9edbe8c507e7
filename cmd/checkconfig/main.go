// Command checkconfig validates the environment and data files before a
// deploy: configuration issues, catalog presence and parseability.
package main

import (
	"fmt"
	"os"

	"github.com/amatch/skillmatch/internal/config"
	"github.com/amatch/skillmatch/internal/store"
)

func main() {
	fmt.Println("Checking skill matching service configuration...")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	issues := cfg.Validate()

	if cfg.UseAzureOpenAI() {
		fmt.Println("  Azure OpenAI configured")
		fmt.Printf("    endpoint:   %s\n", cfg.AzureOpenAIEndpoint)
		fmt.Printf("    deployment: %s\n", cfg.AzureChatDeployment)
	} else if cfg.OpenAIAPIKey != "" {
		fmt.Println("  OpenAI API key configured")
	} else {
		fmt.Println("  no chat-completions backend configured (GPT generation will fall back to templates)")
	}

	st := store.New(cfg)
	if err := st.ValidateCatalogs(); err != nil {
		issues = append(issues, err.Error())
	} else {
		skills, _ := st.AllSkills()
		open, _ := st.OpenPositions()
		resources, _ := st.LearningResources()
		fmt.Printf("  data dir %s: %d skills, %d open positions, %d learning resources\n",
			cfg.DataDir, len(skills), len(open), len(resources))
	}

	if len(issues) == 0 {
		fmt.Println("Configuration OK")
		return
	}

	fmt.Println("Problems found:")
	for _, issue := range issues {
		fmt.Println("  -", issue)
	}
	os.Exit(1)
}
