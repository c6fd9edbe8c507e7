// Command seed writes starter data catalogs for a fresh install.
package main

import (
	"log"

	"github.com/amatch/skillmatch/internal/config"
	"github.com/amatch/skillmatch/scripts"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := scripts.Seed(cfg); err != nil {
		log.Fatal(err)
	}
	log.Println("seed complete")
}
