package main

import (
	"log"

	"github.com/amatch/skillmatch/internal/config"
	"github.com/amatch/skillmatch/internal/gpt"
	"github.com/amatch/skillmatch/internal/handlers"
	"github.com/amatch/skillmatch/internal/matcher"
	"github.com/amatch/skillmatch/internal/recommender"
	"github.com/amatch/skillmatch/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	st := store.New(cfg)
	if err := st.ValidateCatalogs(); err != nil {
		log.Fatal(err)
	}

	m := matcher.New(cfg, st)
	rec := recommender.New(cfg, st, m, gpt.New(cfg))

	r := gin.Default()
	r.Use(cors.Default())
	handlers.SetupRoutes(r, &handlers.Env{
		Cfg:         cfg,
		Store:       st,
		Matcher:     m,
		Recommender: rec,
	})

	log.Printf("skill matching service listening on %s", cfg.HTTPPort)
	if err := r.Run(cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
