// Command seed fills the configured storage backend with two months of
// sample measurements (male caliper data with a slow downward trend), useful
// for trying out the charts and statistics without real data.
package main

import (
	"log"
	"math"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"bodytracker/config"
	"bodytracker/database"
	"bodytracker/entities"
	svc "bodytracker/pkg/entry/service"
	entrySvcImp "bodytracker/pkg/entry/serviceImp"
	"bodytracker/pkg/storage/repository"
	storageImp "bodytracker/pkg/storage/repositoryImp"
)

func main() {
	cfg := config.Load()

	var backend repository.Backend
	var db *gorm.DB
	var err error
	switch cfg.Storage {
	case "sqlite":
		db, err = database.OpenSQLite(cfg.DBPath)
		if err != nil {
			log.Fatalf("open sqlite: %v", err)
		}
		backend, err = storageImp.NewSQLite(db)
	case "file":
		backend, err = storageImp.NewFile(cfg.DataDir)
	default:
		log.Fatalf("unknown STORAGE %q (want file or sqlite)", cfg.Storage)
	}
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}

	entries := entrySvcImp.New(backend, nil)
	if err := entries.Init(); err != nil {
		log.Fatalf("load entries: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	age := 35

	weight := 82.5
	chest, abdomen, thigh := 15.0, 25.0, 18.0
	notes := []string{
		"", "", "", "Morgens gemessen", "Nach dem Training",
		"Cheat Day gestern", "", "Wenig geschlafen", "",
	}

	now := time.Now()
	count := 0
	for i := 60; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		date := time.Date(day.Year(), day.Month(), day.Day(), 7, 30, 0, 0, day.Location())

		// slow downward trend with daily noise
		weight = math.Max(70, weight-0.05+(rng.Float64()-0.5)*0.8)
		chest = math.Max(5, chest-0.02+(rng.Float64()-0.5)*1.0)
		abdomen = math.Max(5, abdomen-0.04+(rng.Float64()-0.5)*1.5)
		thigh = math.Max(5, thigh-0.02+(rng.Float64()-0.5)*1.0)

		draft := svc.EntryDraft{
			Date:      date,
			Weight:    round1(weight),
			Gender:    entities.GenderMale,
			Age:       &age,
			Skinfolds: entities.MaleSkinfolds(round1(chest), round1(abdomen), round1(thigh)),
			Notes:     notes[rng.Intn(len(notes))],
		}
		if _, err := entries.Add(draft); err != nil {
			log.Fatalf("seed entry: %v", err)
		}
		count++
	}
	log.Printf("[seed] inserted %d entries into %s storage", count, cfg.Storage)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
