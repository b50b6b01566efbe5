// Seeds a demo student with a semester of academic records and prints the
// resulting performance analysis. Intended for local development against an
// empty database.
//
// Usage: go run scripts/seed_demo.go
package main

import (
	"edu_agent_backend/internal/config"
	"edu_agent_backend/internal/model"
	"edu_agent_backend/internal/profiler"
	"edu_agent_backend/internal/repository"
	"edu_agent_backend/pkg/database"
	"edu_agent_backend/pkg/logger"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	studentRepo := repository.NewStudentRepository(db)
	recordRepo := repository.NewRecordRepository(db)

	student := &model.Student{
		StudentID:          "demo-001",
		Name:               "Demo Student",
		Grade:              8,
		LearningStyle:      model.StyleVisual,
		CurrentLevel:       50,
		LanguagePreference: "english",
		IsActive:           true,
	}
	if err := studentRepo.Create(student); err != nil {
		log.Fatalf("Failed to create demo student: %v", err)
	}

	base := time.Now().AddDate(0, -4, 0)
	seed := []struct {
		subject    string
		topic      string
		score      float64
		difficulty model.DifficultyLevel
		week       int
	}{
		{"math", "fractions", 58, model.DifficultyEasy, 0},
		{"math", "fractions", 64, model.DifficultyEasy, 1},
		{"math", "algebra", 70, model.DifficultyMedium, 3},
		{"math", "algebra", 76, model.DifficultyMedium, 5},
		{"math", "geometry", 82, model.DifficultyMedium, 8},
		{"math", "geometry", 88, model.DifficultyHard, 11},
		{"science", "photosynthesis", 72, model.DifficultyMedium, 2},
		{"science", "cells", 68, model.DifficultyMedium, 6},
		{"science", "forces", 75, model.DifficultyHard, 10},
		{"history", "ancient rome", 55, model.DifficultyEasy, 4},
		{"history", "ancient rome", 61, model.DifficultyMedium, 9},
	}

	records := make([]model.AcademicRecord, 0, len(seed))
	for _, s := range seed {
		records = append(records, model.AcademicRecord{
			StudentRef:      student.ID,
			Subject:         s.subject,
			Topic:           s.topic,
			Score:           s.score,
			MaxScore:        100,
			AssessmentType:  "quiz",
			DifficultyLevel: s.difficulty,
			AssessmentDate:  base.AddDate(0, 0, s.week*7),
			Attempts:        1,
		})
	}

	if err := recordRepo.CreateBatch(records); err != nil {
		log.Fatalf("Failed to seed records: %v", err)
	}

	analysis, err := profiler.Analyze(records)
	if err != nil {
		log.Fatalf("Failed to analyze seeded records: %v", err)
	}

	out, _ := json.MarshalIndent(analysis, "", "  ")
	fmt.Printf("Seeded student %d with %d records\n%s\n", student.ID, len(records), out)
}
