package main

import (
	"log"

	"fixfleet-server/models"
	"fixfleet-server/store"
)

// seedWorkers loads the launch worker directory so the marketplace has
// results before anyone registers.
func seedWorkers(directory *store.DirectoryStore) {
	workers := []models.Worker{
		{
			ID:              1,
			Name:            "Ravi Sharma",
			Skill:           models.SkillElectrician,
			Bio:             "Specialist in wiring, MCB panels and emergency power issues.",
			Phone:           "+91 98765 11001",
			Rating:          4.9,
			Jobs:            182,
			ExperienceYears: 7,
			DistanceKm:      1.2,
			Availability:    "Available now",
		},
		{
			ID:              2,
			Name:            "Anita Verma",
			Skill:           models.SkillPlumber,
			Bio:             "Fast response for leaks, blockages and bathroom fittings.",
			Phone:           "+91 98765 11002",
			Rating:          4.8,
			Jobs:            143,
			ExperienceYears: 5,
			DistanceKm:      2.1,
			Availability:    "Wrapping a job nearby",
		},
		{
			ID:              3,
			Name:            "Imran Khan",
			Skill:           models.SkillCarpenter,
			Bio:             "Door fixes, modular kitchen tweaks and custom shelving.",
			Phone:           "+91 98765 11003",
			Rating:          4.7,
			Jobs:            121,
			ExperienceYears: 6,
			DistanceKm:      0.9,
			Availability:    "Available now",
		},
	}

	directory.Seed(workers)
	log.Printf("✅ Seeded %d launch workers", len(workers))
}
