package client

import "fixfleet-server/models"

// DemoWorkers returns the bundled demo directory used whenever the API
// is unreachable. Kept behaviorally interchangeable with server data:
// the same matching function runs over either set.
func DemoWorkers() []models.Worker {
	return []models.Worker{
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
			Coordinates:     &models.Coordinates{X: 55, Y: 42},
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
			Coordinates:     &models.Coordinates{X: 30, Y: 60},
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
			Coordinates:     &models.Coordinates{X: 65, Y: 65},
		},
		{
			ID:              4,
			Name:            "Priya Nair",
			Skill:           models.SkillCleaning,
			Bio:             "Deep cleaning specialist for move-in & festival makeovers.",
			Phone:           "+91 98765 11004",
			Rating:          4.9,
			Jobs:            210,
			ExperienceYears: 4,
			DistanceKm:      3.4,
			Availability:    "Available today",
			Coordinates:     &models.Coordinates{X: 40, Y: 30},
		},
		{
			ID:              5,
			Name:            "Sanjay Patel",
			Skill:           models.SkillAppliance,
			Bio:             "Certified technician for ACs, fridges and washing machines.",
			Phone:           "+91 98765 11005",
			Rating:          4.6,
			Jobs:            98,
			ExperienceYears: 5,
			DistanceKm:      1.8,
			Availability:    "Available now",
			Coordinates:     &models.Coordinates{X: 75, Y: 36},
		},
	}
}
