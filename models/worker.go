package models

// Skill represents the service category a worker offers
type Skill string

const (
	SkillElectrician Skill = "electrician"
	SkillPlumber     Skill = "plumber"
	SkillCarpenter   Skill = "carpenter"
	SkillCleaning    Skill = "cleaning"
	SkillAppliance   Skill = "appliance"
	SkillPainting    Skill = "painting"
	SkillOther       Skill = "other"
)

// Coordinates is a display-only map position expressed as x/y percentages
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Worker represents a registered service professional.
// Records are immutable after registration; ratings and job counts are
// snapshot values, not updated by bookings.
type Worker struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	Skill           Skill        `json:"skill"`
	Bio             string       `json:"bio"`
	Phone           string       `json:"phone"`
	Rating          float64      `json:"rating"`
	Jobs            int          `json:"jobs"`
	ExperienceYears int          `json:"experienceYears"`
	DistanceKm      float64      `json:"distanceKm"`
	Availability    string       `json:"availability"`
	Coordinates     *Coordinates `json:"coordinates,omitempty"`
}

// WorkerRequest represents the worker self-registration payload
type WorkerRequest struct {
	Name  string `json:"name" binding:"required"`
	Skill Skill  `json:"skill" binding:"required"`
	Bio   string `json:"bio"`
	Phone string `json:"phone" binding:"required"`
}

// IsValidSkill checks whether the skill is one of the known categories
func IsValidSkill(s Skill) bool {
	switch s {
	case SkillElectrician, SkillPlumber, SkillCarpenter, SkillCleaning,
		SkillAppliance, SkillPainting, SkillOther:
		return true
	default:
		return false
	}
}

// GetSkills returns all available worker skills
func GetSkills() []Skill {
	return []Skill{
		SkillElectrician,
		SkillPlumber,
		SkillCarpenter,
		SkillCleaning,
		SkillAppliance,
		SkillPainting,
		SkillOther,
	}
}
