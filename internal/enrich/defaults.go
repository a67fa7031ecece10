package enrich

import "schoolmatch-backend/internal/schools"

// DefaultInfo builds the deterministic fallback payload for a school when no
// lookup succeeded. The content depends only on the request, so repeated
// calls return identical payloads.
func DefaultInfo(req Request) Info {
	info := Info{
		NCESSchoolID: req.NCESSchoolID,
		SchoolName:   req.SchoolName,
		Programs:     defaultPrograms(req.Level),
		Tour: Tour{
			Available: true,
			Schedule:  "Contact the school office to schedule a visit",
		},
		Contact: Contact{
			Website: "Check your district website for school contact details",
		},
		Source: SourceDefault,
	}

	if req.Charter {
		info.Deadlines = []Deadline{
			{Name: "Lottery application", When: "Typically January-February for fall enrollment"},
			{Name: "Lottery results", When: "Typically March-April"},
		}
	} else {
		info.Deadlines = []Deadline{
			{Name: "Enrollment", When: "Rolling enrollment for families in the attendance zone"},
		}
	}
	return info
}

func defaultPrograms(level schools.SchoolLevel) []string {
	switch level {
	case schools.LevelElementary:
		return []string{
			"Core academics (reading, writing, math, science)",
			"Art and music",
			"Physical education",
		}
	case schools.LevelMiddle:
		return []string{
			"Core academics with elective rotations",
			"Band, choir, and visual arts",
			"Interscholastic and intramural sports",
		}
	case schools.LevelHigh:
		return []string{
			"College preparatory coursework",
			"Advanced Placement and honors courses",
			"Athletics, performing arts, and student clubs",
		}
	default:
		return []string{"Contact the school for current program offerings"}
	}
}
