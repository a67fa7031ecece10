package schools

// SchoolLevel identifies the grade band a school serves.
type SchoolLevel int

const (
	LevelUnknown    SchoolLevel = 0
	LevelElementary SchoolLevel = 1
	LevelMiddle     SchoolLevel = 2
	LevelHigh       SchoolLevel = 3
	LevelOther      SchoolLevel = 4
)

// Name returns the human-readable label for the level.
func (l SchoolLevel) Name() string {
	switch l {
	case LevelElementary:
		return "Elementary"
	case LevelMiddle:
		return "Middle School"
	case LevelHigh:
		return "High School"
	case LevelOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// AdmissionType is the mechanism by which a school admits students.
type AdmissionType string

const (
	AdmissionNeighborhood AdmissionType = "neighborhood"
	AdmissionLottery      AdmissionType = "lottery"
	AdmissionMagnet       AdmissionType = "magnet"
	AdmissionCharter      AdmissionType = "charter"
)

// Priority ranks admission types by likelihood of admission; lower admits
// more readily. Neighborhood schools guarantee enrollment by residence,
// lottery and charter schools select by lottery, magnets are competitive.
func (a AdmissionType) Priority() int {
	switch a {
	case AdmissionNeighborhood:
		return 1
	case AdmissionLottery, AdmissionCharter:
		return 2
	case AdmissionMagnet:
		return 3
	default:
		return 4
	}
}

// Description returns a short parent-facing explanation of the admission type.
func (a AdmissionType) Description() string {
	switch a {
	case AdmissionNeighborhood:
		return "Guaranteed admission based on residence"
	case AdmissionLottery:
		return "Application required, lottery selection"
	case AdmissionMagnet:
		return "Competitive application required"
	case AdmissionCharter:
		return "Charter school, may have lottery"
	default:
		return ""
	}
}

// DeriveAdmission resolves an admission type from a stored value, falling back
// to the charter flag when the directory row carries no explicit type.
func DeriveAdmission(raw string, charter bool) AdmissionType {
	switch AdmissionType(raw) {
	case AdmissionNeighborhood, AdmissionLottery, AdmissionMagnet, AdmissionCharter:
		return AdmissionType(raw)
	}
	if charter {
		return AdmissionCharter
	}
	return AdmissionNeighborhood
}

// Candidate is one school directory row supplied for a matching pass.
// Optional metrics are pointers; nil means the directory has no data for
// that field and scoring substitutes a neutral contribution.
type Candidate struct {
	NCESSchoolID string        `json:"ncessch"`
	Name         string        `json:"schoolName"`
	District     string        `json:"districtName,omitempty"`
	City         string        `json:"city"`
	State        string        `json:"state,omitempty"`
	Level        SchoolLevel   `json:"schoolLevel"`
	Charter      bool          `json:"charter"`
	Admission    AdmissionType `json:"admissionType"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Enrollment          *int     `json:"enrollment,omitempty"`
	StudentTeacherRatio *float64 `json:"studentTeacherRatio,omitempty"`
	LowIncomePct        *float64 `json:"lowIncomePct,omitempty"`
	GraduationRate      *float64 `json:"graduationRate,omitempty"`
	APCourses           *int     `json:"apCourses,omitempty"`
	HasGiftedProgram    bool     `json:"hasGiftedProgram"`
	PerPupilTotal       *float64 `json:"perPupilTotal,omitempty"`
}
