package schools

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// SeedCandidates returns a small built-in directory used when no database is
// configured. Figures are plausible, not sourced from any district.
func SeedCandidates() []Candidate {
	return []Candidate{
		{
			NCESSchoolID: "060000100001", Name: "Lincoln Elementary School",
			District: "Springfield Unified", City: "Springfield", State: "IL",
			Level: LevelElementary, Admission: AdmissionNeighborhood,
			Enrollment: iptr(420), StudentTeacherRatio: fptr(16.8),
			LowIncomePct: fptr(34.5),
		},
		{
			NCESSchoolID: "060000100002", Name: "Riverside Elementary School",
			District: "Springfield Unified", City: "Springfield", State: "IL",
			Level: LevelElementary, Admission: AdmissionNeighborhood,
			Enrollment: iptr(610), StudentTeacherRatio: fptr(21.3),
			LowIncomePct: fptr(52.1),
		},
		{
			NCESSchoolID: "060000100003", Name: "Oak Grove Charter Academy",
			District: "Oak Grove Charter Network", City: "Springfield", State: "IL",
			Level: LevelElementary, Charter: true, Admission: AdmissionCharter,
			Enrollment: iptr(280), StudentTeacherRatio: fptr(14.2),
			HasGiftedProgram: true,
		},
		{
			NCESSchoolID: "060000200001", Name: "Jefferson Middle School",
			District: "Springfield Unified", City: "Springfield", State: "IL",
			Level: LevelMiddle, Admission: AdmissionNeighborhood,
			Enrollment: iptr(540), StudentTeacherRatio: fptr(15.1),
			HasGiftedProgram: true,
		},
		{
			NCESSchoolID: "060000200002", Name: "Westside STEM Magnet",
			District: "Springfield Unified", City: "Springfield", State: "IL",
			Level: LevelMiddle, Admission: AdmissionMagnet,
			Enrollment: iptr(460), StudentTeacherRatio: fptr(17.9),
			HasGiftedProgram: true,
		},
		{
			NCESSchoolID: "060000200003", Name: "Shelbyville Community Middle",
			District: "Shelbyville District 5", City: "Shelbyville", State: "IL",
			Level: LevelMiddle, Admission: AdmissionNeighborhood,
			Enrollment: iptr(720), StudentTeacherRatio: fptr(19.4),
			LowIncomePct: fptr(61.0),
		},
		{
			NCESSchoolID: "060000300001", Name: "Springfield High School",
			District: "Springfield Unified", City: "Springfield", State: "IL",
			Level: LevelHigh, Admission: AdmissionNeighborhood,
			Enrollment: iptr(1480), StudentTeacherRatio: fptr(18.6),
			GraduationRate: fptr(91.2), APCourses: iptr(14),
		},
		{
			NCESSchoolID: "060000300002", Name: "Capital City Prep Charter",
			District: "Capital City Charter Network", City: "Springfield", State: "IL",
			Level: LevelHigh, Charter: true, Admission: AdmissionCharter,
			Enrollment: iptr(390), StudentTeacherRatio: fptr(13.5),
			GraduationRate: fptr(95.8), APCourses: iptr(8), HasGiftedProgram: true,
		},
		{
			NCESSchoolID: "060000300003", Name: "Shelbyville High School",
			District: "Shelbyville District 5", City: "Shelbyville", State: "IL",
			Level: LevelHigh, Admission: AdmissionNeighborhood,
			Enrollment: iptr(980), StudentTeacherRatio: fptr(22.7),
			GraduationRate: fptr(78.4), APCourses: iptr(4),
		},
		{
			NCESSchoolID: "060000300004", Name: "North Arts Magnet High",
			District: "Springfield Unified", City: "Springfield", State: "IL",
			Level: LevelHigh, Admission: AdmissionMagnet,
			Enrollment: iptr(620), StudentTeacherRatio: fptr(16.0),
			GraduationRate: fptr(88.9), APCourses: iptr(11),
		},
	}
}
