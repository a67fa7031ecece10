package schools

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var candidateTestColumns = []string{
	"ncessch", "school_name", "district_name", "city", "state", "school_level",
	"charter", "admission_type", "latitude", "longitude", "enrollment",
	"student_teacher_ratio", "low_income_pct", "graduation_rate", "ap_courses",
	"has_gifted_program", "per_pupil_total",
}

func TestPGRepoListCandidatesFiltersByLevel(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows(candidateTestColumns).
		AddRow("0612345", "Lincoln Middle", "San Jose Unified", "SAN JOSE", "CA", 2,
			false, "neighborhood", 37.33, -121.89, 640,
			17.5, 42.0, nil, nil,
			true, 11250.0)

	mock.ExpectQuery("FROM schools").
		WithArgs(minEnrollment, 2, 100).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.ListCandidates(context.Background(), Query{Level: LevelMiddle})
	if err != nil {
		t.Fatalf("ListCandidates: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}

	cand := got[0]
	if cand.Level != LevelMiddle {
		t.Errorf("level = %v, want %v", cand.Level, LevelMiddle)
	}
	if cand.Admission != AdmissionNeighborhood {
		t.Errorf("admission = %q, want neighborhood", cand.Admission)
	}
	if cand.GraduationRate != nil {
		t.Errorf("expected nil graduation rate, got %v", *cand.GraduationRate)
	}
	if cand.StudentTeacherRatio == nil || *cand.StudentTeacherRatio != 17.5 {
		t.Errorf("unexpected student/teacher ratio: %v", cand.StudentTeacherRatio)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListCandidatesAppliesCityFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("UPPER\\(city\\)").
		WithArgs(minEnrollment, 3, "SAN JOSE", 20).
		WillReturnRows(sqlmock.NewRows(candidateTestColumns))

	repo := &PGRepo{DB: db}
	got, err := repo.ListCandidates(context.Background(), Query{Level: LevelHigh, City: "san jose", Limit: 20})
	if err != nil {
		t.Fatalf("ListCandidates: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no candidates, got %d", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("WHERE ncessch").
		WithArgs("0699999").
		WillReturnRows(sqlmock.NewRows(candidateTestColumns))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "0699999"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeriveAdmission(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		charter bool
		want    AdmissionType
	}{
		{"explicit_magnet", "magnet", false, AdmissionMagnet},
		{"explicit_lottery", "lottery", true, AdmissionLottery},
		{"charter_fallback", "", true, AdmissionCharter},
		{"neighborhood_fallback", "", false, AdmissionNeighborhood},
		{"unknown_value_uses_flag", "open-enrollment", false, AdmissionNeighborhood},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveAdmission(tc.raw, tc.charter); got != tc.want {
				t.Fatalf("DeriveAdmission(%q, %v) = %q, want %q", tc.raw, tc.charter, got, tc.want)
			}
		})
	}
}

func TestDedupeKeepsFirstOccurrence(t *testing.T) {
	in := []Candidate{
		{NCESSchoolID: "a", Name: "First A"},
		{NCESSchoolID: "b", Name: "B"},
		{NCESSchoolID: "a", Name: "Second A"},
		{NCESSchoolID: "", Name: "No ID"},
	}
	out := Dedupe(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(out))
	}
	if out[0].Name != "First A" || out[1].Name != "B" {
		t.Fatalf("unexpected order: %q, %q", out[0].Name, out[1].Name)
	}
}
