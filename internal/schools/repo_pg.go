package schools

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

const (
	minEnrollment = 50
	defaultLimit  = 100
)

// PGRepo implements Repo against the Postgres school directory.
type PGRepo struct {
	DB *sql.DB
}

const candidateColumns = `
ncessch,
school_name,
district_name,
city,
state,
school_level,
charter,
admission_type,
latitude,
longitude,
enrollment,
ROUND((enrollment::float8 / NULLIF(teachers_fte, 0))::numeric, 1)::float8 AS student_teacher_ratio,
ROUND((free_lunch::float8 / NULLIF(enrollment, 0) * 100)::numeric, 1)::float8 AS low_income_pct,
graduation_rate,
ap_courses,
has_gifted_program,
per_pupil_total`

// ListCandidates returns directory rows for the requested level and region.
// Rows with enrollment below the floor or without staffing data are excluded
// so that derived ratios stay meaningful.
func (r *PGRepo) ListCandidates(ctx context.Context, q Query) ([]Candidate, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	query := `
SELECT ` + candidateColumns + `
FROM schools
WHERE enrollment >= $1
  AND teachers_fte > 0
  AND school_name IS NOT NULL
  AND school_level = $2`
	args := []any{minEnrollment, int(q.Level)}

	if city := strings.TrimSpace(q.City); city != "" {
		query += `
  AND UPPER(city) = $3`
		args = append(args, strings.ToUpper(city))
	}
	query += fmt.Sprintf(`
ORDER BY ncessch
LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Candidate
	for rows.Next() {
		cand, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, cand)
	}
	return out, rows.Err()
}

// GetByID returns a single directory row.
func (r *PGRepo) GetByID(ctx context.Context, ncessch string) (Candidate, error) {
	query := `
SELECT ` + candidateColumns + `
FROM schools
WHERE ncessch = $1`
	row := r.DB.QueryRowContext(ctx, query, ncessch)
	cand, err := scanCandidate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Candidate{}, ErrNotFound
	}
	return cand, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (Candidate, error) {
	var (
		cand          Candidate
		district      sql.NullString
		state         sql.NullString
		admission     sql.NullString
		latitude      sql.NullFloat64
		longitude     sql.NullFloat64
		enrollment    sql.NullInt64
		ratio         sql.NullFloat64
		lowIncome     sql.NullFloat64
		gradRate      sql.NullFloat64
		apCourses     sql.NullInt64
		perPupilTotal sql.NullFloat64
		level         int
	)
	err := row.Scan(
		&cand.NCESSchoolID,
		&cand.Name,
		&district,
		&cand.City,
		&state,
		&level,
		&cand.Charter,
		&admission,
		&latitude,
		&longitude,
		&enrollment,
		&ratio,
		&lowIncome,
		&gradRate,
		&apCourses,
		&cand.HasGiftedProgram,
		&perPupilTotal,
	)
	if err != nil {
		return Candidate{}, err
	}

	cand.District = district.String
	cand.State = state.String
	cand.Level = SchoolLevel(level)
	cand.Admission = DeriveAdmission(admission.String, cand.Charter)
	cand.Latitude = nullFloat(latitude)
	cand.Longitude = nullFloat(longitude)
	cand.Enrollment = nullInt(enrollment)
	cand.StudentTeacherRatio = nullFloat(ratio)
	cand.LowIncomePct = nullFloat(lowIncome)
	cand.GraduationRate = nullFloat(gradRate)
	cand.APCourses = nullInt(apCourses)
	cand.PerPupilTotal = nullFloat(perPupilTotal)
	return cand, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

