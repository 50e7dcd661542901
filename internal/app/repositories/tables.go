package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adewale/gradlink/internal/app/models"
)

// Table specs for the entity universe. Column order matches the Values
// output; the id column comes first.

func programmeTable() TableSpec[models.Programme] {
	return TableSpec[models.Programme]{
		Name:    "programmes",
		Columns: []string{"id", "created_at", "updated_at", "title", "description"},
		Values: func(p *models.Programme) []any {
			return []any{p.ID, p.CreatedAt, p.UpdatedAt, p.Title, p.Description}
		},
		ID:    func(p *models.Programme) string { return p.ID },
		Touch: func(p *models.Programme) { p.Stamp() },
	}
}

func departmentTable() TableSpec[models.Department] {
	return TableSpec[models.Department]{
		Name:    "departments",
		Columns: []string{"id", "created_at", "updated_at", "title", "description", "programme_id"},
		Values: func(d *models.Department) []any {
			return []any{d.ID, d.CreatedAt, d.UpdatedAt, d.Title, d.Description, d.ProgrammeID}
		},
		ID:    func(d *models.Department) string { return d.ID },
		Touch: func(d *models.Department) { d.Stamp() },
	}
}

func graduateTable() TableSpec[models.GraduateProfile] {
	return TableSpec[models.GraduateProfile]{
		Name: "graduate_profiles",
		Columns: []string{
			"id", "created_at", "updated_at",
			"user_id", "matric_number", "department_id", "year_of_graduation",
			"employment_status", "current_employer", "job_title", "location", "skills",
			"name", "email", "phone_number", "gender", "photo_url", "qualification",
		},
		Values: func(g *models.GraduateProfile) []any {
			return []any{
				g.ID, g.CreatedAt, g.UpdatedAt,
				g.UserID, g.MatricNumber, g.DepartmentID, g.YearOfGraduation,
				g.EmploymentStatus, g.CurrentEmployer, g.JobTitle, g.Location, g.Skills,
				g.Name, g.Email, g.PhoneNumber, g.Gender, g.PhotoURL, g.Qualification,
			}
		},
		ID:    func(g *models.GraduateProfile) string { return g.ID },
		Touch: func(g *models.GraduateProfile) { g.Stamp() },
	}
}

func roomSubjectTable() TableSpec[models.RoomSubject] {
	return TableSpec[models.RoomSubject]{
		Name:    "room_subjects",
		Columns: []string{"id", "created_at", "updated_at", "title", "description"},
		Values: func(s *models.RoomSubject) []any {
			return []any{s.ID, s.CreatedAt, s.UpdatedAt, s.Title, s.Description}
		},
		ID:    func(s *models.RoomSubject) string { return s.ID },
		Touch: func(s *models.RoomSubject) { s.Stamp() },
	}
}

func roomSubjectCommentTable() TableSpec[models.RoomSubjectComment] {
	return TableSpec[models.RoomSubjectComment]{
		Name:    "room_subject_comments",
		Columns: []string{"id", "created_at", "updated_at", "subject_id", "comment", "sender"},
		Values: func(c *models.RoomSubjectComment) []any {
			return []any{c.ID, c.CreatedAt, c.UpdatedAt, c.SubjectID, c.Comment, c.Sender}
		},
		ID:    func(c *models.RoomSubjectComment) string { return c.ID },
		Touch: func(c *models.RoomSubjectComment) { c.Stamp() },
	}
}

// Repositories bundles one repository per entity type.
type Repositories struct {
	Programmes  *Repository[models.Programme]
	Departments *Repository[models.Department]
	Graduates   *Repository[models.GraduateProfile]
	Subjects    *Repository[models.RoomSubject]
	Comments    *Repository[models.RoomSubjectComment]
}

// NewRepositories creates the repository set over one pool.
func NewRepositories(db *pgxpool.Pool, lgr zerolog.Logger) *Repositories {
	return &Repositories{
		Programmes:  New(db, programmeTable(), lgr),
		Departments: New(db, departmentTable(), lgr),
		Graduates:   New(db, graduateTable(), lgr),
		Subjects:    New(db, roomSubjectTable(), lgr),
		Comments:    New(db, roomSubjectCommentTable(), lgr),
	}
}
