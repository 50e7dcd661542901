package models

// GraduateProfile is the record tracked for each graduate. MatricNumber is
// the natural key; its uniqueness is enforced by an application-layer
// existence check, not by the store.
type GraduateProfile struct {
	BaseEntity
	UserID           string `json:"userId" db:"user_id"`
	MatricNumber     string `json:"matricNumber" db:"matric_number"`
	DepartmentID     string `json:"departmentId" db:"department_id"`
	YearOfGraduation int    `json:"yearOfGraduation" db:"year_of_graduation"`

	EmploymentStatus string `json:"employmentStatus" db:"employment_status"`
	CurrentEmployer  string `json:"currentEmployer" db:"current_employer"`
	JobTitle         string `json:"jobTitle" db:"job_title"`
	Location         string `json:"location" db:"location"`
	Skills           string `json:"skills" db:"skills"`

	Name          string `json:"name" db:"name"`
	Email         string `json:"email" db:"email"`
	PhoneNumber   string `json:"phoneNumber" db:"phone_number"`
	Gender        string `json:"gender" db:"gender"`
	PhotoURL      string `json:"photoUrl" db:"photo_url"`
	Qualification string `json:"highestAcademicQualification" db:"qualification"`
}
