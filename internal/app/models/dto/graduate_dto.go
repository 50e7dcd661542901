package dto

// GraduateRequest is the create/update payload for a single graduate
// profile.
type GraduateRequest struct {
	MatricNumber     string `json:"matricNumber" binding:"required"`
	DepartmentID     string `json:"departmentId" binding:"required"`
	YearOfGraduation int    `json:"yearOfGraduation" binding:"required"`

	Name             string `json:"name"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phoneNumber"`
	Gender           string `json:"gender"`
	Qualification    string `json:"highestAcademicQualification"`
	EmploymentStatus string `json:"employmentStatus"`
	CurrentEmployer  string `json:"currentEmployer"`
	JobTitle         string `json:"jobTitle"`
	Location         string `json:"location"`
	Skills           string `json:"skills"`
	PhotoURL         string `json:"photoUrl"`
}

// GraduateResponse is the graduate view, enriched with department and
// programme titles.
type GraduateResponse struct {
	ID               string `json:"id"`
	MatricNumber     string `json:"matricNumber"`
	DepartmentID     string `json:"departmentId"`
	DepartmentName   string `json:"departmentName"`
	ProgrammeID      string `json:"programmeId,omitempty"`
	ProgrammeName    string `json:"programmeName,omitempty"`
	YearOfGraduation int    `json:"yearOfGraduation"`

	Name             string `json:"name"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phoneNumber"`
	Gender           string `json:"gender"`
	Qualification    string `json:"highestAcademicQualification"`
	EmploymentStatus string `json:"employmentStatus"`
	CurrentEmployer  string `json:"currentEmployer"`
	JobTitle         string `json:"jobTitle"`
	Location         string `json:"location"`
	Skills           string `json:"skills"`
	PhotoURL         string `json:"photoUrl"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
