package models

// Department represents a department belonging to a programme.
type Department struct {
	BaseEntity
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	ProgrammeID string `json:"programmeId" db:"programme_id"`
}
