package dto

// DepartmentRequest is the create/update payload for departments.
type DepartmentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ProgrammeID string `json:"programmeId" binding:"required"`
}

// DepartmentResponse is the department view, enriched with its programme
// title for listing convenience.
type DepartmentResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	ProgrammeID    string `json:"programmeId"`
	ProgrammeTitle string `json:"programmeTitle"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}
