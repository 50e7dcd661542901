package dto

// ProgrammeRequest is the create/update payload for programmes.
type ProgrammeRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// ProgrammeResponse is the programme view returned to callers.
type ProgrammeResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}
