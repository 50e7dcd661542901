package dto

// SubjectSummary is the discussion-board listing row.
type SubjectSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CreatedAt    string `json:"createdAt"`
	CommentCount int    `json:"commentCount"`
}

// CommentView is one comment under a subject.
type CommentView struct {
	ID            string `json:"id"`
	Comment       string `json:"comment"`
	Sender        string `json:"sender"`
	CreatedAt     string `json:"createdAt"`
	IsCurrentUser bool   `json:"isCurrentUser"`
}

// SubjectDetail is a subject with its comments in creation order.
type SubjectDetail struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	CreatedAt   string        `json:"createdAt"`
	Comments    []CommentView `json:"comments"`
}

// CreateSubjectRequest opens a new discussion topic.
type CreateSubjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// UpdateSubjectRequest edits a topic's title and description.
type UpdateSubjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// CommentRequest adds or edits a comment.
type CommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}
