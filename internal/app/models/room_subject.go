package models

// RoomSubject is a discussion-board topic.
type RoomSubject struct {
	BaseEntity
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
}

// RoomSubjectComment is a single comment under a RoomSubject.
type RoomSubjectComment struct {
	BaseEntity
	SubjectID string `json:"subjectId" db:"subject_id"`
	Comment   string `json:"comment" db:"comment"`
	Sender    string `json:"sender" db:"sender"`
}
