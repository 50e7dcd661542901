package models

// Programme represents an academic programme offered by the institution.
type Programme struct {
	BaseEntity
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
}
