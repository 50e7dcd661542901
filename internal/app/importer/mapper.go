package importer

import "strings"

// ColumnMapping holds the resolved 1-based column index for each semantic
// field. Zero means the field is absent from the header row; absent fields
// always read as empty.
type ColumnMapping struct {
	MatricNumber  int
	Name          int
	Email         int
	Gender        int
	Phone         int
	Qualification int
}

// Header synonym sets, matched case-insensitively as substrings. Process-wide
// immutable configuration.
var (
	matricKeywords        = []string{"matric", "id", "number"}
	nameKeywords          = []string{"name", "fullname"}
	emailKeywords         = []string{"email", "mail"}
	genderKeywords        = []string{"gender", "sex"}
	phoneKeywords         = []string{"phone", "mobile", "contact"}
	qualificationKeywords = []string{"qualification", "degree", "education"}
)

// MapColumns inspects the header row and infers which column holds which
// field. Columns are visited left to right and each column is assigned to at
// most one field, in fixed field order; a later column matching an
// already-resolved field overwrites the earlier assignment. Columns matching
// no synonym are ignored.
func MapColumns(headers []string) ColumnMapping {
	var mapping ColumnMapping

	for i, raw := range headers {
		header := strings.ToLower(strings.TrimSpace(raw))
		if header == "" {
			continue
		}

		col := i + 1
		switch {
		case containsAny(header, matricKeywords):
			mapping.MatricNumber = col
		case containsAny(header, nameKeywords):
			mapping.Name = col
		case containsAny(header, emailKeywords):
			mapping.Email = col
		case containsAny(header, genderKeywords):
			mapping.Gender = col
		case containsAny(header, phoneKeywords):
			mapping.Phone = col
		case containsAny(header, qualificationKeywords):
			mapping.Qualification = col
		}
	}

	return mapping
}

func containsAny(header string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(header, kw) {
			return true
		}
	}
	return false
}

// indices lists the mapped columns in field order, for the emptiness check.
func (m ColumnMapping) indices() []int {
	return []int{m.MatricNumber, m.Name, m.Email, m.Gender, m.Phone, m.Qualification}
}
