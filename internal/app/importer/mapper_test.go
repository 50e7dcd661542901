package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapColumnsFuzzyMatching(t *testing.T) {
	mapping := MapColumns([]string{"Matric No", "Full Name", "E-Mail", "Sex"})

	assert.Equal(t, 1, mapping.MatricNumber)
	assert.Equal(t, 2, mapping.Name)
	assert.Equal(t, 3, mapping.Email)
	assert.Equal(t, 4, mapping.Gender)
	assert.Equal(t, 0, mapping.Phone)
	assert.Equal(t, 0, mapping.Qualification)
}

func TestMapColumnsLaterMatchWins(t *testing.T) {
	mapping := MapColumns([]string{"Name", "Preferred Name"})
	assert.Equal(t, 2, mapping.Name)
}

func TestMapColumnsIgnoresUnknownAndBlankHeaders(t *testing.T) {
	mapping := MapColumns([]string{"", "Remarks", "Qualification"})

	assert.Equal(t, 0, mapping.Name)
	assert.Equal(t, 3, mapping.Qualification)
}

func TestMapColumnsIsCaseInsensitive(t *testing.T) {
	mapping := MapColumns([]string{"MATRIC NUMBER", "fullName", "GENDER"})

	assert.Equal(t, 1, mapping.MatricNumber)
	assert.Equal(t, 2, mapping.Name)
	assert.Equal(t, 3, mapping.Gender)
}
