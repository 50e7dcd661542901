package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adewale/gradlink/internal/app/models"
)

func TestBuildInsertSQL(t *testing.T) {
	sql := buildInsertSQL("departments", []string{"id", "created_at", "updated_at", "title", "description", "programme_id"})
	assert.Equal(t,
		"INSERT INTO departments (id, created_at, updated_at, title, description, programme_id) VALUES ($1, $2, $3, $4, $5, $6)",
		sql)
}

func TestBuildUpdateSQL(t *testing.T) {
	sql := buildUpdateSQL("programmes", []string{"id", "created_at", "updated_at", "title", "description"})
	assert.Equal(t,
		"UPDATE programmes SET created_at = $1, updated_at = $2, title = $3, description = $4 WHERE id = $5",
		sql)
}

// Every table spec must emit values aligned with its column list, with the
// id first, or the precomputed SQL silently writes fields into the wrong
// columns.
func TestTableSpecsAlignValuesWithColumns(t *testing.T) {
	base := models.NewBaseEntity()

	t.Run("programme", func(t *testing.T) {
		spec := programmeTable()
		p := &models.Programme{BaseEntity: base, Title: "PGDE", Description: "postgrad"}
		values := spec.Values(p)
		require.Len(t, values, len(spec.Columns))
		assert.Equal(t, p.ID, values[0])
		assert.Equal(t, p.ID, spec.ID(p))
	})

	t.Run("department", func(t *testing.T) {
		spec := departmentTable()
		d := &models.Department{BaseEntity: base, Title: "Physics", ProgrammeID: "prog-1"}
		values := spec.Values(d)
		require.Len(t, values, len(spec.Columns))
		assert.Equal(t, d.ID, values[0])
		assert.Equal(t, "prog-1", values[len(values)-1])
	})

	t.Run("graduate", func(t *testing.T) {
		spec := graduateTable()
		g := &models.GraduateProfile{BaseEntity: base, MatricNumber: "M001", DepartmentID: "dep-1"}
		values := spec.Values(g)
		require.Len(t, values, len(spec.Columns))
		assert.Equal(t, g.ID, values[0])
	})

	t.Run("room subject comment", func(t *testing.T) {
		spec := roomSubjectCommentTable()
		c := &models.RoomSubjectComment{BaseEntity: base, SubjectID: "sub-1", Comment: "hi", Sender: "ada"}
		values := spec.Values(c)
		require.Len(t, values, len(spec.Columns))
		assert.Equal(t, c.ID, values[0])
	})
}

func TestTouchRefreshesUpdatedTimestamp(t *testing.T) {
	spec := graduateTable()
	g := &models.GraduateProfile{BaseEntity: models.BaseEntity{ID: "g1", CreatedAt: "2020-01-01T00:00:00Z", UpdatedAt: "2020-01-01T00:00:00Z"}}

	spec.Touch(g)

	assert.Equal(t, "2020-01-01T00:00:00Z", g.CreatedAt)
	assert.NotEqual(t, "2020-01-01T00:00:00Z", g.UpdatedAt)
}
