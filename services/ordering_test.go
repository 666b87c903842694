package services

import (
	"testing"

	"eduadmin/models/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextOrderIndexEmptySet(t *testing.T) {
	db := setupTestDB(t)

	next := NextOrderIndex(db, &content.Chapter{}, "detail_id", 1)
	assert.Equal(t, 0, next)
}

func TestNextOrderIndexAppends(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&content.Chapter{DetailID: 1, CourseID: 1, Title: "a", OrderIndex: 0}).Error)
	require.NoError(t, db.Create(&content.Chapter{DetailID: 1, CourseID: 1, Title: "b", OrderIndex: 1}).Error)

	assert.Equal(t, 2, NextOrderIndex(db, &content.Chapter{}, "detail_id", 1))

	// Gaps are fine, the next index is one past the max
	require.NoError(t, db.Create(&content.Chapter{DetailID: 1, CourseID: 1, Title: "c", OrderIndex: 7}).Error)
	assert.Equal(t, 8, NextOrderIndex(db, &content.Chapter{}, "detail_id", 1))
}

func TestNextOrderIndexPerParent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&content.Chapter{DetailID: 1, CourseID: 1, Title: "a", OrderIndex: 3}).Error)

	// A different parent starts from scratch
	assert.Equal(t, 0, NextOrderIndex(db, &content.Chapter{}, "detail_id", 2))
}
