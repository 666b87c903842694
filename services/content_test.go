package services

import (
	"errors"
	"testing"

	"eduadmin/models/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateDetailIdempotent(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, 0)

	first, err := GetOrCreateDetail(db, course.ID)
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := GetOrCreateDetail(db, course.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&content.CourseDetail{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetOrCreateDetailMissingCourse(t *testing.T) {
	db := setupTestDB(t)

	_, err := GetOrCreateDetail(db, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "course", nf.Entity)
	assert.Equal(t, uint(999), nf.ID)
}

func TestAddChapterAssignsAppendOrder(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, 0)

	for _, title := range []string{"one", "two", "three"} {
		ch := content.Chapter{Title: title}
		require.NoError(t, AddChapter(db, course.ID, &ch))
	}

	chapters, err := ListChapters(db, course.ID)
	require.NoError(t, err)
	require.Len(t, chapters, 3)
	assert.Equal(t, 0, chapters[0].OrderIndex)
	assert.Equal(t, 1, chapters[1].OrderIndex)
	assert.Equal(t, 2, chapters[2].OrderIndex)
}

func TestAddChapterKeepsExplicitIndex(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, 0)

	ch := content.Chapter{Title: "pinned", OrderIndex: 5}
	require.NoError(t, AddChapter(db, course.ID, &ch))
	assert.Equal(t, 5, ch.OrderIndex)

	// The next append lands after the explicit index
	next := content.Chapter{Title: "after"}
	require.NoError(t, AddChapter(db, course.ID, &next))
	assert.Equal(t, 6, next.OrderIndex)
}

func TestListChaptersSortedWithDuplicateIndices(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, 0)

	a := content.Chapter{Title: "a", OrderIndex: 2}
	b := content.Chapter{Title: "b", OrderIndex: 2}
	c := content.Chapter{Title: "c", OrderIndex: 1}
	require.NoError(t, AddChapter(db, course.ID, &a))
	require.NoError(t, AddChapter(db, course.ID, &b))
	require.NoError(t, AddChapter(db, course.ID, &c))

	chapters, err := ListChapters(db, course.ID)
	require.NoError(t, err)
	require.Len(t, chapters, 3)

	// Non-decreasing order, ties broken by creation order
	assert.Equal(t, "c", chapters[0].Title)
	assert.Equal(t, "a", chapters[1].Title)
	assert.Equal(t, "b", chapters[2].Title)
}

func TestSectionAndSubSectionPlacement(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, 0)

	ch := content.Chapter{Title: "ch"}
	require.NoError(t, AddChapter(db, course.ID, &ch))

	s1 := content.Section{Title: "s1"}
	s2 := content.Section{Title: "s2", ContentType: content.ContentTypeVideo}
	require.NoError(t, AddSection(db, ch.ID, &s1))
	require.NoError(t, AddSection(db, ch.ID, &s2))

	assert.Equal(t, course.ID, s1.CourseID)
	assert.Equal(t, content.ContentTypeText, s1.ContentType) // default
	assert.Equal(t, 0, s1.OrderIndex)
	assert.Equal(t, 1, s2.OrderIndex)

	sub := content.SubSection{Title: "sub"}
	require.NoError(t, AddSubSection(db, s2.ID, &sub))
	assert.Equal(t, s2.ID, sub.SectionID)
	assert.Equal(t, course.ID, sub.CourseID)
	assert.Equal(t, 0, sub.OrderIndex)

	subs, err := ListSubSections(db, s2.ID)
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestAddSectionMissingChapter(t *testing.T) {
	db := setupTestDB(t)

	err := AddSection(db, 42, &content.Section{Title: "orphan"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateChapterPatch(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, 0)

	ch := content.Chapter{Title: "old", Description: "desc"}
	require.NoError(t, AddChapter(db, course.ID, &ch))

	updated, err := UpdateChapter(db, ch.ID, ChapterPatch{Title: "new", OrderIndex: 9})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, "desc", updated.Description) // untouched
	assert.Equal(t, 9, updated.OrderIndex)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
}

func TestUpdateSectionPreviewFlag(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, 0)

	ch := content.Chapter{Title: "ch"}
	require.NoError(t, AddChapter(db, course.ID, &ch))
	sec := content.Section{Title: "sec"}
	require.NoError(t, AddSection(db, ch.ID, &sec))

	on := true
	updated, err := UpdateSection(db, sec.ID, SectionPatch{IsFreePreview: &on})
	require.NoError(t, err)
	assert.True(t, updated.IsFreePreview)

	// Nil pointer leaves the flag alone
	updated, err = UpdateSection(db, sec.ID, SectionPatch{Title: "renamed"})
	require.NoError(t, err)
	assert.True(t, updated.IsFreePreview)
}

func TestUpdateMissingNodes(t *testing.T) {
	db := setupTestDB(t)

	_, err := UpdateChapter(db, 1, ChapterPatch{Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = UpdateSection(db, 1, SectionPatch{Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = UpdateSubSection(db, 1, SubSectionPatch{Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteChapterCascades(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, 0)

	ch := content.Chapter{Title: "ch"}
	require.NoError(t, AddChapter(db, course.ID, &ch))
	sec := content.Section{Title: "sec"}
	require.NoError(t, AddSection(db, ch.ID, &sec))
	sub := content.SubSection{Title: "sub"}
	require.NoError(t, AddSubSection(db, sec.ID, &sub))

	require.NoError(t, DeleteChapter(db, ch.ID))

	_, err := UpdateChapter(db, ch.ID, ChapterPatch{Title: "gone"})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = UpdateSection(db, sec.ID, SectionPatch{Title: "gone"})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = UpdateSubSection(db, sub.ID, SubSectionPatch{Title: "gone"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSectionCascades(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, 0)

	ch := content.Chapter{Title: "ch"}
	require.NoError(t, AddChapter(db, course.ID, &ch))
	sec := content.Section{Title: "sec"}
	require.NoError(t, AddSection(db, ch.ID, &sec))
	sub := content.SubSection{Title: "sub"}
	require.NoError(t, AddSubSection(db, sec.ID, &sub))

	require.NoError(t, DeleteSection(db, sec.ID))

	sections, err := ListSections(db, ch.ID)
	require.NoError(t, err)
	assert.Empty(t, sections)

	_, err = UpdateSubSection(db, sub.ID, SubSectionPatch{Title: "gone"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteDetailRemovesWholeTree(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, 0)

	ch := content.Chapter{Title: "ch"}
	require.NoError(t, AddChapter(db, course.ID, &ch))
	sec := content.Section{Title: "sec"}
	require.NoError(t, AddSection(db, ch.ID, &sec))

	require.NoError(t, DeleteDetail(db, course.ID))

	var count int64
	db.Model(&content.Chapter{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// Missing detail is not an error
	require.NoError(t, DeleteDetail(db, course.ID))
}
