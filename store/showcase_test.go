package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbazessaqkhan/jktfeed/models"
)

func seedShowcase(t *testing.T, st *Store, title string, order int, active bool) *models.ShowcaseImage {
	t.Helper()
	img := &models.ShowcaseImage{
		Title:        title,
		ImageURL:     "/img/" + title + ".jpg",
		DisplayOrder: order,
		IsActive:     active,
	}
	require.NoError(t, st.CreateShowcaseImage(img))
	return img
}

func TestShowcaseOrderingAndActiveFilter(t *testing.T) {
	st := newTestStore(t)

	seedShowcase(t, st, "raceway", 2, true)
	seedShowcase(t, st, "hatchery", 1, true)
	seedShowcase(t, st, "retired", 0, false)

	public, err := st.ListShowcaseImages(true)
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, "hatchery", public[0].Title)
	assert.Equal(t, "raceway", public[1].Title)

	all, err := st.ListShowcaseImages(false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "retired", all[0].Title)
}

func TestShowcaseUpdateAndDelete(t *testing.T) {
	st := newTestStore(t)
	img := seedShowcase(t, st, "raceway", 1, true)

	updated, err := st.UpdateShowcaseImage(img.ImageID, map[string]interface{}{
		"display_order": 5,
		"is_active":     false,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.DisplayOrder)
	assert.False(t, updated.IsActive)

	require.NoError(t, st.DeleteShowcaseImage(img.ImageID))
	assert.ErrorIs(t, st.DeleteShowcaseImage(img.ImageID), ErrNotFound)

	_, err = st.UpdateShowcaseImage(999, map[string]interface{}{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}
