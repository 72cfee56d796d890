package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbazessaqkhan/jktfeed/models"
)

func TestSettingsUpsert(t *testing.T) {
	st := newTestStore(t)

	created, err := st.SetSetting(models.SettingCartTTLHours, "168")
	require.NoError(t, err)
	assert.Equal(t, "168", created.Value)

	// Writing the same key again overwrites, it never duplicates
	updated, err := st.SetSetting(models.SettingCartTTLHours, "72")
	require.NoError(t, err)
	assert.Equal(t, "72", updated.Value)
	assert.Equal(t, created.SettingID, updated.SettingID)

	_, err = st.SetSetting(models.SettingStoreEmail, "info@jktfeed.example")
	require.NoError(t, err)

	all, err := st.ListSettings()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := st.GetSetting(models.SettingCartTTLHours)
	require.NoError(t, err)
	assert.Equal(t, "72", got.Value)

	_, err = st.GetSetting("no_such_key")
	assert.ErrorIs(t, err, ErrNotFound)
}
