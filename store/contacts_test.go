package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbazessaqkhan/jktfeed/models"
)

func TestContactThread(t *testing.T) {
	st := newTestStore(t)

	contact := models.Contact{
		Name:    "Gulzar Dar",
		Email:   "gulzar@example.com",
		Subject: "Feed for fingerlings",
		Message: "Which pellet size suits 5g fingerlings?",
	}
	require.NoError(t, st.CreateContact(&contact))
	require.NotZero(t, contact.ContactID)

	_, err := st.AddMessage(contact.ContactID, models.SenderAdmin, "The 1.5 mm early feed.")
	require.NoError(t, err)
	_, err = st.AddMessage(contact.ContactID, models.SenderCustomer, "Thanks, ordering now.")
	require.NoError(t, err)

	got, err := st.GetContact(contact.ContactID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, models.SenderAdmin, got.Messages[0].Sender)
	assert.Equal(t, models.SenderCustomer, got.Messages[1].Sender)
}

func TestListContactsNewestFirst(t *testing.T) {
	st := newTestStore(t)

	older := models.Contact{Name: "A", Email: "a@example.com", Subject: "s", Message: "m"}
	require.NoError(t, st.CreateContact(&older))
	newer := models.Contact{Name: "B", Email: "b@example.com", Subject: "s", Message: "m"}
	require.NoError(t, st.CreateContact(&newer))

	// Separate the rows in time so the ordering is unambiguous
	err := st.DB().Model(&models.Contact{}).
		Where("contact_id = ?", older.ContactID).
		Update("created_at", time.Now().Add(-time.Hour)).Error
	require.NoError(t, err)

	contacts, err := st.ListContacts()
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, newer.ContactID, contacts[0].ContactID)
	assert.Equal(t, older.ContactID, contacts[1].ContactID)
}

func TestAddMessageUnknownContact(t *testing.T) {
	st := newTestStore(t)

	_, err := st.AddMessage(999, models.SenderAdmin, "hello?")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNotifications(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.CreateNotification(models.NotificationContact, "New contact", "subject"))
	require.NoError(t, st.CreateNotification(models.NotificationOrder, "New order", "JKT-1"))

	all, err := st.ListNotifications(false)
	require.NoError(t, err)
	require.Len(t, all, 2)

	require.NoError(t, st.MarkNotificationRead(all[0].NotificationID))

	unread, err := st.ListNotifications(true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, all[1].NotificationID, unread[0].NotificationID)

	assert.ErrorIs(t, st.MarkNotificationRead(999), ErrNotFound)
}
