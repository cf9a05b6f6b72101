package notifications

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNotifications(repo *fakeRepo, owner string, n int) {
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("n-%s-%d", owner, i)
		repo.items[id] = Notification{
			ID:        id,
			OwnerID:   owner,
			Message:   "Appointment updated for Milo.",
			CreatedAt: t0.Add(time.Duration(i) * time.Minute),
		}
	}
}

func TestList_NewestFirstAndFiltered(t *testing.T) {
	repo := newFakeRepo()
	seedNotifications(repo, "o1", 3)
	seedNotifications(repo, "o2", 2)
	svc := NewService(repo)

	items, err := svc.List(context.Background(), ListFilter{OwnerID: " o1 "})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "n-o1-2", items[0].ID)
	assert.Equal(t, "n-o1-0", items[2].ID)
}

func TestList_ClampsLimit(t *testing.T) {
	repo := newFakeRepo()
	seedNotifications(repo, "o1", MaxListLimit+10)
	svc := NewService(repo)

	items, err := svc.List(context.Background(), ListFilter{Limit: 10_000})
	require.NoError(t, err)
	assert.Len(t, items, MaxListLimit)

	items, err = svc.List(context.Background(), ListFilter{})
	require.NoError(t, err)
	assert.Len(t, items, DefaultListLimit)
}

func TestMarkRead_IdempotentAndFiltersUnread(t *testing.T) {
	repo := newFakeRepo()
	seedNotifications(repo, "o1", 2)
	svc := NewService(repo)

	for i := 0; i < 2; i++ {
		n, err := svc.MarkRead(context.Background(), "n-o1-0")
		require.NoError(t, err)
		assert.True(t, n.Read)
	}

	unread, err := svc.List(context.Background(), ListFilter{OwnerID: "o1", UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "n-o1-1", unread[0].ID)
}

func TestMarkRead_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.MarkRead(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.MarkRead(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNotFound)
}
