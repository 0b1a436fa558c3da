package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifRepo struct {
	rows []Notification
}

func (f *fakeNotifRepo) Create(ctx context.Context, n *Notification) error {
	f.rows = append(f.rows, *n)
	return nil
}

func (f *fakeNotifRepo) ListRecent(ctx context.Context, limit int) ([]Notification, error) {
	if len(f.rows) > limit {
		return f.rows[:limit], nil
	}
	return f.rows, nil
}

func TestRecordEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("registration event", func(t *testing.T) {
		repo := &fakeNotifRepo{}
		svc := NewService(repo)

		err := svc.RecordEvent(ctx, Event{Action: ActionUserRegistered, Name: "Kumar Raj", Mobile: "9876543210"})
		require.NoError(t, err)
		require.Len(t, repo.rows, 1)
		assert.Equal(t, "New member joined", repo.rows[0].Title)
		assert.Contains(t, repo.rows[0].Message, "Kumar Raj")
	})

	t.Run("falls back to mobile when name is empty", func(t *testing.T) {
		repo := &fakeNotifRepo{}
		svc := NewService(repo)

		err := svc.RecordEvent(ctx, Event{Action: ActionPhotoUploaded, Mobile: "9876543210"})
		require.NoError(t, err)
		require.Len(t, repo.rows, 1)
		assert.Contains(t, repo.rows[0].Message, "9876543210")
	})

	t.Run("bare event still names a subject", func(t *testing.T) {
		repo := &fakeNotifRepo{}
		svc := NewService(repo)

		err := svc.RecordEvent(ctx, Event{Action: ActionPhotoUploaded})
		require.NoError(t, err)
		require.Len(t, repo.rows, 1)
		assert.Equal(t, "A member added a new profile photo.", repo.rows[0].Message)
	})

	t.Run("unknown events are dropped silently", func(t *testing.T) {
		repo := &fakeNotifRepo{}
		svc := NewService(repo)

		err := svc.RecordEvent(ctx, Event{Action: "payment.received"})
		require.NoError(t, err)
		assert.Empty(t, repo.rows)
	})
}
