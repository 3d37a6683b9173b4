package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	st, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st, path
}

func TestStore_SessionRoundTrip(t *testing.T) {
	st, _ := openTestStore(t)
	ctx := context.Background()

	id := uuid.NewString()
	started := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, st.StartSession(ctx, Session{ID: id, File: "words.csv", StartedAt: started}))

	require.NoError(t, st.RecordAnswer(ctx, Answer{
		SessionID: id, Word: "cat", Answer: "кот", Correct: true, Successes: 3,
		CreatedAt: started.Add(10 * time.Second),
	}))
	require.NoError(t, st.RecordAnswer(ctx, Answer{
		SessionID: id, Word: "dog", Answer: "кот", Correct: false, Successes: -1,
		CreatedAt: started.Add(20 * time.Second),
	}))

	ended := started.Add(time.Minute)
	require.NoError(t, st.EndSession(ctx, id, ended, 2, 1))

	sessions, err := st.RecentSessions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	got := sessions[0]
	require.Equal(t, id, got.ID)
	require.Equal(t, "words.csv", got.File)
	require.Equal(t, 2, got.Answered)
	require.Equal(t, 1, got.Correct)
	require.True(t, got.EndedAt.Valid)
	require.True(t, got.EndedAt.Time.Equal(ended))
}

func TestStore_RecentSessionsOrderAndLimit(t *testing.T) {
	st, _ := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		id := uuid.NewString()
		ids = append(ids, id)
		require.NoError(t, st.StartSession(ctx, Session{
			ID: id, File: "words.csv", StartedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	sessions, err := st.RecentSessions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, ids[2], sessions[0].ID)
	require.Equal(t, ids[1], sessions[1].ID)
}

func TestStore_OpenBootstrapsTwice(t *testing.T) {
	st, path := openTestStore(t)
	require.NoError(t, st.Close())

	again, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, again.Close())
}
