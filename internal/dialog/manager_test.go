package dialog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerSingleFlight(t *testing.T) {
	m := NewManager()

	sess, ok := m.Start(42)
	require.True(t, ok)
	assert.Equal(t, StepAskName, sess.Step)

	// A second dialog for the same chat is rejected while one is active.
	_, ok = m.Start(42)
	assert.False(t, ok)
	assert.True(t, m.Active(42))

	// Other chats are independent.
	_, ok = m.Start(43)
	assert.True(t, ok)

	m.End(42)
	assert.False(t, m.Active(42))
	_, ok = m.Start(42)
	assert.True(t, ok)
}

func TestManagerExpireIdle(t *testing.T) {
	m := NewManager()
	current := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return current }

	m.Start(1)
	current = current.Add(10 * time.Minute)
	m.Start(2)

	current = current.Add(25 * time.Minute)
	expired := m.ExpireIdle(30 * time.Minute)

	// Chat 1 was idle for 35 minutes, chat 2 only for 25.
	require.Equal(t, []int64{1}, expired)
	assert.False(t, m.Active(1))
	assert.True(t, m.Active(2))

	// Nothing left to expire right away.
	assert.Empty(t, m.ExpireIdle(30*time.Minute))
}
