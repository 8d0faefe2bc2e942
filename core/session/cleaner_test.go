package session_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/persontric/adapter-mongodb/core/session"
)

// mockAdapter implements session.Adapter interface for testing
type mockAdapter struct {
	mock.Mock
}

func (m *mockAdapter) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *mockAdapter) DeleteAllSessionsForPerson(ctx context.Context, personID string) error {
	args := m.Called(ctx, personID)
	return args.Error(0)
}

func (m *mockAdapter) GetSessionAndPerson(ctx context.Context, sessionID string) (*session.Session, *session.Person, error) {
	args := m.Called(ctx, sessionID)
	var (
		sess   *session.Session
		person *session.Person
	)
	if v := args.Get(0); v != nil {
		sess = v.(*session.Session)
	}
	if v := args.Get(1); v != nil {
		person = v.(*session.Person)
	}
	return sess, person, args.Error(2)
}

func (m *mockAdapter) GetAllSessionsForPerson(ctx context.Context, personID string) ([]session.Session, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]session.Session), args.Error(1)
}

func (m *mockAdapter) SetSession(ctx context.Context, s session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockAdapter) UpdateSessionExpiration(ctx context.Context, sessionID string, expireDTS time.Time) error {
	args := m.Called(ctx, sessionID, expireDTS)
	return args.Error(0)
}

func (m *mockAdapter) DeleteExpiredSessions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ session.Adapter = (*mockAdapter)(nil)

// syncBuffer guards log output written from the cleaner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestNewCleaner(t *testing.T) {
	t.Parallel()

	t.Run("requires adapter", func(t *testing.T) {
		t.Parallel()

		cleaner, err := session.NewCleaner(nil)
		require.ErrorIs(t, err, session.ErrNilAdapter)
		assert.Nil(t, cleaner)
	})

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()

		cleaner, err := session.NewCleaner(&mockAdapter{})
		require.NoError(t, err)
		assert.Equal(t, time.Hour, cleaner.Interval())
	})

	t.Run("ignores non-positive interval", func(t *testing.T) {
		t.Parallel()

		cleaner, err := session.NewCleaner(&mockAdapter{}, session.WithInterval(-time.Second))
		require.NoError(t, err)
		assert.Equal(t, time.Hour, cleaner.Interval())
	})
}

func TestCleaner_RunOnce(t *testing.T) {
	t.Parallel()

	t.Run("deletes expired sessions", func(t *testing.T) {
		t.Parallel()

		adapter := &mockAdapter{}
		adapter.On("DeleteExpiredSessions", mock.Anything).Return(nil).Once()

		cleaner, err := session.NewCleaner(adapter)
		require.NoError(t, err)

		require.NoError(t, cleaner.RunOnce(context.Background()))
		adapter.AssertExpectations(t)
	})

	t.Run("returns adapter error unchanged and logs it", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("connection reset")
		adapter := &mockAdapter{}
		adapter.On("DeleteExpiredSessions", mock.Anything).Return(storeErr).Once()

		var buf syncBuffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		cleaner, err := session.NewCleaner(adapter, session.WithLogger(log))
		require.NoError(t, err)

		err = cleaner.RunOnce(context.Background())
		assert.Same(t, storeErr, err)
		assert.Contains(t, buf.String(), "connection reset")
		assert.Contains(t, buf.String(), `"component":"session.cleaner"`)
		adapter.AssertExpectations(t)
	})

	t.Run("bounds the run with timeout", func(t *testing.T) {
		t.Parallel()

		adapter := &mockAdapter{}
		adapter.On("DeleteExpiredSessions", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		})).Return(nil).Once()

		cleaner, err := session.NewCleaner(adapter, session.WithTimeout(time.Minute))
		require.NoError(t, err)

		require.NoError(t, cleaner.RunOnce(context.Background()))
		adapter.AssertExpectations(t)
	})

	t.Run("zero timeout keeps parent context", func(t *testing.T) {
		t.Parallel()

		adapter := &mockAdapter{}
		adapter.On("DeleteExpiredSessions", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return !ok
		})).Return(nil).Once()

		cleaner, err := session.NewCleaner(adapter, session.WithTimeout(0))
		require.NoError(t, err)

		require.NoError(t, cleaner.RunOnce(context.Background()))
		adapter.AssertExpectations(t)
	})
}

func TestCleaner_Run(t *testing.T) {
	t.Parallel()

	t.Run("runs on start and on every tick until cancelled", func(t *testing.T) {
		t.Parallel()

		calls := make(chan struct{}, 16)
		adapter := &mockAdapter{}
		adapter.On("DeleteExpiredSessions", mock.Anything).Return(nil).Run(func(mock.Arguments) {
			select {
			case calls <- struct{}{}:
			default:
			}
		})

		cleaner, err := session.NewCleaner(adapter, session.WithInterval(10*time.Millisecond))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- cleaner.Run(ctx) }()

		for range 3 {
			select {
			case <-calls:
			case <-time.After(time.Second):
				t.Fatal("cleanup was not triggered")
			}
		}

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancellation")
		}
	})

	t.Run("keeps running after a failed cleanup", func(t *testing.T) {
		t.Parallel()

		calls := make(chan struct{}, 16)
		adapter := &mockAdapter{}
		adapter.On("DeleteExpiredSessions", mock.Anything).Return(errors.New("boom")).Run(func(mock.Arguments) {
			select {
			case calls <- struct{}{}:
			default:
			}
		})

		cleaner, err := session.NewCleaner(adapter,
			session.WithInterval(10*time.Millisecond),
			session.WithRunOnStart(false),
		)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		done := make(chan error, 1)
		go func() { done <- cleaner.Run(ctx) }()

		for range 2 {
			select {
			case <-calls:
			case <-time.After(time.Second):
				t.Fatal("cleanup stopped after a failure")
			}
		}

		cancel()
		assert.NoError(t, <-done)
	})

	t.Run("returns immediately on cancelled context without run on start", func(t *testing.T) {
		t.Parallel()

		adapter := &mockAdapter{}
		cleaner, err := session.NewCleaner(adapter, session.WithRunOnStart(false))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.NoError(t, cleaner.Run(ctx))
		adapter.AssertNotCalled(t, "DeleteExpiredSessions", mock.Anything)
	})
}
