package mongo

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_LogsRetries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	client, err := newClient(context.Background(), Config{
		ConnectionURL: "invalid://localhost:27017",
		RetryAttempts: 3,
		RetryInterval: time.Millisecond,
	}, log)
	require.ErrorIs(t, err, ErrFailedToConnectToMongo)
	assert.Nil(t, client)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "MongoDB connection failed, retrying"))
	assert.Contains(t, out, "retry_count=1")
	assert.Contains(t, out, "retry_count=2")
	assert.NotContains(t, out, "retry_count=3")
	assert.Contains(t, out, "component=database")
}
