package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTCNow(t *testing.T) {
	now := UTCNow()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now().UTC(), now, time.Second)
}

func TestUTCNowRFC3339(t *testing.T) {
	s := UTCNowRFC3339()
	parsed, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, time.Second)
}
