package pgrepo

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJitter(t *testing.T) {
	for i := 0; i < 100; i++ {
		got := jitter(100, 0.15, 0.15)
		assert.GreaterOrEqual(t, got, 85.0)
		assert.LessOrEqual(t, got, 115.0)
	}

	// некорректные проценты заменяются на 15%
	got := jitter(100, -1, 0.5)
	assert.GreaterOrEqual(t, got, 85.0)
	assert.LessOrEqual(t, got, 115.0)
}

func TestConnectWithRetry_GivesUp(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)

	_, err := connectWithRetry(testContext(t), "not a dsn ::", 2, time.Millisecond, l)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
}
