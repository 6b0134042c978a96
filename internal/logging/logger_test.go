package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fadedpez/gofish/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", DEBUG, false},
		{"INFO", INFO, false},
		{" warn ", WARN, false},
		{"Error", ERROR, false},
		{"verbose", INFO, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, err := ParseLevel(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(WARN, &buf)

	logger.Debug("hidden %d", 1)
	logger.Info("hidden %d", 2)
	assert.Empty(t, buf.String(), "messages below WARN should be dropped")

	logger.Warn("deck running low: %d cards", 3)
	assert.Contains(t, buf.String(), "deck running low: 3 cards")
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "logger_test.go:")
}

func TestWithFieldAddsContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(DEBUG, &buf).WithField("match", "abc123")

	logger.Debug("turn started")

	assert.Contains(t, buf.String(), "match=abc123")
	assert.Contains(t, buf.String(), "turn started")
}

func TestLogError(t *testing.T) {
	t.Run("game error", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(ERROR, &buf)

		logger.LogError(types.WrapError(types.ErrCardNotFound, "Dealer does not hold 7♥", errors.New("hand changed")))

		out := buf.String()
		assert.Contains(t, out, "CARD_NOT_FOUND")
		assert.Contains(t, out, "Dealer does not hold 7♥")
		assert.Contains(t, out, "hand changed")
	})

	t.Run("plain error", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(ERROR, &buf)

		logger.LogError(errors.New("boom"))

		assert.Contains(t, buf.String(), "Unexpected error: boom")
	})
}
