package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScheduler_Every(t *testing.T) {
	s, err := New(zap.NewNop())
	require.NoError(t, err)
	defer s.Stop()

	var runs atomic.Int32
	require.NoError(t, s.Every("counter", 20*time.Millisecond, func() {
		runs.Add(1)
	}))

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestScheduler_EveryValidation(t *testing.T) {
	s, err := New(zap.NewNop())
	require.NoError(t, err)
	defer s.Stop()

	assert.Error(t, s.Every("", time.Second, func() {}))
	assert.Error(t, s.Every("zero", 0, func() {}))
	assert.Error(t, s.Every("nil", time.Second, nil))
}

func TestScheduler_Stop(t *testing.T) {
	s, err := New(zap.NewNop())
	require.NoError(t, err)
	assert.NoError(t, s.Stop())
}
