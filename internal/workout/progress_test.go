package workout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/2beens/undergroundgym/internal/workout"
)

func TestProgress_Complete(t *testing.T) {
	for n := 0; n <= 6; n++ {
		p := workout.NewProgress()
		for i := 0; i < n; i++ {
			p = p.Complete()
		}

		expectedCount := min(n, workout.TargetCompletions)
		assert.Equal(t, expectedCount, p.CompletedCount, "completions: %d", n)
		assert.Equal(t, n >= workout.TargetCompletions, p.IsArchived, "completions: %d", n)
		assert.Equal(t, workout.TargetCompletions, p.TargetCompletions)
	}
}

func TestProgress_CompleteArchivedIsNoop(t *testing.T) {
	p := workout.Progress{CompletedCount: 3, TargetCompletions: 3, IsArchived: true}
	assert.Equal(t, p, p.Complete())
}

func TestProgress_Reset(t *testing.T) {
	p := workout.NewProgress().Complete().Complete().Complete()
	assert.True(t, p.IsArchived)

	once := p.Reset()
	twice := once.Reset()
	assert.Equal(t, workout.Progress{CompletedCount: 0, TargetCompletions: 3, IsArchived: false}, once)
	assert.Equal(t, once, twice)
}

func TestProgress_CompleteRepairsBrokenState(t *testing.T) {
	p := workout.Progress{CompletedCount: 7, TargetCompletions: 0}
	p = p.Complete()
	assert.Equal(t, 3, p.CompletedCount)
	assert.Equal(t, 3, p.TargetCompletions)
	assert.True(t, p.IsArchived)

	p = workout.Progress{CompletedCount: -2, TargetCompletions: 3}.Complete()
	assert.Equal(t, 1, p.CompletedCount)
	assert.False(t, p.IsArchived)
}
