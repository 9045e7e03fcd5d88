package workout

// Progress is the completion state of one exercise within a session.
// Invariants: 0 <= CompletedCount <= TargetCompletions and
// IsArchived == (CompletedCount == TargetCompletions).
type Progress struct {
	CompletedCount    int  `json:"completed_count"`
	TargetCompletions int  `json:"target_completions"`
	IsArchived        bool `json:"is_archived"`
}

func NewProgress() Progress {
	return Progress{TargetCompletions: TargetCompletions}
}

// Complete increments the counter by one, clamped at the target.
// Completing an archived exercise returns it unchanged.
func (p Progress) Complete() Progress {
	p = p.normalized()
	if p.IsArchived {
		return p
	}
	p.CompletedCount++
	p.IsArchived = p.CompletedCount == p.TargetCompletions
	return p
}

// Reset clears the progress back to the initial state.
func (p Progress) Reset() Progress {
	p = p.normalized()
	p.CompletedCount = 0
	p.IsArchived = false
	return p
}

func (p Progress) normalized() Progress {
	if p.TargetCompletions <= 0 {
		p.TargetCompletions = TargetCompletions
	}
	if p.CompletedCount < 0 {
		p.CompletedCount = 0
	}
	if p.CompletedCount > p.TargetCompletions {
		p.CompletedCount = p.TargetCompletions
	}
	p.IsArchived = p.CompletedCount == p.TargetCompletions
	return p
}
