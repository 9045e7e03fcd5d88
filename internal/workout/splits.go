package workout

import (
	"fmt"
	"strings"
)

const (
	MinDaysPerWeek = 1
	MaxDaysPerWeek = 7
)

// Validate checks the split can be persisted.
func (s *Split) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return newValidationError("name", "must not be empty")
	}
	if s.DaysPerWeek < MinDaysPerWeek || s.DaysPerWeek > MaxDaysPerWeek {
		return newValidationError("days_per_week", "must be in [%d, %d], got %d", MinDaysPerWeek, MaxDaysPerWeek, s.DaysPerWeek)
	}
	if len(s.Days) != s.DaysPerWeek {
		return newValidationError("days", "expected %d days, got %d", s.DaysPerWeek, len(s.Days))
	}

	dayNumbers := make(map[int]bool, len(s.Days))
	for _, d := range s.Days {
		field := fmt.Sprintf("days[%d]", d.DayNumber)
		if d.DayNumber < 1 || d.DayNumber > s.DaysPerWeek {
			return newValidationError(field, "day number must be in [1, %d]", s.DaysPerWeek)
		}
		if dayNumbers[d.DayNumber] {
			return newValidationError(field, "duplicate day number")
		}
		dayNumbers[d.DayNumber] = true

		if len(d.MuscleGroups) == 0 {
			return newValidationError(field, "at least one muscle group required")
		}
		groups := make(map[string]bool, len(d.MuscleGroups))
		for _, mg := range d.MuscleGroups {
			if strings.TrimSpace(mg) == "" {
				return newValidationError(field, "empty muscle group")
			}
			if groups[mg] {
				return newValidationError(field, "muscle group [%s] listed twice", mg)
			}
			groups[mg] = true
		}
	}
	return nil
}

// SplitDraft is the editable state of a split under construction.
type SplitDraft struct {
	Name        string
	DaysPerWeek int
	Days        []Day
}

func NewSplitDraft(daysPerWeek int) *SplitDraft {
	d := &SplitDraft{}
	d.SetDaysPerWeek(daysPerWeek)
	return d
}

// SetDaysPerWeek reinitializes the days to empty "Day N" entries.
func (d *SplitDraft) SetDaysPerWeek(daysPerWeek int) {
	d.DaysPerWeek = daysPerWeek
	d.Days = make([]Day, 0, daysPerWeek)
	for i := 1; i <= daysPerWeek; i++ {
		d.Days = append(d.Days, Day{
			DayNumber:    i,
			DayName:      fmt.Sprintf("Day %d", i),
			MuscleGroups: []string{},
		})
	}
}

func (d *SplitDraft) SetDayName(dayIndex int, name string) error {
	if err := d.checkIndex(dayIndex); err != nil {
		return err
	}
	d.Days[dayIndex].DayName = name
	return nil
}

// ToggleMuscleGroup adds the muscle group to the day, or removes it if present.
func (d *SplitDraft) ToggleMuscleGroup(dayIndex int, muscleGroup string) error {
	if err := d.checkIndex(dayIndex); err != nil {
		return err
	}
	day := &d.Days[dayIndex]
	for i, mg := range day.MuscleGroups {
		if mg == muscleGroup {
			day.MuscleGroups = append(day.MuscleGroups[:i:i], day.MuscleGroups[i+1:]...)
			return nil
		}
	}
	day.MuscleGroups = append(day.MuscleGroups, muscleGroup)
	return nil
}

func (d *SplitDraft) ApplyTemplate(t Template) {
	d.Name = t.Name
	d.DaysPerWeek = t.DaysPerWeek
	d.Days = make([]Day, len(t.Days))
	for i, day := range t.Days {
		day.MuscleGroups = append([]string(nil), day.MuscleGroups...)
		d.Days[i] = day
	}
}

// Build returns the validated split.
func (d *SplitDraft) Build() (Split, error) {
	s := Split{
		Name:        strings.TrimSpace(d.Name),
		DaysPerWeek: d.DaysPerWeek,
		Days:        d.Days,
	}
	if err := s.Validate(); err != nil {
		return Split{}, err
	}
	return s, nil
}

func (d *SplitDraft) checkIndex(dayIndex int) error {
	if dayIndex < 0 || dayIndex >= len(d.Days) {
		return newValidationError("day_index", "out of range [0, %d): %d", len(d.Days), dayIndex)
	}
	return nil
}
