package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/lildude/liftlog/internal/draft"
)

// parseSet reads WEIGHT:REPS, e.g. 62.5:8.
func parseSet(s string) (float64, int, error) {
	w, r, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("set %q must be WEIGHT:REPS", s)
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing weight of %q: %w", s, err)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, 0, fmt.Errorf("weight of %q must be a finite number", s)
	}
	reps, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return 0, 0, fmt.Errorf("parsing reps of %q: %w", s, err)
	}
	return weight, reps, nil
}

// setsFlag adds every -set to a draft.
type setsFlag struct {
	d *draft.Draft
}

func (f setsFlag) String() string {
	if f.d == nil {
		return ""
	}
	return fmt.Sprintf("%d sets", f.d.Len())
}

func (f setsFlag) Set(s string) error {
	w, r, err := parseSet(s)
	if err != nil {
		return err
	}
	_, err = f.d.AddSet(w, r)
	return err
}

// workoutFlags builds a workout draft from interleaved -exercise and -set
// flags. Each -set belongs to the -exercise before it.
type workoutFlags struct {
	w       *draft.WorkoutDraft
	current *draft.Exercise
}

type exerciseValue struct{ wf *workoutFlags }

func (v exerciseValue) String() string { return "" }

func (v exerciseValue) Set(s string) error {
	e, err := v.wf.w.AddExercise(s)
	if err != nil {
		return err
	}
	v.wf.current = e
	return nil
}

type workoutSetValue struct{ wf *workoutFlags }

func (v workoutSetValue) String() string { return "" }

func (v workoutSetValue) Set(s string) error {
	if v.wf.current == nil {
		return fmt.Errorf("-set %s must follow an -exercise", s)
	}
	w, r, err := parseSet(s)
	if err != nil {
		return err
	}
	_, err = v.wf.current.AddSet(w, r)
	return err
}

// parseDay parses YYYY-MM-DD in the local zone. With endOfDay the last
// second of that day is returned so a range bound covers the whole day.
func parseDay(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", s, err)
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}
