// Package draft holds sets and exercises that have been entered but not yet
// submitted.
package draft

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"

	"github.com/lildude/liftlog/internal/liftlog"
)

var (
	ErrInvalidSet       = errors.New("weight and reps must be greater than zero")
	ErrNoSuchSet        = errors.New("no such set")
	ErrDuplicate        = errors.New("exercise already added")
	ErrNoSuchExercise   = errors.New("exercise not in workout")
	ErrEmptyExercise    = errors.New("exercise name cannot be empty")
	ErrEmptyWorkoutName = errors.New("workout name cannot be empty")
	ErrNoExercises      = errors.New("add at least one exercise to the workout")
)

// Draft is an ordered list of sets for one exercise. Set numbers are always
// 1..N in order.
type Draft struct {
	sets []liftlog.Set
}

// AddSet appends a set numbered after the existing ones. The draft is left
// unchanged when weight or reps are not positive or the weight is not finite.
func (d *Draft) AddSet(weight float64, reps int) (liftlog.Set, error) {
	if !(weight > 0) || math.IsInf(weight, 0) || reps <= 0 {
		return liftlog.Set{}, ErrInvalidSet
	}
	s := liftlog.Set{SetNumber: len(d.sets) + 1, Reps: reps, Weight: weight}
	d.sets = append(d.sets, s)
	return s, nil
}

// RemoveSet removes the set at index i and renumbers the rest.
func (d *Draft) RemoveSet(i int) error {
	if i < 0 || i >= len(d.sets) {
		return fmt.Errorf("removing set %d: %w", i+1, ErrNoSuchSet)
	}
	d.sets = append(d.sets[:i], d.sets[i+1:]...)
	for j := range d.sets {
		d.sets[j].SetNumber = j + 1
	}
	return nil
}

// Sets returns a copy of the drafted sets.
func (d *Draft) Sets() []liftlog.Set {
	out := make([]liftlog.Set, len(d.sets))
	copy(out, d.sets)
	return out
}

func (d *Draft) Len() int { return len(d.sets) }

func (d *Draft) Reset() { d.sets = nil }

// Exercise is one exercise of a workout draft with its own sets.
type Exercise struct {
	Name string
	Draft
}

// WorkoutDraft is the create-workout form: a name and an ordered list of
// exercises, none repeated.
type WorkoutDraft struct {
	Name      string
	exercises []*Exercise
}

// AddExercise appends an exercise. Names are compared case-insensitively.
func (w *WorkoutDraft) AddExercise(name string) (*Exercise, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyExercise
	}
	if w.index(name) >= 0 {
		return nil, fmt.Errorf("adding %q: %w", name, ErrDuplicate)
	}
	e := &Exercise{Name: name}
	w.exercises = append(w.exercises, e)
	return e, nil
}

// Exercise returns the drafted exercise with the given name.
func (w *WorkoutDraft) Exercise(name string) (*Exercise, bool) {
	i := w.index(name)
	if i < 0 {
		return nil, false
	}
	return w.exercises[i], true
}

func (w *WorkoutDraft) RemoveExercise(name string) error {
	i := w.index(name)
	if i < 0 {
		return fmt.Errorf("removing %q: %w", name, ErrNoSuchExercise)
	}
	w.exercises = append(w.exercises[:i], w.exercises[i+1:]...)
	return nil
}

// Exercises returns the exercise names in the order they were added.
func (w *WorkoutDraft) Exercises() []string {
	names := make([]string, 0, len(w.exercises))
	for _, e := range w.exercises {
		names = append(names, e.Name)
	}
	return names
}

// Validate reports the first reason the draft cannot be submitted.
func (w *WorkoutDraft) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return ErrEmptyWorkoutName
	}
	if len(w.exercises) == 0 {
		return ErrNoExercises
	}
	for _, e := range w.exercises {
		if e.Len() == 0 {
			return fmt.Errorf("%s has no sets", e.Name)
		}
	}
	return nil
}

// Entries converts the draft into log entries, in order.
func (w *WorkoutDraft) Entries() []liftlog.LogEntry {
	entries := make([]liftlog.LogEntry, 0, len(w.exercises))
	for _, e := range w.exercises {
		entries = append(entries, liftlog.LogEntry{Exercise: e.Name, Sets: e.Sets()})
	}
	return entries
}

func (w *WorkoutDraft) Reset() {
	w.Name = ""
	w.exercises = nil
}

func (w *WorkoutDraft) index(name string) int {
	fold := cases.Fold()
	key := fold.String(strings.TrimSpace(name))
	for i, e := range w.exercises {
		if fold.String(e.Name) == key {
			return i
		}
	}
	return -1
}
