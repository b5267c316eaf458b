package screens

import (
	"context"
	"strings"

	"github.com/lildude/liftlog/internal/draft"
	"github.com/lildude/liftlog/internal/liftlog"
	"github.com/lildude/liftlog/internal/navigator"
	"github.com/lildude/liftlog/internal/records"
)

// LogExercise logs sets of a single exercise, optionally into a workout.
type LogExercise struct {
	api Backend

	Search    string
	Selected  string
	WorkoutID *int64
	Draft     draft.Draft

	catalog []string
}

func NewLogExercise(api Backend) *LogExercise {
	return &LogExercise{api: api}
}

// Load fetches the exercise catalog.
func (l *LogExercise) Load(ctx context.Context) error {
	names, err := l.api.Exercises(ctx)
	if err != nil {
		return err
	}
	l.catalog = names
	return nil
}

// Suggestions returns catalog names matching the search text.
func (l *LogExercise) Suggestions() []string {
	return records.FilterNames(l.catalog, l.Search)
}

// Select picks an exercise, new or from the catalog.
func (l *LogExercise) Select(name string) {
	l.Selected = strings.TrimSpace(name)
	l.Search = ""
}

func (l *LogExercise) AddSet(weight float64, reps int) (liftlog.Set, error) {
	return l.Draft.AddSet(weight, reps)
}

func (l *LogExercise) RemoveSet(i int) error {
	return l.Draft.RemoveSet(i)
}

// Submit logs the drafted sets. The draft is cleared only on success.
func (l *LogExercise) Submit(ctx context.Context) (int64, error) {
	id, err := l.api.LogExercise(ctx, liftlog.LogEntry{
		Exercise:  l.Selected,
		WorkoutID: l.WorkoutID,
		Sets:      l.Draft.Sets(),
	})
	if err != nil {
		return 0, err
	}
	// A new name joins the local catalog.
	if len(records.FilterNamesExcluding([]string{l.Selected}, "", l.catalog)) > 0 {
		l.catalog = append(l.catalog, l.Selected)
	}
	l.Draft.Reset()
	return id, nil
}

// CreateWorkout builds a named workout of several exercises and submits it in one go.
type CreateWorkout struct {
	api Backend
	nav navigator.Navigator

	Search string
	Draft  draft.WorkoutDraft

	catalog []string
}

func NewCreateWorkout(api Backend, nav navigator.Navigator) *CreateWorkout {
	return &CreateWorkout{api: api, nav: nav}
}

func (c *CreateWorkout) Load(ctx context.Context) error {
	names, err := c.api.Exercises(ctx)
	if err != nil {
		return err
	}
	c.catalog = names
	return nil
}

// Suggestions returns catalog names matching the search text that are not
// already in the workout.
func (c *CreateWorkout) Suggestions() []string {
	return records.FilterNamesExcluding(c.catalog, c.Search, c.Draft.Exercises())
}

// AddExercise adds an exercise to the workout and clears the search.
func (c *CreateWorkout) AddExercise(name string) (*draft.Exercise, error) {
	e, err := c.Draft.AddExercise(name)
	if err != nil {
		return nil, err
	}
	c.Search = ""
	return e, nil
}

// Submit creates the workout and logs every exercise. On success the draft is
// cleared and the workouts screen is shown. On failure the draft is kept; a
// partially logged workout is reported through the returned result.
func (c *CreateWorkout) Submit(ctx context.Context) (liftlog.SubmitResult, error) {
	if err := c.Draft.Validate(); err != nil {
		return liftlog.SubmitResult{}, &liftlog.Error{Kind: liftlog.KindValidation, Op: "submit workout", Message: err.Error(), Err: err}
	}
	res, err := c.api.SubmitWorkout(ctx, c.Draft.Name, c.Draft.Entries())
	if err != nil {
		return res, err
	}
	c.Draft.Reset()
	return res, c.nav.Navigate(navigator.RouteWorkouts, nil)
}
