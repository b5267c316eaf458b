// Package screens holds the state behind each screen of the app. A screen
// owns its local fields, talks to the API through Backend and moves between
// screens through a navigator.Navigator. Failures are returned to the caller
// with local state left as it was; nothing is retried.
package screens

import (
	"context"

	"github.com/lildude/liftlog/internal/liftlog"
	"github.com/lildude/liftlog/internal/sessions"
)

//go:generate mockgen -source=$GOFILE -destination=mock_screens.go -package=screens

// Backend is the part of *liftlog.API the screens use.
type Backend interface {
	Login(ctx context.Context, username, password string) (sessions.Session, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, p liftlog.RegisterParams) error
	Exercises(ctx context.Context) ([]string, error)
	LogExercise(ctx context.Context, e liftlog.LogEntry) (int64, error)
	SubmitWorkout(ctx context.Context, name string, entries []liftlog.LogEntry) (liftlog.SubmitResult, error)
	ExerciseRecords(ctx context.Context, exercise string) ([]liftlog.Record, error)
	DeleteWorkout(ctx context.Context, workoutID int64) error
	Workouts(ctx context.Context) ([]liftlog.Workout, error)
	WorkoutExercises(ctx context.Context, workoutID int64) ([]string, error)
	WorkoutExerciseDetails(ctx context.Context, workoutID int64) ([]liftlog.Record, error)
}

var _ Backend = (*liftlog.API)(nil)
