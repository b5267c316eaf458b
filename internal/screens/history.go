package screens

import (
	"context"
	"strconv"
	"time"

	"github.com/lildude/liftlog/internal/liftlog"
	"github.com/lildude/liftlog/internal/navigator"
	"github.com/lildude/liftlog/internal/records"
)

// Mode selects how History lists past training.
type Mode int

const (
	ByExercise Mode = iota
	ByDay
)

func (m Mode) String() string {
	if m == ByDay {
		return "by-day"
	}
	return "by-exercise"
}

// History is the entry point to past training, listed by exercise or by day.
type History struct {
	api Backend
	nav navigator.Navigator

	Mode     Mode
	Search   string
	Location *time.Location

	catalog  []string
	workouts []liftlog.Workout
}

func NewHistory(api Backend, nav navigator.Navigator) *History {
	return &History{api: api, nav: nav, Location: time.Local}
}

// Load fetches what the current mode shows.
func (h *History) Load(ctx context.Context) error {
	if h.Mode == ByDay {
		ws, err := h.api.Workouts(ctx)
		if err != nil {
			return err
		}
		h.workouts = ws
		return nil
	}
	names, err := h.api.Exercises(ctx)
	if err != nil {
		return err
	}
	h.catalog = names
	return nil
}

// Toggle switches between the two modes. The mode is not persisted.
func (h *History) Toggle() Mode {
	if h.Mode == ByExercise {
		h.Mode = ByDay
	} else {
		h.Mode = ByExercise
	}
	return h.Mode
}

func (h *History) Exercises() []string {
	return records.FilterNames(h.catalog, h.Search)
}

// Days lists the days with a workout, most recent first.
func (h *History) Days() []string {
	return records.WorkoutDays(h.workouts, h.Location)
}

func (h *History) SelectExercise(name string) error {
	return h.nav.Navigate(navigator.RouteExerciseHistory, navigator.ExerciseHistoryParams{Exercise: name})
}

func (h *History) SelectDay(day string) error {
	return h.nav.Navigate(navigator.RouteDayHistory, navigator.DayHistoryParams{Date: day})
}

// ExerciseHistory lists every logged entry of one exercise.
type ExerciseHistory struct {
	api Backend

	Exercise string
	Start    *time.Time
	End      *time.Time

	records []liftlog.Record
}

func NewExerciseHistory(api Backend, p navigator.ExerciseHistoryParams) *ExerciseHistory {
	return &ExerciseHistory{api: api, Exercise: p.Exercise}
}

func (e *ExerciseHistory) Load(ctx context.Context) error {
	recs, err := e.api.ExerciseRecords(ctx, e.Exercise)
	if err != nil {
		return err
	}
	e.records = recs
	return nil
}

// Entries returns the records inside the date range grouped by log entry,
// newest first.
func (e *ExerciseHistory) Entries() []records.Group {
	return records.GroupByEntry(records.FilterByDateRange(e.records, e.Start, e.End))
}

// Delete removes one log entry. The local list changes only after the server
// confirms, and without a refetch.
func (e *ExerciseHistory) Delete(ctx context.Context, entryID int64) error {
	if err := e.api.DeleteWorkout(ctx, entryID); err != nil {
		return err
	}
	e.records = records.RemoveEntry(e.records, entryID)
	return nil
}

// DayHistory lists the workouts of one day.
type DayHistory struct {
	api Backend
	nav navigator.Navigator

	Date     string
	Location *time.Location

	workouts []liftlog.Workout
}

func NewDayHistory(api Backend, nav navigator.Navigator, p navigator.DayHistoryParams) *DayHistory {
	return &DayHistory{api: api, nav: nav, Date: p.Date, Location: time.Local}
}

func (d *DayHistory) Load(ctx context.Context) error {
	ws, err := d.api.Workouts(ctx)
	if err != nil {
		return err
	}
	d.workouts = records.WorkoutsOn(ws, d.Date, d.Location)
	return nil
}

func (d *DayHistory) Groups() []records.WorkoutGroup {
	return records.GroupWorkoutsByTime(d.workouts, d.Location)
}

func (d *DayHistory) Select(w liftlog.Workout) error {
	return d.nav.Navigate(navigator.RouteWorkoutDetails, navigator.WorkoutDetailsParams{WorkoutID: w.ID, WorkoutName: w.Name})
}

// WorkoutDetails shows every set of one workout.
type WorkoutDetails struct {
	api Backend

	WorkoutID   int64
	WorkoutName string

	exercises []string
	details   []liftlog.Record
}

func NewWorkoutDetails(api Backend, p navigator.WorkoutDetailsParams) *WorkoutDetails {
	return &WorkoutDetails{api: api, WorkoutID: p.WorkoutID, WorkoutName: p.WorkoutName}
}

func (w *WorkoutDetails) Load(ctx context.Context) error {
	names, err := w.api.WorkoutExercises(ctx, w.WorkoutID)
	if err != nil {
		return err
	}
	details, err := w.api.WorkoutExerciseDetails(ctx, w.WorkoutID)
	if err != nil {
		return err
	}
	w.exercises, w.details = names, details
	return nil
}

func (w *WorkoutDetails) Exercises() []string {
	return w.exercises
}

func (w *WorkoutDetails) Entries() []records.Group {
	return records.GroupByEntry(w.details)
}

// Title is the heading shown for the workout.
func (w *WorkoutDetails) Title() string {
	if w.WorkoutName != "" {
		return w.WorkoutName
	}
	return "Workout " + strconv.FormatInt(w.WorkoutID, 10)
}
