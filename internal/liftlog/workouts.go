package liftlog

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/text/cases"
)

// Exercises returns the exercise catalog of the logged in user.
func (a *API) Exercises(ctx context.Context) ([]string, error) {
	const op = "fetch exercises"
	s, c, err := a.authed(ctx, op)
	if err != nil {
		return nil, err
	}

	key := catalogKey(s.UserID)
	if names, ok := a.cachedCatalog(ctx, key); ok {
		return names, nil
	}

	var er exercisesResponse
	if err := a.do(ctx, c, op, http.MethodGet, "api/workouts/exercises", nil, &er); err != nil {
		return nil, err
	}
	if er.Exercises == nil {
		er.Exercises = []string{}
	}
	a.storeCatalog(ctx, key, er.Exercises)
	return er.Exercises, nil
}

// CreateWorkout creates an empty named workout and returns its id.
func (a *API) CreateWorkout(ctx context.Context, name string) (int64, error) {
	const op = "create workout"
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, validationError(op, "workout name cannot be empty")
	}
	s, c, err := a.authed(ctx, op)
	if err != nil {
		return 0, err
	}

	var cr createWorkoutResponse
	if err := a.do(ctx, c, op, http.MethodPost, "api/workouts/create", &createWorkoutRequest{UserID: s.UserID, WorkoutName: name}, &cr); err != nil {
		return 0, err
	}
	if cr.WorkoutID == 0 {
		return 0, a.remote(op, fmt.Errorf("create workout response is missing the workout id"))
	}
	return cr.WorkoutID, nil
}

// LogExercise records the sets of one exercise and returns the id of the new
// log entry. A new exercise name implicitly extends the catalog.
func (a *API) LogExercise(ctx context.Context, e LogEntry) (int64, error) {
	const op = "log exercise"
	if err := validateEntry(op, e); err != nil {
		return 0, err
	}
	s, c, err := a.authed(ctx, op)
	if err != nil {
		return 0, err
	}

	var lr logResponse
	req := &logRequest{UserID: s.UserID, Exercise: strings.TrimSpace(e.Exercise), Sets: e.Sets, WorkoutID: e.WorkoutID}
	if err := a.do(ctx, c, op, http.MethodPost, "api/workouts/log", req, &lr); err != nil {
		return 0, err
	}
	a.invalidateCatalog(ctx, s.UserID)
	return lr.ExerciseID, nil
}

func validateEntry(op string, e LogEntry) error {
	if strings.TrimSpace(e.Exercise) == "" {
		return validationError(op, "please select an exercise")
	}
	if len(e.Sets) == 0 {
		return validationError(op, fmt.Sprintf("%s has no sets", e.Exercise))
	}
	for _, st := range e.Sets {
		// NaN fails every comparison, so test for the positive case.
		if st.Reps <= 0 || !(st.Weight > 0) || math.IsInf(st.Weight, 0) {
			return validationError(op, fmt.Sprintf("set %d of %s needs positive weight and reps", st.SetNumber, e.Exercise))
		}
	}
	return nil
}

// SubmitResult reports how far SubmitWorkout got.
type SubmitResult struct {
	WorkoutID int64
	// Logged maps the trimmed exercise name to the id of its log entry, for
	// entries that succeeded. Names are unique within a workout.
	Logged map[string]int64
}

// SubmitWorkout creates a workout and logs every entry against it. Entries
// are logged in order; a failure does not stop the remaining entries and
// nothing is rolled back, so a non-nil error may come with a workout that is
// only partially populated.
func (a *API) SubmitWorkout(ctx context.Context, name string, entries []LogEntry) (SubmitResult, error) {
	const op = "submit workout"
	res := SubmitResult{Logged: map[string]int64{}}
	if strings.TrimSpace(name) == "" {
		return res, validationError(op, "workout name cannot be empty")
	}
	if len(entries) == 0 {
		return res, validationError(op, "add at least one exercise to the workout")
	}
	fold := cases.Fold()
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if err := validateEntry(op, e); err != nil {
			return res, err
		}
		k := fold.String(strings.TrimSpace(e.Exercise))
		if seen[k] {
			return res, validationError(op, fmt.Sprintf("%s is in the workout more than once", strings.TrimSpace(e.Exercise)))
		}
		seen[k] = true
	}

	id, err := a.CreateWorkout(ctx, name)
	if err != nil {
		return res, err
	}
	res.WorkoutID = id

	var errs error
	for _, e := range entries {
		e.WorkoutID = &id
		exID, err := a.LogExercise(ctx, e)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		res.Logged[strings.TrimSpace(e.Exercise)] = exID
	}
	if errs != nil {
		a.log.WithFields(logrus.Fields{"workout_id": id, "logged": len(res.Logged), "total": len(entries)}).
			Warn("workout only partially logged")
		return res, &Error{Kind: KindRemote, Op: op, Message: fmt.Sprintf("logged %d of %d exercises", len(res.Logged), len(entries)), Err: errs}
	}
	return res, nil
}

// ExerciseRecords returns every historical set of one exercise.
func (a *API) ExerciseRecords(ctx context.Context, exercise string) ([]Record, error) {
	const op = "fetch exercise records"
	if strings.TrimSpace(exercise) == "" {
		return nil, validationError(op, "please select an exercise")
	}
	s, c, err := a.authed(ctx, op)
	if err != nil {
		return nil, err
	}

	var recs []Record
	path := fmt.Sprintf("api/workouts/records/%d/%s", s.UserID, escape(exercise))
	if err := a.do(ctx, c, op, http.MethodGet, path, nil, &recs); err != nil {
		return nil, err
	}
	return nonNil(recs), nil
}

// AllRecords returns every historical set of the user.
func (a *API) AllRecords(ctx context.Context) ([]Record, error) {
	const op = "fetch records"
	s, c, err := a.authed(ctx, op)
	if err != nil {
		return nil, err
	}

	var recs []Record
	if err := a.do(ctx, c, op, http.MethodGet, fmt.Sprintf("api/workouts/records/%d", s.UserID), nil, &recs); err != nil {
		return nil, err
	}
	return nonNil(recs), nil
}

// DeleteWorkout removes a logged entry.
func (a *API) DeleteWorkout(ctx context.Context, workoutID int64) error {
	const op = "delete workout"
	if workoutID <= 0 {
		return validationError(op, "workout id must be positive")
	}
	s, c, err := a.authed(ctx, op)
	if err != nil {
		return err
	}
	return a.do(ctx, c, op, http.MethodDelete, "api/workouts/delete", &deleteRequest{UserID: s.UserID, WorkoutID: workoutID}, nil)
}

// Workouts lists the workouts of the user.
func (a *API) Workouts(ctx context.Context) ([]Workout, error) {
	const op = "fetch workouts"
	s, c, err := a.authed(ctx, op)
	if err != nil {
		return nil, err
	}

	var ws []Workout
	if err := a.do(ctx, c, op, http.MethodGet, fmt.Sprintf("api/workouts/workouts/%d", s.UserID), nil, &ws); err != nil {
		return nil, err
	}
	if ws == nil {
		ws = []Workout{}
	}
	return ws, nil
}

// WorkoutExercises returns the exercise names logged in one workout.
func (a *API) WorkoutExercises(ctx context.Context, workoutID int64) ([]string, error) {
	const op = "fetch workout exercises"
	s, c, err := a.authed(ctx, op)
	if err != nil {
		return nil, err
	}

	var er exercisesResponse
	path := fmt.Sprintf("api/workouts/workout/exercises/%d/%d", s.UserID, workoutID)
	if err := a.do(ctx, c, op, http.MethodGet, path, nil, &er); err != nil {
		return nil, err
	}
	if er.Exercises == nil {
		er.Exercises = []string{}
	}
	return er.Exercises, nil
}

// WorkoutExerciseDetails returns every set logged in one workout.
func (a *API) WorkoutExerciseDetails(ctx context.Context, workoutID int64) ([]Record, error) {
	const op = "fetch workout details"
	s, c, err := a.authed(ctx, op)
	if err != nil {
		return nil, err
	}

	var dr detailsResponse
	path := fmt.Sprintf("api/workouts/workout/exercise-details/%d/%d", s.UserID, workoutID)
	if err := a.do(ctx, c, op, http.MethodGet, path, nil, &dr); err != nil {
		return nil, err
	}
	return nonNil(dr.Details), nil
}

func nonNil(recs []Record) []Record {
	if recs == nil {
		return []Record{}
	}
	return recs
}

func catalogKey(userID int64) string {
	return fmt.Sprintf("exercises::%d", userID)
}

// persistedCatalog is the form the catalog takes in the catalog store.
type persistedCatalog struct {
	Names   []string  `json:"names"`
	Expires time.Time `json:"expires"`
}

// cachedCatalog looks in memory first and then in the catalog store, which
// outlives the process.
func (a *API) cachedCatalog(ctx context.Context, key string) ([]string, bool) {
	if a.catalog == nil {
		return nil, false
	}
	if b, err := a.catalog.Get([]byte(key)); err == nil {
		var names []string
		err = json.Unmarshal(b, &names)
		if err == nil {
			return names, true
		}
		a.log.WithError(err).Debug("dropping undecodable cached catalog")
		a.catalog.Del([]byte(key))
	}
	if a.catalogStore == nil {
		return nil, false
	}

	v, ok, err := a.catalogStore.Get(ctx, key)
	if err != nil {
		a.log.WithError(err).Warn("unable to read stored exercise catalog")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var pc persistedCatalog
	if err := json.Unmarshal([]byte(v), &pc); err != nil || !a.now().Before(pc.Expires) {
		a.dropStoredCatalog(ctx, key)
		return nil, false
	}
	if pc.Names == nil {
		pc.Names = []string{}
	}
	a.remember(key, pc.Names, pc.Expires.Sub(a.now()))
	return pc.Names, true
}

func (a *API) storeCatalog(ctx context.Context, key string, names []string) {
	if a.catalog == nil {
		return
	}
	a.remember(key, names, a.catalogTTL)
	if a.catalogStore == nil {
		return
	}
	b, err := json.Marshal(persistedCatalog{Names: names, Expires: a.now().Add(a.catalogTTL)})
	if err != nil {
		return
	}
	if err := a.catalogStore.Set(ctx, key, string(b)); err != nil {
		a.log.WithError(err).Warn("unable to store exercise catalog")
	}
}

// remember keeps names in memory for ttl.
func (a *API) remember(key string, names []string, ttl time.Duration) {
	b, err := json.Marshal(names)
	if err != nil {
		return
	}
	// freecache treats zero as "never expire".
	secs := int(ttl.Seconds())
	if secs < 1 {
		secs = 1
	}
	if err := a.catalog.Set([]byte(key), b, secs); err != nil {
		a.log.WithError(err).Debug("unable to cache exercise catalog")
	}
}

func (a *API) dropStoredCatalog(ctx context.Context, key string) {
	if a.catalogStore == nil {
		return
	}
	if err := a.catalogStore.Delete(ctx, key); err != nil {
		a.log.WithError(err).Warn("unable to drop stored exercise catalog")
	}
}

// InvalidateCatalog drops the cached exercise catalog so the next Exercises
// call reloads it from the server.
func (a *API) InvalidateCatalog(ctx context.Context) {
	s, err := a.store.Read(ctx)
	if err != nil {
		if a.catalog != nil {
			a.catalog.Clear()
		}
		return
	}
	a.invalidateCatalog(ctx, s.UserID)
}

func (a *API) invalidateCatalog(ctx context.Context, userID int64) {
	key := catalogKey(userID)
	if a.catalog != nil {
		a.catalog.Del([]byte(key))
	}
	a.dropStoredCatalog(ctx, key)
}
