package screens

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lildude/liftlog/internal/liftlog"
	"github.com/lildude/liftlog/internal/navigator"
	"github.com/lildude/liftlog/internal/sessions"
)

var errRemote = &liftlog.Error{Kind: liftlog.KindRemote, Op: "test", Message: "server unavailable", StatusCode: 503}

func newBackend(t *testing.T) *MockBackend {
	t.Helper()
	return NewMockBackend(gomock.NewController(t))
}

func route(nav *navigator.Stack) navigator.Route {
	r, _ := nav.Current()
	return r
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success goes home", func(t *testing.T) {
		api := newBackend(t)
		nav := navigator.NewStack(navigator.RouteLogin)
		want := sessions.Session{Token: "tok", UserID: 1, Username: "ana"}
		api.EXPECT().Login(gomock.Any(), "ana", "pw").Return(want, nil)

		l := NewLogin(api, nav)
		l.Username, l.Password = "ana", "pw"
		s, err := l.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, s)
		assert.Equal(t, navigator.RouteHome, route(nav))
		assert.Empty(t, l.Password)
	})

	t.Run("failure keeps the form", func(t *testing.T) {
		api := newBackend(t)
		nav := navigator.NewStack(navigator.RouteLogin)
		api.EXPECT().Login(gomock.Any(), "ana", "bad").Return(sessions.Session{}, errRemote)

		l := NewLogin(api, nav)
		l.Username, l.Password = "ana", "bad"
		_, err := l.Submit(ctx)
		assert.ErrorIs(t, err, errRemote)
		assert.Equal(t, "bad", l.Password)
		assert.Equal(t, navigator.RouteLogin, route(nav))
	})
}

func TestLogout(t *testing.T) {
	api := newBackend(t)
	nav := navigator.NewStack(navigator.RouteHome)
	api.EXPECT().Logout(gomock.Any()).Return(nil)

	require.NoError(t, Logout(context.Background(), api, nav))
	assert.Equal(t, navigator.RouteLogin, route(nav))
}

func TestRegister(t *testing.T) {
	api := newBackend(t)
	nav := navigator.NewStack(navigator.RouteRegister)
	r := NewRegister(api, nav)
	r.Username, r.Email, r.Password, r.ProfilePicture = "ana", "ana@example.com", "pw", []byte{0xff, 0xd8}

	gomock.InOrder(
		api.EXPECT().Register(gomock.Any(), r.RegisterParams).Return(errRemote),
		api.EXPECT().Register(gomock.Any(), r.RegisterParams).Return(nil),
	)

	assert.Error(t, r.Submit(context.Background()))
	assert.Equal(t, "pw", r.Password)
	assert.Equal(t, navigator.RouteRegister, route(nav))

	require.NoError(t, r.Submit(context.Background()))
	assert.Equal(t, navigator.RouteLogin, route(nav))
	assert.Equal(t, "ana", r.Username)
	assert.Empty(t, r.Password)
}

func TestLogExercise(t *testing.T) {
	ctx := context.Background()
	api := newBackend(t)
	api.EXPECT().Exercises(gomock.Any()).Return([]string{"Bench Press", "Squat"}, nil)

	l := NewLogExercise(api)
	require.NoError(t, l.Load(ctx))
	l.Search = "ben"
	assert.Equal(t, []string{"Bench Press"}, l.Suggestions())

	l.Select(" Incline Bench ")
	assert.Equal(t, "Incline Bench", l.Selected)
	assert.Empty(t, l.Search)

	_, err := l.AddSet(40, 10)
	require.NoError(t, err)
	_, err = l.AddSet(45, 8)
	require.NoError(t, err)
	_, err = l.AddSet(0, 8)
	assert.Error(t, err)

	entry := liftlog.LogEntry{Exercise: "Incline Bench", Sets: []liftlog.Set{
		{SetNumber: 1, Reps: 10, Weight: 40},
		{SetNumber: 2, Reps: 8, Weight: 45},
	}}
	gomock.InOrder(
		api.EXPECT().LogExercise(gomock.Any(), entry).Return(int64(0), errRemote),
		api.EXPECT().LogExercise(gomock.Any(), entry).Return(int64(77), nil),
	)

	_, err = l.Submit(ctx)
	assert.Equal(t, liftlog.KindRemote, liftlog.KindOf(err))
	assert.Equal(t, 2, l.Draft.Len(), "draft is kept on failure")

	id, err := l.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)
	assert.Zero(t, l.Draft.Len())

	l.Search = "incline"
	assert.Equal(t, []string{"Incline Bench"}, l.Suggestions(), "new names join the catalog")
}

func TestCreateWorkout(t *testing.T) {
	ctx := context.Background()

	newScreen := func(t *testing.T) (*CreateWorkout, *MockBackend, *navigator.Stack) {
		api := newBackend(t)
		nav := navigator.NewStack(navigator.RouteCreateWorkout)
		api.EXPECT().Exercises(gomock.Any()).Return([]string{"Squat", "Lunge", "Leg Press"}, nil)
		c := NewCreateWorkout(api, nav)
		require.NoError(t, c.Load(ctx))

		c.Draft.Name = "Legs"
		sq, err := c.AddExercise("Squat")
		require.NoError(t, err)
		_, _ = sq.AddSet(100, 5)
		return c, api, nav
	}

	entries := []liftlog.LogEntry{{Exercise: "Squat", Sets: []liftlog.Set{{SetNumber: 1, Reps: 5, Weight: 100}}}}

	t.Run("suggestions hide added exercises", func(t *testing.T) {
		c, _, _ := newScreen(t)
		c.Search = "l"
		assert.Equal(t, []string{"Lunge", "Leg Press"}, c.Suggestions())
		c.Search = "squat"
		assert.Empty(t, c.Suggestions())
	})

	t.Run("success clears and navigates", func(t *testing.T) {
		c, api, nav := newScreen(t)
		api.EXPECT().SubmitWorkout(gomock.Any(), "Legs", entries).
			Return(liftlog.SubmitResult{WorkoutID: 5, Logged: map[string]int64{"Squat": 1}}, nil)

		res, err := c.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), res.WorkoutID)
		assert.Empty(t, c.Draft.Exercises())
		assert.Equal(t, navigator.RouteWorkouts, route(nav))
	})

	t.Run("failure keeps the draft", func(t *testing.T) {
		c, api, nav := newScreen(t)
		api.EXPECT().SubmitWorkout(gomock.Any(), "Legs", entries).
			Return(liftlog.SubmitResult{WorkoutID: 5, Logged: map[string]int64{}}, errRemote)

		res, err := c.Submit(ctx)
		assert.Error(t, err)
		assert.Equal(t, int64(5), res.WorkoutID)
		assert.Equal(t, []string{"Squat"}, c.Draft.Exercises())
		assert.Equal(t, navigator.RouteCreateWorkout, route(nav))
	})

	t.Run("invalid draft is not sent", func(t *testing.T) {
		c, _, _ := newScreen(t)
		_, err := c.AddExercise("Lunge")
		require.NoError(t, err)

		_, err = c.Submit(ctx)
		assert.Equal(t, liftlog.KindValidation, liftlog.KindOf(err))
		assert.Contains(t, err.Error(), "Lunge has no sets")
	})
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	api := newBackend(t)
	nav := navigator.NewStack(navigator.RouteHistory)
	h := NewHistory(api, nav)
	h.Location = time.UTC

	api.EXPECT().Exercises(gomock.Any()).Return([]string{"Squat", "Bench Press"}, nil)
	require.NoError(t, h.Load(ctx))
	assert.Equal(t, ByExercise, h.Mode)
	h.Search = "SQ"
	assert.Equal(t, []string{"Squat"}, h.Exercises())

	require.NoError(t, h.SelectExercise("Squat"))
	r, p := nav.Current()
	assert.Equal(t, navigator.RouteExerciseHistory, r)
	assert.Equal(t, navigator.ExerciseHistoryParams{Exercise: "Squat"}, p)
	require.NoError(t, nav.Back())

	assert.Equal(t, ByDay, h.Toggle())
	assert.Equal(t, "by-day", h.Mode.String())
	api.EXPECT().Workouts(gomock.Any()).Return([]liftlog.Workout{
		{ID: 1, Name: "Legs", Date: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "Push", Date: time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)},
	}, nil)
	require.NoError(t, h.Load(ctx))
	assert.Equal(t, []string{"2024-03-04", "2024-03-01"}, h.Days())

	require.NoError(t, h.SelectDay("2024-03-04"))
	r, p = nav.Current()
	assert.Equal(t, navigator.RouteDayHistory, r)
	assert.Equal(t, navigator.DayHistoryParams{Date: "2024-03-04"}, p)

	assert.Equal(t, ByExercise, h.Toggle())
}

func TestHistoryNotAuthenticated(t *testing.T) {
	api := newBackend(t)
	h := NewHistory(api, navigator.NewStack(navigator.RouteHistory))
	notAuthed := &liftlog.Error{Kind: liftlog.KindNotAuthenticated, Err: liftlog.ErrNotAuthenticated}
	api.EXPECT().Exercises(gomock.Any()).Return(nil, notAuthed)

	err := h.Load(context.Background())
	assert.True(t, liftlog.IsNotAuthenticated(err))
	assert.Empty(t, h.Exercises())
}

func squatRecords() []liftlog.Record {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 8, 0, 0, 0, time.UTC) }
	return []liftlog.Record{
		{ID: 1, ExerciseID: 10, Name: "Squat", Date: day(1), SetNumber: 1, Reps: 5, Weight: 100},
		{ID: 2, ExerciseID: 10, Name: "Squat", Date: day(1), SetNumber: 2, Reps: 5, Weight: 100},
		{ID: 3, ExerciseID: 11, Name: "Squat", Date: day(5), SetNumber: 1, Reps: 5, Weight: 105},
		{ID: 4, ExerciseID: 12, Name: "Squat", Date: day(9), SetNumber: 1, Reps: 5, Weight: 110},
	}
}

func TestExerciseHistory(t *testing.T) {
	ctx := context.Background()
	api := newBackend(t)
	api.EXPECT().ExerciseRecords(gomock.Any(), "Squat").Return(squatRecords(), nil)

	e := NewExerciseHistory(api, navigator.ExerciseHistoryParams{Exercise: "Squat"})
	require.NoError(t, e.Load(ctx))

	groups := e.Entries()
	require.Len(t, groups, 3)
	assert.Equal(t, "12", groups[0].Key)

	start := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	e.Start = &start
	groups = e.Entries()
	require.Len(t, groups, 2)

	e.Start = nil
	end := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	e.End = &end
	groups = e.Entries()
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Records, 2, "end bound is inclusive")
}

func TestExerciseHistoryDelete(t *testing.T) {
	ctx := context.Background()
	api := newBackend(t)
	api.EXPECT().ExerciseRecords(gomock.Any(), "Squat").Return(squatRecords(), nil).Times(1)

	e := NewExerciseHistory(api, navigator.ExerciseHistoryParams{Exercise: "Squat"})
	require.NoError(t, e.Load(ctx))

	notFound := &liftlog.Error{Kind: liftlog.KindRemote, Op: "delete workout", Message: "Workout not found", StatusCode: 404}
	api.EXPECT().DeleteWorkout(gomock.Any(), int64(999)).Return(notFound)
	err := e.Delete(ctx, 999)
	assert.Equal(t, liftlog.KindRemote, liftlog.KindOf(err))
	assert.Len(t, e.Entries(), 3, "failed delete leaves the list untouched")

	api.EXPECT().DeleteWorkout(gomock.Any(), int64(10)).Return(nil)
	require.NoError(t, e.Delete(ctx, 10))
	groups := e.Entries()
	require.Len(t, groups, 2)
	for _, g := range groups {
		assert.NotEqual(t, "10", g.Key)
	}
}

func TestDayHistory(t *testing.T) {
	ctx := context.Background()
	api := newBackend(t)
	nav := navigator.NewStack(navigator.RouteDayHistory)
	api.EXPECT().Workouts(gomock.Any()).Return([]liftlog.Workout{
		{ID: 1, Name: "Legs", Date: time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "Push", Date: time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)},
		{ID: 3, Name: "Core", Date: time.Date(2024, 3, 1, 7, 30, 0, 0, time.UTC)},
	}, nil)

	d := NewDayHistory(api, nav, navigator.DayHistoryParams{Date: "2024-03-01"})
	d.Location = time.UTC
	require.NoError(t, d.Load(ctx))

	groups := d.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "07:30", groups[0].Key)
	assert.Equal(t, "Core", groups[0].Workouts[0].Name)
	assert.Equal(t, "18:00", groups[1].Key)

	require.NoError(t, d.Select(groups[1].Workouts[0]))
	r, p := nav.Current()
	assert.Equal(t, navigator.RouteWorkoutDetails, r)
	assert.Equal(t, navigator.WorkoutDetailsParams{WorkoutID: 1, WorkoutName: "Legs"}, p)
}

func TestWorkoutDetails(t *testing.T) {
	ctx := context.Background()
	api := newBackend(t)
	w := NewWorkoutDetails(api, navigator.WorkoutDetailsParams{WorkoutID: 4, WorkoutName: "Legs"})

	api.EXPECT().WorkoutExercises(gomock.Any(), int64(4)).Return([]string{"Squat"}, nil)
	api.EXPECT().WorkoutExerciseDetails(gomock.Any(), int64(4)).Return(squatRecords()[:2], nil)

	require.NoError(t, w.Load(ctx))
	assert.Equal(t, "Legs", w.Title())
	assert.Equal(t, []string{"Squat"}, w.Exercises())
	require.Len(t, w.Entries(), 1)
	assert.Len(t, w.Entries()[0].Records, 2)

	w.WorkoutName = ""
	assert.Equal(t, "Workout 4", w.Title())
}

func TestWorkoutDetailsFailureKeepsState(t *testing.T) {
	api := newBackend(t)
	w := NewWorkoutDetails(api, navigator.WorkoutDetailsParams{WorkoutID: 4})
	api.EXPECT().WorkoutExercises(gomock.Any(), int64(4)).Return([]string{"Squat"}, nil)
	api.EXPECT().WorkoutExerciseDetails(gomock.Any(), int64(4)).Return(nil, errors.New("timeout"))

	assert.Error(t, w.Load(context.Background()))
	assert.Empty(t, w.Exercises())
	assert.Empty(t, w.Entries())
}
