package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lildude/liftlog/internal/liftlog"
	"github.com/lildude/liftlog/internal/navigator"
	"github.com/lildude/liftlog/internal/progress"
	"github.com/lildude/liftlog/internal/records"
	"github.com/lildude/liftlog/internal/screens"
)

type command func(ctx context.Context, a *app, args []string) error

var commands map[string]command

func init() {
	commands = map[string]command{
		"login":          loginCmd,
		"logout":         logoutCmd,
		"register":       registerCmd,
		"whoami":         whoamiCmd,
		"exercises":      exercisesCmd,
		"log":            logCmd,
		"create-workout": createWorkoutCmd,
		"workouts":       workoutsCmd,
		"history":        historyCmd,
		"details":        detailsCmd,
		"delete":         deleteCmd,
		"stats":          statsCmd,
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func loginCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("login")
	l := screens.NewLogin(a.api, a.nav)
	fs.StringVar(&l.Username, "username", "", "username")
	fs.StringVar(&l.Password, "password", os.Getenv("LIFTLOG_PASSWORD"), "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := l.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", s.Username)
	return nil
}

func logoutCmd(ctx context.Context, a *app, _ []string) error {
	if err := screens.Logout(ctx, a.api, a.nav); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func registerCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("register")
	r := screens.NewRegister(a.api, a.nav)
	fs.StringVar(&r.Username, "username", "", "username")
	fs.StringVar(&r.Email, "email", "", "email address")
	fs.StringVar(&r.Password, "password", "", "password")
	picture := fs.String("picture", "", "profile picture file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *picture != "" {
		b, err := os.ReadFile(*picture)
		if err != nil {
			return fmt.Errorf("reading profile picture: %w", err)
		}
		r.ProfilePicture = b
		r.ProfilePictureName = filepath.Base(*picture)
	}
	username := r.Username
	if err := r.Submit(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Registered %s. Run `liftlog login` to sign in.\n", username)
	return nil
}

func whoamiCmd(ctx context.Context, a *app, _ []string) error {
	s, err := a.api.Session(ctx)
	if err != nil {
		return err
	}
	if !s.Authenticated() {
		return &liftlog.Error{Kind: liftlog.KindNotAuthenticated, Op: "whoami", Err: liftlog.ErrNotAuthenticated}
	}
	fmt.Fprintf(a.out, "%s (id %d)\n", s.Username, s.UserID)
	if s.ProfilePicture != "" {
		fmt.Fprintf(a.out, "picture: %s\n", s.ProfilePicture)
	}
	return nil
}

func exercisesCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("exercises")
	l := screens.NewLogExercise(a.api)
	fs.StringVar(&l.Search, "q", "", "filter by name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := l.Load(ctx); err != nil {
		return err
	}
	for _, n := range l.Suggestions() {
		fmt.Fprintln(a.out, n)
	}
	return nil
}

func logCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("log")
	l := screens.NewLogExercise(a.api)
	exercise := fs.String("exercise", "", "exercise name")
	workoutID := fs.Int64("workout", 0, "workout id")
	fs.Var(setsFlag{&l.Draft}, "set", "WEIGHT:REPS, repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}

	l.Select(*exercise)
	if *workoutID > 0 {
		l.WorkoutID = workoutID
	}
	n := l.Draft.Len()
	id, err := l.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged %d sets of %s (entry %d)\n", n, l.Selected, id)
	return nil
}

func createWorkoutCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("create-workout")
	c := screens.NewCreateWorkout(a.api, a.nav)
	wf := &workoutFlags{w: &c.Draft}
	fs.StringVar(&c.Draft.Name, "name", "", "workout name")
	fromCal := fs.Bool("from-calendar", false, "name the workout after the planned calendar event")
	date := fs.String("date", "", "calendar day for -from-calendar, default today")
	fs.Var(exerciseValue{wf}, "exercise", "exercise name, repeatable")
	fs.Var(workoutSetValue{wf}, "set", "WEIGHT:REPS for the preceding -exercise")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *fromCal {
		name, err := plannedWorkout(ctx, a, *date)
		if err != nil {
			return err
		}
		c.Draft.Name = name
	}

	res, err := c.Submit(ctx)
	if res.WorkoutID != 0 {
		fmt.Fprintf(a.out, "Workout %d: logged %d exercises\n", res.WorkoutID, len(res.Logged))
	}
	return err
}

func plannedWorkout(ctx context.Context, a *app, date string) (string, error) {
	if a.cal == nil {
		return "", errors.New("LIFTLOG_CALENDAR_URL is not set")
	}
	day := time.Now()
	if date != "" {
		d, err := parseDay(date, false)
		if err != nil {
			return "", err
		}
		day = *d
	}
	ev, err := a.cal.GetCalendarEvent(ctx, day)
	if err != nil {
		return "", err
	}
	if ev == nil {
		return "", fmt.Errorf("no planned workout on %s", day.Format(records.DayLayout))
	}
	return ev.Summary, nil
}

func workoutsCmd(ctx context.Context, a *app, _ []string) error {
	ws, err := a.api.Workouts(ctx)
	if err != nil {
		return err
	}
	tw := table(a.out)
	fmt.Fprintln(tw, "ID\tDATE\tNAME")
	for _, w := range ws {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", w.ID, w.Date.Local().Format("2006-01-02 15:04"), w.Name)
	}
	return tw.Flush()
}

func historyCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("history")
	exercise := fs.String("exercise", "", "show one exercise")
	day := fs.String("day", "", "show one day, YYYY-MM-DD")
	query := fs.String("q", "", "filter exercise names")
	from := fs.String("from", "", "first day, YYYY-MM-DD")
	to := fs.String("to", "", "last day, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}

	h := screens.NewHistory(a.api, a.nav)
	h.Search = *query
	switch {
	case *exercise != "":
		if err := h.SelectExercise(*exercise); err != nil {
			return err
		}
	case *day != "":
		if *from != "" || *to != "" {
			return errors.New("-from and -to only apply to -exercise")
		}
		d, err := parseDay(*day, false)
		if err != nil {
			return err
		}
		h.Toggle()
		if err := h.SelectDay(d.Format(records.DayLayout)); err != nil {
			return err
		}
	default:
		return listHistory(ctx, a, h)
	}

	route, params := a.nav.Current()
	switch p := params.(type) {
	case navigator.ExerciseHistoryParams:
		e := screens.NewExerciseHistory(a.api, p)
		var err error
		if e.Start, err = parseDay(*from, false); err != nil {
			return err
		}
		if e.End, err = parseDay(*to, true); err != nil {
			return err
		}
		if err := e.Load(ctx); err != nil {
			return err
		}
		printEntries(a.out, records.DisplayName(e.Exercise), e.Entries())
	case navigator.DayHistoryParams:
		d := screens.NewDayHistory(a.api, a.nav, p)
		if err := d.Load(ctx); err != nil {
			return err
		}
		tw := table(a.out)
		for _, g := range d.Groups() {
			for _, w := range g.Workouts {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", g.Key, w.ID, w.Name)
			}
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unexpected route %s", route)
	}
	return nil
}

func listHistory(ctx context.Context, a *app, h *screens.History) error {
	if err := h.Load(ctx); err != nil {
		return err
	}
	for _, n := range h.Exercises() {
		fmt.Fprintln(a.out, n)
	}
	return nil
}

func printEntries(w io.Writer, title string, groups []records.Group) {
	fmt.Fprintln(w, title)
	tw := table(w)
	for _, g := range groups {
		first := g.Records[0]
		fmt.Fprintf(tw, "entry %s\t%s\t\n", g.Key, first.Date.Local().Format("2006-01-02 15:04"))
		for _, r := range g.Records {
			fmt.Fprintf(tw, "  set %d\t%g kg\t%d reps\n", r.SetNumber, r.Weight, r.Reps)
		}
	}
	tw.Flush()
}

func detailsCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("details")
	id := fs.Int64("workout", 0, "workout id")
	name := fs.String("name", "", "workout name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.nav.Navigate(navigator.RouteWorkoutDetails, navigator.WorkoutDetailsParams{WorkoutID: *id, WorkoutName: *name}); err != nil {
		return err
	}

	_, params := a.nav.Current()
	w := screens.NewWorkoutDetails(a.api, params.(navigator.WorkoutDetailsParams))
	if err := w.Load(ctx); err != nil {
		return err
	}
	printEntries(a.out, w.Title()+": "+strings.Join(w.Exercises(), ", "), w.Entries())
	return nil
}

func deleteCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("delete")
	id := fs.Int64("workout", 0, "id of the entry to delete")
	exercise := fs.String("exercise", "", "exercise to list after deleting")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *exercise == "" {
		if err := a.api.DeleteWorkout(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Deleted %d\n", *id)
		return nil
	}

	e := screens.NewExerciseHistory(a.api, navigator.ExerciseHistoryParams{Exercise: *exercise})
	if err := e.Load(ctx); err != nil {
		return err
	}
	if err := e.Delete(ctx, *id); err != nil {
		return err
	}
	printEntries(a.out, records.DisplayName(e.Exercise), e.Entries())
	return nil
}

func statsCmd(ctx context.Context, a *app, _ []string) error {
	recs, err := a.api.AllRecords(ctx)
	if err != nil {
		return err
	}
	tw := table(a.out)
	fmt.Fprintln(tw, "EXERCISE\tYEAR\tSETS\tREPS\tVOLUME\tHEAVIEST\tEST 1RM")
	for _, s := range progress.Summarize(recs) {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.1f\t%gx%d\t%.1f\n",
			records.DisplayName(s.Exercise), s.Year, s.Sets, s.Reps, s.Volume, s.Heaviest.Weight, s.Heaviest.Reps, s.OneRepMax)
	}
	return tw.Flush()
}
