// Package records filters and groups historical sets for display.
package records

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lildude/liftlog/internal/liftlog"
)

const (
	DayLayout  = "2006-01-02"
	TimeLayout = "15:04"
)

// Group is a run of records sharing a key.
type Group struct {
	Key     string
	Records []liftlog.Record
}

// FilterNames returns the names containing query, ignoring case. An empty
// query matches every name.
func FilterNames(names []string, query string) []string {
	return FilterNamesExcluding(names, query, nil)
}

// FilterNamesExcluding is FilterNames without the names in exclude.
func FilterNamesExcluding(names []string, query string, exclude []string) []string {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	skip := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		skip[fold.String(e)] = true
	}

	out := []string{}
	for _, n := range names {
		k := fold.String(n)
		if skip[k] {
			continue
		}
		if strings.Contains(k, q) {
			out = append(out, n)
		}
	}
	return out
}

// DisplayName title-cases an exercise name for headings.
func DisplayName(name string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(name))
}

// FilterByDateRange keeps records with start <= Date <= end. A nil bound is
// open.
func FilterByDateRange(recs []liftlog.Record, start, end *time.Time) []liftlog.Record {
	out := []liftlog.Record{}
	for _, r := range recs {
		if start != nil && r.Date.Before(*start) {
			continue
		}
		if end != nil && r.Date.After(*end) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// GroupByDay partitions records by calendar day in loc. Groups are ordered by
// first appearance and keep the input order within each group.
func GroupByDay(recs []liftlog.Record, loc *time.Location) []Group {
	return groupBy(recs, func(r liftlog.Record) string { return r.Date.In(loc).Format(DayLayout) })
}

// GroupByTime partitions records by hour and minute in loc.
func GroupByTime(recs []liftlog.Record, loc *time.Location) []Group {
	return groupBy(recs, func(r liftlog.Record) string { return r.Date.In(loc).Format(TimeLayout) })
}

// GroupByEntry partitions records by the log entry they belong to, newest
// entry first. Sets within an entry are ordered by set number.
func GroupByEntry(recs []liftlog.Record) []Group {
	groups := groupBy(recs, func(r liftlog.Record) string { return strconv.FormatInt(r.ExerciseID, 10) })
	for _, g := range groups {
		sort.SliceStable(g.Records, func(i, j int) bool { return g.Records[i].SetNumber < g.Records[j].SetNumber })
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return latest(groups[i].Records).After(latest(groups[j].Records))
	})
	return groups
}

// WorkoutDays returns the distinct days in loc that have a workout, most
// recent first.
func WorkoutDays(ws []liftlog.Workout, loc *time.Location) []string {
	seen := map[string]bool{}
	days := []string{}
	for _, w := range ws {
		d := w.Date.In(loc).Format(DayLayout)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	// The layout sorts lexically in date order.
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	return days
}

// WorkoutsOn returns the workouts dated on day (DayLayout) in loc.
func WorkoutsOn(ws []liftlog.Workout, day string, loc *time.Location) []liftlog.Workout {
	out := []liftlog.Workout{}
	for _, w := range ws {
		if w.Date.In(loc).Format(DayLayout) == day {
			out = append(out, w)
		}
	}
	return out
}

// WorkoutGroup is a run of workouts starting at the same time of day.
type WorkoutGroup struct {
	Key      string
	Workouts []liftlog.Workout
}

// GroupWorkoutsByTime partitions workouts by hour and minute in loc, earliest
// first.
func GroupWorkoutsByTime(ws []liftlog.Workout, loc *time.Location) []WorkoutGroup {
	groups := []WorkoutGroup{}
	idx := map[string]int{}
	for _, w := range ws {
		k := w.Date.In(loc).Format(TimeLayout)
		i, ok := idx[k]
		if !ok {
			i = len(groups)
			idx[k] = i
			groups = append(groups, WorkoutGroup{Key: k})
		}
		groups[i].Workouts = append(groups[i].Workouts, w)
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}

// RemoveEntry drops every set of one log entry.
func RemoveEntry(recs []liftlog.Record, entryID int64) []liftlog.Record {
	out := make([]liftlog.Record, 0, len(recs))
	for _, r := range recs {
		if r.ExerciseID != entryID {
			out = append(out, r)
		}
	}
	return out
}

func groupBy(recs []liftlog.Record, key func(liftlog.Record) string) []Group {
	groups := []Group{}
	idx := map[string]int{}
	for _, r := range recs {
		k := key(r)
		i, ok := idx[k]
		if !ok {
			i = len(groups)
			idx[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}

func latest(recs []liftlog.Record) time.Time {
	var t time.Time
	for _, r := range recs {
		if r.Date.After(t) {
			t = r.Date
		}
	}
	return t
}
