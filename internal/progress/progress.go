// Package progress summarizes lifting records per exercise and year.
package progress

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/lildude/liftlog/internal/liftlog"
)

// Summary is the yearly total for one exercise.
type Summary struct {
	Exercise string
	Year     int
	Sets     int
	Reps     int
	// Volume is the sum of reps times weight.
	Volume float64
	// Heaviest is the heaviest single set.
	Heaviest liftlog.Set
	// OneRepMax is the best Epley estimate across all sets.
	OneRepMax float64
}

// EstimateOneRepMax returns the Epley estimate, weight * (1 + 0.0333 * reps),
// rounded to two decimals. A single rep is its own max.
func EstimateOneRepMax(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	return math.Round(weight*(1+0.0333*float64(reps))*100) / 100
}

// Summarize folds records into summaries ordered by exercise then year.
// Exercise names differing only in case are merged under the first spelling seen.
func Summarize(recs []liftlog.Record) []Summary {
	type key struct {
		name string
		year int
	}
	fold := cases.Fold()
	spelling := map[string]string{}
	byKey := map[key]*Summary{}

	for _, r := range recs {
		name := strings.TrimSpace(r.Name)
		f := fold.String(name)
		if _, ok := spelling[f]; !ok {
			spelling[f] = name
		}
		k := key{f, r.Date.Year()}
		s, ok := byKey[k]
		if !ok {
			s = &Summary{Exercise: spelling[f], Year: k.year}
			byKey[k] = s
		}

		s.Sets++
		s.Reps += r.Reps
		s.Volume += float64(r.Reps) * r.Weight
		if r.Weight > s.Heaviest.Weight || (r.Weight == s.Heaviest.Weight && r.Reps > s.Heaviest.Reps) {
			s.Heaviest = liftlog.Set{SetNumber: r.SetNumber, Reps: r.Reps, Weight: r.Weight}
		}
		if orm := EstimateOneRepMax(r.Weight, r.Reps); orm > s.OneRepMax {
			s.OneRepMax = orm
		}
	}

	out := make([]Summary, 0, len(byKey))
	for _, s := range byKey {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		fi, fj := fold.String(out[i].Exercise), fold.String(out[j].Exercise)
		if fi != fj {
			return fi < fj
		}
		return out[i].Year < out[j].Year
	})
	return out
}
