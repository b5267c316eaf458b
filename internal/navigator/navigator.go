// Package navigator keeps the route history of the screens.
package navigator

import (
	"errors"
	"fmt"
	"sync"
)

type Route string

const (
	RouteLogin           Route = "login"
	RouteRegister        Route = "register"
	RouteHome            Route = "home"
	RouteLogExercise     Route = "log-exercise"
	RouteCreateWorkout   Route = "create-workout"
	RouteWorkouts        Route = "workouts"
	RouteHistory         Route = "history"
	RouteExerciseHistory Route = "exercise-history"
	RouteDayHistory      Route = "day-history"
	RouteWorkoutDetails  Route = "workout-details"
)

type ExerciseHistoryParams struct {
	Exercise string
}

type DayHistoryParams struct {
	// Date is a calendar day in 2006-01-02 form.
	Date string
}

type WorkoutDetailsParams struct {
	WorkoutID   int64
	WorkoutName string
}

var (
	ErrEmptyHistory = errors.New("no previous route")
	ErrBadParams    = errors.New("wrong parameters for route")
)

// Navigator moves between routes.
type Navigator interface {
	Navigate(route Route, params any) error
	Current() (Route, any)
	Back() error
}

type entry struct {
	route  Route
	params any
}

// Stack is a Navigator backed by a history stack. The zero value starts at
// no route.
type Stack struct {
	mu      sync.Mutex
	history []entry
}

func NewStack(start Route) *Stack {
	return &Stack{history: []entry{{route: start}}}
}

// Navigate pushes route. Routes that take parameters reject any other type.
func (s *Stack) Navigate(route Route, params any) error {
	if err := checkParams(route, params); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, entry{route: route, params: params})
	return nil
}

func (s *Stack) Current() (Route, any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) == 0 {
		return "", nil
	}
	e := s.history[len(s.history)-1]
	return e.route, e.params
}

// Back pops the current route. The first route is never popped.
func (s *Stack) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) < 2 {
		return ErrEmptyHistory
	}
	s.history = s.history[:len(s.history)-1]
	return nil
}

// Reset replaces the whole history with route, as after logging in or out.
func (s *Stack) Reset(route Route) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = []entry{{route: route}}
}

// Depth is the number of routes in the history.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

func checkParams(route Route, params any) error {
	var ok bool
	switch route {
	case RouteExerciseHistory:
		_, ok = params.(ExerciseHistoryParams)
	case RouteDayHistory:
		_, ok = params.(DayHistoryParams)
	case RouteWorkoutDetails:
		_, ok = params.(WorkoutDetailsParams)
	default:
		ok = params == nil
	}
	if !ok {
		return fmt.Errorf("navigating to %s with %T: %w", route, params, ErrBadParams)
	}
	return nil
}
