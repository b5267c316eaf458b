package liftlog

import "time"

// Set is one performed block of repetitions.
type Set struct {
	SetNumber int     `json:"setNumber"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
}

// Workout is a named, dated container of exercise log entries.
type Workout struct {
	ID   int64     `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

// Record is a single historical set as returned by the records endpoints.
type Record struct {
	ID         int64     `json:"id"`
	ExerciseID int64     `json:"exerciseId"`
	WorkoutID  int64     `json:"workoutId,omitempty"`
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	SetNumber  int       `json:"setNumber"`
	Reps       int       `json:"reps"`
	Weight     float64   `json:"weight"`
}

// LogEntry is "these sets of this exercise were performed", optionally as part of a workout.
type LogEntry struct {
	Exercise  string
	WorkoutID *int64
	Sets      []Set
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token          string `json:"token"`
	UserID         int64  `json:"userId"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

type exercisesResponse struct {
	Exercises []string `json:"exercises"`
}

type createWorkoutRequest struct {
	UserID      int64  `json:"userId"`
	WorkoutName string `json:"workoutName"`
}

type createWorkoutResponse struct {
	WorkoutID int64 `json:"workoutId"`
}

type logRequest struct {
	UserID    int64  `json:"userId"`
	Exercise  string `json:"exercise"`
	Sets      []Set  `json:"sets"`
	WorkoutID *int64 `json:"workoutId"`
}

type logResponse struct {
	ExerciseID int64 `json:"exerciseId"`
}

type deleteRequest struct {
	UserID    int64 `json:"userId"`
	WorkoutID int64 `json:"workoutId"`
}

type detailsResponse struct {
	Details []Record `json:"details"`
}
