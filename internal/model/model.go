package model

import "time"

// Setting is a single device-scoped key/value pair.
type Setting struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}
