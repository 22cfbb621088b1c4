package ui

import "time"

// LayoutCompactWidth is the width below which the header drops optional parts.
const LayoutCompactWidth = 100

const (
	// DefaultUIInterval is how often the model re-reads the store.
	DefaultUIInterval = 250 * time.Millisecond

	// AlertTTL is how long an alert stays in the header.
	AlertTTL = 6 * time.Second

	// ActivityLineLimit bounds the lines read from the log file.
	ActivityLineLimit = 500

	// ActivityRefreshEvery throttles log reads while following.
	ActivityRefreshEvery = time.Second
)

// Input limits.
const (
	queryCharLimit = 200
	yearCharLimit  = 6
)
