package domain

import "time"

// Input length limits, shared with the declarative validation at the HTTP
// boundary. Repositories re-check them defensively before touching storage.
const (
	MaxQuestionLength = 500
	MaxAnswerLength   = 2000

	// MaxNameLength bounds user display names and theme names alike.
	MaxNameLength = 400
)

// Operation deadlines. Single-row operations are "light"; collection scans
// and bulk deletes are "heavy".
const (
	LightOperationTimeout = 5 * time.Second
	HeavyOperationTimeout = 10 * time.Second
)
