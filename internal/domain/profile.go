package domain

import "time"

// TrainingProfile anchors the plan so it can be regenerated from (PlanStartDate, maxes).
type TrainingProfile struct {
	ID            string
	PlanStartDate Date
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
