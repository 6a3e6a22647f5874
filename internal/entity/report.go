package entity

import "time"

type Report struct {
	ID         string    `json:"id"`
	ReporterID string    `json:"reporter_id"`
	ReportedID string    `json:"reported_id"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`

	Reported      *User `json:"reported,omitempty"`
	ReportedCount int   `json:"reported_count,omitempty"`
}
