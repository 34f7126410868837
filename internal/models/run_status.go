package models

import "time"

// Run states reported by the monitoring-status endpoint.
const (
	RunStateIdle      = "idle"
	RunStateRunning   = "running"
	RunStateCompleted = "completed"
	RunStateStopped   = "stopped"
)

// RunStatus describes the current or most recent monitoring run.
type RunStatus struct {
	RunID           string     `json:"runId,omitempty"`
	State           string     `json:"state"`
	Cycle           int        `json:"cycle"`
	TotalCycles     int        `json:"totalCycles"`
	SitesMonitored  int        `json:"sitesMonitored"`
	ChangesDetected int        `json:"changesDetected"`
	AlertsSent      int        `json:"alertsSent"`
	ScrapeFailures  int        `json:"scrapeFailures"`
	StartedAt       *time.Time `json:"startedAt,omitempty"`
	FinishedAt      *time.Time `json:"finishedAt,omitempty"`
}
