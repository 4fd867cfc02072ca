// Package scheduler contém os serviços de agendamento das execuções diárias
package scheduler

import "time"

// SyncStatus é o estado de um serviço de sincronização, exposto pela API
// operacional.
type SyncStatus struct {
	Enabled         bool      `json:"enabled"`
	CronSchedule    string    `json:"cron_schedule"`
	Running         bool      `json:"running"`
	LastStartedAt   time.Time `json:"last_started_at"`
	LastCompletedAt time.Time `json:"last_completed_at"`
	LastError       string    `json:"last_error,omitempty"`
}
