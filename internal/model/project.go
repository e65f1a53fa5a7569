package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus represents the lifecycle status of a project.
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusOnHold     ProjectStatus = "on-hold"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusOnHold, ProjectStatusCompleted:
		return true
	}
	return false
}

// Project represents a construction project. Tasks and documents reference
// their owning project by id; the team owning the project is discoverable via
// Team.ProjectID as well as the TeamID back-reference.
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Location    string          `json:"location"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Status      ProjectStatus   `json:"status"`
	Budget      decimal.Decimal `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
	Progress    int             `json:"progress"`
	Description string          `json:"description,omitempty"`
	TeamID      string          `json:"team_id,omitempty"`
}
