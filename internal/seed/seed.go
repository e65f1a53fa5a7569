// Package seed ships the static BuildPro dataset. Every entity is created
// here at process start; nothing is persisted or destroyed during a session.
package seed

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"buildpro/internal/model"
)

//go:embed dataset.json
var datasetJSON []byte

// Dataset is the full in-memory object graph the resolvers operate on.
type Dataset struct {
	Users         []model.User         `json:"users"`
	Teams         []model.Team         `json:"teams"`
	Projects      []model.Project      `json:"projects"`
	Tasks         []model.Task         `json:"tasks"`
	Documents     []model.Document     `json:"documents"`
	Notifications []model.Notification `json:"notifications"`
}

// Load decodes the embedded dataset.
func Load() (*Dataset, error) {
	return Parse(datasetJSON)
}

// Parse decodes a dataset from raw JSON, for loading alternate datasets.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return &ds, nil
}

// Validate checks referential integrity and enum values across the dataset.
// All problems are reported at once.
func (d *Dataset) Validate() error {
	var problems []string
	report := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	users := map[string]bool{}
	userRoles := map[string]model.Role{}
	for _, u := range d.Users {
		if users[u.ID] {
			report("duplicate user id %q", u.ID)
		}
		users[u.ID] = true
		userRoles[u.ID] = u.Role
		if !u.Role.Valid() {
			report("user %q has unknown role %q", u.ID, u.Role)
		}
	}

	projects := map[string]bool{}
	for _, p := range d.Projects {
		if projects[p.ID] {
			report("duplicate project id %q", p.ID)
		}
		projects[p.ID] = true
		if !p.Status.Valid() {
			report("project %q has unknown status %q", p.ID, p.Status)
		}
		if p.Progress < 0 || p.Progress > 100 {
			report("project %q progress %d out of range", p.ID, p.Progress)
		}
	}

	teams := map[string]bool{}
	teamProjects := map[string]string{}
	memberOf := map[string]map[string]bool{}
	for _, t := range d.Teams {
		if teams[t.ID] {
			report("duplicate team id %q", t.ID)
		}
		teams[t.ID] = true
		teamProjects[t.ID] = t.ProjectID
		if !projects[t.ProjectID] {
			report("team %q references unknown project %q", t.ID, t.ProjectID)
		}
		for _, m := range t.Members {
			if !users[m.UserID] {
				report("team %q member references unknown user %q", t.ID, m.UserID)
			}
			if !m.Role.Valid() {
				report("team %q member %q has unknown role %q", t.ID, m.UserID, m.Role)
			}
			for _, p := range m.Permissions {
				if !p.Valid() {
					report("team %q member %q has unknown permission %q", t.ID, m.UserID, p)
				}
			}
			if memberOf[m.UserID] == nil {
				memberOf[m.UserID] = map[string]bool{}
			}
			memberOf[m.UserID][t.ProjectID] = true
		}
	}

	// The team must be discoverable from the project and vice versa.
	for _, p := range d.Projects {
		if p.TeamID == "" {
			continue
		}
		projectID, ok := teamProjects[p.TeamID]
		if !ok {
			report("project %q references unknown team %q", p.ID, p.TeamID)
		} else if projectID != p.ID {
			report("project %q references team %q which belongs to project %q", p.ID, p.TeamID, projectID)
		}
	}

	tasks := map[string]bool{}
	for _, t := range d.Tasks {
		if tasks[t.ID] {
			report("duplicate task id %q", t.ID)
		}
		tasks[t.ID] = true
		if !projects[t.ProjectID] {
			report("task %q references unknown project %q", t.ID, t.ProjectID)
		}
		if t.AssigneeID != "" && !users[t.AssigneeID] {
			report("task %q references unknown assignee %q", t.ID, t.AssigneeID)
		}
		// An assignee outside the project's team cannot see their own task.
		// The contractor role is exempt through its blanket access.
		if t.AssigneeID != "" && users[t.AssigneeID] &&
			userRoles[t.AssigneeID] != model.RoleContractor && !memberOf[t.AssigneeID][t.ProjectID] {
			report("task %q assignee %q is not a member of project %q", t.ID, t.AssigneeID, t.ProjectID)
		}
		if !t.Status.Valid() {
			report("task %q has unknown status %q", t.ID, t.Status)
		}
		if !t.Priority.Valid() {
			report("task %q has unknown priority %q", t.ID, t.Priority)
		}
	}

	documents := map[string]bool{}
	for _, doc := range d.Documents {
		if documents[doc.ID] {
			report("duplicate document id %q", doc.ID)
		}
		documents[doc.ID] = true
		if !projects[doc.ProjectID] {
			report("document %q references unknown project %q", doc.ID, doc.ProjectID)
		}
		if !doc.Type.Valid() {
			report("document %q has unknown type %q", doc.ID, doc.Type)
		}
	}

	for _, n := range d.Notifications {
		if !users[n.UserID] {
			report("notification %q references unknown user %q", n.ID, n.UserID)
		}
	}

	if len(problems) > 0 {
		return errors.New("invalid dataset: " + strings.Join(problems, "; "))
	}
	return nil
}
