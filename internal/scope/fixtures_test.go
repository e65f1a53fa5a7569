package scope

import (
	"time"

	"github.com/shopspring/decimal"

	"buildpro/internal/model"
	"buildpro/internal/repository"
)

// Fixture graph: three projects, three teams. Sarah Chen (u2) supervises t1
// and t3; u7 is a global supervisor holding only an engineer seat on t2; u6
// belongs to no team at all.
var (
	fixtureUsers = map[string]*model.User{
		"u1": {ID: "u1", Name: "David Park", Role: model.RoleContractor},
		"u2": {ID: "u2", Name: "Sarah Chen", Role: model.RoleSupervisor},
		"u3": {ID: "u3", Name: "James Rodriguez", Role: model.RoleEngineer},
		"u4": {ID: "u4", Name: "Emily Watson", Role: model.RoleProjectManager},
		"u5": {ID: "u5", Name: "Luis Hernandez", Role: model.RoleLaborer},
		"u6": {ID: "u6", Name: "Priya Nair", Role: model.RoleEngineer},
		"u7": {ID: "u7", Name: "Alan Voss", Role: model.RoleSupervisor},
		"u8": {ID: "u8", Name: "Mystery Guest", Role: model.Role("intern")},
	}

	fixtureTeams = []model.Team{
		{
			ID: "t1", Name: "Riverside Crew", ProjectID: "p1",
			Members: []model.Membership{
				{UserID: "u2", Role: model.RoleSupervisor, Permissions: []model.Permission{model.PermissionView, model.PermissionEdit, model.PermissionAssign, model.PermissionApprove}},
				{UserID: "u3", Role: model.RoleEngineer, Permissions: []model.Permission{model.PermissionView, model.PermissionReport}},
				{UserID: "u5", Role: model.RoleLaborer, Permissions: []model.Permission{model.PermissionView}},
			},
		},
		{
			ID: "t2", Name: "Harbor Point Delivery", ProjectID: "p2",
			Members: []model.Membership{
				{UserID: "u4", Role: model.RoleProjectManager, Permissions: []model.Permission{model.PermissionView, model.PermissionEdit, model.PermissionAssign, model.PermissionApprove, model.PermissionReport}},
				{UserID: "u7", Role: model.RoleEngineer, Permissions: []model.Permission{model.PermissionView}},
			},
		},
		{
			ID: "t3", Name: "Maple Street Crew", ProjectID: "p3",
			Members: []model.Membership{
				{UserID: "u2", Role: model.RoleSupervisor, Permissions: []model.Permission{model.PermissionView, model.PermissionEdit, model.PermissionAssign, model.PermissionApprove}},
			},
		},
	}

	fixtureProjects = []model.Project{
		{ID: "p1", Name: "Riverside Apartments", Status: model.ProjectStatusInProgress, Budget: decimal.NewFromInt(2500000), Spent: decimal.NewFromInt(1425000), Progress: 55, TeamID: "t1"},
		{ID: "p2", Name: "Harbor Point Office Tower", Status: model.ProjectStatusPlanning, Budget: decimal.NewFromInt(8000000), Spent: decimal.NewFromInt(350000), Progress: 5, TeamID: "t2"},
		{ID: "p3", Name: "Maple Street School Retrofit", Status: model.ProjectStatusOnHold, Budget: decimal.NewFromInt(1200000), Spent: decimal.NewFromInt(880000), Progress: 70, TeamID: "t3"},
	}

	fixtureTasks = []model.Task{
		{ID: "task1", ProjectID: "p1", Title: "Pour foundation footings", AssigneeID: "u3", Status: model.TaskStatusInProgress, Priority: model.TaskPriorityHigh, CreatedAt: time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC)},
		{ID: "task2", ProjectID: "p1", Title: "Install rebar cages", AssigneeID: "u5", Status: model.TaskStatusInProgress, Priority: model.TaskPriorityMedium, CreatedAt: time.Date(2025, 8, 3, 14, 0, 0, 0, time.UTC)},
		{ID: "task3", ProjectID: "p1", Title: "Survey site boundaries", AssigneeID: "u3", Status: model.TaskStatusCompleted, Priority: model.TaskPriorityLow, CreatedAt: time.Date(2025, 7, 25, 8, 0, 0, 0, time.UTC)},
		{ID: "task4", ProjectID: "p2", Title: "Draft structural permit application", AssigneeID: "u4", Status: model.TaskStatusPending, Priority: model.TaskPriorityUrgent, CreatedAt: time.Date(2025, 8, 10, 11, 15, 0, 0, time.UTC)},
		{ID: "task5", ProjectID: "p3", Title: "Replace gym HVAC ducting", AssigneeID: "u3", Status: model.TaskStatusBlocked, Priority: model.TaskPriorityMedium, CreatedAt: time.Date(2025, 8, 12, 10, 45, 0, 0, time.UTC)},
	}

	fixtureDocuments = []model.Document{
		{ID: "d1", ProjectID: "p1", Name: "Foundation plan rev C", Type: model.DocumentTypePlan, Size: "4.2 MB", UploadedBy: "u2"},
		{ID: "d2", ProjectID: "p1", Name: "General contractor agreement", Type: model.DocumentTypeContract, Size: "812 KB", UploadedBy: "u1"},
		{ID: "d3", ProjectID: "p2", Name: "Environmental permit", Type: model.DocumentTypePermit, Size: "1.1 MB", UploadedBy: "u4"},
		{ID: "d4", ProjectID: "p3", Name: "Structural inspection report", Type: model.DocumentTypeReport, Size: "2.8 MB", UploadedBy: "u2"},
		{ID: "d5", ProjectID: "p1", Name: "Site photos week 32", Type: model.DocumentTypeOther, Size: "9.6 MB", UploadedBy: "u5"},
	}
)

func newFixtureResolver() *Resolver {
	return NewResolver(
		repository.NewTeamRepository(fixtureTeams),
		repository.NewProjectRepository(fixtureProjects),
		repository.NewTaskRepository(fixtureTasks),
		repository.NewDocumentRepository(fixtureDocuments),
	)
}

func projectIDs(projects []model.Project) []string {
	out := []string{}
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func taskIDs(tasks []model.Task) []string {
	out := []string{}
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func documentIDs(documents []model.Document) []string {
	out := []string{}
	for _, d := range documents {
		out = append(out, d.ID)
	}
	return out
}
