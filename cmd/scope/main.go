package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"buildpro/internal/config"
	"buildpro/internal/model"
	"buildpro/internal/repository"
	"buildpro/internal/scope"
	"buildpro/internal/seed"
	"buildpro/internal/session"
)

// scopeReport is everything a dashboard screen derives for one user.
type scopeReport struct {
	User                *model.User            `json:"user"`
	Membership          *scope.MembershipInfo  `json:"membership"`
	Memberships         []scope.MembershipInfo `json:"memberships"`
	Projects            []model.Project        `json:"projects"`
	Tasks               []model.Task           `json:"tasks"`
	Documents           []model.Document       `json:"documents"`
	TaskCompletionRate  float64                `json:"task_completion_rate"`
	UnreadNotifications int                    `json:"unread_notifications"`
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()
	ctx := context.Background()

	ds, err := loadDataset(cfg.DatasetPath)
	if err != nil {
		logger.Fatal("load dataset", zap.Error(err))
	}
	if err := ds.Validate(); err != nil {
		logger.Fatal("validate dataset", zap.Error(err))
	}

	users := repository.NewUserRepository(ds.Users)
	teams := repository.NewTeamRepository(ds.Teams)
	projects := repository.NewProjectRepository(ds.Projects)
	tasks := repository.NewTaskRepository(ds.Tasks)
	documents := repository.NewDocumentRepository(ds.Documents)
	notifications := repository.NewNotificationRepository(ds.Notifications)

	resolver := scope.NewResolver(teams, projects, tasks, documents)

	var store session.Store
	if cfg.RedisAddr != "" {
		store = session.NewRedisStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		logger.Info("using redis session store", zap.String("addr", cfg.RedisAddr))
	} else {
		store = session.NewMemoryStore()
	}
	tokens := session.NewTokenService(cfg.SessionSecret, cfg.SessionTTL)
	sessions := session.NewManager(store, tokens, users)

	userID := "u2"
	if len(os.Args) > 1 {
		userID = os.Args[1]
	} else if v := os.Getenv("SCOPE_USER"); v != "" {
		userID = v
	}

	user, err := sessions.Login(ctx, userID)
	if err != nil {
		logger.Fatal("login", zap.String("user_id", userID), zap.Error(err))
	}
	logger.Info("logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))

	report, err := buildReport(ctx, resolver, notifications, user)
	if err != nil {
		logger.Fatal("resolve scope", zap.Error(err))
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Fatal("encode report", zap.Error(err))
	}
	fmt.Println(string(out))
}

func loadDataset(path string) (*seed.Dataset, error) {
	if path == "" {
		return seed.Load()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return seed.Parse(data)
}

func buildReport(
	ctx context.Context,
	resolver *scope.Resolver,
	notifications repository.NotificationRepository,
	user *model.User,
) (*scopeReport, error) {
	membership, err := resolver.ResolveMembership(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	memberships, err := resolver.ResolveMemberships(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	projects, err := resolver.VisibleProjects(ctx, user)
	if err != nil {
		return nil, err
	}
	tasks, err := resolver.VisibleTasks(ctx, user)
	if err != nil {
		return nil, err
	}
	documents, err := resolver.VisibleDocuments(ctx, user)
	if err != nil {
		return nil, err
	}
	unread, err := notifications.CountUnread(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &scopeReport{
		User:                user,
		Membership:          membership,
		Memberships:         memberships,
		Projects:            projects,
		Tasks:               tasks,
		Documents:           documents,
		TaskCompletionRate:  scope.TaskCompletionRate(tasks),
		UnreadNotifications: unread,
	}, nil
}
