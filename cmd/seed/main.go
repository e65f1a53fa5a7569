package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"buildpro/internal/seed"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	ds, err := loadDataset()
	if err != nil {
		logger.Fatal("load dataset", zap.Error(err))
	}

	logger.Info("dataset loaded",
		zap.Int("users", len(ds.Users)),
		zap.Int("teams", len(ds.Teams)),
		zap.Int("projects", len(ds.Projects)),
		zap.Int("tasks", len(ds.Tasks)),
		zap.Int("documents", len(ds.Documents)),
		zap.Int("notifications", len(ds.Notifications)),
	)

	if err := ds.Validate(); err != nil {
		logger.Fatal("dataset validation failed", zap.Error(err))
	}
	logger.Info("dataset valid")
}

// loadDataset reads the dataset from the path given as the first argument, or
// falls back to the embedded seed data.
func loadDataset() (*seed.Dataset, error) {
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			return nil, fmt.Errorf("read dataset %s: %w", os.Args[1], err)
		}
		return seed.Parse(data)
	}
	return seed.Load()
}
