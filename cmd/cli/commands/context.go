package commands

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/foodbridge-ke/pickup-scheduler/internal/config"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/services"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/db"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/postgres"
)

// AppContext holds the dependencies shared by all commands
type AppContext struct {
	Cfg    *config.Config
	Store  db.Store
	Quota  services.QuotaSource
	Logger *zap.Logger
	Ctx    context.Context

	// Postgres is set only when a database URL is configured; the migrate
	// command needs the concrete type
	Postgres *postgres.DB
}

// readProfileDocument loads an availability profile document from a YAML file
func readProfileDocument(path string) (model.ProfileDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.ProfileDocument{}, fmt.Errorf("failed to read profile file: %w", err)
	}

	var doc model.ProfileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return model.ProfileDocument{}, fmt.Errorf("failed to parse profile file: %w", err)
	}
	return doc, nil
}

// staticQuota is the fallback quota source when no Redis is configured:
// every count comes from a fixed value supplied on the command line
type staticQuota struct {
	count int
}

func (s staticQuota) Count(ctx context.Context, volunteerID string, date model.CalendarDate) (int, error) {
	return s.count, nil
}
