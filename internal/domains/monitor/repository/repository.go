package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"
	"vigil/infras/otel"
	"vigil/infras/postgres"
	"vigil/internal/domains/monitor/model"
	gDto "vigil/shared/dto"
	gRepo "vigil/shared/repository"
)

type Monitor interface {
	Insert(ctx context.Context, model model.Monitor) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Monitor, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Monitor, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	InsertHeartbeat(ctx context.Context, heartbeat model.Heartbeat) error
	GetLatestHeartbeat(ctx context.Context, monitorID string) (model.Heartbeat, error)
	GetHeartbeats(ctx context.Context, monitorID string, from, to time.Time) ([]model.Heartbeat, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Monitor]
	heartbeats gRepo.Repository[model.Heartbeat]
	db         *postgres.Connection
	otel       otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Monitor {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Monitor](model.EntityName, model.TableName, model.FieldID, db, otel),
		heartbeats: gRepo.NewRepository[model.Heartbeat](model.HeartbeatEntityName, model.HeartbeatTableName, model.HeartbeatFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) InsertHeartbeat(ctx context.Context, heartbeat model.Heartbeat) error {
	return repo.heartbeats.Insert(ctx, heartbeat) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetLatestHeartbeat(ctx context.Context, monitorID string) (model.Heartbeat, error) {
	params := gDto.QueryParams{
		Page:    1,
		Limit:   1,
		SortBy:  model.HeartbeatFieldCheckedAt,
		SortDir: gDto.SortDirDesc,
	}

	heartbeats, err := repo.heartbeats.GetAll(ctx, params, filterByMonitor(monitorID))
	if err != nil {
		return model.Heartbeat{}, err //nolint:wrapcheck
	}

	if len(heartbeats) == 0 {
		return model.Heartbeat{}, nil
	}

	return heartbeats[0], nil
}

func (repo *repositoryImpl) GetHeartbeats(ctx context.Context, monitorID string, from, to time.Time) ([]model.Heartbeat, error) {
	params := gDto.QueryParams{
		SortBy:  model.HeartbeatFieldCheckedAt,
		SortDir: gDto.SortDirAsc,
	}

	filter := filterByMonitor(monitorID)
	filter.Filters = append(filter.Filters,
		gDto.Filter{
			ArgName:  "checked_at_from",
			Field:    model.HeartbeatFieldCheckedAt,
			Value:    from,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.HeartbeatTableName,
		},
		gDto.Filter{
			ArgName:  "checked_at_to",
			Field:    model.HeartbeatFieldCheckedAt,
			Value:    to,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.HeartbeatTableName,
		},
	)

	return repo.heartbeats.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func filterByMonitor(monitorID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.HeartbeatFieldMonitorID,
				Value:    monitorID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.HeartbeatTableName,
			},
		},
	}
}
