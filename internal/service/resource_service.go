package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/erp-console/internal/domain"
	"github.com/spec-kit/erp-console/internal/events"
	"github.com/spec-kit/erp-console/internal/repository"
)

// ResourceService coordinates the CRUD operations of one resource: it runs
// the repository call and, on successful mutations, publishes a change event
// for the websocket feed and audit logging. Persistence to the snapshot file
// happens synchronously inside the repository's write path.
type ResourceService struct {
	resource   domain.Resource
	repo       repository.ResourceRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewResourceService constructs the service for one resource.
func NewResourceService(resource domain.Resource, repo repository.ResourceRepository, dispatcher events.Dispatcher, logger *zap.Logger) *ResourceService {
	return &ResourceService{
		resource:   resource,
		repo:       repo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Resource returns the descriptor this service is bound to.
func (s *ResourceService) Resource() domain.Resource {
	return s.resource
}

func (s *ResourceService) List(ctx context.Context) ([]domain.Record, error) {
	return s.repo.List(ctx)
}

func (s *ResourceService) Get(ctx context.Context, id string) (domain.Record, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ResourceService) Create(ctx context.Context, fields domain.Record) (domain.Record, error) {
	record, err := s.repo.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.ResourceCreated, record)
	return record, nil
}

func (s *ResourceService) Update(ctx context.Context, id string, fields domain.Record) (domain.Record, error) {
	record, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.ResourceUpdated, record)
	return record, nil
}

func (s *ResourceService) Delete(ctx context.Context, id string) (domain.Record, error) {
	record, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.ResourceDeleted, record)
	return record, nil
}

// ExportRows renders the full list as export headers plus stringified cells,
// in table column order.
func (s *ResourceService) ExportRows(ctx context.Context) (headers []string, rows [][]string, err error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	cols := s.resource.Columns()
	rows = make([][]string, 0, len(records))
	for _, record := range records {
		row := make([]string, len(cols))
		for i, col := range cols {
			if v := record[col]; v != nil {
				row[i] = fmt.Sprintf("%v", v)
			}
		}
		rows = append(rows, row)
	}
	return s.resource.ColumnLabels(), rows, nil
}

func (s *ResourceService) publish(ctx context.Context, eventType events.EventType, record domain.Record) {
	event := events.Event{
		Type:     eventType,
		Resource: s.resource.Name,
		ID:       record.ID(),
		Record:   record,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed",
			zap.String("resource", s.resource.Name),
			zap.Error(err))
	}
}
