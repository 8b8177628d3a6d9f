package status

import (
	"context"
	"errors"
	"fmt"
	"go-order-relay/src/infrastructure/log"
	"go-order-relay/src/services/order/domain/persistence"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrClientNameRequired = errors.New("client_name is required")

type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

type Repository interface {
	Insert(ctx context.Context, check persistence.StatusCheckDocument) error
	List(ctx context.Context) ([]persistence.StatusCheckDocument, error)
}

// StatusService keeps the legacy client status-check log.
type StatusService interface {
	Create(ctx context.Context, clientName string) (*StatusCheck, error)
	List(ctx context.Context) ([]StatusCheck, error)
}

type statusService struct {
	logger     log.Logger
	repository Repository
	now        func() time.Time
}

func NewStatusService(logger log.Logger, repository Repository) *statusService {
	return &statusService{
		logger:     logger,
		repository: repository,
		now:        time.Now,
	}
}

func (s *statusService) Create(ctx context.Context, clientName string) (*StatusCheck, error) {
	if strings.TrimSpace(clientName) == "" {
		return nil, ErrClientNameRequired
	}

	check := StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  s.now().UTC(),
	}
	if err := s.repository.Insert(ctx, persistence.StatusCheckDocument(check)); err != nil {
		s.logger.Exception(ctx, "Failed to store status check", err)
		return nil, fmt.Errorf("failed to create status check: %w", err)
	}
	return &check, nil
}

func (s *statusService) List(ctx context.Context) ([]StatusCheck, error) {
	docs, err := s.repository.List(ctx)
	if err != nil {
		s.logger.Exception(ctx, "Failed to list status checks", err)
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}

	checks := make([]StatusCheck, 0, len(docs))
	for _, doc := range docs {
		checks = append(checks, StatusCheck(doc))
	}
	return checks, nil
}
