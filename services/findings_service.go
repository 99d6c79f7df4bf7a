package services

import (
	"context"
	"time"

	"biograph/domain"
	"biograph/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validateFinding = validator.New()

// FindingsService is the write path to the knowledge store. It shares
// no state with the session engine; a contributed finding only becomes
// visible to conversations through the backend the provider talks to.
type FindingsService struct {
	findings repositories.IFindingRepository
}

func NewFindingsService(findings repositories.IFindingRepository) *FindingsService {
	return &FindingsService{findings: findings}
}

// Submit validates and persists one finding, returning its assigned ID.
func (s *FindingsService) Submit(finding domain.Finding) (uuid.UUID, error) {
	if err := validateFinding.Struct(finding); err != nil {
		return uuid.Nil, err
	}

	finding.ID = uuid.New()
	finding.SubmittedAt = time.Now().UTC()
	if err := s.findings.Store(finding); err != nil {
		return uuid.Nil, err
	}
	return finding.ID, nil
}

func (s *FindingsService) Search(ctx context.Context, terms string, limit int) ([]domain.Finding, error) {
	return s.findings.Search(ctx, terms, limit)
}

func (s *FindingsService) Recent(limit int) ([]domain.Finding, error) {
	return s.findings.List(limit)
}
