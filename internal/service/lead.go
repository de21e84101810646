package service

import (
	"context"
	"errors"
	"time"

	"qrmenu/internal/domain"

	"github.com/google/uuid"
)

var ErrInvalidLead = errors.New("lead name and phone are required")

type LeadService struct {
	repo      LeadRepository
	publisher EventPublisher
}

func NewLeadService(repo LeadRepository, publisher EventPublisher) *LeadService {
	return &LeadService{repo: repo, publisher: publisher}
}

func (s *LeadService) Submit(ctx context.Context, lead *domain.Lead) error {
	if lead.Name == "" || lead.Phone == "" {
		return ErrInvalidLead
	}
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	if err := s.repo.InsertLead(lead); err != nil {
		return err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, domain.EventMessage{
			Type:      domain.EventNewLead,
			LeadID:    lead.ID,
			Timestamp: time.Now(),
		})
	}

	return nil
}

func (s *LeadService) List() ([]domain.Lead, error) {
	return s.repo.ListLeads()
}

var _ LeadServiceInterface = (*LeadService)(nil)
