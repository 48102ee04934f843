package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/stitchline/garment-erp-go/internal/domain/worker"
	"github.com/stitchline/garment-erp-go/internal/pkg/database"
)

type WorkerServiceImpl struct {
	db *database.DB
	worker.WorkerRepository
}

func NewWorkerService(db *database.DB, workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{
		db:               db,
		WorkerRepository: workerRepo,
	}
}

// Create implements worker.WorkerService.
func (s *WorkerServiceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	created, err := s.WorkerRepository.Create(ctx, worker.Worker{
		FullName: req.FullName,
		Code:     req.Code,
		Phone:    req.Phone,
		IsActive: true,
		JoinedAt: parseDatePtr(req.JoinedAt),
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return mapWorkerToResponse(created), nil
}

// Get implements worker.WorkerService.
func (s *WorkerServiceImpl) Get(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.WorkerRepository.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return mapWorkerToResponse(w), nil
}

// List implements worker.WorkerService.
func (s *WorkerServiceImpl) List(ctx context.Context, filter worker.WorkerFilter) ([]worker.WorkerResponse, int64, error) {
	workers, total, err := s.WorkerRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list workers: %w", err)
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, mapWorkerToResponse(w))
	}

	return responses, total, nil
}

// Update implements worker.WorkerService.
func (s *WorkerServiceImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	existing, err := s.WorkerRepository.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.FullName != nil {
		existing.FullName = *req.FullName
	}
	if req.Phone != nil {
		existing.Phone = req.Phone
	}
	if req.JoinedAt != nil {
		existing.JoinedAt = parseDatePtr(req.JoinedAt)
	}

	if err := s.WorkerRepository.Update(ctx, existing); err != nil {
		return worker.WorkerResponse{}, err
	}

	return mapWorkerToResponse(existing), nil
}

// SetActive implements worker.WorkerService.
func (s *WorkerServiceImpl) SetActive(ctx context.Context, id string, active bool) error {
	return s.WorkerRepository.SetActive(ctx, id, active)
}

// SetPhoto implements worker.WorkerService.
func (s *WorkerServiceImpl) SetPhoto(ctx context.Context, id string, photoURL string) error {
	existing, err := s.WorkerRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	existing.PhotoURL = &photoURL
	return s.WorkerRepository.Update(ctx, existing)
}

func mapWorkerToResponse(w worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:       w.ID,
		FullName: w.FullName,
		Code:     w.Code,
		Phone:    w.Phone,
		IsActive: w.IsActive,
		PhotoURL: w.PhotoURL,
		JoinedAt: formatDatePtr(w.JoinedAt),
	}
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02")
	return &formatted
}
