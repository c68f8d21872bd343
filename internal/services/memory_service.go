package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"wedding-site/internal/models"
	"wedding-site/internal/repositories"
)

type MemoryService struct {
	MemoryRepo *repositories.MemoryRepository
	GuestRepo  *repositories.GuestRepository
}

func NewMemoryService(memoryRepo *repositories.MemoryRepository, guestRepo *repositories.GuestRepository) *MemoryService {
	return &MemoryService{
		MemoryRepo: memoryRepo,
		GuestRepo:  guestRepo,
	}
}

// ShareMemory validates and stores one memory, returning it with the
// guest name filled in for display
func (s *MemoryService) ShareMemory(ctx context.Context, req *models.CreateMemoryRequest) (*models.Memory, error) {
	ve := &ValidationError{}

	text := strings.TrimSpace(req.MemoryText)

	if req.GuestID <= 0 {
		ve.add("guest_id", msgRequired)
	}
	if text == "" {
		ve.add("memory_text", msgRequired)
	} else if utf8.RuneCountInString(text) > models.MaxMemoryTextLength {
		ve.add("memory_text", msgTooLong)
	}

	if !ve.ok() {
		return nil, ve
	}

	guest, err := s.GuestRepo.Get(ctx, req.GuestID)
	if err != nil {
		return nil, ErrUnknownGuest
	}

	memory := &models.Memory{
		GuestID:    req.GuestID,
		GuestName:  guest.Name,
		MemoryText: text,
	}

	if err := s.MemoryRepo.Create(ctx, memory); err != nil {
		return nil, err
	}

	return memory, nil
}

// ListMemories returns every shared memory in submission order
func (s *MemoryService) ListMemories(ctx context.Context) ([]models.Memory, error) {
	return s.MemoryRepo.ListAll(ctx)
}
