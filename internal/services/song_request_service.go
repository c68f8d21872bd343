package services

import (
	"context"
	"strings"

	"wedding-site/internal/models"
	"wedding-site/internal/repositories"
)

type SongRequestService struct {
	SongRepo  *repositories.SongRequestRepository
	GuestRepo *repositories.GuestRepository
}

func NewSongRequestService(songRepo *repositories.SongRequestRepository, guestRepo *repositories.GuestRepository) *SongRequestService {
	return &SongRequestService{
		SongRepo:  songRepo,
		GuestRepo: guestRepo,
	}
}

// SubmitRequest validates and stores one song request
func (s *SongRequestService) SubmitRequest(ctx context.Context, req *models.CreateSongRequestRequest) (*models.SongRequest, error) {
	ve := &ValidationError{}

	if req.GuestID <= 0 {
		ve.add("guest_id", msgRequired)
	}
	if strings.TrimSpace(req.SongTitle) == "" {
		ve.add("song_title", msgRequired)
	}
	if strings.TrimSpace(req.Artist) == "" {
		ve.add("artist", msgRequired)
	}

	if !ve.ok() {
		return nil, ve
	}

	if _, err := s.GuestRepo.Get(ctx, req.GuestID); err != nil {
		return nil, ErrUnknownGuest
	}

	request := &models.SongRequest{
		GuestID:   req.GuestID,
		SongTitle: strings.TrimSpace(req.SongTitle),
		Artist:    strings.TrimSpace(req.Artist),
	}

	if err := s.SongRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// ListRequests returns every requested song for the couple's playlist export
func (s *SongRequestService) ListRequests(ctx context.Context) ([]models.SongRequest, error) {
	return s.SongRepo.List(ctx)
}
