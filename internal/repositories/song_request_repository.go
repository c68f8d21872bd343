package repositories

import (
	"context"

	"wedding-site/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SongRequestRepository struct {
	DB *pgxpool.Pool
}

func NewSongRequestRepository(db *pgxpool.Pool) *SongRequestRepository {
	return &SongRequestRepository{DB: db}
}

// Create inserts a new song request
func (r *SongRequestRepository) Create(ctx context.Context, req *models.SongRequest) error {
	query := `
		INSERT INTO song_requests(guest_id, song_title, artist)
		VALUES($1, $2, $3)
		RETURNING id, created_at
	`

	return r.DB.QueryRow(ctx, query,
		req.GuestID,
		req.SongTitle,
		req.Artist,
	).Scan(&req.ID, &req.CreatedAt)
}

// List returns every requested song, oldest first
func (r *SongRequestRepository) List(ctx context.Context) ([]models.SongRequest, error) {
	query := `
		SELECT id, guest_id, song_title, artist, created_at
		FROM song_requests
		ORDER BY created_at ASC
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []models.SongRequest{}
	for rows.Next() {
		var sr models.SongRequest
		if err := rows.Scan(&sr.ID, &sr.GuestID, &sr.SongTitle, &sr.Artist, &sr.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, sr)
	}

	return requests, rows.Err()
}
