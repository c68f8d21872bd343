package repositories

import (
	"context"

	"wedding-site/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RSVPRepository struct {
	DB *pgxpool.Pool
}

func NewRSVPRepository(db *pgxpool.Pool) *RSVPRepository {
	return &RSVPRepository{DB: db}
}

// Create inserts a new RSVP record
func (r *RSVPRepository) Create(ctx context.Context, rsvp *models.RSVP) error {
	query := `
		INSERT INTO rsvps(guest_id, wedding_selection, is_attending, additional_notes)
		VALUES($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return r.DB.QueryRow(ctx, query,
		rsvp.GuestID,
		rsvp.WeddingSelection,
		rsvp.IsAttending,
		rsvp.AdditionalNotes,
	).Scan(&rsvp.ID, &rsvp.CreatedAt)
}

// ListByGuest returns all RSVPs submitted for a guest, newest first.
// Uniqueness per guest is not enforced; the latest one wins for display.
func (r *RSVPRepository) ListByGuest(ctx context.Context, guestID int) ([]models.RSVP, error) {
	query := `
		SELECT id, guest_id, wedding_selection, is_attending, additional_notes, created_at
		FROM rsvps
		WHERE guest_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.Query(ctx, query, guestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rsvps := []models.RSVP{}
	for rows.Next() {
		var rv models.RSVP
		if err := rows.Scan(&rv.ID, &rv.GuestID, &rv.WeddingSelection, &rv.IsAttending, &rv.AdditionalNotes, &rv.CreatedAt); err != nil {
			return nil, err
		}
		rsvps = append(rsvps, rv)
	}

	return rsvps, rows.Err()
}
