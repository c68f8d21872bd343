package repositories

import (
	"context"

	"wedding-site/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type GuestRepository struct {
	DB *pgxpool.Pool
}

func NewGuestRepository(db *pgxpool.Pool) *GuestRepository {
	return &GuestRepository{DB: db}
}

// Create inserts a new guest and fills in the backend-assigned identity
func (r *GuestRepository) Create(ctx context.Context, guest *models.Guest) error {
	query := `
		INSERT INTO guests(name, email, phone, dietary_restrictions, specific_dietary_restrictions)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	return r.DB.QueryRow(ctx, query,
		guest.Name,
		guest.Email,
		guest.Phone,
		guest.DietaryRestrictions,
		guest.SpecificDietaryRestrictions,
	).Scan(&guest.ID, &guest.CreatedAt)
}

// Get retrieves one guest by id
func (r *GuestRepository) Get(ctx context.Context, id int) (*models.Guest, error) {
	query := `
		SELECT id, name, email, phone, dietary_restrictions, specific_dietary_restrictions, created_at
		FROM guests
		WHERE id = $1
	`

	var guest models.Guest
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&guest.ID,
		&guest.Name,
		&guest.Email,
		&guest.Phone,
		&guest.DietaryRestrictions,
		&guest.SpecificDietaryRestrictions,
		&guest.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &guest, nil
}

// List returns the roster in name order, trimmed to id and name
func (r *GuestRepository) List(ctx context.Context) ([]models.GuestSummary, error) {
	query := `SELECT id, name FROM guests ORDER BY name ASC`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guests := []models.GuestSummary{}
	for rows.Next() {
		var g models.GuestSummary
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}

	return guests, rows.Err()
}

// ExistsByEmail reports whether a guest already registered with this email
func (r *GuestRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM guests WHERE LOWER(email) = LOWER($1))`

	var exists bool
	err := r.DB.QueryRow(ctx, query, email).Scan(&exists)
	return exists, err
}
