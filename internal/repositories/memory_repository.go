package repositories

import (
	"context"

	"wedding-site/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MemoryRepository struct {
	DB *pgxpool.Pool
}

func NewMemoryRepository(db *pgxpool.Pool) *MemoryRepository {
	return &MemoryRepository{DB: db}
}

// Create inserts a shared memory. Memories are immutable once stored;
// there is no update path.
func (r *MemoryRepository) Create(ctx context.Context, memory *models.Memory) error {
	query := `
		INSERT INTO memories(guest_id, memory_text)
		VALUES($1, $2)
		RETURNING id, date_shared
	`

	return r.DB.QueryRow(ctx, query,
		memory.GuestID,
		memory.MemoryText,
	).Scan(&memory.ID, &memory.DateShared)
}

// ListAll returns every shared memory with the guest name joined in,
// oldest first so the carousel plays in submission order
func (r *MemoryRepository) ListAll(ctx context.Context) ([]models.Memory, error) {
	query := `
		SELECT m.id, m.guest_id, g.name, m.memory_text, m.date_shared
		FROM memories m
		JOIN guests g ON g.id = m.guest_id
		ORDER BY m.date_shared ASC
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memories := []models.Memory{}
	for rows.Next() {
		var m models.Memory
		if err := rows.Scan(&m.ID, &m.GuestID, &m.GuestName, &m.MemoryText, &m.DateShared); err != nil {
			return nil, err
		}
		memories = append(memories, m)
	}

	return memories, rows.Err()
}
