package models

import "time"

type SongRequest struct {
	ID        int       `json:"id"`
	GuestID   int       `json:"guest_id"`
	SongTitle string    `json:"song_title"`
	Artist    string    `json:"artist"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSongRequestRequest is the request body for POST /api/songrequests/
type CreateSongRequestRequest struct {
	GuestID   int    `json:"guest_id"`
	SongTitle string `json:"song_title"`
	Artist    string `json:"artist"`
}
