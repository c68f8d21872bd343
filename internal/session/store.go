package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Flags are the session gates persisted between runs. They mirror what
// the browser frontend keeps in cookies: passed the password gate,
// finished registration, and the issued bearer token.
type Flags struct {
	IsAuthenticated   bool   `json:"is_authenticated"`
	IsGuestRegistered bool   `json:"is_guest_registered"`
	Token             string `json:"token,omitempty"`
}

// Store is a file-backed flag store. All mutation goes through the
// defined setters; there are no ad-hoc writes.
type Store struct {
	mu    sync.Mutex
	flags Flags
	file  string
}

// NewStore loads flags from filePath, starting empty when the file does
// not exist yet.
func NewStore(filePath string) (*Store, error) {
	s := &Store{file: filePath}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	if err := json.Unmarshal(data, &s.flags); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}

	return s, nil
}

// Flags returns a copy of the current flags
func (s *Store) Flags() Flags {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags
}

// SetAuthenticated records a passed password gate, with the issued
// token when the backend handed one out
func (s *Store) SetAuthenticated(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.IsAuthenticated = true
	s.flags.Token = token
	return s.save()
}

// SetRegistered records a fully completed guest registration. Callers
// must only invoke this when every entry of the batch succeeded.
func (s *Store) SetRegistered() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.IsGuestRegistered = true
	return s.save()
}

// Clear wipes all flags, forcing the user back through the password
// gate. Used after the backend rejects the stored token.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags = Flags{}
	return s.save()
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.file), 0o755); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	data, err := json.MarshalIndent(s.flags, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.file, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}
