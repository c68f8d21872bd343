package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"wedding-site/internal/client"
	"wedding-site/internal/session"

	"github.com/rs/zerolog"
)

const defaultAPIURL = "http://localhost:8000"

// cliContext bundles what every command needs: the API client with the
// security token already bootstrapped and the persisted session flags.
type cliContext struct {
	api   *client.Client
	store *session.Store
}

func newContext() *cliContext {
	baseURL := os.Getenv("WEDDING_API_URL")
	if baseURL == "" {
		baseURL = defaultAPIURL
	}

	logger := zerolog.New(os.Stderr).Level(zerolog.WarnLevel)
	if os.Getenv("WEDDING_DEBUG") != "" {
		logger = logger.Level(zerolog.DebugLevel)
	}

	api, err := client.New(baseURL, logger)
	if err != nil {
		fmt.Printf("Error: failed to create API client: %v\n", err)
		os.Exit(1)
	}

	store, err := session.NewStore(sessionFilePath())
	if err != nil {
		fmt.Printf("Error: failed to load session: %v\n", err)
		os.Exit(1)
	}

	if token := store.Flags().Token; token != "" {
		api.SetToken(token)
	}

	return &cliContext{api: api, store: store}
}

func sessionFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wedding-cli-session.json"
	}
	return filepath.Join(home, ".config", "wedding-cli", "session.json")
}

// bootstrap fetches the CSRF token; every mutating command calls this
// before talking to the API
func (c *cliContext) bootstrap() {
	if err := c.api.InitializeSecurity(context.Background()); err != nil {
		fmt.Printf("Error: failed to reach the site at %s: %v\n", c.api.BaseURL(), err)
		os.Exit(1)
	}
}
