package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"wedding-site/internal/client"
	"wedding-site/internal/registration"
	"wedding-site/internal/roster"

	"github.com/rs/zerolog"
)

func GuestsCommand(args []string) {
	if len(args) == 0 {
		printGuestsUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "register":
		guestsRegister(args[1:])
	case "list":
		guestsList()
	case "search":
		guestsSearch(args[1:])
	case "help", "-h", "--help":
		printGuestsUsage()
	default:
		fmt.Printf("Unknown guests command: %s\n\n", args[0])
		printGuestsUsage()
		os.Exit(1)
	}
}

func printGuestsUsage() {
	fmt.Print(`wedding-cli guests - Register and list guests

USAGE:
    wedding-cli guests <subcommand> [options]

SUBCOMMANDS:
    register <file>   Register a batch of guests from a JSON file
    list              List all registered guests
    search <query>    Search guests by name substring

The register file is a JSON array of guest entries:
    [
      {
        "name": "Alice Example",
        "email": "alice@example.com",
        "phone": "+441234567890",
        "dietary_restrictions": "VEG",
        "specific_dietary_restrictions": ""
      }
    ]

EXAMPLES:
    wedding-cli guests register guests.json
    wedding-cli guests search "al"
`)
}

// guestEntry mirrors the wire field names so register files read the
// same as the API payloads
type guestEntry struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Dietary  string `json:"dietary_restrictions"`
	Specific string `json:"specific_dietary_restrictions"`
}

func guestsRegister(args []string) {
	if len(args) < 1 {
		fmt.Println("Error: register requires a JSON file argument")
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("Error: failed to read %s: %v\n", args[0], err)
		os.Exit(1)
	}

	var entries []guestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		fmt.Printf("Error: failed to parse %s: %v\n", args[0], err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("Error: the file contains no guest entries")
		os.Exit(1)
	}

	form := registration.NewForm()
	for i := 1; i < len(entries); i++ {
		form.Append()
	}
	for i, e := range entries {
		form.SetField(i, registration.FieldName, e.Name)
		form.SetField(i, registration.FieldEmail, e.Email)
		form.SetField(i, registration.FieldPhone, e.Phone)
		if e.Dietary != "" {
			form.SetField(i, registration.FieldDietary, e.Dietary)
		}
		form.SetField(i, registration.FieldSpecific, e.Specific)
	}

	cli := newContext()
	cli.bootstrap()

	logger := zerolog.New(os.Stderr).Level(zerolog.WarnLevel)
	submitter := registration.NewSubmitter(cli.api, logger)
	result := submitter.Submit(context.Background(), form)

	for i, entry := range result.Entries {
		name := form.Drafts[i].Name
		switch {
		case entry.OK:
			fmt.Printf("  ✓ %s (id %d)\n", entry.Guest.Name, entry.Guest.ID)
		case !entry.Attempted:
			fmt.Printf("  ⊘ %s (skipped)\n", name)
		default:
			fmt.Printf("  ✗ %s: %s\n", name, draftErrors(&form.Drafts[i]))
		}
	}

	if result.AuthFailure {
		cli.api.ClearToken()
		if err := cli.store.Clear(); err != nil {
			fmt.Printf("Error: failed to clear session: %v\n", err)
		}
		fmt.Println("\nYour session expired. Please run 'wedding-cli auth login' and try again.")
		os.Exit(1)
	}

	if !result.Complete() {
		fmt.Println("\nSome entries failed; fix them and register again.")
		os.Exit(1)
	}

	if err := cli.store.SetRegistered(); err != nil {
		fmt.Printf("Error: failed to save session: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\n✓ Registered %d guest(s)\n", len(result.Entries))
}

func draftErrors(d *registration.Draft) string {
	var parts []string
	if d.GeneralError != "" {
		parts = append(parts, d.GeneralError)
	}
	for field, msg := range d.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

func guestsList() {
	cli := newContext()
	cli.bootstrap()

	guests, err := cli.api.ListGuests(context.Background())
	if err != nil {
		exitOnAPIError(cli, err)
	}

	if len(guests) == 0 {
		fmt.Println("No guests registered yet.")
		return
	}
	for _, g := range guests {
		fmt.Printf("  %4d  %s\n", g.ID, g.Name)
	}
}

func guestsSearch(args []string) {
	if len(args) < 1 {
		fmt.Println("Error: search requires a query argument")
		os.Exit(1)
	}

	cli := newContext()
	cli.bootstrap()

	guests, err := cli.api.ListGuests(context.Background())
	if err != nil {
		exitOnAPIError(cli, err)
	}

	matches := roster.Filter(guests, args[0])
	if len(matches) == 0 {
		fmt.Println("No matching guests found")
		return
	}
	for _, g := range matches {
		fmt.Printf("  %4d  %s\n", g.ID, g.Name)
	}
}

// exitOnAPIError prints the error and, on an auth failure, clears the
// stored session so the next run starts from the password gate
func exitOnAPIError(cli *cliContext, err error) {
	var authErr *client.AuthError
	if errors.As(err, &authErr) {
		cli.api.ClearToken()
		_ = cli.store.Clear()
		fmt.Println("Your session expired. Please run 'wedding-cli auth login' and try again.")
		os.Exit(1)
	}
	fmt.Printf("Error: %v\n", err)
	os.Exit(1)
}
