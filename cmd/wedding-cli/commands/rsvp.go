package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"wedding-site/internal/client"
	"wedding-site/internal/models"
)

func RSVPCommand(args []string) {
	if len(args) == 0 {
		printRSVPUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "submit":
		rsvpSubmit(args[1:])
	case "help", "-h", "--help":
		printRSVPUsage()
	default:
		fmt.Printf("Unknown rsvp command: %s\n\n", args[0])
		printRSVPUsage()
		os.Exit(1)
	}
}

func printRSVPUsage() {
	fmt.Print(`wedding-cli rsvp - Submit an RSVP

USAGE:
    wedding-cli rsvp submit [options]

OPTIONS:
    --guest-id <id>       Guest ID (see 'wedding-cli guests search')
    --wedding <choice>    ENG, AUS or BOTH
    --not-attending       Decline instead of attend
    --notes <text>        Additional notes

EXAMPLES:
    wedding-cli rsvp submit --guest-id 3 --wedding BOTH
    wedding-cli rsvp submit --guest-id 3 --wedding ENG --not-attending --notes "Sorry!"
`)
}

func rsvpSubmit(args []string) {
	fs := flag.NewFlagSet("rsvp submit", flag.ExitOnError)
	guestID := fs.Int("guest-id", 0, "Guest ID")
	wedding := fs.String("wedding", "", "Wedding selection (ENG, AUS or BOTH)")
	notAttending := fs.Bool("not-attending", false, "Decline instead of attend")
	notes := fs.String("notes", "", "Additional notes")
	fs.Parse(args)

	if *guestID == 0 {
		fmt.Println("Error: --guest-id is required")
		os.Exit(1)
	}

	cli := newContext()
	cli.bootstrap()

	rsvp, err := cli.api.SubmitRSVP(context.Background(), &models.CreateRSVPRequest{
		GuestID:          *guestID,
		WeddingSelection: *wedding,
		IsAttending:      !*notAttending,
		AdditionalNotes:  *notes,
	})
	if err != nil {
		var valErr *client.ValidationError
		if errors.As(err, &valErr) {
			fmt.Println("Validation failed:")
			for field := range valErr.Fields {
				fmt.Printf("  %s: %s\n", field, valErr.Fields.Display(field))
			}
			os.Exit(1)
		}
		exitOnAPIError(cli, err)
	}

	fmt.Printf("✓ RSVP recorded (id %d)\n", rsvp.ID)
}
