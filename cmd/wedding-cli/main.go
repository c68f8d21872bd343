package main

import (
	"fmt"
	"os"

	"wedding-site/cmd/wedding-cli/commands"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "auth":
		commands.AuthCommand(os.Args[2:])
	case "guests":
		commands.GuestsCommand(os.Args[2:])
	case "rsvp":
		commands.RSVPCommand(os.Args[2:])
	case "songs":
		commands.SongsCommand(os.Args[2:])
	case "memories":
		commands.MemoriesCommand(os.Args[2:])
	case "version":
		fmt.Printf("wedding-cli version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`wedding-cli - Wedding site management CLI

USAGE:
    wedding-cli <command> [options]

COMMANDS:
    auth        Authenticate against the site (login, status, logout)
    guests      Register and list guests
    rsvp        Submit an RSVP
    songs       Request songs and list the playlist
    memories    Share and browse memories
    version     Print version information
    help        Show this help message

EXAMPLES:
    # Log in with the invitation password
    wedding-cli auth login

    # Register a batch of guests from a JSON file
    wedding-cli guests register guests.json

    # Search the guest list
    wedding-cli guests search "al"

    # Submit an RSVP
    wedding-cli rsvp submit --guest-id 3 --wedding BOTH --notes "Can't wait!"

    # Request a song
    wedding-cli songs request --guest-id 3 --title "Dancing Queen" --artist "ABBA"

    # Share a memory
    wedding-cli memories share --guest-id 3 --text "That trip to Lisbon!"

The API base URL is taken from WEDDING_API_URL (default http://localhost:8000).

For more information on a specific command, run:
    wedding-cli <command> --help
`)
}
