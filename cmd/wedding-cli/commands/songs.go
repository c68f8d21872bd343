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

func SongsCommand(args []string) {
	if len(args) == 0 {
		printSongsUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "request":
		songsRequest(args[1:])
	case "list":
		songsList()
	case "help", "-h", "--help":
		printSongsUsage()
	default:
		fmt.Printf("Unknown songs command: %s\n\n", args[0])
		printSongsUsage()
		os.Exit(1)
	}
}

func printSongsUsage() {
	fmt.Print(`wedding-cli songs - Request songs and list the playlist

USAGE:
    wedding-cli songs <subcommand> [options]

SUBCOMMANDS:
    request     Request a song for the playlist
    list        List all requested songs

OPTIONS (request):
    --guest-id <id>   Guest ID
    --title <text>    Song title
    --artist <text>   Artist

EXAMPLES:
    wedding-cli songs request --guest-id 3 --title "Dancing Queen" --artist "ABBA"
    wedding-cli songs list
`)
}

func songsRequest(args []string) {
	fs := flag.NewFlagSet("songs request", flag.ExitOnError)
	guestID := fs.Int("guest-id", 0, "Guest ID")
	title := fs.String("title", "", "Song title")
	artist := fs.String("artist", "", "Artist")
	fs.Parse(args)

	if *guestID == 0 {
		fmt.Println("Error: --guest-id is required")
		os.Exit(1)
	}

	cli := newContext()
	cli.bootstrap()

	song, err := cli.api.SubmitSongRequest(context.Background(), &models.CreateSongRequestRequest{
		GuestID:   *guestID,
		SongTitle: *title,
		Artist:    *artist,
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

	fmt.Printf("✓ Song request recorded (id %d)\n", song.ID)
}

func songsList() {
	cli := newContext()
	cli.bootstrap()

	songs, err := cli.api.ListSongRequests(context.Background())
	if err != nil {
		exitOnAPIError(cli, err)
	}

	if len(songs) == 0 {
		fmt.Println("No songs requested yet.")
		return
	}
	for _, s := range songs {
		fmt.Printf("  %4d  %s — %s\n", s.ID, s.SongTitle, s.Artist)
	}
}
