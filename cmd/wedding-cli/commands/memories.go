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

func MemoriesCommand(args []string) {
	if len(args) == 0 {
		printMemoriesUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "share":
		memoriesShare(args[1:])
	case "list":
		memoriesList()
	case "help", "-h", "--help":
		printMemoriesUsage()
	default:
		fmt.Printf("Unknown memories command: %s\n\n", args[0])
		printMemoriesUsage()
		os.Exit(1)
	}
}

func printMemoriesUsage() {
	fmt.Print(`wedding-cli memories - Share and browse memories

USAGE:
    wedding-cli memories <subcommand> [options]

SUBCOMMANDS:
    share       Share a memory (100 characters max)
    list        List every shared memory

OPTIONS (share):
    --guest-id <id>   Guest ID
    --text <text>     The memory to share

EXAMPLES:
    wedding-cli memories share --guest-id 3 --text "That trip to Lisbon!"
    wedding-cli memories list
`)
}

func memoriesShare(args []string) {
	fs := flag.NewFlagSet("memories share", flag.ExitOnError)
	guestID := fs.Int("guest-id", 0, "Guest ID")
	text := fs.String("text", "", "The memory to share")
	fs.Parse(args)

	if *guestID == 0 {
		fmt.Println("Error: --guest-id is required")
		os.Exit(1)
	}

	cli := newContext()
	cli.bootstrap()

	memory, err := cli.api.ShareMemory(context.Background(), &models.CreateMemoryRequest{
		GuestID:    *guestID,
		MemoryText: *text,
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

	fmt.Printf("✓ Memory shared (id %d)\n", memory.ID)
}

func memoriesList() {
	cli := newContext()
	cli.bootstrap()

	memories, err := cli.api.ListMemories(context.Background())
	if err != nil {
		exitOnAPIError(cli, err)
	}

	if len(memories) == 0 {
		fmt.Println("No memories shared yet.")
		return
	}
	for _, m := range memories {
		fmt.Printf("  %s  %s — %s\n", m.DateShared.Format("2006-01-02"), m.MemoryText, m.GuestName)
	}
}
