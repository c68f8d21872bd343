package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func AuthCommand(args []string) {
	if len(args) == 0 {
		printAuthUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "login":
		authLogin(args[1:])
	case "status":
		authStatus()
	case "logout":
		authLogout()
	case "help", "-h", "--help":
		printAuthUsage()
	default:
		fmt.Printf("Unknown auth command: %s\n\n", args[0])
		printAuthUsage()
		os.Exit(1)
	}
}

func printAuthUsage() {
	fmt.Print(`wedding-cli auth - Authenticate against the site

USAGE:
    wedding-cli auth <subcommand>

SUBCOMMANDS:
    login [password]   Enter the invitation password (prompts if omitted)
    status             Show the stored session state
    logout             Forget the stored session

EXAMPLES:
    wedding-cli auth login
    wedding-cli auth status
`)
}

func authLogin(args []string) {
	var password string
	if len(args) > 0 {
		password = args[0]
	} else {
		fmt.Print("Password: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Printf("Error: failed to read password: %v\n", err)
			os.Exit(1)
		}
		password = strings.TrimSpace(line)
	}

	cli := newContext()
	cli.bootstrap()

	resp, err := cli.api.EnterPassword(context.Background(), password)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if !resp.IsAuthenticated {
		fmt.Println("Incorrect password. Please try again.")
		os.Exit(1)
	}

	if err := cli.store.SetAuthenticated(resp.Token); err != nil {
		fmt.Printf("Error: failed to save session: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✓ Authenticated")
}

func authStatus() {
	cli := newContext()
	flags := cli.store.Flags()

	fmt.Printf("Authenticated:     %v\n", flags.IsAuthenticated)
	fmt.Printf("Guest registered:  %v\n", flags.IsGuestRegistered)

	if flags.Token == "" {
		return
	}

	cli.bootstrap()
	ok, err := cli.api.AuthStatus(context.Background())
	if err != nil {
		fmt.Printf("Server check:      failed (%v)\n", err)
		return
	}
	fmt.Printf("Server check:      %v\n", ok)
}

func authLogout() {
	cli := newContext()
	if err := cli.store.Clear(); err != nil {
		fmt.Printf("Error: failed to clear session: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✓ Session cleared")
}
