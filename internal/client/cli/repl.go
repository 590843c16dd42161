package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isSignedIn() bool
	SignUp(ctx context.Context) error
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Trip(ctx context.Context) error
	Search(ctx context.Context, text string) error
	Pin(ctx context.Context, lat, lon string) error
	Add(ctx context.Context, text string) error
	Remove(ctx context.Context, label string) error
	Locations(ctx context.Context) error
	Summary(ctx context.Context) error
	Tickets(ctx context.Context) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit".
//
// The first word is the command; for search, add and remove the rest of the
// line is the argument, so "add Buenos Aires" works. Handler errors are
// printed and the loop continues.
//
//	Signed out:  help, signup, signin, whoami, exit
//	Signed in:   help, whoami, trip, search, pin, add, remove, locations,
//	             summary, tickets, signout, exit
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("tb%s> ", prefixSpace(statusFn())))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		rest = strings.TrimSpace(rest)
		if cmd == "" {
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isSignedIn() {
				printlnFn("Available commands: whoami, trip, search <text>, pin <lat> <lon>, add [place], remove <place>, locations, summary, tickets, signout, exit")
			} else {
				printlnFn("Available commands: signup, signin, whoami, exit")
			}

		case "signup":
			cmdErr = a.SignUp(ctx)

		case "signin":
			cmdErr = a.SignIn(ctx)

		case "signout":
			cmdErr = a.SignOut(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "trip":
			cmdErr = a.Trip(ctx)

		case "search":
			cmdErr = a.Search(ctx, rest)

		case "pin":
			lat, lon, _ := strings.Cut(rest, " ")
			cmdErr = a.Pin(ctx, strings.TrimSpace(lat), strings.TrimSpace(lon))

		case "add":
			cmdErr = a.Add(ctx, rest)

		case "remove":
			if rest == "" {
				printlnFn("Usage: remove <place>")
				continue
			}
			cmdErr = a.Remove(ctx, rest)

		case "locations":
			cmdErr = a.Locations(ctx)

		case "summary":
			cmdErr = a.Summary(ctx)

		case "tickets":
			cmdErr = a.Tickets(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}

		if err != nil {
			return
		}
	}
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
