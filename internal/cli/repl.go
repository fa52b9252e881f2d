package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a recording stub.
type execIface interface {
	isLoggedIn() bool
	fail(err error)

	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Refresh(ctx context.Context) error

	Gallery(ctx context.Context) error
	Open(ctx context.Context, args []string) error
	Thumb(ctx context.Context, args []string) error
	Background(ctx context.Context, args []string) error
}

const (
	guestHelp = "Available commands: signup (register), login, help, exit"
	userHelp  = "Available commands: (l)ist, show [n], next, prev, add, edit, delete, " +
		"gallery, open <path>, thumb <path>, background [path], refresh, logout, help, exit"
)

// guestCommands work without a session.
var guestCommands = map[string]bool{
	"help": true, "signup": true, "register": true, "login": true, "exit": true, "quit": true,
}

// runREPL reads commands from reader until end of input, "exit" or "quit",
// writing prompts to w. The first word selects the command, the rest are its
// arguments. Errors returned by commands are reported and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if err := ctx.Err(); err != nil {
			return
		}

		fmt.Fprintf(w, "mb%s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if !a.isLoggedIn() && !guestCommands[cmd] {
			if knownCommand(cmd) {
				fmt.Fprintln(w, "Please log in first")
			} else {
				fmt.Fprintf(w, "Unknown command: %s\n", cmd)
			}
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, userHelp)
			} else {
				fmt.Fprintln(w, guestHelp)
			}

		case "signup", "register":
			cmdErr = a.Signup(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)

		case "l", "list":
			cmdErr = a.List(ctx)
		case "show":
			cmdErr = a.Show(ctx, args)
		case "next":
			cmdErr = a.Next(ctx)
		case "prev":
			cmdErr = a.Prev(ctx)
		case "add":
			cmdErr = a.Add(ctx)
		case "edit":
			cmdErr = a.Edit(ctx)
		case "delete":
			cmdErr = a.Delete(ctx)
		case "refresh":
			cmdErr = a.Refresh(ctx)

		case "gallery":
			cmdErr = a.Gallery(ctx)
		case "open":
			cmdErr = a.Open(ctx, args)
		case "thumb":
			cmdErr = a.Thumb(ctx, args)
		case "background":
			cmdErr = a.Background(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintf(w, "Unknown command: %s\n", cmd)
		}

		if cmdErr != nil {
			a.fail(cmdErr)
		}
	}
}

func knownCommand(cmd string) bool {
	switch cmd {
	case "logout", "l", "list", "show", "next", "prev", "add", "edit", "delete", "refresh",
		"gallery", "open", "thumb", "background":
		return true
	}
	return false
}
