package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/challengehub/internal/logging"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	Password(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Challenges(ctx context.Context) error
	Joined(ctx context.Context) error
	Created(ctx context.Context) error
	Create(ctx context.Context) error
	Join(ctx context.Context, args []string) error
	Cancel(ctx context.Context, args []string) error
	Submit(ctx context.Context, args []string) error
	Badges(ctx context.Context) error
	Eligible(ctx context.Context) error
	Categories(ctx context.Context) error
	History(ctx context.Context) error
	Overview(ctx context.Context) error
	Users(ctx context.Context) error
	Ban(ctx context.Context, args []string) error
	Unban(ctx context.Context, args []string) error
	Review(ctx context.Context, args []string) error
}

const (
	helpAnonymous = "Available commands: register, login, exit"
	helpUser      = "Available commands: whoami, profile, password, delete-account, challenges, joined, created, create, " +
		"join <id>, cancel <id>, submit <id> <file>..., badges, eligible, categories, history, overview, logout, exit"
	helpAdmin = "Admin commands: users, ban <userID> <reason>, unban <userID>, " +
		"review <challengeID> <proofID> approve|reject [reason]"
)

// runREPL starts a simple read–eval–print loop for the challenge CLI.
//
// It reads a line from reader, parses the first token as the command and
// the rest as arguments, and dispatches to methods on 'a'. Unknown commands
// are reported back to the user. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn). "help" lists what is
// available: register and login when signed out; the account, challenge and
// badge commands when signed in; and the admin commands for ADMIN users.
//
// An error returned by a handler is printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ch %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		eof := err != nil

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if eof {
				return
			}
			continue
		}
		if !dispatch(ctx, a, parts[0], parts[1:]) || eof {
			return
		}
	}
}

// dispatch runs one command and reports whether the loop should go on.
func dispatch(ctx context.Context, a execIface, cmd string, args []string) bool {
	var err error
	ctx = logging.WithFields(ctx, "command", cmd)

	switch cmd {
	case "help":
		switch {
		case !a.isLoggedIn():
			printlnFn(helpAnonymous)
		case a.isAdmin():
			printlnFn(helpUser)
			printlnFn(helpAdmin)
		default:
			printlnFn(helpUser)
		}

	case "register":
		err = a.Register(ctx)
	case "login":
		err = a.Login(ctx)
	case "logout":
		err = a.Logout(ctx)
	case "whoami":
		err = a.WhoAmI(ctx)
	case "profile":
		err = a.Profile(ctx)
	case "password":
		err = a.Password(ctx)
	case "delete-account":
		err = a.DeleteAccount(ctx)

	case "challenges":
		err = a.Challenges(ctx)
	case "joined":
		err = a.Joined(ctx)
	case "created":
		err = a.Created(ctx)
	case "create":
		err = a.Create(ctx)
	case "join":
		err = a.Join(ctx, args)
	case "cancel":
		err = a.Cancel(ctx, args)
	case "submit":
		err = a.Submit(ctx, args)

	case "badges":
		err = a.Badges(ctx)
	case "eligible":
		err = a.Eligible(ctx)
	case "categories":
		err = a.Categories(ctx)
	case "history":
		err = a.History(ctx)
	case "overview":
		err = a.Overview(ctx)

	case "users":
		err = a.Users(ctx)
	case "ban":
		err = a.Ban(ctx, args)
	case "unban":
		err = a.Unban(ctx, args)
	case "review":
		err = a.Review(ctx, args)

	case "exit", "quit":
		printlnFn("Bye!")
		return false

	default:
		printlnFn("Unknown command:", cmd)
	}

	if err != nil {
		printlnFn("Error:", err)
	}
	return true
}

// usageError is returned by commands called with the wrong arguments.
type usageError string

func (u usageError) Error() string { return "usage: " + string(u) }
