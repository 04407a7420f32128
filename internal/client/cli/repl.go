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
	isLoggedIn() bool
	CreateAccount(ctx context.Context) error
	Login(ctx context.Context) error
	Send(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Delete(ctx context.Context) error
}

// runREPL starts a read–eval–print loop for the GophChat client.
//
// Commands
//
//	Not logged in:
//	  - help                        show available commands
//	  - create | register           create an account
//	  - login                       authenticate
//	  - exit | quit                 leave the program
//
//	Logged in, additionally:
//	  - send <user> [message]       send a message
//	  - list [pattern] [limit]      list accounts matching a regex
//	  - delete                      delete the current account
//
// Messages for the logged-in user are printed as they arrive. Command errors
// are printed and the loop continues. The loop exits on EOF or exit/quit.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("gc> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: send, (l)ist, delete, login, create, exit")
			} else {
				printlnFn("Available commands: create, login, exit")
			}

		case "create", "register":
			cmdErr = a.CreateAccount(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "send":
			cmdErr = a.Send(ctx, args)

		case "l", "list":
			cmdErr = a.List(ctx, args)

		case "delete":
			cmdErr = a.Delete(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
	}
}
