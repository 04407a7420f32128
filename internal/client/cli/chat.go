package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// defaultListPattern matches every account.
const defaultListPattern = ".*"

// Send delivers a message. Usage: send <recipient> [message...]; a missing
// message is prompted for.
func (a *App) Send(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: send <recipient> [message]")
	}
	recipient := args[0]

	message := strings.Join(args[1:], " ")
	if message == "" {
		var err error
		if message, err = getSimpleText(a.reader, "Message for "+recipient, a.out); err != nil {
			return err
		}
	}

	if err := a.client.SendMessage(ctx, recipient, message); err != nil {
		return err
	}
	a.printf("Sent\n")
	return nil
}

// List prints account names. Usage: list [pattern] [limit].
func (a *App) List(ctx context.Context, args []string) error {
	pattern := defaultListPattern
	limit := 0
	if len(args) > 0 {
		pattern = args[0]
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return fmt.Errorf("usage: list [pattern] [limit]")
		}
		limit = n
	}

	names, err := a.client.ListAccounts(ctx, limit, pattern)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		a.printf("No accounts match %q\n", pattern)
		return nil
	}
	for _, n := range names {
		a.printf("  %s\n", n)
	}
	return nil
}
