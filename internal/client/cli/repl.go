package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printFn and printlnFn are test seams for REPL output.
var (
	printFn   = fmt.Print
	printlnFn = fmt.Println
)

// command is one REPL verb. route is the location the command lives at; an
// empty route means the command runs anywhere.
type command struct {
	name    string
	route   string
	usage   string
	help    string
	minArgs int
	run     func(ctx context.Context, args []string) error
}

// shell is the surface runREPL drives. App implements it; tests use a stub.
type shell interface {
	prompt() string
	lookup(name string) (command, bool)
	enter(ctx context.Context, route string) bool
	report(err error)
}

// runREPL reads commands line by line until EOF, "exit" or "quit". It
// reads from the same reader the commands use for their prompts, so scripted
// input stays in order.
//
// For every known command it first asks the shell to enter the command's
// route; a denied entry (e.g. a protected route while signed out) skips the
// command. Command errors are handed to shell.report and never stop the loop.
func runREPL(ctx context.Context, sh shell, reader *bufio.Reader) {
	for {
		printFn(sh.prompt())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			printlnFn()
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		if name == "exit" || name == "quit" {
			printlnFn("Bye!")
			return
		}

		cmd, ok := sh.lookup(name)
		if !ok {
			printlnFn("Unknown command:", name, "(type 'help')")
			continue
		}
		if len(args) < cmd.minArgs {
			printlnFn("Usage:", cmd.usage)
			continue
		}
		if !sh.enter(ctx, cmd.route) {
			continue
		}
		if err := cmd.run(ctx, args); err != nil {
			sh.report(err)
		}
		if ctx.Err() != nil {
			return
		}
	}
}
