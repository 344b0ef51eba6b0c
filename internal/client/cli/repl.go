package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ethiocareer/careercli/internal/client/guard"
	"github.com/ethiocareer/careercli/internal/client/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// command is one REPL verb. A command with a route opens that page and
// is checked against the route table before it runs; "{id}" in the
// route is filled from the first argument.
type command struct {
	name  string
	usage string
	help  string
	route string
	run   func(ctx context.Context, args []string) error
}

// shell is the surface the REPL needs. App satisfies it; tests provide
// a lightweight stub.
type shell interface {
	commands() []command
	snapshot() session.Session
	goTo(path string)
	report(err error)
}

// runREPL reads a line from reader, parses the first token as the
// command and dispatches it. The loop exits on EOF, on "exit"/"quit" or
// when ctx is done.
func runREPL(ctx context.Context, sh shell, statusFn func() string, reader *bufio.Reader) {
	index := make(map[string]command)
	for _, c := range sh.commands() {
		index[c.name] = c
	}

	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("career %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := strings.ToLower(parts[0]), parts[1:]

		switch name {
		case "help", "?":
			printHelp(sh, args)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		cmd, ok := index[name]
		if !ok {
			printlnFn("Unknown command:", name, "(type 'help')")
			continue
		}
		if !allowed(sh, cmd, args) {
			continue
		}
		if err := cmd.run(ctx, args); err != nil {
			sh.report(err)
		}
	}
}

// allowed runs the route check of cmd and performs the redirect when the
// page may not be rendered.
func allowed(sh shell, cmd command, args []string) bool {
	if cmd.route == "" {
		return true
	}
	path := cmd.route
	if strings.Contains(path, "{id}") {
		if len(args) == 0 {
			printlnFn("Usage:", cmd.usage)
			return false
		}
		path = strings.Replace(path, "{id}", args[0], 1)
	}

	d, ok := guard.Check(sh.snapshot(), path)
	if !ok {
		printlnFn("Page not found:", path)
		return false
	}
	switch d.Outcome {
	case guard.RedirectLogin:
		printlnFn("Please login to continue.")
		sh.goTo(d.Target)
		return false
	case guard.RedirectHome:
		printlnFn("You don't have access to " + path + ".")
		sh.goTo(d.Target)
		return false
	}
	sh.goTo(path)
	return true
}

// printHelp lists the commands whose page the session may open, or the
// usage of one command.
func printHelp(sh shell, args []string) {
	s := sh.snapshot()
	if len(args) > 0 {
		for _, c := range sh.commands() {
			if c.name == strings.ToLower(args[0]) {
				printlnFn(fmt.Sprintf("%s: %s", c.usage, c.help))
				return
			}
		}
		printlnFn("Unknown command:", args[0])
		return
	}

	printlnFn("Available commands:")
	for _, c := range sh.commands() {
		if c.route != "" {
			if d, ok := guard.Check(s, strings.Replace(c.route, "{id}", "0", 1)); !ok || d.Outcome != guard.Render {
				continue
			}
		}
		printlnFn(fmt.Sprintf("  %-34s %s", c.usage, c.help))
	}
	printlnFn(fmt.Sprintf("  %-34s %s", "help [command]", "show help"))
	printlnFn(fmt.Sprintf("  %-34s %s", "exit | quit", "leave the program"))
}
