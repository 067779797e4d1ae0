package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Duplicate(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Rename(ctx context.Context, args []string) error
	Hide(ctx context.Context, args []string) error
	Set(ctx context.Context, args []string) error
	Move(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
	Categories(ctx context.Context, args []string) error
	Layout(ctx context.Context, args []string) error
	Save(ctx context.Context) error
	Preview(ctx context.Context) error
}

// runREPL drives the editor loop: it reads a line from the scanner, parses
// the first token as the command and the rest as arguments, and dispatches to
// methods on 'a'. The loop exits on scanner EOF or when the user types "exit"
// or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("awarddeck %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, show, add, dup, del, rename, hide, set, move, upload, categories, layout, save, preview, exit")

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "add":
			_ = a.Add(ctx)

		case "dup":
			_ = a.Duplicate(ctx, args)

		case "del":
			_ = a.Delete(ctx, args)

		case "rename":
			_ = a.Rename(ctx, args)

		case "hide":
			_ = a.Hide(ctx, args)

		case "set":
			_ = a.Set(ctx, args)

		case "move":
			_ = a.Move(ctx, args)

		case "upload":
			_ = a.Upload(ctx, args)

		case "categories":
			_ = a.Categories(ctx, args)

		case "layout":
			_ = a.Layout(ctx, args)

		case "save":
			_ = a.Save(ctx)

		case "preview":
			_ = a.Preview(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
