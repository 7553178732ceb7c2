package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App implements
// it; tests use a stub.
type execIface interface {
	isLoggedIn() bool
	fail(err error)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Create(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Mine(ctx context.Context) error
	Show(ctx context.Context, contentID string) error

	Invest(ctx context.Context, contentID, amount string) error
	Pending(ctx context.Context) error
	MyRequests(ctx context.Context) error
	Approve(ctx context.Context, requestID string) error
	Reject(ctx context.Context, requestID string) error
	Resume(ctx context.Context, requestID string) error
	Stakes(ctx context.Context, contentID string) error
	Portfolio(ctx context.Context) error

	Chain(ctx context.Context, contentID string) error
	Verify(ctx context.Context, contentID string) error
	Resync(ctx context.Context, contentID string) error
	Compare(ctx context.Context, contentID string) error
}

// usage lists commands that take arguments, with their minimum count.
var usage = map[string]struct {
	args int
	text string
}{
	"show":    {1, "show <content-id>"},
	"invest":  {2, "invest <content-id> <amount>"},
	"approve": {1, "approve <request-id>"},
	"reject":  {1, "reject <request-id>"},
	"resume":  {1, "resume <request-id>"},
	"stakes":  {1, "stakes <content-id>"},
	"chain":   {1, "chain <content-id>"},
	"verify":  {1, "verify <content-id>"},
	"resync":  {1, "resync <content-id>"},
	"compare": {1, "compare <content-id>"},
}

const (
	helpGuest    = "Available commands: register, login, exit"
	helpLoggedIn = `Available commands:
  create [media-file]           publish a content item
  list | mine                   browse the catalog or your own items
  show <content-id>             show an item with its stakes
  invest <content-id> <amount>  ask to join an item's funding pool
  pending                       requests waiting for your vote
  myrequests                    your own join requests
  approve | reject | resume <request-id>
  stakes | chain <content-id>   holdings and settlement history
  verify | resync | compare <content-id>
  portfolio                     cash, stakes and dividends
  logout, exit`
)

// runREPL reads commands from reader until EOF or "exit"/"quit" and
// dispatches them to a. Command errors are reported through a.fail and do
// not stop the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("cofund %s> ", statusFn()))
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
		if quit := dispatch(ctx, a, parts[0], parts[1:]); quit || eof {
			return
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) bool {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpGuest)
		}
		return false
	case "register":
		report(a, a.Register(ctx))
		return false
	case "login":
		report(a, a.Login(ctx))
		return false
	case "exit", "quit":
		printlnFn("Bye!")
		return true
	}

	if u, ok := usage[cmd]; ok && len(args) < u.args {
		printlnFn("Usage:", u.text)
		return false
	}

	var run func() error
	switch cmd {
	case "logout":
		run = func() error { return a.Logout(ctx) }
	case "create":
		run = func() error { return a.Create(ctx, args) }
	case "l", "list":
		run = func() error { return a.List(ctx) }
	case "mine":
		run = func() error { return a.Mine(ctx) }
	case "show":
		run = func() error { return a.Show(ctx, args[0]) }
	case "invest":
		run = func() error { return a.Invest(ctx, args[0], args[1]) }
	case "pending":
		run = func() error { return a.Pending(ctx) }
	case "myrequests":
		run = func() error { return a.MyRequests(ctx) }
	case "approve":
		run = func() error { return a.Approve(ctx, args[0]) }
	case "reject":
		run = func() error { return a.Reject(ctx, args[0]) }
	case "resume":
		run = func() error { return a.Resume(ctx, args[0]) }
	case "stakes":
		run = func() error { return a.Stakes(ctx, args[0]) }
	case "portfolio":
		run = func() error { return a.Portfolio(ctx) }
	case "chain":
		run = func() error { return a.Chain(ctx, args[0]) }
	case "verify":
		run = func() error { return a.Verify(ctx, args[0]) }
	case "resync":
		run = func() error { return a.Resync(ctx, args[0]) }
	case "compare":
		run = func() error { return a.Compare(ctx, args[0]) }
	default:
		printlnFn("Unknown command:", cmd)
		return false
	}

	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return false
	}
	report(a, run())
	return false
}

func report(a execIface, err error) {
	if err != nil {
		a.fail(err)
	}
}
