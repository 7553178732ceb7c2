package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls  []string
	failed []error
	err    error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) fail(err error)   { f.failed = append(f.failed, err) }

func (f *fakeExec) rec(name string, args ...string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.err
}

func (f *fakeExec) Register(ctx context.Context) error { return f.rec("register") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.rec("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.rec("logout")
}
func (f *fakeExec) Create(ctx context.Context, args []string) error { return f.rec("create", args...) }
func (f *fakeExec) List(ctx context.Context) error                  { return f.rec("list") }
func (f *fakeExec) Mine(ctx context.Context) error                  { return f.rec("mine") }
func (f *fakeExec) Show(ctx context.Context, id string) error       { return f.rec("show", id) }
func (f *fakeExec) Invest(ctx context.Context, id, amount string) error {
	return f.rec("invest", id, amount)
}
func (f *fakeExec) Pending(ctx context.Context) error            { return f.rec("pending") }
func (f *fakeExec) MyRequests(ctx context.Context) error         { return f.rec("myrequests") }
func (f *fakeExec) Approve(ctx context.Context, id string) error { return f.rec("approve", id) }
func (f *fakeExec) Reject(ctx context.Context, id string) error  { return f.rec("reject", id) }
func (f *fakeExec) Resume(ctx context.Context, id string) error  { return f.rec("resume", id) }
func (f *fakeExec) Stakes(ctx context.Context, id string) error  { return f.rec("stakes", id) }
func (f *fakeExec) Portfolio(ctx context.Context) error          { return f.rec("portfolio") }
func (f *fakeExec) Chain(ctx context.Context, id string) error   { return f.rec("chain", id) }
func (f *fakeExec) Verify(ctx context.Context, id string) error  { return f.rec("verify", id) }
func (f *fakeExec) Resync(ctx context.Context, id string) error  { return f.rec("resync", id) }
func (f *fakeExec) Compare(ctx context.Context, id string) error { return f.rec("compare", id) }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = v.(string)
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func run(exec *fakeExec, input string) {
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))
}

func TestRunREPL_DispatchesWithArguments(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	run(exec, strings.Join([]string{
		"login",
		"create cover.png",
		"list",
		"mine",
		"show c1",
		"invest c1 250",
		"pending",
		"myrequests",
		"approve r1",
		"reject r2",
		"resume r3",
		"stakes c1",
		"portfolio",
		"chain c1",
		"verify c1",
		"resync c1",
		"compare c1",
		"logout",
		"exit",
		"list",
	}, "\n"))

	require.Equal(t, []string{
		"login",
		"create cover.png",
		"list",
		"mine",
		"show c1",
		"invest c1 250",
		"pending",
		"myrequests",
		"approve r1",
		"reject r2",
		"resume r3",
		"stakes c1",
		"portfolio",
		"chain c1",
		"verify c1",
		"resync c1",
		"compare c1",
		"logout",
	}, exec.calls)
}

func TestRunREPL_GuardsAndUsage(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{}
	run(exec, "list\nhelp\nlogin\nhelp\ninvest c1\napprove\nfoobar\nquit\n")

	require.Equal(t, []string{"login"}, exec.calls)
	joined := strings.Join(*out, "\n")
	require.Contains(t, joined, "Please login first")
	require.Contains(t, joined, helpGuest)
	require.Contains(t, joined, helpLoggedIn)
	require.Contains(t, joined, "Usage: invest <content-id> <amount>")
	require.Contains(t, joined, "Usage: approve <request-id>")
	require.Contains(t, joined, "Unknown command: foobar")
	require.Contains(t, joined, "Bye!")
}

func TestRunREPL_ErrorsAreReportedAndLoopContinues(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{loggedIn: true, err: errors.New("boom")}
	run(exec, "list\npending\n")

	require.Equal(t, []string{"list", "pending"}, exec.calls)
	require.Len(t, exec.failed, 2)
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{loggedIn: true}
	run(exec, "portfolio")

	require.Equal(t, []string{"portfolio"}, exec.calls)
}
