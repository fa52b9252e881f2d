package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls  []string
	args   [][]string
	failed []error
	err    error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) fail(err error)   { f.failed = append(f.failed, err) }

func (f *fakeExec) Signup(ctx context.Context) error { return f.record("signup", nil) }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) List(ctx context.Context) error                { return f.record("list", nil) }
func (f *fakeExec) Show(ctx context.Context, a []string) error    { return f.record("show", a) }
func (f *fakeExec) Next(ctx context.Context) error                { return f.record("next", nil) }
func (f *fakeExec) Prev(ctx context.Context) error                { return f.record("prev", nil) }
func (f *fakeExec) Add(ctx context.Context) error                 { return f.record("add", nil) }
func (f *fakeExec) Edit(ctx context.Context) error                { return f.record("edit", nil) }
func (f *fakeExec) Delete(ctx context.Context) error              { return f.record("delete", nil) }
func (f *fakeExec) Refresh(ctx context.Context) error             { return f.record("refresh", nil) }
func (f *fakeExec) Gallery(ctx context.Context) error             { return f.record("gallery", nil) }
func (f *fakeExec) Open(ctx context.Context, a []string) error    { return f.record("open", a) }
func (f *fakeExec) Thumb(ctx context.Context, a []string) error   { return f.record("thumb", a) }
func (f *fakeExec) Background(ctx context.Context, a []string) error {
	return f.record("background", a)
}

func runLines(ctx context.Context, f *fakeExec, lines ...string) string {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(ctx, f, func() string { return "" }, r, &out)
	return out.String()
}

func TestRunREPL_GuestCannotUseEntryCommands(t *testing.T) {
	f := &fakeExec{}
	out := runLines(context.Background(), f, "help", "list", "foobar", "register", "exit")

	assert.Equal(t, []string{"signup"}, f.calls)
	assert.Contains(t, out, guestHelp)
	assert.Contains(t, out, "Please log in first")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_DispatchesWithArgs(t *testing.T) {
	f := &fakeExec{}
	out := runLines(context.Background(), f,
		"login",
		"help",
		"l",
		"show 2",
		"next",
		"prev",
		"add",
		"edit",
		"delete",
		"",
		"refresh",
		"gallery",
		"open /tmp/my photo.png",
		"thumb a.png",
		"background",
		"LOGOUT",
		"quit",
		"list",
	)

	assert.Equal(t, []string{
		"login", "list", "show", "next", "prev", "add", "edit", "delete",
		"refresh", "gallery", "open", "thumb", "background", "logout",
	}, f.calls)
	assert.Equal(t, []string{"2"}, f.args[2])
	assert.Equal(t, []string{"/tmp/my", "photo.png"}, f.args[10])
	assert.Empty(t, f.args[12])
	assert.Contains(t, out, userHelp)
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	boom := errors.New("boom")
	f := &fakeExec{err: boom}
	runLines(context.Background(), f, "signup", "login", "list")

	assert.Equal(t, []string{"signup", "login", "list"}, f.calls)
	assert.Len(t, f.failed, 3)
	assert.ErrorIs(t, f.failed[0], boom)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &fakeExec{}
	runLines(ctx, f, "signup")
	assert.Empty(t, f.calls)
}
