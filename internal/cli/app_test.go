package cli

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/memorybook/internal/common"
	"github.com/dmitrijs2005/memorybook/internal/config"
	"github.com/dmitrijs2005/memorybook/internal/cryptox"
	"github.com/dmitrijs2005/memorybook/internal/images"
	"github.com/dmitrijs2005/memorybook/internal/logging"
	"github.com/dmitrijs2005/memorybook/internal/models"
	"github.com/dmitrijs2005/memorybook/internal/repositories/accounts"
	"github.com/dmitrijs2005/memorybook/internal/repositories/entries"
	"github.com/dmitrijs2005/memorybook/internal/services"
)

type harness struct {
	dataDir string
	store   *images.Store
	as      services.AuthService
	es      services.EntryService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	data := t.TempDir()
	store, err := images.NewStore(data)
	require.NoError(t, err)

	tick := time.Date(2025, time.March, 7, 16, 4, 0, 0, time.UTC)
	clock := func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}

	return &harness{
		dataDir: data,
		store:   store,
		as:      services.NewAuthService(accounts.NewJSONRepository(data), cryptox.Plain{}, logging.Nop()),
		es:      services.NewEntryService(entries.NewJSONRepository(data), store, logging.Nop(), services.WithClock(clock)),
	}
}

// run drives a fresh App with the given input lines and returns it with
// everything it printed.
func (h *harness) run(t *testing.T, lines ...string) (*App, string) {
	t.Helper()
	var out bytes.Buffer
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = h.dataDir

	app := newApp(cfg, logging.Nop(), h.as, h.es, h.store, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	app.Run(context.Background())
	return app, out.String()
}

// selected returns the entry under the cursor after a run.
func selected(app *App) (models.Entry, bool) {
	if app.session == nil {
		return models.Entry{}, false
	}
	return app.session.Current()
}

func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 440, 320))))
	require.NoError(t, f.Close())
	return path
}

func TestApp_SignupLoginAddList(t *testing.T) {
	h := newHarness(t)
	src := writePNG(t, t.TempDir(), "beach.png")

	app, out := h.run(t,
		"signup", "alice", "pw1",
		"signup", "alice", "pw2",
		"login", "alice", "wrong",
		"login", "alice", "pw1",
		"add", "Trip", "Fun day", "", src, "",
		"add", "Gift", "", "",
		"list",
		"show 2",
	)

	assert.Contains(t, out, "Account created")
	assert.Contains(t, out, "Error: User already exists")
	assert.Contains(t, out, "Error: Invalid credentials")
	assert.Contains(t, out, "Welcome, alice")
	assert.Contains(t, out, "1 images attached")
	assert.Contains(t, out, "Memory saved!")
	assert.Contains(t, out, "*  1. March 07, 2025 - Gift")
	assert.Contains(t, out, "   2. March 07, 2025 - Trip")
	assert.Contains(t, out, "March 07, 2025 — 04:05 PM")
	assert.Contains(t, out, "Fun day")
	assert.Contains(t, out, filepath.Join(h.dataDir, "user_images", "thumbs"))

	cur, ok := selected(app)
	require.True(t, ok)
	assert.Equal(t, "Trip", cur.Title)
	require.Len(t, cur.Images, 1)
}

func TestApp_AddRejectsEmpty(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.as.Signup(context.Background(), "bob", "pw"))

	_, out := h.run(t, "login", "bob", "pw", "add", "", "", "")

	assert.Contains(t, out, "Error: write something or attach images")
	list, err := h.es.List(context.Background(), "bob")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestApp_NavigateEditDelete(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	require.NoError(t, h.as.Signup(ctx, "alice", "pw"))
	first, _, err := h.es.Create(ctx, "alice", services.Draft{Title: "First", Text: "one"})
	require.NoError(t, err)
	_, _, err = h.es.Create(ctx, "alice", services.Draft{Title: "Second"})
	require.NoError(t, err)

	app, out := h.run(t,
		"login", "alice", "pw",
		"next",
		"prev",
		"prev",
		"edit", "", "", "",
		"delete", "n",
		"next",
		"delete", "y",
	)

	assert.Equal(t, 2, strings.Count(out, noMoreMsg))
	assert.Contains(t, out, "Memory updated successfully!")
	assert.Contains(t, out, "Memory deleted successfully.")

	list, err := h.es.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.Id, list[0].Id)
	assert.Equal(t, "First", list[0].Title, "empty answers keep title")
	assert.Equal(t, "one", list[0].Text, "empty answers keep text")

	cur, ok := selected(app)
	require.True(t, ok)
	assert.Equal(t, first.Id, cur.Id)
}

func TestApp_EditClearsWithDash(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	require.NoError(t, h.as.Signup(ctx, "alice", "pw"))
	e, _, err := h.es.Create(ctx, "alice", services.Draft{Title: "Trip", Text: "long story"})
	require.NoError(t, err)

	_, out := h.run(t,
		"login", "alice", "pw",
		"edit", "-", "-", "", "",
	)

	assert.Contains(t, out, "Memory updated successfully!")
	list, err := h.es.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, e.Id, list[0].Id)
	assert.Equal(t, common.DefaultTitle, list[0].Title)
	assert.Equal(t, "", list[0].Text)
}

func TestEditAnswer(t *testing.T) {
	tests := []struct {
		name, answer, current, want string
	}{
		{"empty keeps", "", "old", "old"},
		{"dash clears", "-", "old", ""},
		{"text replaces", "new", "old", "new"},
		{"dash inside text is literal", "a - b", "old", "a - b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, editAnswer(tt.answer, tt.current))
		})
	}
}

func TestApp_EditDropsAndAttachesImages(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	srcDir := t.TempDir()
	require.NoError(t, h.as.Signup(ctx, "alice", "pw"))
	e, _, err := h.es.Create(ctx, "alice", services.Draft{Title: "Pics", Attach: []string{writePNG(t, srcDir, "a.png")}})
	require.NoError(t, err)
	newSrc := writePNG(t, srcDir, "b.png")

	h.run(t,
		"login", "alice", "pw",
		"edit", "Renamed", "", "y", newSrc, filepath.Join(srcDir, "missing.png"), "",
	)

	list, err := h.es.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, e.Id, list[0].Id)
	assert.Equal(t, e.Date, list[0].Date)
	assert.Equal(t, "Renamed", list[0].Title)
	require.Len(t, list[0].Images, 1)
	assert.NotEqual(t, e.Images[0], list[0].Images[0])
}

func TestApp_GalleryOpenThumbBackground(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	srcDir := t.TempDir()
	require.NoError(t, h.as.Signup(ctx, "alice", "pw"))
	e, _, err := h.es.Create(ctx, "alice", services.Draft{Attach: []string{
		writePNG(t, srcDir, "1.png"), writePNG(t, srcDir, "2.png"),
		writePNG(t, srcDir, "3.png"), writePNG(t, srcDir, "4.png"), writePNG(t, srcDir, "5.png"),
	}})
	require.NoError(t, err)
	require.NoError(t, os.Remove(e.Images[4]))

	bg := writePNG(t, srcDir, "bg.png")
	notImage := filepath.Join(srcDir, "notes.txt")
	require.NoError(t, os.WriteFile(notImage, []byte("hi"), 0o600))

	app, out := h.run(t,
		"login", "alice", "pw",
		"gallery",
		"open "+e.Images[0],
		"open "+e.Images[4],
		"thumb "+e.Images[1],
		"background",
		"background "+notImage,
		"background "+bg,
		"background",
	)

	assert.Contains(t, out, "Photo Gallery")
	assert.Contains(t, out, "Row 1")
	assert.NotContains(t, out, "Row 2", "four remaining images fit one row")
	assert.Contains(t, out, "[4] ")
	assert.NotContains(t, out, "[5] ")
	assert.Contains(t, out, "Error: Image not found")
	assert.Contains(t, out, filepath.Join(filepath.Join(h.dataDir, "user_images", "thumbs"), filepath.Base(e.Images[1])))
	assert.Contains(t, out, "No background set.")
	assert.Contains(t, out, "Error: cannot set background")
	assert.Contains(t, out, "Background: "+bg)
	assert.Equal(t, bg, app.session.Background)
}

func TestApp_LogoutClearsSession(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.as.Signup(context.Background(), "alice", "pw"))

	app, out := h.run(t, "login", "alice", "pw", "background", "logout", "list")

	assert.Nil(t, app.session)
	assert.Contains(t, out, "Logged out")
	assert.Contains(t, out, "Please log in first")
}

func TestNewApp_WiresStores(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = t.TempDir()

	app, err := NewApp(cfg, logging.Nop())
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.DirExists(t, filepath.Join(cfg.DataDir, "user_images", "thumbs"))

	cfg.PasswordScheme = "rot13"
	_, err = NewApp(cfg, logging.Nop())
	require.Error(t, err)
}
