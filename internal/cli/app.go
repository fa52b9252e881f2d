package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/memorybook/internal/config"
	"github.com/dmitrijs2005/memorybook/internal/cryptox"
	"github.com/dmitrijs2005/memorybook/internal/images"
	"github.com/dmitrijs2005/memorybook/internal/logging"
	"github.com/dmitrijs2005/memorybook/internal/repositories/accounts"
	"github.com/dmitrijs2005/memorybook/internal/repositories/entries"
	"github.com/dmitrijs2005/memorybook/internal/services"
	"github.com/dmitrijs2005/memorybook/internal/session"
)

// ImageChecker validates a candidate background image.
type ImageChecker interface {
	Check(path string) error
}

type App struct {
	config       *config.Config
	log          logging.Logger
	authService  services.AuthService
	entryService services.EntryService
	checker      ImageChecker
	session      *session.Session
	reader       *bufio.Reader
	out          io.Writer
}

// NewApp wires the stores and services rooted at c.DataDir and attaches the
// shell to the process stdin and stdout.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	scheme, err := cryptox.SchemeByName(c.PasswordScheme)
	if err != nil {
		return nil, err
	}

	store, err := images.NewStore(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("image store: %w", err)
	}

	as := services.NewAuthService(accounts.NewJSONRepository(c.DataDir), scheme, log)
	es := services.NewEntryService(entries.NewJSONRepository(c.DataDir), store, log)

	return newApp(c, log, as, es, store, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, log logging.Logger, as services.AuthService, es services.EntryService,
	checker ImageChecker, in io.Reader, out io.Writer) *App {
	return &App{
		config:       c,
		log:          log,
		authService:  as,
		entryService: es,
		checker:      checker,
		reader:       bufio.NewReader(in),
		out:          out,
	}
}

// Run starts the shell and returns when the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.log.Info(ctx, "memorybook started", "data_dir", a.config.DataDir)
	a.heading("Welcome to MemoryBook (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Username)
}
