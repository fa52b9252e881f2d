package cli

import (
	"errors"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/memorybook/internal/common"
)

var (
	successColor = color.New(color.FgGreen)
	infoColor    = color.New(color.FgWhite)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	headingColor = color.New(color.FgCyan, color.Bold)
)

func (a *App) success(format string, args ...any) { successColor.Fprintf(a.out, format+"\n", args...) }
func (a *App) info(format string, args ...any)    { infoColor.Fprintf(a.out, format+"\n", args...) }
func (a *App) warn(format string, args ...any)    { warnColor.Fprintf(a.out, format+"\n", args...) }
func (a *App) heading(format string, args ...any) { headingColor.Fprintf(a.out, format+"\n", args...) }

func (a *App) fail(err error) {
	errorColor.Fprintln(a.out, "Error:", describe(err))
}

// describe turns known failures into the short messages shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, common.ErrAlreadyExists):
		return "User already exists"
	case errors.Is(err, common.ErrNotFound):
		return "Memory not found"
	case errors.Is(err, common.ErrMissingFile):
		return "Image not found"
	default:
		return err.Error()
	}
}
