package logging

import (
	"fmt"
	"io"
	"strings"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatZap  = "zap"
)

// New builds a Logger writing to w in the given format at the given level
// ("debug", "info", "warn", "error").
func New(w io.Writer, format, level string) (Logger, error) {
	var (
		l   Logger
		err error
	)

	switch strings.ToLower(format) {
	case FormatText, "":
		l, err = newSlog(w, false, level)
	case FormatJSON:
		l, err = newSlog(w, true, level)
	case FormatZap:
		l, err = newZap(w, level)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	if err != nil {
		return nil, err
	}
	return l, nil
}
