package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/wepub/internal/client/output"
	"github.com/dmitrijs2005/wepub/internal/client/transport"
)

var errEmptyInput = errors.New("input must not be empty")

// report presents a command failure. The shell is the only place errors
// are turned into text for the user.
func (a *App) report(err error) {
	switch {
	case errors.Is(err, transport.ErrUnauthorized):
		a.printer.Error("Not authorized: %s", describe(err))
	case errors.Is(err, transport.ErrValidation):
		a.printer.Error("%s", describe(err))
	case errors.Is(err, transport.ErrTransport):
		a.printer.Error("Server problem: %s", describe(err))
	default:
		a.printer.Error("%v", err)
	}
}

func describe(err error) string {
	if d := transport.Detail(err); d != "" {
		return d
	}
	return err.Error()
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func (a *App) newTable(headers ...string) *output.Table {
	return output.NewTable(a.out, headers)
}

func (a *App) ask(prompt string) (string, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", errEmptyInput
	}
	return s, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
