package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func silenceREPL(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint, origPrintln := printFn, printlnFn
	printFn = func(...any) (int, error) { return 0, nil }
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printFn, printlnFn = origPrint, origPrintln })
	return &lines
}

type fakeShell struct {
	allowed  map[string]bool
	calls    []string
	entered  []string
	reported []error
	fail     error
}

func (f *fakeShell) prompt() string { return "wepub / > " }

func (f *fakeShell) lookup(name string) (command, bool) {
	switch name {
	case "whoami", "login", "style":
		route := map[string]string{"whoami": "/dashboard", "login": "/login", "style": "/styles"}[name]
		minArgs := 0
		if name == "style" {
			minArgs = 1
		}
		return command{name: name, route: route, usage: name + " <id>", minArgs: minArgs,
			run: func(_ context.Context, args []string) error {
				f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
				return f.fail
			}}, true
	}
	return command{}, false
}

func (f *fakeShell) enter(_ context.Context, route string) bool {
	f.entered = append(f.entered, route)
	return f.allowed[route]
}

func (f *fakeShell) report(err error) { f.reported = append(f.reported, err) }

func TestRunREPL_DispatchesAllowedCommands(t *testing.T) {
	lines := silenceREPL(t)
	sh := &fakeShell{allowed: map[string]bool{"/login": true, "/styles": true}}

	in := bufio.NewReader(strings.NewReader("login\n\nwhoami\nstyle 7\nfoobar\nexit\nlogin\n"))
	runREPL(context.Background(), sh, in)

	assert.Equal(t, []string{"login", "style 7"}, sh.calls)
	assert.Equal(t, []string{"/login", "/dashboard", "/styles"}, sh.entered)
	assert.Contains(t, *lines, "Unknown command: foobar (type 'help')")
	assert.Equal(t, "Bye!", (*lines)[len(*lines)-1])
}

func TestRunREPL_UsageSkipsGuard(t *testing.T) {
	lines := silenceREPL(t)
	sh := &fakeShell{allowed: map[string]bool{"/styles": true}}

	runREPL(context.Background(), sh, bufio.NewReader(strings.NewReader("style\nquit\n")))

	assert.Empty(t, sh.calls)
	assert.Empty(t, sh.entered)
	assert.Contains(t, *lines, "Usage: style <id>")
}

func TestRunREPL_ErrorsAreReportedAndLoopContinues(t *testing.T) {
	silenceREPL(t)
	boom := errors.New("boom")
	sh := &fakeShell{allowed: map[string]bool{"/login": true}, fail: boom}

	runREPL(context.Background(), sh, bufio.NewReader(strings.NewReader("login\nlogin")))

	assert.Len(t, sh.calls, 2, "last line without newline still runs")
	assert.Equal(t, []error{boom, boom}, sh.reported)
}

func TestRunREPL_StopsWhenContextEnds(t *testing.T) {
	silenceREPL(t)
	ctx, cancel := context.WithCancel(context.Background())
	sh := &fakeShell{allowed: map[string]bool{"/login": true}}
	cancel()

	runREPL(ctx, sh, bufio.NewReader(strings.NewReader("login\nlogin\n")))

	assert.Len(t, sh.calls, 1)
}
