package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input string
		want  ColorMode
	}{
		{"", ColorAuto},
		{"auto", ColorAuto},
		{"always", ColorAlways},
		{"never", ColorNever},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseColorMode("rainbow")
	assert.Error(t, err)
}

func TestResolveColors(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.True(t, ResolveColors(ColorAlways))
	assert.False(t, ResolveColors(ColorNever))
	assert.False(t, ResolveColors(ColorAuto))
}

func newPlain() (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewPrinter(&out, &errOut, false), &out, &errOut
}

func TestPrinter_PlainPrefixesAndStreams(t *testing.T) {
	p, out, errOut := newPlain()

	p.Info("hello %s", "alice")
	p.Success("saved")
	p.Warning("careful")
	p.Error("broken: %d", 3)

	assert.Equal(t, "hello alice\n[OK] saved\n", out.String())
	assert.Equal(t, "[WARN] careful\n[ERROR] broken: 3\n", errOut.String())
}

func TestPrinter_HeaderAndField(t *testing.T) {
	p, out, _ := newPlain()

	p.Header("Profile")
	p.Field("Username", "alice")

	assert.Equal(t, "\nProfile\n-------\n  Username:      alice\n", out.String())
}

func TestPrinter_StatusBadgePlain(t *testing.T) {
	p, _, _ := newPlain()
	assert.Equal(t, "[synced]", p.StatusBadge("synced"))
	assert.Equal(t, "text", p.Bold("text"))
	assert.Equal(t, "text", p.Dim("text"))
}

func TestPrinter_ColoredBadgeKeepsStatusText(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &out, true)
	assert.Contains(t, p.StatusBadge("draft"), "draft")
	assert.Contains(t, p.StatusBadge("whatever"), "whatever")
}
