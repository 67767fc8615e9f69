package foo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	_ = v
}

func runScript(t *testing.T, script string) string {
	t.Helper()
	var out bytes.Buffer
	in := New(
		WithInput("<test>", strings.NewReader(script)),
		WithOutput(&out),
		WithErrorOutput(&out),
		WithMode(NonInteractive),
	)
	require.NoError(t, in.Run())
	return out.String()
}

func TestDriveFactorialScenario(t *testing.T) {
	script := ": fact dup 1 == if else dup 1 - fact * then ;\n5 fact .\n"
	snaps.MatchSnapshot(t, runScript(t, script))
}

func TestDriveRecursiveAndControlScenario(t *testing.T) {
	script := strings.Join([]string{
		": sq dup * ;",
		"5 sq .",
		": countdown var n begin n @ . n -- n @ 0 == until ;",
		"3 countdown",
		"1 if 11 . else 22 . then",
		"0 if 11 . else 22 . then",
	}, "\n") + "\n"
	snaps.MatchSnapshot(t, runScript(t, script))
}

func TestDriveHaltsOnUndefinedWordInNonInteractiveMode(t *testing.T) {
	var out bytes.Buffer
	in := New(
		WithInput("<test>", strings.NewReader("1 2 +\nfrobnicate\n99 .\n")),
		WithOutput(&out),
		WithErrorOutput(&out),
		WithMode(NonInteractive),
	)
	require.NoError(t, in.Run())
	require.Contains(t, out.String(), "undefined word")
	require.NotContains(t, out.String(), "99")
}

func TestDriveByeStopsInteractiveLoop(t *testing.T) {
	var out bytes.Buffer
	in := New(
		WithInput("<test>", strings.NewReader("1 .\nbye\n2 .\n")),
		WithOutput(&out),
		WithErrorOutput(&out),
		WithMode(Interactive),
	)
	require.NoError(t, in.Run())
	assert.Contains(t, out.String(), "1\n")
	assert.NotContains(t, out.String(), "2\n")
}
