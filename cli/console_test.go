package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/javanhut/codenav/internal/colors"
	"github.com/javanhut/codenav/internal/seals"
	"github.com/javanhut/codenav/internal/versions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	colors.SetColorEnabled(false)
	os.Exit(m.Run())
}

func fixedClock() func() time.Time {
	t := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	return func() time.Time {
		now := t
		t = t.Add(time.Minute)
		return now
	}
}

func newTestController() *controller {
	return newController(versions.NewSession(versions.Options{Clock: fixedClock()}), nil)
}

func runScript(t *testing.T, script string) (*controller, string) {
	t.Helper()
	ctl := newTestController()
	var out bytes.Buffer
	c := newConsole(ctl, strings.NewReader(script), &out, renderOptions{})
	require.NoError(t, c.run())
	return ctl, out.String()
}

func TestConsoleScenario(t *testing.T) {
	ctl, out := runScript(t, strings.Join([]string{
		"code console.log(1)",
		"lang javascript",
		"desc v2",
		"save",
		"prev",
		"next",
		"quit",
	}, "\n"))

	cur := ctl.sess.Current()
	assert.Equal(t, "console.log(1)", cur.Code)
	assert.Equal(t, versions.JavaScript, cur.Language)
	assert.Equal(t, "v2", cur.Description)
	assert.Equal(t, 2, ctl.sess.Chain().Len())

	assert.Contains(t, out, "saved version 2: v2")
	assert.Contains(t, out, "version 1 of 2: "+versions.RootDescription)
	assert.Contains(t, out, "version 2 of 2: v2")
}

func TestConsoleInitialViewShowsRoot(t *testing.T) {
	_, out := runScript(t, "")

	assert.Contains(t, out, "version 1 of 1")
	assert.Contains(t, out, "def fibonacci(n):")
	assert.Contains(t, out, "[Python]")
	assert.Contains(t, out, "(← Previous)")
	assert.Contains(t, out, "[Reset]")
	assert.Contains(t, out, "(Next →)")
}

func TestConsoleBoundaryNoops(t *testing.T) {
	ctl, out := runScript(t, "prev\nnext\n")

	assert.Equal(t, versions.NodeID(0), ctl.sess.Current().ID)
	assert.Contains(t, out, "already at the first version")
	assert.Contains(t, out, "already at the latest version")
	assert.NotContains(t, out, "error:")
}

func TestConsoleMultilineCode(t *testing.T) {
	ctl, _ := runScript(t, "code\nint main() {\n  return 0;\n}\n.\nlang C++\nsave\n")

	cur := ctl.sess.Current()
	assert.Equal(t, "int main() {\n  return 0;\n}", cur.Code)
	assert.Equal(t, versions.Cpp, cur.Language)
	assert.True(t, strings.HasPrefix(cur.Description, "Version from "))
}

func TestConsoleMultilineCodeEndsAtEOF(t *testing.T) {
	ctl, _ := runScript(t, "code\nline one\nline two")

	assert.Equal(t, "line one\nline two", ctl.sess.Pending().Code)
}

func TestConsoleRejectsUnknownInput(t *testing.T) {
	ctl, out := runScript(t, "lang rust\nfrobnicate\n")

	assert.Equal(t, versions.Python, ctl.sess.Pending().Language)
	assert.Contains(t, out, "error: unknown language")
	assert.Contains(t, out, `error: unknown command "frobnicate"`)
}

func TestConsoleNavigationKeepsDescriptionDraft(t *testing.T) {
	ctl, _ := runScript(t, "code x\nsave\ndesc typing\nprev\n")

	assert.Equal(t, "typing", ctl.sess.Pending().Description)
	assert.Equal(t, versions.RootCode, ctl.sess.Pending().Code)
}

func TestConsoleResetAndDescClear(t *testing.T) {
	ctl, out := runScript(t, "code a\nsave\ncode b\nsave\nreset\ndesc\n")

	assert.Equal(t, versions.NodeID(0), ctl.sess.Current().ID)
	assert.Empty(t, ctl.sess.Pending().Description)
	assert.Contains(t, out, "draft description cleared")
}

func TestConsoleLogMarksDetached(t *testing.T) {
	_, out := runScript(t, "code a\nsave\nprev\ncode b\nsave\nlog --oneline\n")

	assert.Contains(t, out, "3 version(s)")
	assert.Contains(t, out, "2. ")
	assert.Contains(t, out, "(detached)")
	assert.Contains(t, out, "→ 3. ")
	assert.Contains(t, out, "(current)")
}

func TestConsoleInspectByNumber(t *testing.T) {
	ctl, out := runScript(t, "code a\ndesc first save\nsave\ninspect #1\n")

	assert.Equal(t, versions.NodeID(1), ctl.sess.Current().ID, "inspect does not move")
	assert.Contains(t, out, versions.RootDescription)
}

func TestConsoleHelpAndLanguages(t *testing.T) {
	_, out := runScript(t, "help\nlanguages\n")

	assert.Contains(t, out, "inspect <version>")
	assert.Contains(t, out, "[JavaScript]")
	assert.Contains(t, out, "[C++]")
}

func TestFindVersion(t *testing.T) {
	ctl := newTestController()
	ctl.setCode("x")
	saved := ctl.save()
	chain := ctl.sess.Chain()

	n, err := findVersion(chain, "2")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, n.ID)

	n, err = findVersion(chain, versionLabel(saved, renderOptions{names: true}))
	require.NoError(t, err)
	assert.Equal(t, saved.ID, n.ID)

	n, err = findVersion(chain, seals.ShortHash(saved.Fingerprint))
	require.NoError(t, err)
	assert.Equal(t, saved.ID, n.ID)

	_, err = findVersion(chain, "#9")
	assert.ErrorContains(t, err, "no version #9")

	_, err = findVersion(chain, "9")
	assert.ErrorContains(t, err, "no version #9")

	_, err = findVersion(chain, "")
	assert.Error(t, err)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func TestFindVersionByNumericHash(t *testing.T) {
	ctl := newTestController()

	var target versions.Node
	found := false
	for i := 0; i < 2000 && !found; i++ {
		ctl.setCode(fmt.Sprintf("x = %d", i))
		target = ctl.save()
		found = isDigits(seals.ShortHash(target.Fingerprint))
	}
	require.True(t, found, "no version with an all-digit short hash")

	short := seals.ShortHash(target.Fingerprint)
	n, err := findVersion(ctl.sess.Chain(), short)
	require.NoError(t, err, "hash %s", short)
	assert.Equal(t, target.ID, n.ID)

	var out bytes.Buffer
	c := newConsole(ctl, strings.NewReader("inspect "+short+"\n"), &out, renderOptions{})
	require.NoError(t, c.run())
	assert.Contains(t, out.String(), target.Description)
	assert.NotContains(t, out.String(), "error:")
}

func TestConsoleInlineCodeKeepsIndentation(t *testing.T) {
	ctl, _ := runScript(t, "code     return n\nsave\n")

	assert.Equal(t, "    return n", ctl.sess.Current().Code)
}
