package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/javanhut/codenav/internal/versions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedNavigator feeds keys and prompt answers from slices.
func scriptedNavigator(ctl *controller, keys []string, answers []string) (*navigator, *bytes.Buffer) {
	var out bytes.Buffer
	nav := &navigator{
		ctl:  ctl,
		out:  &out,
		opts: renderOptions{},
		readKey: func() (string, error) {
			if len(keys) == 0 {
				return "", io.EOF
			}
			k := keys[0]
			keys = keys[1:]
			return k, nil
		},
		prompt: func(label string) (string, error) {
			if len(answers) == 0 {
				return "", errors.New("no answer for " + label)
			}
			a := answers[0]
			answers = answers[1:]
			return a, nil
		},
	}
	return nav, &out
}

func TestNavigatorSaveAndNavigate(t *testing.T) {
	ctl := newTestController()
	nav, out := scriptedNavigator(ctl,
		[]string{"e", "g", "d", "s", "left", "right", "q"},
		[]string{"console.log(1)", "javascript", "v2"})

	require.NoError(t, nav.run())

	cur := ctl.sess.Current()
	assert.Equal(t, "v2", cur.Description)
	assert.Equal(t, versions.JavaScript, cur.Language)
	assert.Equal(t, "console.log(1)", cur.Code)
	assert.Contains(t, out.String(), "saved version 2")
}

func TestNavigatorBoundaryNotice(t *testing.T) {
	ctl := newTestController()
	nav, out := scriptedNavigator(ctl, []string{"h", "l", "q"}, nil)

	require.NoError(t, nav.run())

	assert.Equal(t, versions.NodeID(0), ctl.sess.Current().ID)
	assert.Contains(t, out.String(), "already at the first version")
	assert.Contains(t, out.String(), "already at the latest version")
}

func TestNavigatorBadLanguageShowsError(t *testing.T) {
	ctl := newTestController()
	nav, out := scriptedNavigator(ctl, []string{"g", "q"}, []string{"cobol"})

	require.NoError(t, nav.run())

	assert.Equal(t, versions.Python, ctl.sess.Pending().Language)
	assert.Contains(t, out.String(), "error: unknown language")
}

func TestNavigatorVersionList(t *testing.T) {
	ctl := newTestController()
	nav, out := scriptedNavigator(ctl, []string{"s", "r", "v", "x", "q"}, nil)

	require.NoError(t, nav.run())

	assert.Equal(t, versions.NodeID(0), ctl.sess.Current().ID)
	assert.Contains(t, out.String(), "2 version(s)")
	assert.Contains(t, out.String(), "press any key to return")
}

func TestNavigatorReadErrorStops(t *testing.T) {
	ctl := newTestController()
	nav, _ := scriptedNavigator(ctl, nil, nil)

	err := nav.run()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{[]byte{27, '[', 'D'}, "left"},
		{[]byte{27, '[', 'C'}, "right"},
		{[]byte{27, '[', 'A'}, "up"},
		{[]byte{27, '[', 'Z'}, ""},
		{[]byte{13}, "enter"},
		{[]byte{27}, "q"},
		{[]byte{3}, "q"},
		{[]byte("S"), "s"},
		{[]byte("h"), "h"},
		{[]byte("z"), ""},
		{[]byte("ab"), ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, decodeKey(tt.in), "input %v", tt.in)
	}
}

func lineReader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestPromptLine(t *testing.T) {
	var out bytes.Buffer

	got, err := promptLine(lineReader("  Java  \n"), &out, "language")
	require.NoError(t, err)
	assert.Equal(t, "Java", got)
	assert.Contains(t, out.String(), "Language: ")

	got, err = promptLine(lineReader("a\nb\n.\nrest\n"), &out, "code")
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)

	_, err = promptLine(lineReader("unterminated"), &out, "code")
	assert.Error(t, err)
}

func TestPromptLineSharedReaderKeepsTypeAhead(t *testing.T) {
	var out bytes.Buffer
	in := lineReader("def f():\n    pass\n.\njava\nsecond draft\n")

	code, err := promptLine(in, &out, "code")
	require.NoError(t, err)
	assert.Equal(t, "def f():\n    pass", code)

	lang, err := promptLine(in, &out, "language")
	require.NoError(t, err)
	assert.Equal(t, "java", lang)

	desc, err := promptLine(in, &out, "description")
	require.NoError(t, err)
	assert.Equal(t, "second draft", desc)
}
