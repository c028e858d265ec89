package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/javanhut/codenav/internal/colors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var navigateCmd = &cobra.Command{
	Use:     "navigate",
	Aliases: []string{"nav"},
	Short:   "Browse versions interactively with the arrow keys",
	Long: `Open a full-screen navigator over an in-memory version history.

Keys:
  ←/h   previous version      →/l   next version
  r     reset to first        v     list all versions
  e     edit draft code       g     set draft language
  d     set draft description s     save draft as new version
  q     quit

Requires an interactive terminal; use "codenav session" for piped input.`,
	Args: cobra.NoArgs,
	RunE: runNavigate,
}

func runNavigate(cmd *cobra.Command, args []string) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("navigate needs an interactive terminal (try: codenav session)")
	}

	started := time.Now()
	sess, sessionLog := newSession("navigator")
	defer endSession(sess, sessionLog, started)

	// One reader serves every prompt so typed-ahead lines are not dropped.
	lines := bufio.NewReader(os.Stdin)
	nav := &navigator{
		ctl:  newController(sess, sessionLog),
		out:  cmd.OutOrStdout(),
		opts: renderOpts(),
		readKey: func() (string, error) {
			return readKey(fd)
		},
		prompt: func(label string) (string, error) {
			return promptLine(lines, cmd.OutOrStdout(), label)
		},
	}
	return nav.run()
}

// navigator is the full-screen front end. Key and line input are injected
// so the loop runs without a terminal in tests.
type navigator struct {
	ctl     *controller
	out     io.Writer
	opts    renderOptions
	readKey func() (string, error)
	prompt  func(label string) (string, error)
	notice  string
}

func (n *navigator) run() error {
	for {
		n.draw()

		key, err := n.readKey()
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}

		quit, err := n.handle(key)
		if err != nil {
			n.notice = colors.ErrorText("error: ") + err.Error()
		}
		if quit {
			return nil
		}
	}
}

func (n *navigator) draw() {
	fmt.Fprint(n.out, "\033[2J\033[H")
	renderView(n.out, n.ctl.sess.View(), n.opts)

	fmt.Fprintln(n.out)
	if n.notice != "" {
		fmt.Fprintln(n.out, n.notice)
		n.notice = ""
	}
	help := []string{"←/→ navigate", "r reset", "e code", "g language", "d description", "s save", "v versions", "q quit"}
	fmt.Fprintln(n.out, colors.Dim(strings.Join(help, " • ")))
}

// handle applies one key press.
func (n *navigator) handle(key string) (quit bool, err error) {
	switch key {
	case "left", "h":
		if !n.ctl.previous() {
			n.notice = colors.InfoText("ℹ already at the first version")
		}

	case "right", "l":
		if !n.ctl.next() {
			n.notice = colors.InfoText("ℹ already at the latest version")
		}

	case "r":
		n.ctl.reset()

	case "e":
		code, err := n.prompt("code")
		if err != nil {
			return false, err
		}
		n.ctl.setCode(code)

	case "g":
		input, err := n.prompt("language")
		if err != nil {
			return false, err
		}
		if _, err := n.ctl.setLanguage(input); err != nil {
			return false, err
		}

	case "d":
		input, err := n.prompt("description")
		if err != nil {
			return false, err
		}
		n.ctl.setDescription(input)

	case "s":
		saved := n.ctl.save()
		n.notice = fmt.Sprintf("%s saved version %d (%s)",
			colors.SuccessText("✓"), versionNumber(saved.ID), versionLabel(saved, n.opts))

	case "v":
		fmt.Fprint(n.out, "\033[2J\033[H")
		renderLog(n.out, n.ctl.sess.Chain(), n.ctl.sess.Current().ID, false, n.opts)
		fmt.Fprintln(n.out)
		fmt.Fprintln(n.out, colors.Dim("press any key to return"))
		if _, err := n.readKey(); err != nil {
			return false, err
		}

	case "q":
		return true, nil
	}
	return false, nil
}

// readKey reads a single key press (including arrow keys) in raw mode.
func readKey(fd int) (string, error) {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", err
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 3)
	n, err := os.Stdin.Read(buf)
	if err != nil {
		return "", err
	}
	return decodeKey(buf[:n]), nil
}

// decodeKey maps raw terminal input to a key name. Unknown input maps to "".
func decodeKey(buf []byte) string {
	if len(buf) == 3 && buf[0] == 27 && buf[1] == '[' {
		switch buf[2] {
		case 'A':
			return "up"
		case 'B':
			return "down"
		case 'C':
			return "right"
		case 'D':
			return "left"
		}
		return ""
	}

	if len(buf) != 1 {
		return ""
	}
	switch buf[0] {
	case 10, 13:
		return "enter"
	case 27, 3: // ESC, Ctrl-C
		return "q"
	}
	switch r := strings.ToLower(string(buf[0])); r {
	case "q", "h", "l", "r", "e", "g", "d", "s", "v":
		return r
	}
	return ""
}

// promptLine reads a line in cooked mode. The "code" prompt reads until a
// single "." line, as in the console.
func promptLine(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	if label == "code" {
		fmt.Fprintln(out, colors.Dim(`Enter code, finish with a single "." line:`))
		var lines []string
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				return "", fmt.Errorf("failed to read code: %w", err)
			}
			line = strings.TrimRight(line, "\r\n")
			if line == endOfCode {
				return strings.Join(lines, "\n"), nil
			}
			lines = append(lines, line)
		}
	}

	fmt.Fprintf(out, "%s: ", colors.Bold(strings.ToUpper(label[:1])+label[1:]))
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}
	return strings.TrimSpace(line), nil
}
