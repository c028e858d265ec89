package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/javanhut/codenav/internal/colors"
)

// endOfCode terminates multi-line code input.
const endOfCode = "."

// console is the line-oriented front end: one command per line on in,
// output on out.
type console struct {
	ctl  *controller
	in   *bufio.Reader
	out  io.Writer
	opts renderOptions
}

func newConsole(ctl *controller, in io.Reader, out io.Writer, opts renderOptions) *console {
	return &console{
		ctl:  ctl,
		in:   bufio.NewReader(in),
		out:  out,
		opts: opts,
	}
}

const consoleHelp = `Commands:
  show                 Show the current version and the draft
  prev, back           Go to the previous version
  next, forward        Go to the next version
  reset                Go back to the first version
  code [text]          Set the draft code (no text: read lines until a single ".")
  lang <language>      Set the draft language
  desc [text]          Set the draft description (no text: clear it)
  save                 Save the draft as a new version
  log [--oneline]      List every version
  inspect <version>    Show a version by number, name or hash without moving
  languages            List supported languages
  help                 Show this help
  quit, exit           Leave the session`

// run reads commands until quit or end of input.
func (c *console) run() error {
	renderView(c.out, c.ctl.sess.View(), c.opts)
	for {
		fmt.Fprint(c.out, colors.Cyan("codenav> "))
		line, err := c.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read input: %w", err)
		}
		eof := errors.Is(err, io.EOF)

		if strings.TrimSpace(line) != "" {
			quit, cmdErr := c.dispatch(line)
			if cmdErr != nil {
				fmt.Fprintf(c.out, "%s %v\n", colors.ErrorText("error:"), cmdErr)
			}
			if quit {
				return nil
			}
		}
		if eof {
			fmt.Fprintln(c.out)
			return nil
		}
	}
}

// dispatch executes one command line.
func (c *console) dispatch(line string) (quit bool, err error) {
	line = strings.TrimRight(line, "\r\n")
	name, raw, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")
	name = strings.TrimSpace(name)
	rest := strings.TrimSpace(raw)

	switch strings.ToLower(name) {
	case "show":
		renderView(c.out, c.ctl.sess.View(), c.opts)

	case "prev", "back":
		if !c.ctl.previous() {
			fmt.Fprintf(c.out, "%s already at the first version\n", colors.InfoText("ℹ"))
			return false, nil
		}
		renderStatus(c.out, c.ctl.sess.View(), c.opts)

	case "next", "forward":
		if !c.ctl.next() {
			fmt.Fprintf(c.out, "%s already at the latest version\n", colors.InfoText("ℹ"))
			return false, nil
		}
		renderStatus(c.out, c.ctl.sess.View(), c.opts)

	case "reset":
		c.ctl.reset()
		renderStatus(c.out, c.ctl.sess.View(), c.opts)

	case "code":
		// Inline code keeps its indentation; only the separator is dropped.
		code := raw
		if rest == "" {
			code, err = c.readCode()
			if err != nil {
				return false, err
			}
		}
		c.ctl.setCode(code)
		fmt.Fprintf(c.out, "%s draft code updated (%d byte(s))\n", colors.SuccessText("✓"), len(code))

	case "lang", "language":
		lang, err := c.ctl.setLanguage(rest)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(c.out, "%s draft language: %s\n", colors.SuccessText("✓"), lang.Label())

	case "desc", "description":
		c.ctl.setDescription(rest)
		if rest == "" {
			fmt.Fprintf(c.out, "%s draft description cleared\n", colors.SuccessText("✓"))
		} else {
			fmt.Fprintf(c.out, "%s draft description: %s\n", colors.SuccessText("✓"), rest)
		}

	case "save":
		n := c.ctl.save()
		fmt.Fprintf(c.out, "%s saved version %d: %s %s\n",
			colors.SuccessText("✓"), versionNumber(n.ID), colors.Bold(n.Description),
			colors.Gray("("+versionLabel(n, c.opts)+")"))

	case "log":
		renderLog(c.out, c.ctl.sess.Chain(), c.ctl.sess.Current().ID, rest == "--oneline", c.opts)

	case "inspect":
		n, err := findVersion(c.ctl.sess.Chain(), rest)
		if err != nil {
			return false, err
		}
		renderNode(c.out, n, c.opts)

	case "languages":
		renderLanguages(c.out)

	case "help", "?":
		fmt.Fprintln(c.out, consoleHelp)

	case "quit", "exit":
		return true, nil

	default:
		return false, fmt.Errorf("unknown command %q (try \"help\")", name)
	}
	return false, nil
}

// readCode collects lines until a line holding only the terminator.
// End of input also ends the block.
func (c *console) readCode() (string, error) {
	fmt.Fprintln(c.out, colors.Dim(`Enter code, finish with a single "." line:`))
	var lines []string
	for {
		line, err := c.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read code: %w", err)
		}
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == endOfCode {
			break
		}
		if trimmed != "" || !errors.Is(err, io.EOF) {
			lines = append(lines, trimmed)
		}
		if errors.Is(err, io.EOF) {
			break
		}
	}
	return strings.Join(lines, "\n"), nil
}
