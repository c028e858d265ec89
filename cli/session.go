package cli

import (
	"time"

	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start a line-oriented navigator session",
	Long: `Start a session that reads one command per line from standard input.
It works in any terminal and with piped input.

Examples:
  codenav session
  printf 'lang java\ncode class A {}\nsave\nprev\nlog\n' | codenav session`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

func runSession(cmd *cobra.Command, args []string) error {
	started := time.Now()
	sess, sessionLog := newSession("console")
	defer endSession(sess, sessionLog, started)

	c := newConsole(newController(sess, sessionLog), cmd.InOrStdin(), cmd.OutOrStdout(), renderOpts())
	return c.run()
}
