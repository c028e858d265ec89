package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/javanhut/codenav/internal/colors"
	"github.com/javanhut/codenav/internal/config"
	"github.com/javanhut/codenav/internal/logger"
	"github.com/javanhut/codenav/internal/seals"
	"github.com/javanhut/codenav/internal/versions"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codenav",
	Short: "Step through versions of a code snippet",
	Long: `codenav keeps every version of a code snippet you save during a session
and lets you move back and forward between them, like browser history.

Versions live in memory only and are discarded when the session ends.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	flagLogLevel string
	flagNoColor  bool
)

// Loaded by setup before any command runs.
var (
	appConfig *config.Config
	appLog    *logger.Logger
)

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(navigateCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(configCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = loaded

	if flagLogLevel != "" {
		appConfig.Log.Level = flagLogLevel
	}
	if flagNoColor || !appConfig.Display.Color {
		colors.SetColorEnabled(false)
	}

	appLog = logger.NewLogger(logger.Config{
		Level:  appConfig.Log.Level,
		Pretty: appConfig.Log.Pretty,
		Output: cmd.ErrOrStderr(),
	})
	return nil
}

// newSession starts a session configured from appConfig and a logger tagged
// with a fresh session id.
func newSession(frontend string) (*versions.Session, *logger.Logger) {
	sess := versions.NewSession(versions.Options{
		TimestampLayout: appConfig.Display.TimestampLayout,
	})
	sessionLog := appLog.SessionLogger(uuid.New().String(), frontend)
	sessionLog.LogSessionStart(seals.Generate(sess.Current().Fingerprint))
	return sess, sessionLog
}

func renderOpts() renderOptions {
	return renderOptions{names: appConfig.Display.Names}
}

// endSession logs how the session went.
func endSession(sess *versions.Session, sessionLog *logger.Logger, started time.Time) {
	sessionLog.LogSessionEnd(sess.Chain().Len(), time.Since(started))
}
