package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/javanhut/codenav/internal/colors"
	"github.com/javanhut/codenav/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get and set configuration options",
	Long: `Get and set codenav configuration options.

Settings are stored in ~/.codenavconfig. Environment variables (or a .env
file in the working directory) override them:
  CODENAV_TIMESTAMP_LAYOUT, CODENAV_COLOR, CODENAV_NAMES,
  CODENAV_LOG_LEVEL, CODENAV_LOG_PRETTY

Examples:
  codenav config display.timestamp "Jan 2 15:04"
  codenav config display.names false
  codenav config log.level debug
  codenav config --list
  codenav config log.level`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

var configList bool

func init() {
	configCmd.Flags().BoolVar(&configList, "list", false, "List all configuration")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if configList {
		listConfig(out, appConfig)
		return nil
	}

	switch len(args) {
	case 1:
		value, err := appConfig.Get(args[0])
		if err != nil {
			return err
		}
		if value == "" {
			fmt.Fprintf(out, "%s is %s\n", args[0], colors.Gray("(not set)"))
		} else {
			fmt.Fprintln(out, value)
		}
		return nil

	case 2:
		if err := config.SetValue(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s = %s\n",
			colors.SuccessText("Set"),
			colors.Bold(args[0]),
			colors.InfoText(args[1]))
		return nil
	}

	return fmt.Errorf("invalid usage. See: codenav config --help")
}

func listConfig(out io.Writer, cfg *config.Config) {
	current := ""
	for _, key := range config.Keys() {
		section, _, _ := strings.Cut(key, ".")
		if section != current {
			if current != "" {
				fmt.Fprintln(out)
			}
			current = section
			fmt.Fprintln(out, colors.SectionHeader(section+":"))
		}
		value, _ := cfg.Get(key)
		fmt.Fprintf(out, "  %s = %s\n", key, colors.InfoText(value))
	}
}
