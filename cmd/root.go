package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"archive-listing/internal/config"
	"archive-listing/internal/logging"
	"archive-listing/internal/parser"
)

type options struct {
	envFile  string
	logLevel string
	format   string
	limit    int

	cfg    config.Config
	logger *pterm.Logger
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:   "archive-listing",
		Short: "Decode 7-Zip listings into archive entries",
		Long: "archive-listing reads the output of \"7z l -slt\" and \"7z t\" and prints\n" +
			"the archive and its entries. It can also produce the same listing\n" +
			"in-process for 7z, zip, rar, tar, gzip, xz and bzip2 archives.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&o.envFile, "env-file", ".env", "Environment file with ARCHIVE_LISTING_* defaults")
	rootCmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error, disabled)")
	rootCmd.PersistentFlags().StringVarP(&o.format, "format", "f", config.FormatTable, "Output format (table, json)")

	rootCmd.AddCommand(
		newEntriesCmd(o),
		newInfoCmd(o),
		newWarningsCmd(o),
		newNativeCmd(o),
		newScanCmd(o),
	)
	return rootCmd
}

func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("format") {
		cfg.Format = strings.ToLower(o.format)
	}
	if f := flags.Lookup("limit"); f != nil && f.Changed {
		cfg.Limit = o.limit
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.logger = logger
	return nil
}

// openInput opens the file named by the first argument, or stdin when there
// is none or it is "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open listing: %w", err)
	}
	return f, nil
}

func readListing(cmd *cobra.Command, args []string) (*parser.Parser, error) {
	in, err := openInput(cmd, args)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	p, err := parser.FromReader(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read listing: %w", err)
	}
	return p, nil
}
