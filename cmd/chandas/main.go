// Command chandas identifies the meter of Sanskrit verse from the command
// line.
//
//	chandas identify verse.txt
//	echo "yadA yadA hi Darmasya ..." | chandas identify --resplit light-resplit
//	chandas scan --format json verse.txt
//	chandas meters --family 8,11-14
//	chandas batch --root corpus "**/*.txt"
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options carries the persistent flags shared by all subcommands.
type options struct {
	format   string
	color    string
	resplit  string
	scheme   string
	workers  int
	pin      bool
	catalog  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "chandas",
		Short:        "Sanskrit meter identification",
		Long:         `chandas scans romanised Sanskrit verse into light and heavy syllables and names its meter`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(opts.format); err != nil {
				return err
			}
			return setupColor(cmd.OutOrStdout(), opts.color)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.format, "format", formatPretty, "output format (pretty|json|yaml)")
	pf.StringVar(&opts.color, "color", "auto", "colorize output (auto|on|off)")
	pf.StringVar(&opts.resplit, "resplit", "none", "pāda break handling (none|aggressive-resplit|light-resplit|single-quarter)")
	pf.StringVar(&opts.scheme, "scheme", "", "input transliteration (IAST|HK|SLP); detected when empty")
	pf.IntVar(&opts.workers, "workers", 1, "concurrent resegmentation trials (0=auto)")
	pf.BoolVar(&opts.pin, "pin-middle", false, "keep the middle pāda break fixed in light-resplit")
	pf.StringVar(&opts.catalog, "catalog", "", "TOML file extending the built-in meter catalogue")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level on stderr (debug|info|warn|error)")

	root.AddCommand(
		newIdentifyCmd(opts),
		newScanCmd(opts),
		newMetersCmd(opts),
		newBatchCmd(opts),
	)
	return root
}

func checkFormat(f string) error {
	switch f {
	case formatPretty, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown format %q (want pretty, json or yaml)", f)
}
