// Package cli provides the command-line interface for benchcalc.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"benchcalc/internal/adc"
	"benchcalc/internal/config"
	"benchcalc/internal/input"
	"benchcalc/internal/logging"
	"benchcalc/internal/rc"
)

// GUILauncher opens the desktop form. It is called when no subcommand is given.
type GUILauncher func(settings config.Settings) error

type rootOptions struct {
	configFile string
	output     string
	settings   config.Settings
}

// NewRootCommand builds the command tree. launch is invoked for a bare
// `benchcalc` with no subcommand.
func NewRootCommand(launch GUILauncher) *cobra.Command {
	opts := &rootOptions{}
	defaults := config.DefaultSettings()

	root := &cobra.Command{
		Use:   "benchcalc",
		Short: "ADC code and RC oscillator calculator.",
		Long: `benchcalc converts voltages to 10-bit ADC codes and computes RC ` +
			`oscillator frequencies. Run without a subcommand to open the ` +
			`desktop form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if launch == nil {
				return cmd.Help()
			}
			return launch(opts.settings)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "Settings file (default: ./benchcalc.yaml or ~/.config/benchcalc/benchcalc.yaml)")
	pf.StringVarP(&opts.output, "output", "o", "", "Append results to a CSV report (a .txt twin is written alongside)")
	pf.Int(config.KeyPrecision, defaults.Precision, "Significant digits in printed values (-1 = shortest exact)")
	pf.String(config.KeyLogLevel, defaults.LogLevel, "Log level: debug, info, warn, error")
	pf.String(config.KeyReportDir, defaults.ReportDir, "Default directory for GUI report exports")

	root.AddCommand(newADCCommand(opts), newRCCommand(opts))
	return root
}

// load resolves settings from defaults, file, environment and flags, then
// configures logging.
func (o *rootOptions) load(cmd *cobra.Command) error {
	v, err := config.New(o.configFile)
	if err != nil {
		return err
	}
	for _, key := range []string{config.KeyPrecision, config.KeyLogLevel, config.KeyReportDir} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return fmt.Errorf("bind flag %s: %w", key, err)
		}
	}

	s, err := config.FromViper(v)
	if err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	o.settings = s
	logging.Setup(s.LogLevel)
	return nil
}

func newADCCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adc <volts>",
		Short: "Convert a voltage to a 10-bit ADC code.",
		Long: `Convert a voltage to a 10-bit ADC code (5 V full scale). ` +
			`Voltages outside 0-5 V are replaced with 2.5 V.`,
		Example: `  benchcalc adc 3.3
  benchcalc adc -- -1.2
  benchcalc adc table --points 21`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			volts, err := input.ParseFloat(adc.FieldVoltage, args[0])
			if err != nil {
				return err
			}
			r := NewRunner(cmd.OutOrStdout(), opts.settings, opts.output)
			_, err = r.ConvertVoltage(volts)
			return err
		},
	}

	var from, to float64
	var points int
	table := &cobra.Command{
		Use:   "table",
		Short: "Print a voltage-to-code transfer table.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := NewRunner(cmd.OutOrStdout(), opts.settings, opts.output)
			_, err := r.Sweep(from, to, points)
			return err
		},
	}
	table.Flags().Float64Var(&from, "from", 0, "First voltage")
	table.Flags().Float64Var(&to, "to", 5, "Last voltage")
	table.Flags().IntVar(&points, "points", 11, "Number of evenly spaced voltages")

	cmd.AddCommand(table)
	return cmd
}

func newRCCommand(opts *rootOptions) *cobra.Command {
	var resText, capText string

	cmd := &cobra.Command{
		Use:   "rc",
		Short: "Compute an RC oscillator frequency, 1/(2*pi*R*C).",
		Example: `  benchcalc rc -r 1000 -c 0.000001
  benchcalc rc --resistance 4.7e3 --capacitance 10e-9 --precision 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := NewRunner(cmd.OutOrStdout(), opts.settings, opts.output)
			_, err := r.Frequency(resText, capText)
			return err
		},
	}
	cmd.Flags().StringVarP(&resText, rc.FieldResistance, "r", "", "Resistance in ohms")
	cmd.Flags().StringVarP(&capText, rc.FieldCapacitance, "c", "", "Capacitance in farads")
	_ = cmd.MarkFlagRequired(rc.FieldResistance)
	_ = cmd.MarkFlagRequired(rc.FieldCapacitance)
	return cmd
}

// Execute builds the command tree and runs it against os.Args.
func Execute(launch GUILauncher) error {
	return NewRootCommand(launch).Execute()
}
