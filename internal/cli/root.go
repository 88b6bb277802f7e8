// Package cli implements the funalg command line: a REPL and a
// one-shot expression evaluator over the algebra core.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/funvibe/funalg/internal/config"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// RootOptions holds the global flags shared by all commands.
type RootOptions struct {
	ConfigPath string
	Color      string // "" means defer to the config file
	Space      string // ambient space override
}

// NewRootCommand creates the funalg root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "funalg",
		Short:         "funalg - tensor algebra calculator",
		Long:          "A calculator over the funalg interop protocol: multivector expressions in mixed spaces, resolved through space unions.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to funalg.yaml (default $HOME/"+config.DefaultFileName+")")
	cmd.PersistentFlags().StringVar(&opts.Color, "color", "", "color output: auto, always or never")
	cmd.PersistentFlags().StringVar(&opts.Space, "space", "", "ambient space tag, e.g. 3D or cl(3,1)")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewReplCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// NewVersionCommand reports the build version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the funalg version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "funalg "+Version)
		},
	}
}

// loadConfig resolves the effective configuration: the YAML file with
// flag overrides on top.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Color != "" {
		cfg.Color = opts.Color
	}
	if opts.Space != "" {
		cfg.Space = opts.Space
	}
	switch cfg.Color {
	case "", "auto", "always", "never":
	default:
		return nil, fmt.Errorf("invalid color mode %q", cfg.Color)
	}
	return cfg, nil
}
