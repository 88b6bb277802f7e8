package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/funvibe/funalg/internal/evaluator"
	"github.com/funvibe/funalg/internal/parser"
)

// NewEvalCommand evaluates one expression and prints the result.
func NewEvalCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate a single expression",
		Example: `  funalg eval "e1 + e2"
  funalg eval "2e12 * (1 + e1)"
  funalg eval --space cl(3,1) "I | e12"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			input := strings.Join(args, " ")
			expr, err := parser.Parse(input)
			if err != nil {
				return err
			}
			res, err := evaluator.Eval(expr)
			if err != nil {
				return err
			}
			res, err = widen(res, cfg.Space)
			if err != nil {
				return err
			}

			p := newPrinter(cfg.Color, cfg.Precision)
			fmt.Fprintln(cmd.OutOrStdout(), p.renderResult(res))
			return nil
		},
	}
}
