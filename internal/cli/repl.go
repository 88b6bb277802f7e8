package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/funvibe/funalg/internal/evaluator"
	"github.com/funvibe/funalg/internal/parser"
	"github.com/funvibe/funalg/pkg/algebra"
	"github.com/funvibe/funalg/pkg/space"
)

const prompt = "funalg> "

// NewReplCommand starts the interactive loop.
func NewReplCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := newPrinter(cfg.Color, cfg.Precision)
			ambient := cfg.Space

			fmt.Fprintln(out, "funalg "+Version+" (:help for commands, :quit to exit)")
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, prompt)
				if !scanner.Scan() {
					fmt.Fprintln(out)
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if strings.HasPrefix(line, ":") {
					done, next := replCommand(out, p, line, ambient)
					if done {
						return nil
					}
					ambient = next
					continue
				}

				res, err := evalLine(line, ambient)
				if err != nil {
					fmt.Fprintln(out, p.renderError(err))
					continue
				}
				fmt.Fprintln(out, p.renderResult(res))
			}
		},
	}
}

func evalLine(line, ambient string) (algebra.Element, error) {
	expr, err := parser.Parse(line)
	if err != nil {
		return nil, err
	}
	res, err := evaluator.Eval(expr)
	if err != nil {
		return nil, err
	}
	return widen(res, ambient)
}

// replCommand handles colon commands. It returns whether the session
// is over and the (possibly updated) ambient space.
func replCommand(out io.Writer, p *printer, line, ambient string) (bool, string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true, ambient

	case ":space":
		if len(fields) == 1 {
			if ambient == "" {
				fmt.Fprintln(out, "no ambient space")
			} else {
				fmt.Fprintln(out, "ambient space: "+ambient)
			}
			return false, ambient
		}
		tag, err := space.Parse(fields[1])
		if err != nil {
			fmt.Fprintln(out, p.renderError(err))
			return false, ambient
		}
		fmt.Fprintln(out, "ambient space: "+tag.String())
		return false, tag.String()

	case ":norm":
		rest := strings.TrimSpace(strings.TrimPrefix(line, ":norm"))
		if rest == "" {
			fmt.Fprintln(out, p.renderError(fmt.Errorf("usage: :norm <expression>")))
			return false, ambient
		}
		res, err := evalLine(rest, ambient)
		if err != nil {
			fmt.Fprintln(out, p.renderError(err))
			return false, ambient
		}
		n, err := algebra.Norm(res)
		if err != nil {
			fmt.Fprintln(out, p.renderError(err))
			return false, ambient
		}
		fmt.Fprintln(out, p.renderScalar(n))
		return false, ambient

	case ":help":
		fmt.Fprintln(out, "expressions: numbers, blades (e1, 2e12), I, operators + - * ^ | @, prefix - ~")
		fmt.Fprintln(out, "commands: :space [tag]  :norm <expr>  :quit")
		return false, ambient

	default:
		fmt.Fprintln(out, p.renderError(fmt.Errorf("unknown command %s", fields[0])))
		return false, ambient
	}
}
