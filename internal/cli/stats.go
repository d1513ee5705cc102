package cli

import (
	"fmt"
	"os"

	svgdom "github.com/RazrFalcon/svgdom"
	"github.com/RazrFalcon/svgdom/parser"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "report structural statistics about an SVG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			result, err := parser.Parse(f, svgdom.DefaultParseOptions())
			if err != nil {
				return err
			}
			for _, w := range result.Warnings {
				logger.Warn(w.String())
			}

			elements, text, comments, attrs := 0, 0, 0, 0
			nodes := append([]*svgdom.Node{result.Document.Root}, result.Document.Root.Descendants()...)
			for _, n := range nodes {
				switch n.Kind {
				case svgdom.KindElement:
					elements++
					attrs += n.Attrs.Len()
				case svgdom.KindText:
					text++
				case svgdom.KindComment:
					comments++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "elements: %d\n", elements)
			fmt.Fprintf(out, "text nodes: %d\n", text)
			fmt.Fprintf(out, "comments: %d\n", comments)
			fmt.Fprintf(out, "attributes: %d\n", attrs)
			fmt.Fprintf(out, "warnings: %d\n", len(result.Warnings))
			return nil
		},
	}
	return cmd
}
