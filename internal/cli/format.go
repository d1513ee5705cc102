package cli

import (
	"os"

	svgdom "github.com/RazrFalcon/svgdom"
	"github.com/RazrFalcon/svgdom/parser"
	"github.com/RazrFalcon/svgdom/writer"
	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	var pretty bool
	var indentAmount int

	cmd := &cobra.Command{
		Use:   "format <file>",
		Short: "parse an SVG file and re-serialize it",
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

			opts := svgdom.DefaultWriteOptions()
			if pretty {
				opts.Indent = svgdom.Indent{Kind: svgdom.IndentSpaces, Amount: uint8(indentAmount)}
				opts.AttributesOrder = svgdom.OrderSpecification
			}

			out := writer.Write(result.Document, opts)
			_, err = cmd.OutOrStdout().Write([]byte(out))
			return err
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent output and order attributes per the specification order")
	cmd.Flags().IntVar(&indentAmount, "indent", 2, "spaces per indent level, when --pretty is set")
	return cmd
}
