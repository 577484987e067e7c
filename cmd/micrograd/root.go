package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd builds the command tree. Output goes to out.
func newRootCmd(out io.Writer) *cobra.Command {
	cfg := viper.New()
	cfg.SetEnvPrefix("MICROGRAD")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	root := &cobra.Command{
		Use:           "micrograd",
		Short:         "Scalar reverse-mode automatic differentiation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Show version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "micrograd %s\n", version)
			},
		},
		newGradCmd(cfg),
	)
	return root
}
