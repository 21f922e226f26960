package cmd

import (
	"os"

	"github.com/BasaltDev/BasaltLang/pkg/basalt"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file> [args...]",
	Short: "Run a Basalt script",
	Long: `Interpret a Basalt script file. Arguments after the file name are
exposed to the script through the immutable argv list and argc counter.

Examples:
  # Run a script
  basalt run script.basalt

  # Run a script with arguments
  basalt run script.basalt one two`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine := basalt.NewEngine()
		engine.Args = args[1:]
		engine.Color = colorEnabled(cmd)
		if code := engine.RunFile(args[0]); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
