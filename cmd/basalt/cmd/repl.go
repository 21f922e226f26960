package cmd

import (
	"fmt"
	"os"

	"github.com/BasaltDev/BasaltLang/internal/repl"
	"github.com/BasaltDev/BasaltLang/pkg/platform"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive Basalt shell",
	Long: `Start a read-eval-print loop. Variables, functions, classes and
instances persist across lines; errors are printed without ending the
session. Exit with exit() or end-of-input.`,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(os.Stdout, banner)
		fmt.Fprintf(os.Stdout, "Basalt REPL v%s\n", Version)
		dir, err := os.Getwd()
		if err != nil {
			dir = "."
		}
		code := repl.Start(os.Stdin, os.Stdout, os.Stderr, repl.Options{
			Host:  platform.NewConsole(),
			Dir:   dir,
			Color: colorEnabled(cmd),
		})
		if code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
