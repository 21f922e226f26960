package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print engine information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("Basalt Engine Information:")
		fmt.Printf("  Version: %s\n", Version)
		fmt.Printf("  Build: %s\n", BuildDate)
		fmt.Println("  Interpreter written in: Go")
		fmt.Printf("  Runtime: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		fmt.Println("  Pipeline: lexer -> parser -> tree-walking interpreter")
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
