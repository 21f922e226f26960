package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "1.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

const banner = "\033[36m" + `
 /$$$$$$$                                /$$   /$$
| $$__  $$                              | $$  | $$
| $$  \ $$  /$$$$$$   /$$$$$$$  /$$$$$$ | $$ /$$$$$$
| $$$$$$$  |____  $$ /$$_____/ |____  $$| $$|_  $$_/
| $$__  $$  /$$$$$$$|  $$$$$$   /$$$$$$$| $$  | $$
| $$  \ $$ /$$__  $$ \____  $$ /$$__  $$| $$  | $$ /$$
| $$$$$$$/|  $$$$$$$ /$$$$$$$/|  $$$$$$$| $$  |  $$$$/
|_______/  \_______/|_______/  \_______/|__/   \___/
` + "\033[0m"

var rootCmd = &cobra.Command{
	Use:   "basalt",
	Short: "The Basalt language interpreter",
	Long: banner + `
Basalt is a small scripting language with immutable-by-default variables,
first-class functions, classes and a direct, line-oriented syntax.

Run a script with 'basalt run script.basalt' or start the interactive
shell with 'basalt repl'.`,
	Version: Version,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), banner)
		fmt.Fprintf(cmd.OutOrStdout(), "Basalt Language v%s\n\n", Version)
		fmt.Fprintln(cmd.OutOrStdout(), "Usage: basalt [run|repl|lex|version|info] [file.basalt]")
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// NormalizeArgs maps the original single-dash flag surface onto the
// subcommands, so `basalt -r script.basalt` and `basalt -re` keep
// working alongside `basalt run` and `basalt repl`. Only the first
// argument is rewritten; everything after it passes through untouched.
func NormalizeArgs(args []string) []string {
	if len(args) < 2 {
		return args
	}
	var sub string
	switch args[1] {
	case "-v", "--version":
		sub = "version"
	case "-h", "--help":
		sub = "help"
	case "-i", "--info":
		sub = "info"
	case "-r", "--run":
		sub = "run"
	case "-re", "--repl":
		sub = "repl"
	default:
		return args
	}
	out := append([]string{args[0], sub}, args[2:]...)
	return out
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored error output")
}

func colorEnabled(cmd *cobra.Command) bool {
	noColor, err := cmd.Flags().GetBool("no-color")
	return err != nil || !noColor
}
