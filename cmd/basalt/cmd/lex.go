package cmd

import (
	"fmt"
	"os"

	"github.com/BasaltDev/BasaltLang/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a Basalt script (for debugging)",
	Long: `Print the token sequence produced by the lexer, one token per line
as TYPE(literal). Newline tokens print as bare NEWLINE.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		l := lexer.New(string(data))
		for _, tok := range l.Tokenize() {
			switch tok.Type {
			case lexer.EOF:
				fmt.Println("EOF")
			case lexer.NEWLINE:
				fmt.Println("NEWLINE")
			default:
				fmt.Printf("%s(%s)\n", tok.Type, tok.Literal)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
