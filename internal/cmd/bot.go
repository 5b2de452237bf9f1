package cmd

import (
	"github.com/Kalmar41k/goit-algo-hw-05/internal/repl"
	"github.com/spf13/cobra"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the interactive contact assistant",
	Long: `Start a read-eval-print loop for managing an in-memory contact book.

Commands:
  add <name> <phone>     add a contact (overwrites an existing name)
  change <name> <phone>  update an existing contact
  phone <name>           look up a contact's number
  all                    list every saved contact
  hello                  greet the assistant
  exit | close           quit

Contacts live only for the session; nothing is persisted.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repl.New(cmd.InOrStdin(), cmd.OutOrStdout()).Run()
	},
}

func init() {
	rootCmd.AddCommand(botCmd)
}
