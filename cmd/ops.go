package cmd

import (
	"fmt"

	"shop-reconciler/core/batch"

	"github.com/spf13/cobra"
)

// opsCmd lists the valid operation codes for the run command.
var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List valid operation codes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, code := range batch.Codes() {
			fmt.Println(code)
		}
	},
}

func init() {
	RootCmd.AddCommand(opsCmd)
}
