package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estateops/triage/internal/core/domain"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "List the document classification taxonomy",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-22s %s\n", "CATEGORY", "CODE")
		for _, c := range domain.Categories() {
			fmt.Printf("%-22s %s\n", c.Label(), c.Code())
		}
	},
}

func init() {
	rootCmd.AddCommand(taxonomyCmd)
}
