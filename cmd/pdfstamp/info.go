package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfstamp/internal/document"
)

var infoCmd = &cobra.Command{
	Use:   "info input.pdf",
	Short: "Print page count, page dimensions, and validation status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := document.Inspect(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d pages\n", args[0], info.Pages)
		for i, d := range info.Dims {
			fmt.Printf("  page %d: %.2f x %.2f pt\n", i+1, d.W, d.H)
		}

		if err := document.Validate(args[0]); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Println("validation: ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
