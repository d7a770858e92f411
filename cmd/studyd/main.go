package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "studyd",
	Short:         "Academic planner for tasks, notes, habits and exams",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func main() {
	// A missing .env is normal; real environment variables still apply.
	_ = godotenv.Load()

	rootCmd.AddCommand(summaryCmd(), exportCmd(), resetCmd(), profileCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "studyd failed: %v\n", err)
		os.Exit(1)
	}
}
