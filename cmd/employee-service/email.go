package main

import (
	"fmt"

	"github.com/deppfellow/employee-service/internal/lib/email"
	"github.com/spf13/cobra"
)

var emailPreviewCmd = &cobra.Command{
	Use:   "email-preview [template]",
	Short: "Render an email template with sample data to stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := email.TemplateWelcome
		if len(args) == 1 {
			name = email.Template(args[0])
		}

		body, err := email.Preview(name)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), body)
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("employee-service version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(emailPreviewCmd)
	rootCmd.AddCommand(versionCmd)
}
