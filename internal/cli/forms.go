package cli

import (
	"github.com/spf13/cobra"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a contact-form message",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := prompt("Name: ")
		if err != nil {
			return err
		}
		email, err := prompt("Email: ")
		if err != nil {
			return err
		}
		subject, err := prompt("Subject: ")
		if err != nil {
			return err
		}
		message, err := prompt("Message: ")
		if err != nil {
			return err
		}
		if err := api.SubmitContact(cmd.Context(), name, email, subject, message); err != nil {
			return err
		}
		printer.Success("Message sent")
		return nil
	},
}

var investCmd = &cobra.Command{
	Use:   "invest",
	Short: "Send an investor inquiry",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := prompt("Name: ")
		if err != nil {
			return err
		}
		email, err := prompt("Email: ")
		if err != nil {
			return err
		}
		company, err := prompt("Company (optional): ")
		if err != nil {
			return err
		}
		investmentRange, err := prompt("Investment range (optional): ")
		if err != nil {
			return err
		}
		message, err := prompt("Message (optional): ")
		if err != nil {
			return err
		}
		if err := api.SubmitInquiry(cmd.Context(), name, email, company, investmentRange, message); err != nil {
			return err
		}
		printer.Success("Inquiry sent")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(contactCmd, investCmd)
}
