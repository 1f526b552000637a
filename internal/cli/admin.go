package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halcyon-ai/halcyon/client"
	"github.com/halcyon-ai/halcyon/internal/output"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Executive admin console",
}

// guardAdmin is the route protector for console commands: it derives
// the admin auth state from storage and refuses to call the API unless
// fully authenticated, naming the screen the operator must visit.
func guardAdmin() error {
	switch client.Require(api.AdminSession().State()) {
	case client.RedirectLogin:
		return errors.New("not signed in: run 'halcyonctl admin login'")
	case client.RedirectChangePassword:
		return errors.New("password change required: run 'halcyonctl admin change-password'")
	default:
		return nil
	}
}

var adminLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the admin console",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := prompt("Username: ")
		if err != nil {
			return err
		}
		password, err := promptSecret("Password: ")
		if err != nil {
			return err
		}
		next, err := api.AdminLogin(cmd.Context(), username, password)
		if err != nil {
			return err
		}
		if next == client.RedirectChangePassword {
			printer.Warn("For security, you must change your password on first login.")
			printer.Info("Run 'halcyonctl admin change-password' to continue.")
			return nil
		}
		printer.Success("Signed in to the admin console")
		return nil
	},
}

var adminChangePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Change the admin password",
	RunE: func(cmd *cobra.Command, args []string) error {
		if client.RequireForPasswordChange(api.AdminSession().State()) == client.RedirectLogin {
			return errors.New("not signed in: run 'halcyonctl admin login'")
		}
		current, err := promptSecret("Current password: ")
		if err != nil {
			return err
		}
		next, err := promptSecret("New password: ")
		if err != nil {
			return err
		}
		confirm, err := promptSecret("Confirm new password: ")
		if err != nil {
			return err
		}
		if err := api.AdminChangePassword(cmd.Context(), current, next, confirm); err != nil {
			return err
		}
		printer.Success("Password changed")
		return nil
	},
}

var adminLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the admin console",
	RunE: func(cmd *cobra.Command, args []string) error {
		api.AdminLogout()
		printer.Success("Signed out of the admin console")
		return nil
	},
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := guardAdmin(); err != nil {
			return err
		}
		stats, err := api.AdminStats(cmd.Context())
		if err != nil {
			return err
		}
		table := output.NewTable([]string{"Metric", "Count"})
		table.AddRow([]string{"Users", fmt.Sprint(stats.Users)})
		table.AddRow([]string{"Articles", fmt.Sprint(stats.Articles)})
		table.AddRow([]string{"Contacts", fmt.Sprint(stats.Contacts)})
		table.AddRow([]string{"Investor inquiries", fmt.Sprint(stats.InvestorInquiries)})
		table.AddRow([]string{"Chat messages", fmt.Sprint(stats.ChatMessages)})
		table.Render()
		return nil
	},
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := guardAdmin(); err != nil {
			return err
		}
		users, err := api.AdminUsers(cmd.Context())
		if err != nil {
			return err
		}
		table := output.NewTable([]string{"Joined", "Name", "Email", "Country"})
		for _, u := range users {
			table.AddRow([]string{u.CreatedAt.Format("2006-01-02"), u.Name, u.Email, u.Country})
		}
		table.Render()
		return nil
	},
}

var adminContactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "List contact-form submissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := guardAdmin(); err != nil {
			return err
		}
		contacts, err := api.AdminContacts(cmd.Context())
		if err != nil {
			return err
		}
		table := output.NewTable([]string{"Received", "Name", "Email", "Subject", "Message"})
		for _, c := range contacts {
			table.AddRow([]string{
				c.CreatedAt.Format("2006-01-02"), c.Name, c.Email, c.Subject, truncate(c.Message, 50),
			})
		}
		table.Render()
		return nil
	},
}

var adminInquiriesCmd = &cobra.Command{
	Use:   "inquiries",
	Short: "List investor inquiries",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := guardAdmin(); err != nil {
			return err
		}
		inquiries, err := api.AdminInquiries(cmd.Context())
		if err != nil {
			return err
		}
		table := output.NewTable([]string{"Received", "Name", "Email", "Company", "Range"})
		for _, q := range inquiries {
			table.AddRow([]string{
				q.CreatedAt.Format("2006-01-02"), q.Name, q.Email, q.Company, q.InvestmentRange,
			})
		}
		table.Render()
		return nil
	},
}

var adminChatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Send a console chat message",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := guardAdmin(); err != nil {
			return err
		}
		reply, err := api.AdminChat(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		printer.Info("%s", reply)
		return nil
	},
}

func init() {
	adminCmd.AddCommand(
		adminLoginCmd, adminChangePasswordCmd, adminLogoutCmd,
		adminStatsCmd, adminUsersCmd, adminContactsCmd, adminInquiriesCmd, adminChatCmd,
	)
	rootCmd.AddCommand(adminCmd)
}
