package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the site",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, err := prompt("Email: ")
		if err != nil {
			return err
		}
		password, err := promptSecret("Password: ")
		if err != nil {
			return err
		}
		user, err := api.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}
		printer.Success("Signed in as %s", user.Name)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a site account",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := prompt("Name: ")
		if err != nil {
			return err
		}
		email, err := prompt("Email: ")
		if err != nil {
			return err
		}
		country, err := prompt("Country: ")
		if err != nil {
			return err
		}
		password, err := promptSecret("Password: ")
		if err != nil {
			return err
		}
		user, err := api.Register(cmd.Context(), name, email, password, country)
		if err != nil {
			return err
		}
		printer.Success("Account created for %s", user.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the site",
	RunE: func(cmd *cobra.Command, args []string) error {
		api.Logout()
		printer.Success("Signed out")
		return nil
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the signed-in profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := api.Me(cmd.Context())
		if err != nil {
			return err
		}
		printer.Info("%s <%s> (%s), joined %s",
			user.Name, user.Email, user.Country, user.CreatedAt.Format("2006-01-02"))
		return nil
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Send a dashboard chat message",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, err := api.Chat(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		printer.Info("%s", reply)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, meCmd, chatCmd)
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptSecret(label string) (string, error) {
	fmt.Print(label)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
