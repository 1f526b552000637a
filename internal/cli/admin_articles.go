package cli

import (
	"github.com/spf13/cobra"

	"github.com/halcyon-ai/halcyon/client"
	"github.com/halcyon-ai/halcyon/internal/output"
)

var adminArticlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "Manage published articles",
}

var adminArticlesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := guardAdmin(); err != nil {
			return err
		}
		articles, err := api.AdminArticles(cmd.Context())
		if err != nil {
			return err
		}
		table := output.NewTable([]string{"ID", "Published", "Category", "Title"})
		for _, a := range articles {
			table.AddRow([]string{a.ID, a.PublishedAt.Format("2006-01-02"), a.Category, a.Title})
		}
		table.Render()
		return nil
	},
}

var adminArticlesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a new article",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := guardAdmin(); err != nil {
			return err
		}
		draft, err := articleDraftFromFlags(cmd)
		if err != nil {
			return err
		}
		created, err := api.AdminCreateArticle(cmd.Context(), draft)
		if err != nil {
			return err
		}
		printer.Success("Published article %s", created.ID)
		return nil
	},
}

var adminArticlesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := guardAdmin(); err != nil {
			return err
		}
		draft, err := articleDraftFromFlags(cmd)
		if err != nil {
			return err
		}
		updated, err := api.AdminUpdateArticle(cmd.Context(), args[0], draft)
		if err != nil {
			return err
		}
		printer.Success("Updated article %s", updated.ID)
		return nil
	},
}

var adminArticlesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := guardAdmin(); err != nil {
			return err
		}
		if err := api.AdminDeleteArticle(cmd.Context(), args[0]); err != nil {
			return err
		}
		printer.Success("Deleted article %s", args[0])
		return nil
	},
}

// articleDraftFromFlags reads the draft fields, prompting for any not
// given as flags.
func articleDraftFromFlags(cmd *cobra.Command) (client.ArticleDraft, error) {
	var draft client.ArticleDraft
	var err error

	draft.Title, _ = cmd.Flags().GetString("title")
	draft.Excerpt, _ = cmd.Flags().GetString("excerpt")
	draft.Category, _ = cmd.Flags().GetString("category")
	draft.Content, _ = cmd.Flags().GetString("content")

	if draft.Title == "" {
		if draft.Title, err = prompt("Title: "); err != nil {
			return draft, err
		}
	}
	if draft.Excerpt == "" {
		if draft.Excerpt, err = prompt("Excerpt: "); err != nil {
			return draft, err
		}
	}
	if draft.Category == "" {
		if draft.Category, err = prompt("Category: "); err != nil {
			return draft, err
		}
	}
	if draft.Content == "" {
		if draft.Content, err = prompt("Content: "); err != nil {
			return draft, err
		}
	}
	return draft, nil
}

func init() {
	for _, cmd := range []*cobra.Command{adminArticlesCreateCmd, adminArticlesUpdateCmd} {
		cmd.Flags().String("title", "", "article title")
		cmd.Flags().String("excerpt", "", "short summary shown in listings")
		cmd.Flags().String("category", "", "article category")
		cmd.Flags().String("content", "", "full article body")
	}

	adminArticlesCmd.AddCommand(
		adminArticlesListCmd, adminArticlesCreateCmd, adminArticlesUpdateCmd, adminArticlesDeleteCmd,
	)
	adminCmd.AddCommand(adminArticlesCmd)
}
