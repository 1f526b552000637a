package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/halcyon-ai/halcyon/client"
	"github.com/halcyon-ai/halcyon/internal/output"
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Browse published articles",
	Long: `List the public news feed, twelve articles per page.

Examples:
  halcyonctl news                      # First page
  halcyonctl news --page 3             # Jump to a page
  halcyonctl news --search robotics    # Search; always starts at page 1`,
	RunE: runNews,
}

func init() {
	rootCmd.AddCommand(newsCmd)

	newsCmd.Flags().String("search", "", "search query")
	newsCmd.Flags().Int("page", 1, "page number")
}

func runNews(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	page, _ := cmd.Flags().GetInt("page")

	browser := client.NewArticleBrowser(api)
	if search != "" {
		// A search submit resets to page 1; an explicit --page then
		// pages within the same search.
		browser.SubmitSearch(cmd.Context(), search)
		if page > 1 {
			browser.SetPage(cmd.Context(), page)
		}
	} else {
		browser.SetPage(cmd.Context(), page)
	}

	articles := browser.Articles()
	if len(articles) == 0 {
		printer.Info("No articles found.")
		return nil
	}

	table := output.NewTable([]string{"Published", "Category", "Title", "Excerpt"})
	for _, a := range articles {
		table.AddRow([]string{
			a.PublishedAt.Format("2006-01-02"),
			a.Category,
			a.Title,
			truncate(a.Excerpt, 60),
		})
	}
	table.Render()

	printer.Info("\nPage %d of %d (%d articles)   %s",
		browser.Page(), browser.TotalPages(), browser.Total(), pageStrip(browser))
	return nil
}

// pageStrip renders the ellipsis-compressed page window, bracketing the
// current page.
func pageStrip(b *client.ArticleBrowser) string {
	parts := make([]string, 0, 9)
	for _, entry := range b.Window() {
		label := entry.String()
		if !entry.IsEllipsis() && int(entry) == b.Page() {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
