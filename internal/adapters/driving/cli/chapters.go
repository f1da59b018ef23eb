package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters",
	Short: "List the eighteen chapters",
	Long:  `Lists every chapter of the Bhagavad Gita with its name and summary.`,
	RunE:  runChapters,
}

var chaptersThemesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List themes and the chapters that cover them",
	RunE:  runChapterThemes,
}

func init() {
	chaptersCmd.AddCommand(chaptersThemesCmd)
	rootCmd.AddCommand(chaptersCmd)
}

func runChapters(cmd *cobra.Command, _ []string) error {
	if browseService == nil {
		return errors.New("browse service not configured")
	}

	cmd.Println("The Bhagavad Gita")
	cmd.Println()
	for _, ch := range browseService.Chapters() {
		cmd.Printf("  %2d. %s\n", ch.Number, ch.Name)
		cmd.Printf("      %s\n", ch.Summary)
	}
	return nil
}

func runChapterThemes(cmd *cobra.Command, _ []string) error {
	if browseService == nil {
		return errors.New("browse service not configured")
	}

	cmd.Println("Themes:")
	cmd.Println()
	for _, theme := range browseService.Themes() {
		chapters := make([]string, len(theme.Chapters))
		for i, n := range theme.Chapters {
			chapters[i] = strconv.Itoa(n)
		}
		cmd.Printf("  %-22s chapters %s\n", theme.Name, strings.Join(chapters, ", "))
	}
	return nil
}
