package harvest

import (
	"fmt"
	"io"
	"os"

	"github.com/Nrich-sunny/reviewcrawler/parse/commonsense"
	"github.com/spf13/cobra"
)

var HarvestCmd = &cobra.Command{
	Use:   "harvest <search-results.html>...",
	Short: "extract review urls from saved search result pages.",
	Long:  "extract review urls from saved search result pages, print them or append them to a url list file.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var w io.Writer = cmd.OutOrStdout()
		if outFile != "" {
			f, err := os.OpenFile(outFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		n, err := Run(args, pattern, w)
		if err != nil {
			return err
		}
		if outFile != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Found %d review URLs, appended to %s\n", n, outFile)
		}
		return nil
	},
}

var (
	outFile string
	pattern string
)

func init() {
	HarvestCmd.Flags().StringVar(&outFile, "out", "", "append urls to this file instead of printing them")
	HarvestCmd.Flags().StringVar(&pattern, "pattern", commonsense.NodeLinkPattern, "substring a review url must contain")
}

// Run 依次处理每个页面，同一个地址只输出一次，返回输出的地址数
func Run(paths []string, pattern string, w io.Writer) (int, error) {
	seen := make(map[string]struct{})
	count := 0
	for _, path := range paths {
		body, err := os.ReadFile(path)
		if err != nil {
			return count, fmt.Errorf("read %s: %w", path, err)
		}
		urls, err := commonsense.HarvestLinks(body, pattern)
		if err != nil {
			return count, fmt.Errorf("parse %s: %w", path, err)
		}
		for _, u := range urls {
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			if _, err := fmt.Fprintln(w, u); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
