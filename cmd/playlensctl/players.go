package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	playersCmd := &cobra.Command{Use: "players", Short: "Player directory operations"}

	// list
	var page, size int
	var search string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List players (paginated)",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			q.Set("pageNumber", fmt.Sprint(page))
			q.Set("pageSize", fmt.Sprint(size))
			if search != "" {
				q.Set("searchTerm", search)
			}
			data, err := doGet(fmt.Sprintf("%s/api/players?%s", apiFlag, q.Encode()))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	listCmd.Flags().IntVarP(&page, "page", "p", 1, "Page number (1-based)")
	listCmd.Flags().IntVarP(&size, "size", "s", 20, "Page size")
	listCmd.Flags().StringVarP(&search, "search", "q", "", "Search term (id or display name)")
	playersCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get PLAYER_ID",
		Short: "Get full player profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/players/%s", apiFlag, args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	playersCmd.AddCommand(getCmd)

	// analytics
	analyticsCmd := &cobra.Command{
		Use:   "analytics PLAYER_ID",
		Short: "Get aggregated analytics for a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/players/%s/analytics", apiFlag, args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	playersCmd.AddCommand(analyticsCmd)

	// files
	filesCmd := &cobra.Command{
		Use:   "files PLAYER_ID",
		Short: "List player files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/players/%s/files", apiFlag, args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	playersCmd.AddCommand(filesCmd)

	rootCmd.AddCommand(playersCmd)
}
