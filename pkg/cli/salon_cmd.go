package cli

import (
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func newSalonCmd(newClient func() *Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salon",
		Short: "Inspect salons",
	}

	cmd.AddCommand(newSalonGetCmd(newClient))
	cmd.AddCommand(newSalonStaffCmd(newClient))
	return cmd
}

func newSalonGetCmd(newClient func() *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "get <salon-id>",
		Short: "Show a salon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var salon struct {
				ID        string    `json:"id"`
				Name      string    `json:"name"`
				Timezone  string    `json:"timezone"`
				Active    bool      `json:"active"`
				CreatedAt time.Time `json:"created_at"`
			}
			if err := newClient().DoJSON(http.MethodGet, "/salons/"+args[0], nil, nil, &salon); err != nil {
				return err
			}

			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, salon)
			}
			columns := []string{"id", "name", "timezone", "active"}
			active := "no"
			if salon.Active {
				active = "yes"
			}
			PrintTable(cmd.OutOrStdout(), columns, [][]string{{salon.ID, salon.Name, salon.Timezone, active}})
			return nil
		},
	}
}

func newSalonStaffCmd(newClient func() *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "staff <salon-id>",
		Short: "List a salon's staff",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				Staff []struct {
					ID    string `json:"id"`
					Name  string `json:"name"`
					Email string `json:"email"`
					Role  string `json:"role"`
				} `json:"staff"`
				Total int `json:"total"`
			}
			if err := newClient().DoJSON(http.MethodGet, "/salons/"+args[0]+"/staff", nil, nil, &result); err != nil {
				return err
			}

			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, result)
			}
			columns := []string{"id", "name", "email", "role"}
			rows := make([][]string, 0, len(result.Staff))
			for _, m := range result.Staff {
				rows = append(rows, []string{m.ID, m.Name, m.Email, m.Role})
			}
			PrintTable(cmd.OutOrStdout(), columns, rows)
			return nil
		},
	}
}
