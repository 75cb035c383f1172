package cli

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// sessionView mirrors the API's support session representation.
type sessionView struct {
	ID         string     `json:"id"`
	SalonID    string     `json:"salon_id"`
	CreatedBy  string     `json:"created_by"`
	Reason     string     `json:"reason"`
	IssuedAt   time.Time  `json:"issued_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	ConsumedAt *time.Time `json:"consumed_at,omitempty"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
}

func sessionState(s sessionView) string {
	switch {
	case s.RevokedAt != nil:
		return "revoked"
	case s.ConsumedAt != nil:
		return "consumed"
	case time.Now().After(s.ExpiresAt):
		return "expired"
	default:
		return "pending"
	}
}

func newSupportCmd(newClient func() *Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "support",
		Short: "Manage delegated support sessions",
	}

	cmd.AddCommand(newSupportCreateCmd(newClient))
	cmd.AddCommand(newSupportExchangeCmd(newClient))
	cmd.AddCommand(newSupportRevokeCmd(newClient))
	cmd.AddCommand(newSupportListCmd(newClient))
	return cmd
}

func newSupportCreateCmd(newClient func() *Client) *cobra.Command {
	var (
		salonID string
		reason  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a support session and print its one-time token",
		Long:  "Create a delegated support session for a salon. The one-time token is shown exactly once; it cannot be recovered afterwards.",
		Example: `  salonctl support create --salon s-456 --reason "ticket #812: double-booked stylist"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var result struct {
				Session sessionView `json:"session"`
				Token   string      `json:"token"`
			}
			err := newClient().DoJSON(http.MethodPost, "/support-sessions", nil, map[string]string{
				"salon_id": salonID,
				"reason":   reason,
			}, &result)
			if err != nil {
				return err
			}

			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, result)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session %s for salon %s expires at %s\n",
				result.Session.ID, result.Session.SalonID, result.Session.ExpiresAt.Format(time.RFC3339))
			fmt.Fprintf(cmd.OutOrStdout(), "One-time token (shown once):\n%s\n", result.Token)
			return nil
		},
	}

	cmd.Flags().StringVar(&salonID, "salon", "", "Salon ID the session grants access to")
	cmd.Flags().StringVar(&reason, "reason", "", "Reason for the support session (required, audited)")
	_ = cmd.MarkFlagRequired("salon")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

func newSupportExchangeCmd(newClient func() *Client) *cobra.Command {
	var (
		token string
		save  bool
	)

	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Exchange a one-time support token for an acting-as credential",
		Example: `  salonctl support exchange --token <64-hex-token> --save`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var result struct {
				AccessToken   string    `json:"access_token"`
				TokenType     string    `json:"token_type"`
				ExpiresAt     time.Time `json:"expires_at"`
				ActingSalonID string    `json:"acting_salon_id"`
			}
			err := newClient().DoJSON(http.MethodPost, "/support-sessions/exchange", nil, map[string]string{
				"token": token,
			}, &result)
			if err != nil {
				return err
			}

			if save {
				cfg, err := LoadUserConfig()
				if err != nil {
					cfg = &UserConfig{CurrentProfile: "default", Profiles: map[string]Profile{}}
				}
				name := cfg.CurrentProfile
				if name == "" {
					name = "default"
					cfg.CurrentProfile = name
				}
				p := cfg.Profiles[name]
				p.Token = result.AccessToken
				cfg.Profiles[name] = p
				if err := SaveUserConfig(cfg); err != nil {
					return fmt.Errorf("save config: %w", err)
				}
			}

			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, result)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Acting as salon %s until %s\n",
				result.ActingSalonID, result.ExpiresAt.Format(time.RFC3339))
			fmt.Fprintln(cmd.OutOrStdout(), result.AccessToken)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "One-time support token (64 hex characters)")
	cmd.Flags().BoolVar(&save, "save", false, "Save the acting-as credential to the active profile")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}

func newSupportRevokeCmd(newClient func() *Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revoke <session-id>",
		Short: "Revoke a pending support session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DoJSON(http.MethodDelete, "/support-sessions/"+args[0], nil, nil, nil); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session %s revoked\n", args[0])
			return nil
		},
	}
	return cmd
}

func newSupportListCmd(newClient func() *Client) *cobra.Command {
	var salonID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List support sessions",
		Example: `  salonctl support list
  salonctl support list --salon s-456 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := url.Values{}
			if salonID != "" {
				q.Set("salon_id", salonID)
			}

			var result struct {
				Sessions []sessionView `json:"sessions"`
				Total    int           `json:"total"`
			}
			if err := newClient().DoJSON(http.MethodGet, "/support-sessions", q, nil, &result); err != nil {
				return err
			}

			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, result)
			}

			columns := []string{"id", "salon", "state", "reason", "expires_at"}
			rows := make([][]string, 0, len(result.Sessions))
			for _, s := range result.Sessions {
				rows = append(rows, []string{
					s.ID, s.SalonID, sessionState(s), s.Reason, s.ExpiresAt.Format(time.RFC3339),
				})
			}
			PrintTable(cmd.OutOrStdout(), columns, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&salonID, "salon", "", "Filter by salon ID")
	return cmd
}
