package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication helpers",
	}

	cmd.AddCommand(newAuthTokenCmd())
	return cmd
}

func newAuthTokenCmd() *cobra.Command {
	var (
		user    string
		role    string
		salon   string
		secret  string
		expires time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generate a dev-mode JWT token and save it to the active profile",
		Long:  "Generate an HS256 JWT token for development and testing. The token is saved to the active profile automatically. If --secret is omitted the secret is read from the terminal without echo.",
		Example: `  # Generate an owner token for a salon
  salonctl auth token --user u-123 --role OWNER --salon s-456 --secret dev-secret-change-in-production

  # Generate a platform admin token, prompting for the secret
  salonctl auth token --user admin-1 --role SUPER_ADMIN --expires 48h`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if secret == "" {
				fmt.Fprint(os.Stderr, "Signing secret: ")
				raw, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(os.Stderr)
				if err != nil {
					return fmt.Errorf("read secret: %w", err)
				}
				secret = strings.TrimSpace(string(raw))
			}
			if secret == "" {
				return fmt.Errorf("a signing secret is required")
			}
			if role != "SUPER_ADMIN" && salon == "" {
				return fmt.Errorf("--salon is required for role %s", role)
			}

			now := time.Now()
			claims := jwt.MapClaims{
				"sub":  user,
				"role": role,
				"iat":  now.Unix(),
				"exp":  now.Add(expires).Unix(),
			}
			if salon != "" {
				claims["salon_id"] = salon
			}

			token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
			signed, err := token.SignedString([]byte(secret))
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}

			// Save to active profile
			cfg, err := LoadUserConfig()
			if err != nil {
				cfg = &UserConfig{Profiles: make(map[string]Profile)}
			}
			profileName := cfg.CurrentProfile
			if profileName == "" {
				profileName = "default"
				cfg.CurrentProfile = profileName
			}
			p := cfg.Profiles[profileName]
			p.Token = signed
			cfg.Profiles[profileName] = p
			if err := SaveUserConfig(cfg); err != nil {
				return fmt.Errorf("save config: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User ID (JWT sub claim)")
	cmd.Flags().StringVar(&role, "role", "", "Role (OWNER, MANAGER, RECEPTIONIST, STYLIST, SUPER_ADMIN)")
	cmd.Flags().StringVar(&salon, "salon", "", "Salon ID claim (required for non-platform roles)")
	cmd.Flags().StringVar(&secret, "secret", "", "JWT signing secret (HS256); prompted if omitted")
	cmd.Flags().DurationVar(&expires, "expires", 24*time.Hour, "Token expiry duration")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}
