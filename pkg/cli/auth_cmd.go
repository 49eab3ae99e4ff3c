package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"shop-demo/internal/auth"
	"shop-demo/internal/config"
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
		secret  string
		issuer  string
		expires time.Duration
		save    bool
	)

	cmd := &cobra.Command{
		Use:   "token <username>",
		Short: "Issue an HS256 token for a customer",
		Long:  "Issue an HS256 token whose subject is the customer's username. The secret and issuer must match the server's JWT_SECRET and JWT_ISSUER.",
		Example: `  # Token for the demo customer with the dev secret, saved to the active profile
  shop auth token yaho --save

  # Token with a custom secret and expiry
  shop auth token yaho --secret mysecret --expires 1h`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("secret") {
				if v := os.Getenv("JWT_SECRET"); v != "" {
					secret = v
				}
			}
			codec, err := auth.NewHS256Codec(secret, issuer, expires)
			if err != nil {
				return err
			}
			signed, err := codec.Issue(args[0])
			if err != nil {
				return err
			}

			if save {
				cfg := loadOrNewUserConfig()
				name := profileName(cmd, cfg)
				p := cfg.Profiles[name]
				p.Token = signed
				cfg.Profiles[name] = p
				if err := SaveUserConfig(cfg); err != nil {
					return fmt.Errorf("save config: %w", err)
				}
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", config.DevJWTSecret, "HS256 signing secret (default from JWT_SECRET)")
	cmd.Flags().StringVar(&issuer, "issuer", "shop-demo", "Token issuer")
	cmd.Flags().DurationVar(&expires, "expires", 24*time.Hour, "Token lifetime")
	cmd.Flags().BoolVar(&save, "save", false, "Save the token to the active profile")

	return cmd
}

// profileName is the --profile override or the config's current profile.
func profileName(cmd *cobra.Command, cfg *UserConfig) string {
	if v, _ := cmd.Root().PersistentFlags().GetString("profile"); v != "" {
		return v
	}
	return cfg.CurrentProfile
}
