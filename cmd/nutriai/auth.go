package nutriai

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/rsinghcodes/nutriai/internal/api"
	"github.com/rsinghcodes/nutriai/internal/session"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend and store the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := sess.Login(cmd.Context(), loginEmail, loginPassword); err != nil {
				return err
			}
			user := sess.User()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.Name, user.Email)
			if sess.Stage() == session.StageOnboarding {
				fmt.Fprintln(cmd.OutOrStdout(), "Onboarding incomplete; run \"nutriai onboard\" to finish setup")
			}
			return nil
		})
	},
}

var (
	registerEmail    string
	registerName     string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and store the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := sess.Register(cmd.Context(), registerEmail, registerName, registerPassword); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s\n", registerEmail)
			fmt.Fprintln(cmd.OutOrStdout(), "Run \"nutriai onboard\" to finish setup")
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := sess.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		})
	},
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Inspect the stored session",
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show who is logged in and the session stage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(client *api.Client, sess *session.Session) error {
			if sess.Stage() == session.StageUnauthenticated {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}
			user := sess.User()
			fmt.Fprintf(cmd.OutOrStdout(), "User: %s (%s)\n", user.Name, user.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "Stage: %s\n", sess.Stage())
			if expiry, ok := tokenExpiry(sess.Token()); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Token expires: %s\n", expiry.Format(time.RFC3339))
			}
			return nil
		})
	},
}

// tokenExpiry decodes the token without verification, purely for display.
// Tokens that are not JWTs stay opaque and report no expiry.
func tokenExpiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	expiry, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, false
	}
	return expiry.Time, true
}

func init() {
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, authCmd)
	authCmd.AddCommand(authStatusCmd)

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("password")
}
