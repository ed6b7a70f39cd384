package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"textgateway.app/internal/adapters/security"
)

const secretEnv = "AUTH_SECRET_KEY"

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tokengen",
		Short:         "Issue and inspect bearer tokens for the text gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newIssueCmd(), newVerifyCmd())
	return root
}

func newIssueCmd() *cobra.Command {
	var (
		subject string
		secret  string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Sign a token for a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := security.NewJWTTokenService(resolveSecret(secret), ttl)
			if err != nil {
				return err
			}
			token, err := tokens.Issue(subject)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "token subject (caller identity)")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret, defaults to $"+secretEnv)
	cmd.Flags().DurationVar(&ttl, "ttl", 15*time.Minute, "token validity")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var secret string

	cmd := &cobra.Command{
		Use:   "verify <token>",
		Short: "Check a token and print its subject and expiry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := security.NewJWTTokenService(resolveSecret(secret), time.Minute)
			if err != nil {
				return err
			}
			claims, err := tokens.Verify(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "subject=%s expires=%s\n",
				claims.Subject, claims.ExpiresAt.UTC().Format(time.RFC3339))
			return err
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "signing secret, defaults to $"+secretEnv)
	return cmd
}

func resolveSecret(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(secretEnv)
}
