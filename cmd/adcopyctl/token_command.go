package main

import (
	"context"
	"fmt"
	"time"

	"adcopy/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newTokenCommand(ctx *commandContext) *cobra.Command {
	var userFlag string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API bearer token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(userFlag)
			if err != nil || userID == uuid.Nil {
				return errors.Errorf("invalid --user %q", userFlag)
			}
			if ttl <= 0 {
				return errors.New("--ttl must be positive")
			}

			var tokens service.TokenService
			return withComponents(cmd.Context(), func(context.Context) error {
				token, err := tokens.IssueToken(userID, ttl)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if ctx.jsonOutput {
					return ctx.printJSON(out, map[string]any{
						"user_id":    userID,
						"token":      token,
						"expires_at": time.Now().Add(ttl).UTC(),
					})
				}
				fmt.Fprintln(out, token)
				return nil
			}, &tokens)
		},
	}

	cmd.Flags().StringVar(&userFlag, "user", "", "User ID the token is issued for")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
