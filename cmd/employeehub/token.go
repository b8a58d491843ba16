package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"employeehub/internal/auth"
	"employeehub/internal/config"
)

func newTokenCmd(cfg *config.Config) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token for an email",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.TokenSecret == "" {
				return errors.New("ACCESS_TOKEN_SECRET is required")
			}
			tok, err := auth.NewIssuer([]byte(cfg.TokenSecret), auth.TokenLifetime).Issue(map[string]any{"email": email})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email claim to embed")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
