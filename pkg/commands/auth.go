package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/auth"
)

func addLogin(topLevel *cobra.Command) {
	ao := &options.AuthOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and save the session locally",
		Example: `
tempo login --email ada@example.com
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := ao.Resolve(); err != nil {
				return err
			}
			svc, err := load()
			if err != nil {
				return err
			}
			s := auth.Login{
				Email:    ao.Email,
				Password: ao.Password,
				Service:  svc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddLoginArgs(cmd, ao)
	topLevel.AddCommand(cmd)
}

func addRegister(topLevel *cobra.Command) {
	ao := &options.AuthOptions{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Example: `
tempo register --username ada --email ada@example.com
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if ao.Username == "" {
				return fmt.Errorf("a username is required, use --username")
			}
			if err := ao.Resolve(); err != nil {
				return err
			}
			svc, err := load()
			if err != nil {
				return err
			}
			s := auth.Register{
				Username: ao.Username,
				Email:    ao.Email,
				Password: ao.Password,
				Service:  svc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddRegisterArgs(cmd, ao)
	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session and cached tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := load()
			if err != nil {
				return err
			}
			s := auth.Logout{Service: svc}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addWhoami(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := load()
			if err != nil {
				return err
			}
			s := auth.Whoami{Service: svc}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
