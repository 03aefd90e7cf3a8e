// Package options defines shared flag helpers for CLI commands.
package options

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// AuthOptions captures credential flags for the auth commands.
type AuthOptions struct {
	Username string
	Email    string
	Password string
}

func AddLoginArgs(cmd *cobra.Command, o *AuthOptions) {
	cmd.Flags().StringVarP(&o.Email, "email", "e", "",
		"Account email.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		"Account password. Prompted for when omitted.")
}

func AddRegisterArgs(cmd *cobra.Command, o *AuthOptions) {
	cmd.Flags().StringVarP(&o.Username, "username", "u", "",
		"Display name for the new account.")
	AddLoginArgs(cmd, o)
}

// Resolve fills the password from a terminal prompt when the flag was
// omitted, so credentials stay out of shell history.
func (o *AuthOptions) Resolve() error {
	if o.Email == "" {
		return errors.New("an email is required, use --email")
	}
	if o.Password != "" {
		return nil
	}
	fmt.Fprint(os.Stderr, "password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr, "")
	if err != nil {
		return fmt.Errorf("could not read password: %w", err)
	}
	o.Password = strings.TrimSpace(string(raw))
	if o.Password == "" {
		return errors.New("a password is required")
	}
	return nil
}
