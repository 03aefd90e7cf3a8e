// Package auth holds the runners for session lifecycle: login, register,
// logout, whoami.
package auth

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/tempo/pkg/app"
)

type Login struct {
	Email    string
	Password string

	Service *app.Service
}

func (n *Login) Do(ctx context.Context) error {
	sess, err := n.Service.Client.Login(ctx, n.Email, n.Password)
	if err != nil {
		return err
	}
	if err := n.Service.Persistence.SaveSession(sess); err != nil {
		return err
	}
	n.Service.Session = sess

	g := color.New(color.FgHiGreen)
	_, _ = g.Printf("logged in as %s\n", sess.User.Username)
	return nil
}

type Register struct {
	Username string
	Email    string
	Password string

	Service *app.Service
}

func (n *Register) Do(ctx context.Context) error {
	sess, err := n.Service.Client.Register(ctx, n.Username, n.Email, n.Password)
	if err != nil {
		return err
	}
	if err := n.Service.Persistence.SaveSession(sess); err != nil {
		return err
	}
	n.Service.Session = sess

	g := color.New(color.FgHiGreen)
	_, _ = g.Printf("welcome, %s\n", sess.User.Username)
	return nil
}

type Logout struct {
	Service *app.Service
}

// Do clears the saved session and the cached snapshot for that user. Being
// already logged out is not an error.
func (n *Logout) Do(ctx context.Context) error {
	if n.Service.Session != nil {
		if err := n.Service.Persistence.ClearSnapshot(n.Service.Session.User.ID); err != nil {
			return err
		}
	}
	if err := n.Service.Persistence.ClearSession(); err != nil {
		return err
	}
	n.Service.Session = nil

	fmt.Println("logged out")
	return nil
}

type Whoami struct {
	Service *app.Service
}

// Do asks the backend who the saved token belongs to, falling back to the
// saved identity when the backend is unreachable.
func (n *Whoami) Do(ctx context.Context) error {
	if err := n.Service.RequireSession(); err != nil {
		return err
	}

	u, err := n.Service.Client.Me(ctx)
	if err != nil {
		n.Service.Log.Warn().Err(err).Msg("could not verify token, showing saved identity")
		u = &n.Service.Session.User
	}

	fmt.Printf("%s <%s>\n", u.Username, u.Email)
	return nil
}
