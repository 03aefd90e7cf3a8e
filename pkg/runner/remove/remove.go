// Package remove deletes a task by ID.
package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tempo/pkg/app"
)

type Remove struct {
	ID string

	Service *app.Service

	// Deleter defaults to the service client; tests inject a stub.
	Deleter TaskDeleter
}

// TaskDeleter is the slice of the API client this runner needs.
type TaskDeleter interface {
	Delete(ctx context.Context, id string) error
}

func (n *Remove) Do(ctx context.Context) error {
	if err := n.Service.RequireSession(); err != nil {
		return err
	}
	if n.ID == "" {
		return errors.New("remove: no task id given")
	}

	if err := n.deleter().Delete(ctx, n.ID); err != nil {
		return err
	}

	// The cached snapshot still holds the deleted task; refresh so offline
	// views do not resurrect it.
	if _, _, err := n.Service.Tasks(ctx); err != nil {
		n.Service.Log.Warn().Err(err).Msg("deleted, but could not refresh snapshot")
	}

	fmt.Printf("removed %s\n", n.ID)
	return nil
}

func (n *Remove) deleter() TaskDeleter {
	if n.Deleter != nil {
		return n.Deleter
	}
	return n.Service.Client
}
