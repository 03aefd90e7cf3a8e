// Package add creates a task on the backend, skipping exact duplicates.
package add

import (
	"context"

	"github.com/fatih/color"

	"tableflip.dev/tempo/pkg/app"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/task"
)

type Add struct {
	Draft task.Draft

	Service *app.Service

	// Creator defaults to the service client; tests inject a stub.
	Creator TaskCreator
}

// TaskCreator is the slice of the API client this runner needs.
type TaskCreator interface {
	Create(ctx context.Context, draft task.Draft) (*task.Task, error)
}

func (n *Add) Do(ctx context.Context) error {
	if err := n.Service.RequireSession(); err != nil {
		return err
	}
	if n.Draft.Date == "" {
		n.Draft.Date = n.Service.Today().String()
	}
	if err := n.Draft.Validate(); err != nil {
		return err
	}

	// Same title, day, and window means the task is already tracked; creating
	// it again would double-count hours in the stats.
	existing, _, err := n.Service.Tasks(ctx)
	if err == nil {
		for _, t := range existing {
			if t.Title == n.Draft.Title && t.Date.String() == n.Draft.Date &&
				t.Start == n.Draft.Start && t.End == n.Draft.End {
				f := color.New(color.Faint)
				_, _ = f.Printf("already tracked as %s, skipping\n", t.ID)
				return nil
			}
		}
	}

	created, err := n.creator().Create(ctx, n.Draft)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(created.Date.String())
	pp.TaskList(*created)
	return nil
}

func (n *Add) creator() TaskCreator {
	if n.Creator != nil {
		return n.Creator
	}
	return n.Service.Client
}
