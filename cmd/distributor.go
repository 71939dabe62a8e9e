package main

import (
	"context"

	"github.com/desertthunder/mediarights/internal/formatter"
	"github.com/desertthunder/mediarights/internal/services"
	"github.com/urfave/cli/v3"
)

// DistributorAdd stores a new distributor from flags.
func (r *Runner) DistributorAdd(ctx context.Context, cmd *cli.Command) error {
	catalog, err := r.open()
	if err != nil {
		return err
	}

	distributor, err := catalog.Distributors.Add(ctx, services.NewDistributor{
		Name:         cmd.String("name"),
		ContactEmail: optionalFlag(cmd, "email", nil),
		Region:       optionalFlag(cmd, "region", nil),
	})
	if err != nil {
		return r.reject("add", "distributor", err)
	}

	return r.writePlain("%s %s\n", formatter.Styles().Success("Added distributor"), distributor)
}

// DistributorList prints every distributor.
func (r *Runner) DistributorList(ctx context.Context, cmd *cli.Command) error {
	catalog, err := r.open()
	if err != nil {
		return err
	}

	distributors, err := catalog.Distributors.List(ctx)
	if err != nil {
		return err
	}
	return export(r, cmd, "Distributors", distributors, formatter.DistributorColumns)
}

// DistributorGet prints one distributor.
func (r *Runner) DistributorGet(ctx context.Context, cmd *cli.Command) error {
	id, err := parseID(cmd)
	if err != nil {
		return err
	}

	catalog, err := r.open()
	if err != nil {
		return err
	}

	distributor, err := catalog.Distributors.Get(ctx, id)
	if err != nil {
		return err
	}
	if distributor == nil {
		return r.notFound("distributor", id)
	}
	return show(r, cmd, *distributor, formatter.DistributorColumns)
}

// DistributorUpdate changes the fields given as flags and keeps the rest.
func (r *Runner) DistributorUpdate(ctx context.Context, cmd *cli.Command) error {
	id, err := parseID(cmd)
	if err != nil {
		return err
	}

	catalog, err := r.open()
	if err != nil {
		return err
	}

	distributor, err := catalog.Distributors.Get(ctx, id)
	if err != nil {
		return err
	}
	if distributor == nil {
		return r.notFound("distributor", id)
	}

	if cmd.IsSet("name") {
		distributor.Name = cmd.String("name")
	}
	distributor.ContactEmail = optionalFlag(cmd, "email", distributor.ContactEmail)
	distributor.Region = optionalFlag(cmd, "region", distributor.Region)

	updated, err := catalog.Distributors.Update(ctx, *distributor)
	if err != nil {
		return r.reject("update", "distributor", err)
	}
	if !updated {
		return r.notFound("distributor", id)
	}

	return r.writePlain("%s %s\n", formatter.Styles().Success("Updated distributor"), distributor)
}

// DistributorDelete removes a distributor. Licenses that reference it are kept.
func (r *Runner) DistributorDelete(ctx context.Context, cmd *cli.Command) error {
	id, err := parseID(cmd)
	if err != nil {
		return err
	}

	catalog, err := r.open()
	if err != nil {
		return err
	}

	deleted, err := catalog.Distributors.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return r.notFound("distributor", id)
	}
	return r.writePlain("%s\n", formatter.Styles().Success("Deleted distributor "+formatID(id)))
}
