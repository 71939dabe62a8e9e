package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/desertthunder/mediarights/internal/formatter"
	"github.com/desertthunder/mediarights/internal/models"
	"github.com/desertthunder/mediarights/internal/services"
	"github.com/desertthunder/mediarights/internal/shared"
	"github.com/urfave/cli/v3"
)

// LicenseAdd grants a distributor rights to a content item.
func (r *Runner) LicenseAdd(ctx context.Context, cmd *cli.Command) error {
	catalog, err := r.open()
	if err != nil {
		return err
	}

	license, err := catalog.Licenses.Add(ctx, services.NewLicense{
		ContentID:     int64(cmd.Int("content-id")),
		DistributorID: int64(cmd.Int("distributor-id")),
		StartDate:     verbatimFlag(cmd, "start", nil),
		EndDate:       verbatimFlag(cmd, "end", nil),
		Terms:         optionalFlag(cmd, "terms", nil),
	})
	if err != nil {
		return r.reject("add", "license", err)
	}

	return r.writePlain("%s %s\n", formatter.Styles().Success("Added"), license)
}

// LicenseList prints licenses, filtered by --content-id or --distributor-id when given.
func (r *Runner) LicenseList(ctx context.Context, cmd *cli.Command) error {
	if cmd.IsSet("content-id") && cmd.IsSet("distributor-id") {
		return fmt.Errorf("%w: cannot specify both --content-id and --distributor-id", shared.ErrInvalidArgument)
	}

	catalog, err := r.open()
	if err != nil {
		return err
	}

	var licenses []models.LicenseXref
	switch {
	case cmd.IsSet("content-id"):
		licenses, err = catalog.Licenses.ListByContent(ctx, int64(cmd.Int("content-id")))
	case cmd.IsSet("distributor-id"):
		licenses, err = catalog.Licenses.ListByDistributor(ctx, int64(cmd.Int("distributor-id")))
	default:
		licenses, err = catalog.Licenses.List(ctx)
	}
	if err != nil {
		return err
	}
	return export(r, cmd, "Licenses", licenses, formatter.LicenseColumns)
}

// LicenseGet prints one license.
func (r *Runner) LicenseGet(ctx context.Context, cmd *cli.Command) error {
	id, err := parseID(cmd)
	if err != nil {
		return err
	}

	catalog, err := r.open()
	if err != nil {
		return err
	}

	license, err := catalog.Licenses.Get(ctx, id)
	if err != nil {
		return err
	}
	if license == nil {
		return r.notFound("license", id)
	}
	return show(r, cmd, *license, formatter.LicenseColumns)
}

// LicenseUpdate changes the fields given as flags. References are checked again before saving.
func (r *Runner) LicenseUpdate(ctx context.Context, cmd *cli.Command) error {
	id, err := parseID(cmd)
	if err != nil {
		return err
	}

	catalog, err := r.open()
	if err != nil {
		return err
	}

	license, err := catalog.Licenses.Get(ctx, id)
	if err != nil {
		return err
	}
	if license == nil {
		return r.notFound("license", id)
	}

	if cmd.IsSet("content-id") {
		license.ContentID = int64(cmd.Int("content-id"))
	}
	if cmd.IsSet("distributor-id") {
		license.DistributorID = int64(cmd.Int("distributor-id"))
	}
	license.StartDate = verbatimFlag(cmd, "start", license.StartDate)
	license.EndDate = verbatimFlag(cmd, "end", license.EndDate)
	license.Terms = optionalFlag(cmd, "terms", license.Terms)

	updated, err := catalog.Licenses.Update(ctx, *license)
	if err != nil {
		return r.reject("update", "license", err)
	}
	if !updated {
		return r.notFound("license", id)
	}

	return r.writePlain("%s %s\n", formatter.Styles().Success("Updated"), license)
}

// LicenseDelete removes a license.
func (r *Runner) LicenseDelete(ctx context.Context, cmd *cli.Command) error {
	id, err := parseID(cmd)
	if err != nil {
		return err
	}

	catalog, err := r.open()
	if err != nil {
		return err
	}

	deleted, err := catalog.Licenses.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return r.notFound("license", id)
	}
	return r.writePlain("%s\n", formatter.Styles().Success("Deleted license "+formatID(id)))
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
