package main

import (
	"context"

	"github.com/desertthunder/mediarights/internal/formatter"
	"github.com/desertthunder/mediarights/internal/models"
	"github.com/desertthunder/mediarights/internal/services"
	"github.com/urfave/cli/v3"
)

// ContentAdd stores a new content item from flags.
func (r *Runner) ContentAdd(ctx context.Context, cmd *cli.Command) error {
	catalog, err := r.open()
	if err != nil {
		return err
	}

	in := services.NewContent{
		Title:       cmd.String("title"),
		Genre:       optionalFlag(cmd, "genre", nil),
		ContentType: optionalFlag(cmd, "type", nil),
		Notes:       optionalFlag(cmd, "notes", nil),
	}
	if cmd.IsSet("year") {
		in.ReleaseYear = models.Ptr(cmd.Int("year"))
	}

	content, err := catalog.Contents.Add(ctx, in)
	if err != nil {
		return r.reject("add", "content", err)
	}

	return r.writePlain("%s %s\n", formatter.Styles().Success("Added content"), content)
}

// ContentList prints every content item.
func (r *Runner) ContentList(ctx context.Context, cmd *cli.Command) error {
	catalog, err := r.open()
	if err != nil {
		return err
	}

	contents, err := catalog.Contents.List(ctx)
	if err != nil {
		return err
	}
	return export(r, cmd, "Content", contents, formatter.ContentColumns)
}

// ContentGet prints one content item.
func (r *Runner) ContentGet(ctx context.Context, cmd *cli.Command) error {
	id, err := parseID(cmd)
	if err != nil {
		return err
	}

	catalog, err := r.open()
	if err != nil {
		return err
	}

	content, err := catalog.Contents.Get(ctx, id)
	if err != nil {
		return err
	}
	if content == nil {
		return r.notFound("content", id)
	}
	return show(r, cmd, *content, formatter.ContentColumns)
}

// ContentUpdate changes the fields given as flags and keeps the rest.
func (r *Runner) ContentUpdate(ctx context.Context, cmd *cli.Command) error {
	id, err := parseID(cmd)
	if err != nil {
		return err
	}

	catalog, err := r.open()
	if err != nil {
		return err
	}

	content, err := catalog.Contents.Get(ctx, id)
	if err != nil {
		return err
	}
	if content == nil {
		return r.notFound("content", id)
	}

	if cmd.IsSet("title") {
		content.Title = cmd.String("title")
	}
	content.Genre = optionalFlag(cmd, "genre", content.Genre)
	content.ContentType = optionalFlag(cmd, "type", content.ContentType)
	content.Notes = optionalFlag(cmd, "notes", content.Notes)
	if cmd.IsSet("year") {
		content.ReleaseYear = models.Ptr(cmd.Int("year"))
	}

	updated, err := catalog.Contents.Update(ctx, *content)
	if err != nil {
		return r.reject("update", "content", err)
	}
	if !updated {
		return r.notFound("content", id)
	}

	return r.writePlain("%s %s\n", formatter.Styles().Success("Updated content"), content)
}

// ContentDelete removes a content item. Licenses that reference it are kept.
func (r *Runner) ContentDelete(ctx context.Context, cmd *cli.Command) error {
	id, err := parseID(cmd)
	if err != nil {
		return err
	}

	catalog, err := r.open()
	if err != nil {
		return err
	}

	deleted, err := catalog.Contents.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return r.notFound("content", id)
	}
	return r.writePlain("%s\n", formatter.Styles().Success("Deleted content "+formatID(id)))
}
