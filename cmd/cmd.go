// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   "config.toml",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "Append logs to this file instead of stderr",
		},
	}
}

func listFlags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output JSON",
		},
		&cli.BoolFlag{
			Name:  "csv",
			Usage: "Output CSV",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (text, json, csv)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write the export to a file instead of stdout",
		},
	}, extra...)
}

func idArgument() []cli.Argument {
	return []cli.Argument{&cli.StringArg{Name: "id"}}
}

func jsonFlag() []cli.Flag {
	return []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "Output JSON"}}
}

func contentFlags(titleRequired bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Content title", Required: titleRequired},
		&cli.StringFlag{Name: "genre", Usage: "Genre"},
		&cli.StringFlag{Name: "type", Usage: "Content type (movie, series, ...)"},
		&cli.IntFlag{Name: "year", Usage: "Release year"},
		&cli.StringFlag{Name: "notes", Usage: "Free-form notes"},
	}
}

func distributorFlags(nameRequired bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Distributor name", Required: nameRequired},
		&cli.StringFlag{Name: "email", Usage: "Contact email"},
		&cli.StringFlag{Name: "region", Usage: "Region"},
	}
}

func licenseFlags(idsRequired bool) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "content-id", Usage: "Licensed content id", Required: idsRequired},
		&cli.IntFlag{Name: "distributor-id", Usage: "Licensee distributor id", Required: idsRequired},
		&cli.StringFlag{Name: "start", Usage: "Start date, stored as given"},
		&cli.StringFlag{Name: "end", Usage: "End date, stored as given"},
		&cli.StringFlag{Name: "terms", Usage: "License terms"},
	}
}

// setupCommand initializes configuration and the database
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and database",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Create the config file if missing and run migrations",
				Action: r.SetupDatabase,
			},
			{
				Name:   "rollback",
				Usage:  "Roll back the most recent migration",
				Action: r.RollbackDatabase,
			},
		},
	}
}

// contentCommand handles content catalog operations
func contentCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "content",
		Usage: "Manage content items",
		Commands: []*cli.Command{
			{Name: "add", Usage: "Add a content item", Flags: contentFlags(true), Action: r.ContentAdd},
			{Name: "list", Aliases: []string{"ls"}, Usage: "List content items", Flags: listFlags(), Action: r.ContentList},
			{Name: "get", Usage: "Show a content item", Arguments: idArgument(), Flags: jsonFlag(), Action: r.ContentGet},
			{Name: "update", Usage: "Update a content item; omitted flags keep their value", Arguments: idArgument(), Flags: contentFlags(false), Action: r.ContentUpdate},
			{Name: "delete", Aliases: []string{"rm"}, Usage: "Delete a content item", Arguments: idArgument(), Action: r.ContentDelete},
		},
	}
}

// distributorCommand handles distributor operations
func distributorCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "distributor",
		Aliases: []string{"dist"},
		Usage:   "Manage distributors",
		Commands: []*cli.Command{
			{Name: "add", Usage: "Add a distributor", Flags: distributorFlags(true), Action: r.DistributorAdd},
			{Name: "list", Aliases: []string{"ls"}, Usage: "List distributors", Flags: listFlags(), Action: r.DistributorList},
			{Name: "get", Usage: "Show a distributor", Arguments: idArgument(), Flags: jsonFlag(), Action: r.DistributorGet},
			{Name: "update", Usage: "Update a distributor; omitted flags keep their value", Arguments: idArgument(), Flags: distributorFlags(false), Action: r.DistributorUpdate},
			{Name: "delete", Aliases: []string{"rm"}, Usage: "Delete a distributor", Arguments: idArgument(), Action: r.DistributorDelete},
		},
	}
}

// licenseCommand handles license cross-reference operations
func licenseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "license",
		Usage: "Manage licenses linking content to distributors",
		Commands: []*cli.Command{
			{Name: "add", Usage: "Grant a distributor rights to a content item", Flags: licenseFlags(true), Action: r.LicenseAdd},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List licenses, optionally filtered by content or distributor",
				Flags: listFlags(
					&cli.IntFlag{Name: "content-id", Usage: "Only licenses for this content"},
					&cli.IntFlag{Name: "distributor-id", Usage: "Only licenses held by this distributor"},
				),
				Action: r.LicenseList,
			},
			{Name: "get", Usage: "Show a license", Arguments: idArgument(), Flags: jsonFlag(), Action: r.LicenseGet},
			{Name: "update", Usage: "Update a license; omitted flags keep their value", Arguments: idArgument(), Flags: licenseFlags(false), Action: r.LicenseUpdate},
			{Name: "delete", Aliases: []string{"rm"}, Usage: "Delete a license", Arguments: idArgument(), Action: r.LicenseDelete},
		},
	}
}
