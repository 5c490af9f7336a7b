package main

import "github.com/urfave/cli/v2"

// loadApp creates an app with sane defaults.
func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "scratchcard"
	app.Usage = "Ganpati festival scratch card service"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   "deploy/config.toml",
			Usage:   "Path of the TOML configuration file",
			EnvVars: []string{"CONFIG_FILE"},
		},
	}
	app.Before = s.loadConfig
	app.After = s.close
	app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Category:    "Api",
			Description: `Used for start service api, it serves the scratch, leaderboard and admin apis.`,
		},
		{
			Action:      s.startMigrate,
			Name:        "migrate",
			Usage:       "Migrate database tables",
			Category:    "Database",
			Description: `Used to create or update the tables of every entity.`,
		},
		{
			Action:      s.startSeed,
			Name:        "seed",
			Usage:       "Seed the prize catalog, users and donors",
			Category:    "Database",
			Description: `Used to insert the configured prizes, users and donors which do not exist yet.`,
		},
		{
			Action:      s.startCron,
			Name:        "cron",
			Usage:       "Start cron jobs",
			Category:    "Worker",
			Description: `Used to refresh the leaderboard and report the inventory periodically.`,
		},
	}

	s.app = app
}
