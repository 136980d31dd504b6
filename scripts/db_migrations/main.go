package main

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alecthomas/kong"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/budget-projector/internal/config"
	"github.com/carson-networks/budget-projector/internal/logging"
	"github.com/carson-networks/budget-projector/internal/storage"
)

var cli struct {
	Source string `default:"file://migrations" help:"Migration source URL."`
	Down   bool   `help:"Roll back every migration instead of applying them."`
}

func main() {
	kong.Parse(&cli, kong.Name("db_migrations"), kong.Description("Apply the ledger schema migrations."))

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	logger, err := logging.SetupLoggingWithLevel(env.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("SetupLoggingWithLevel")
		return
	}

	db, err := sql.Open("postgres", storage.ConnectionString(env))
	if err != nil {
		logger.WithError(err).Fatal("sql.Open")
		return
	}
	defer db.Close()

	if err := storage.WaitForDatabase(context.Background(), db, logger); err != nil {
		logger.WithError(err).Fatal("storage.WaitForDatabase")
		return
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		logger.WithError(err).Fatal("postgres.WithInstance")
		return
	}

	m, err := migrate.NewWithDatabaseInstance(cli.Source, "postgres", driver)
	if err != nil {
		logger.WithError(err).Fatal("migrate.NewWithDatabaseInstance")
		return
	}

	preMigrationVersion, _, err := m.Version()
	if err != nil && errors.Is(err, migrate.ErrNilVersion) {
		preMigrationVersion = 0
	} else if err != nil {
		logger.WithError(err).Fatal("m.Version.preMigrationVersion")
		return
	}

	if cli.Down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.WithError(err).Fatal("m.Migrate")
		return
	}

	postMigrationVersion, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		logger.WithError(err).Fatal("m.Version.postMigrationVersion")
		return
	}

	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
		"down":                 cli.Down,
	}).Info("Migration status")
}
