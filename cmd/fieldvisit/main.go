package main

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/fieldvisit/tracker/auth"
	"github.com/fieldvisit/tracker/backend"
	"github.com/fieldvisit/tracker/internal/config"
	"github.com/fieldvisit/tracker/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %s\n", err)
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	configureLogging(c)

	medium, err := openMedium(c)
	if err != nil {
		return err
	}

	service, err := backend.New(
		store.New(medium),
		auth.AdminCredentials{Username: c.GetAdminUsername(), Password: c.GetAdminPassword()},
		backend.WithLatency(c.GetLatency()),
	)
	if err != nil {
		return err
	}

	return newRootCommand(service, c).Execute()
}

func configureLogging(c config.Config) {
	level, err := zerolog.ParseLevel(c.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}

func openMedium(c config.Config) (store.Medium, error) {
	switch c.GetStoreDriver() {
	case config.DriverSQLite:
		return store.NewSQLiteMedium(filepath.Join(c.GetDataFolder(), "fieldvisit.db"))
	default:
		return store.NewFileMedium(c.GetDataFolder())
	}
}
