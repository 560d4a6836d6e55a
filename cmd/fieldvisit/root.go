package main

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fieldvisit/tracker/backend"
	"github.com/fieldvisit/tracker/internal/config"
	"github.com/fieldvisit/tracker/sessions"
)

func newRootCommand(service *backend.Service, c config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "fieldvisit",
		Short: "Track field visits by sales representatives",
		Run: func(cmd *cobra.Command, args []string) {
			displayAppname(c.GetAppName())
			_ = cmd.Help()
		},
	}

	root.AddCommand(
		newLoginCommand(service),
		newLogoutCommand(service),
		newWhoamiCommand(service),
		newAgentsCommand(service),
		newVisitsCommand(service),
		newStatsCommand(service),
	)
	return root
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}

// requireSession loads the persisted session, failing when nobody is
// logged in.
func requireSession(service *backend.Service) (*sessions.Session, error) {
	session, err := service.GetSession()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errors.New("not logged in, run \"fieldvisit login\" first")
	}
	return session, nil
}

func requireAdmin(service *backend.Service) (*sessions.Session, error) {
	session, err := requireSession(service)
	if err != nil {
		return nil, err
	}
	if !session.IsAdmin() {
		return nil, errors.New("administrator access required")
	}
	return session, nil
}

func newLoginCommand(service *backend.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Log in as the administrator or as an agent (by code)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := service.Login(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s (%s)\n", result.User.Name, result.User.Role)
			return nil
		},
	}
}

func newLogoutCommand(service *backend.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := service.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newWhoamiCommand(service *backend.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := service.GetSession()
			if err != nil {
				return err
			}
			if session == nil {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Printf("%s (%s) role=%s\n", session.Name, session.Username, session.Role)
			return nil
		},
	}
}

func newStatsCommand(service *backend.Service) *cobra.Command {
	const chartDays = 7
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard counters and the weekly visit series",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireSession(service); err != nil {
				return err
			}

			dashboard, err := service.GetStats()
			if err != nil {
				return err
			}
			fmt.Printf("Agents: %d (%d active)\n", dashboard.TotalAgents, dashboard.ActiveAgents)
			fmt.Printf("Visits: %d (%d today)\n", dashboard.TotalVisits, dashboard.VisitsToday)

			series, err := service.GetDailySeries(chartDays)
			if err != nil {
				return err
			}
			fmt.Println("Last 7 days:")
			for _, point := range series {
				fmt.Printf("  %s  %d\n", point.Date, point.Visits)
			}
			return nil
		},
	}
}
