package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fieldvisit/tracker/backend"
	"github.com/fieldvisit/tracker/visits"
)

func newVisitsCommand(service *backend.Service) *cobra.Command {
	var searchTerm string
	var dayFilter string

	cmd := &cobra.Command{
		Use:   "visits",
		Short: "List recorded visits",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listVisits(service, searchTerm, dayFilter)
		},
	}
	cmd.Flags().StringVar(&searchTerm, "search", "", "filter by agent name, company or phone")
	cmd.Flags().StringVar(&dayFilter, "date", "", "filter by calendar day (YYYY-MM-DD)")

	cmd.AddCommand(newVisitAddCommand(service), newVisitRemoveCommand(service))
	return cmd
}

func listVisits(service *backend.Service, searchTerm, dayFilter string) error {
	session, err := requireSession(service)
	if err != nil {
		return err
	}

	var all []visits.Visit
	switch {
	case !session.IsAdmin():
		// Agents only see their own reports.
		all, err = service.GetVisitsByAgent(session.ID)
	case searchTerm != "" || dayFilter != "":
		var day time.Time
		if dayFilter != "" {
			day, err = time.ParseInLocation("2006-01-02", dayFilter, time.Local)
			if err != nil {
				return errors.Wrap(err, "parsing --date")
			}
		}
		all, err = service.SearchVisits(searchTerm, day)
	default:
		all, err = service.GetVisits()
	}
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No visits")
		return nil
	}
	for _, v := range all {
		fmt.Printf("%-36s  %s  %-20s  %-15s  %s\n",
			v.ID, v.VisitDate.Local().Format("2006-01-02 15:04"), v.AgentName, v.AgentCompany, v.Notes)
	}
	return nil
}

func newVisitAddCommand(service *backend.Service) *cobra.Command {
	var agentCode string
	var dateStr string
	var notes string
	var photoURL string
	var lat, lng float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new visit",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireSession(service)
			if err != nil {
				return err
			}

			// An agent always records against itself; the administrator
			// picks an agent by code.
			code := agentCode
			if !session.IsAdmin() {
				code = session.Username
			} else if code == "" {
				return errors.New("--code is required when logged in as administrator")
			}

			agent, err := service.GetAgentByCode(code)
			if err != nil {
				return err
			}

			visitDate := time.Now()
			if dateStr != "" {
				visitDate, err = time.ParseInLocation("2006-01-02T15:04", dateStr, time.Local)
				if err != nil {
					return errors.Wrap(err, "parsing --date")
				}
			}

			newVisit := visits.NewVisit{
				AgentID:      agent.ID,
				AgentName:    agent.Name,
				AgentCompany: agent.Company,
				AgentPhone:   agent.Phone,
				VisitDate:    visitDate,
				Notes:        notes,
				PhotoURL:     photoURL,
			}
			if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
				newVisit.Location = &visits.Location{Lat: lat, Lng: lng}
			}

			created, err := service.CreateVisit(newVisit)
			if err != nil {
				return err
			}
			fmt.Printf("Recorded visit %s for %s\n", created.ID, created.AgentName)
			return nil
		},
	}

	cmd.Flags().StringVar(&agentCode, "code", "", "agent login code (administrator only)")
	cmd.Flags().StringVar(&dateStr, "date", "", "visit date, YYYY-MM-DDTHH:MM (default now)")
	cmd.Flags().StringVar(&notes, "notes", "", "report body (required)")
	cmd.Flags().StringVar(&photoURL, "photo", "", "inline-encoded photo payload")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude")
	return cmd
}

func newVisitRemoveCommand(service *backend.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <visit-id>",
		Short: "Delete a visit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireSession(service); err != nil {
				return err
			}
			if err := service.DeleteVisit(args[0]); err != nil {
				return err
			}
			fmt.Println("Visit deleted")
			return nil
		},
	}
}
