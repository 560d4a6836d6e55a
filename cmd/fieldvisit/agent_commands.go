package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldvisit/tracker/agents"
	"github.com/fieldvisit/tracker/backend"
)

func newAgentsCommand(service *backend.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agents",
		Short: "Manage agents (administrator only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listAgents(service)
		},
	}
	cmd.AddCommand(newAgentAddCommand(service), newAgentRemoveCommand(service))
	return cmd
}

func listAgents(service *backend.Service) error {
	if _, err := requireAdmin(service); err != nil {
		return err
	}
	all, err := service.GetAgents()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No agents")
		return nil
	}
	for _, a := range all {
		fmt.Printf("%-36s  %-10s  %-20s  %-15s  %s\n", a.ID, a.Code, a.Name, a.Company, a.Status)
	}
	return nil
}

func newAgentAddCommand(service *backend.Service) *cobra.Command {
	var newAgent agents.NewAgent
	var inactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(service); err != nil {
				return err
			}

			newAgent.Status = agents.StatusActive
			if inactive {
				newAgent.Status = agents.StatusInactive
			}

			created, err := service.CreateAgent(newAgent)
			if err != nil {
				return err
			}
			fmt.Printf("Created agent %s (%s)\n", created.Code, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&newAgent.Code, "code", "", "unique login code, e.g. REP-1001")
	cmd.Flags().StringVar(&newAgent.Name, "name", "", "agent name")
	cmd.Flags().StringVar(&newAgent.Company, "company", "", "company the agent represents")
	cmd.Flags().StringVar(&newAgent.Products, "products", "", "products carried (free text)")
	cmd.Flags().StringVar(&newAgent.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&newAgent.Password, "password", "", "login password")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "create the account disabled")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newAgentRemoveCommand(service *backend.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <agent-id>",
		Short: "Delete an agent and all of its visits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(service); err != nil {
				return err
			}
			if err := service.DeleteAgent(args[0]); err != nil {
				return err
			}
			fmt.Println("Agent and associated visits deleted")
			return nil
		},
	}
}
