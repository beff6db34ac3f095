package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/bmc"
)

func newPowerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "power",
		Short: "Query and control system power",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Show the current power state",
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, client, err := loadConfig(cmd)
				if err != nil {
					return err
				}

				state, err := bmc.New(client).GetPowerState(cmd.Context())
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Power state: %s\n", state)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <reset-type>",
			Short: "Invoke a reset action, e.g. On, ForceOff, GracefulRestart",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, client, err := loadConfig(cmd)
				if err != nil {
					return err
				}

				if err := bmc.New(client).SetPowerState(cmd.Context(), args[0]); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Power action %s submitted\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "actions",
			Short: "List the reset actions the firmware supports",
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, client, err := loadConfig(cmd)
				if err != nil {
					return err
				}

				actions, err := bmc.New(client).AvailablePowerActions(cmd.Context())
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Available actions: %s\n", strings.Join(actions, ", "))
				return nil
			},
		},
	)

	return cmd
}
