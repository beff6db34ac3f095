package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/bmc"
)

func newLEDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "led",
		Short: "Query and control the chassis identify LED",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Show the current LED state",
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, client, err := loadConfig(cmd)
				if err != nil {
					return err
				}

				state, err := bmc.New(client).GetIndicatorLED(cmd.Context())
				if err != nil {
					return err
				}

				if state == "" {
					state = "not reported"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Indicator LED: %s\n", state)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <Off|Lit|Blinking>",
			Short: "Set the LED state",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, client, err := loadConfig(cmd)
				if err != nil {
					return err
				}

				if err := bmc.New(client).SetIndicatorLED(cmd.Context(), args[0]); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Indicator LED set to %s\n", args[0])
				return nil
			},
		},
	)

	return cmd
}
