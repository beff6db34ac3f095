package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/bmc"
)

func newPXECmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pxe",
		Short: "Configure PXE and other boot overrides",
	}

	var mode string

	once := &cobra.Command{
		Use:   "once",
		Short: "PXE boot on the next restart only",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, client, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if err := bmc.New(client).SetPXEOnce(cmd.Context(), mode); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "PXE boot armed for the next restart")
			return nil
		},
	}
	once.Flags().StringVar(&mode, "mode", "", "boot mode override (UEFI or Legacy)")

	continuous := &cobra.Command{
		Use:   "continuous",
		Short: "PXE boot on every restart until disabled",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, client, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if err := bmc.New(client).SetPXEContinuous(cmd.Context(), mode); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "PXE boot armed until disabled")
			return nil
		},
	}
	continuous.Flags().StringVar(&mode, "mode", "", "boot mode override (UEFI or Legacy)")

	cmd.AddCommand(
		once,
		continuous,
		&cobra.Command{
			Use:   "disable",
			Short: "Clear any active boot override",
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, client, err := loadConfig(cmd)
				if err != nil {
					return err
				}

				if err := bmc.New(client).DisableBootOverride(cmd.Context()); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), "Boot override disabled")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the current boot-override configuration",
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, client, err := loadConfig(cmd)
				if err != nil {
					return err
				}

				boot, err := bmc.New(client).GetBootConfig(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Override enabled: %s\n", boot.Enabled)
				fmt.Fprintf(out, "Override target:  %s\n", boot.Target)
				if boot.Mode != "" {
					fmt.Fprintf(out, "Override mode:    %s\n", boot.Mode)
				}
				if len(boot.Order) > 0 {
					fmt.Fprintf(out, "Boot order:       %s\n", strings.Join(boot.Order, ", "))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "targets",
			Short: "List the boot targets the firmware supports",
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, client, err := loadConfig(cmd)
				if err != nil {
					return err
				}

				targets, err := bmc.New(client).AvailableBootTargets(cmd.Context())
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Available targets: %s\n", strings.Join(targets, ", "))
				return nil
			},
		},
	)

	return cmd
}
