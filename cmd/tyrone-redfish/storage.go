package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/bmc"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/logger"
)

func newStorageCmd() *cobra.Command {
	var exportCSV string

	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Show storage controllers, drives and volumes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, client, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			inventory, err := bmc.New(client).StorageInventory(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(inventory) == 0 {
				fmt.Fprintln(out, "No storage controllers found")
				return nil
			}

			for _, inv := range inventory {
				ctrl := inv.Controller
				fmt.Fprintf(out, "\nController %s (%s)\n", ctrl.ID, ctrl.Name)
				if ctrl.Model != "" {
					fmt.Fprintf(out, "  Model:     %s\n", ctrl.Model)
				}
				if ctrl.FirmwareVersion != "" {
					fmt.Fprintf(out, "  Firmware:  %s\n", ctrl.FirmwareVersion)
				}
				if len(ctrl.SupportedDeviceProtocols) > 0 {
					fmt.Fprintf(out, "  Protocols: %s\n", strings.Join(ctrl.SupportedDeviceProtocols, ", "))
				}
				fmt.Fprintf(out, "  Health:    %s\n", ctrl.Status.Health)

				for _, drive := range inv.Drives {
					capacity := ""
					if drive.CapacityBytes != nil {
						capacity = fmt.Sprintf(" %.1f GB", float64(*drive.CapacityBytes)/1e9)
					}
					fmt.Fprintf(out, "  Drive %s: %s %s%s [%s/%s] health=%s\n",
						drive.ID, drive.Model, drive.MediaType, capacity,
						drive.Protocol, drive.PhysicalLocation.PartLocation.ServiceLabel,
						drive.Status.Health)
				}
				for _, vol := range inv.Volumes {
					capacity := ""
					if vol.CapacityBytes != nil {
						capacity = fmt.Sprintf(" %.1f GB", float64(*vol.CapacityBytes)/1e9)
					}
					raid := vol.RAIDType
					if raid == "" {
						raid = vol.VolumeType
					}
					fmt.Fprintf(out, "  Volume %s: %s%s %s health=%s\n",
						vol.ID, vol.Name, capacity, raid, vol.Status.Health)
				}
			}

			if exportCSV != "" {
				if err := writeDriveCSV(exportCSV, inventory); err != nil {
					return err
				}
				logger.Info().Str("path", exportCSV).Msg("Drive inventory exported")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&exportCSV, "export-csv", "", "write the drive inventory to a CSV file")

	return cmd
}

func writeDriveCSV(path string, inventory []bmc.ControllerInventory) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.New().Wrap(errors.ErrExport, err).WithData(path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"controller", "drive_id", "name", "manufacturer", "model",
		"serial_number", "capacity_bytes", "media_type", "protocol",
		"rotation_speed_rpm", "failure_predicted", "location", "health", "state",
	}
	if err := w.Write(header); err != nil {
		return errors.New().Wrap(errors.ErrExport, err)
	}

	for _, inv := range inventory {
		for _, d := range inv.Drives {
			capacity := ""
			if d.CapacityBytes != nil {
				capacity = strconv.FormatInt(*d.CapacityBytes, 10)
			}
			rpm := ""
			if d.RotationSpeedRPM != nil {
				rpm = strconv.FormatFloat(*d.RotationSpeedRPM, 'f', -1, 64)
			}
			predicted := ""
			if d.FailurePredicted != nil {
				predicted = strconv.FormatBool(*d.FailurePredicted)
			}

			row := []string{
				inv.Controller.ID, d.ID, d.Name, d.Manufacturer, d.Model,
				d.SerialNumber, capacity, d.MediaType, d.Protocol,
				rpm, predicted, d.PhysicalLocation.PartLocation.ServiceLabel,
				d.Status.Health, d.Status.State,
			}
			if err := w.Write(row); err != nil {
				return errors.New().Wrap(errors.ErrExport, err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return errors.New().Wrap(errors.ErrExport, err)
	}

	return nil
}
