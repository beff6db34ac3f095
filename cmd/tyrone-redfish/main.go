package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/config"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/logger"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/redfish"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "tyrone-redfish",
	Short: "Server management and telemetry over the Redfish API",
	Long: `tyrone-redfish talks to a server's management controller over the
Redfish REST API: hardware telemetry collection, power control, the
identify LED, boot-override configuration and storage inventory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP("host", "H", "", "BMC hostname or IP address")
	pf.StringP("username", "u", "", "BMC username")
	pf.StringP("password", "p", "", "BMC password")
	pf.Int("port", config.DefaultPort, "BMC HTTPS port")
	pf.Bool("verify-ssl", false, "verify the BMC TLS certificate")
	pf.Int("timeout", config.DefaultTimeout, "request timeout in seconds")
	pf.BoolP("verbose", "v", false, "enable informational logging")
	pf.Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newTelemetryCmd(),
		newPowerCmd(),
		newLEDCmd(),
		newPXECmd(),
		newStorageCmd(),
		newVersionCmd(),
	)
}

// loadConfig merges the config file with the command's flags and builds
// the Redfish client.
func loadConfig(cmd *cobra.Command) (*config.Config, *redfish.Client, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	logger.Init(cfg.Debug, cfg.Verbose)

	client := redfish.NewClient(redfish.Config{
		Host:      cfg.Host,
		Username:  cfg.Username,
		Password:  cfg.Password,
		Port:      cfg.Port,
		VerifySSL: cfg.VerifySSL,
		Timeout:   cfg.RequestTimeout(),
	})

	return cfg, client, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tyrone-redfish %s\n", version)
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Init(false, false)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if code := errors.CodeOf(err); code != "" {
			logger.Error().Str("error_code", string(code)).Msg(err.Error())
		} else {
			logger.Error().Msg(err.Error())
		}
		os.Exit(1)
	}
}
