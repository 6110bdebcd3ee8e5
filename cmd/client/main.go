package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/go-cert-keeper/internal/adapter"
	"github.com/MKhiriev/go-cert-keeper/internal/client"
	"github.com/MKhiriev/go-cert-keeper/internal/config"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var flagPassword = &cli.StringFlag{
	Name:    "password",
	Aliases: []string{"p"},
	EnvVars: []string{"VAULT_PASSWORD"},
	Usage:   "master password",
}

var flagTotp = &cli.StringFlag{
	Name:  "totp",
	Usage: "TOTP code, needed when logging in from a new location",
}

var flagGroup = &cli.StringFlag{
	Name:    "group",
	Aliases: []string{"g"},
	Usage:   "group name, the default group when empty",
}

var flagGroupSecret = &cli.StringFlag{
	Name:    "group-secret",
	EnvVars: []string{"VAULT_GROUP_SECRET"},
	Usage:   "group password or TOTP code for locked groups",
}

var flagID = &cli.Int64Flag{
	Name:     "id",
	Usage:    "certificate id",
	Required: true,
}

var flagVerbose = &cli.BoolFlag{
	Name:  "verbose",
	Usage: "log debug output to stderr",
}

func sessionFlags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{flagPassword, flagTotp}, extra...)
}

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("go-cert-keeper-client")

	var runner client.Runner
	setup := func(cCtx *cli.Context) error {
		if cCtx.Bool(flagVerbose.Name) {
			log = log.WithLevel("debug")
		}

		cfg, err := config.GetClientConfig()
		if err != nil {
			return fmt.Errorf("error getting configs: %w", err)
		}

		vault, err := adapter.NewHTTPVaultClient(cfg.Adapter, log)
		if err != nil {
			return fmt.Errorf("error creating vault client: %w", err)
		}

		runner = client.NewApp(vault, log)
		return nil
	}

	run := func(name string, build func(*cli.Context, *client.Command) error) cli.ActionFunc {
		return func(cCtx *cli.Context) error {
			cmd := client.Command{
				Name:        name,
				Password:    cCtx.String(flagPassword.Name),
				TotpCode:    cCtx.String(flagTotp.Name),
				Group:       cCtx.String(flagGroup.Name),
				GroupSecret: cCtx.String(flagGroupSecret.Name),
			}
			if build != nil {
				if err := build(cCtx, &cmd); err != nil {
					return err
				}
			}

			if err := runner.Run(cCtx.Context, cmd); err != nil {
				return cli.Exit(client.Explain(err), 1)
			}
			return nil
		}
	}

	withID := func(cCtx *cli.Context, cmd *client.Command) error {
		cmd.CertificateID = cCtx.Int64(flagID.Name)
		return nil
	}

	cliApp := &cli.App{
		Name:    "cert-keeper",
		Usage:   "administer a certificate vault",
		Version: buildInfo.BuildVersion(),
		Flags:   []cli.Flag{flagVerbose},
		Before:  setup,
		Commands: []*cli.Command{
			{
				Name:   client.CmdInfo,
				Usage:  "show server name, version and whether it is initialized",
				Action: run(client.CmdInfo, nil),
			},
			{
				Name:   client.CmdLockout,
				Usage:  "show failed logins of today and the lockout state",
				Action: run(client.CmdLockout, nil),
			},
			{
				Name:   client.CmdInit,
				Usage:  "create the administrator account",
				Flags:  []cli.Flag{flagPassword},
				Action: run(client.CmdInit, nil),
			},
			{
				Name:   client.CmdGroups,
				Usage:  "list groups",
				Flags:  sessionFlags(),
				Action: run(client.CmdGroups, nil),
			},
			{
				Name:   client.CmdList,
				Usage:  "list certificates of a group",
				Flags:  sessionFlags(flagGroup, flagGroupSecret),
				Action: run(client.CmdList, nil),
			},
			{
				Name:   client.CmdShow,
				Usage:  "print the decrypted fields of a certificate",
				Flags:  sessionFlags(flagGroup, flagGroupSecret, flagID),
				Action: run(client.CmdShow, withID),
			},
			{
				Name:  client.CmdCopy,
				Usage: "copy one certificate field to the clipboard",
				Flags: sessionFlags(flagGroup, flagGroupSecret, flagID, &cli.StringFlag{
					Name:     "field",
					Usage:    "field label",
					Required: true,
				}),
				Action: run(client.CmdCopy, func(cCtx *cli.Context, cmd *client.Command) error {
					cmd.CertificateID = cCtx.Int64(flagID.Name)
					cmd.Field = cCtx.String("field")
					return nil
				}),
			},
			{
				Name:  client.CmdAdd,
				Usage: "encrypt and store a new certificate",
				Flags: sessionFlags(flagGroup, flagGroupSecret,
					&cli.StringFlag{Name: "name", Usage: "certificate name", Required: true},
					&cli.StringSliceFlag{Name: "field", Usage: "label=value, repeatable", Required: true},
				),
				Action: run(client.CmdAdd, func(cCtx *cli.Context, cmd *client.Command) error {
					fields, err := client.ParseFields(cCtx.StringSlice("field"))
					if err != nil {
						return cli.Exit(err.Error(), 2)
					}
					cmd.CertificateName = cCtx.String("name")
					cmd.Fields = fields
					return nil
				}),
			},
			{
				Name:  client.CmdChangePassword,
				Usage: "change the master password and re-encrypt every certificate",
				Flags: sessionFlags(&cli.StringFlag{
					Name:     "new-password",
					EnvVars:  []string{"VAULT_NEW_PASSWORD"},
					Usage:    "new master password",
					Required: true,
				}),
				Action: run(client.CmdChangePassword, func(cCtx *cli.Context, cmd *client.Command) error {
					cmd.NewPassword = cCtx.String("new-password")
					return nil
				}),
			},
			{
				Name:   client.CmdNotices,
				Usage:  "list security notices",
				Flags:  sessionFlags(),
				Action: run(client.CmdNotices, nil),
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
