package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type cli struct {
	buildInfo models.AppBuildInfo
	flagCfg   *config.StructuredConfig
	newUI     func(*service.Services, *logger.Logger) (UI, error)
}

// NewRootCommand builds the vault command tree. Configuration flags are
// persistent and shared by every subcommand.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return newRootCommand(buildInfo, newTerminalUI)
}

func newTerminalUI(services *service.Services, log *logger.Logger) (UI, error) {
	return tui.New(services, log)
}

func newRootCommand(buildInfo models.AppBuildInfo, newUI func(*service.Services, *logger.Logger) (UI, error)) *cobra.Command {
	c := &cli{
		buildInfo: buildInfo,
		newUI:     newUI,
	}

	root := &cobra.Command{
		Use:           "vault",
		Short:         "Local password vault",
		Long:          "vault keeps site credentials behind a single master password.\nRun without a subcommand to open the interactive terminal UI.",
		Args:          cobra.NoArgs,
		Version:       buildInfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.runUI,
	}
	c.flagCfg = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		c.initCommand(),
		c.addCommand(),
		c.getCommand(),
		c.listCommand(),
		c.removeCommand(),
		c.generateCommand(),
		c.versionCommand(),
	)

	return root
}

// open loads the configuration, opens the log file and builds the [App].
// The terminal UI owns stdout, so logs always go to the file.
func (c *cli) open(ctx context.Context) (*App, error) {
	cfg, err := config.GetVaultConfig(c.flagCfg)
	if err != nil {
		return nil, err
	}

	log := logger.NewFileLogger("vault", cfg.Log.File, cfg.Log.Level)
	app, err := NewApp(ctx, cfg, c.buildInfo, log)
	if err != nil {
		return nil, errors.Join(err, log.Close())
	}
	return app, nil
}

func (c *cli) runUI(cmd *cobra.Command, _ []string) error {
	app, err := c.open(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	ui, err := c.newUI(app.services, app.logger)
	if err != nil {
		return err
	}

	return ui.Run(cmd.Context())
}

func (c *cli) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set the master password of a new vault",
		Long: "init sets the master password. The password is read twice from the terminal without echo,\n" +
			"or once from " + EnvMasterPassword + ".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			initialized, err := app.services.Master.IsInitialized(ctx)
			if err != nil {
				return err
			}
			if initialized && !force {
				return service.ErrAlreadyInitialized
			}

			p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			password, err := p.newMasterPassword()
			if err != nil {
				return err
			}

			if err = app.services.Master.Setup(ctx, password); err != nil {
				return err
			}

			if initialized {
				printWarning(cmd.ErrOrStderr(), "master password replaced; entries saved under the old one may no longer open")
			}
			printSuccess(cmd.OutOrStdout(), "Vault initialized (%s)", app.cfg.App.Scheme)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing master password")
	return cmd
}

func (c *cli) addCommand() *cobra.Command {
	var (
		username string
		password string
		generate bool
		length   int
	)

	cmd := &cobra.Command{
		Use:   "add <site>",
		Short: "Add or update the credential of a site",
		Example: `  vault add example.com -u alice
  vault add example.com -u alice -p 's3cret!'
  vault add example.com -u alice -g -l 20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password != "" && generate {
				return errPasswordAndGenerate
			}

			ctx := cmd.Context()
			app, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			master, err := p.masterPassword()
			if err != nil {
				return err
			}

			session, err := app.openSession(ctx, master)
			if err != nil {
				return err
			}
			defer session.Close()

			switch {
			case generate:
				if length == 0 {
					length = app.services.PasswordLength
				}
				if password, err = app.services.Generator.Generate(length); err != nil {
					return err
				}
			case password == "":
				if password, err = p.readSecret("Password for " + args[0] + ": "); err != nil {
					return err
				}
			}

			if err = session.AddOrUpdate(ctx, args[0], username, password); err != nil {
				return err
			}

			printSuccess(cmd.ErrOrStderr(), "Saved %s", args[0])
			if generate {
				fmt.Fprintln(cmd.OutOrStdout(), password)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username or e-mail (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted if omitted)")
	cmd.Flags().BoolVarP(&generate, "generate", "g", false, "Generate a random password and print it")
	cmd.Flags().IntVarP(&length, "length", "l", 0, "Generated password length (default from config)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func (c *cli) getCommand() *cobra.Command {
	var passwordOnly bool

	cmd := &cobra.Command{
		Use:   "get <site>",
		Short: "Show the credential of a site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			master, err := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()).masterPassword()
			if err != nil {
				return err
			}

			session, err := app.openSession(ctx, master)
			if err != nil {
				return err
			}
			defer session.Close()

			cred, err := session.Find(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if passwordOnly {
				fmt.Fprintln(out, cred.Password)
				return nil
			}
			printField(out, "Site", cred.Site)
			printField(out, "Username", cred.Username)
			printField(out, "Password", cred.Password)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&passwordOnly, "password-only", "q", false, "Print only the password")
	return cmd
}

func (c *cli) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored sites and usernames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			master, err := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()).masterPassword()
			if err != nil {
				return err
			}

			session, err := app.openSession(ctx, master)
			if err != nil {
				return err
			}
			defer session.Close()

			creds := session.ListAll(ctx)
			if len(creds) == 0 {
				printWarning(cmd.ErrOrStderr(), "vault is empty")
				return nil
			}

			writeCredentialTable(cmd.OutOrStdout(), creds)
			return nil
		},
	}
}

func (c *cli) removeCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <site>",
		Aliases: []string{"delete"},
		Short:   "Delete the credential of a site",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			master, err := p.masterPassword()
			if err != nil {
				return err
			}

			session, err := app.openSession(ctx, master)
			if err != nil {
				return err
			}
			defer session.Close()

			if _, err = session.Find(ctx, args[0]); err != nil {
				return err
			}

			if !yes {
				ok, err := p.confirm(fmt.Sprintf("Delete %q? [y/N]: ", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					return errDeleteNotConfirmed
				}
			}

			if err = session.Delete(ctx, args[0]); err != nil {
				return err
			}

			printSuccess(cmd.ErrOrStderr(), "Deleted %s", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func (c *cli) generateCommand() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random password",
		Long:  "generate prints a random password with at least one letter, digit and punctuation character.\nIt does not need the master password.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("length") {
				cfg, err := config.GetVaultConfig(c.flagCfg)
				if err != nil {
					return err
				}
				length = cfg.App.PasswordLength
			}

			password, err := utils.NewPasswordGenerator().Generate(length)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), password)
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", config.DefaultPasswordLength, "Password length")
	return cmd
}

func (c *cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeBuildInfo(cmd.OutOrStdout(), c.buildInfo)
			return nil
		},
	}
}

func writeBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(w, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(w, "Build commit: %s\n", info.BuildCommit())
}

func writeCredentialTable(w io.Writer, creds []models.Credential) {
	siteWidth := len("SITE")
	for _, cred := range creds {
		siteWidth = max(siteWidth, len([]rune(cred.Site)))
	}

	labelColor.Fprintf(w, "%-*s  %s\n", siteWidth, "SITE", "USERNAME")
	for _, cred := range creds {
		fmt.Fprintf(w, "%-*s  %s\n", siteWidth, cred.Site, cred.Username)
	}
}
