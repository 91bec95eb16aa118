// Package cli implementa los comandos de terminal del tracker.
package cli

import (
	"fmt"
	"io"
	"os"

	"shelter-pet-tracker/internal/app"
	"shelter-pet-tracker/internal/platform/config"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Options permite inyectar IO y prompter (tests).
type Options struct {
	Out      io.Writer
	Err      io.Writer
	Prompter Prompter
	Viper    *viper.Viper
}

// env es el estado compartido por los subcomandos durante una ejecución.
type env struct {
	opts       Options
	configFile string
	app        *app.App
}

// NewRootCommand crea el comando raíz con todos los subcomandos.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Prompter == nil {
		opts.Prompter = NewSurveyPrompter(opts.Out, opts.Err)
	}
	if opts.Viper == nil {
		opts.Viper = viper.New()
	}
	e := &env{opts: opts}

	root := &cobra.Command{
		Use:           "shelter",
		Short:         "Animal shelter pet intake tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&e.configFile, "config", "", "Config file (default ./shelter.yaml if present)")
	pf.String("backend", "", "Storage backend: json, sqlite or memory")
	pf.String("data", "", "Data file path (default animals.json / animals.db)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-format", "", "Log format: text or json")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(opts.Viper, cmd.Root().PersistentFlags()); err != nil {
			return err
		}
		return e.open(cmd)
	}
	root.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return e.close()
	}

	root.AddCommand(
		serveCommand(e),
		addCommand(e),
		intakeCommand(e),
		listCommand(e),
		searchCommand(e),
		showCommand(e),
		updateCommand(e),
		deleteCommand(e),
		exportCommand(e),
	)
	// cobra no ejecuta PersistentPostRunE si RunE falla
	for _, c := range root.Commands() {
		run := c.RunE
		if run == nil {
			continue
		}
		c.RunE = func(cmd *cobra.Command, args []string) error {
			err := run(cmd, args)
			if err != nil {
				_ = e.close()
			}
			return err
		}
	}
	return root
}

// flag persistente -> clave de configuración
var flagKeys = map[string]string{
	"backend":    "storage.backend",
	"data":       "storage.path",
	"log-level":  "log.level",
	"log-format": "log.format",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag --%s: %w", flag, err)
		}
	}
	return nil
}

func (e *env) open(cmd *cobra.Command) error {
	cfg, err := config.Load(e.opts.Viper, e.configFile)
	if err != nil {
		return err
	}
	log := app.NewLogger(cfg, e.opts.Err)

	a, err := app.Open(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	if w := a.Store.LoadWarning(); w != nil {
		cmd.PrintErrf("warning: stored data could not be read, starting with an empty list (%v)\n", w)
	}
	e.app = a
	return nil
}

func (e *env) close() error {
	if e.app == nil {
		return nil
	}
	err := e.app.Close()
	e.app = nil
	return err
}
