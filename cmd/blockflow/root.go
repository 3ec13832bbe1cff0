package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-blockflow/fixture"
	"github.com/grindlemire/go-blockflow/internal/config"
	"github.com/grindlemire/go-blockflow/internal/observability"
	"github.com/grindlemire/go-blockflow/measure"
)

// app is the state shared by subcommands once the root has loaded the
// configuration.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
}

func newApp() *app {
	return &app{v: viper.New(), log: zap.NewNop()}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "blockflow",
		Short:         "blockflow lays out CSS block-flow fixtures.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./blockflow.yaml)")
	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	cmd.AddCommand(
		newLayoutCmd(a),
		newCheckCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	log, err := observability.NewLogger(cfg.Logger, zapcore.AddSync(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.Debug("configuration loaded", zap.String("file", a.v.ConfigFileUsed()))
	return nil
}

// builder returns the fixture builder configured by the layout section.
func (a *app) builder() (fixture.Builder, error) {
	m, err := measure.ByName(a.cfg.Layout.Measurer, a.cfg.Layout.GlyphSize)
	if err != nil {
		return fixture.Builder{}, err
	}
	return fixture.Builder{
		Styles:   fixture.StyleParser{ScrollbarWidth: a.cfg.Layout.ScrollbarWidth, Log: a.log},
		Measurer: m,
	}, nil
}

// load reads a fixture and applies configured viewport overrides.
func (a *app) load(path string) (*fixture.Fixture, error) {
	fx, err := fixture.Load(path)
	if err != nil {
		return nil, err
	}
	if w := a.cfg.Layout.ViewportWidth; w != "" {
		fx.Viewport.Width = w
	}
	if h := a.cfg.Layout.ViewportHeight; h != "" {
		fx.Viewport.Height = h
	}
	return fx, nil
}
