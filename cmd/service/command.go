package service

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/innerguide/guide-api/internal/core"
	"github.com/innerguide/guide-api/internal/logic/v1/process"
	"github.com/innerguide/guide-api/pkg/utils"
)

type Options struct {
	ConfigPath string
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "init api by given config")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "service",
		Short: "journal service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func Run(opts *Options) error {
	utils.SetupIDWorker(1)

	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
	process.StartProcess(app)
	serve(app)

	return nil
}
