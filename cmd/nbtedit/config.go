package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtedit/config"
)

func configCmd(cfg *ConfigConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Config.Parse(cc, args)
	if err != nil {
		cfg.Config.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: config takes no arguments", cli.ErrUsage)
	}
	if cfg.Init {
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		path, err := config.WriteDefault(dir)
		if err != nil {
			return err
		}
		cfg.Log.Info("config", "file", path)
		return nil
	}
	if cfg.Settings.File != "" {
		fmt.Fprintf(cc.Out, "# %s\n", cfg.Settings.File)
	}
	d, err := cfg.Settings.YAML()
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}
