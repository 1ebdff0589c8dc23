package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtedit/patch"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch file and a file to which to apply it", cli.ErrUsage)
	}
	p, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read %q: %w", args[0], err)
	}
	if cfg.YAML || strings.HasSuffix(args[0], ".yaml") || strings.HasSuffix(args[0], ".yml") {
		if p, err = patch.FromYAML(p); err != nil {
			return err
		}
	}
	s, err := cfg.open(args[1])
	if err != nil {
		return err
	}
	res, err := patch.Apply(s.Document(), p)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	s.SetDocument(res)
	return cfg.finish(cc, s, cfg.DryRun, cfg.To)
}
