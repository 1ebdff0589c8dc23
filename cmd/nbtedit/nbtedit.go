package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtedit/editor"
	"github.com/signadot/nbtedit/encode"
	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tag/tpath"
)

func nbtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
		if cfg.CloseLog != nil {
			cfg.CloseLog()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	if err := cfg.setup(); err != nil {
		return err
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// parsePath reads a path argument; "." and "" are the root.
func parsePath(s string) (tpath.Path, error) {
	if s == "." {
		s = ""
	}
	p, err := tpath.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return p, nil
}

// open starts a session on file.
func (cfg *MainConfig) open(file string) (*editor.Session, error) {
	s := cfg.session()
	if err := s.OpenFile(file); err != nil {
		return nil, err
	}
	return s, nil
}

// finish either prints the edited document or saves it, to to if given.
func (cfg *MainConfig) finish(cc *cli.Context, s *editor.Session, dryRun bool, to string) error {
	if dryRun {
		return encode.Encode(s.Document(), cc.Out, cfg.encOpts(cc.Out)...)
	}
	return s.SaveFile(to)
}

// parseNumber reads a slot or count with the same literal rules as integer
// tag values.
func parseNumber(s string) (int, error) {
	v, err := tag.ParseInt(s, 32)
	return int(v), err
}
