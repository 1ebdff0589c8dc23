package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtedit/editor"
	"github.com/signadot/nbtedit/tag"
)

// selectArg opens file and selects the node at path.
func (cfg *MainConfig) selectArg(path, file string) (*editor.Session, error) {
	p, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	s, err := cfg.open(file)
	if err != nil {
		return nil, err
	}
	if err := s.Select(p); err != nil {
		return nil, err
	}
	return s, nil
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: set requires a path, a value and a file", cli.ErrUsage)
	}
	s, err := cfg.selectArg(args[0], args[2])
	if err != nil {
		return err
	}
	d := s.Detail()
	if d.Mode == editor.ModeMessage {
		return fmt.Errorf("%w: %s is a %s; use add, rename or delete", cli.ErrUsage, d.Path, d.Kind)
	}
	if err := s.Apply(d.Name, args[1]); err != nil {
		return err
	}
	return cfg.finish(cc, s, cfg.DryRun, cfg.To)
}

func add(cfg *AddConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Add.Parse(cc, args)
	if err != nil {
		cfg.Add.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var value string
	switch len(args) {
	case 3:
	case 4:
		value = args[2]
		args = []string{args[0], args[1], args[3]}
	default:
		return fmt.Errorf("%w: add requires a path, a kind, an optional value and a file", cli.ErrUsage)
	}
	kind, err := tag.ParseKind(args[1])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	s, err := cfg.selectArg(args[0], args[2])
	if err != nil {
		return err
	}
	err = s.AddChild(editor.ChildPrompterFunc(func(editor.ChildRequest) (editor.ChildInput, error) {
		return editor.ChildInput{Name: cfg.Name, Kind: kind, Value: value}, nil
	}))
	if err != nil {
		return err
	}
	return cfg.finish(cc, s, cfg.DryRun, cfg.To)
}

func rename(cfg *RenameConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rename.Parse(cc, args)
	if err != nil {
		cfg.Rename.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: rename requires a path, a new name and a file", cli.ErrUsage)
	}
	s, err := cfg.selectArg(args[0], args[2])
	if err != nil {
		return err
	}
	d := s.Detail()
	if !d.NameEditable {
		return fmt.Errorf("%w: %s is not a compound entry", cli.ErrUsage, d.Path)
	}
	if err := s.Apply(args[1], d.Value); err != nil {
		return err
	}
	return cfg.finish(cc, s, cfg.DryRun, cfg.To)
}

func del(cfg *DeleteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Delete.Parse(cc, args)
	if err != nil {
		cfg.Delete.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: delete requires a path and a file", cli.ErrUsage)
	}
	s, err := cfg.selectArg(args[0], args[1])
	if err != nil {
		return err
	}
	if err := s.Delete(); err != nil {
		return err
	}
	return cfg.finish(cc, s, cfg.DryRun, cfg.To)
}
