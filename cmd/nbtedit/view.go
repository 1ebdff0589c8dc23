package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtedit/encode"
	"github.com/signadot/nbtedit/format"
	"github.com/signadot/nbtedit/nbt"
	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tree"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	opts := append(cfg.encOpts(cc.Out), encode.Depth(cfg.Depth), encode.EncodeFull(cfg.Full))
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		doc, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if i > 0 {
			io.WriteString(cc.Out, "\n")
		}
		if err := encode.Encode(doc, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

// readDoc decodes file, "-" being the standard input.
func readDoc(cfg *MainConfig, cc *cli.Context, file string) (*tree.Document, error) {
	var (
		d   []byte
		err error
	)
	if file == "-" {
		d, err = io.ReadAll(cc.In)
	} else {
		d, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	doc, err := cfg.codec().Load(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return doc, nil
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: get requires a path and a file", cli.ErrUsage)
	}
	p, err := parsePath(args[0])
	if err != nil {
		return err
	}
	doc, err := readDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	ref, err := tree.Resolve(doc.Root, p)
	if err != nil {
		return err
	}
	sub := &tree.Document{Name: ref.Name(), Root: ref.Tag}
	if ref.IsRoot() {
		sub.Name = doc.Name
	}
	opts := append(cfg.encOpts(cc.Out), encode.EncodeFull(cfg.Full))
	return encode.Encode(sub, cc.Out, opts...)
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	f := cfg.Settings.Format
	if f == format.TextFormat {
		f = format.JSONFormat
	}
	opts := append(cfg.encOpts(cc.Out), encode.EncodeFormat(f))
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		doc, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := encode.Encode(doc, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		cfg.Load.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: load requires an input and an output file", cli.ErrUsage)
	}
	d, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read %q: %w", args[0], err)
	}
	if strings.HasSuffix(args[0], ".yaml") || strings.HasSuffix(args[0], ".yml") {
		if d, err = yaml.YAMLToJSON(d); err != nil {
			return fmt.Errorf("error decoding %s: %w", args[0], err)
		}
	}
	root, err := tag.UnmarshalJSON(d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	c := cfg.codec()
	if c.Compression == nbt.Auto {
		c.Compression = nbt.Gzip
	}
	out, err := c.Save(&tree.Document{Name: cfg.Name, Root: root})
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[1], out, 0o644); err != nil {
		return err
	}
	cfg.Log.Info("wrote", "file", args[1], "compression", c.Compression)
	return nil
}
