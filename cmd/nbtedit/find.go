package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtedit/encode"
	"github.com/signadot/nbtedit/query"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires an expression", cli.ErrUsage)
	}
	src := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		refs, err := query.Find(doc, src)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		prefix := ""
		if len(files) > 1 {
			prefix = file + ":"
		}
		for _, ref := range refs {
			p := ref.Path.Quoted()
			if ref.IsRoot() {
				p = "."
			}
			if cfg.Paths {
				fmt.Fprintf(cc.Out, "%s%s\n", prefix, p)
				continue
			}
			fmt.Fprintf(cc.Out, "%s%s\t%s\n", prefix, p, encode.Line(ref, ref.Name()))
		}
	}
	return nil
}
