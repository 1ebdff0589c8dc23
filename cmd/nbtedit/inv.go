package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtedit/editor"
	"github.com/signadot/nbtedit/inventory"
)

func inv(cfg *InvConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Inv.Parse(cc, args)
	if err != nil {
		cfg.Inv.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: inv requires a file", cli.ErrUsage)
	}
	s, err := cfg.open(args[0])
	if err != nil {
		return err
	}
	return writeInventories(cc.Out, s, cfg.colors(cc.Out))
}

func writeInventories(w io.Writer, s *editor.Session, colors bool) error {
	views, err := s.Inventories()
	if err != nil {
		return err
	}
	if len(views) == 0 {
		_, err := io.WriteString(w, "No inventory data found in this file.\n")
		return err
	}
	for i, v := range views {
		if i > 0 {
			io.WriteString(w, "\n")
		}
		if err := writeView(w, v, colors); err != nil {
			return err
		}
	}
	return nil
}

// writeView prints a store as a grid of "slot:item" cells followed by the
// special slots, one per line.
func writeView(w io.Writer, v *inventory.View, colors bool) error {
	title, filled := fmt.Sprint, fmt.Sprint
	if colors {
		title = color.New(color.Bold).Sprint
		filled = color.New(color.FgGreen).Sprint
	}
	cellText := func(c inventory.Cell) string {
		if c.Entry == nil {
			return "-"
		}
		return fmt.Sprintf("%s ×%d", strings.TrimPrefix(c.Entry.ID(), "minecraft:"), c.Entry.Count())
	}
	width := 1
	for _, row := range v.Grid {
		for _, c := range row {
			width = max(width, len([]rune(cellText(c))))
		}
	}
	var b strings.Builder
	b.WriteString(title(v.Layout.Title))
	b.WriteByte('\n')
	for _, row := range v.Grid {
		for i, c := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			t := cellText(c)
			pad := strings.Repeat(" ", width-len([]rune(t)))
			if c.Entry != nil {
				t = filled(t)
			}
			fmt.Fprintf(&b, "%3d:%s%s", c.Slot, t, pad)
		}
		b.WriteByte('\n')
	}
	for _, c := range v.Special {
		t := "Empty"
		if c.Entry != nil {
			t = filled(fmt.Sprintf("%s ×%d", c.Entry.ID(), c.Entry.Count()))
		}
		fmt.Fprintf(&b, "%s (%d): %s\n", c.Name, c.Slot, t)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// slotAction builds the action for a slot from flags, starting from the
// request defaults.
func slotAction(cfg *SlotConfig, req inventory.Request) inventory.Action {
	if cfg.Remove {
		return inventory.Delete{}
	}
	a := req.Defaults()
	if cfg.ID != "" {
		a.ID = cfg.ID
	}
	if cfg.Count >= 0 {
		a.Count = cfg.Count
	}
	if cfg.MoveTo >= 0 {
		a.Slot = cfg.MoveTo
	}
	return a
}

func slot(cfg *SlotConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Slot.Parse(cc, args)
	if err != nil {
		cfg.Slot.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: slot requires a store, a slot number and a file", cli.ErrUsage)
	}
	n, err := parseNumber(args[1])
	if err != nil {
		return fmt.Errorf("%w: bad slot %q", cli.ErrUsage, args[1])
	}
	s, err := cfg.open(args[2])
	if err != nil {
		return err
	}
	err = s.EditSlot(args[0], n, editor.SlotPrompterFunc(func(req inventory.Request) (inventory.Action, error) {
		return slotAction(cfg, req), nil
	}))
	if err != nil {
		return err
	}
	return cfg.finish(cc, s, cfg.DryRun, cfg.To)
}
