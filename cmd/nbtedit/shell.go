package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtedit/editor"
	"github.com/signadot/nbtedit/encode"
	"github.com/signadot/nbtedit/inventory"
	"github.com/signadot/nbtedit/query"
	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tag/tpath"
)

const shellHelp = `commands:
  open FILE       open a file
  tree            show the whole tree, '>' marks the selection
  ls              list the children of the selection
  cd PATH         select PATH relative to the selection; '/' is the root, '..' the parent
  show            show the selection
  set VALUE       set the value of the selection
  name NAME       rename the selection
  add             add a child to the selection
  rm              delete the selection
  find EXPR       list tags matching EXPR
  inv             show inventories
  slot STORE N    edit slot N of Inventory or EnderItems
  save [FILE]     save, to FILE if given
  quit            leave without saving
`

func shell(cfg *ShellConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Shell.Parse(cc, args)
	if err != nil {
		cfg.Shell.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: shell takes at most one file", cli.ErrUsage)
	}
	sh := newShell(cfg.session(), cc.In, cc.Out, cfg.Log)
	sh.colors = cfg.colors(cc.Out)
	if len(args) == 1 {
		if err := sh.s.OpenFile(args[0]); err != nil {
			return err
		}
	}
	return sh.run()
}

type shellState struct {
	s      *editor.Session
	in     *bufio.Scanner
	out    io.Writer
	log    *slog.Logger
	colors bool
}

func newShell(s *editor.Session, in io.Reader, out io.Writer, log *slog.Logger) *shellState {
	if log == nil {
		log = slog.Default()
	}
	return &shellState{s: s, in: bufio.NewScanner(in), out: out, log: log}
}

var errQuit = errors.New("quit")

func (sh *shellState) run() error {
	for {
		line, ok := sh.prompt("nbtedit> ")
		if !ok {
			return nil
		}
		cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		if cmd == "" {
			continue
		}
		err := sh.exec(cmd, strings.TrimSpace(rest))
		if errors.Is(err, errQuit) {
			return nil
		}
		if errors.Is(err, editor.ErrCancelled) {
			fmt.Fprintln(sh.out, "cancelled")
			continue
		}
		if err != nil {
			report(sh.log, cmd, err)
			fmt.Fprintf(sh.out, "error: %v\n", err)
		}
	}
}

func (sh *shellState) prompt(p string) (string, bool) {
	io.WriteString(sh.out, p)
	if !sh.in.Scan() {
		return "", false
	}
	return sh.in.Text(), true
}

func (sh *shellState) exec(cmd, arg string) error {
	s := sh.s
	switch cmd {
	case "help", "?":
		_, err := io.WriteString(sh.out, shellHelp)
		return err
	case "quit", "exit", "q":
		return errQuit
	case "open":
		return s.OpenFile(arg)
	case "tree":
		for _, r := range s.Rows() {
			mark := " "
			if r.Selected {
				mark = ">"
			}
			fmt.Fprintf(sh.out, "%s %s%s\n", mark, strings.Repeat("  ", r.Depth), r.Line)
		}
		return nil
	case "ls":
		return sh.ls()
	case "cd":
		return sh.cd(arg)
	case "show":
		return sh.show()
	case "set":
		d := s.Detail()
		if d.Mode == editor.ModeMessage {
			return fmt.Errorf("%s has no value to set", d.Path)
		}
		return s.Apply(d.Name, arg)
	case "name":
		d := s.Detail()
		if !d.NameEditable {
			return fmt.Errorf("%s is not a compound entry", d.Path)
		}
		return s.Apply(arg, d.Value)
	case "add":
		return s.AddChild(sh)
	case "rm":
		return s.Delete()
	case "find":
		if s.Document() == nil {
			return editor.ErrNoDocument
		}
		refs, err := query.Find(s.Document(), arg)
		if err != nil {
			return err
		}
		for _, ref := range refs {
			fmt.Fprintf(sh.out, "%s\t%s\n", displayPath(ref.Path), encode.Line(ref, ref.Name()))
		}
		return nil
	case "inv":
		return writeInventories(sh.out, s, sh.colors)
	case "slot":
		store, n, ok := strings.Cut(arg, " ")
		if !ok {
			return errors.New("usage: slot STORE N")
		}
		slot, err := parseNumber(n)
		if err != nil {
			return fmt.Errorf("bad slot %q", n)
		}
		return s.EditSlot(store, slot, sh)
	case "save":
		return s.SaveFile(arg)
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
}

func (sh *shellState) ls() error {
	ref, err := sh.s.Selection()
	if err != nil {
		return err
	}
	var children []tpath.Path
	switch x := ref.Tag.(type) {
	case *tag.Compound:
		for _, k := range x.Keys {
			children = append(children, ref.Path.Append(tpath.Field(k)))
		}
	case *tag.List:
		for i := range x.Values {
			children = append(children, ref.Path.Append(tpath.Index(i)))
		}
	default:
		return sh.show()
	}
	for _, p := range children {
		if c, ok := sh.s.Lookup(p); ok {
			fmt.Fprintln(sh.out, encode.Line(c, c.Name()))
		}
	}
	return nil
}

func (sh *shellState) cd(arg string) error {
	cur, _ := sh.s.SelectionPath()
	var p tpath.Path
	switch {
	case arg == "" || arg == "/":
		p = tpath.Path{}
	case arg == "..":
		p = cur.Parent()
	case strings.HasPrefix(arg, "/"):
		q, err := tpath.Parse(arg[1:])
		if err != nil {
			return err
		}
		p = q
	default:
		q, err := tpath.Parse(arg)
		if err != nil {
			return err
		}
		p = cur.Append(q...)
	}
	if err := sh.s.Select(p); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, displayPath(p))
	return nil
}

func (sh *shellState) show() error {
	d := sh.s.Detail()
	fmt.Fprintf(sh.out, "path: %s\n", d.Path)
	if d.Kind != tag.EndKind {
		fmt.Fprintf(sh.out, "kind: %s\n", d.Kind)
	}
	if d.Name != "" {
		fmt.Fprintf(sh.out, "name: %s\n", d.Name)
	}
	switch d.Mode {
	case editor.ModeMessage:
		fmt.Fprintln(sh.out, d.Message)
	default:
		fmt.Fprintf(sh.out, "value: %s\n", d.Value)
		fmt.Fprintln(sh.out, d.Hint)
	}
	return nil
}

// PromptChild asks for a new child on the shell input.  An empty answer
// takes the default; "cancel" or end of input cancels.
func (sh *shellState) PromptChild(req editor.ChildRequest) (editor.ChildInput, error) {
	var in editor.ChildInput
	ask := func(p string) (string, error) {
		line, ok := sh.prompt(p)
		line = strings.TrimSpace(line)
		if !ok || line == "cancel" {
			return "", editor.ErrCancelled
		}
		return line, nil
	}
	in.Kind = req.Preselected
	if !req.KindFixed {
		names := make([]string, len(req.Kinds))
		for i, k := range req.Kinds {
			names[i] = k.String()
		}
		fmt.Fprintf(sh.out, "kinds: %s\n", strings.Join(names, " "))
		k, err := ask(fmt.Sprintf("kind [%s]: ", req.Preselected))
		if err != nil {
			return in, err
		}
		if k != "" {
			if in.Kind, err = tag.ParseKind(k); err != nil {
				return in, err
			}
			if !slices.Contains(req.Kinds, in.Kind) {
				return in, fmt.Errorf("%s is not allowed here", in.Kind)
			}
		}
	}
	if req.RequireName {
		n, err := ask("name: ")
		if err != nil {
			return in, err
		}
		in.Name = n
	}
	if !in.Kind.IsContainer() {
		v, err := ask("value: ")
		if err != nil {
			return in, err
		}
		in.Value = v
	}
	return in, nil
}

// PromptSlot asks what to do with an inventory slot.
func (sh *shellState) PromptSlot(req inventory.Request) (inventory.Action, error) {
	def := req.Defaults()
	cell := inventory.Cell{Slot: req.Slot, Name: inventory.SlotName(req.Slot), Entry: req.Entry}
	fmt.Fprintln(sh.out, strings.ReplaceAll(cell.Text(), "\n", ": "))
	choices := "save/cancel"
	if req.CanDelete() {
		choices = "save/delete/cancel"
	}
	line, ok := sh.prompt(fmt.Sprintf("action (%s) [save]: ", choices))
	if !ok {
		return inventory.Cancelled{}, nil
	}
	switch strings.TrimSpace(line) {
	case "", "save":
	case "delete":
		return inventory.Delete{}, nil
	default:
		return inventory.Cancelled{}, nil
	}
	ask := func(p, cur string) (string, bool) {
		line, ok := sh.prompt(fmt.Sprintf("%s [%s]: ", p, cur))
		line = strings.TrimSpace(line)
		if !ok || line == "cancel" {
			return "", false
		}
		if line == "" {
			return cur, true
		}
		return line, true
	}
	id, ok := ask("id", def.ID)
	if !ok {
		return inventory.Cancelled{}, nil
	}
	count, ok := ask("count", strconv.Itoa(def.Count))
	if !ok {
		return inventory.Cancelled{}, nil
	}
	slot, ok := ask("slot", strconv.Itoa(def.Slot))
	if !ok {
		return inventory.Cancelled{}, nil
	}
	res := inventory.Save{ID: id}
	var err error
	if res.Count, err = parseNumber(count); err != nil {
		return nil, fmt.Errorf("%w: %q", inventory.ErrInvalidCount, count)
	}
	if res.Slot, err = parseNumber(slot); err != nil {
		return nil, fmt.Errorf("%w: %q", inventory.ErrInvalidSlot, slot)
	}
	return res, nil
}

func displayPath(p tpath.Path) string {
	if p.IsRoot() {
		return "(root)"
	}
	return p.String()
}
