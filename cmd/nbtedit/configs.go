package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtedit/config"
	"github.com/signadot/nbtedit/editor"
	"github.com/signadot/nbtedit/encode"
	"github.com/signadot/nbtedit/format"
	"github.com/signadot/nbtedit/logs"
	"github.com/signadot/nbtedit/nbt"
)

type MainConfig struct {
	V           bool   `cli:"name=v aliases=verbose desc='log debug messages'"`
	Color       string `cli:"name=color desc='colour output: auto, always, never'"`
	Compression string `cli:"name=z aliases=compression desc='compression when saving: auto, gzip, none'"`
	ConfigFile  string `cli:"name=config desc='config file (default $XDG_CONFIG_HOME/nbtedit/nbtedit.yaml)'"`
	LogFile     string `cli:"name=log desc='also log to this file'"`
	Journal     bool   `cli:"name=journal desc='also log to the systemd journal'"`
	Plain       bool   `cli:"name=plain desc='json and yaml output without tag kinds'"`
	Wire        bool   `cli:"name=wire desc='compact json output'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Settings *config.Config
	Log      *slog.Logger
	CloseLog func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// setup merges the config file with flags, which take precedence, and
// builds the logger.
func (cfg *MainConfig) setup() error {
	settings, err := config.Load(cfg.ConfigFile)
	if err != nil {
		return err
	}
	if cfg.Color != "" {
		if settings.Color, err = config.ParseColorMode(cfg.Color); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	if cfg.Compression != "" {
		if settings.Compression, err = nbt.ParseCompression(cfg.Compression); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	if cfg.OutFormat != nil {
		settings.Format = *cfg.OutFormat
	}
	if cfg.V {
		settings.LogLevel = slog.LevelDebug
	}
	if cfg.LogFile != "" {
		settings.LogFile = cfg.LogFile
	}
	if cfg.Journal {
		settings.Journal = true
	}
	cfg.Settings = settings
	log, closer, err := logs.New(os.Stderr, logs.Options{
		Level:   settings.LogLevel,
		File:    settings.LogFile,
		Journal: settings.Journal,
	})
	if err != nil {
		return err
	}
	cfg.Log, cfg.CloseLog = log, closer
	slog.SetDefault(log)
	if settings.File != "" {
		log.Debug("config", "file", settings.File)
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.Settings.Format),
		encode.EncodeWire(cfg.Wire),
		encode.EncodePlain(cfg.Plain),
	}
	f, _ := w.(*os.File)
	if cfg.Settings.Color.Enabled(f) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) colors(w io.Writer) bool {
	f, _ := w.(*os.File)
	return cfg.Settings.Color.Enabled(f)
}

func (cfg *MainConfig) codec() *nbt.Codec {
	return &nbt.Codec{Compression: cfg.Settings.Compression}
}

func (cfg *MainConfig) session() *editor.Session {
	return editor.NewSession(&editor.SessionConfig{
		Codec: cfg.codec(),
		Log:   cfg.Log,
	})
}

type ViewConfig struct {
	*MainConfig
	Depth int  `cli:"name=d aliases=depth desc='expand at most this many levels (0: all)'"`
	Full  bool `cli:"name=full desc='do not truncate long strings'"`

	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Full bool `cli:"name=full desc='do not truncate long strings'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	DryRun bool   `cli:"name=n desc='print the result instead of saving it'"`
	To     string `cli:"name=to desc='save to this file instead of the input file'"`

	Set *cli.Command
}

type AddConfig struct {
	*MainConfig
	DryRun bool   `cli:"name=n desc='print the result instead of saving it'"`
	To     string `cli:"name=to desc='save to this file instead of the input file'"`
	Name   string `cli:"name=name desc='name of the new compound entry'"`

	Add *cli.Command
}

type RenameConfig struct {
	*MainConfig
	DryRun bool   `cli:"name=n desc='print the result instead of saving it'"`
	To     string `cli:"name=to desc='save to this file instead of the input file'"`

	Rename *cli.Command
}

type DeleteConfig struct {
	*MainConfig
	DryRun bool   `cli:"name=n desc='print the result instead of saving it'"`
	To     string `cli:"name=to desc='save to this file instead of the input file'"`

	Delete *cli.Command
}

type InvConfig struct {
	*MainConfig

	Inv *cli.Command
}

type SlotConfig struct {
	*MainConfig
	DryRun bool   `cli:"name=n desc='print the result instead of saving it'"`
	To     string `cli:"name=to desc='save to this file instead of the input file'"`
	ID     string `cli:"name=id desc='item id'"`
	Count  int    `cli:"name=count desc='item count (default: current, else 1)'"`
	MoveTo int    `cli:"name=move desc='move the item to this slot'"`
	Remove bool   `cli:"name=rm desc='delete the item'"`

	Slot *cli.Command
}

type FindConfig struct {
	*MainConfig
	Paths bool `cli:"name=p desc='print only paths'"`

	Find *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	DryRun bool   `cli:"name=n desc='print the result instead of saving it'"`
	To     string `cli:"name=to desc='save to this file instead of the input file'"`
	YAML   bool   `cli:"name=y aliases=yaml desc='the patch is yaml'"`

	Patch *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type LoadConfig struct {
	*MainConfig
	Name string `cli:"name=name desc='root name'"`

	Load *cli.Command
}

type ConfigConfig struct {
	*MainConfig
	Init bool `cli:"name=init desc='write a default config file if there is none'"`

	Config *cli.Command
}

type ShellConfig struct {
	*MainConfig

	Shell *cli.Command
}
