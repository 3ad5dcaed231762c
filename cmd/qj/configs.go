package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/qjson/encode"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Pretty  bool `cli:"name=p aliases=pretty desc='encode one element per line'"`
	Indent  int  `cli:"name=indent desc='indent width for -p'"`
	Verbose bool `cli:"name=v desc='log debug messages'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodePretty(cfg.Pretty),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor reports whether output to w is colored: -color when given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color || cfg.optSet("color") {
		return cfg.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// optSet reports whether the main option name was given on the command
// line.
func (cfg *MainConfig) optSet(name string) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

type FmtConfig struct {
	*MainConfig
	Check bool `cli:"name=check desc='report inputs that are not formatted and exit 1'"`

	Fmt *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Context int `cli:"name=U desc='lines of context around changes'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Exit bool `cli:"name=e desc='exit 1 unless the last result is true'"`

	Query *cli.Command
}

type GetConfig struct {
	*MainConfig
	All bool `cli:"name=a desc='list every match, allowing [*]'"`

	Get *cli.Command
}

type YAMLConfig struct {
	*MainConfig
	YAML *cli.Command
}

type ServeConfig struct {
	*MainConfig
	ConfigFile string `cli:"name=config desc='configuration file (toml)'"`
	Addr       string `cli:"name=addr desc='TCP listen address, overrides the config file'"`
	Gops       bool   `cli:"name=gops desc='start a gops diagnostics agent'"`

	Serve *cli.Command
}

type CallConfig struct {
	*MainConfig
	Addr string `cli:"name=addr desc='server address'"`

	Call *cli.Command
}
