package main

import (
	"fmt"
	"strings"

	"github.com/adrg/xdg"
	"github.com/forgottenswitch/cygpathint/cygpath"
	"github.com/forgottenswitch/cygpathint/discover"
	"github.com/forgottenswitch/cygpathint/probe"
	"github.com/go-logr/logr"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "CYGSTAT"

// defaultConfigFile is looked up under the XDG config directories
// when --config is not given.
const defaultConfigFile = "cygstat/config.yaml"

const (
	keyRoot     = "root"
	keyPathList = "path-list"
	keyMarker   = "marker"
	keyProbe    = "probe"
	keyMaxHops  = "max-hops"
	keyVerbose  = "verbose"
	keyChain    = "chain"
)

type config struct {
	Root     string
	PathList string
	Marker   string
	Probe    string
	MaxHops  int
	Verbose  int
	Chain    bool

	// pathListSet distinguishes an empty path list from an unset one.
	pathListSet bool
}

func addFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (yaml, toml or json), default $XDG_CONFIG_HOME/"+defaultConfigFile)
	flags.String(keyRoot, "", `native directory "/" maps onto; skips discovery`)
	flags.String(keyPathList, "", "directory list searched for the marker instead of $PATH")
	flags.String(keyMarker, discover.DefaultMarker, "file identifying <root>/bin")
	flags.String(keyProbe, "system", "symlink probe: system, sniff or always")
	flags.Int(keyMaxHops, cygpath.DefaultMaxHops, "symlink hop limit, 0 for none")
	flags.CountP(keyVerbose, "v", "log verbosity, repeat for more")
	flags.Bool(keyChain, false, "print every hop of the resolution")
}

// loadConfig merges flags, CYGSTAT_* environment variables and the config
// file, in that order of precedence.
func loadConfig(flags *pflag.FlagSet) (config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return config{}, err
	}

	file := v.GetString("config")
	if file == "" {
		// absence of the default file is fine
		file, _ = xdg.SearchConfigFile(defaultConfigFile)
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("reading config %q: %w", file, err)
		}
	}

	cfg := config{
		Root:     v.GetString(keyRoot),
		PathList: v.GetString(keyPathList),
		Marker:   v.GetString(keyMarker),
		Probe:    v.GetString(keyProbe),
		MaxHops:  v.GetInt(keyMaxHops),
		Verbose:  v.GetInt(keyVerbose),
		Chain:    v.GetBool(keyChain),
	}
	// flag defaults do not count
	cfg.pathListSet = v.IsSet(keyPathList)

	switch cfg.Probe {
	case "system", "sniff", "always":
	default:
		return config{}, fmt.Errorf("unknown probe %q: must be one of system, sniff or always", cfg.Probe)
	}
	if cfg.MaxHops < 0 {
		return config{}, fmt.Errorf("max-hops must not be negative: %d", cfg.MaxHops)
	}
	return cfg, nil
}

func (cfg config) root(fsys afero.Fs, logger logr.Logger) cygpath.Root {
	if cfg.Root != "" {
		return cygpath.NewRoot(cfg.Root, true)
	}
	opts := []discover.Option{
		discover.WithFs(fsys),
		discover.WithMarker(cfg.Marker),
		discover.WithLogger(logger.WithName("discover")),
	}
	if cfg.pathListSet {
		return discover.FromPathList(cfg.PathList, opts...)
	}
	return discover.Detect(opts...)
}

func (cfg config) prober(fsys afero.Fs) probe.Prober {
	switch cfg.Probe {
	case "sniff":
		return probe.Sniff(fsys)
	case "always":
		return probe.Always
	default:
		return probe.System()
	}
}

func (cfg config) resolver(fsys afero.Fs, logger logr.Logger) *cygpath.Resolver {
	return cygpath.NewResolver(
		cfg.root(fsys, logger),
		cygpath.WithFs(fsys),
		cygpath.WithProber(cfg.prober(fsys)),
		cygpath.WithLogger(logger.WithName("resolver")),
		cygpath.WithMaxHops(cfg.MaxHops),
	)
}
