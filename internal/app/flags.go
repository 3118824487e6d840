package app

import "flag"

// Options represents the command-line parameters for the application.
// They layer over the YAML config file: a non-zero flag wins.
type Options struct {
	ConfigPath string
	Scheme     string
	Seed       int64
	NoAudio    bool
}

// NewOptions returns Options populated with sensible defaults.
func NewOptions() *Options {
	return &Options{Seed: -1}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", o.ConfigPath, "path to YAML config file")
	fs.StringVar(&o.Scheme, "scheme", o.Scheme, "color scheme override")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "animator noise seed (-1 uses the config value)")
	fs.BoolVar(&o.NoAudio, "no-audio", o.NoAudio, "disable soundtrack playback")
}
