// Package config defines the top-level command line interface.
package config

import (
	"github.com/termkey/termkey/internal/cmd"
	"github.com/termkey/termkey/internal/log"
)

// CLI is the root command structure parsed by Kong.
type CLI struct {
	Show   cmd.Show          `cmd:"" default:"withargs" help:"Display pressed keys and mouse buttons on the terminal"`
	Config cmd.ConfigCommand `cmd:"" help:"Manage configuration files"`

	Log        log.Options `embed:"" prefix:"log."`
	ConfigFile string      `name:"config" help:"Path to a configuration file" type:"path" env:"TERMKEY_CONFIG"`
}
