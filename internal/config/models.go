package config

import "time"

// CurrentVersion is the only configuration schema version understood.
const CurrentVersion = 1

// Config is the whole configuration file.
type Config struct {
	Version int     `yaml:"version"`
	Display Display `yaml:"display"`
	Sources Sources `yaml:"sources"`
	Network Network `yaml:"network"`
	Logging Logging `yaml:"logging"`
}

// Display controls backend selection and the poll loop.
type Display struct {
	Framebuffer  string        `yaml:"framebuffer"`   // Device node probed for hardware rendering
	PollInterval time.Duration `yaml:"poll_interval"` // Sleep between snapshots
}

// Sources are the files the dashboard reads on every tick.
type Sources struct {
	RootPassword  string `yaml:"root_password"`
	OnionHostname string `yaml:"onion_hostname"`
	Hostname      string `yaml:"hostname"`
}

// Network describes the address-listing command. Its output must be in
// `ip -brief` format.
type Network struct {
	Command string        `yaml:"command"`
	Args    []string      `yaml:"args,flow"`
	Timeout time.Duration `yaml:"timeout"`
}

// Logging settings. An empty level keeps logging silent.
type Logging struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Display: Display{
			Framebuffer:  "/dev/fb0",
			PollInterval: 2 * time.Second,
		},
		Sources: Sources{
			RootPassword:  "/var/shared/root-password",
			OnionHostname: "/var/lib/tor/onion/hidden-ssh/hostname",
			Hostname:      "/etc/hostname",
		},
		Network: Network{
			Command: "ip",
			Args:    []string{"-brief", "-color", "addr"},
			Timeout: 5 * time.Second,
		},
	}
}
