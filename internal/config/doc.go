// Package config loads the network-status configuration file.
//
// The file is YAML and entirely optional: every key has a default that
// matches a stock installer image, and a missing file yields Default().
// Keys present in the file override the defaults one by one.
//
// # File Location
//
// /etc/network-status/config.yaml unless --config names another path.
//
// # Example
//
//	version: 1
//	display:
//	  framebuffer: /dev/fb0
//	  poll_interval: 2s
//	sources:
//	  root_password: /var/shared/root-password
//	  onion_hostname: /var/lib/tor/onion/hidden-ssh/hostname
//	  hostname: /etc/hostname
//	network:
//	  command: ip
//	  args: [-brief, -color, addr]
//	  timeout: 5s
//	logging:
//	  level: ""
//	  file: ""
//
// # Security
//
// The configuration only names where secrets live. It never stores the root
// password itself.
package config
