// Package config manages user-level settings stored at ~/.starterkit/config.yaml.
// Every key has a default that reproduces the stock behaviour, so the file is
// optional: it only redirects the registry, swaps the npm or git executables,
// or turns the update check and banner on and off.
package config
