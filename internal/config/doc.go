// Package config manages user-level settings stored at ~/.cordovagen/config.yaml.
// Values can be overridden with CORDOVAGEN_* environment variables. The
// framework root is read from here, so no component needs a global.
package config
