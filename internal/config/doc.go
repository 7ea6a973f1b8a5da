// Package config manages user-level settings stored at ~/.bolt/config.yaml.
// Values can be overridden with BOLT_-prefixed environment variables, for
// example BOLT_TEMPLATE for the template repository used by "bolt new".
package config
