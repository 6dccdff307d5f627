// meta/meta.go
package meta

// APP_NAME names the binary, its config directory and its data directory.
const APP_NAME = "rbnim"

// ENV_PREFIX prefixes every environment variable read by the config.
const ENV_PREFIX = "RBNIM"

// VERSION is reported by --version.
const VERSION = "v0.1.0"

// DEFAULT_MAX_PILE bounds both piles in the experiment grid.
const DEFAULT_MAX_PILE = 6

// DEFAULT_GAMES is the number of games per experiment setup.
const DEFAULT_GAMES = 3

// DEFAULT_WORKERS defines the number of games played at once by an experiment.
const DEFAULT_WORKERS = 8
