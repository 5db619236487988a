package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/tower-picker/internal/app"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// ErrInvalid marks configuration problems; callers exit with status 2.
var ErrInvalid = errors.New("configuration error")

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth      = "TOWER_PICKER_WIDTH"
	envHeight     = "TOWER_PICKER_HEIGHT"
	envShowFooter = "TOWER_PICKER_FOOTER"
	envTrace      = "TOWER_PICKER_TRACE"
	envLogFile    = "TOWER_PICKER_LOG_FILE"
	envCatalog    = "TOWER_PICKER_CATALOG"
	envSeed       = "TOWER_PICKER_SEED"
	envTeamSize   = "TOWER_PICKER_TEAM_SIZE"
)

// DotenvFile is read from the working directory when present.
const DotenvFile = ".env"

// Flags holds the flag values bound by Bind until Config resolves them.
type Flags struct {
	width    *int
	height   *int
	footer   *bool
	trace    *bool
	logFile  *string
	catalog  *string
	seed     *uint64
	teamSize *int
}

// Bind registers every option on fs, using env for the defaults.
func Bind(fs *pflag.FlagSet, env map[string]string) *Flags {
	return &Flags{
		width:    fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:   fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		footer:   fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)"),
		trace:    fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:  fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
		catalog:  fs.String("catalog", envOrDefault(env, envCatalog, ""), "path to a JSON tower catalog (built-in catalog when empty)"),
		seed:     fs.Uint64("seed", envOrUint(env, envSeed, 0), "random seed for reproducible teams (0 is unseeded)"),
		teamSize: fs.Int("team-size", envOrInt(env, envTeamSize, app.DefaultTeamSize), "initial team size"),
	}
}

// Config resolves the bound flags. args is recorded for trace output.
func (f *Flags) Config(args []string) Config {
	return Config{
		App: app.Config{
			Width:       *f.width,
			Height:      *f.height,
			ShowFooter:  *f.footer,
			TeamSize:    *f.teamSize,
			CatalogPath: *f.catalog,
			Seed:        *f.seed,
		},
		Logging: Logging{
			FilePath: *f.logFile,
			Trace:    *f.trace,
		},
		Flags: map[string]string{
			"width":    strconv.Itoa(*f.width),
			"height":   strconv.Itoa(*f.height),
			"footer":   strconv.FormatBool(*f.footer),
			"trace":    strconv.FormatBool(*f.trace),
			"logFile":  *f.logFile,
			"catalog":  *f.catalog,
			"seed":     strconv.FormatUint(*f.seed, 10),
			"teamSize": strconv.Itoa(*f.teamSize),
		},
		Args: append([]string(nil), args...),
	}
}

// Environ merges the dotenv file at path under the process environment;
// process variables win. A missing file is not an error.
func Environ(environ []string, path string) (map[string]string, error) {
	env := ParseEnv(environ)
	if path == "" {
		return env, nil
	}
	file, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return env, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInvalid, path, err)
	}
	for k, v := range file {
		if _, ok := env[k]; !ok {
			env[k] = v
		}
	}
	return env, nil
}

// ParseEnv splits KEY=value entries into a map.
func ParseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrUint(env map[string]string, key string, fallback uint64) uint64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects negative dimensions, a non-positive team size and a
// catalog path that cannot be read.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("%w: width must be >= 0 (got %d)", ErrInvalid, cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("%w: height must be >= 0 (got %d)", ErrInvalid, cfg.App.Height)
	}
	if cfg.App.TeamSize < 1 {
		return fmt.Errorf("%w: team size must be >= 1 (got %d)", ErrInvalid, cfg.App.TeamSize)
	}
	if path := cfg.App.CatalogPath; path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("%w: catalog: %v", ErrInvalid, err)
		}
		if info.IsDir() {
			return fmt.Errorf("%w: catalog %s is a directory", ErrInvalid, path)
		}
	}
	return nil
}
