package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	envCatalog  = "PORTAL_SEARCH_CATALOG"
	envTouch    = "PORTAL_SEARCH_TOUCH"
	envDebounce = "PORTAL_SEARCH_DEBOUNCE"
	envLogFile  = "PORTAL_SEARCH_LOG_FILE"
	envDebug    = "PORTAL_SEARCH_DEBUG"
	envBrowser  = "PORTAL_SEARCH_BROWSER"

	DefaultCatalog = "catalog.yaml"
	DefaultDotenv  = ".env"
)

// Profile holds the device-dependent interaction settings. It is resolved
// once at startup.
type Profile struct {
	Name            string
	Debounce        time.Duration
	Gestures        bool // swipe-to-clear, tap-outside blur, scroll input into view
	Shortcut        bool // ctrl/cmd+k focuses the search input
	SwipeThreshold  int  // minimum leftward distance, in cells
	ScrollToResults bool
}

func DesktopProfile() Profile {
	return Profile{
		Name:           "desktop",
		Debounce:       150 * time.Millisecond,
		Shortcut:       true,
		SwipeThreshold: 8,
	}
}

func TouchProfile() Profile {
	return Profile{
		Name:            "touch",
		Debounce:        300 * time.Millisecond,
		Gestures:        true,
		SwipeThreshold:  8,
		ScrollToResults: true,
	}
}

func ResolveProfile(touch bool) Profile {
	if touch {
		return TouchProfile()
	}
	return DesktopProfile()
}

type Config struct {
	CatalogPath string
	Profile     Profile
	LogFile     string
	Debug       bool
	Browser     string
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.CatalogPath) == "" {
		return fmt.Errorf("catalog path is required (use --catalog)")
	}
	if c.Profile.Debounce < 0 {
		return fmt.Errorf("debounce must be >= 0 (got %s)", c.Profile.Debounce)
	}
	if c.Profile.SwipeThreshold <= 0 {
		return fmt.Errorf("swipe threshold must be > 0 (got %d)", c.Profile.SwipeThreshold)
	}
	return nil
}

// Flags are the command-line values bound by BindFlags.
type Flags struct {
	Catalog  string
	Touch    bool
	Debounce time.Duration
	LogFile  string
	Debug    bool
	Browser  string
}

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVarP(&f.Catalog, "catalog", "c", DefaultCatalog, "catalog file (.yaml, .json or .html)")
	fs.BoolVar(&f.Touch, "touch", false, "use the touch interaction profile")
	fs.DurationVar(&f.Debounce, "debounce", 0, "override the profile's input debounce delay")
	fs.StringVar(&f.LogFile, "log-file", DefaultLogFile(), "path to the log file")
	fs.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	fs.StringVar(&f.Browser, "browser", "", "command used to open links")
	return f
}

// DefaultLogFile keeps logs out of the terminal owned by the TUI.
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), "portal-search", "portal-search.log")
}

// Load resolves configuration with precedence flags > environment > .env
// file > defaults.
func Load(fs *pflag.FlagSet, f *Flags, environ []string, dotenvPath string) (Config, error) {
	env, err := ReadEnv(environ, dotenvPath)
	if err != nil {
		return Config{}, err
	}

	catalog := f.Catalog
	if !fs.Changed("catalog") {
		catalog = envOrDefault(env, envCatalog, catalog)
	}
	touch := f.Touch
	if !fs.Changed("touch") {
		touch = envOrBool(env, envTouch, touch)
	}
	debounce := f.Debounce
	if !fs.Changed("debounce") {
		debounce = envOrDuration(env, envDebounce, debounce)
	}
	logFile := f.LogFile
	if !fs.Changed("log-file") {
		logFile = envOrDefault(env, envLogFile, logFile)
	}
	debug := f.Debug
	if !fs.Changed("debug") {
		debug = envOrBool(env, envDebug, debug)
	}
	browser := f.Browser
	if !fs.Changed("browser") {
		browser = envOrDefault(env, envBrowser, browser)
	}

	profile := ResolveProfile(touch)
	if debounce > 0 {
		profile.Debounce = debounce
	} else if debounce < 0 {
		return Config{}, fmt.Errorf("debounce must be >= 0 (got %s)", debounce)
	}

	cfg := Config{
		CatalogPath: catalog,
		Profile:     profile,
		LogFile:     logFile,
		Debug:       debug,
		Browser:     browser,
	}
	return cfg, cfg.Validate()
}

// ReadEnv merges the .env file at dotenvPath (if present) with environ.
// Process environment wins over the file.
func ReadEnv(environ []string, dotenvPath string) (map[string]string, error) {
	values := make(map[string]string)
	if dotenvPath != "" {
		fileValues, err := godotenv.Read(dotenvPath)
		switch {
		case err == nil:
			for k, v := range fileValues {
				values[k] = v
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read %s: %w", dotenvPath, err)
		}
	}
	for k, v := range parseEnv(environ) {
		values[k] = v
	}
	return values, nil
}

func parseEnv(environ []string) map[string]string {
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
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}
