package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	// Required identifiers, no defaults. CheckRequired fails startup when unset.
	SheetID        string
	CallbackSecret string

	KeyFile    = "service-account-key.json"
	SiteURL    = "http://localhost:8080"
	ListenAddr = ":8080"

	// Blog sheet settings
	Section           = "blogs"
	SheetRange        = "blogs!A2:O1000"
	RelatedCount      = 2
	PublisherFallback = "Your Site"
)

// siteFile is the optional YAML config overriding the sheet defaults.
type siteFile struct {
	SiteURL       string `yaml:"site_url"`
	Section       string `yaml:"section"`
	SheetRange    string `yaml:"sheet_range"`
	RelatedCount  int    `yaml:"related_count"`
	PublisherName string `yaml:"publisher_name"`
}

// Init loads .env and the optional site config, resetting every setting to
// its default first so repeated calls are deterministic.
func Init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	RelatedCount = 2

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	SheetID = os.Getenv("GOOGLE_SHEET_ID")
	CallbackSecret = os.Getenv("CALLBACK_SECRET")

	KeyFile = getEnv("GOOGLE_SERVICE_ACCOUNT_KEY", "service-account-key.json")
	SiteURL = getEnv("SITE_URL", "http://localhost:8080")
	ListenAddr = getEnv("LISTEN_ADDR", ":8080")

	Section = getEnv("BLOG_SECTION", "blogs")
	SheetRange = getEnv("SHEET_RANGE", Section+"!A2:O1000")
	PublisherFallback = getEnv("PUBLISHER_NAME", "Your Site")

	if rc := os.Getenv("RELATED_COUNT"); rc != "" {
		if val, err := strconv.Atoi(rc); err == nil && val > 0 {
			RelatedCount = val
		}
	}

	loadSiteFile(getEnv("SITE_CONFIG", "site.yml"))
}

func loadSiteFile(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var sf siteFile
	if err := yaml.Unmarshal(content, &sf); err != nil {
		fmt.Println("Ignoring malformed site config:", err)
		return
	}

	if sf.SiteURL != "" {
		SiteURL = sf.SiteURL
	}
	if sf.Section != "" {
		Section = sf.Section
		SheetRange = sf.Section + "!A2:O1000"
	}
	if sf.SheetRange != "" {
		SheetRange = sf.SheetRange
	}
	if sf.RelatedCount > 0 {
		RelatedCount = sf.RelatedCount
	}
	if sf.PublisherName != "" {
		PublisherFallback = sf.PublisherName
	}
}

// CheckRequired reports every missing required variable at once so a broken
// deployment fails at startup, not on the first webhook.
func CheckRequired() error {
	var missing []string
	if SheetID == "" {
		missing = append(missing, "GOOGLE_SHEET_ID")
	}
	if CallbackSecret == "" {
		missing = append(missing, "CALLBACK_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// BaseURL returns SiteURL without a trailing slash.
func BaseURL() string {
	return strings.TrimRight(SiteURL, "/")
}
