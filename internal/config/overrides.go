package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "REPO_DEPOT"

// Override keys, named after the TOML paths they replace
const (
	KeyCloneDir    = "clone_dir"
	KeyAPIURL      = "search.api_url"
	KeyPerPage     = "search.per_page"
	KeyTimeout     = "search.timeout"
	KeyUserAgent   = "search.user_agent"
	KeyToken       = "search.token"
	KeyParallel    = "clone.parallel"
	KeyPageSize    = "ui.page_size"
	KeyCloneOnExit = "ui.clone_on_exit"
	KeyReportPager = "ui.report_pager"
)

// NewViper returns a viper instance reading REPO_DEPOT_* variables, e.g.
// REPO_DEPOT_UI_PAGE_SIZE for ui.page_size. A few short aliases and
// GITHUB_TOKEN are bound as well.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv(KeyCloneDir, EnvPrefix+"_CLONE_DIR")
	_ = v.BindEnv(KeyAPIURL, EnvPrefix+"_SEARCH_API_URL", EnvPrefix+"_API_URL")
	_ = v.BindEnv(KeyPageSize, EnvPrefix+"_UI_PAGE_SIZE", EnvPrefix+"_PAGE_SIZE")
	_ = v.BindEnv(KeyToken, EnvPrefix+"_TOKEN", "GITHUB_TOKEN")
	return v
}

// ApplyOverrides copies every key set in v (flag or environment) onto cfg
// and validates the result.
func ApplyOverrides(cfg *Config, v *viper.Viper) error {
	if v.IsSet(KeyCloneDir) {
		cfg.CloneDir = v.GetString(KeyCloneDir)
	}
	if v.IsSet(KeyAPIURL) {
		cfg.Search.APIURL = v.GetString(KeyAPIURL)
	}
	if v.IsSet(KeyPerPage) {
		cfg.Search.PerPage = v.GetInt(KeyPerPage)
	}
	if v.IsSet(KeyTimeout) {
		cfg.Search.Timeout = v.GetString(KeyTimeout)
	}
	if v.IsSet(KeyUserAgent) {
		cfg.Search.UserAgent = v.GetString(KeyUserAgent)
	}
	if v.IsSet(KeyToken) {
		cfg.Search.Token = v.GetString(KeyToken)
	}
	if v.IsSet(KeyParallel) {
		cfg.Clone.Parallel = v.GetInt(KeyParallel)
	}
	if v.IsSet(KeyPageSize) {
		cfg.UISettings.PageSize = v.GetInt(KeyPageSize)
	}
	if v.IsSet(KeyCloneOnExit) {
		cfg.UISettings.CloneOnExit = v.GetBool(KeyCloneOnExit)
	}
	if v.IsSet(KeyReportPager) {
		cfg.UISettings.ReportPager = v.GetBool(KeyReportPager)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
