package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/AstroX11/word-vaildator-api/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration
// and normalizes mode names. It reports every problem at once as a
// *domain.ValidationError. Load calls it automatically.
func (c *Config) Validate() error {
	var errs []domain.FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		add("server.port", "must be in 1..65535 (got %d)", c.Server.Port)
	}

	c.WordList.Mode = strings.ToLower(strings.TrimSpace(c.WordList.Mode))
	switch c.WordList.Mode {
	case WordListPreload, WordListStream:
		if strings.TrimSpace(c.WordList.Path) == "" {
			add("wordlist.path", "required for mode %q", c.WordList.Mode)
		}
	case WordListPostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			add("database.dsn", "required when wordlist.mode is %q", WordListPostgres)
		}
	default:
		add("wordlist.mode", "unknown mode %q", c.WordList.Mode)
	}

	c.Chain.Mode = strings.ToLower(strings.TrimSpace(c.Chain.Mode))
	switch c.Chain.Mode {
	case ChainSequential, ChainParallel:
	default:
		add("chain.mode", "unknown mode %q", c.Chain.Mode)
	}
	if c.Chain.ProviderTimeout <= 0 {
		add("chain.provider_timeout", "must be > 0 (got %v)", c.Chain.ProviderTimeout)
	}
	if c.Chain.Mode == ChainParallel && c.Chain.Deadline <= 0 {
		add("chain.deadline", "must be > 0 in parallel mode (got %v)", c.Chain.Deadline)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		add("metrics.path", "must start with / (got %q)", c.Metrics.Path)
	}

	if len(errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(errs)
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
