package commands

import (
	"github.com/colonyops/postbrowser/internal/core/config"
	"github.com/colonyops/postbrowser/internal/core/logging"
	"github.com/colonyops/postbrowser/internal/core/post"
)

// newSource builds the HTTP source for the loaded configuration.
func newSource(cfg *config.Config) *post.HTTPSource {
	return post.NewHTTPSource(cfg.Endpoint, cfg.Timeout, logging.Component("datasource"))
}
