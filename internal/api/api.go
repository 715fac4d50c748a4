// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/drinkchain/internal/config"
	"github.com/JaimeStill/drinkchain/pkg/middleware"
	"github.com/JaimeStill/drinkchain/pkg/module"
	"github.com/JaimeStill/drinkchain/pkg/openapi"
	"github.com/JaimeStill/drinkchain/pkg/routes"
)

// NewModule creates the API module with all domain handlers and middleware.
// The module also serves its own OpenAPI document at /openapi.json.
func NewModule(cfg *config.Config, runtime *Runtime, domain *Domain) (*module.Module, error) {
	groups := routeGroups(domain, runtime)

	serveSpec, err := openapi.Handler(newSpec(cfg, groups))
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /openapi.json", serveSpec)
	routes.Register(mux, groups...)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.BodyLimit(cfg.API.MaxBodySizeBytes()))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
