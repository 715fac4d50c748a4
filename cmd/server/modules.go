package main

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/JaimeStill/drinkchain/internal/api"
	"github.com/JaimeStill/drinkchain/internal/config"
	"github.com/JaimeStill/drinkchain/internal/infrastructure"
	"github.com/JaimeStill/drinkchain/pkg/middleware"
	"github.com/JaimeStill/drinkchain/pkg/module"
	"github.com/JaimeStill/drinkchain/web/scalar"
)

type Modules struct {
	API    *module.Module
	Scalar *module.Module
	Domain *api.Domain
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	runtime, err := api.NewRuntime(cfg, infra)
	if err != nil {
		return nil, err
	}
	domain := api.NewDomain(runtime)

	apiModule, err := api.NewModule(cfg, runtime, domain)
	if err != nil {
		return nil, err
	}

	modules := &Modules{
		API:    apiModule,
		Domain: domain,
	}

	if docs := cfg.API.OpenAPI; docs.DocsEnabled() {
		modules.Scalar = scalar.NewModule(docs.DocsPath, docs.Title, cfg.API.BasePath+"/openapi.json")
		modules.Scalar.Use(middleware.Logger(infra.Logger))
	}

	return modules, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	if m.Scalar != nil {
		router.Mount(m.Scalar)
	}
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]any{
				"status": "not ready",
				"failed": infra.Lifecycle.Failed(),
			})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})

	return router
}
