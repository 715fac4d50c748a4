package api

import (
	"github.com/JaimeStill/drinkchain/internal/config"
	"github.com/JaimeStill/drinkchain/pkg/openapi"
	"github.com/JaimeStill/drinkchain/pkg/routes"
)

func newSpec(cfg *config.Config, groups []routes.Group) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)
	routes.Describe(spec, groups...)
	return spec
}
