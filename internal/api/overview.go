package api

import (
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/drinkchain/internal/strategies"
	"github.com/JaimeStill/drinkchain/internal/supply"
	"github.com/JaimeStill/drinkchain/internal/trends"
	"github.com/JaimeStill/drinkchain/pkg/handlers"
	"github.com/JaimeStill/drinkchain/pkg/openapi"
	"github.com/JaimeStill/drinkchain/pkg/routes"
)

// Overview is the combined dashboard payload.
type Overview struct {
	Active strategies.Active `json:"active"`
	Trends trends.Result     `json:"trends"`
	Supply []supply.Entry    `json:"supply"`
}

type overviewHandler struct {
	domain *Domain
	logger *slog.Logger
}

func newOverviewHandler(domain *Domain, logger *slog.Logger) *overviewHandler {
	return &overviewHandler{
		domain: domain,
		logger: logger.With("handler", "overview"),
	}
}

func (h *overviewHandler) routes() routes.Group {
	return routes.Group{
		Prefix:      "/overview",
		Tags:        []string{"Overview"},
		Description: "Combined dashboard",
		Schemas: map[string]*openapi.Schema{
			"Overview": openapi.Object([]string{"active", "trends", "supply"}, map[string]*openapi.Schema{
				"active": openapi.SchemaRef("ActiveStrategy"),
				"trends": openapi.SchemaRef("TrendResult"),
				"supply": openapi.ArrayOf("SupplyEntry"),
			}),
		},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.get, OpenAPI: &openapi.Operation{
				Summary:    "Refresh trends and supply together",
				Parameters: []*openapi.Parameter{supply.TypeFilterParam, supply.CategoryParam},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Combined dashboard", "Overview"),
					400: openapi.ResponseRef("BadRequest"),
				},
			}},
		},
	}
}

// get refreshes trends and supply concurrently under the active lens.
func (h *overviewHandler) get(w http.ResponseWriter, r *http.Request) {
	filter, err := supply.ParseTypeFilter(r.URL.Query().Get("type"))
	if err != nil {
		handlers.RespondError(w, h.logger, supply.MapHTTPStatus(err), err)
		return
	}
	category := r.URL.Query().Get("category")

	out := Overview{Active: h.domain.Strategies.Active()}

	// Both views degrade to recovery values, so neither branch fails.
	ctx := r.Context()
	var g errgroup.Group
	g.Go(func() error {
		out.Trends = h.domain.Trends.Refresh(ctx)
		return nil
	})
	g.Go(func() error {
		h.domain.Supply.Refresh(ctx, category)
		return nil
	})
	_ = g.Wait()

	out.Supply = h.domain.Supply.List(filter)
	handlers.RespondJSON(w, http.StatusOK, out)
}
