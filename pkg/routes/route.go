package routes

import (
	"net/http"

	"github.com/JaimeStill/drinkchain/pkg/openapi"
)

// Route binds an HTTP method and pattern to a handler. OpenAPI documents the
// route; undocumented routes are served but left out of the spec.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
