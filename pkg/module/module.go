package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/drinkchain/pkg/middleware"
)

// Module owns one top-level path segment. Requests reach its router with the
// segment removed, after passing through the module's own middleware chain.
type Module struct {
	prefix     string
	router     http.Handler
	middleware middleware.Chain
}

// New creates a Module mounted at prefix, which must be a single segment
// such as "/api". It panics otherwise, since prefixes are fixed at wiring time.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{prefix: prefix, router: router}
}

func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware; the first added runs outermost.
func (m *Module) Use(mw ...middleware.Middleware) {
	m.middleware = append(m.middleware, mw...)
}

// Handler returns the router wrapped in the module's middleware.
func (m *Module) Handler() http.Handler {
	return m.middleware.Then(m.router)
}

// Serve strips the prefix and dispatches to Handler. The caller's request is
// not modified.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	inner := req.Clone(req.Context())
	inner.URL.Path = stripPrefix(req.URL.Path, m.prefix)
	inner.URL.RawPath = ""
	m.Handler().ServeHTTP(w, inner)
}

// stripPrefix maps "/api" to "/" and "/api/x" to "/x".
func stripPrefix(path, prefix string) string {
	if rest := strings.TrimPrefix(path, prefix); rest != "" {
		return rest
	}
	return "/"
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("module prefix cannot be empty")
	case prefix[0] != '/':
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	case len(prefix) == 1 || strings.Contains(prefix[1:], "/"):
		return fmt.Errorf("module prefix must be a single path segment: %s", prefix)
	}
	return nil
}
