// Package health implements liveness and readiness endpoints with
// pluggable dependency checks.
package health

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/utafrali/ReviewDeskGo/pkg/httputil"
)

// Checker reports whether a single dependency is healthy.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc struct {
	CheckName string
	Fn        func(ctx context.Context) error
}

func (c CheckerFunc) Name() string                    { return c.CheckName }
func (c CheckerFunc) Check(ctx context.Context) error { return c.Fn(ctx) }

// Handler serves /healthz and /readyz.
type Handler struct {
	serviceName string
	checkers    []Checker
}

func NewHandler(serviceName string, checkers ...Checker) *Handler {
	return &Handler{serviceName: serviceName, checkers: checkers}
}

type status struct {
	Service string            `json:"service"`
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// Live always reports ok while the process is running.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, status{Service: h.serviceName, Status: "ok"})
}

// Ready runs all dependency checks concurrently with a shared deadline and
// reports 503 if any fails.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string, len(h.checkers))
	healthy := true

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, c := range h.checkers {
		wg.Add(1)
		go func(c Checker) {
			defer wg.Done()
			err := c.Check(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				checks[c.Name()] = err.Error()
				healthy = false
			} else {
				checks[c.Name()] = "ok"
			}
		}(c)
	}
	wg.Wait()

	st := status{Service: h.serviceName, Status: "ok", Checks: checks}
	code := http.StatusOK
	if !healthy {
		st.Status = "degraded"
		code = http.StatusServiceUnavailable
	}
	httputil.WriteJSON(w, code, st)
}
