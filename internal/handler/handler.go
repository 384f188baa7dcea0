// Package handler routes the claim wizard HTTP API.
package handler

import (
	"strings"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"claim-engine/internal/actions"
	"claim-engine/internal/metrics"
	"claim-engine/internal/model"
	"claim-engine/internal/session"
)

// Router serves the claim wizard API over fasthttp.
type Router struct {
	store       *session.Store
	promHandler fasthttp.RequestHandler
}

func NewRouter(store *session.Store) *Router {
	return &Router{
		store:       store,
		promHandler: fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}
}

// Handle is the fasthttp entry point.
func (rt *Router) Handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	switch {
	case path == "/healthz" && method == fasthttp.MethodGet:
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case path == "/metrics" && method == fasthttp.MethodGet:
		rt.promHandler(ctx)
	case path == "/claims" && method == fasthttp.MethodPost:
		rt.createClaim(ctx)
	case strings.HasPrefix(path, "/claims/"):
		rt.claim(ctx, strings.TrimPrefix(path, "/claims/"), method)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (rt *Router) createClaim(ctx *fasthttp.RequestCtx) {
	var req model.CreateRequest
	if body := ctx.PostBody(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
	}

	st := rt.store.Create(model.SessionFlags{EmailVerified: req.EmailVerified})
	metrics.SessionsStarted.Inc()
	writeJSON(ctx, fasthttp.StatusCreated, st.Snapshot())
}

func (rt *Router) claim(ctx *fasthttp.RequestCtx, rest, method string) {
	id, sub, _ := strings.Cut(rest, "/")

	st, ok := rt.store.Get(id)
	if !ok {
		writeError(ctx, fasthttp.StatusNotFound, "Unknown claim session")
		return
	}

	switch {
	case sub == "" && method == fasthttp.MethodGet:
		writeJSON(ctx, fasthttp.StatusOK, st.Snapshot())
	case sub == "actions" && method == fasthttp.MethodPost:
		rt.applyActions(ctx, st)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (rt *Router) applyActions(ctx *fasthttp.RequestCtx, st *session.State) {
	var req model.ActionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Actions) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one action is required")
		return
	}

	resp := actions.Process(ctx, st, &req)
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	json.NewEncoder(ctx).Encode(v)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
