package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gyaneshwarpardhi/gacollect/internal/config"
	"github.com/gyaneshwarpardhi/gacollect/internal/entity"
	"github.com/gyaneshwarpardhi/gacollect/internal/metrics"
	"github.com/gyaneshwarpardhi/gacollect/internal/request"
	"github.com/gyaneshwarpardhi/gacollect/internal/tracker"
	"github.com/gyaneshwarpardhi/gacollect/internal/transport"
)

const maxBodyBytes = 1 << 20

// Handler holds all HTTP handler dependencies.
type Handler struct {
	loader *config.Loader
	client transport.HTTPClient
	mux    *http.ServeMux
}

// New creates an HTTP handler and registers all routes. client is used for
// every outgoing hit; nil means http.DefaultClient.
func New(loader *config.Loader, client transport.HTTPClient) http.Handler {
	if client == nil {
		client = http.DefaultClient
	}
	h := &Handler{loader: loader, client: client, mux: http.NewServeMux()}

	h.mux.HandleFunc("POST /v1/pageview", h.trackPageview)
	h.mux.HandleFunc("POST /v1/event", h.trackEvent)
	h.mux.HandleFunc("POST /v1/exception", h.trackException)
	h.mux.HandleFunc("GET /v1/config", h.showConfig)
	h.mux.HandleFunc("POST /v1/config/reload", h.reloadConfig)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return loggingMiddleware(h.mux)
}

// POST /v1/pageview
func (h *Handler) trackPageview(w http.ResponseWriter, r *http.Request) {
	h.track(w, r, func(*hitRequest) (request.Hit, error) {
		return request.PageView{}, nil
	})
}

// POST /v1/event
func (h *Handler) trackEvent(w http.ResponseWriter, r *http.Request) {
	h.track(w, r, func(body *hitRequest) (request.Hit, error) {
		if body.Event == nil {
			return nil, errors.New("event is required")
		}
		ev, err := body.Event.event()
		if err != nil {
			return nil, err
		}
		return request.EventHit{Event: ev}, nil
	})
}

// POST /v1/exception
func (h *Handler) trackException(w http.ResponseWriter, r *http.Request) {
	h.track(w, r, func(body *hitRequest) (request.Hit, error) {
		if body.Exception == nil {
			return nil, errors.New("exception is required")
		}
		return request.ExceptionHit{Exception: entity.NewException(body.Exception.Description, body.Exception.Fatal)}, nil
	})
}

// track decodes the body, builds the entities and the hit, and sends it with
// a tracker bound to the current config.
func (h *Handler) track(w http.ResponseWriter, r *http.Request, mkHit func(*hitRequest) (request.Hit, error)) {
	reqID := uuid.New().String()
	log := slog.Default().With("component", "api", "request_id", reqID)

	var body hitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid JSON: %s", err), RequestID: reqID})
		return
	}

	cfg := h.loader.Config()
	if cfg.Tracker.AccountID == "" {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "tracker.account_id is not configured", RequestID: reqID})
		return
	}

	hit, err := mkHit(&body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), RequestID: reqID})
		return
	}
	visitor, err := body.Visitor.visitor(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), RequestID: reqID})
		return
	}
	session, err := body.Session.session()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), RequestID: reqID})
		return
	}
	page, err := body.Page.page()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), RequestID: reqID})
		return
	}

	device := deviceClass(visitor.UserAgent)
	metrics.HitsByDevice.WithLabelValues(device).Inc()

	tr := tracker.New(cfg.Tracker.AccountID, cfg.Tracker.HostName, &cfg.Collect,
		tracker.WithHTTPClient(h.client), tracker.WithLogger(log))
	p, err := tr.Build(hit, page, session, visitor)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), RequestID: reqID})
		return
	}
	query := p.Encode()

	resp, err := tr.Send(r.Context(), p, session)
	if err != nil {
		log.Warn("hit delivery failed", "hit_type", hit.Type(), "err", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error(), RequestID: reqID})
		return
	}

	res := hitResponse{
		RequestID: reqID,
		HitType:   hit.Type(),
		Simulated: resp == nil,
		Query:     query,
		SessionID: session.ID,
		Session:   session.Serialize(cfg.Tracker.HostName),
		Device:    device,
	}
	if resp != nil {
		resp.Body.Close()
		res.Method = transport.Method(query)
		res.Status = resp.StatusCode
	}
	writeJSON(w, http.StatusOK, res)
}

// GET /v1/config: the collect settings hits are currently sent with.
func (h *Handler) showConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.loader.Config()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"version":              cfg.Version,
		"endpoint":             cfg.Collect.Endpoint,
		"simulate":             cfg.Collect.Simulate(),
		"anonimize_ip_address": cfg.Collect.AnonymizeIP,
		"protocol_version":     cfg.Collect.ProtocolVersion,
		"request_timeout":      cfg.Collect.RequestTimeout,
		"account_id":           cfg.Tracker.AccountID,
		"host_name":            cfg.Tracker.HostName,
	})
}

// POST /v1/config/reload: re-read the config file from disk.
func (h *Handler) reloadConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loader.Reload()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded": true,
		"simulate": cfg.Collect.Simulate(),
	})
}

// GET /healthz: always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
