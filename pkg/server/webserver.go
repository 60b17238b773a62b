package server

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hylla/browse/pkg/browse"
	"github.com/hylla/browse/pkg/common"
	"github.com/hylla/browse/pkg/shopapi"
	"github.com/hylla/browse/pkg/tracking"
	"github.com/hylla/browse/pkg/types"
)

var (
	browseRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "browse_requests_total",
		Help: "The total number of processed browse requests",
	})
	cacheErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "browse_cache_errors_total",
		Help: "The total number of lookup cache write failures",
	})
)

// WebServer is the browse BFF: it hydrates a session from the incoming
// request, resolves, fetches and returns the assembled view.
type WebServer struct {
	Client   shopapi.Client
	Options  types.FacetOptions
	Cache    *Cache
	Tracking tracking.Tracking
}

func (ws *WebServer) client() shopapi.Client {
	if ws.Cache != nil {
		return &CachedClient{Origin: ws.Client, Cache: ws.Cache}
	}
	return ws.Client
}

func defaultHeaders(w http.ResponseWriter, r *http.Request, cacheTime string) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.Header().Set("Cache-Control", "private, stale-while-revalidate="+cacheTime)
	if origin := r.Header.Get("Origin"); origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
	w.Header().Set("Age", "0")
}

// Browse serves one frame of the collection page. The whole engine runs
// request-scoped: hydrate from the query string, resolve slugs, fetch
// the page, assemble the view.
func (ws *WebServer) Browse(w http.ResponseWriter, r *http.Request) {
	browseRequests.Inc()
	sessionId := common.HandleSessionCookie(ws.Tracking, w, r)

	collectionSlug := r.PathValue("collection")
	categorySlug := r.PathValue("category")

	sess := browse.NewSession(ws.client(), ws.Options, collectionSlug, categorySlug, r.URL.Query())
	sess.Mount(r.Context())
	sess.Settle()
	view := sess.View()

	if ws.Tracking != nil {
		filters := sess.Store().Filters()
		go ws.Tracking.TrackBrowse(sessionId, &filters, view.Page.CurrentPage, view.Page.TotalRecords)
	}

	defaultHeaders(w, r, "120")
	w.WriteHeader(http.StatusOK)
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (ws *WebServer) Collections(w http.ResponseWriter, r *http.Request) {
	collections, err := ws.client().GetCollections(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defaultHeaders(w, r, "600")
	w.WriteHeader(http.StatusOK)
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(collections); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (ws *WebServer) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := ws.client().GetCategories(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defaultHeaders(w, r, "600")
	w.WriteHeader(http.StatusOK)
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(categories); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ClientHandler returns the public API routes.
func (ws *WebServer) ClientHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /browse/{collection}", ws.Browse)
	mux.HandleFunc("GET /browse/{collection}/{category}", ws.Browse)
	mux.HandleFunc("GET /collections", ws.Collections)
	mux.HandleFunc("GET /categories", ws.Categories)
	return mux
}
