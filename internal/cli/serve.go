package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/relsqui/prettydoc/internal/docspec"
	"github.com/relsqui/prettydoc/pkg/pp"
	"github.com/relsqui/prettydoc/pkg/ppcache"
	"github.com/relsqui/prettydoc/pkg/ppconfig"
	"github.com/relsqui/prettydoc/pkg/pperrors"
	"github.com/relsqui/prettydoc/pkg/pphistory"
)

// renderRequest is the JSON body accepted by POST /render.
type renderRequest struct {
	Doc   json.RawMessage `json:"doc"`
	Width int             `json:"width"`
	EOL   string          `json:"eol"`
}

// renderResponse is the JSON body returned by POST /render.
type renderResponse struct {
	Output   string `json:"output"`
	CacheHit bool   `json:"cacheHit"`
}

// server holds the dependencies HTTP handlers need.
type server struct {
	logger  *log.Logger
	cache   *ppcache.CoalescingCache
	history pphistory.Store
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCache bool
	var cacheBackend string
	var historyBackend string
	var historyCapacity int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve document rendering over HTTP",
		Long: `Serve starts an HTTP API exposing POST /render and GET /history, backed
by the same render cache as the render command and by a render history log.
--cache and --history select their respective backends, defaulting to the
loaded config's cache_backend/history_backend when left unset.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			if !cmd.Flags().Changed("addr") && cfg.ServeAddr != "" {
				addr = cfg.ServeAddr
			}
			if cmd.Flags().Changed("cache") {
				backend, addr := parseCacheFlag(cacheBackend)
				cfg.CacheBackend = backend
				if addr != "" {
					cfg.RedisAddr = addr
				}
			}
			if !cmd.Flags().Changed("history-capacity") {
				historyCapacity = cfg.HistoryCapacity
			}
			if cmd.Flags().Changed("history") {
				backend, uri := parseHistoryFlag(historyBackend)
				cfg.HistoryBackend = backend
				if uri != "" {
					cfg.MongoURI = uri
				}
			}

			backend, err := newCache(cfg, noCache)
			if err != nil {
				return err
			}
			defer backend.Close()

			history, closeHistory, err := newHistoryStore(ctx, cfg, historyCapacity)
			if err != nil {
				return err
			}
			defer closeHistory()

			srv := &server{
				logger:  logger,
				cache:   ppcache.NewCoalescingCache(backend),
				history: history,
			}

			r := chi.NewRouter()
			r.Use(middleware.RequestID)
			r.Use(requestLogger(logger))
			r.Use(middleware.Recoverer)
			r.Post("/render", srv.handleRender)
			r.Get("/history", srv.handleHistory)

			httpServer := &http.Server{Addr: addr, Handler: r}

			errCh := make(chan error, 1)
			go func() { errCh <- httpServer.ListenAndServe() }()

			logger.Infof("listening on %s (cache=%s history=%s)", addr, cfg.CacheBackend, cfg.HistoryBackend)

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return httpServer.Shutdown(shutdownCtx)
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the render cache")
	cmd.Flags().StringVar(&cacheBackend, "cache", "", "render cache backend: memory, file, off, or a redis://... DSN (default from config)")
	cmd.Flags().StringVar(&historyBackend, "history", "", "history backend: memory, or a mongodb://... DSN (default from config)")
	cmd.Flags().IntVar(&historyCapacity, "history-capacity", 1000, "number of recent renders to keep in memory")

	return cmd
}

// parseCacheFlag interprets --cache's value: either a bare backend name
// (memory/file/off) or a redis://... DSN, which selects the redis backend
// with that DSN as its address.
func parseCacheFlag(value string) (backend, redisAddr string) {
	if strings.HasPrefix(value, "redis://") || strings.HasPrefix(value, "rediss://") {
		return "redis", value
	}
	return value, ""
}

// parseHistoryFlag interprets --history's value: either the bare "memory"
// backend name or a mongodb://... DSN, which selects the mongo backend with
// that DSN as its connection string.
func parseHistoryFlag(value string) (backend, mongoURI string) {
	if strings.HasPrefix(value, "mongodb://") || strings.HasPrefix(value, "mongodb+srv://") {
		return "mongo", value
	}
	return value, ""
}

// newHistoryStore builds the history backend selected by cfg.HistoryBackend
// ("memory" or "mongo"). The returned close func releases any connection
// newHistoryStore itself opened; it is always safe to call.
func newHistoryStore(ctx context.Context, cfg ppconfig.Config, capacity int) (pphistory.Store, func() error, error) {
	switch cfg.HistoryBackend {
	case "", "memory":
		return pphistory.NewMemoryStore(capacity), func() error { return nil }, nil

	case "mongo":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, nil, pperrors.Wrap(pperrors.ErrCodeConfig, err, "connect to mongo at %s", cfg.MongoURI)
		}
		collection := client.Database(cfg.MongoDatabase).Collection("history")
		return pphistory.NewMongoStore(collection), func() error { return client.Disconnect(context.Background()) }, nil

	default:
		return nil, nil, pperrors.New(pperrors.ErrCodeConfig, "unrecognized history backend %q", cfg.HistoryBackend)
	}
}

// requestLogger is a chi middleware that logs each request's method, path,
// and assigned request ID at debug level.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := middleware.GetReqID(r.Context())
			logger.Debugf("%s %s request_id=%s", r.Method, r.URL.Path, reqID)
			next.ServeHTTP(w, r)
		})
	}
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, pperrors.Wrap(pperrors.ErrCodeMalformedSpec, err, "invalid request body"))
		return
	}

	if req.Width == 0 {
		req.Width = 80
	}
	if err := pperrors.ValidateWidth(req.Width); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}
	eolValue, err := parseEOL(req.EOL)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	ctx := r.Context()
	docHash := ppcache.Hash(req.Doc)
	key := ppcache.RenderKey(docHash, req.Width, eolValue)

	cacheHit := true
	output, err := s.cache.GetOrRender(ctx, key, func(ctx context.Context) ([]byte, error) {
		cacheHit = false
		d, err := docspec.Build(req.Doc, 0)
		if err != nil {
			return nil, err
		}
		return []byte(pp.ToString(eolValue, req.Width, d)), nil
	})
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	_ = s.history.Record(ctx, pphistory.Entry{
		ID:          uuid.NewString(),
		DocHash:     docHash,
		Width:       req.Width,
		EOL:         eolValue,
		OutputBytes: len(output),
		CacheHit:    cacheHit,
		RenderedAt:  time.Now(),
	})

	writeJSON(w, http.StatusOK, renderResponse{Output: string(output), CacheHit: cacheHit})
}

func (s *server) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.history.Recent(r.Context(), 50)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": pperrors.UserMessage(err)})
}
