package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	gui "github.com/grindlemire/go-gui"
	"github.com/grindlemire/go-gui/internal/document"
)

// maxDocumentBytes bounds the size of a posted document.
const maxDocumentBytes = 1 << 20

func (c *cli) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Arrange documents posted over HTTP",
		Long: `Serve the layout engine over HTTP.

POST a YAML layout document to /arrange and receive the arranged snapshot
as JSON. The width, height and scale query parameters override the
document's viewport.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := c.baseConfig()
			if err != nil {
				return err
			}
			return c.serve(cmd.Context(), addr, base)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

// serve runs the HTTP server until ctx is done.
func (c *cli) serve(ctx context.Context, addr string, base gui.Config) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           c.router(base),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (c *cli) router(base gui.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/arrange", c.handleArrange(base))
	return r
}

type errorResponse struct {
	Code  gui.Code `json:"code,omitempty"`
	Error string   `json:"error"`
}

func (c *cli) handleArrange(base gui.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentBytes))
		if err != nil {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		doc, err := document.Parse(data)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		cfg, err := queryConfig(doc.Apply(base), r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		logger := c.logger.With("request", middleware.GetReqID(r.Context()))
		res, err := arrange(doc, cfg, logger)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		logger.Debug("arranged", "elements", res.Stats.Arranged, "elapsed", res.Stats.Elapsed)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(res); err != nil {
			logger.Warn("write response", "err", err)
		}
	}
}

// queryConfig applies the width, height and scale query parameters.
func queryConfig(cfg gui.Config, r *http.Request) (gui.Config, error) {
	q := r.URL.Query()
	fields := map[string]*float64{
		"width":  &cfg.Viewport.Width,
		"height": &cfg.Viewport.Height,
		"scale":  &cfg.Viewport.Scale,
	}
	for name, field := range fields {
		s := q.Get(name)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return gui.Config{}, gui.WrapError(gui.ErrCodeInvalidArgument, err, "query parameter %s", name)
		}
		*field = v
	}
	return cfg, nil
}

func statusFor(err error) int {
	switch gui.CodeOf(err) {
	case gui.ErrCodeDocument, gui.ErrCodeConfig, gui.ErrCodeInvalidArgument, gui.ErrCodeOwnership:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Code: gui.CodeOf(err), Error: err.Error()})
}
