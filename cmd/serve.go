package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leadpilot/sector-cli/internal/export"
	"github.com/leadpilot/sector-cli/internal/fetcher"
	"github.com/leadpilot/sector-cli/internal/normalize"
)

const maxUploadBytes = 10 << 20

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the classification HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initApp(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		r := chi.NewRouter()
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
		}))

		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Post("/api/categorize", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Name string `json:"name"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil || strings.TrimSpace(body.Name) == "" {
				writeError(w, http.StatusBadRequest, "name is required")
				return
			}
			result := env.Orchestrator.Classify(req.Context(), body.Name)
			writeJSON(w, http.StatusOK, result)
		})

		r.Post("/api/batch", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Names []string `json:"names"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil || len(body.Names) == 0 {
				writeError(w, http.StatusBadRequest, "names is required")
				return
			}
			results, err := env.Runner.Run(req.Context(), body.Names)
			if err != nil {
				zap.L().Error("api batch failed", zap.Error(err))
				writeError(w, http.StatusInternalServerError, "batch failed")
				return
			}
			writeJSON(w, http.StatusOK, results)
		})

		r.Post("/api/upload", func(w http.ResponseWriter, req *http.Request) {
			file, header, err := req.FormFile("file")
			if err != nil {
				writeError(w, http.StatusBadRequest, "file is required")
				return
			}
			defer file.Close()

			data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
			if err != nil {
				writeError(w, http.StatusBadRequest, "read upload")
				return
			}

			var inputs []string
			switch strings.ToLower(filepath.Ext(header.Filename)) {
			case ".xlsx":
				inputs, err = fetcher.ReadXLSXBytes(data)
			case ".csv", ".txt":
				inputs, err = fetcher.ReadCSVBytes(data)
			default:
				writeError(w, http.StatusBadRequest, "unsupported file format")
				return
			}
			if err != nil {
				zap.L().Warn("upload parse failed", zap.String("file", header.Filename), zap.Error(err))
				writeError(w, http.StatusBadRequest, "unreadable file")
				return
			}
			if len(inputs) == 0 {
				writeError(w, http.StatusBadRequest, "no inputs in file")
				return
			}

			results, err := env.Runner.Run(req.Context(), inputs)
			if err != nil {
				zap.L().Error("upload batch failed", zap.Error(err))
				writeError(w, http.StatusInternalServerError, "batch failed")
				return
			}

			w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName()))
			if err := export.WriteXLSX(w, results); err != nil {
				zap.L().Error("export write failed", zap.Error(err))
			}
		})

		r.Post("/api/corrections", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Name   string `json:"name"`
				Sector string `json:"sector"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil ||
				strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.Sector) == "" {
				writeError(w, http.StatusBadRequest, "name and sector are required")
				return
			}
			// A correction may introduce a brand-new sector; register it so
			// it joins the vocabulary offered to the AI classifier.
			if !env.Catalog.IsAllowed(body.Sector) {
				if err := env.Store.AddCustomSector(req.Context(), body.Sector); err != nil {
					zap.L().Error("register correction sector failed", zap.String("sector", body.Sector), zap.Error(err))
					writeError(w, http.StatusInternalServerError, "store failed")
					return
				}
			}

			key := normalize.Key(body.Name)
			if err := env.Store.UpsertCorrection(req.Context(), key, body.Sector); err != nil {
				zap.L().Error("correction upsert failed", zap.String("key", key), zap.Error(err))
				writeError(w, http.StatusInternalServerError, "store failed")
				return
			}
			if err := env.Catalog.Reload(req.Context()); err != nil {
				zap.L().Warn("catalog reload after correction failed", zap.Error(err))
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "key": key})
		})

		r.Get("/api/sectors", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, env.Catalog.SectorNames())
		})

		r.Post("/api/sectors", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Name string `json:"name"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil || strings.TrimSpace(body.Name) == "" {
				writeError(w, http.StatusBadRequest, "name is required")
				return
			}
			if err := env.Store.AddCustomSector(req.Context(), body.Name); err != nil {
				zap.L().Error("add custom sector failed", zap.String("name", body.Name), zap.Error(err))
				writeError(w, http.StatusInternalServerError, "store failed")
				return
			}
			if err := env.Catalog.Reload(req.Context()); err != nil {
				zap.L().Warn("catalog reload after sector add failed", zap.Error(err))
			}
			writeJSON(w, http.StatusCreated, map[string]string{"status": "ok", "name": body.Name})
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
