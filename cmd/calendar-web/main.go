package main

import (
	"flag"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpadapter "svw.info/calpuzzle/internal/adapters/http"
	"svw.info/calpuzzle/internal/calendar"
	"svw.info/calpuzzle/internal/config"
	"svw.info/calpuzzle/internal/hint"
	"svw.info/calpuzzle/internal/infrastructure/clock"
	"svw.info/calpuzzle/internal/infrastructure/storage"
	"svw.info/calpuzzle/internal/usecase"
	"svw.info/calpuzzle/web"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Int("bytes", sw.bytes).
			Dur("dur", time.Since(start).Round(time.Millisecond)).
			Msg("http")
	})
}

// recoveryLog adapts zerolog to the gorilla RecoveryHandlerLogger.
type recoveryLog struct{ logger zerolog.Logger }

func (l recoveryLog) Println(v ...any) {
	l.logger.Error().Msg(strings.TrimSpace(fmt.Sprintln(v...)))
}

func setupLogging(level zerolog.Level, format string) {
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339
	if strings.EqualFold(format, "json") {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly})
}

func main() {
	if err := config.LoadDotEnv(".env", "../.env"); err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	addr := flag.String("addr", cfg.Addr, "listen address")
	levelStr := flag.String("log-level", cfg.LogLevel, "debug|info|warn|error")
	flag.Parse()
	cfg.Addr = *addr
	cfg.LogLevel = *levelStr

	setupLogging(cfg.Level(), cfg.LogFormat)
	logger := log.With().Str("module", "server").Logger()

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	// Wire providers → use cases → HTTP adapter
	clk := clock.NewSystem(loc)
	st := storage.NewMemory(cfg.MaxSessions)
	uc := usecase.NewService(st, clk, hint.NewFitter())
	h := httpadapter.New(uc)

	tmpl := web.Templates()

	router := mux.NewRouter()
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		page := web.NewPage(calendar.FromTime(clk.Now()))
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", page); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	}).Methods(http.MethodGet)
	h.Register(router)

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLog{logger: logger}),
		handlers.PrintRecoveryStack(true),
	)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(logger, recovery(router)),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
	logger.Info().
		Str("addr", cfg.Addr).
		Str("timezone", loc.String()).
		Int("maxSessions", cfg.MaxSessions).
		Msg("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("server error")
		os.Exit(1)
	}
}
