// Command lgserver exposes lgcore over HTTP: POST /parse against an
// in-memory dictionary built from the request body, and GET /metrics for
// Prometheus scraping.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	lgcore "github.com/linkgrammar-go/lgcore"
)

var allowedOrigins = []string{
	"http://localhost:5173",
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func corsMiddleware(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type parseRequest struct {
	Words     map[string]string `json:"words"`
	Sentence  string            `json:"sentence"`
	NullMin   int               `json:"null_min"`
	NullMax   int               `json:"null_max"`
	Limit     int               `json:"limit"`
	IslandsOk bool              `json:"islands_ok"`
}

func buildDictionary(words map[string]string) (*lgcore.MemDictionary, error) {
	d := lgcore.NewMemDictionary()
	for surface, exprStr := range words {
		if err := d.AddWord(surface, exprStr); err != nil {
			return nil, fmt.Errorf("word %q: %w", surface, err)
		}
	}
	return d, nil
}

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	flag.Parse()

	reg := prometheus.NewRegistry()
	rec := lgcore.NewPrometheusRecorder(reg)

	mux := http.NewServeMux()

	mux.HandleFunc("/parse", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req parseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.Sentence == "" {
			writeError(w, http.StatusBadRequest, "missing field: sentence")
			return
		}
		if len(req.Words) == 0 {
			writeError(w, http.StatusBadRequest, "missing field: words")
			return
		}
		if req.Limit <= 0 {
			req.Limit = 100
		}

		d, err := buildDictionary(req.Words)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		opts := lgcore.NewOptions(
			lgcore.WithNullCountRange(req.NullMin, req.NullMax),
			lgcore.WithLinkageLimit(req.Limit),
			lgcore.WithIslandsOk(req.IslandsOk),
		)
		p := lgcore.New(d, opts, nil, rec)

		res, err := p.Parse(req.Sentence)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		raw := make([]json.RawMessage, len(res.Linkages))
		for i, lk := range res.Linkages {
			b, err := lgcore.MarshalLinkageJSON(lk)
			if err != nil {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			raw[i] = b
		}
		writeJSON(w, http.StatusOK, struct {
			Linkages  []json.RawMessage `json:"linkages"`
			Exhausted bool              `json:"exhausted"`
		}{Linkages: raw, Exhausted: res.Exhausted})
	})

	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	addr := fmt.Sprintf(":%d", *port)
	fmt.Printf("lgserver listening on %s\n", addr)
	if err := http.ListenAndServe(addr, corsMiddleware(mux)); err != nil {
		fmt.Fprintf(flag.CommandLine.Output(), "server error: %v\n", err)
	}
}
