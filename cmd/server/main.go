package main

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"flag"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/crhntr/atoms/expression"
)

//go:embed index.html.template
var indexHTMLTemplate string

func main() {
	config, err := LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	flag.StringVar(&config.Address, "addr", config.Address, "the address to listen on")
	flag.BoolVar(&config.Strict, "strict", config.Strict, "reject unrecognized characters by default")
	flag.Parse()

	s := server{
		strict:    config.Strict,
		templates: template.Must(template.New("index.html.template").Parse(indexHTMLTemplate)),
	}
	slog.Info("starting server", "addr", config.Address, "strict", config.Strict)
	if err := http.ListenAndServe(config.Address, s.routes()); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

type server struct {
	strict bool

	templates *template.Template
}

type page struct {
	Expression string
	Strict     bool
	Atoms      []expression.Atom
}

func (server *server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", server.index)
	mux.HandleFunc("POST /tokens", server.postTokens)
	mux.HandleFunc("GET /tokens.json", server.getTokensJSON)

	return requestLogger(mux)
}

func (server *server) render(res http.ResponseWriter, _ *http.Request, name string, status int, data any) {
	var buf bytes.Buffer
	if err := server.templates.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	header := res.Header()
	header.Set("content-type", "text/html")
	res.WriteHeader(status)
	_, _ = res.Write(buf.Bytes())
}

func (server *server) tokens(in string, strict bool) ([]expression.Atom, error) {
	if strict {
		return expression.StrictTokens(in)
	}
	return expression.Tokens(in)
}

func (server *server) index(res http.ResponseWriter, req *http.Request) {
	data := page{
		Expression: req.URL.Query().Get("expression"),
		Strict:     server.strict,
	}
	atoms, err := server.tokens(data.Expression, data.Strict)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	data.Atoms = atoms
	server.render(res, req, "index.html.template", http.StatusOK, data)
}

func (server *server) postTokens(res http.ResponseWriter, req *http.Request) {
	if err := req.ParseForm(); err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	data := page{
		Expression: req.Form.Get("expression"),
		Strict:     req.Form.Get("strict") == "on",
	}
	atoms, err := server.tokens(data.Expression, data.Strict)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	data.Atoms = atoms
	server.render(res, req, "tokens", http.StatusOK, data)
}

type tokensResponse struct {
	Expression string            `json:"expression"`
	Atoms      []expression.Atom `json:"atoms"`
}

func (server *server) getTokensJSON(res http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()
	strict := server.strict
	if s := query.Get("strict"); s != "" {
		var err error
		strict, err = strconv.ParseBool(s)
		if err != nil {
			http.Error(res, "strict must be a boolean", http.StatusBadRequest)
			return
		}
	}
	in := query.Get("expression")
	atoms, err := server.tokens(in, strict)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	if atoms == nil {
		atoms = []expression.Atom{}
	}
	buf, err := json.MarshalIndent(tokensResponse{Expression: in, Atoms: atoms}, "", "\t")
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	h := res.Header()
	h.Set("content-type", "application/json")
	h.Set("content-length", strconv.Itoa(len(buf)))
	res.WriteHeader(http.StatusOK)
	_, _ = res.Write(buf)
}

const requestIDHeader = "X-Request-Id"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		id := req.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		res.Header().Set(requestIDHeader, id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: res, status: http.StatusOK}
		next.ServeHTTP(rec, req)

		level := slog.LevelInfo
		if rec.status >= http.StatusBadRequest {
			level = slog.LevelWarn
		}
		slog.LogAttrs(req.Context(), level, "REQUEST",
			slog.String("request_id", id),
			slog.String("method", req.Method),
			slog.String("uri", req.URL.RequestURI()),
			slog.Int("status", rec.status),
			slog.Duration("latency", time.Since(start)),
		)
	})
}
