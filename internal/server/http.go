package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"

	"github.com/alvesmarcos/rslex/internal/regexp"
	"github.com/alvesmarcos/rslex/internal/rules"
)

type httpHandler struct {
	ruleSet atomic.Value
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/v1/parse":
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		h.parsePattern(w, r)

	case r.URL.Path == "/v1/rules":
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		h.listRules(w, r)

	case strings.HasPrefix(r.URL.Path, "/v1/rules/"):
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		h.getRule(w, r, strings.TrimPrefix(r.URL.Path, "/v1/rules/"))

	default:
		http.Error(w, "Not Found", http.StatusNotFound)
	}
}

type parseRequest struct {
	Pattern string `json:"pattern"`
}

type parseResponse struct {
	Pattern string      `json:"pattern"`
	AST     regexp.Node `json:"ast"`
}

type parseErrorResponse struct {
	Pattern string `json:"pattern"`
	Error   string `json:"error"`
	Tag     string `json:"tag,omitempty"`
}

func (h *httpHandler) parsePattern(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("failed to decode request body: %v", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	node, err := regexp.Parse(req.Pattern)
	if err != nil {
		res := parseErrorResponse{Pattern: req.Pattern, Error: err.Error()}
		var parseErr *regexp.Error
		if errors.As(err, &parseErr) {
			res.Tag = string(parseErr.Tag)
		}
		resJSON(w, http.StatusUnprocessableEntity, res)
		return
	}

	resJSON(w, http.StatusOK, parseResponse{Pattern: req.Pattern, AST: node})
}

func (h *httpHandler) listRules(w http.ResponseWriter, r *http.Request) {
	resJSON(w, http.StatusOK, h.ruleSet.Load().(*rules.RuleSet))
}

func (h *httpHandler) getRule(w http.ResponseWriter, r *http.Request, name string) {
	rule, ok := h.ruleSet.Load().(*rules.RuleSet).Lookup(name)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	resJSON(w, http.StatusOK, rule)
}

// NewHTTPHandler serves the rule set produced by loader, reloading it
// periodically so edits to the definition file show up without a restart.
func NewHTTPHandler(loader func() (*rules.RuleSet, error)) (http.Handler, error) {
	rs, err := loader()
	if err != nil {
		return nil, err
	}

	h := &httpHandler{}
	h.ruleSet.Store(rs)
	go func() {
		t := time.NewTicker(5 * time.Second)
		for range t.C {
			rs, err := loader()
			if err != nil {
				log.Printf("failed to reload rules: %v", err)
				continue
			}
			h.ruleSet.Store(rs)
		}
	}()
	return h, nil
}

func resJSON(w http.ResponseWriter, status int, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(b)+1))
	w.WriteHeader(status)

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	return nil
}
