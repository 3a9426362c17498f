package middleware

import (
	"net/http"
	"strings"
)

const corsBaseHeaders = "X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version"

// CORSPolicy is what one path prefix advertises to browsers.
type CORSPolicy struct {
	Prefix  string
	Methods string
	Headers string
}

var (
	PublicCORS = CORSPolicy{
		Prefix:  "/",
		Methods: "GET,OPTIONS,PATCH,DELETE,POST,PUT",
		Headers: corsBaseHeaders,
	}
	AdminCORS = CORSPolicy{
		Prefix:  "/admin",
		Methods: "GET,OPTIONS",
		Headers: corsBaseHeaders + ", Authorization",
	}
)

// CORS sets permissive cross-origin headers on every response and answers
// pre-flight requests itself, ahead of auth and routing. The longest
// matching prefix wins.
func CORS(policies ...CORSPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := matchPolicy(policies, r.URL.Path)

			h := w.Header()
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Methods", p.Methods)
			h.Set("Access-Control-Allow-Headers", p.Headers)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func matchPolicy(policies []CORSPolicy, path string) CORSPolicy {
	best := PublicCORS
	bestLen := -1
	for _, p := range policies {
		if !strings.HasPrefix(path, p.Prefix) {
			continue
		}
		if p.Prefix != "/" && len(path) > len(p.Prefix) && path[len(p.Prefix)] != '/' {
			continue
		}
		if len(p.Prefix) > bestLen {
			best, bestLen = p, len(p.Prefix)
		}
	}
	return best
}
