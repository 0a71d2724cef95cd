package jwt

import (
	"log/slog"
	"net/http"
	"net/http/fcgi"
	"regexp"
	"strings"
)

const (
	HeaderAuthorization = "Authorization"

	// Transport variables consulted when the Authorization header did not
	// survive the hop from the front server.
	VarAuthorization         = "HTTP_AUTHORIZATION"
	VarRedirectAuthorization = "REDIRECT_HTTP_AUTHORIZATION"
)

var bearerPattern = regexp.MustCompile(`(?i)^\s*bearer\s+(\S.*?)\s*$`)

// Request is the read-only view of an inbound request that credential
// extraction needs.
type Request interface {
	Header() http.Header
	// Var returns a transport variable set by the front server, or "".
	Var(name string) string
}

type httpRequest struct {
	r *http.Request
}

// FromHTTP adapts r. Transport variables are the FastCGI parameters that
// net/http does not map into r itself. net/http/fcgi turns every HTTP_*
// parameter into a header and leaves it out of ProcessEnv, so under this
// adapter HTTP_AUTHORIZATION only ever arrives as the Authorization header
// and REDIRECT_HTTP_AUTHORIZATION is the one live variable fallback. The
// flat variable stays in the lookup order for Request implementations backed
// by a raw CGI environment.
func FromHTTP(r *http.Request) Request {
	return &httpRequest{r: r}
}

func (h *httpRequest) Header() http.Header {
	return h.r.Header
}

func (h *httpRequest) Var(name string) string {
	return fcgi.ProcessEnv(h.r)[name]
}

// Extractor locates a bearer credential in a request.
type Extractor struct {
	flatVar     string
	redirectVar string
}

// NewExtractor returns an Extractor reading the given transport variables
// after the Authorization header. Empty names select the defaults.
func NewExtractor(flatVar, redirectVar string) *Extractor {
	if flatVar == "" {
		flatVar = VarAuthorization
	}
	if redirectVar == "" {
		redirectVar = VarRedirectAuthorization
	}
	return &Extractor{
		flatVar:     flatVar,
		redirectVar: redirectVar,
	}
}

// Extract returns the bearer token carried by req. The first place holding an
// authorization value wins, in this order: any header named Authorization
// (case-insensitive), the flat transport variable, the redirected transport
// variable. ok is false when no value is found or the value is not a bearer
// credential.
func (e *Extractor) Extract(req Request) (token string, ok bool) {
	value, source := e.lookup(req)
	if source == "" {
		slog.Debug("No authorization value found in request.")
		return "", false
	}

	m := bearerPattern.FindStringSubmatch(value)
	if m == nil {
		slog.Debug("Authorization value is not a bearer credential.", "source", source)
		return "", false
	}

	return m[1], true
}

func (e *Extractor) lookup(req Request) (value, source string) {
	for name, values := range req.Header() {
		if strings.EqualFold(name, HeaderAuthorization) && len(values) > 0 && values[0] != "" {
			return values[0], "header"
		}
	}

	if v := req.Var(e.flatVar); v != "" {
		return v, e.flatVar
	}

	if v := req.Var(e.redirectVar); v != "" {
		return v, e.redirectVar
	}

	return "", ""
}
