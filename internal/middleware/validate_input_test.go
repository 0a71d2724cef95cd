package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/parentdesk/internal/middleware"
	"github.com/ferdiebergado/parentdesk/internal/pkg/web"
	"github.com/ferdiebergado/parentdesk/internal/platform/validation"
)

func TestMiddleware_ValidateInput(t *testing.T) {
	t.Parallel()

	const headerCalled = "X-Handler-Called"

	type conversation struct {
		Title string `json:"title" validate:"max=10"`
	}

	tests := []struct {
		name               string
		code               int
		payload            any
		valFunc            func(any) map[string]string
		body, headerCalled string
	}{
		{"valid input", http.StatusOK, conversation{"Sleep"}, func(_ any) map[string]string { return nil },
			`{"title":"Sleep"}`, "true"},
		{"invalid input", http.StatusUnprocessableEntity, conversation{"Sleep schedules"}, func(_ any) map[string]string {
			return map[string]string{"title": "title must be at most 10 characters"}
		}, `{"message":"Invalid input.","errors":{"title":"title must be at most 10 characters"}}`, ""},
		{"payload of another type", http.StatusBadRequest, struct{}{}, func(_ any) map[string]string {
			return nil
		}, `{"message":"Invalid input."}`, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				p, err := web.ParamsFromContext[conversation](r.Context())
				if err != nil {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}
				w.Header().Set(web.HeaderContentType, web.MimeJSON)
				w.Header().Set(headerCalled, "true")
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(&p)
			})

			ctx := web.NewContextWithParams(context.Background(), tc.payload)
			req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/", http.NoBody)
			rec := httptest.NewRecorder()
			v := &validation.StubValidator{
				ValidateStructFunc: tc.valFunc,
			}
			middleware.ValidateInput[conversation](v)(handler).ServeHTTP(rec, req)

			if rec.Code != tc.code {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tc.code)
			}

			if got := rec.Header().Get(web.HeaderContentType); !strings.HasPrefix(got, web.MimeJSON) {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", web.HeaderContentType, got, web.MimeJSON)
			}

			if got := rec.Header().Get(headerCalled); got != tc.headerCalled {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", headerCalled, got, tc.headerCalled)
			}

			if got := strings.TrimSuffix(rec.Body.String(), "\n"); got != tc.body {
				t.Errorf("rec.Body.String() = %q, want: %q", got, tc.body)
			}
		})
	}
}
