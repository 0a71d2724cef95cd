package admin_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/parentdesk/internal/admin"
	"github.com/ferdiebergado/parentdesk/internal/pkg/web"
	"github.com/ferdiebergado/parentdesk/internal/platform/validation"
	"github.com/ferdiebergado/parentdesk/internal/user"
)

func TestHandler_FindUser_ValidatorErrors(t *testing.T) {
	t.Parallel()

	v := &validation.StubValidator{
		ValidateStructFunc: func(_ any) map[string]string {
			return map[string]string{"id": "id is out of range"}
		},
	}
	h := admin.NewHandler(&user.StubService{}, v)

	req := httptest.NewRequest(http.MethodGet, "/admin/users/7", http.NoBody)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()

	h.FindUser(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusBadRequest)
	}

	body := web.DecodeJSONResponse[web.ErrorResponse](t, res)
	if got := body.Errors["id"]; got != "id is out of range" {
		t.Errorf("body.Errors[%q] = %q, want: %q", "id", got, "id is out of range")
	}
}
