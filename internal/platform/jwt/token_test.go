package jwt_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/ferdiebergado/parentdesk/internal/platform/jwt"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	claims := jwt.Claims{"user_id": 42, "email": "a@b.com"}

	encHeader, encPayload, err := jwt.Build(claims, jwt.NewHeader("HS256"))
	if err != nil {
		t.Fatal(err)
	}

	header, err := jwt.DecodeSegment(encHeader)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := string(header), `{"typ":"JWT","alg":"HS256"}`; got != want {
		t.Errorf("decoded header = %s, want: %s", got, want)
	}

	payload, err := jwt.DecodeSegment(encPayload)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := string(payload), `{"email":"a@b.com","user_id":42}`; got != want {
		t.Errorf("decoded payload = %s, want: %s", got, want)
	}

	_, again, err := jwt.Build(claims, jwt.NewHeader("HS256"))
	if err != nil {
		t.Fatal(err)
	}

	if again != encPayload {
		t.Errorf("second Build payload = %q, want: %q", again, encPayload)
	}
}

func TestBuild_UnsupportedValue(t *testing.T) {
	t.Parallel()

	_, _, err := jwt.Build(jwt.Claims{"ch": make(chan int)}, jwt.NewHeader("HS256"))
	if err == nil {
		t.Error("jwt.Build with a channel claim returned nil error, want: error")
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"three segments", "a.b.c", nil},
		{"one segment", "abc", jwt.ErrMalformed},
		{"two segments", "a.b", jwt.ErrMalformed},
		{"four segments", "a.b.c.d", jwt.ErrMalformed},
		{"five segments", "a.b.c.d.e", jwt.ErrMalformed},
		{"empty header", ".b.c", jwt.ErrMalformed},
		{"empty payload", "a..c", jwt.ErrMalformed},
		{"empty signature", "a.b.", jwt.ErrMalformed},
		{"empty token", "", jwt.ErrMalformed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h, p, s, err := jwt.Split(tc.token)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("jwt.Split(%q) err = %v, want: %v", tc.token, err, tc.wantErr)
			}

			if err == nil && (h != "a" || p != "b" || s != "c") {
				t.Errorf("jwt.Split(%q) = %q, %q, %q, want: %q, %q, %q", tc.token, h, p, s, "a", "b", "c")
			}
		})
	}
}

func TestParseHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{"issued header", `{"typ":"JWT","alg":"HS256"}`, nil},
		{"key order does not matter", `{"alg":"HS256","typ":"JWT"}`, nil},
		{"typ may be omitted", `{"alg":"HS256"}`, nil},
		{"none algorithm", `{"typ":"JWT","alg":"none"}`, jwt.ErrMalformed},
		{"asymmetric algorithm", `{"typ":"JWT","alg":"RS256"}`, jwt.ErrMalformed},
		{"lowercase algorithm", `{"typ":"JWT","alg":"hs256"}`, jwt.ErrMalformed},
		{"missing algorithm", `{"typ":"JWT"}`, jwt.ErrMalformed},
		{"wrong type", `{"typ":"JWE","alg":"HS256"}`, jwt.ErrMalformed},
		{"not an object", `["HS256"]`, jwt.ErrMalformed},
		{"null", `null`, jwt.ErrMalformed},
		{"invalid json", `{"alg":`, jwt.ErrMalformed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := jwt.ParseHeader(jwt.EncodeSegment([]byte(tc.header)), "HS256")
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("jwt.ParseHeader(%s) = %v, want: %v", tc.header, err, tc.wantErr)
			}
		})
	}

	if err := jwt.ParseHeader("***", "HS256"); !errors.Is(err, jwt.ErrMalformed) {
		t.Errorf("jwt.ParseHeader(%q) = %v, want: %v", "***", err, jwt.ErrMalformed)
	}
}

func TestParsePayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		want    jwt.Claims
		wantErr error
	}{
		{
			name:    "object",
			payload: `{"user_id":42,"email":"a@b.com","exp":1700000000}`,
			want: jwt.Claims{
				"user_id": json.Number("42"),
				"email":   "a@b.com",
				"exp":     json.Number("1700000000"),
			},
		},
		{
			name:    "large integers keep their precision",
			payload: `{"user_id":9007199254740993}`,
			want:    jwt.Claims{"user_id": json.Number("9007199254740993")},
		},
		{"array", `[1,2]`, nil, jwt.ErrMalformed},
		{"null", `null`, nil, jwt.ErrMalformed},
		{"string", `"claims"`, nil, jwt.ErrMalformed},
		{"truncated", `{"user_id":`, nil, jwt.ErrMalformed},
		{"trailing data", `{"user_id":1}{}`, nil, jwt.ErrMalformed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := jwt.ParsePayload(jwt.EncodeSegment([]byte(tc.payload)))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("jwt.ParsePayload(%s) err = %v, want: %v", tc.payload, err, tc.wantErr)
			}

			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("jwt.ParsePayload(%s) = %v, want: %v", tc.payload, got, tc.want)
			}
		})
	}

	if _, err := jwt.ParsePayload("e30*"); !errors.Is(err, jwt.ErrMalformed) {
		t.Errorf("jwt.ParsePayload(%q) = %v, want: %v", "e30*", err, jwt.ErrMalformed)
	}
}
