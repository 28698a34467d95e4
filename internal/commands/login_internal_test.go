package commands

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func serveCallback(query string) (*httptest.ResponseRecorder, chan string, chan error) {
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)
	rec := httptest.NewRecorder()
	callbackHandler("nonce", codeCh, errCh).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?"+query, nil))
	return rec, codeCh, errCh
}

func TestCallbackHandler_DeliversCode(t *testing.T) {
	rec, codeCh, _ := serveCallback("state=nonce&code=abc")

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	select {
	case code := <-codeCh:
		if code != "abc" {
			t.Errorf("expected abc, got %q", code)
		}
	default:
		t.Fatal("expected a code")
	}
}

func TestCallbackHandler_Rejects(t *testing.T) {
	cases := map[string]string{
		"state=other&code=abc":         "oauth state mismatch",
		"code=abc":                     "oauth state mismatch",
		"state=nonce":                  "no code in callback",
		"state=nonce&error=access_denied": "authorization denied: access_denied",
	}
	for query, expected := range cases {
		rec, codeCh, errCh := serveCallback(query)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", query, rec.Code)
		}
		if len(codeCh) != 0 {
			t.Errorf("%s: no code should be delivered", query)
		}
		select {
		case err := <-errCh:
			if err.Error() != expected {
				t.Errorf("%s: expected %q, got %q", query, expected, err)
			}
		default:
			t.Errorf("%s: expected an error", query)
		}
	}
}
