package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestExtractToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name        string
		headerValue string
		wantToken   string
		wantErr     error
	}{
		{
			name:    "missing header",
			wantErr: ErrMissingToken,
		},
		{
			name:        "whitespace only",
			headerValue: "   ",
			wantErr:     ErrEmptyToken,
		},
		{
			name:        "valid token",
			headerValue: "token-123",
			wantToken:   "token-123",
		},
		{
			name:        "token with surrounding whitespace",
			headerValue: "  token-123  ",
			wantToken:   "token-123",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ginCtx, _ := newTestGinContext(testCase.headerValue)

			token, err := ExtractToken(ginCtx)
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected error %v, got %v", testCase.wantErr, err)
			}
			if token != testCase.wantToken {
				t.Fatalf("expected token %q, got %q", testCase.wantToken, token)
			}
		})
	}
}

func TestAbortWithUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ginCtx, recorder := newTestGinContext("")
	AbortWithUnauthorized(ginCtx, ErrMissingToken)

	if !ginCtx.IsAborted() {
		t.Fatalf("expected request to be aborted")
	}
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, recorder.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if body["error"] != ErrMissingToken.Error() {
		t.Fatalf("expected error message %q, got %v", ErrMissingToken.Error(), body["error"])
	}
	if success, _ := body["success"].(bool); success {
		t.Fatalf("expected success=false in envelope")
	}
}

func newTestGinContext(tokenHeader string) (*gin.Context, *httptest.ResponseRecorder) {
	recorder := httptest.NewRecorder()
	ginCtx, _ := gin.CreateTestContext(recorder)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	if tokenHeader != "" {
		request.Header.Set(TokenHeader, tokenHeader)
	}
	ginCtx.Request = request

	return ginCtx, recorder
}
