package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokebox/src/core/domain"
)

func TestAPIClientRandom(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		want       *domain.Joke
		wantStatus int
		wantErr    bool
	}{
		{
			name:   "joke",
			status: http.StatusOK,
			body:   `{"id":3,"question":"Quel est l&#x27;animal le plus heureux ?","answer":"Le hibou."}`,
			want:   &domain.Joke{ID: 3, Question: "Quel est l&#x27;animal le plus heureux ?", Answer: "Le hibou."},
		},
		{name: "null body", status: http.StatusOK, body: `null`},
		{name: "empty body", status: http.StatusOK, body: ``},
		{name: "empty object", status: http.StatusOK, body: `{}`},
		{
			name:       "not found",
			status:     http.StatusNotFound,
			body:       `{"error":{"code":"NOT_FOUND","message":"joke not found"}}`,
			wantStatus: http.StatusNotFound,
			wantErr:    true,
		},
		{
			name:       "server error",
			status:     http.StatusInternalServerError,
			body:       `oops`,
			wantStatus: http.StatusInternalServerError,
			wantErr:    true,
		},
		{name: "garbage", status: http.StatusOK, body: `<html>`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, randomPath, r.URL.Path)
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := NewAPIClient(srv.URL+"/", time.Second).Random(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantStatus != 0 {
					var se *StatusError
					require.ErrorAs(t, err, &se)
					assert.Equal(t, tt.wantStatus, se.StatusCode)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAPIClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewAPIClient(url, time.Second).Random(context.Background())
	assert.Error(t, err)
}

func TestAPIClientTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewAPIClient(srv.URL, 50*time.Millisecond).Random(context.Background())
	assert.Error(t, err)
}
