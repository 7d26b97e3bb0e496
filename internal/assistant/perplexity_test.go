package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient("")
	assert.ErrorIs(t, err, ErrNoAPIKey)

	_, err = NewClient("   ")
	assert.ErrorIs(t, err, ErrNoAPIKey)

	c, err := NewClient("pplx-test")
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, c.model)
}

func TestWithModelIgnoresEmpty(t *testing.T) {
	c, err := NewClient("pplx-test", WithModel(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, c.model)

	c, err = NewClient("pplx-test", WithModel("sonar-pro"))
	require.NoError(t, err)
	assert.Equal(t, "sonar-pro", c.model)
}

func TestSendMessage(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Tudo em ordem!"}},
			},
		})
	}))
	defer srv.Close()

	c, err := NewClient("pplx-test", WithBaseURL(srv.URL), WithModel("sonar-pro"))
	require.NoError(t, err)

	out, err := c.SendMessage(context.Background(), sampleSnapshot(), "como estou?")
	require.NoError(t, err)
	assert.Equal(t, "Tudo em ordem!", out)

	assert.Equal(t, "Bearer pplx-test", gotAuth)
	assert.Equal(t, "sonar-pro", gotReq.Model)
	assert.InDelta(t, 0.7, gotReq.Temperature, 1e-9)
	assert.Equal(t, 500, gotReq.MaxTokens)

	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[0].Content, "Rafael")
	assert.Contains(t, gotReq.Messages[0].Content, "2/4 atividades")
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "como estou?", gotReq.Messages[1].Content)
}

func TestSendMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "invalid api key"},
		})
	}))
	defer srv.Close()

	c, err := NewClient("pplx-bad", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.SendMessage(context.Background(), Snapshot{}, "oi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
	assert.Contains(t, err.Error(), "401")
}

func TestSendMessageEmptyCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c, err := NewClient("pplx-test", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.SendMessage(context.Background(), Snapshot{}, "oi")
	assert.Error(t, err)
}

func TestSendMessageContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c, err := NewClient("pplx-test", WithBaseURL(srv.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.SendMessage(ctx, Snapshot{}, "oi")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestReportPrompts(t *testing.T) {
	var lastUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		lastUser = req.Messages[1].Content
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "ok"}},
			},
		})
	}))
	defer srv.Close()

	c, err := NewClient("pplx-test", WithBaseURL(srv.URL))
	require.NoError(t, err)
	ctx := context.Background()
	s := Snapshot{}

	tests := []struct {
		name string
		call func() (string, error)
		want string
	}{
		{"weekly", func() (string, error) { return c.WeeklyReport(ctx, s) }, "relatório semanal"},
		{"monthly", func() (string, error) { return c.MonthlyReport(ctx, s) }, "relatório mensal"},
		{"financial", func() (string, error) { return c.FinancialAdvice(ctx, s) }, "conselhos financeiros"},
		{"study", func() (string, error) { return c.StudyRecommendations(ctx, s) }, "progresso de estudos"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.call()
			require.NoError(t, err)
			assert.Contains(t, lastUser, tt.want)
		})
	}
}
