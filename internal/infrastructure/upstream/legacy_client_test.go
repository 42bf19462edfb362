package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumenConClaveDeEnvoltura(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/bedding", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bedding_summary": {"Bett": 12, "Decke": 5}}`))
	}))
	defer srv.Close()

	client := NewLegacyClient(srv.URL, time.Second)
	summary, err := client.CategorySummary(context.Background(), "bedding")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Bett": 12, "Decke": 5}, summary)
}

func TestResumenPlanoSinEnvoltura(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Bett": 12, "Decke": 5}`))
	}))
	defer srv.Close()

	client := NewLegacyClient(srv.URL, time.Second)
	summary, err := client.CategorySummary(context.Background(), "bedding")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Bett": 12, "Decke": 5}, summary)
}

func TestErrorDeEstadoDelBackendLegado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewLegacyClient(srv.URL, time.Second)
	_, err := client.CategorySummary(context.Background(), "bedding")
	assert.Error(t, err)
}

func TestPayloadSinFormaConocidaDaResumenVacio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ok"}`))
	}))
	defer srv.Close()

	client := NewLegacyClient(srv.URL, time.Second)
	summary, err := client.CategorySummary(context.Background(), "bedding")
	require.NoError(t, err)
	assert.NotNil(t, summary)
	assert.Empty(t, summary)
}
