package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","city":"Lisbon","country":"Portugal"}`))
	}))
	defer srv.Close()

	loc, err := New(srv.URL, time.Second).Lookup(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "Lisbon", loc.City)
	assert.Equal(t, "Portugal", loc.Country)
}

func TestLookupFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Lookup(context.Background())
	assert.Error(t, err)
}

func TestLookupServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Lookup(context.Background())
	assert.Error(t, err)
}
