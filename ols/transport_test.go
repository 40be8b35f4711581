package ols

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			if r.Header.Get("Accept") != "application/json" {
				http.Error(w, "json only", http.StatusNotAcceptable)
				return
			}
			w.Write([]byte(`{"label":"liver"}`))
		case "/empty":
			w.Write([]byte("  \n"))
		case "/bad":
			w.Write([]byte(`{"label":`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	tr := NewHTTPTransport(DefaultConfig())
	tr.SetHTTPClient(srv.Client())
	ctx := context.Background()

	var v struct {
		Label string `json:"label"`
	}
	require.NoError(t, tr.Get(ctx, srv.URL+"/ok", &v))
	require.Equal(t, "liver", v.Label)

	require.ErrorIs(t, tr.Get(ctx, srv.URL+"/empty", &v), ErrEmptyResponse)

	var te *TransportError
	require.ErrorAs(t, tr.Get(ctx, srv.URL+"/bad", &v), &te)

	var re *RequestError
	err := tr.Get(ctx, srv.URL+"/missing", &v)
	require.ErrorAs(t, err, &re)
	require.Equal(t, http.StatusNotFound, re.StatusCode)
	require.True(t, isMissing(err))
	require.False(t, IsNotFound(err))
}

func TestHTTPTransportCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewHTTPTransport(DefaultConfig()).Get(ctx, srv.URL, &struct{}{})
	var te *TransportError
	require.ErrorAs(t, err, &te)
	require.ErrorIs(t, err, context.Canceled)
}

func TestProxyConfig(t *testing.T) {
	pc := proxyConfig(&Config{HTTPSProxy: "http://proxy.local:3128", NoProxy: "localhost"})
	u, err := pc.ProxyFunc()(mustParse(t, "https://www.ebi.ac.uk/ols4/api/ontologies"))
	require.NoError(t, err)
	require.Equal(t, "proxy.local:3128", u.Host)

	u, err = pc.ProxyFunc()(mustParse(t, "http://www.ebi.ac.uk/ols4/api/ontologies"))
	require.NoError(t, err)
	require.Nil(t, u)
}

func mustParse(t testing.TB, s string) *url.URL {
	u, err := url.Parse(s)
	require.NoError(t, err)
	return u
}
