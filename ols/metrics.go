package ols

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ols_client_requests_total",
		Help: "Number of HTTP requests sent to the lookup service, by resource kind.",
	}, []string{"kind"})
	mRequestErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ols_client_request_errors_total",
		Help: "Number of failed HTTP requests, by resource kind.",
	}, []string{"kind"})
	mRequestSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "ols_client_request_seconds",
		Help: "Latency of HTTP requests to the lookup service.",
	}, []string{"kind"})

	mPagesFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ols_client_pages_fetched_total",
		Help: "Number of collection pages fetched.",
	})
	mHops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ols_client_traversal_hops_total",
		Help: "Number of hop links expanded during graph traversal, by direction.",
	}, []string{"direction"})
	mSearchDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ols_client_search_dropped_total",
		Help: "Number of search hits dropped for lacking a display name.",
	})
)
