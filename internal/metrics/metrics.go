// Package metrics exposes the service's Prometheus collectors. Counters are
// registered on the default registry and served by the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ShipmentsCreated counts successfully created shipments.
	ShipmentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shipments_created_total",
		Help: "Total number of shipments created",
	})

	// StatusUpdates counts shipment updates that changed the status and
	// appended a timeline entry.
	StatusUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shipment_status_updates_total",
		Help: "Total number of shipment status transitions recorded",
	})

	// PublicLookups counts public tracking lookups, cache hits included.
	PublicLookups = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracking_public_lookups_total",
		Help: "Total number of public tracking number lookups",
	})

	// TrackingCacheHits counts public lookups answered from the cache.
	TrackingCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracking_cache_hits_total",
		Help: "Total number of public tracking lookups served from cache",
	})
)
