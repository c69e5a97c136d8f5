// Package metrics exports generation activity as Prometheus collectors.
package metrics

import (
	"image/color"
	"net/http"

	"stellate/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Request results recorded by ObserveRequest.
const (
	ResultAccepted = "accepted"
	ResultBusy     = "busy"
	ResultInvalid  = "invalid"
)

// Collector records mesh events and parameter requests. It is a
// core.MeshListener.
type Collector struct {
	triangles     prometheus.Counter
	regenerations prometheus.Counter
	visible       prometheus.Gauge
	requests      *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		triangles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stellate_triangles_emitted_total",
			Help: "Total number of triangles added to the visible mesh.",
		}),
		regenerations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stellate_regenerations_total",
			Help: "Total number of regenerations started.",
		}),
		visible: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stellate_visible_triangles",
			Help: "Number of triangles currently visible.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stellate_change_requests_total",
			Help: "Parameter change requests by kind and result.",
		}, []string{"kind", "result"}),
	}
	reg.MustRegister(c.triangles, c.regenerations, c.visible, c.requests)
	return c
}

// OnRegenerationBegin implements core.MeshListener.
func (c *Collector) OnRegenerationBegin() {
	c.regenerations.Inc()
	c.visible.Set(0)
}

// OnTriangleAdded implements core.MeshListener.
func (c *Collector) OnTriangleAdded(core.Triangle, color.RGBA) {
	c.triangles.Inc()
	c.visible.Inc()
}

// ObserveRequest counts one parameter request.
func (c *Collector) ObserveRequest(kind, result string) {
	c.requests.WithLabelValues(kind, result).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
