package jobs

import (
	"freight/internal/core/application/usecases/queries"

	"github.com/prometheus/client_golang/prometheus"
)

// MarketplaceGauges exposes the latest marketplace counts per status.
type MarketplaceGauges struct {
	loads    *prometheus.GaugeVec
	bookings *prometheus.GaugeVec
}

func NewMarketplaceGauges(reg prometheus.Registerer) (*MarketplaceGauges, error) {
	g := &MarketplaceGauges{
		loads: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "freight_loads",
			Help: "Number of loads per status",
		}, []string{"status"}),
		bookings: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "freight_bookings",
			Help: "Number of bookings per status",
		}, []string{"status"}),
	}

	for _, c := range []prometheus.Collector{g.loads, g.bookings} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *MarketplaceGauges) Set(stats queries.MarketplaceStats) {
	for status, n := range stats.Loads {
		g.loads.WithLabelValues(status.String()).Set(float64(n))
	}
	for status, n := range stats.Bookings {
		g.bookings.WithLabelValues(status.String()).Set(float64(n))
	}
}
