package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MarketplaceMetrics holds the counters the engines record after a
// transition commits.
type MarketplaceMetrics struct {
	RequestsCreatedTotal   *prometheus.CounterVec
	RequestsCancelledTotal prometheus.Counter

	OffersSubmittedTotal *prometheus.CounterVec
	OffersAcceptedTotal  prometheus.Counter
	OffersRejectedTotal  prometheus.Counter
	OffersCascadeTotal   prometheus.Counter
	OffersExpiredTotal   prometheus.Counter

	OrdersPlacedTotal      *prometheus.CounterVec
	OrdersPlacedAmount     prometheus.Counter
	OrdersDeliveredTotal   prometheus.Counter
	OrdersCancelledTotal   *prometheus.CounterVec
	AcceptTxDurationSecond prometheus.Histogram
}

func NewMarketplaceMetrics(reg prometheus.Registerer) *MarketplaceMetrics {
	factory := promauto.With(reg)

	return &MarketplaceMetrics{
		RequestsCreatedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_requests_created_total",
			Help: "Number of request posts created",
		}, []string{"category"}),
		RequestsCancelledTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_requests_cancelled_total",
			Help: "Number of request posts cancelled by customers",
		}),
		OffersSubmittedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_offers_submitted_total",
			Help: "Number of offers submitted by suppliers",
		}, []string{"kind"}), // initial | counter | direct_accept
		OffersAcceptedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_offers_accepted_total",
			Help: "Number of offers accepted by customers",
		}),
		OffersRejectedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_offers_rejected_total",
			Help: "Number of offers rejected by customers",
		}),
		OffersCascadeTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_offers_cascade_rejected_total",
			Help: "Number of sibling offers auto-rejected on acceptance",
		}),
		OffersExpiredTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_offers_expired_total",
			Help: "Number of pending offers expired by the background worker",
		}),
		OrdersPlacedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_orders_placed_total",
			Help: "Number of orders placed",
		}, []string{"origin"}), // customer_accept | direct_accept
		OrdersPlacedAmount: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_orders_placed_amount_total",
			Help: "Total price volume of placed orders",
		}),
		OrdersDeliveredTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_orders_delivered_total",
			Help: "Number of orders marked delivered",
		}),
		OrdersCancelledTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_orders_cancelled_total",
			Help: "Number of orders cancelled after placement",
		}, []string{"by"}), // customer | supplier
		AcceptTxDurationSecond: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "marketplace_accept_tx_duration_seconds",
			Help:    "Duration of the acceptance transaction",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
