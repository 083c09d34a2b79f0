package offer

import (
	"context"
	"log/slog"
	"time"
)

// ExpireStale sweeps pending offers older than ttl into expired. The request
// they sit on is untouched.
func (uc *DefaultOfferUsecase) ExpireStale(ctx context.Context, ttl time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-ttl)

	expired, err := uc.Store.Offers().ExpirePendingBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		slog.Info("expired stale offers", "count", expired, "cutoff", cutoff)
		if uc.Metrics != nil {
			uc.Metrics.OffersExpiredTotal.Add(float64(expired))
		}
	}
	return expired, nil
}
