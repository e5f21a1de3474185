package usecase

import (
	"context"

	"PMTerminal/internal/domain/models"
	"PMTerminal/internal/transform"
	"PMTerminal/pkg/logger"

	"github.com/tidwall/gjson"
)

// Notifications merges the notification, news and economic-calendar feeds.
// The sources are fetched in sequence; a failed source is logged and left
// out, and the request fails only when every source failed.
func (s *Service) Notifications(ctx context.Context, token string, req *models.NotificationsRequest) ([]models.Notification, error) {
	identity := func(doc gjson.Result) gjson.Result { return doc }

	var (
		src      transform.FeedSources
		firstErr error
		failed   int
	)
	sources := []struct {
		ep  models.Endpoint
		dst *gjson.Result
	}{
		{NotificationsEndpoint, &src.Notifications},
		{NewsEndpoint, &src.News},
		{EconomicCalendarEndpoint, &src.Events},
	}
	for _, source := range sources {
		doc, err := call(ctx, s, token, source.ep, nil, identity, nil)
		if err != nil {
			s.log.Warn("feed source failed", logger.String("endpoint", source.ep.Name), logger.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			failed++
			continue
		}
		*source.dst = doc
	}
	if failed == len(sources) {
		return nil, firstErr
	}

	return transform.NotificationFeed(src, s.now(), req.Limit), nil
}
