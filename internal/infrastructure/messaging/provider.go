package messaging

import (
	"go.uber.org/zap"

	"github.com/xiebiao/bookstore-api/internal/domain/event"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-api/pkg/circuitbreaker"
	"github.com/xiebiao/bookstore-api/pkg/mq"
)

const breakerName = "event-publisher"

// NewPublisher 按配置选择事件发布者
// mq.enabled为false时返回NoopPublisher；返回的cleanup负责关闭连接
func NewPublisher(cfg *config.Config, logger *zap.Logger) (event.Publisher, func(), error) {
	if !cfg.MQ.Enabled {
		logger.Info("event publishing disabled")
		return NewNoopPublisher(logger), func() {}, nil
	}

	sender, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType, logger)
	if err != nil {
		return nil, nil, err
	}

	b := cfg.MQ.Breaker
	breaker := NewBreaker(circuitbreaker.Settings{
		Name:        breakerName,
		MaxRequests: b.MaxRequests,
		Interval:    b.Interval,
		Timeout:     b.Timeout,
		ReadyToTrip: func(c circuitbreaker.Counts) bool {
			return c.ConsecutiveFailures >= b.ConsecutiveFailures
		},
	}, logger)

	cleanup := func() {
		if err := sender.Close(); err != nil {
			logger.Warn("close event publisher", zap.Error(err))
		}
	}
	logger.Info("event publishing enabled", zap.String("exchange", cfg.MQ.Exchange))
	return NewBrokerPublisher(sender, breaker, cfg.MQ.PublishTimeout, logger), cleanup, nil
}
