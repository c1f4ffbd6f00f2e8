// Package messaging 领域事件发布的基础设施实现
package messaging

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/bookstore-api/internal/domain/event"
	"github.com/xiebiao/bookstore-api/pkg/circuitbreaker"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
	"github.com/xiebiao/bookstore-api/pkg/mq"
)

// Sender 消息发送接口，*mq.Publisher实现了它
type Sender interface {
	Publish(ctx context.Context, routingKey string, message any, opts ...mq.PublishOption) error
}

// BrokerPublisher 经熔断器保护把事件发到RabbitMQ
// 设计说明：
// 1. 事件类型即routing key，消费者可以用 book.* 之类的通配符订阅
// 2. Broker故障时熔断器打开，后续发布立即失败，不再等网络超时
// 3. 每次发布按结果计数：success / failure / rejected（熔断拒绝）
type BrokerPublisher struct {
	sender  Sender
	breaker *circuitbreaker.CircuitBreaker
	timeout time.Duration
	logger  *zap.Logger
}

// NewBrokerPublisher 创建事件发布者
func NewBrokerPublisher(sender Sender, breaker *circuitbreaker.CircuitBreaker, timeout time.Duration, logger *zap.Logger) *BrokerPublisher {
	return &BrokerPublisher{
		sender:  sender,
		breaker: breaker,
		timeout: timeout,
		logger:  logger,
	}
}

var _ event.Publisher = (*BrokerPublisher)(nil)

// Publish 发布事件
func (p *BrokerPublisher) Publish(ctx context.Context, evt event.Event) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err := p.breaker.Execute(func() error {
		return p.sender.Publish(ctx, evt.Type, evt, mq.WithMessageID(evt.ID))
	})

	result := "success"
	switch {
	case errors.Is(err, circuitbreaker.ErrOpenState), errors.Is(err, circuitbreaker.ErrTooManyRequests):
		result = "rejected"
	case err != nil:
		result = "failure"
	}
	metrics.IncCounterVec(metrics.EventsPublishedTotal, map[string]string{
		"routing_key": evt.Type,
		"result":      result,
	})

	if err != nil {
		p.logger.Warn("publish event failed",
			zap.String("event_id", evt.ID),
			zap.String("event_type", evt.Type),
			zap.String("result", result),
			zap.Error(err))
	}
	return err
}

// NewBreaker 创建事件发布用的熔断器，状态变化写日志并导出到指标
func NewBreaker(st circuitbreaker.Settings, logger *zap.Logger) *circuitbreaker.CircuitBreaker {
	st.OnStateChange = func(name string, from, to circuitbreaker.State) {
		logger.Warn("circuit breaker state changed",
			zap.String("breaker", name),
			zap.String("from", from.String()),
			zap.String("to", to.String()))
		metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(to))
	}
	cb := circuitbreaker.New(st)
	metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": cb.Name()}, float64(circuitbreaker.StateClosed))
	return cb
}

// NoopPublisher mq.enabled=false时使用，只在debug级别记录事件
type NoopPublisher struct {
	logger *zap.Logger
}

// NewNoopPublisher 创建空发布者
func NewNoopPublisher(logger *zap.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

// Publish 丢弃事件
func (p *NoopPublisher) Publish(_ context.Context, evt event.Event) error {
	p.logger.Debug("event dropped (mq disabled)",
		zap.String("event_id", evt.ID),
		zap.String("event_type", evt.Type))
	return nil
}
