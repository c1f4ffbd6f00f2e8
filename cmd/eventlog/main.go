// eventlog 订阅全部领域事件并写入日志
//
// 用于排查事件是否发出，也可以作为下游消费者的起点：
//
//	BOOKSTORE_MQ_ENABLED=true go run ./cmd/eventlog
package main

import (
	"context"
	"encoding/json"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-api/pkg/logger"
	"github.com/xiebiao/bookstore-api/pkg/mq"
)

const queueName = "bookstore.eventlog"

// envelope 与domain/event.Event的JSON结构一致，payload保持原样
type envelope struct {
	ID         string          `json:"event_id"`
	Type       string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, syncLogger, err := logger.Install(logger.Options{
		Service:      cfg.Server.Name + "-eventlog",
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer syncLogger()

	consumer, err := mq.NewConsumer(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType, queueName, []string{"#"}, zl)
	if err != nil {
		zl.Fatal("connect broker", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zl.Info("consuming events", zap.String("exchange", cfg.MQ.Exchange), zap.String("queue", queueName))
	if err := consumer.Consume(ctx, handle(zl)); err != nil && ctx.Err() == nil {
		zl.Fatal("consume", zap.Error(err))
	}
	zl.Info("eventlog stopped")
}

// handle 解析失败的消息直接丢弃，重新入队只会反复失败
func handle(zl *zap.Logger) mq.Handler {
	return func(_ context.Context, msg mq.Message) error {
		var evt envelope
		if err := json.Unmarshal(msg.Body, &evt); err != nil {
			zl.Warn("drop malformed event", zap.String("routing_key", msg.RoutingKey), zap.Error(err))
			return nil
		}
		zl.Info("event",
			zap.String("event_id", evt.ID),
			zap.String("event_type", evt.Type),
			zap.String("routing_key", msg.RoutingKey),
			zap.Time("occurred_at", evt.OccurredAt),
			zap.ByteString("payload", evt.Payload),
		)
		return nil
	}
}
