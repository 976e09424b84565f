package tracker

import (
	"go.uber.org/zap"

	"github.com/fooddelivery/backend/internal/domain/order"
)

// Notifier receives one callback per observed status transition
type Notifier interface {
	NotifyStatusChange(orderID int64, oldStatus, newStatus order.Status)
}

// LogNotifier reports status transitions through the logger
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// NotifyStatusChange logs one transition
func (n *LogNotifier) NotifyStatusChange(orderID int64, oldStatus, newStatus order.Status) {
	n.logger.Info("order status changed",
		zap.Int64("order_id", orderID),
		zap.String("old_status", string(oldStatus)),
		zap.String("new_status", string(newStatus)),
	)
}
