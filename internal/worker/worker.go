package worker

import (
	"context"
)

// Worker - фоновая задача процесса. Start блокируется до отмены ctx или Stop.
type Worker interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}
