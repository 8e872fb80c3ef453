package notifier

import (
	"context"

	"github.com/arkivo/arkivo-slack/pkg/types"
)

type Notifier interface {
	Notify(context.Context, *types.SyncResult) error
}
