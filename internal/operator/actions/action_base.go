package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/service"
)

// IAction is a store mutation queued through the operator. Perform runs on
// the operator worker; actions carry their own result fields, filled in
// before Perform returns.
type IAction interface {
	Perform(ctx context.Context, svc *service.RecordService) error
}
