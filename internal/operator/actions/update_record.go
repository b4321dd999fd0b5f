package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/service"
)

type UpdateRecord struct {
	ID      string
	Payload service.Payload

	// Result holds the updated record after a successful Perform.
	Result *service.Record

	IAction
}

func (u *UpdateRecord) Perform(ctx context.Context, svc *service.RecordService) error {
	record, err := svc.Update(ctx, u.ID, u.Payload)
	if err != nil {
		return err
	}

	u.Result = record
	return nil
}
