package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/service"
)

type DeleteRecord struct {
	ID string

	// Result holds the removed record after a successful Perform.
	Result *service.Record

	IAction
}

func (d *DeleteRecord) Perform(ctx context.Context, svc *service.RecordService) error {
	record, err := svc.Delete(ctx, d.ID)
	if err != nil {
		return err
	}

	d.Result = record
	return nil
}
