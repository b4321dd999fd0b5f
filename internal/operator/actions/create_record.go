package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/service"
)

type CreateRecord struct {
	Payload service.Payload

	// Result holds the created record after a successful Perform.
	Result *service.Record

	IAction
}

func (c *CreateRecord) Perform(ctx context.Context, svc *service.RecordService) error {
	record, err := svc.Create(ctx, c.Payload)
	if err != nil {
		return err
	}

	c.Result = record
	return nil
}
