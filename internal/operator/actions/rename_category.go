package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/service"
)

type RenameCategory struct {
	OldCategory string
	NewCategory string

	// Result holds the renamed records after a successful Perform.
	Result []*service.Record

	IAction
}

func (r *RenameCategory) Perform(ctx context.Context, svc *service.RecordService) error {
	records, err := svc.RenameCategory(ctx, r.OldCategory, r.NewCategory)
	if err != nil {
		return err
	}

	r.Result = records
	return nil
}
