package server

import (
	"fmt"
	"time"

	v1 "github.com/billfeed/billfeed/gen/proto/billfeed/v1"
	"github.com/billfeed/billfeed/gen/ent"
)

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func fmtAmount(f *float64) string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *f)
}

func toPBBill(b *ent.Bill) *v1.Bill {
	return &v1.Bill{
		Id:            b.ID.String(),
		Bank:          b.Bank,
		TradeDate:     fmtDate(b.TradeDate),
		RecordDate:    fmtDate(b.RecordDate),
		Description:   b.Description,
		AmountCny:     fmtAmount(b.AmountCny),
		CardLast4:     b.CardLast4,
		AmountForeign: fmtAmount(b.AmountForeign),
		Currency:      b.Currency,
		Status:        b.Status,
		RawLine:       b.RawLine,
	}
}

func toPBBills(bills []*ent.Bill) []*v1.Bill {
	out := make([]*v1.Bill, 0, len(bills))
	for _, b := range bills {
		out = append(out, toPBBill(b))
	}
	return out
}
