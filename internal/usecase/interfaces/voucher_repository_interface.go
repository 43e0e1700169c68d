package interfaces

import (
	"context"

	"cartao_fidelidade/internal/domain/entities"
)

// IVoucherRepository exposes read access to issued vouchers. Voucher creation
// lives in ILedgerRepository.Redeem because it must share the redemption
// transaction.

type IVoucherRepository interface {
	ListByEstablishmentID(ctx context.Context, establishmentID string) ([]entities.Voucher, error)
	ListByCardID(ctx context.Context, cardID string) ([]entities.Voucher, error)
}
