package invoice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/caja/internal/apperr"
	"github.com/MrJamesThe3rd/caja/internal/invoice"
)

type decimalEq struct{ want decimal.Decimal }

func (m decimalEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalEq) String() string { return "is decimal " + m.want.String() }

func TestService_ApplyPayment(t *testing.T) {
	invoiceID := uuid.New()

	pending := func() *invoice.Invoice {
		return &invoice.Invoice{
			ID:        invoiceID,
			Total:     decimal.NewFromInt(1000),
			TotalPaid: decimal.NewFromInt(400),
		}
	}

	type testCase struct {
		name      string
		amount    decimal.Decimal
		setupMock func(repo *invoice.MockRepository, ptx *invoice.MockPaymentTx)
		wantErr   error
		wantKind  apperr.Kind
	}

	tests := []testCase{
		{
			name:   "PartialPayment",
			amount: decimal.NewFromInt(250),
			setupMock: func(repo *invoice.MockRepository, ptx *invoice.MockPaymentTx) {
				repo.EXPECT().BeginPayment(gomock.Any()).Return(ptx, nil)
				ptx.EXPECT().GetInvoiceForUpdate(gomock.Any(), invoiceID).Return(pending(), nil)
				ptx.EXPECT().UpdateTotalPaid(gomock.Any(), invoiceID, decimalEq{decimal.NewFromInt(650)}).Return(nil)
				ptx.EXPECT().Commit().Return(nil)
				ptx.EXPECT().Rollback().Return(nil)
			},
		},
		{
			name:   "PaysInFull",
			amount: decimal.NewFromInt(600),
			setupMock: func(repo *invoice.MockRepository, ptx *invoice.MockPaymentTx) {
				repo.EXPECT().BeginPayment(gomock.Any()).Return(ptx, nil)
				ptx.EXPECT().GetInvoiceForUpdate(gomock.Any(), invoiceID).Return(pending(), nil)
				ptx.EXPECT().UpdateTotalPaid(gomock.Any(), invoiceID, decimalEq{decimal.NewFromInt(1000)}).Return(nil)
				ptx.EXPECT().Commit().Return(nil)
				ptx.EXPECT().Rollback().Return(nil)
			},
		},
		{
			name:   "Overpayment",
			amount: decimal.NewFromInt(601),
			setupMock: func(repo *invoice.MockRepository, ptx *invoice.MockPaymentTx) {
				repo.EXPECT().BeginPayment(gomock.Any()).Return(ptx, nil)
				ptx.EXPECT().GetInvoiceForUpdate(gomock.Any(), invoiceID).Return(pending(), nil)
				ptx.EXPECT().Rollback().Return(nil)
			},
			wantErr:  invoice.ErrExceedsRemaining,
			wantKind: apperr.KindValidation,
		},
		{
			name:     "NonPositive",
			amount:   decimal.Zero,
			wantErr:  invoice.ErrNonPositive,
			wantKind: apperr.KindValidation,
		},
		{
			name:   "UnknownInvoice",
			amount: decimal.NewFromInt(10),
			setupMock: func(repo *invoice.MockRepository, ptx *invoice.MockPaymentTx) {
				repo.EXPECT().BeginPayment(gomock.Any()).Return(ptx, nil)
				ptx.EXPECT().GetInvoiceForUpdate(gomock.Any(), invoiceID).Return(nil, invoice.ErrNotFound)
				ptx.EXPECT().Rollback().Return(nil)
			},
			wantErr:  invoice.ErrNotFound,
			wantKind: apperr.KindNotFound,
		},
		{
			name:   "BeginFails",
			amount: decimal.NewFromInt(10),
			setupMock: func(repo *invoice.MockRepository, _ *invoice.MockPaymentTx) {
				repo.EXPECT().BeginPayment(gomock.Any()).Return(nil, errors.New("pool exhausted"))
			},
			wantKind: apperr.KindPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			ptx := invoice.NewMockPaymentTx(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, ptx)
			}

			err := invoice.NewService(repo).ApplyPayment(context.Background(), invoiceID, tt.amount)

			if tt.wantKind == apperr.KindUnknown {
				assert.NoError(t, err)
				return
			}

			assert.Equal(t, tt.wantKind, apperr.KindOf(err))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestInvoice_Outstanding(t *testing.T) {
	inv := &invoice.Invoice{Total: decimal.RequireFromString("99.90"), TotalPaid: decimal.RequireFromString("99.9")}

	assert.True(t, inv.Outstanding().IsZero())
	assert.True(t, inv.IsPaid())
}
