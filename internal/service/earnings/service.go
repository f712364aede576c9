package earnings

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jezdibolt/backend-go/internal/domain/earnings"
	"github.com/jezdibolt/backend-go/internal/domain/importer"
	"github.com/jezdibolt/backend-go/internal/domain/rental"
	"github.com/jezdibolt/backend-go/internal/domain/user"
	"github.com/jezdibolt/backend-go/internal/pkg/database"
	"github.com/jezdibolt/backend-go/internal/pkg/events"
	"github.com/jezdibolt/backend-go/internal/pkg/pdf"
	"github.com/jezdibolt/backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type EarningsServiceImpl struct {
	db             *database.DB
	recordRepo     earnings.Repository
	adjustmentRepo earnings.AdjustmentRepository
	userRepo       user.Repository
	rentalRepo     rental.Repository
	batchRepo      importer.BatchRepository
	hub            *events.Hub
}

func NewEarningsService(
	db *database.DB,
	recordRepo earnings.Repository,
	adjustmentRepo earnings.AdjustmentRepository,
	userRepo user.Repository,
	rentalRepo rental.Repository,
	batchRepo importer.BatchRepository,
	hub *events.Hub,
) earnings.Service {
	return &EarningsServiceImpl{
		db:             db,
		recordRepo:     recordRepo,
		adjustmentRepo: adjustmentRepo,
		userRepo:       userRepo,
		rentalRepo:     rentalRepo,
		batchRepo:      batchRepo,
		hub:            hub,
	}
}

// GetAdjustments lists one record's items of a type. Amounts are
// returned as absolute values; the sign convention is internal to the
// settlement computation.
func (s *EarningsServiceImpl) GetAdjustments(ctx context.Context, recordID int, typ earnings.AdjustmentType) ([]earnings.AdjustmentItemResponse, error) {
	if !validAdjustmentType(typ) {
		return nil, earnings.ErrUnknownAdjustmentType
	}

	if _, err := s.recordRepo.GetByID(ctx, recordID); err != nil {
		return nil, err
	}

	items, err := s.adjustmentRepo.ListByRecordAndType(ctx, recordID, typ)
	if err != nil {
		return nil, err
	}

	responses := make([]earnings.AdjustmentItemResponse, 0, len(items))
	for _, it := range items {
		responses = append(responses, earnings.AdjustmentItemResponse{
			ID:       it.ID,
			Category: it.Category,
			Amount:   it.Amount.Abs(),
			Note:     it.Note,
		})
	}
	return responses, nil
}

// ReplaceAdjustments swaps the record's full item list of one type and
// recomputes the settlement, atomically. Penalty amounts are stored
// positive, fee and VAT amounts negative, regardless of the sign the
// caller sent.
func (s *EarningsServiceImpl) ReplaceAdjustments(ctx context.Context, recordID int, typ earnings.AdjustmentType, req earnings.AdjustmentRequest) error {
	if !validAdjustmentType(typ) {
		return earnings.ErrUnknownAdjustmentType
	}
	if err := req.Validate(); err != nil {
		return err
	}

	items := make([]earnings.Adjustment, 0, len(req.Items))
	for _, in := range req.Items {
		items = append(items, earnings.Adjustment{
			EarningID: recordID,
			Type:      typ,
			Category:  in.Category,
			Amount:    normalizeAmount(typ, in.Amount),
			Note:      in.Note,
		})
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		rec, err := s.recordRepo.GetByID(txCtx, recordID)
		if err != nil {
			return err
		}
		if err := s.adjustmentRepo.ReplaceForType(txCtx, recordID, typ, items); err != nil {
			return err
		}
		return s.recompute(txCtx, rec)
	})
	if err != nil {
		return err
	}

	s.hub.Broadcast(events.Event{Type: events.TypeEarningUpdated, Data: map[string]int{"id": recordID}})
	return nil
}

// normalizeAmount enforces the storage sign convention per type.
func normalizeAmount(typ earnings.AdjustmentType, amount decimal.Decimal) decimal.Decimal {
	switch typ {
	case earnings.TypeRentalFee, earnings.TypeServiceFee, earnings.TypeVATDeduction:
		return amount.Abs().Neg()
	default:
		return amount.Abs()
	}
}

func validAdjustmentType(typ earnings.AdjustmentType) bool {
	switch typ {
	case earnings.TypeBonus, earnings.TypePenalty, earnings.TypeRentalFee,
		earnings.TypeServiceFee, earnings.TypeVATDeduction:
		return true
	}
	return false
}

// recompute re-derives the settlement from the current ledger and
// writes it together with the cached per-type sums. A balance moving
// away from zero reopens a record previously marked paid.
func (s *EarningsServiceImpl) recompute(ctx context.Context, rec earnings.Record) error {
	items, err := s.adjustmentRepo.ListByRecord(ctx, rec.ID)
	if err != nil {
		return err
	}
	sums := earnings.SumAdjustments(items)

	settlement := earnings.ComputeSettlement(
		zeroIfNil(rec.Earnings),
		zeroIfNil(rec.CashTaken),
		sums,
		rec.PartiallyPaid,
	)

	reopen := rec.Paid && !earnings.IsSettled(settlement)
	return s.recordRepo.UpdateSettlement(ctx, rec.ID, sums, settlement, reopen)
}

func zeroIfNil(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// RecalculateForRoleChange re-derives the automatic fee items on every
// open record of the user after a role switch. Renters carry a service
// fee of 4% of the gross total and their weekly rental price; drivers
// carry neither.
func (s *EarningsServiceImpl) RecalculateForRoleChange(ctx context.Context, driverID int) error {
	role, err := s.userRepo.GetRole(ctx, driverID)
	if err != nil {
		return err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		records, err := s.recordRepo.ListUnpaidByUser(txCtx, driverID)
		if err != nil {
			return err
		}

		for _, rec := range records {
			if role == user.RoleRenter {
				if err := s.applyRenterFees(txCtx, rec); err != nil {
					return err
				}
			} else {
				types := []earnings.AdjustmentType{earnings.TypeRentalFee, earnings.TypeServiceFee}
				if err := s.adjustmentRepo.DeleteTypes(txCtx, rec.ID, types); err != nil {
					return err
				}
			}
			if err := s.recompute(txCtx, rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.hub.Broadcast(events.Event{Type: events.TypeEarningUpdated, Data: map[string]int{"user_id": driverID}})
	return nil
}

func (s *EarningsServiceImpl) applyRenterFees(ctx context.Context, rec earnings.Record) error {
	// The service fee item is always written, with amount zero when no
	// gross figure was imported, so the ledger shows the fee was
	// considered.
	fee := decimal.Zero
	if rec.GrossTotal != nil && rec.GrossTotal.IsPositive() {
		fee = rec.GrossTotal.Mul(earnings.ServiceFeePct).Neg()
	}
	serviceItems := []earnings.Adjustment{{
		EarningID: rec.ID,
		Type:      earnings.TypeServiceFee,
		Category:  "platform_fee",
		Amount:    fee,
	}}
	if err := s.adjustmentRepo.ReplaceForType(ctx, rec.ID, earnings.TypeServiceFee, serviceItems); err != nil {
		return err
	}

	var rentalItems []earnings.Adjustment
	weekly, err := s.rentalRepo.WeeklyPrice(ctx, rec.UserID)
	if err != nil {
		return err
	}
	if weekly != nil && weekly.IsPositive() {
		rentalItems = append(rentalItems, earnings.Adjustment{
			EarningID: rec.ID,
			Type:      earnings.TypeRentalFee,
			Category:  "vehicle_rental",
			Amount:    weekly.Neg(),
		})
	}
	return s.adjustmentRepo.ReplaceForType(ctx, rec.ID, earnings.TypeRentalFee, rentalItems)
}

// ApplyPayment records one payment against a record. The amount's sign
// is ignored; the settlement's own sign decides the direction. A
// balance within tolerance of zero closes the record.
func (s *EarningsServiceImpl) ApplyPayment(ctx context.Context, recordID int, req earnings.PayRequest) (earnings.PaymentResult, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsZero() {
		return earnings.PaymentResult{}, earnings.ErrInvalidPaymentAmount
	}

	var result earnings.PaymentResult
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		rec, err := s.recordRepo.GetByID(txCtx, recordID)
		if err != nil {
			return err
		}

		outcome := earnings.ApplyPaymentAmount(zeroIfNil(rec.Settlement), rec.PartiallyPaid, amount)

		var paidAt *time.Time
		if outcome.FullyPaid {
			now := time.Now()
			paidAt = &now
			result = earnings.PaymentResult{Status: earnings.PaymentFullyPaid, Amount: outcome.Applied}
		} else {
			result = earnings.PaymentResult{Status: earnings.PaymentPartiallyPaid, Amount: outcome.Applied}
		}

		return s.recordRepo.UpdatePayment(txCtx, recordID, outcome.Settlement, outcome.PartiallyPaid, outcome.FullyPaid, paidAt)
	})
	if err != nil {
		return earnings.PaymentResult{}, err
	}

	s.hub.Broadcast(events.Event{Type: events.TypeEarningUpdated, Data: map[string]int{"id": recordID}})
	return result, nil
}

func (s *EarningsServiceImpl) ListByBatch(ctx context.Context, batchID int) ([]earnings.Response, error) {
	if _, err := s.batchRepo.FindByID(ctx, batchID); err != nil {
		return nil, err
	}

	records, err := s.recordRepo.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

func (s *EarningsServiceImpl) ListUnpaid(ctx context.Context) ([]earnings.Response, error) {
	records, err := s.recordRepo.ListUnpaid(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// Statement renders the record as a one-page PDF.
func (s *EarningsServiceImpl) Statement(ctx context.Context, recordID int) ([]byte, error) {
	rec, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	batch, err := s.batchRepo.FindByID(ctx, rec.BatchID)
	if err != nil {
		return nil, err
	}

	return pdf.RenderStatement(pdf.StatementData{
		DriverName:    rec.UserName,
		Email:         rec.Email,
		Week:          batch.ISOWeek,
		Company:       batch.Company,
		HoursWorked:   rec.HoursWorked,
		AppliedRate:   intOrZero(rec.AppliedRate),
		Earnings:      zeroIfNil(rec.Earnings),
		CashTaken:     zeroIfNil(rec.CashTaken),
		Bonus:         rec.Bonus,
		Penalty:       rec.Penalty,
		RentalFee:     rec.RentalFee,
		ServiceFee:    rec.ServiceFee,
		VATDeduction:  rec.VATDeduction,
		PartiallyPaid: rec.PartiallyPaid,
		Settlement:    zeroIfNil(rec.Settlement),
		Paid:          rec.Paid,
	})
}

func toResponses(records []earnings.Record) []earnings.Response {
	responses := make([]earnings.Response, 0, len(records))
	for _, rec := range records {
		responses = append(responses, earnings.Response{
			ID:            rec.ID,
			UserID:        rec.UserID,
			BatchID:       rec.BatchID,
			UserName:      rec.UserName,
			Email:         rec.Email,
			Role:          string(rec.Role),
			HoursWorked:   rec.HoursWorked,
			AppliedRate:   intOrZero(rec.AppliedRate),
			GrossTotal:    zeroIfNil(rec.GrossTotal),
			Earnings:      zeroIfNil(rec.Earnings),
			CashTaken:     zeroIfNil(rec.CashTaken),
			Bonus:         rec.Bonus,
			Penalty:       rec.Penalty.Abs(),
			RentalFee:     rec.RentalFee.Abs(),
			ServiceFee:    rec.ServiceFee.Abs(),
			VATDeduction:  rec.VATDeduction.Abs(),
			PartiallyPaid: rec.PartiallyPaid,
			Settlement:    zeroIfNil(rec.Settlement),
			Paid:          rec.Paid,
		})
	}
	return responses
}

func intOrZero(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
