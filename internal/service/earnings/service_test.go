package earnings

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jezdibolt/backend-go/internal/domain/earnings"
	"github.com/jezdibolt/backend-go/internal/domain/importer"
	"github.com/jezdibolt/backend-go/internal/domain/user"
	"github.com/jezdibolt/backend-go/internal/pkg/database"
	"github.com/jezdibolt/backend-go/internal/pkg/events"
	"github.com/jezdibolt/backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// testInit connects to the database named by TEST_DATABASE_URL. Tests in
// this file are skipped when the variable is unset.
func testInit(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if testDB != nil {
		return
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(os.Getenv("TEST_DATABASE_URL"))
	require.NoError(t, err, "failed to connect to test database")
}

func truncateTables(t *testing.T, ctx context.Context) {
	tables := []string{"earning_adjustments", "bolt_earnings", "import_batches", "rental_records", "users", "companies"}
	for _, table := range tables {
		_, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func newTestEarningsService() earnings.Service {
	return NewEarningsService(
		testDB,
		postgresql.NewEarningsRepository(testDB),
		postgresql.NewAdjustmentRepository(testDB),
		postgresql.NewUserRepository(testDB),
		postgresql.NewRentalRepository(testDB),
		postgresql.NewBatchRepository(testDB),
		events.NewHub(),
	)
}

func createTestUser(t *testing.T, ctx context.Context, role user.Role) user.User {
	userRepo := postgresql.NewUserRepository(testDB)
	account, err := userRepo.Create(ctx, user.User{
		Name:         "Test User",
		Email:        fmt.Sprintf("user-%d@example.com", time.Now().UnixNano()),
		Role:         role,
		PasswordHash: "x",
	})
	require.NoError(t, err)
	return account
}

func createTestRecord(t *testing.T, ctx context.Context, userID int, gross *decimal.Decimal, earned decimal.Decimal) earnings.Record {
	batchRepo := postgresql.NewBatchRepository(testDB)
	batch, err := batchRepo.Create(ctx, importer.Batch{
		Filename: fmt.Sprintf("test-%d.xlsx", time.Now().UnixNano()),
		ISOWeek:  "2026-W10",
		Company:  "Test Fleet",
	})
	require.NoError(t, err)

	rec, err := postgresql.NewEarningsRepository(testDB).Create(ctx, earnings.Record{
		UserID:      userID,
		BatchID:     batch.ID,
		GrossTotal:  gross,
		HoursWorked: decimal.Zero,
		Earnings:    &earned,
		Settlement:  &earned,
	})
	require.NoError(t, err)
	return rec
}

func TestRecalculateForRoleChange_TogglesRenterFees(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	renter := createTestUser(t, ctx, user.RoleRenter)
	gross := decimal.NewFromInt(10000)
	rec := createTestRecord(t, ctx, renter.ID, &gross, decimal.NewFromInt(5000))

	_, err := testDB.Exec(ctx,
		`INSERT INTO rental_records (user_id, price_per_week) VALUES ($1, $2)`,
		renter.ID, 3000,
	)
	require.NoError(t, err)

	svc := newTestEarningsService()
	require.NoError(t, svc.RecalculateForRoleChange(ctx, renter.ID))

	adjustmentRepo := postgresql.NewAdjustmentRepository(testDB)
	serviceItems, err := adjustmentRepo.ListByRecordAndType(ctx, rec.ID, earnings.TypeServiceFee)
	require.NoError(t, err)
	require.Len(t, serviceItems, 1)
	// 4% of the 10000 gross, stored negative.
	assert.True(t, serviceItems[0].Amount.Equal(decimal.NewFromInt(-400)), serviceItems[0].Amount.String())

	rentalItems, err := adjustmentRepo.ListByRecordAndType(ctx, rec.ID, earnings.TypeRentalFee)
	require.NoError(t, err)
	require.Len(t, rentalItems, 1)
	assert.True(t, rentalItems[0].Amount.Equal(decimal.NewFromInt(-3000)), rentalItems[0].Amount.String())

	recordRepo := postgresql.NewEarningsRepository(testDB)
	got, err := recordRepo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Settlement)
	assert.True(t, got.Settlement.Equal(decimal.NewFromInt(1600)), got.Settlement.String())
	assert.True(t, got.ServiceFee.Equal(decimal.NewFromInt(-400)))
	assert.True(t, got.RentalFee.Equal(decimal.NewFromInt(-3000)))

	// Back to driver: both fee types disappear and the settlement
	// returns to the imported baseline.
	_, err = testDB.Exec(ctx, `UPDATE users SET role = $2 WHERE id = $1`, renter.ID, user.RoleDriver)
	require.NoError(t, err)
	require.NoError(t, svc.RecalculateForRoleChange(ctx, renter.ID))

	serviceItems, err = adjustmentRepo.ListByRecordAndType(ctx, rec.ID, earnings.TypeServiceFee)
	require.NoError(t, err)
	assert.Empty(t, serviceItems)
	rentalItems, err = adjustmentRepo.ListByRecordAndType(ctx, rec.ID, earnings.TypeRentalFee)
	require.NoError(t, err)
	assert.Empty(t, rentalItems)

	got, err = recordRepo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, got.Settlement.Equal(decimal.NewFromInt(5000)), got.Settlement.String())
	assert.True(t, got.ServiceFee.IsZero())
	assert.True(t, got.RentalFee.IsZero())
}

func TestRecalculateForRoleChange_RenterWithoutGross(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	renter := createTestUser(t, ctx, user.RoleRenter)
	rec := createTestRecord(t, ctx, renter.ID, nil, decimal.NewFromInt(2000))

	svc := newTestEarningsService()
	require.NoError(t, svc.RecalculateForRoleChange(ctx, renter.ID))

	adjustmentRepo := postgresql.NewAdjustmentRepository(testDB)

	// The service fee item is written even without a gross figure, with
	// amount zero.
	serviceItems, err := adjustmentRepo.ListByRecordAndType(ctx, rec.ID, earnings.TypeServiceFee)
	require.NoError(t, err)
	require.Len(t, serviceItems, 1)
	assert.True(t, serviceItems[0].Amount.IsZero(), serviceItems[0].Amount.String())

	// No rental record, no rental fee item.
	rentalItems, err := adjustmentRepo.ListByRecordAndType(ctx, rec.ID, earnings.TypeRentalFee)
	require.NoError(t, err)
	assert.Empty(t, rentalItems)

	got, err := postgresql.NewEarningsRepository(testDB).GetByID(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Settlement)
	assert.True(t, got.Settlement.Equal(decimal.NewFromInt(2000)), got.Settlement.String())
}
