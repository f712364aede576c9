package postgresql_test

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
	"github.com/jezdibolt/backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// testInit connects to the database named by TEST_DATABASE_URL. Tests in
// this package are skipped when the variable is unset.
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

func createTestDriver(t *testing.T, ctx context.Context) user.User {
	userRepo := postgresql.NewUserRepository(testDB)
	email := fmt.Sprintf("driver-%d@example.com", time.Now().UnixNano())
	account, err := userRepo.Create(ctx, user.User{
		Name:         "Test Driver",
		Email:        email,
		Role:         user.RoleDriver,
		PasswordHash: "x",
	})
	require.NoError(t, err)
	return account
}

func createTestBatch(t *testing.T, ctx context.Context) importer.Batch {
	batchRepo := postgresql.NewBatchRepository(testDB)
	batch, err := batchRepo.Create(ctx, importer.Batch{
		Filename: fmt.Sprintf("test-%d.xlsx", time.Now().UnixNano()),
		ISOWeek:  "2026-W10",
		Company:  "Test Fleet",
	})
	require.NoError(t, err)
	return batch
}

func TestEarningsRepository_CreateAndGet(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	driver := createTestDriver(t, ctx)
	batch := createTestBatch(t, ctx)
	repo := postgresql.NewEarningsRepository(testDB)

	gross := decimal.NewFromInt(6400)
	earned := decimal.NewFromInt(6400)
	rate := 160
	uniqueID := "U-1"
	created, err := repo.Create(ctx, earnings.Record{
		UserID:           driver.ID,
		BatchID:          batch.ID,
		UniqueIdentifier: &uniqueID,
		GrossTotal:       &gross,
		HoursWorked:      decimal.NewFromInt(40),
		AppliedRate:      &rate,
		Earnings:         &earned,
		Settlement:       &earned,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, driver.ID, got.UserID)
	assert.Equal(t, driver.Email, got.Email)
	assert.Equal(t, user.RoleDriver, got.Role)
	require.NotNil(t, got.Settlement)
	assert.True(t, got.Settlement.Equal(earned))
}

func TestEarningsRepository_GetByID_NotFound(t *testing.T) {
	testInit(t)
	ctx := context.Background()

	repo := postgresql.NewEarningsRepository(testDB)
	_, err := repo.GetByID(ctx, 999999)
	assert.ErrorIs(t, err, earnings.ErrRecordNotFound)
}

func TestEarningsRepository_ExistsInBatch(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	driver := createTestDriver(t, ctx)
	batch := createTestBatch(t, ctx)
	repo := postgresql.NewEarningsRepository(testDB)

	uniqueID := "U-77"
	_, err := repo.Create(ctx, earnings.Record{
		UserID:           driver.ID,
		BatchID:          batch.ID,
		UniqueIdentifier: &uniqueID,
		HoursWorked:      decimal.Zero,
	})
	require.NoError(t, err)

	exists, err := repo.ExistsInBatch(ctx, "U-77", batch.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsInBatch(ctx, "U-78", batch.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAdjustmentRepository_ReplaceForType(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	driver := createTestDriver(t, ctx)
	batch := createTestBatch(t, ctx)
	earningsRepo := postgresql.NewEarningsRepository(testDB)
	adjustmentRepo := postgresql.NewAdjustmentRepository(testDB)

	rec, err := earningsRepo.Create(ctx, earnings.Record{
		UserID:      driver.ID,
		BatchID:     batch.ID,
		HoursWorked: decimal.Zero,
	})
	require.NoError(t, err)

	items := []earnings.Adjustment{
		{Type: earnings.TypeBonus, Category: "weekend", Amount: decimal.NewFromInt(300)},
		{Type: earnings.TypeBonus, Category: "referral", Amount: decimal.NewFromInt(500)},
	}
	require.NoError(t, adjustmentRepo.ReplaceForType(ctx, rec.ID, earnings.TypeBonus, items))

	listed, err := adjustmentRepo.ListByRecordAndType(ctx, rec.ID, earnings.TypeBonus)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// Replacing swaps the whole list.
	require.NoError(t, adjustmentRepo.ReplaceForType(ctx, rec.ID, earnings.TypeBonus, items[:1]))
	listed, err = adjustmentRepo.ListByRecordAndType(ctx, rec.ID, earnings.TypeBonus)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "weekend", listed[0].Category)
}

func TestPayConfigRepository_SeedDefaults(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)
	_, err := testDB.Exec(ctx, "TRUNCATE TABLE pay_rates, pay_rules CASCADE")
	require.NoError(t, err)

	repo := postgresql.NewPayConfigRepository(testDB)
	require.NoError(t, repo.SeedDefaults(ctx))

	tiers, err := repo.ListTiers(ctx)
	require.NoError(t, err)
	require.Len(t, tiers, 5)
	assert.Equal(t, 140, tiers[0].RatePerHour)
	assert.Nil(t, tiers[4].MaxGross)

	rules, err := repo.ListRules(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 1)

	// Seeding is idempotent.
	require.NoError(t, repo.SeedDefaults(ctx))
	tiers, err = repo.ListTiers(ctx)
	require.NoError(t, err)
	require.Len(t, tiers, 5)
}
