package importer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jezdibolt/backend-go/internal/domain/company"
	"github.com/jezdibolt/backend-go/internal/domain/earnings"
	"github.com/jezdibolt/backend-go/internal/domain/importer"
	"github.com/jezdibolt/backend-go/internal/domain/payconfig"
	"github.com/jezdibolt/backend-go/internal/domain/user"
	"github.com/jezdibolt/backend-go/internal/pkg/database"
	"github.com/jezdibolt/backend-go/internal/pkg/events"
	"github.com/jezdibolt/backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// defaultDriverPassword is the placeholder credential for accounts
// auto-created during import; drivers reset it on first login.
const defaultDriverPassword = "Default123"

type ImportServiceImpl struct {
	db           *database.DB
	batchRepo    importer.BatchRepository
	earningsRepo earnings.Repository
	userRepo     user.Repository
	companyRepo  company.Repository
	payConfigSvc payconfig.Service
	hub          *events.Hub
}

func NewImportService(
	db *database.DB,
	batchRepo importer.BatchRepository,
	earningsRepo earnings.Repository,
	userRepo user.Repository,
	companyRepo company.Repository,
	payConfigSvc payconfig.Service,
	hub *events.Hub,
) importer.Service {
	return &ImportServiceImpl{
		db:           db,
		batchRepo:    batchRepo,
		earningsRepo: earningsRepo,
		userRepo:     userRepo,
		companyRepo:  companyRepo,
		payConfigSvc: payConfigSvc,
		hub:          hub,
	}
}

// ImportFiles runs each file in its own transaction. The rate table is
// snapshotted once up front so every row of the request resolves against
// the same configuration.
func (s *ImportServiceImpl) ImportFiles(ctx context.Context, files []importer.FilePayload) (importer.ImportResult, error) {
	table, err := s.payConfigSvc.Snapshot(ctx)
	if err != nil {
		return importer.ImportResult{}, err
	}

	var result importer.ImportResult
	for _, file := range files {
		fr := s.importFile(ctx, file, table)
		result.Results = append(result.Results, fr)
		result.TotalImported += fr.Imported
		result.TotalSkipped += fr.Skipped

		if fr.Error == "" {
			s.hub.Broadcast(events.Event{Type: events.TypeImportCompleted, Data: fr})
		}
	}

	return result, nil
}

func (s *ImportServiceImpl) importFile(ctx context.Context, file importer.FilePayload, table payconfig.RateTable) importer.FileResult {
	fr := importer.FileResult{Filename: file.Filename}

	// Idempotent re-upload: the filename is a natural key.
	existing, err := s.batchRepo.FindByFilename(ctx, file.Filename)
	if err == nil {
		fr.BatchID = existing.ID
		return fr
	}
	if !errors.Is(err, importer.ErrBatchNotFound) {
		fr.Error = err.Error()
		return fr
	}

	rows, err := readFile(file)
	if err != nil {
		fr.Error = err.Error()
		return fr
	}
	if len(rows) == 0 {
		fr.Error = importer.ErrEmptyFile.Error()
		return fr
	}

	cols, err := mapHeader(rows[0])
	if err != nil {
		fr.Error = err.Error()
		return fr
	}

	meta := parseFileMeta(file.Filename)

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		batch, err := s.batchRepo.Create(txCtx, importer.Batch{
			Filename: file.Filename,
			ISOWeek:  meta.ISOWeek,
			Company:  meta.Company,
			City:     meta.City,
		})
		if err != nil {
			return err
		}
		fr.BatchID = batch.ID

		employer, err := s.companyRepo.FindOrCreateByName(txCtx, meta.Company, meta.City)
		if err != nil {
			return err
		}

		for _, cells := range rows[1:] {
			cand := parseRow(cells, cols)
			if cand == nil {
				continue
			}

			account, err := s.resolveDriver(txCtx, cand, employer.ID)
			if err != nil {
				return err
			}

			if cand.UniqueID != nil {
				exists, err := s.earningsRepo.ExistsInBatch(txCtx, *cand.UniqueID, batch.ID)
				if err != nil {
					return err
				}
				if exists {
					fr.Skipped++
					continue
				}
			}

			if _, err := s.earningsRepo.Create(txCtx, buildRecord(cand, account.ID, batch.ID, table)); err != nil {
				return err
			}
			fr.Imported++
		}

		return nil
	})
	if err != nil {
		return importer.FileResult{Filename: file.Filename, Error: err.Error()}
	}

	return fr
}

// resolveDriver finds the account by normalized e-mail or creates one
// with driver defaults, and attaches the batch's employer to accounts
// without one.
func (s *ImportServiceImpl) resolveDriver(ctx context.Context, cand *rowCandidate, companyID int) (user.User, error) {
	account, err := s.userRepo.FindByEmail(ctx, cand.Email)
	if err == nil {
		if account.CompanyID == nil {
			if err := s.userRepo.AttachCompany(ctx, account.ID, companyID); err != nil {
				return user.User{}, err
			}
		}
		return account, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultDriverPassword), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash default password: %w", err)
	}

	name := cand.Email
	if i := strings.Index(cand.Email, "@"); i > 0 {
		name = cand.Email[:i]
	}
	if cand.Name != nil {
		name = *cand.Name
	}

	return s.userRepo.Create(ctx, user.User{
		Name:         name,
		Email:        cand.Email,
		Contact:      cand.Contact,
		Role:         user.RoleDriver,
		PasswordHash: string(hash),
		CompanyID:    &companyID,
	})
}

// buildRecord computes the cached baseline persisted at import time:
// derived hours, resolved rate, earnings = rate*hours + tips and the
// initial settlement = earnings - cashTaken. The adjustment ledger
// refines the settlement later.
func buildRecord(cand *rowCandidate, userID, batchID int, table payconfig.RateTable) earnings.Record {
	hours := cand.HoursWorked()

	grossPerHour := 0.0
	if cand.HourlyGross != nil {
		grossPerHour = cand.HourlyGross.InexactFloat64()
	}
	rate := table.ResolveRate(hours.InexactFloat64(), grossPerHour)

	tips := decimal.Zero
	if cand.Tips != nil {
		tips = *cand.Tips
	}
	cash := decimal.Zero
	if cand.CashTaken != nil {
		cash = *cand.CashTaken
	}

	earned := decimal.NewFromInt(int64(rate)).Mul(hours).Add(tips)
	settlement := earned.Sub(cash)

	return earnings.Record{
		UserID:           userID,
		BatchID:          batchID,
		DriverIdentifier: cand.DriverID,
		UniqueIdentifier: cand.UniqueID,
		GrossTotal:       cand.GrossTotal,
		Tips:             cand.Tips,
		HourlyGross:      cand.HourlyGross,
		CashTaken:        cand.CashTaken,
		HoursWorked:      hours,
		AppliedRate:      &rate,
		Earnings:         &earned,
		Settlement:       &settlement,
	}
}

func readFile(file importer.FilePayload) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".xlsx":
		return readXLSX(file.Data)
	case ".csv":
		return readCSV(file.Data)
	default:
		return nil, fmt.Errorf("%w: %s", importer.ErrUnsupportedFormat, filepath.Ext(file.Filename))
	}
}

func (s *ImportServiceImpl) ListBatches(ctx context.Context) ([]importer.BatchResponse, error) {
	batches, err := s.batchRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]importer.BatchResponse, 0, len(batches))
	for _, b := range batches {
		responses = append(responses, importer.BatchResponse{
			ID:        b.ID,
			Filename:  b.Filename,
			ISOWeek:   b.ISOWeek,
			Company:   b.Company,
			City:      b.City,
			CreatedAt: b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return responses, nil
}
