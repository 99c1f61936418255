package pgsql

import (
	portsrepo "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		MachineRepo:     newPgxMachineRepository(dbPool),
		CatalogRepo:     newPgxCatalogRepository(dbPool),
		BranchRepo:      newPgxBranchRepository(dbPool),
		EmployeeRepo:    newPgxEmployeeRepository(dbPool),
		ReportingRepo:   newPgxReportingRepository(dbPool),
	}
}
