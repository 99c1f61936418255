package services

import (
	portsrepo "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/repositories"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher portssvc.TransactionEventPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Catalog and machine services are dependencies of the transaction service,
	// so they come first.
	container.Catalog = NewCatalogService(repos.CatalogRepo)
	container.Machine = NewMachineService(repos.MachineRepo)
	container.Branch = NewBranchService(repos.BranchRepo)

	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.BranchRepo,
		container.Machine,
		container.Catalog,
		publisher,
	)
	container.Payment = NewPaymentService(container.Transaction)

	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Auth = NewAuthService(cfg, container.Employee)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
