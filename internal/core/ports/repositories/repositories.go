package repositories

// RepositoryProvider bundles all repository facades for dependency injection
// into the service container.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryFacade
	MachineRepo     MachineRepositoryFacade
	CatalogRepo     CatalogRepositoryFacade
	BranchRepo      BranchRepositoryFacade
	EmployeeRepo    EmployeeRepositoryFacade
	ReportingRepo   ReportingRepository
}
