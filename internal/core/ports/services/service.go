package services

// ServiceContainer bundles all service facades for dependency injection into
// the handler layer.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Payment     PaymentSvcFacade
	Machine     MachineSvcFacade
	Catalog     CatalogSvcFacade
	Branch      BranchSvcFacade
	Employee    EmployeeSvcFacade
	Auth        AuthSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
	Reporting   ReportingSvcFacade
}
