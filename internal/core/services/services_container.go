package services

import (
	portsrepo "github.com/SscSPs/venue_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/venue_ledger_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Booking: NewBookingService(repos.BookingRepo),
		Finance: NewFinanceService(repos.LedgerRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.BookingSvcFacade = (*bookingService)(nil)
	_ portssvc.FinanceSvcFacade = (*financeService)(nil)
)
