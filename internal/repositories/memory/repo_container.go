package memory

import (
	portsrepo "github.com/SscSPs/venue_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider builds fresh in-memory stores. Data lives as long as the process.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BookingRepo: newBookingRepository(),
		LedgerRepo:  newLedgerRepository(),
	}
}
