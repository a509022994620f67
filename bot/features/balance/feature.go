package balance

import (
	"zocker/domain/interfaces"
)

// Feature handles the balance and daily reward commands
type Feature struct {
	ledger interfaces.LedgerService
}

// New creates the balance feature
func New(ledger interfaces.LedgerService) *Feature {
	return &Feature{ledger: ledger}
}
