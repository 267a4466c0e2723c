package ledger

import "errors"

// Rejection reasons. Every rejection leaves the ledger untouched; none
// is fatal to the caller. Wrap with fmt.Errorf and test with errors.Is.
var (
	ErrInvalidAmount    = errors.New("amount must be a positive number")
	ErrMissingField     = errors.New("missing required field")
	ErrSameAccount      = errors.New("debit and credit cannot be the same account")
	ErrInvalidDate      = errors.New("invalid date")
	ErrDuplicateAccount = errors.New("account already exists")
	ErrAccountInUse     = errors.New("account is used in transactions")
	ErrUnknownAccount   = errors.New("unknown account")
	ErrInvalidType      = errors.New("invalid account type")
	ErrEquation         = errors.New("accounting equation does not balance")
)
