package transaction

// ValidationError is the closed set of reasons a draft cannot be finalized.
// Every engine failure is one of these values; there are no system failures
// inside the engine. Validation is recoverable: the caller re-renders the
// draft with the message and the user corrects their input.
type ValidationError struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrNonPositiveAmount      = &ValidationError{Code: "NON_POSITIVE_AMOUNT", Message: "transaction amount must be greater than zero"}
	ErrEmptyTitle             = &ValidationError{Code: "EMPTY_TITLE", Message: "transaction title must not be empty"}
	ErrEmptyParticipants      = &ValidationError{Code: "EMPTY_PARTICIPANTS", Message: "at least one participant is required"}
	ErrPayersUnbalanced       = &ValidationError{Code: "PAYERS_UNBALANCED", Message: "payer amounts must add up to the transaction total"}
	ErrPercentageMismatch     = &ValidationError{Code: "PERCENTAGE_MISMATCH", Message: "percentages must add up to 100"}
	ErrAmountMismatch         = &ValidationError{Code: "AMOUNT_MISMATCH", Message: "exact amounts must add up to the transaction total"}
	ErrAdjustmentsExceedTotal = &ValidationError{Code: "ADJUSTMENTS_EXCEED_TOTAL", Message: "adjustments must not exceed the transaction total"}
	ErrNoShares               = &ValidationError{Code: "NO_SHARES", Message: "at least one share is required"}
)
