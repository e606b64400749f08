package transfer

// Saga failure messages. The exact wording is part of the API contract:
// callers match on these strings when polling a failed transaction.
const (
	msgValueNotPositive    = "Transaction value must be a positive number"
	msgInsufficientFunds   = "No funds available in origin account"
	msgTransactionNotFound = "Transaction not found"
)
