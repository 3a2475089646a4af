package dto

// TransactionQuery filters a user's transaction stream at the store level.
// Nil pointer fields mean "no filter".
type TransactionQuery struct {
	Category *string
	Account  *string
	Merchant *string
	DateFrom *string
	DateTo   *string
	Limit    int
}
