package account

// Account is the API response model for an account in the stored ledger.
type Account struct {
	ID               string `json:"id" doc:"Account UUID"`
	TransactionCount int64  `json:"transactionCount" doc:"Stored transactions"`
	FirstDate        string `json:"firstDate" doc:"Date of the earliest stored transaction"`
	LastDate         string `json:"lastDate" doc:"Date of the latest stored transaction"`
	Balance          string `json:"balance" doc:"Decimal sum of the signed stored amounts"`
}
