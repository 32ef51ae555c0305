package domain

import "strings"

// Transaction is the subset of a wallet transaction used by the helpers.
type Transaction struct {
	TxID         string
	NativeAmount string
	// Date is a unix timestamp in seconds.
	Date     float64
	Category string
}

// IsSent returns whether the transaction moved funds out of the wallet.
func (t Transaction) IsSent() bool {
	return strings.HasPrefix(t.NativeAmount, "-")
}

// IsReceived ...
func (t Transaction) IsReceived() bool {
	return !t.IsSent()
}

// SplitTransactionCategory splits "category:sub:category" into its category
// and the rest.
func SplitTransactionCategory(fullCategory string) (category, subCategory string) {
	parts := strings.SplitN(fullCategory, ":", 2)
	category = parts[0]
	if len(parts) > 1 {
		subCategory = parts[1]
	}
	return
}
