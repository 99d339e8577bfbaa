package dto

import (
	"time"

	"funds-mover/internal/models"

	"github.com/shopspring/decimal"
)

// TransactionResponse represents a single history entry in API responses
type TransactionResponse struct {
	ID              string           `json:"id"`
	Type            string           `json:"type"`
	Label           string           `json:"label"`
	Account         models.AccountID `json:"account"`
	Amount          decimal.Decimal  `json:"amount"`
	FormattedAmount string           `json:"formatted_amount"`
	Incoming        bool             `json:"incoming"`
	Date            time.Time        `json:"date"`
	FormattedDate   string           `json:"formatted_date"`
}

// TransactionListResponse represents a list of history entries
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// NewTransactionListResponse converts history entries to their API representation
func NewTransactionListResponse(transactions []models.Transaction) TransactionListResponse {
	response := TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(transactions)),
		Total:        len(transactions),
	}

	for _, tx := range transactions {
		response.Transactions = append(response.Transactions, TransactionResponse{
			ID:              tx.ID,
			Type:            tx.Type,
			Label:           tx.Label(),
			Account:         tx.AccountID,
			Amount:          tx.Amount,
			FormattedAmount: models.FormatGBP(tx.Amount),
			Incoming:        tx.IsIncoming(),
			Date:            tx.Date,
			FormattedDate:   tx.FormattedDate(),
		})
	}

	return response
}
