package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kingao12/investment-platform/internal/api/request"
	"github.com/kingao12/investment-platform/internal/apperrors"
	"github.com/kingao12/investment-platform/internal/model"
	"github.com/kingao12/investment-platform/internal/repository"
)

// TransactionService handles transaction-related business logic operations.
// It owns the two write-side rules the calculator deliberately does not
// enforce: totalAmount is always quantity * unitPrice, recomputed on every
// write, and a SELL may never exceed the shares currently held.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	holdingRepo     *repository.HoldingRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	holdingRepo *repository.HoldingRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		holdingRepo:     holdingRepo,
	}
}

// GetTransactionsPerHolding retrieves a holding's full ledger in chronological
// order, decorated with the holding's symbol and display name.
func (s *TransactionService) GetTransactionsPerHolding(holdingID string) ([]model.TransactionResponse, error) {
	holding, err := s.holdingRepo.GetHoldingOnID(holdingID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.GetLedger(holdingID)
	if err != nil {
		return nil, err
	}

	responses := make([]model.TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = model.TransactionResponse{
			ID:          t.ID,
			HoldingID:   t.HoldingID,
			Symbol:      holding.Symbol,
			HoldingName: holding.DisplayName,
			Kind:        t.Kind,
			Quantity:    t.Quantity,
			UnitPrice:   t.UnitPrice,
			Fee:         t.Fee,
			TotalAmount: t.TotalAmount,
			Date:        t.Date,
			Note:        t.Note,
		}
	}
	return responses, nil
}

// GetTransaction retrieves a single transaction by its ID.
func (s *TransactionService) GetTransaction(transactionID string) (model.Transaction, error) {
	return s.transactionRepo.GetTransaction(transactionID)
}

// CreateTransaction stores a new BUY or SELL against a holding's ledger.
// The stored totalAmount is always quantity * unitPrice; fees ride alongside
// and never fold into it. A SELL for more shares than the ledger currently
// holds is rejected with apperrors.ErrInsufficientShares.
func (s *TransactionService) CreateTransaction(ctx context.Context, req request.CreateTransactionRequest) (*model.Transaction, error) {
	if _, err := s.holdingRepo.GetHoldingOnID(req.HoldingID); err != nil {
		return nil, err
	}

	if !model.ValidTransactionKinds[req.Kind] {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidTransactionKind, req.Kind)
	}
	if req.UnitPrice < 0 || req.Fee < 0 {
		return nil, apperrors.ErrNegativeAmount
	}

	date, err := repository.ParseTime(req.Date)
	if err != nil || date.IsZero() {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	if req.Kind == model.TransactionSell {
		if err := s.checkSellCovered(req.HoldingID, "", req.Quantity); err != nil {
			return nil, err
		}
	}

	transaction := &model.Transaction{
		ID:          uuid.New().String(),
		HoldingID:   req.HoldingID,
		Kind:        req.Kind,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Fee:         req.Fee,
		TotalAmount: req.Quantity * req.UnitPrice,
		Date:        date,
		Note:        req.Note,
	}

	if err := s.transactionRepo.InsertTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}

// UpdateTransaction applies the provided fields to an existing transaction,
// recomputing totalAmount from the resulting quantity and unit price. The
// over-sell check runs against the ledger with the old version of this
// transaction excluded, so editing a SELL cannot double-count itself.
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req request.UpdateTransactionRequest) (*model.Transaction, error) {
	transaction, err := s.transactionRepo.GetTransaction(transactionID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := repository.ParseTime(*req.Date)
		if err != nil || date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		transaction.Date = date
	}
	if req.Kind != nil {
		transaction.Kind = *req.Kind
	}
	if req.Quantity != nil {
		transaction.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		transaction.UnitPrice = *req.UnitPrice
	}
	if req.Fee != nil {
		transaction.Fee = *req.Fee
	}
	if req.Note != nil {
		transaction.Note = *req.Note
	}
	transaction.TotalAmount = transaction.Quantity * transaction.UnitPrice

	if !model.ValidTransactionKinds[transaction.Kind] {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidTransactionKind, transaction.Kind)
	}
	if transaction.UnitPrice < 0 || transaction.Fee < 0 {
		return nil, apperrors.ErrNegativeAmount
	}

	if transaction.Kind == model.TransactionSell {
		if err := s.checkSellCovered(transaction.HoldingID, transaction.ID, transaction.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, &transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &transaction, nil
}

// DeleteTransaction removes a transaction from its holding's ledger.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.transactionRepo.DeleteTransaction(ctx, transactionID)
}

// checkSellCovered verifies a SELL of quantity shares is covered by the
// holding's net position, ignoring the transaction identified by excludeID
// (empty on create). Returns apperrors.ErrInsufficientShares when it is not.
func (s *TransactionService) checkSellCovered(holdingID, excludeID string, quantity float64) error {
	ledger, err := s.transactionRepo.GetLedger(holdingID)
	if err != nil {
		return err
	}

	remaining := ledger[:0:0]
	for _, t := range ledger {
		if t.ID != excludeID {
			remaining = append(remaining, t)
		}
	}

	basis := CalculateCostBasis(remaining)
	if quantity > basis.NetShares {
		return fmt.Errorf("%w: requested %v, held %v", apperrors.ErrInsufficientShares, quantity, basis.NetShares)
	}
	return nil
}
