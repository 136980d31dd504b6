package account

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-projector/internal/logging"
	"github.com/carson-networks/budget-projector/internal/storage/transaction"
)

// ListAccountsInput is the Huma input for listing accounts.
type ListAccountsInput struct {
	Position int `query:"position" minimum:"0" doc:"Offset for pagination"`
	Limit    int `query:"limit" minimum:"0" maximum:"100" doc:"Page size, default 20"`
}

// NextCursor is the position of the next page.
type NextCursor struct {
	Position int `json:"position" doc:"Offset for next page"`
	Limit    int `json:"limit" doc:"Page size"`
}

// ListAccountsResponseBody is the response body for listing accounts.
type ListAccountsResponseBody struct {
	Accounts   []Account   `json:"accounts" doc:"Page of accounts"`
	NextCursor *NextCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponseBody
}

// accountLister is the interface for listing ledger accounts.
type accountLister interface {
	List(ctx context.Context, filter *transaction.AccountFilter) (*transaction.AccountListResult, error)
}

// ListAccountsHandler handles GET /v1/accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/accounts",
		Summary:     "List accounts",
		Description: "Returns a paginated list of accounts with stored transactions.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	filter := &transaction.AccountFilter{
		Limit:  input.Limit,
		Offset: input.Position,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listAccountsMs")
	}
	result, err := h.AccountService.List(ctx, filter)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list accounts", err)
	}

	if logData != nil {
		logData.AddData("accountCount", len(result.Accounts))
	}

	resp := ListAccountsResponseBody{
		Accounts: make([]Account, len(result.Accounts)),
	}
	for i, acc := range result.Accounts {
		resp.Accounts[i] = Account{
			ID:               acc.AccountID.String(),
			TransactionCount: acc.TransactionCount,
			FirstDate:        acc.FirstDate.Format(time.DateOnly),
			LastDate:         acc.LastDate.Format(time.DateOnly),
			Balance:          acc.Balance.String(),
		}
	}
	if result.NextCursor != nil {
		resp.NextCursor = &NextCursor{
			Position: result.NextCursor.Position,
			Limit:    result.NextCursor.Limit,
		}
	}

	return &ListAccountsOutput{Body: resp}, nil
}
