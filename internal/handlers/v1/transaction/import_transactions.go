package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-projector/internal/logging"
	"github.com/carson-networks/budget-projector/internal/normalizer"
	"github.com/carson-networks/budget-projector/internal/service"
)

// ImportTransactionsBody is the request body for importing transactions.
type ImportTransactionsBody struct {
	AccountID    string         `json:"accountID" format:"uuid" doc:"Account UUID"`
	Polarity     string         `json:"polarity,omitempty" enum:"flag,signed,expense-positive" doc:"How amounts encode direction, defaults to the server setting"`
	Transactions []ImportRecord `json:"transactions" minItems:"1" maxItems:"5000" doc:"Transactions to store"`
}

// ImportTransactionsInput is the Huma input for importing transactions.
type ImportTransactionsInput struct {
	Body ImportTransactionsBody
}

// ImportTransactionsResponse is the response body for importing transactions.
type ImportTransactionsResponse struct {
	Received int   `json:"received" doc:"Records in the request"`
	Imported int64 `json:"imported" doc:"Records that were not already stored"`
}

// ImportTransactionsOutput is the Huma output for importing transactions.
type ImportTransactionsOutput struct {
	Status int
	Body   ImportTransactionsResponse
}

// transactionImporter normalizes and stores provider records.
type transactionImporter interface {
	Import(ctx context.Context, accountID uuid.UUID, records []normalizer.RawRecord, polarity normalizer.Polarity) (service.ImportResult, error)
	DefaultPolarity() normalizer.Polarity
}

// ImportTransactionsHandler handles POST /v1/transaction/import.
type ImportTransactionsHandler struct {
	ImportService transactionImporter
}

// NewImportTransactionsHandler creates a new ImportTransactionsHandler.
func NewImportTransactionsHandler(svc transactionImporter) *ImportTransactionsHandler {
	return &ImportTransactionsHandler{ImportService: svc}
}

// Register registers the import endpoint with the Huma API.
func (h *ImportTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "import-transactions",
		Method:        http.MethodPost,
		Path:          "/v1/transaction/import",
		Summary:       "Import transactions",
		Description:   "Normalizes provider transactions and stores them for an account. Already stored IDs are skipped; records without an ID get one derived from their content, so re-importing a batch is idempotent.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseImportTransactionsInput parses the account and polarity. Records are
// validated by the normalizer.
func parseImportTransactionsInput(input *ImportTransactionsInput, defaultPolarity normalizer.Polarity) (uuid.UUID, normalizer.Polarity, error) {
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return uuid.Nil, defaultPolarity, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	if input.Body.Polarity == "" {
		return accountID, defaultPolarity, nil
	}

	polarity, err := normalizer.ParsePolarity(input.Body.Polarity)
	if err != nil {
		return uuid.Nil, defaultPolarity, huma.NewError(http.StatusBadRequest, "invalid polarity", err)
	}
	return accountID, polarity, nil
}

func (h *ImportTransactionsHandler) handle(ctx context.Context, input *ImportTransactionsInput) (*ImportTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	accountID, polarity, err := parseImportTransactionsInput(input, h.ImportService.DefaultPolarity())
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		logData.AddData("accountID", accountID.String())
		logData.AddData("polarity", polarity.String())
		stopTimer = logData.AddTiming("importMs")
	}
	result, err := h.ImportService.Import(ctx, accountID, toRawRecords(input.Body.Transactions), polarity)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, normalizer.ErrMalformedRecord) {
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to import transactions", err)
	}

	if logData != nil {
		logData.AddData("importedCount", result.Imported)
	}

	return &ImportTransactionsOutput{
		Status: http.StatusCreated,
		Body: ImportTransactionsResponse{
			Received: result.Received,
			Imported: result.Imported,
		},
	}, nil
}
