package projection

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-projector/internal/logging"
	"github.com/carson-networks/budget-projector/internal/service"
)

// ProjectStoredBody is the request body for projecting a stored ledger.
type ProjectStoredBody struct {
	AccountID      string             `json:"accountID" format:"uuid" doc:"Account UUID"`
	From           string             `json:"from,omitempty" format:"date" doc:"First day included, YYYY-MM-DD"`
	To             string             `json:"to,omitempty" format:"date" doc:"First day excluded, YYYY-MM-DD"`
	OpeningBalance float64            `json:"openingBalance,omitempty" doc:"Balance before the first transaction"`
	ChartConfig    map[string]float64 `json:"chartConfig,omitempty" doc:"Percentage of spending kept per category, 100 means unchanged"`
}

// ProjectStoredInput is the Huma input for projecting a stored ledger.
type ProjectStoredInput struct {
	Body ProjectStoredBody
}

// Summary is the response model for a projection summary.
type Summary struct {
	Count               int                `json:"count" doc:"Number of projected transactions"`
	FinalOverallTotal   float64            `json:"finalOverallTotal" doc:"Actual closing balance"`
	FinalMinimizedTotal float64            `json:"finalMinimizedTotal" doc:"Closing balance with reduced spending"`
	Savings             float64            `json:"savings" doc:"finalMinimizedTotal minus finalOverallTotal"`
	SavingsByCategory   map[string]float64 `json:"savingsByCategory" doc:"Amount saved per adjusted category"`
}

// ProjectStoredResponseBody is the response body for projecting a stored ledger.
type ProjectStoredResponseBody struct {
	Transactions []ProjectedTransaction `json:"transactions" doc:"Projected ledger"`
	Summary      Summary                `json:"summary" doc:"End of period totals"`
}

// ProjectStoredOutput is the Huma output for projecting a stored ledger.
type ProjectStoredOutput struct {
	Body ProjectStoredResponseBody
}

// storedProjector projects transactions loaded from storage.
type storedProjector interface {
	ProjectStored(ctx context.Context, query service.StoredQuery) (*service.StoredProjection, error)
}

// ProjectStoredHandler handles POST /v1/projection/stored.
type ProjectStoredHandler struct {
	ProjectionService storedProjector
}

// NewProjectStoredHandler creates a new ProjectStoredHandler.
func NewProjectStoredHandler(svc storedProjector) *ProjectStoredHandler {
	return &ProjectStoredHandler{ProjectionService: svc}
}

// Register registers the stored projection endpoint with the Huma API.
func (h *ProjectStoredHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "project-stored",
		Method:      http.MethodPost,
		Path:        "/v1/projection/stored",
		Summary:     "Project stored ledger",
		Description: "Projects the stored transactions of an account and summarizes the savings.",
		Tags:        []string{"Projection"},
	}, h.handle)
}

func parseProjectStoredInput(input *ProjectStoredInput) (service.StoredQuery, error) {
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return service.StoredQuery{}, badRequest("invalid accountID")
	}

	query := service.StoredQuery{
		AccountID: accountID,
		Opening:   decimal.NewFromFloat(input.Body.OpeningBalance),
		Config:    NewConfig(input.Body.ChartConfig),
	}

	if input.Body.From != "" {
		from, err := time.Parse(time.DateOnly, input.Body.From)
		if err != nil {
			return service.StoredQuery{}, badRequest("invalid from")
		}
		query.From = &from
	}
	if input.Body.To != "" {
		to, err := time.Parse(time.DateOnly, input.Body.To)
		if err != nil {
			return service.StoredQuery{}, badRequest("invalid to")
		}
		query.To = &to
	}
	if query.From != nil && query.To != nil && !query.To.After(*query.From) {
		return service.StoredQuery{}, badRequest("to must be after from")
	}

	return query, nil
}

func (h *ProjectStoredHandler) handle(ctx context.Context, input *ProjectStoredInput) (*ProjectStoredOutput, error) {
	logData := logging.GetLogData(ctx)
	query, err := parseProjectStoredInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		logData.AddData("accountID", query.AccountID.String())
		stopTimer = logData.AddTiming("projectStoredMs")
	}
	result, err := h.ProjectionService.ProjectStored(ctx, query)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if logData != nil {
			logData.AddData("projectError", err.Error())
		}
		return nil, internalError()
	}

	if logData != nil {
		logData.AddData("transactionCount", len(result.Transactions))
		logData.AddData("recomputed", result.Recomputed)
	}

	savings := make(map[string]float64, len(result.Summary.SavingsByCategory))
	for category, saved := range result.Summary.SavingsByCategory {
		savings[category] = saved.InexactFloat64()
	}

	return &ProjectStoredOutput{
		Body: ProjectStoredResponseBody{
			Transactions: FromProjected(result.Transactions),
			Summary: Summary{
				Count:               result.Summary.Count,
				FinalOverallTotal:   result.Summary.FinalOverallTotal.InexactFloat64(),
				FinalMinimizedTotal: result.Summary.FinalMinimizedTotal.InexactFloat64(),
				Savings:             result.Summary.Savings.InexactFloat64(),
				SavingsByCategory:   savings,
			},
		},
	}, nil
}
