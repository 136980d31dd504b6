package projection

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-projector/internal/logging"
	"github.com/carson-networks/budget-projector/internal/normalizer"
	"github.com/carson-networks/budget-projector/internal/projection"
)

// ProjectBody is the request body for projecting a chart series.
type ProjectBody struct {
	ChartData   []ChartTransaction `json:"chartData,omitempty" doc:"Transactions to project"`
	ChartConfig map[string]float64 `json:"chartConfig,omitempty" doc:"Percentage of spending kept per category, 100 means unchanged"`
	Polarity    string             `json:"polarity,omitempty" enum:"flag,signed,expense-positive" doc:"How amounts encode direction, defaults to flag"`
}

// ProjectInput is the Huma input for projecting a chart series.
type ProjectInput struct {
	Body ProjectBody `required:"false"`
}

// ProjectOutput is the Huma output for projecting a chart series.
type ProjectOutput struct {
	Body []ProjectedTransaction
}

// projector runs the normalizer and projection engine.
type projector interface {
	Project(records []normalizer.RawRecord, polarity normalizer.Polarity, cfg projection.Config) ([]projection.ProjectedTransaction, error)
}

// ProjectHandler handles POST /v1/projection.
type ProjectHandler struct {
	ProjectionService projector
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(svc projector) *ProjectHandler {
	return &ProjectHandler{ProjectionService: svc}
}

// Register registers the projection endpoint with the Huma API.
func (h *ProjectHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "project",
		Method:      http.MethodPost,
		Path:        "/v1/projection",
		Summary:     "Project spending reduction",
		Description: "Returns the chart series with the running balance it would have had if spending in the configured categories had been reduced.",
		Tags:        []string{"Projection"},
	}, h.handle)
}

// parseProjectInput validates the request before any normalization happens.
func parseProjectInput(input *ProjectInput) ([]normalizer.RawRecord, normalizer.Polarity, projection.Config, error) {
	if len(input.Body.ChartData) == 0 {
		return nil, normalizer.PolarityFlag, nil, badRequest(msgMissingChartData)
	}

	polarity, err := normalizer.ParsePolarity(input.Body.Polarity)
	if err != nil {
		return nil, normalizer.PolarityFlag, nil, badRequest(err.Error())
	}

	return ToRawRecords(input.Body.ChartData), polarity, NewConfig(input.Body.ChartConfig), nil
}

func (h *ProjectHandler) handle(ctx context.Context, input *ProjectInput) (*ProjectOutput, error) {
	logData := logging.GetLogData(ctx)
	records, polarity, cfg, err := parseProjectInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		logData.AddData("recordCount", len(records))
		logData.AddData("polarity", polarity.String())
		stopTimer = logData.AddTiming("projectMs")
	}
	projected, err := h.ProjectionService.Project(records, polarity, cfg)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, normalizer.ErrMalformedRecord) {
			return nil, badRequest(err.Error())
		}
		if logData != nil {
			logData.AddData("projectError", err.Error())
		}
		return nil, internalError()
	}

	return &ProjectOutput{Body: FromProjected(projected)}, nil
}
