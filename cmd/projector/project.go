package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"

	"github.com/davecgh/go-spew/spew"

	chart "github.com/carson-networks/budget-projector/internal/handlers/v1/projection"
	"github.com/carson-networks/budget-projector/internal/normalizer"
	"github.com/carson-networks/budget-projector/internal/projection"
	"github.com/carson-networks/budget-projector/internal/service"
)

type projectCmd struct {
	Input    string             `arg:"" optional:"" default:"-" help:"JSON file shaped like the /v1/projection body, - for stdin."`
	Polarity string             `default:"flag" enum:"flag,signed,expense-positive" help:"How amounts encode direction."`
	Config   map[string]float64 `short:"c" help:"Percentage of spending kept for a category, e.g. -c Dining=50. Overrides chartConfig."`
	Summary  bool               `help:"Print the savings summary instead of the projected series."`
}

type summaryOutput struct {
	Count               int                `json:"count"`
	FinalOverallTotal   float64            `json:"finalOverallTotal"`
	FinalMinimizedTotal float64            `json:"finalMinimizedTotal"`
	Savings             float64            `json:"savings"`
	SavingsByCategory   map[string]float64 `json:"savingsByCategory"`
}

func (p *projectCmd) Run(g *globals) error {
	body, err := p.readBody()
	if err != nil {
		return err
	}
	if len(body.ChartData) == 0 {
		return errors.New("missing chartData")
	}

	polarity, err := normalizer.ParsePolarity(p.Polarity)
	if err != nil {
		return err
	}

	percentages := make(map[string]float64, len(body.ChartConfig)+len(p.Config))
	maps.Copy(percentages, body.ChartConfig)
	maps.Copy(percentages, p.Config)
	cfg, err := projection.ParseConfig(percentages)
	if err != nil {
		return err
	}

	g.logger.WithField("records", len(body.ChartData)).WithField("polarity", polarity.String()).Debug("Projector.Project.Start")

	projected, err := service.NewProjectionService(nil).Project(chart.ToRawRecords(body.ChartData), polarity, cfg)
	if err != nil {
		return err
	}

	if g.Dump {
		spew.Fdump(g.errOut, percentages)
	}

	enc := json.NewEncoder(g.out)
	enc.SetIndent("", "  ")
	if p.Summary {
		return enc.Encode(toSummaryOutput(projection.Summarize(projected)))
	}
	return enc.Encode(chart.FromProjected(projected))
}

func (p *projectCmd) readBody() (chart.ProjectBody, error) {
	var in io.Reader = os.Stdin
	if p.Input != "" && p.Input != "-" {
		f, err := os.Open(p.Input)
		if err != nil {
			return chart.ProjectBody{}, err
		}
		defer f.Close()
		in = f
	}

	var body chart.ProjectBody
	if err := json.NewDecoder(in).Decode(&body); err != nil {
		return chart.ProjectBody{}, fmt.Errorf("decode %s: %w", p.Input, err)
	}
	return body, nil
}

func toSummaryOutput(s projection.Summary) summaryOutput {
	out := summaryOutput{
		Count:               s.Count,
		FinalOverallTotal:   s.FinalOverallTotal.InexactFloat64(),
		FinalMinimizedTotal: s.FinalMinimizedTotal.InexactFloat64(),
		Savings:             s.Savings.InexactFloat64(),
		SavingsByCategory:   make(map[string]float64, len(s.SavingsByCategory)),
	}
	for category, saved := range s.SavingsByCategory {
		out.SavingsByCategory[category] = saved.InexactFloat64()
	}
	return out
}
