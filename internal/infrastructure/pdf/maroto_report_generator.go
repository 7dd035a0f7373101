// Package pdf implementa a geração da ficha do processo em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título do processo  │  Token + Data de cadastro     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nome + e-mail                                      │
//	│  SITUAÇÃO: status atual + prioridade                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HISTÓRICO: Data | Status | Observação | Autor               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appprocess "github.com/sgp-sistemas/sgp-api/internal/application/process"
	"github.com/sgp-sistemas/sgp-api/internal/domain/entity"
)

var _ appprocess.ReportGenerator = (*MarotoReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator gera a ficha do processo usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateProcessReport gera o PDF e devolve seus bytes.
func (g *MarotoReportGenerator) GenerateProcessReport(p *entity.Process, history []*entity.ProcessHistoryEntry) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha do Processo - SGP", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(p))
	m.AddRows(statusRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(historyHeaderRow())
	for _, h := range history {
		m.AddRows(historyRow(h))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título do processo (esq), token e data de cadastro (dir).
func headerRow(p *entity.Process) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(p.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("SGP - Sistema de Gerenciamento de Processos", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Token: "+p.LoginToken, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 1, Align: align.Right,
			}),
			text.New("Cadastrado em "+p.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 9, Top: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func clientRow(p *entity.Process) core.Row {
	client := p.ClientName
	if client == "" {
		client = "—"
	}
	if p.ClientEmail != "" {
		client += " (" + p.ClientEmail + ")"
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Cliente: "+client, props.Text{Size: 9, Top: 2}),
		),
	)
}

func statusRow(p *entity.Process) core.Row {
	return row.New(8).Add(
		col.New(8).Add(
			text.New("Situação: "+entity.StatusLabel(p.Status), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New("Prioridade: "+p.Priority, props.Text{Size: 9, Top: 2, Align: align.Right}),
		),
	)
}

func historyHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Top: 2, Color: colorPrimary}
	return row.New(8).Add(
		col.New(2).Add(text.New("Data", header)),
		col.New(3).Add(text.New("Status", header)),
		col.New(5).Add(text.New("Observação", header)),
		col.New(2).Add(text.New("Autor", header)),
	)
}

func historyRow(h *entity.ProcessHistoryEntry) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	return row.New(7).Add(
		col.New(2).Add(text.New(h.CreatedAt.Format("02/01/2006 15:04"), cell)),
		col.New(3).Add(text.New(entity.StatusLabel(h.Status), cell)),
		col.New(5).Add(text.New(h.Observation, cell)),
		col.New(2).Add(text.New(h.CreatedBy, cell)),
	)
}
