package report

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
	pdfErrorColor  = props.Color{Red: 190, Green: 40, Blue: 40}
)

func renderPDF(data Data, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, fmt.Sprintf("%s (%s)", data.Username, data.UserID), props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("Generated %s, %d of %d accepted",
			data.GeneratedAt.Format("2006-01-02 15:04"), data.Succeeded(), len(data.Entries)), props.Text{
			Size:  10,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))

	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: &pdfHeaderColor}
	m.AddRow(7,
		text.NewCol(2, "Submitted", header),
		text.NewCol(2, "Kind", header),
		text.NewCol(3, "Attendance time", header),
		text.NewCol(5, "Result", header),
	)

	for _, e := range data.Entries {
		result := props.Text{Size: 9, Align: align.Left}
		if !e.Succeeded() {
			result.Color = &pdfErrorColor
		}
		m.AddRow(6,
			text.NewCol(2, e.CreatedAt.Format("15:04:05"), props.Text{Size: 9, Color: &pdfMutedColor}),
			text.NewCol(2, e.Kind.Label(), props.Text{Size: 9}),
			text.NewCol(3, e.OccurredAt, props.Text{Size: 9}),
			text.NewCol(5, status(e), result),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}
	return doc.Save(outputPath)
}
