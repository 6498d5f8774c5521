// internal/service/export_service.go
package service

import (
	"bytes"
	"context"
	"fmt"

	"go_golf_stat_keep/internal/middleware"
	"go_golf_stat_keep/internal/stats"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const scorecardSheet = "Scorecard"

// ExportService renders rounds as spreadsheets.
//
// The workbook is returned as a buffer; the handler sets the response headers
// and writes it out.
type ExportService interface {
	ExportScorecard(ctx context.Context, userID, roundID uuid.UUID) (*bytes.Buffer, string, error)
}

type exportService struct {
	rounds RoundService
}

func NewExportService(rounds RoundService) ExportService {
	return &exportService{rounds: rounds}
}

func (s *exportService) ExportScorecard(ctx context.Context, userID, roundID uuid.UUID) (*bytes.Buffer, string, error) {
	view, err := s.rounds.GetRoundWithStats(ctx, userID, roundID)
	if err != nil {
		return nil, "", err
	}

	buf, err := renderScorecard(view)
	if err != nil {
		middleware.GetLogger(ctx).Error("Rendering scorecard failed", "round_id", roundID.String(), "error", err)
		return nil, "", internalError(ctx, "ExportScorecard", err)
	}
	filename := fmt.Sprintf("scorecard_%s.xlsx", view.Round.DatePlayed.Format("2006-01-02"))
	return buf, filename, nil
}

// scorecardColumn is one column of the card: a hole or a subtotal.
type scorecardColumn struct {
	header  string
	yardage int
	index   string
	par     int
	score   string
	putts   string
}

func holeColumn(h stats.HoleView) scorecardColumn {
	col := scorecardColumn{
		header:  fmt.Sprint(h.Number),
		yardage: h.Yardage,
		index:   fmt.Sprint(h.StrokeIndex),
		par:     h.Par,
	}
	if s, ok := h.Score(); ok {
		col.score = fmt.Sprint(s)
	}
	if h.Stat != nil && h.Stat.Putts != nil {
		col.putts = fmt.Sprint(*h.Stat.Putts)
	}
	return col
}

// subtotalColumn shows a placeholder score until every hole it covers is scored.
func subtotalColumn(header string, n stats.NineSummary, putts int) scorecardColumn {
	col := scorecardColumn{header: header, yardage: n.Yardage, par: n.Par, score: "-", putts: fmt.Sprint(putts)}
	if n.CompleteRound {
		col.score = fmt.Sprint(n.Score)
	}
	return col
}

func puttsOf(views []stats.HoleView) int {
	total := 0
	for _, v := range views {
		if v.Stat != nil && v.Stat.Putts != nil {
			total += *v.Stat.Putts
		}
	}
	return total
}

// scorecardColumns lays out the front nine, OUT, the back nine, IN and TOT.
func scorecardColumns(view *stats.RoundWithStats) []scorecardColumn {
	var front, back []stats.HoleView
	for _, h := range view.Holes {
		if h.Number > 9 {
			back = append(back, h)
		} else {
			front = append(front, h)
		}
	}

	cols := make([]scorecardColumn, 0, len(view.Holes)+3)
	for _, h := range front {
		cols = append(cols, holeColumn(h))
	}
	cols = append(cols, subtotalColumn("OUT", view.Front, puttsOf(front)))

	total := view.Front
	if view.Back != nil {
		for _, h := range back {
			cols = append(cols, holeColumn(h))
		}
		cols = append(cols, subtotalColumn("IN", *view.Back, puttsOf(back)))

		total.Par += view.Back.Par
		total.Yardage += view.Back.Yardage
		total.Score += view.Back.Score
		total.CompleteRound = total.CompleteRound && view.Back.CompleteRound
	}
	cols = append(cols, subtotalColumn("TOT", total, puttsOf(view.Holes)))
	return cols
}

// sheetWriter keeps the first error of a series of cell writes.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(col, row int, value any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellValue(w.sheet, cell, value)
}

func renderScorecard(view *stats.RoundWithStats) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", scorecardSheet); err != nil {
		return nil, err
	}
	w := &sheetWriter{f: f, sheet: scorecardSheet}

	title := "Round"
	if view.Round.Course != nil {
		title = view.Round.Course.Name
	}
	if view.Round.Tee != nil {
		title += " (" + view.Round.Tee.Name + ")"
	}
	w.set(1, 1, title)
	w.set(1, 2, view.Round.DatePlayed.Format("2006-01-02"))
	if view.Summary.ToPar != nil {
		w.set(3, 2, "To par: "+*view.Summary.ToPar)
	}
	if view.Summary.Differential != nil {
		w.set(6, 2, "Differential: "+*view.Summary.Differential)
	}

	const firstRow = 4
	labels := []string{"Hole", "Yards", "Index", "Par", "Score", "Putts"}
	for i, label := range labels {
		w.set(1, firstRow+i, label)
	}
	cols := scorecardColumns(view)
	for i, c := range cols {
		col := i + 2
		w.set(col, firstRow, c.header)
		w.set(col, firstRow+1, c.yardage)
		w.set(col, firstRow+2, c.index)
		w.set(col, firstRow+3, c.par)
		w.set(col, firstRow+4, c.score)
		w.set(col, firstRow+5, c.putts)
	}
	if w.err != nil {
		return nil, w.err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(cols) + 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(scorecardSheet, fmt.Sprintf("A%d", firstRow), fmt.Sprintf("%s%d", lastCol, firstRow), headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(scorecardSheet, "A", "A", 10); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(scorecardSheet, "B", lastCol, 6); err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if _, err := f.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
