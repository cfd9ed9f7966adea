package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Workbook builds an xlsx backup with one sheet per collection. Unlike the
// CSV path this includes trees and growth records.
func (s *Service) Workbook() (*excelize.File, error) {
	x := excelize.NewFile()

	if err := s.writeActivitySheet(x, "活動記録"); err != nil {
		return nil, err
	}
	if err := s.writeTreeSheet(x, "樹木"); err != nil {
		return nil, err
	}
	if err := s.writeGrowthSheet(x, "生育記録"); err != nil {
		return nil, err
	}

	// drop the default sheet
	if err := x.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return x, nil
}

func (s *Service) writeActivitySheet(x *excelize.File, name string) error {
	if _, err := x.NewSheet(name); err != nil {
		return err
	}
	if err := writeRow(x, name, 1, csvHeader); err != nil {
		return err
	}
	for i, a := range s.stores.Activities.GetAll() {
		if err := writeRow(x, name, i+2, s.csvRow(a)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) writeTreeSheet(x *excelize.File, name string) error {
	if _, err := x.NewSheet(name); err != nil {
		return err
	}
	head := []string{"樹番号", "名前", "場所", "品種", "植栽日", "メモ"}
	if err := writeRow(x, name, 1, head); err != nil {
		return err
	}
	for i, t := range s.stores.Trees.GetAll() {
		planted := ""
		if t.PlantedDate != nil {
			planted = t.PlantedDate.In(s.loc).Format("2006/01/02")
		}
		row := []string{t.Code, t.Name, t.Location, t.Variety, planted, t.Notes}
		if err := writeRow(x, name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) writeGrowthSheet(x *excelize.File, name string) error {
	if _, err := x.NewSheet(name); err != nil {
		return err
	}
	head := []string{"日付", "樹番号", "樹高cm", "幹径mm", "葉数", "健康状態", "メモ"}
	if err := writeRow(x, name, 1, head); err != nil {
		return err
	}
	for i, g := range s.stores.Growth.GetAll() {
		row := []string{
			g.Date.In(s.loc).Format("2006/01/02"),
			g.TreeCode,
			floatOrEmpty(g.HeightCM),
			floatOrEmpty(g.TrunkDiameterMM),
			intOrEmpty(g.LeafCount),
			string(g.Health),
			g.Notes,
		}
		if err := writeRow(x, name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(x *excelize.File, sheet string, row int, vals []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(vals))
	for i, v := range vals {
		cells[i] = v
	}
	if err := x.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("sheet %s row %d: %w", sheet, row, err)
	}
	return nil
}

func floatOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intOrEmpty(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
