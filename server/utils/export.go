package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klarkxy/gohtml"
	"github.com/pkg/errors"
	"github.com/signintech/gopdf"
	"github.com/xuri/excelize/v2"
)

// CreateExcelFile builds a one-sheet workbook from header and rows.
func CreateExcelFile(name string, header []string, values [][]string) (file *excelize.File, err error) {
	if len(values) != 0 && len(header) != len(values[0]) {
		return nil, errors.New("header length not equal values length")
	}
	file = excelize.NewFile()
	file.SetSheetName("Sheet1", name)
	err = file.SetColWidth(name, string(rune(65)), string(rune(65+len(header)-1)), 20)
	if err != nil {
		return
	}
	// header style
	style, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Color:  "#FFFFFF",
			Bold:   true,
			Family: "Arial",
			Size:   10,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#666666"},
			Pattern: 1,
		},
	})
	if err != nil {
		return
	}
	for i, v := range header {
		if err = file.SetCellValue(name, fmt.Sprintf("%s%d", string(rune(65+i)), 1), v); err != nil {
			return
		}
		if err = file.SetCellStyle(name, fmt.Sprintf("%s%d", string(rune(65+i)), 1), fmt.Sprintf("%s%d", string(rune(65+i)), 1), style); err != nil {
			return
		}
	}

	// body style
	style1, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Color:  "#000000",
			Bold:   false,
			Family: "Arial",
			Size:   10,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
	})
	if err != nil {
		return
	}
	line := 1
	for _, v := range values {
		line++
		for k, vv := range v {
			if err = file.SetCellValue(name, fmt.Sprintf("%s%d", string(rune(65+k)), line), vv); err != nil {
				return
			}
			if err = file.SetCellStyle(name, fmt.Sprintf("%s%d", string(rune(65+k)), line), fmt.Sprintf("%s%d", string(rune(65+k)), line), style1); err != nil {
				return
			}
		}
	}
	return
}

// AppendExcelSheet adds another sheet to an existing workbook, plain
// cells without the styled header of CreateExcelFile.
func AppendExcelSheet(file *excelize.File, name string, header []string, values [][]string) error {
	if _, err := file.NewSheet(name); err != nil {
		return err
	}
	if err := file.SetColWidth(name, string(rune(65)), string(rune(65+len(header)-1)), 20); err != nil {
		return err
	}
	for i, v := range header {
		if err := file.SetCellValue(name, fmt.Sprintf("%s%d", string(rune(65+i)), 1), v); err != nil {
			return err
		}
	}
	for line, row := range values {
		for k, vv := range row {
			if err := file.SetCellValue(name, fmt.Sprintf("%s%d", string(rune(65+k)), line+2), vv); err != nil {
				return err
			}
		}
	}
	return nil
}

// Export2Csv builds a csv from header and rows.
func Export2Csv(header []string, content [][]string) (*bytes.Reader, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	w.UseCRLF = true
	buf.WriteString("\xEF\xBB\xBF") // UTF-8 BOM for Excel
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, v := range content {
		if err := w.Write(v); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return bytes.NewReader(buf.Bytes()), nil
}

// ExportCsv builds a two-section csv: a summary block then a detail block.
// Used by the scheduled report attachments.
func ExportCsv(header1, header2 []string, content1, content2 [][]string) (*bytes.Reader, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	w.UseCRLF = true
	buf.WriteString("\xEF\xBB\xBF")
	if err := w.Write([]string{"Summary"}); err != nil {
		return nil, err
	}
	if err := w.Write(header1); err != nil {
		return nil, err
	}
	for _, v := range content1 {
		if err := w.Write(v); err != nil {
			return nil, err
		}
	}
	if err := w.Write([]string{"Details"}); err != nil {
		return nil, err
	}
	if err := w.Write(header2); err != nil {
		return nil, err
	}
	for _, v := range content2 {
		if err := w.Write(v); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return bytes.NewReader(buf.Bytes()), nil
}

// PdfExport renders one table into pdf, returns the cursor so several
// tables can be stacked on the same document. Caller owns AddPage.
func PdfExport(pdf *gopdf.GoPdf, title string, tableTitle []string, size []int, data [][]string, xs, ys int) (err error, xe, ye int) {
	if len(tableTitle) != len(size) {
		err = fmt.Errorf("tableTitle size not equal size")
		return
	}
	var width = 0
	for _, v := range size {
		width += v
	}
	if width > 580 {
		err = fmt.Errorf("size too large")
		return
	}
	var marginC = (595 - width) / 2
	var marginH = 30
	alignCenter := gopdf.CellOption{Align: gopdf.Center | gopdf.Middle,
		Border: gopdf.AllBorders, Float: gopdf.Right}
	center := 595 / 2

	err = pdf.AddTTFFont("report", "./config/report.ttf")
	if err != nil {
		return
	}
	err = pdf.SetFont("report", "", 20)
	if err != nil {
		return
	}

	var x = marginC
	var y = marginH
	if ys != 0 {
		y = ys + 40
	}

	if title != "" {
		pdf.SetX(float64(center - len(title)*8/2))
		pdf.SetY(float64(y))
		pdf.Cell(nil, title)
	}

	err = pdf.SetFont("report", "", 10)
	pdf.SetTextColor(0x00, 0x00, 0x00)
	if err != nil {
		return
	}

	for i := 0; i < len(tableTitle); i++ {
		pdf.SetX(float64(x))
		pdf.SetY(float64(y + 40))
		pdf.CellWithOption(&gopdf.Rect{
			W: float64(size[i]),
			H: 15,
		}, tableTitle[i], alignCenter)
		x += size[i]
	}

	y += 55
	ye = y
	xe = center

	var i = 0
	for ; i < len(data); i++ {
		x = marginC
		if len(data[i]) != len(size) {
			continue
		}
		for j := 0; j < len(data[i]); j++ {
			pdf.SetX(float64(x))
			pdf.SetY(float64(y + i*15))
			if float64(y+i*15) > 790 {
				pdf.AddPage()
				data = data[i:]
				i = 0
				y = marginH
				break
			}
			pdf.CellWithOption(&gopdf.Rect{
				W: float64(size[j]),
				H: 15,
			}, data[i][j], alignCenter)
			x += size[j]
			ye = y + i*15
		}
	}
	return
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// SaveFile writes the rendered report under filePath, creating the
// directory on first use.
func SaveFile(filePath, fileName string, fileBytes *bytes.Reader) error {
	if ok := FileExists(filePath); !ok {
		if err := os.MkdirAll(filePath, os.ModePerm); err != nil {
			return err
		}
	}
	file, err := os.Create(filepath.Join(filePath, fileName))
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()
	_, err = fileBytes.WriteTo(file)
	return err
}

// Export2Html renders header and rows into a mail-friendly html table.
func Export2Html(title string, header []string, content [][]string) (string, error) {
	htm := gohtml.NewHtml()
	htm.Html().Lang("en")
	htm.Meta().Charset("utf-8")
	htm.Head().Title().Text(title)
	htmlDiv := htm.Body().Tag("div")
	htmlDiv.Tag("div").Attr("style", "text-align: center").Text(title)
	htmlTable := htmlDiv.Tag("table").Attr("style", "width: 65%;clear: both;background-color: transparent;margin-top: 6px !important;margin-bottom: 6px !important;border-collapse: separate !important;")
	htmlTr := htmlTable.Thead().Attr("style", "background: #FAFAFA; display: table-header-group;font-size: 14px;color: rgba(0, 0, 0, 0.85);line-height: 22px;text-align: left;").Tr()
	for _, v := range header {
		htmlTr.Th().Text(v)
	}
	htmlTbody := htmlTable.Tag("tbody").Attr("style", "font-size: 14px;color: rgba(0, 0, 0, 0.65);line-height: 22px;")
	for _, v := range content {
		row := htmlTbody.Tr()
		for i := 0; i < len(v); i++ {
			row.Td().Text(v[i])
		}
	}
	return htm.String(), nil
}
