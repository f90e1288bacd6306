package export

import (
	"bytes"
	"strconv"

	"github.com/tealeg/xlsx"

	"voice-notes/internal/app/codec"
	apperrors "voice-notes/internal/app/errors"
	"voice-notes/internal/app/model"
)

// SheetName is the worksheet holding exported translations.
const SheetName = "Translations"

// RenderXLSX builds a single-sheet workbook.
func RenderXLSX(records []model.TranslationRecord) ([]byte, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to add sheet")
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Timestamp"
	headerRow.AddCell().Value = "Text"
	headerRow.AddCell().Value = "Duration (s)"
	headerRow.AddCell().Value = "MIME Type"
	headerRow.AddCell().Value = "Audio Size"

	for _, t := range records {
		row := sheet.AddRow()
		row.AddCell().Value = strconv.FormatInt(t.ID, 10)
		row.AddCell().Value = t.Timestamp
		row.AddCell().Value = t.Text
		row.AddCell().SetFloat(t.Duration)
		row.AddCell().Value = t.MimeType
		size := row.AddCell()
		if t.HasAudio() {
			size.Value = codec.SizeLabel(int64(len(t.AudioData)))
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, apperrors.Wrap(err, "failed to write workbook")
	}
	return buf.Bytes(), nil
}
