package export

import (
	"bytes"
	"encoding/csv"
	"regexp"
	"strconv"

	"github.com/samber/lo"

	"voice-notes/internal/app/codec"
	apperrors "voice-notes/internal/app/errors"
	"voice-notes/internal/app/model"
	"voice-notes/internal/app/store"
)

// MongoScriptHeader opens every mongo-script export.
const MongoScriptHeader = "// MongoDB import script\n// Run this in MongoDB shell or use mongoimport\n\n"

var mongoNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func validateMongoTarget(t MongoTarget) error {
	if !mongoNamePattern.MatchString(t.Database) {
		return apperrors.InvalidField("database", "must match "+mongoNamePattern.String())
	}
	if !mongoNamePattern.MatchString(t.Collection) {
		return apperrors.InvalidField("collection", "must match "+mongoNamePattern.String())
	}
	return nil
}

// RenderMongoScript emits a shell script inserting records into target.
func RenderMongoScript(records []model.TranslationRecord, target MongoTarget) (string, error) {
	if err := validateMongoTarget(target); err != nil {
		return "", err
	}
	docs, err := store.RenderJSON(records)
	if err != nil {
		return "", err
	}
	return MongoScriptHeader +
		"use " + target.Database + ";\n\n" +
		"db." + target.Collection + ".insertMany(" + docs + ");\n", nil
}

// CSVHeader is the first row of every CSV export.
var CSVHeader = []string{"id", "timestamp", "text", "duration", "mime_type", "audio_size"}

// RenderCSV emits one row per record. Audio is summarised by size, not embedded.
func RenderCSV(records []model.TranslationRecord) ([]byte, error) {
	rows := lo.Map(records, func(r model.TranslationRecord, _ int) []string {
		size := ""
		if r.HasAudio() {
			size = codec.SizeLabel(int64(len(r.AudioData)))
		}
		return []string{
			strconv.FormatInt(r.ID, 10),
			r.Timestamp,
			r.Text,
			strconv.FormatFloat(r.Duration, 'f', -1, 64),
			r.MimeType,
			size,
		}
	})

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(CSVHeader); err != nil {
		return nil, apperrors.Wrap(err, "failed to write csv")
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, apperrors.Wrap(err, "failed to write csv")
	}
	return buf.Bytes(), nil
}
