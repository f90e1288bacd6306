package archive

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"voice-notes/internal/app/model"
	"voice-notes/internal/app/progress"
)

// Source lists the records to archive. The returned func releases any
// playback handles the listing issued.
type Source interface {
	Snapshot(ctx context.Context) ([]model.TranslationRecord, func(), error)
}

// Options tune ArchiveAll. All fields are optional.
type Options struct {
	Progress *progress.Manager
	Logger   *zap.Logger
}

// Uploaded describes one archived record.
type Uploaded struct {
	ID  int64  `json:"id"`
	Key string `json:"key"`
	URL string `json:"url"`
}

// Result summarises an ArchiveAll run.
type Result struct {
	Uploaded []Uploaded `json:"uploaded"`
	Skipped  int        `json:"skipped"`
}

// ArchiveAll uploads the audio of every record that has some. Text-only
// records are counted as skipped. The first upload failure stops the run.
func ArchiveAll(ctx context.Context, src Source, dst AudioArchive, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	records, release, err := src.Snapshot(ctx)
	if err != nil {
		return Result{}, err
	}
	defer release()

	withAudio := lo.Filter(records, func(r model.TranslationRecord, _ int) bool {
		return r.HasAudio()
	})
	res := Result{
		Uploaded: make([]Uploaded, 0, len(withAudio)),
		Skipped:  len(records) - len(withAudio),
	}

	bar := opts.Progress.CreateBar(len(withAudio), "Archiving audio")
	defer opts.Progress.Wait()

	for _, rec := range withAudio {
		if err := ctx.Err(); err != nil {
			bar.Abort()
			return res, err
		}

		key := ObjectKey(rec.ID, rec.MimeType)
		url, err := dst.Put(ctx, key, rec.AudioData, rec.MimeType)
		if err != nil {
			bar.Abort()
			return res, fmt.Errorf("archive record %d: %w", rec.ID, err)
		}
		logger.Debug("archived audio", zap.Int64("id", rec.ID), zap.String("key", key))
		res.Uploaded = append(res.Uploaded, Uploaded{ID: rec.ID, Key: key, URL: url})
		bar.Increment()
	}
	bar.Complete()

	logger.Info("archive finished", zap.Int("uploaded", len(res.Uploaded)), zap.Int("skipped", res.Skipped))
	return res, nil
}
