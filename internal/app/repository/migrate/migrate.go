package migrate

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"voice-notes/internal/app/model"
	"voice-notes/internal/app/progress"
	"voice-notes/internal/app/repository"
)

// Result summarises a copy run.
type Result struct {
	Copied  int
	Skipped int
}

// Options tune Copy. All fields are optional.
type Options struct {
	Progress *progress.Manager
	Logger   *zap.Logger
}

// Copy inserts every record of src into dst, oldest first, so the relative
// order survives even though dst assigns new ids. Records whose timestamp
// cannot be parsed are skipped and logged.
func Copy(ctx context.Context, src, dst repository.TranslationDAO, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	records, err := src.FindAll(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("read source: %w", err)
	}
	model.SortNewestFirst(records)
	slices.Reverse(records)

	bar := opts.Progress.CreateBar(len(records), "Copying translations")
	defer opts.Progress.Wait()

	var res Result
	for i := range records {
		if err := ctx.Err(); err != nil {
			bar.Abort()
			return res, err
		}

		rec := records[i]
		if _, err := model.ParseTimestamp(rec.Timestamp); err != nil {
			logger.Warn("skipping record with invalid timestamp",
				zap.Int64("id", rec.ID), zap.String("timestamp", rec.Timestamp))
			res.Skipped++
			bar.Increment()
			continue
		}

		newID, err := dst.Insert(ctx, &rec)
		if err != nil {
			bar.Abort()
			return res, fmt.Errorf("write record %d: %w", rec.ID, err)
		}
		logger.Debug("copied record", zap.Int64("from", rec.ID), zap.Int64("to", newID))
		res.Copied++
		bar.Increment()
	}
	bar.Complete()

	logger.Info("migration finished", zap.Int("copied", res.Copied), zap.Int("skipped", res.Skipped))
	return res, nil
}
