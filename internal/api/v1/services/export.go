package services

import (
	"context"

	"voice-notes/internal/api/v1/dto"
	"voice-notes/internal/app/export"
)

type exportService struct {
	exporter *export.Service
}

// NewExportService creates a new export service
func NewExportService(exporter *export.Service) ExportService {
	return &exportService{exporter: exporter}
}

func (s *exportService) Export(ctx context.Context, query dto.ExportQuery) (*dto.ExportFile, error) {
	name := query.Format
	if name == "" {
		name = string(export.FormatJSON)
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	res, err := s.exporter.Export(ctx, export.Request{
		Format: format,
		Mongo:  export.MongoTarget{Database: query.Database, Collection: query.Collection},
	})
	if err != nil {
		return nil, err
	}
	return &dto.ExportFile{Filename: res.Filename, ContentType: res.ContentType, Content: res.Content}, nil
}
