package importer

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akwaabafreight/tracking-api/internal/application/dto"
	"github.com/akwaabafreight/tracking-api/internal/domain"
	"github.com/akwaabafreight/tracking-api/internal/domain/entity"
	"github.com/akwaabafreight/tracking-api/internal/domain/repository"
)

// RowParser turns an uploaded spreadsheet into rows of column-label → cell
// value, first sheet only. Implemented by infrastructure/spreadsheet.
type RowParser interface {
	Rows(filename string, data []byte) ([]map[string]string, error)
}

// UseCase bulk spreadsheet import. Rows run through the same atomic upsert
// as interactive tracking writes, one row at a time; the first storage error
// aborts the whole batch.
type UseCase struct {
	repo   repository.TrackingRepository
	parser RowParser
}

// NewUseCase builds the import use case.
func NewUseCase(repo repository.TrackingRepository, parser RowParser) *UseCase {
	return &UseCase{repo: repo, parser: parser}
}

// ImportSpreadsheet parses the file and upserts one record per row in file
// order. Rows with an empty tracking-number cell are skipped silently. The
// mapping's userId column feeds the record's phone field; status defaults to
// Pending, location to Unknown, destination is the fixed placeholder "TBD",
// and the importer becomes the owner of newly created records. The returned
// slice holds the constructed candidates, not the persisted rows.
func (uc *UseCase) ImportSpreadsheet(filename string, data []byte, mapping dto.ColumnMapping, importerID string) ([]dto.ImportedRecord, error) {
	rows, err := uc.parser.Rows(filename, data)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	records := make([]dto.ImportedRecord, 0, len(rows))
	for _, row := range rows {
		trackingNumber := strings.TrimSpace(row[mapping.Tracking])
		if trackingNumber == "" {
			continue
		}
		status, ok := entity.ParseStatus(row[mapping.Status])
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		if status == "" {
			status = entity.StatusPending
		}
		location := row[mapping.Location]
		if location == "" {
			location = "Unknown"
		}
		now := time.Now()
		candidate := &entity.TrackingRecord{
			ID:             uuid.New().String(),
			TrackingNumber: trackingNumber,
			UserID:         importerID,
			Phone:          row[mapping.UserID],
			Status:         status,
			Location:       location,
			Destination:    "TBD",
			LastUpdated:    now,
			CreatedAt:      now,
		}
		if _, err := uc.repo.Upsert(candidate); err != nil {
			return nil, err
		}
		records = append(records, dto.ImportedRecord{
			TrackingNumber: candidate.TrackingNumber,
			UserID:         candidate.UserID,
			Phone:          candidate.Phone,
			Status:         string(candidate.Status),
			Location:       candidate.Location,
			Destination:    candidate.Destination,
		})
	}
	return records, nil
}
