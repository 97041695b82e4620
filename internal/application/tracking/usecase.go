package tracking

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akwaabafreight/tracking-api/internal/application/dto"
	"github.com/akwaabafreight/tracking-api/internal/domain"
	"github.com/akwaabafreight/tracking-api/internal/domain/entity"
	"github.com/akwaabafreight/tracking-api/internal/domain/repository"
)

// UseCase tracking-record queries and writes with role-based visibility.
type UseCase struct {
	repo repository.TrackingRepository
}

// NewUseCase builds the tracking use case.
func NewUseCase(repo repository.TrackingRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List returns all records for employees (owner contact details resolved) and
// only the requester's own records for everyone else.
func (uc *UseCase) List(requesterID string, role entity.Role) ([]dto.TrackingData, error) {
	if role == entity.RoleEmployee {
		records, err := uc.repo.ListAll()
		if err != nil {
			return nil, err
		}
		out := make([]dto.TrackingData, 0, len(records))
		for _, r := range records {
			d := toTrackingData(&r.TrackingRecord)
			d.Owner = &dto.OwnerSummary{Email: r.OwnerEmail, Phone: r.OwnerPhone}
			out = append(out, d)
		}
		return out, nil
	}
	records, err := uc.repo.ListByOwner(requesterID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TrackingData, 0, len(records))
	for _, r := range records {
		out = append(out, toTrackingData(r))
	}
	return out, nil
}

// Search looks a record up by tracking number, uppercased before the lookup.
// Returns ErrNotFound when absent and ErrForbidden when the requester is not
// an employee and does not own the record.
func (uc *UseCase) Search(trackingNumber, requesterID string, role entity.Role) (*dto.TrackingData, error) {
	rec, err := uc.repo.FindByNumber(strings.ToUpper(trackingNumber))
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if role != entity.RoleEmployee && rec.UserID != requesterID {
		return nil, domain.ErrForbidden
	}
	d := toTrackingData(rec)
	return &d, nil
}

// Upsert creates or updates a record keyed by the tracking number exactly as
// supplied. On update, only non-empty status/location/destination overwrite
// the stored values and LastUpdated is refreshed; on create the requester
// becomes the owner and an empty status defaults to Pending.
func (uc *UseCase) Upsert(requesterID string, in dto.UpsertTrackingRequest) (*dto.TrackingData, error) {
	if in.TrackingNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	status, ok := entity.ParseStatus(in.Status)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	candidate := &entity.TrackingRecord{
		ID:             uuid.New().String(),
		TrackingNumber: in.TrackingNumber,
		UserID:         requesterID,
		Phone:          in.Phone,
		Status:         status,
		Location:       in.Location,
		Destination:    in.Destination,
		LastUpdated:    now,
		CreatedAt:      now,
	}
	rec, err := uc.repo.Upsert(candidate)
	if err != nil {
		return nil, err
	}
	d := toTrackingData(rec)
	return &d, nil
}

// Delete removes a record by identifier, unconditionally, and returns the
// deleted record or nil when none matched. Authorization is the generic auth
// gate only: any authenticated user may delete any record.
func (uc *UseCase) Delete(id string) (*dto.TrackingData, error) {
	rec, err := uc.repo.DeleteByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	d := toTrackingData(rec)
	return &d, nil
}

func toTrackingData(r *entity.TrackingRecord) dto.TrackingData {
	return dto.TrackingData{
		ID:             r.ID,
		TrackingNumber: r.TrackingNumber,
		UserID:         r.UserID,
		Phone:          r.Phone,
		Status:         string(r.Status),
		Location:       r.Location,
		Destination:    r.Destination,
		LastUpdated:    r.LastUpdated,
		CreatedAt:      r.CreatedAt,
	}
}
