package repository

import "github.com/akwaabafreight/tracking-api/internal/domain/entity"

// TrackingRepository is the persistence port for TrackingRecord.
//
// Upsert is keyed on the tracking number exactly as stored in the candidate
// record (no case normalization on the write path). When the number already
// exists, only non-empty Status/Location/Destination overwrite the stored
// values and LastUpdated is refreshed; owner and phone are untouched. When
// it does not exist, the candidate is inserted with Status defaulting to
// Pending if empty. The operation is a single atomic statement: there is no
// read-then-write window between concurrent upserts of the same number.
type TrackingRepository interface {
	ListAll() ([]*entity.TrackingRecordWithOwner, error)
	ListByOwner(userID string) ([]*entity.TrackingRecord, error)
	FindByNumber(trackingNumber string) (*entity.TrackingRecord, error)
	Upsert(rec *entity.TrackingRecord) (*entity.TrackingRecord, error)
	// DeleteByID removes a record unconditionally and returns it, or
	// (nil, nil) when no such record existed.
	DeleteByID(id string) (*entity.TrackingRecord, error)
}
