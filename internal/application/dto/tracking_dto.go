package dto

import "time"

// UpsertTrackingRequest create-or-update input, keyed by tracking number.
// Empty optional fields leave the stored values untouched on update.
type UpsertTrackingRequest struct {
	TrackingNumber string `json:"trackingNumber" validate:"required"`
	Status         string `json:"status" validate:"omitempty"`
	Location       string `json:"location" validate:"omitempty"`
	Destination    string `json:"destination" validate:"omitempty"`
	Phone          string `json:"phone" validate:"omitempty,max=30"`
}

// OwnerSummary contact details of the owning account, resolved only for
// employee listings.
type OwnerSummary struct {
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// TrackingData one tracking record on the wire.
type TrackingData struct {
	ID             string        `json:"id"`
	TrackingNumber string        `json:"trackingNumber"`
	UserID         string        `json:"userId"`
	Phone          string        `json:"phone,omitempty"`
	Status         string        `json:"status"`
	Location       string        `json:"location,omitempty"`
	Destination    string        `json:"destination,omitempty"`
	LastUpdated    time.Time     `json:"lastUpdated"`
	CreatedAt      time.Time     `json:"createdAt"`
	Owner          *OwnerSummary `json:"owner,omitempty"`
}

// TrackingResponse success envelope for a single record.
type TrackingResponse struct {
	Success bool         `json:"success"`
	Data    TrackingData `json:"data"`
}

// TrackingListResponse success envelope for listings.
type TrackingListResponse struct {
	Success bool           `json:"success"`
	Data    []TrackingData `json:"data"`
}

// DeleteResponse success envelope for deletes; Data is null when no record
// matched the identifier.
type DeleteResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    *TrackingData `json:"data"`
}

// ColumnMapping maps spreadsheet column labels to record fields for bulk
// import. The userId column feeds the record's phone field; the wire name is
// kept as the frontend sends it.
type ColumnMapping struct {
	Tracking string `json:"tracking"`
	UserID   string `json:"userId"`
	Status   string `json:"status"`
	Location string `json:"location"`
}

// ImportedRecord is one row as constructed during bulk import (the candidate
// values, not the persisted row).
type ImportedRecord struct {
	TrackingNumber string `json:"trackingNumber"`
	UserID         string `json:"userId"`
	Phone          string `json:"phone,omitempty"`
	Status         string `json:"status"`
	Location       string `json:"location"`
	Destination    string `json:"destination"`
}

// UploadResponse success envelope for bulk import.
type UploadResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Count   int              `json:"count"`
	Data    []ImportedRecord `json:"data"`
}
