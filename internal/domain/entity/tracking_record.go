package entity

import "time"

// Status is the shipment status of a tracking record.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusShipped   Status = "Shipped"
	StatusInTransit Status = "In Transit"
	StatusInGhana   Status = "In Ghana"
	StatusDelivered Status = "Delivered"
)

// ParseStatus validates a wire-level status string. Empty input is accepted
// as-is: on create it means "use the default", on update "keep the current".
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusShipped, StatusInTransit, StatusInGhana, StatusDelivered, "":
		return Status(s), true
	}
	return "", false
}

// TrackingRecord is one shipment. TrackingNumber is the caller-supplied
// business key and is globally unique; UserID references the owning account.
type TrackingRecord struct {
	ID             string
	TrackingNumber string
	UserID         string
	Phone          string
	Status         Status
	Location       string
	Destination    string
	LastUpdated    time.Time
	CreatedAt      time.Time
}

// TrackingRecordWithOwner is the employee-facing read model: the record plus
// the owning account's contact details resolved in the same query.
type TrackingRecordWithOwner struct {
	TrackingRecord
	OwnerEmail string
	OwnerPhone string
}
