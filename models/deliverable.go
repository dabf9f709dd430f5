package models

import (
	"errors"
	"time"
)

const (
	DeliverablePendingReview     = "pending_review"
	DeliverableApproved          = "approved"
	DeliverableRevisionRequested = "revision_requested"
)

const (
	DeliverableFile = "file"
	DeliverableLink = "link"
)

// FilePayload holds the file variant of a deliverable.
type FilePayload struct {
	FileURL  string `bson:"file_url" json:"file_url"`
	FileName string `bson:"file_name" json:"file_name"`
	FileSize int64  `bson:"file_size" json:"file_size"`
	FileType string `bson:"file_type" json:"file_type"`
	ThumbURL string `bson:"thumb_url,omitempty" json:"thumb_url,omitempty"`
}

// LinkPayload holds the link variant of a deliverable.
type LinkPayload struct {
	URL string `bson:"url" json:"url"`
}

// Deliverable is a tagged union: Type decides which payload is authoritative,
// and exactly one of File/Link must be set.
type Deliverable struct {
	DeliverableID   string       `bson:"deliverableid,omitempty" json:"deliverableid"`
	MessageID       string       `bson:"messageid,omitempty" json:"messageid,omitempty"`
	MissionID       string       `bson:"missionid" json:"missionid"`
	SenderID        string       `bson:"senderid" json:"senderid"`
	ReceiverID      string       `bson:"receiverid" json:"receiverid"`
	Type            string       `bson:"type" json:"type"`
	File            *FilePayload `bson:"file,omitempty" json:"file,omitempty"`
	Link            *LinkPayload `bson:"link,omitempty" json:"link,omitempty"`
	Status          string       `bson:"status" json:"status"`
	RejectionReason string       `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	SubmittedAt     time.Time    `bson:"submittedAt" json:"submittedAt"`
	ReviewedAt      time.Time    `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
}

var ErrDeliverablePayload = errors.New("deliverable payload does not match its declared type")

// ValidatePayload checks that the payload matching the declared type is
// populated and the other variant is absent.
func (d *Deliverable) ValidatePayload() error {
	switch d.Type {
	case DeliverableFile:
		if d.File == nil || d.File.FileURL == "" || d.File.FileName == "" || d.File.FileType == "" {
			return ErrDeliverablePayload
		}
		if d.Link != nil {
			return ErrDeliverablePayload
		}
	case DeliverableLink:
		if d.Link == nil || d.Link.URL == "" {
			return ErrDeliverablePayload
		}
		if d.File != nil {
			return ErrDeliverablePayload
		}
	default:
		return ErrDeliverablePayload
	}
	return nil
}
