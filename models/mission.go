package models

import "time"

// Mission lifecycle statuses. Transitions only move forward:
// open -> in_progress -> completed -> paid. Paid is terminal.
const (
	MissionOpen       = "open"
	MissionInProgress = "in_progress"
	MissionCompleted  = "completed"
	MissionPaid       = "paid"
)

type Mission struct {
	MissionID     string    `bson:"missionid,omitempty" json:"missionid"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description" json:"description"`
	Budget        int       `bson:"budget" json:"budget"`
	Skills        []string  `bson:"skills,omitempty" json:"skills,omitempty"`
	RecruiterID   string    `bson:"recruiterid" json:"recruiterid"`
	HiredTalentID string    `bson:"hired_talentid,omitempty" json:"hired_talentid,omitempty"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	CompletedAt   time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	PaidAt        time.Time `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}
