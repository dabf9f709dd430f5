package models

import "time"

const (
	InterviewScheduled = "SCHEDULED"
	InterviewCompleted = "COMPLETED"
	InterviewCancelled = "CANCELLED"
)

// Meet-link sources
const (
	MeetSourceZoom   = "ZOOM"
	MeetSourceGoogle = "GOOGLE"
	MeetSourceManual = "MANUAL"
)

type Interview struct {
	InterviewID string    `bson:"interviewid,omitempty" json:"interviewid"`
	ProposalID  string    `bson:"proposalid" json:"proposalid"`
	MissionID   string    `bson:"missionid" json:"missionid"`
	RecruiterID string    `bson:"recruiterid" json:"recruiterid"`
	TalentID    string    `bson:"talentid" json:"talentid"`
	ScheduledAt time.Time `bson:"scheduledAt" json:"scheduledAt"`
	MeetLink    string    `bson:"meet_link" json:"meet_link"`
	Status      string    `bson:"status" json:"status"`
	Source      string    `bson:"source" json:"source"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
