package models

import "time"

// Proposal statuses, mutated by the recruiter (view, accept, refuse) and
// indirectly by interview creation.
const (
	ProposalNotViewed = "NOT_VIEWED"
	ProposalViewed    = "VIEWED"
	ProposalAccepted  = "ACCEPTED"
	ProposalRefused   = "REFUSED"
)

type Proposal struct {
	ProposalID     string    `bson:"proposalid,omitempty" json:"proposalid"`
	MissionID      string    `bson:"missionid" json:"missionid"`
	TalentID       string    `bson:"talentid" json:"talentid"`
	RecruiterID    string    `bson:"recruiterid" json:"recruiterid"`
	Status         string    `bson:"status" json:"status"`
	Message        string    `bson:"message" json:"message"`
	ProposedBudget *int      `bson:"proposed_budget,omitempty" json:"proposed_budget,omitempty"`
	AIScore        *int      `bson:"ai_score,omitempty" json:"ai_score,omitempty"`
	SubmittedAt    time.Time `bson:"submittedAt" json:"submittedAt"`
	UpdatedAt      time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
