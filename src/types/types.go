package types

import (
	"time"

	"github.com/Yuvraj-cyborg/Verdyce/src/consensus"
)

// ProposalArchive is the MySQL row written once when a proposal reaches a
// terminal status. It is bookkeeping for reporting; the authoritative
// proposal state lives in Redis.
type ProposalArchive struct {
	ID            string `gorm:"primaryKey;size:36"`
	Title         string `gorm:"size:255"`
	Status        string `gorm:"size:16;not null"`
	ApprovalRatio float64
	VoteCount     int   `gorm:"default:0"`
	ExtendedBy    int64 `gorm:"default:0"`
	CreatedAt     time.Time
	DecidedAt     time.Time
}

// NewProposalArchive flattens a finalized proposal into its archive row.
func NewProposalArchive(p *consensus.Proposal, decidedAt time.Time) ProposalArchive {
	return ProposalArchive{
		ID:            p.ID.String(),
		Title:         p.Title,
		Status:        string(p.Status),
		ApprovalRatio: p.ApprovalRatio(),
		VoteCount:     len(p.Votes),
		ExtendedBy:    p.Window.ExtendedBy,
		CreatedAt:     p.CreatedAt,
		DecidedAt:     decidedAt,
	}
}
