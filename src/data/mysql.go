package data

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Yuvraj-cyborg/Verdyce/src/consensus"
	"github.com/Yuvraj-cyborg/Verdyce/src/types"
)

func MustMySQL(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	return db
}

// ArchiveProposal records a finalized proposal in MySQL. Re-archiving the
// same id is a no-op, so callers do not need to track what was written.
func ArchiveProposal(db *gorm.DB, p *consensus.Proposal, decidedAt time.Time) error {
	row := types.NewProposalArchive(p, decidedAt)
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}
