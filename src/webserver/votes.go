package webserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Yuvraj-cyborg/Verdyce/src/consensus"
	"github.com/Yuvraj-cyborg/Verdyce/src/data"
)

type Votes struct{ rdb *redis.Client }

func NewVotes(rdb *redis.Client) Votes { return Votes{rdb: rdb} }

// Cast records a ballot on a pending proposal. All input validation happens
// here; the consensus core assumes well-formed values.
func (v Votes) Cast(c *gin.Context) {
	var req struct {
		ValidatorID string `json:"validatorId" binding:"required"`
		Choice      string `json:"choice" binding:"required,oneof=yes no abstain"`
		Revision    int64  `json:"revision"`
		Reason      string `json:"reason"`
		Timestamp   string `json:"timestamp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	proposalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": "bad proposal id"})
		return
	}
	validatorID, err := uuid.Parse(req.ValidatorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": "bad validator id"})
		return
	}

	ts := time.Now().UTC()
	if req.Timestamp != "" {
		ts, err = time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"err": "bad timestamp, want RFC3339"})
			return
		}
	}

	p, err := data.LoadProposal(c.Request.Context(), v.rdb, proposalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"err": "proposal not found"})
		return
	}
	if p.Status != consensus.StatusPending {
		c.JSON(http.StatusConflict, gin.H{"err": "proposal not pending"})
		return
	}

	p.AddVote(consensus.Vote{
		ValidatorID: validatorID,
		Choice:      consensus.Choice(req.Choice),
		Timestamp:   ts,
		Revision:    req.Revision,
		Reason:      req.Reason,
	})

	if err := data.SaveProposal(c.Request.Context(), v.rdb, p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	c.Status(http.StatusCreated)
}
