package webserver

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Yuvraj-cyborg/Verdyce/src/config"
	"github.com/Yuvraj-cyborg/Verdyce/src/consensus"
	"github.com/Yuvraj-cyborg/Verdyce/src/data"
	"github.com/Yuvraj-cyborg/Verdyce/src/decay"
	"github.com/Yuvraj-cyborg/Verdyce/src/threshold"
)

type Proposals struct {
	cfg config.Config
	db  *gorm.DB
	rdb *redis.Client
}

func NewProposals(cfg config.Config, db *gorm.DB, rdb *redis.Client) Proposals {
	return Proposals{cfg: cfg, db: db, rdb: rdb}
}

func (h Proposals) Create(c *gin.Context) {
	var req struct {
		Title          string  `json:"title" binding:"required"`
		Description    string  `json:"description"`
		Duration       int64   `json:"duration" binding:"required,gt=0"`
		Decay          string  `json:"decayModel"`
		DecayRate      float64 `json:"decayRate"`
		Threshold      string  `json:"thresholdModel"`
		ThresholdRate  float64 `json:"thresholdRate"`
		ThresholdStart float64 `json:"thresholdStart"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	// Model defaults mirror the CLI: exponential 0.1 decay, flat 0.5 bar.
	dm := decay.Exponential(0.1)
	if req.Decay != "" {
		kind, err := decay.ParseKind(req.Decay)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
			return
		}
		dm = decay.Model{Kind: kind, Rate: req.DecayRate}
	}

	tm := threshold.Linear(0.0, 0.5)
	if req.Threshold != "" {
		kind, err := threshold.ParseKind(req.Threshold)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
			return
		}
		tm = threshold.Model{Kind: kind, Rate: req.ThresholdRate, Start: req.ThresholdStart}
	}

	p := consensus.NewProposal(req.Title, req.Description, req.Duration, dm, tm)
	p.Window.MaxExtension = h.cfg.MaxExtension

	if err := data.SaveProposal(c.Request.Context(), h.rdb, p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        p.ID,
		"status":    p.Status,
		"expiresAt": p.CreatedAt.Add(time.Duration(req.Duration) * time.Second),
	})
}

func (h Proposals) Get(c *gin.Context) {
	p, ok := h.load(c)
	if !ok {
		return
	}

	now := time.Now().UTC()
	c.JSON(http.StatusOK, gin.H{
		"proposal":      p,
		"windowState":   p.Window.State(now),
		"votingPhase":   p.Window.Phase(now),
		"approvalRatio": p.ApprovalRatio(),
	})
}

func (h Proposals) List(c *gin.Context) {
	engine, err := data.LoadEngine(c.Request.Context(), h.rdb)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	var out []*consensus.Proposal
	switch c.Query("status") {
	case "pending":
		out = engine.Active()
	case "finalized":
		out = engine.Finalized()
	default:
		out = engine.All()
	}
	if out == nil {
		out = []*consensus.Proposal{}
	}
	c.JSON(http.StatusOK, out)
}

func (h Proposals) Evaluate(c *gin.Context) {
	p, ok := h.load(c)
	if !ok {
		return
	}

	now := time.Now().UTC()
	wasPending := p.Status == consensus.StatusPending
	p.Evaluate(now)

	if err := data.SaveProposal(c.Request.Context(), h.rdb, p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	if wasPending && p.Finalized() {
		h.archive(p, now)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            p.ID,
		"status":        p.Status,
		"approvalRatio": p.ApprovalRatio(),
	})
}

func (h Proposals) Extend(c *gin.Context) {
	var req struct {
		Seconds            int64   `json:"seconds"`
		ThresholdProximity float64 `json:"thresholdProximity"`
		TimeProximity      float64 `json:"timeProximity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	seconds, thProx, tProx := h.extensionParams(req.Seconds, req.ThresholdProximity, req.TimeProximity)

	p, ok := h.load(c)
	if !ok {
		return
	}

	p.ExtendWindow(time.Now().UTC(), seconds, thProx, tProx)
	if err := data.SaveProposal(c.Request.Context(), h.rdb, p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": p.ID, "extendedBy": p.Window.ExtendedBy})
}

func (h Proposals) EvaluateAll(c *gin.Context) {
	engine, err := data.LoadEngine(c.Request.Context(), h.rdb)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	now := time.Now().UTC()
	pendingBefore := len(engine.Active())
	engine.EvaluateAll(now)

	finalized := 0
	for _, p := range engine.All() {
		if err := data.SaveProposal(c.Request.Context(), h.rdb, p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
			return
		}
	}
	for _, p := range engine.Finalized() {
		h.archive(p, now)
		finalized++
	}

	c.JSON(http.StatusOK, gin.H{
		"evaluated":     len(engine.All()),
		"pendingBefore": pendingBefore,
		"pending":       len(engine.Active()),
		"finalized":     finalized,
	})
}

func (h Proposals) ExtendAll(c *gin.Context) {
	var req struct {
		Seconds            int64   `json:"seconds"`
		ThresholdProximity float64 `json:"thresholdProximity"`
		TimeProximity      float64 `json:"timeProximity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	seconds, thProx, tProx := h.extensionParams(req.Seconds, req.ThresholdProximity, req.TimeProximity)

	engine, err := data.LoadEngine(c.Request.Context(), h.rdb)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	engine.MaybeExtendAll(time.Now().UTC(), seconds, thProx, tProx)
	for _, p := range engine.All() {
		if err := data.SaveProposal(c.Request.Context(), h.rdb, p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"checked": len(engine.All())})
}

// load resolves the :id path param to a stored proposal, writing the error
// response itself when it cannot.
func (h Proposals) load(c *gin.Context) (*consensus.Proposal, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": "bad proposal id"})
		return nil, false
	}

	p, err := data.LoadProposal(c.Request.Context(), h.rdb, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return nil, false
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"err": "proposal not found"})
		return nil, false
	}
	return p, true
}

func (h Proposals) extensionParams(seconds int64, thProx, tProx float64) (int64, float64, float64) {
	if seconds <= 0 {
		seconds = h.cfg.ExtensionSeconds
	}
	if thProx <= 0 {
		thProx = h.cfg.ThresholdProximity
	}
	if tProx <= 0 {
		tProx = h.cfg.TimeProximity
	}
	return seconds, thProx, tProx
}

func (h Proposals) archive(p *consensus.Proposal, decidedAt time.Time) {
	if h.db == nil {
		return
	}
	if err := data.ArchiveProposal(h.db, p, decidedAt); err != nil {
		log.Printf("archive proposal %s: %v", p.ID, err)
	}
}
