package data

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Yuvraj-cyborg/Verdyce/src/consensus"
)

const (
	proposalPrefix = "proposal:"
	proposalIndex  = "proposals"
)

func MustRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}

func proposalKey(id uuid.UUID) string {
	return proposalPrefix + id.String()
}

// SaveProposal serializes the full proposal (window, votes, models) to its
// key and registers the id in the index set.
func SaveProposal(ctx context.Context, rdb *redis.Client, p *consensus.Proposal) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}

	pipe := rdb.TxPipeline()
	pipe.Set(ctx, proposalKey(p.ID), raw, 0)
	pipe.SAdd(ctx, proposalIndex, p.ID.String())
	_, err = pipe.Exec(ctx)
	return err
}

// LoadProposal fetches a proposal by id. A missing key is an explicit
// absence, (nil, nil), not an error.
func LoadProposal(ctx context.Context, rdb *redis.Client, id uuid.UUID) (*consensus.Proposal, error) {
	raw, err := rdb.Get(ctx, proposalKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p consensus.Proposal
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProposalIDs returns every id in the index set. Entries that no longer
// parse as UUIDs are skipped.
func ListProposalIDs(ctx context.Context, rdb *redis.Client) ([]uuid.UUID, error) {
	members, err := rdb.SMembers(ctx, proposalIndex).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// LoadEngine builds an in-memory registry from every stored proposal.
func LoadEngine(ctx context.Context, rdb *redis.Client) (*consensus.Engine, error) {
	ids, err := ListProposalIDs(ctx, rdb)
	if err != nil {
		return nil, err
	}

	engine := consensus.NewEngine()
	for _, id := range ids {
		p, err := LoadProposal(ctx, rdb, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		engine.Add(p)
	}
	return engine, nil
}
