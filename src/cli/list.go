package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Yuvraj-cyborg/Verdyce/src/config"
	"github.com/Yuvraj-cyborg/Verdyce/src/consensus"
	"github.com/Yuvraj-cyborg/Verdyce/src/data"
)

var listFinalized bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored proposals",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listFinalized, "finalized", false, "Show finalized proposals instead of pending ones")
}

func runList(cmd *cobra.Command, args []string) error {
	rdb := data.MustRedis(config.Load().RedisURL)
	engine, err := data.LoadEngine(context.Background(), rdb)
	if err != nil {
		return fmt.Errorf("load proposals: %w", err)
	}

	var proposals []*consensus.Proposal
	if listFinalized {
		proposals = engine.Finalized()
	} else {
		proposals = engine.Active()
	}

	if len(proposals) == 0 {
		fmt.Println("No proposals found.")
		return nil
	}

	for _, p := range proposals {
		fmt.Printf("%s  %s  ratio=%.3f  %s\n",
			p.ID,
			statusStyle(p.Status).Sprintf("%-8s", p.Status),
			p.ApprovalRatio(),
			p.Title,
		)
	}
	return nil
}
