package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yuchen/hana/internal/progress"
	"github.com/yuchen/hana/internal/stats"
	"github.com/yuchen/hana/internal/vocab"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		master, err := st.VocabRepo().LoadMaster()
		if err != nil {
			return fmt.Errorf("load master list: %w", err)
		}
		if len(master) == 0 {
			master = vocab.Seed
		}
		custom, err := st.VocabRepo().LoadCustom()
		if err != nil {
			return fmt.Errorf("load custom words: %w", err)
		}

		records, err := st.ProgressRepo().LoadProgress()
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		entries, err := st.ProgressRepo().LoadStreak()
		if err != nil {
			return fmt.Errorf("load streak: %w", err)
		}

		catalog := vocab.NewCatalog(master, custom)
		counts := stats.Aggregate(catalog.Words(), records)
		streak := progress.NewStreak(entries)
		now := time.Now()

		fmt.Printf("Words:      %d\n", counts.Total)
		fmt.Printf("Mastered:   %d\n", counts.Mastered)
		fmt.Printf("Proficient: %d\n", counts.Proficient)
		fmt.Printf("Learning:   %d\n", counts.Learning)
		fmt.Printf("Unseen:     %d\n", counts.Unseen)
		fmt.Printf("Streak:     %d days (%d answers today)\n",
			streak.CurrentRun(now), streak.CountOn(now.Format(progress.DateFormat)))
		return nil
	},
}
