package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yuchen/hana/internal/app"
	"github.com/yuchen/hana/internal/progress"
	"github.com/yuchen/hana/internal/recognize"
	"github.com/yuchen/hana/internal/screens/home"
	"github.com/yuchen/hana/internal/speech"
	"github.com/yuchen/hana/internal/store"
	"github.com/yuchen/hana/internal/vocab"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps, err := buildDeps(cmd.Context(), st)
	if err != nil {
		return err
	}

	return app.Run(deps)
}

// buildDeps loads persisted state and wires the optional cloud
// services. Missing API keys degrade features, never abort startup.
func buildDeps(ctx context.Context, st *store.Store) (home.Deps, error) {
	vocabRepo := st.VocabRepo()
	master, err := vocabRepo.LoadMaster()
	if err != nil {
		return home.Deps{}, fmt.Errorf("load master list: %w", err)
	}
	if len(master) == 0 {
		master = vocab.Seed
	}
	custom, err := vocabRepo.LoadCustom()
	if err != nil {
		return home.Deps{}, fmt.Errorf("load custom words: %w", err)
	}

	progressRepo := st.ProgressRepo()
	records, err := progressRepo.LoadProgress()
	if err != nil {
		return home.Deps{}, fmt.Errorf("load progress: %w", err)
	}
	streak, err := progressRepo.LoadStreak()
	if err != nil {
		return home.Deps{}, fmt.Errorf("load streak: %w", err)
	}

	prefs, err := st.SettingsRepo().Load()
	if err != nil {
		return home.Deps{}, fmt.Errorf("load settings: %w", err)
	}

	deps := home.Deps{
		Catalog:      vocab.NewCatalog(master, custom),
		Tracker:      progress.NewTracker(records, streak, progressRepo),
		Settings:     &prefs,
		SettingsRepo: st.SettingsRepo(),
	}

	speaker, err := speech.NewSpeaker(ctx, speech.ConfigFromEnv())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Speech not configured:", err)
		speaker = speech.Noop{}
	}
	deps.Speaker = speaker

	if cfg, ok := recognize.DiscoverConfig(); ok {
		rec, err := recognize.NewRecognizer(ctx, cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Handwriting recognition not configured:", err)
			fmt.Fprintln(os.Stderr, "Handwritten answers will be marked unreadable.")
		} else {
			deps.Recognizer = rec
		}
	}

	return deps, nil
}
