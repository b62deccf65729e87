package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yuchen/hana/internal/excel"
	"github.com/yuchen/hana/internal/vocab"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Manage the vocabulary lists",
}

var vocabListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the working vocabulary set",
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

		for _, w := range vocab.NewCatalog(master, custom).Words() {
			fmt.Printf("%-8s %-10s %-12s %-20s %s %s\n",
				w.ID, w.Korean, w.Meaning, w.MeaningEn, w.POS, w.Level)
		}
		return nil
	},
}

var vocabImportCmd = &cobra.Command{
	Use:   "import <file.xlsx|file.csv>",
	Short: "Replace the master list from a spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet, _ := cmd.Flags().GetString("sheet")
		startRow, _ := cmd.Flags().GetInt("start-row")

		cfg := excel.DefaultConfig(args[0])
		if sheet != "" {
			cfg.Sheet = sheet
		}
		if startRow > 0 {
			cfg.StartRow = startRow
		}

		words, result, err := excel.ReadWords(cfg)
		if err != nil {
			return err
		}
		for _, msg := range result.Errors {
			fmt.Fprintln(cmd.ErrOrStderr(), "skipped:", msg)
		}
		if result.Imported == 0 {
			return fmt.Errorf("no valid rows in %s", args[0])
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.VocabRepo().ReplaceMaster(words); err != nil {
			return fmt.Errorf("replace master list: %w", err)
		}

		fmt.Printf("Imported %d words (%d rows skipped)\n", result.Imported, result.Skipped)
		return nil
	},
}

var vocabAddCmd = &cobra.Command{
	Use:   "add <korean> <gloss>",
	Short: "Add a custom word",
	Long: "Add a single word to the custom list. The gloss goes to the " +
		"Chinese or English column depending on --lang.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, _ := cmd.Flags().GetString("lang")
		posFlag, _ := cmd.Flags().GetString("pos")
		levelFlag, _ := cmd.Flags().GetString("level")
		freqFlag, _ := cmd.Flags().GetString("freq")
		roman, _ := cmd.Flags().GetString("roman")
		example, _ := cmd.Flags().GetString("example")

		pos := vocab.POS(posFlag)
		if !pos.Valid() {
			return fmt.Errorf("unknown part of speech %q", posFlag)
		}
		level := vocab.Level(strings.ToUpper(levelFlag))
		if !level.Valid() {
			return fmt.Errorf("unknown level %q", levelFlag)
		}

		w := vocab.Word{
			ID:           "c_" + uuid.NewString()[:8],
			Korean:       args[0],
			Romanization: roman,
			Example:      example,
			Frequency:    excel.Unranked,
			POS:          pos,
			Level:        level,
		}
		if lang == "en" {
			w.MeaningEn = args[1]
		} else {
			w.Meaning = args[1]
		}
		if freqFlag != "" {
			rank, err := strconv.Atoi(freqFlag)
			if err != nil || rank < 1 {
				return fmt.Errorf("bad frequency rank %q", freqFlag)
			}
			w.Frequency = rank
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.VocabRepo().AddCustom(w); err != nil {
			return err
		}
		fmt.Printf("Added %s (%s)\n", w.Korean, w.ID)
		return nil
	},
}

func init() {
	vocabImportCmd.Flags().String("sheet", "", "Worksheet name (default Sheet1)")
	vocabImportCmd.Flags().Int("start-row", 0, "First data row, 1-based (default 2)")

	vocabAddCmd.Flags().String("lang", "zh", "Gloss language: zh or en")
	vocabAddCmd.Flags().String("pos", string(vocab.POSNoun), "Part of speech tag")
	vocabAddCmd.Flags().String("level", string(vocab.LevelA), "Level: A, B, or C")
	vocabAddCmd.Flags().String("freq", "", "Frequency rank (lower = more frequent)")
	vocabAddCmd.Flags().String("roman", "", "Romanization")
	vocabAddCmd.Flags().String("example", "", "Example sentence")

	vocabCmd.AddCommand(vocabListCmd)
	vocabCmd.AddCommand(vocabImportCmd)
	vocabCmd.AddCommand(vocabAddCmd)
}
