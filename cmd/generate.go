package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sopmaster25-create/sopmaster/internal/config"
	"github.com/sopmaster25-create/sopmaster/internal/progress"
	"github.com/sopmaster25-create/sopmaster/internal/sop"
	"github.com/sopmaster25-create/sopmaster/internal/stats"
	"github.com/sopmaster25-create/sopmaster/internal/store"
)

var (
	genFirstName string
	genLastName  string
	genCompany   string
	genCategory  string
	genTitle     string
	genBrief     string
	genDepth     int
	genOut       string
	genSave      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draft an SOP document from the command line",
	Long: `Drafts a complete SOP document without the web UI. Prints the
document to stdout, or writes it with --out. With --save the document
is also appended to the library and counted in the monthly stats.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		depth, ok := sop.ParseDepth(fmt.Sprintf("%d", genDepth))
		if !ok {
			return fmt.Errorf("--depth must be 13 or 26, got %d", genDepth)
		}

		payload := sop.Payload{
			FirstName: genFirstName,
			LastName:  genLastName,
			Company:   genCompany,
			Category:  genCategory,
			Title:     genTitle,
			Brief:     genBrief,
		}
		if strings.TrimSpace(payload.Title) == "" {
			return fmt.Errorf("--title is required")
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		progress.Drafting(cfg.GenerateDelay())

		doc, err := sop.New().Build(payload, depth)
		if err != nil {
			return err
		}

		if genSave {
			st, err := store.Open(cfg.DatabasePath())
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer st.Close()

			ctx := context.Background()
			if err := st.AppendSOP(ctx, store.SOP{
				Title:     doc.Title,
				Category:  doc.Category,
				Depth:     int(doc.Depth),
				Content:   doc.Content,
				CreatedAt: doc.GeneratedAt,
			}); err != nil {
				return err
			}
			rec, err := stats.New(st).RecordSave(ctx, depth)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Saved. Month %s: %d SOPs, %d hours saved.\n",
				rec.MonthKey, rec.SOPs, rec.HoursSaved)
		}

		if genOut != "" {
			if err := os.WriteFile(genOut, []byte(doc.Content+"\n"), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", genOut, err)
			}
			fmt.Fprintf(os.Stderr, "Wrote %s (%s)\n", genOut, doc.ID)
			return nil
		}

		fmt.Println(doc.Content)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&genFirstName, "first", "", "owner first name")
	generateCmd.Flags().StringVar(&genLastName, "last", "", "owner last name")
	generateCmd.Flags().StringVar(&genCompany, "company", "", "company name")
	generateCmd.Flags().StringVar(&genCategory, "category", "Operations & Logistics", "SOP category")
	generateCmd.Flags().StringVar(&genTitle, "title", "", "SOP title (required)")
	generateCmd.Flags().StringVar(&genBrief, "brief", "", "process brief")
	generateCmd.Flags().IntVar(&genDepth, "depth", 13, "procedure depth: 13 or 26 steps")
	generateCmd.Flags().StringVar(&genOut, "out", "", "write the document to a file instead of stdout")
	generateCmd.Flags().BoolVar(&genSave, "save", false, "append to the library and record monthly stats")
	rootCmd.AddCommand(generateCmd)
}
