package entry

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"nestlog/internal/domain/entry"
	"nestlog/internal/utils/timeutil"
)

var (
	feedingType   string
	feedingVolume int
	feedingTime   string
	feedingNote   string

	diaperType  string
	diaperSub   string
	diaperColor string
	diaperTime  string

	sleepStart string
	sleepEnd   string

	growthWeight string
	growthHeight string
	growthDate   string
)

var AddFeedingCmd = &cobra.Command{
	Use:   "add-feeding",
	Short: "Record a feeding",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		if feedingTime == "" {
			feedingTime = time.Now().Format("03:04 PM")
		}

		created, err := app.AddFeeding(cmd.Context(), entry.Feeding{
			Type:   entry.FeedingType(feedingType),
			Volume: feedingVolume,
			Time:   feedingTime,
			Note:   feedingNote,
		})
		if err != nil {
			return fmt.Errorf("failed to add feeding: %w", err)
		}

		fmt.Printf("Added feeding %d: %s %dml at %s\n", created.ID, created.Type, created.Volume, created.Time)
		return nil
	},
}

var AddDiaperCmd = &cobra.Command{
	Use:   "add-diaper",
	Short: "Record a diaper change",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		if diaperTime == "" {
			diaperTime = time.Now().Format("03:04 PM")
		}

		created, err := app.AddDiaper(cmd.Context(), entry.Diaper{
			Type:  entry.DiaperType(diaperType),
			Sub:   diaperSub,
			Color: diaperColor,
			Time:  diaperTime,
		})
		if err != nil {
			return fmt.Errorf("failed to add diaper: %w", err)
		}

		fmt.Printf("Added diaper %d: %s at %s\n", created.ID, created.Type, created.Time)
		return nil
	},
}

var AddSleepCmd = &cobra.Command{
	Use:   "add-sleep",
	Short: "Record a sleep span",
	Long: `Records a sleep span from start to end (HH:MM, 24-hour). Spans that
cross midnight are handled, the duration is computed on the server.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		created, err := app.AddSleep(cmd.Context(), entry.Sleep{
			Start: sleepStart,
			End:   sleepEnd,
		})
		if err != nil {
			return fmt.Errorf("failed to add sleep: %w", err)
		}

		fmt.Printf("Added sleep %d: %s-%s (%s)\n", created.ID, created.Start, created.End, created.Duration)
		return nil
	},
}

var AddGrowthCmd = &cobra.Command{
	Use:   "add-growth",
	Short: "Record a growth measurement",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		if growthDate == "" {
			growthDate = timeutil.FormatDate(time.Now().UnixMilli())
		}

		created, err := app.AddGrowth(cmd.Context(), entry.Growth{
			Weight: growthWeight,
			Height: growthHeight,
			Date:   growthDate,
		})
		if err != nil {
			return fmt.Errorf("failed to add measurement: %w", err)
		}

		fmt.Printf("Added measurement %d: %skg / %scm on %s\n", created.ID, created.Weight, created.Height, created.Date)
		return nil
	},
}

func init() {
	AddFeedingCmd.Flags().StringVarP(&feedingType, "type", "t", "formula", "feeding type (formula, breast)")
	AddFeedingCmd.Flags().IntVarP(&feedingVolume, "volume", "v", 0, "volume in ml")
	AddFeedingCmd.Flags().StringVar(&feedingTime, "time", "", "display time (defaults to now)")
	AddFeedingCmd.Flags().StringVarP(&feedingNote, "note", "n", "", "optional note")

	AddDiaperCmd.Flags().StringVarP(&diaperType, "type", "t", "pee", "diaper type (pee, poo, mixed)")
	AddDiaperCmd.Flags().StringVar(&diaperSub, "sub", "", "consistency label")
	AddDiaperCmd.Flags().StringVar(&diaperColor, "color", "", "color label (ignored for pee)")
	AddDiaperCmd.Flags().StringVar(&diaperTime, "time", "", "display time (defaults to now)")

	AddSleepCmd.Flags().StringVarP(&sleepStart, "start", "s", "", "start time, HH:MM")
	AddSleepCmd.Flags().StringVarP(&sleepEnd, "end", "e", "", "end time, HH:MM")
	AddSleepCmd.MarkFlagRequired("start")
	AddSleepCmd.MarkFlagRequired("end")

	AddGrowthCmd.Flags().StringVarP(&growthWeight, "weight", "w", "", "weight in kg")
	AddGrowthCmd.Flags().StringVar(&growthHeight, "height", "", "height in cm")
	AddGrowthCmd.Flags().StringVarP(&growthDate, "date", "d", "", "measurement date, YYYY-MM-DD (defaults to today)")
	AddGrowthCmd.MarkFlagRequired("weight")
	AddGrowthCmd.MarkFlagRequired("height")
}
