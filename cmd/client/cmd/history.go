package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Показать локальную историю скринингов",
	RunE: func(_ *cobra.Command, _ []string) error {
		entries, err := app.History()
		if err != nil {
			return fmt.Errorf("ошибка чтения истории: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("История пуста.")
			return nil
		}

		fmt.Printf("%-5s %-20s %-9s %-7s %-5s %s\n", "ID", "Дата", "Глюкоза", "ИМТ", "Возр.", "Результат")
		for _, e := range entries {
			fmt.Printf("%-5d %-20s %-9.1f %-7.1f %-5.0f ", e.ID, e.CreatedAt.Format("2006-01-02 15:04:05"), e.Glucose, e.BMI, e.Age)
			printResult(e.Result)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
