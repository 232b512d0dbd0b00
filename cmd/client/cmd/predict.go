package cmd

import (
	"context"
	"fmt"
	"time"

	"diascreen/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var measurements client.Measurements

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Выполнить скрининг диабета",
	Long: `Отправляет восемь клинических показателей на сервер и выводит
результат скрининга. Требуется активная сессия (diascreen login).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := app.Predict(ctx, measurements)
		if err != nil {
			return fmt.Errorf("ошибка скрининга: %w", err)
		}

		fmt.Print("Результат: ")
		printResult(result)

		return nil
	},
}

func printResult(result string) {
	switch result {
	case "Diabetic":
		color.New(color.FgRed, color.Bold).Println(result)
	case "Non-Diabetic":
		color.New(color.FgGreen, color.Bold).Println(result)
	default:
		fmt.Println(result)
	}
}

func init() {
	predictCmd.Flags().Float64Var(&measurements.Pregnancies, "pregnancies", 0, "число беременностей")
	predictCmd.Flags().Float64Var(&measurements.Glucose, "glucose", 0, "глюкоза плазмы")
	predictCmd.Flags().Float64Var(&measurements.BloodPressure, "blood-pressure", 0, "диастолическое давление")
	predictCmd.Flags().Float64Var(&measurements.SkinThickness, "skin-thickness", 0, "толщина кожной складки")
	predictCmd.Flags().Float64Var(&measurements.Insulin, "insulin", 0, "инсулин сыворотки")
	predictCmd.Flags().Float64Var(&measurements.BMI, "bmi", 0, "индекс массы тела")
	predictCmd.Flags().Float64Var(&measurements.DiabetesPedigreeFunction, "pedigree", 0, "наследственная функция")
	predictCmd.Flags().Float64Var(&measurements.Age, "age", 0, "возраст")

	_ = predictCmd.MarkFlagRequired("glucose")
	_ = predictCmd.MarkFlagRequired("bmi")
	_ = predictCmd.MarkFlagRequired("age")

	rootCmd.AddCommand(predictCmd)
}
