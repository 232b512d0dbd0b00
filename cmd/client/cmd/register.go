package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"diascreen/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Зарегистрировать нового пациента",
	Long: `Регистрация пациента на сервере DiaScreen.

После регистрации сервер выдает User ID и пароль. Сохраните их:
они понадобятся для входа и не показываются повторно.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Println("=== Регистрация пациента ===")
		fmt.Println()

		reader := bufio.NewReader(os.Stdin)

		name, err := promptLine(reader, "Имя: ")
		if err != nil {
			return err
		}

		ageStr, err := promptLine(reader, "Возраст: ")
		if err != nil {
			return err
		}
		age, err := strconv.Atoi(ageStr)
		if err != nil {
			return fmt.Errorf("возраст должен быть числом")
		}

		address, err := promptLine(reader, "Адрес: ")
		if err != nil {
			return err
		}

		mobile, err := promptLine(reader, "Телефон: ")
		if err != nil {
			return err
		}

		problem, err := promptLine(reader, "Жалоба: ")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		creds, err := app.Register(ctx, client.RegisterForm{
			Name:    name,
			Age:     age,
			Address: address,
			Mobile:  mobile,
			Problem: problem,
		})
		if err != nil {
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		fmt.Println()
		fmt.Println(creds.Message)
		fmt.Println()
		color.New(color.Bold).Printf("User ID:  %s\n", creds.UserID)
		color.New(color.Bold).Printf("Password: %s\n", creds.Password)

		return nil
	},
}

func promptLine(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("ошибка чтения ввода: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
