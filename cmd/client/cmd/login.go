package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в систему DiaScreen",
	Long: `Аутентификация на сервере DiaScreen по User ID и паролю,
выданным при регистрации. Сессионный токен сохраняется локально.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Println("=== Вход в систему ===")
		fmt.Println()

		fmt.Print("User ID: ")
		var userID string
		_, _ = fmt.Scanln(&userID)

		fmt.Print("Пароль: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		fmt.Println("Аутентификация...")
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Login(ctx, userID, string(password)); err != nil {
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		name, err := app.Home(ctx)
		if err != nil {
			return fmt.Errorf("ошибка получения данных сессии: %w", err)
		}

		fmt.Println()
		fmt.Printf("Вход выполнен успешно. Добро пожаловать, %s!\n", name)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
