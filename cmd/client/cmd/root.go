package cmd

import (
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"diascreen/internal/app/client"
	"diascreen/internal/app/client/config"
	"diascreen/internal/utils/logger"

	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "diascreen",
	Short: "DiaScreen - клиент сервиса скрининга диабета",
	Long: `DiaScreen — консольный клиент сервиса скрининга диабета.

Пациент регистрируется, получает идентификатор и пароль, входит в систему
и отправляет восемь клинических показателей. Сервер возвращает результат
скрининга, который также сохраняется в локальной истории.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(_ *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера DiaScreen")
}
