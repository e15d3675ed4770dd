package bootstrap

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	submissioninadapter "easeed/internal/modules/submission/adapter/in"
	submissionoutadapter "easeed/internal/modules/submission/adapter/out"
	submissionservice "easeed/internal/modules/submission/service"
	submissionusecase "easeed/internal/modules/submission/usecase"
	"easeed/internal/platform/clock"
	"easeed/internal/platform/config"
	"easeed/internal/platform/id"
	"easeed/internal/platform/logger"
	uiapp "easeed/internal/ui/app"
	"easeed/internal/ui/theme"
)

type App struct {
	Config        config.Config
	Logger        *zap.Logger
	SubmissionCLI submissioninadapter.CLIHandler
	SubmissionTUI submissioninadapter.TUIHandler
}

// Options tunes wiring that depends on how the program was started.
type Options struct {
	// Verbose mirrors warnings to stderr; only safe outside the TUI.
	Verbose bool
}

func New(cfg config.Config, opts Options) (*App, error) {
	log := logger.New(logger.Options{
		FilePath:   cfg.LogFile,
		Production: cfg.IsProduction(),
		Stderr:     opts.Verbose,
	})

	svc := submissionservice.NewSubmissionService(
		clock.SystemClock{},
		id.UUID{},
		submissionoutadapter.NewHTTPDispatcher(cfg.BackendURL, cfg.Timeout),
		submissionoutadapter.NewLocalFileInspector(),
		log.Named("submission"),
	)
	uc := submissionusecase.NewInteractor(svc, cfg.MaxUploadBytes)

	log.Debug("app wired",
		zap.String("backend_url", cfg.BackendURL),
		zap.Duration("timeout", cfg.Timeout),
		zap.String("environment", cfg.Environment),
	)

	return &App{
		Config:        cfg,
		Logger:        log,
		SubmissionCLI: submissioninadapter.NewCLIHandler(uc),
		SubmissionTUI: submissioninadapter.NewTUIHandler(uc),
	}, nil
}

// Close flushes buffered log entries.
func (a *App) Close() {
	_ = a.Logger.Sync()
}

func RunTUI(app *App) error {
	th := theme.New(theme.ParseMode(app.Config.Theme))
	model := uiapp.NewModel(app.Config.BackendURL, th, app.SubmissionTUI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
