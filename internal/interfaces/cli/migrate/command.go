package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"rosecraft/internal/infrastructure/config"
	"rosecraft/internal/infrastructure/database"
	"rosecraft/internal/infrastructure/persistence/models"
	"rosecraft/internal/shared/biztime"
	"rosecraft/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Create or update the database schema from the persistence models.`,
		RunE:  runMigrate,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func initEnv() (logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := biztime.Init(cfg.Business.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return log, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running schema migration", "environment", env)

	if err := database.Get().AutoMigrate(
		&models.BranchModel{},
		&models.JobTypeModel{},
		&models.TicketModel{},
		&models.PaymentModel{},
		&models.WorkflowStepModel{},
		&models.StepProgressModel{},
		&models.StepAssignmentModel{},
		&models.StockItemModel{},
		&models.StockMovementModel{},
	); err != nil {
		log.Errorw("schema migration failed", "error", err)
		return fmt.Errorf("schema migration failed: %w", err)
	}

	log.Infow("schema migration completed successfully")
	return nil
}
