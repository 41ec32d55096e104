package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"rosecraft/internal/domain/workflow"
	"rosecraft/internal/infrastructure/config"
	"rosecraft/internal/infrastructure/database"
	"rosecraft/internal/infrastructure/repository"
	"rosecraft/internal/shared/biztime"
	"rosecraft/internal/shared/logger"
)

var (
	env  string
	file string
)

// stepSeed is one catalog entry in the seed file.
type stepSeed struct {
	Key   string `yaml:"key"`
	Name  string `yaml:"name"`
	Order int    `yaml:"order"`
}

type seedFile struct {
	WorkflowSteps []stepSeed `yaml:"workflow_steps"`
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed reference data",
		Long:  `Load the workflow step catalog from a YAML file and upsert it into the database.`,
		RunE:  runSeed,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to seed file (default: from config)")

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := biztime.Init(cfg.Business.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	path := file
	if path == "" {
		path = cfg.Seed.WorkflowStepsFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var seeds seedFile
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	log.Infow("seeding workflow steps", "environment", env, "file", path, "count", len(seeds.WorkflowSteps))

	ctx := context.Background()
	repo := repository.NewWorkflowStepRepository(database.Get())

	for _, s := range seeds.WorkflowSteps {
		existing, err := repo.GetByKey(ctx, s.Key)
		if err != nil {
			return fmt.Errorf("failed to look up step %q: %w", s.Key, err)
		}

		if existing == nil {
			step, err := workflow.NewStep(s.Key, s.Name, s.Order)
			if err != nil {
				return fmt.Errorf("invalid seed entry %q: %w", s.Key, err)
			}
			if err := repo.Save(ctx, step); err != nil {
				return fmt.Errorf("failed to save step %q: %w", s.Key, err)
			}
			log.Infow("workflow step created", "key", s.Key, "order", s.Order)
			continue
		}

		if err := existing.Rename(s.Name); err != nil {
			return fmt.Errorf("invalid seed entry %q: %w", s.Key, err)
		}
		existing.Reorder(s.Order)
		existing.Activate()
		if err := repo.Update(ctx, existing); err != nil {
			return fmt.Errorf("failed to update step %q: %w", s.Key, err)
		}
		log.Infow("workflow step updated", "key", s.Key, "order", s.Order)
	}

	log.Infow("seeding completed successfully")
	return nil
}
