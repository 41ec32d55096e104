package config

import "fmt"

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver" validate:"oneof=mysql sqlite"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database" validate:"required"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" validate:"min=0"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" validate:"min=0"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime" validate:"min=0"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
	Mode       string `mapstructure:"mode"`
}

type BusinessConfig struct {
	Timezone             string   `mapstructure:"timezone"`
	Currency             string   `mapstructure:"currency"`
	TicketNumberPrefix   string   `mapstructure:"ticket_number_prefix"`
	DefaultWorkflowSteps []string `mapstructure:"default_workflow_steps"`
}

type SeedConfig struct {
	WorkflowStepsFile string `mapstructure:"workflow_steps_file"`
}
