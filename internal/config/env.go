package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	cerr "github.com/saeidalz13/battleship-autoplay/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	EnvStage       = "STAGE"
	EnvPort        = "PORT"
	EnvDatabaseUrl = "DATABASE_URL"
)

type ServerEnv struct {
	Stage       string
	Port        int
	DatabaseUrl string
}

// LoadServerEnv reads the server configuration from the environment.
// Outside prod, the variables in envFile are loaded first; variables
// already set in the environment win.
func LoadServerEnv(envFile string) (ServerEnv, error) {
	if os.Getenv(EnvStage) != StageProd {
		if err := godotenv.Load(envFile); err != nil {
			return ServerEnv{}, err
		}
	}

	stage := os.Getenv(EnvStage)
	if stage != StageDev && stage != StageProd {
		return ServerEnv{}, cerr.ErrInvalidStage(stage)
	}

	portEnv := os.Getenv(EnvPort)
	if portEnv == "" {
		return ServerEnv{}, cerr.ErrEnvNotSet(EnvPort)
	}
	port, err := strconv.Atoi(portEnv)
	if err != nil {
		return ServerEnv{}, err
	}

	return ServerEnv{
		Stage:       stage,
		Port:        port,
		DatabaseUrl: os.Getenv(EnvDatabaseUrl),
	}, nil
}
