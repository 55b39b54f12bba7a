package env

import (
	"fmt"
	"os"
	"royal_casino/internal/config"
	"strconv"
)

const (
	storageEnvName        = "STORAGE"
	initialBalanceEnvName = "INITIAL_BALANCE"

	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"

	defaultInitialBalance = 1000
)

type storageConfig struct {
	backend        string
	initialBalance int
}

func NewStorageConfig() (config.StorageConfig, error) {
	backend := os.Getenv(storageEnvName)
	if len(backend) == 0 {
		backend = BackendMemory
	}
	switch backend {
	case BackendMemory, BackendRedis, BackendPostgres:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}

	initial := defaultInitialBalance
	if raw := os.Getenv(initialBalanceEnvName); len(raw) > 0 {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("invalid initial balance %q", raw)
		}
		initial = parsed
	}

	return &storageConfig{
		backend:        backend,
		initialBalance: initial,
	}, nil
}

func (cfg *storageConfig) Backend() string {
	return cfg.backend
}

func (cfg *storageConfig) InitialBalance() int {
	return cfg.initialBalance
}
