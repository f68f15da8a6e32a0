package ledger

import (
	"fmt"
	"os"
	"strings"
)

const (
	ModeMemory   = "memory"
	ModeSQLite   = "sqlite"
	ModePostgres = "postgres"
)

func modeFromEnv() string {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv("LEDGER_MODE")))
	switch raw {
	case "", ModeMemory, "mem":
		return ModeMemory
	case ModeSQLite, "local":
		return ModeSQLite
	case ModePostgres, "postgresql", "db":
		return ModePostgres
	default:
		return raw
	}
}

// NewServiceFromEnv picks the store from LEDGER_MODE and reports which one
// was chosen. Memory is the default: casual games leave no trace.
func NewServiceFromEnv() (Service, string, error) {
	mode := modeFromEnv()
	switch mode {
	case ModeMemory:
		return NewMemoryService(), ModeMemory, nil
	case ModeSQLite:
		service, err := NewSQLiteServiceFromEnv()
		if err != nil {
			return nil, "", err
		}
		return service, ModeSQLite, nil
	case ModePostgres:
		service, err := NewPostgresServiceFromEnv()
		if err != nil {
			return nil, "", err
		}
		return service, ModePostgres, nil
	default:
		return nil, "", fmt.Errorf("invalid LEDGER_MODE %q (supported: %s, %s, %s)", mode, ModeMemory, ModeSQLite, ModePostgres)
	}
}
