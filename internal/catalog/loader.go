package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tessera-games/loreforge/internal/domain"
	"github.com/tessera-games/loreforge/internal/logger"
	"github.com/tessera-games/loreforge/internal/repository"
	"github.com/tessera-games/loreforge/internal/validation"
)

// Sentinel errors for catalog loading
var (
	ErrDuplicateName = errors.New("duplicate part name")
	ErrDuplicateID   = errors.New("duplicate part id")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents one catalog JSON file: all parts of a single kind.
type Config struct {
	Version     string          `json:"version"`
	Kind        domain.PartKind `json:"kind"`
	Description string          `json:"description"`
	Parts       []Def           `json:"parts"`
}

// Def represents a single part definition in the JSON
type Def struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Category string        `json:"category"`
	Mechanic bool          `json:"mechanic"`
	Base     domain.Cost   `json:"base"`
	Tiers    []domain.Tier `json:"tiers,omitempty"`
}

// Loader handles loading, validating and syncing part catalog files
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Part, configPath string) (*SyncResult, error)
}

// SyncResult contains the result of syncing a catalog to the database
type SyncResult struct {
	PartsSynced int
	Skipped     bool
}

type partLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &partLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses a catalog JSON file
func (l *partLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, PartsSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the catalog configuration for errors
func (l *partLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Parts) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoPartsDefined)
	}

	switch config.Kind {
	case domain.PartKindPower, domain.PartKindTechnique, domain.PartKindItem:
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, config.Kind)
	}

	names := make(map[string]bool, len(config.Parts))
	ids := make(map[int]bool, len(config.Parts))

	for i := range config.Parts {
		if err := validatePartDef(i, &config.Parts[i], names, ids); err != nil {
			return err
		}
	}

	return nil
}

func validatePartDef(index int, def *Def, names map[string]bool, ids map[int]bool) error {
	if def.Name == "" {
		return fmt.Errorf(ErrFmtPartAtIndexNoName, ErrInvalidConfig, index)
	}
	if def.ID <= 0 {
		return fmt.Errorf(ErrFmtPartAtIndexBadID, ErrInvalidConfig, def.Name, def.ID)
	}

	if names[def.Name] {
		return fmt.Errorf(ErrFmtDuplicateName, ErrDuplicateName, def.Name)
	}
	names[def.Name] = true

	if ids[def.ID] {
		return fmt.Errorf(ErrFmtDuplicateID, ErrDuplicateID, def.ID)
	}
	ids[def.ID] = true

	if len(def.Tiers) > domain.MaxPartTiers {
		return fmt.Errorf(ErrFmtPartTooManyTiers, ErrInvalidConfig, def.Name, len(def.Tiers), domain.MaxPartTiers)
	}

	// Base costs and tier deltas may both be negative: discount parts
	// (long actions, requirements) reduce a dimension rather than add to it.
	return nil
}

// SyncToDatabase syncs the catalog configuration to the database idempotently.
// A checksum of the file contents is kept per config so unchanged files are
// skipped on startup.
func (l *partLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Part, configPath string) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	checksum, err := fileChecksum(configPath)
	if err != nil {
		return nil, err
	}

	configName := filepath.Base(configPath)
	if meta, err := repo.GetSyncMetadata(ctx, configName); err == nil && meta.Checksum == checksum {
		log.Info(LogMsgConfigUnchanged, "path", configPath)
		return &SyncResult{Skipped: true}, nil
	}

	result := &SyncResult{}
	for _, def := range config.Parts {
		part := &domain.Part{
			ID:       def.ID,
			Kind:     config.Kind,
			Name:     def.Name,
			Category: def.Category,
			Mechanic: def.Mechanic,
			Base:     def.Base,
			Tiers:    def.Tiers,
		}
		if err := repo.UpsertPart(ctx, part); err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertPartFailed, def.Name, err)
		}
		result.PartsSynced++
	}

	if err := repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName: configName,
		Checksum:   checksum,
		PartsCount: result.PartsSynced,
		SyncedAt:   time.Now().UTC(),
	}); err != nil {
		log.Warn(LogMsgUpdateMetadataFailed, "error", err)
	}

	log.Info(LogMsgSyncCompleted,
		"config", configName,
		"kind", config.Kind,
		"synced", result.PartsSynced)

	return result, nil
}

// fileChecksum returns the hex sha256 of a file's contents
func fileChecksum(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}
