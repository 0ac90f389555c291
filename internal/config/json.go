package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names.
type StructuredJSONConfig struct {
	App struct {
		Scheme         string `json:"scheme"`
		PasswordLength int    `json:"password_length"`
		KDF            struct {
			Time    uint32 `json:"time"`
			Memory  uint32 `json:"memory"`
			Threads uint8  `json:"threads"`
		} `json:"kdf,omitempty"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		Files   struct {
			VaultFile  string `json:"vault_file"`
			MasterFile string `json:"master_file"`
		} `json:"files,omitempty"`
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Scheme:         jsonCfg.App.Scheme,
			PasswordLength: jsonCfg.App.PasswordLength,
			KDF: KDF{
				Time:    jsonCfg.App.KDF.Time,
				Memory:  jsonCfg.App.KDF.Memory,
				Threads: jsonCfg.App.KDF.Threads,
			},
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			Files: Files{
				VaultFile:  jsonCfg.Storage.Files.VaultFile,
				MasterFile: jsonCfg.Storage.Files.MasterFile,
			},
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}
