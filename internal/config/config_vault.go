package config

import "fmt"

// VaultApp holds the engine settings of the vault binary.
type VaultApp struct {
	// Scheme is the encoding scheme for newly initialized vaults.
	Scheme string
	// PasswordLength is the default generated password length.
	PasswordLength int
	// KDF holds the Argon2id cost for newly initialized vaults.
	KDF KDF
}

// VaultFiles holds file backend paths.
type VaultFiles struct {
	VaultFile  string
	MasterFile string
}

// VaultDB holds sqlite backend settings.
type VaultDB struct {
	DSN string
}

// VaultStorage selects the backend and carries the settings of both.
type VaultStorage struct {
	Backend string
	Files   VaultFiles
	DB      VaultDB
}

// VaultLog configures the log file.
type VaultLog struct {
	File  string
	Level string
}

// VaultConfig is the configuration view consumed by the vault binary,
// assembled from [StructuredConfig].
type VaultConfig struct {
	App     VaultApp
	Storage VaultStorage
	Log     VaultLog
}

// GetVaultConfig builds and validates the vault configuration. flagCfg is
// the value returned by [BindFlags] after the flags were parsed; nil skips
// the flag source.
func GetVaultConfig(flagCfg *StructuredConfig) (*VaultConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	vaultCfg := &VaultConfig{
		App: VaultApp{
			Scheme:         cfg.App.Scheme,
			PasswordLength: cfg.App.PasswordLength,
			KDF:            cfg.App.KDF,
		},
		Storage: VaultStorage{
			Backend: cfg.Storage.Backend,
			Files: VaultFiles{
				VaultFile:  cfg.Storage.Files.VaultFile,
				MasterFile: cfg.Storage.Files.MasterFile,
			},
			DB: VaultDB{DSN: cfg.Storage.DB.DSN},
		},
		Log: VaultLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}

	if err = vaultCfg.validate(); err != nil {
		return nil, err
	}

	return vaultCfg, nil
}
