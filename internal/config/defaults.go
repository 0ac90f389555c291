package config

// Built-in defaults. The file names match the files written by earlier
// versions of the vault so that existing data opens without extra flags.
const (
	DefaultScheme         = "aead"
	DefaultPasswordLength = 12
	DefaultBackend        = BackendFile
	DefaultVaultFile      = "password_data.txt"
	DefaultMasterFile     = "master_key.txt"
	DefaultDSN            = "vault.db"
	DefaultLogFile        = "vault.log"
	DefaultLogLevel       = "info"

	DefaultKDFTime    = 1
	DefaultKDFMemory  = 64 * 1024
	DefaultKDFThreads = 4
)

// Storage backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Scheme:         DefaultScheme,
			PasswordLength: DefaultPasswordLength,
			KDF: KDF{
				Time:    DefaultKDFTime,
				Memory:  DefaultKDFMemory,
				Threads: DefaultKDFThreads,
			},
		},
		Storage: Storage{
			Backend: DefaultBackend,
			Files: Files{
				VaultFile:  DefaultVaultFile,
				MasterFile: DefaultMasterFile,
			},
			DB: DB{DSN: DefaultDSN},
		},
		Log: Log{
			File:  DefaultLogFile,
			Level: DefaultLogLevel,
		},
	}
}
