package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers every configuration flag on fs and returns the
// [StructuredConfig] the flags write into. The returned value is filled in
// when fs is parsed (cobra does that before running a command) and is meant
// to be passed to [GetVaultConfig].
//
// Flags:
//
//	--config           JSON config file path
//	--scheme           encoding scheme for new vaults (aead|base64)
//	--password-length  default generated password length
//	--backend          storage backend (file|sqlite)
//	--vault-file       vault document file (file backend)
//	--master-file      master secret file (file backend)
//	--dsn              sqlite database path (sqlite backend)
//	--log-file         log file path
//	--log-level        log level (trace|debug|info|warn|error)
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.App.Scheme, "scheme", "", "Encoding scheme for new vaults (aead|base64)")
	fs.IntVar(&cfg.App.PasswordLength, "password-length", 0, "Default generated password length")
	fs.StringVar(&cfg.Storage.Backend, "backend", "", "Storage backend (file|sqlite)")
	fs.StringVar(&cfg.Storage.Files.VaultFile, "vault-file", "", "Vault document file")
	fs.StringVar(&cfg.Storage.Files.MasterFile, "master-file", "", "Master secret file")
	fs.StringVar(&cfg.Storage.DB.DSN, "dsn", "", "SQLite database path")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")

	return cfg
}
