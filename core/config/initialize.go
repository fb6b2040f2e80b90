package config

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"log"
	"os"

	"github.com/spf13/afero"
)

// Initialize seeds path with a default configuration, an SSH host key
// and the session directories, then loads the result. Existing files
// are left alone so it's safe to re-run.
func Initialize(path string, logger *log.Logger) (*Configuration, error) {
	fs := dirFs(path)

	if exists, _ := afero.Exists(fs, ConfigurationName); !exists {
		logger.Printf("Creating %s", ConfigurationName)
		if err := afero.WriteFile(fs, ConfigurationName, defaultConfigData, 0600); err != nil {
			return nil, err
		}
	} else {
		logger.Printf("%s already exists, skipping", ConfigurationName)
	}

	if exists, _ := afero.Exists(fs, HostKeyName); !exists {
		logger.Printf("Generating %s", HostKeyName)
		keyPem, err := generateHostKey()
		if err != nil {
			return nil, err
		}
		if err := afero.WriteFile(fs, HostKeyName, keyPem, 0600); err != nil {
			return nil, err
		}
	} else {
		logger.Printf("%s already exists, skipping", HostKeyName)
	}

	for _, dir := range []string{LogsDirName, FilesDirName} {
		logger.Printf("Creating %s/", dir)
		if err := fs.MkdirAll(dir, os.FileMode(0700)); err != nil {
			return nil, err
		}
	}

	return Load(path)
}

// generateHostKey produces a PEM encoded ed25519 private key for the
// SSH front end.
func generateHostKey() ([]byte, error) {
	_, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	der, err := x509.MarshalPKCS8PrivateKey(private)
	if err != nil {
		return nil, err
	}

	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}
