package main

import (
	"encoding/json"
	"fmt"
	"os"
)

var BuildKey string

type Config struct {
	Shelter ShelterConfig
	Auth    AuthConfig
	HTTP    HTTPConfig
	Mail    MailConfig
	Storage StorageConfig
}

type ShelterConfig struct {
	Name      string
	PublicURL string
}

// URLForAnimal is the absolute link used in notification emails.
func (c Config) URLForAnimal(id int32) string {
	return fmt.Sprintf("%s/animal/%d", c.Shelter.PublicURL, id)
}

type AuthConfig struct {
	SessionKeyLocation       string
	OAuthCredentialsLocation string
	OAuthRedirectURI         string
}

type MailConfig struct {
	Host     string
	Port     int
	Username string
	From     string
}

// StorageConfig selects the photo backend. Backend is "local" or "s3".
type StorageConfig struct {
	Backend  string
	LocalDir string
	TmpDir   string
	S3Bucket string
	S3Region string
}

func loadConfig(file string) (Config, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file '%s': %w", file, err)
	}

	var config Config
	if err := json.Unmarshal(raw, &config); err != nil {
		return Config{}, fmt.Errorf("corrupted config file '%s': %w", file, err)
	}
	return config, nil
}
