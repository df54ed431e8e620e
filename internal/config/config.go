package config

import (
	"fmt"
	"time"

	"github.com/docker/go-units"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env    Env
	Server ServerConfig
	Upload UploadConfig
	Minio  MinioConfig
	NATS   NATSConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

// DefaultAllowedContentTypes covers images, documents, audio and video
var DefaultAllowedContentTypes = []string{
	// Images
	"image/jpeg", "image/png", "image/webp", "image/gif",
	// Documents
	"application/pdf", "text/plain",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	// Audio
	"audio/mpeg", "audio/wav", "audio/ogg",
	// Video
	"video/mp4", "video/webm", "video/quicktime",
}

type UploadConfig struct {
	Root                string        `envconfig:"UPLOAD_ROOT" required:"true"`
	AllowedContentTypes []string      `envconfig:"UPLOAD_ALLOWED_CONTENT_TYPES"`
	MaxChunkSize        string        `envconfig:"UPLOAD_MAX_CHUNK_SIZE" default:"16MiB"`
	MergeBufferSize     string        `envconfig:"UPLOAD_MERGE_BUFFER_SIZE" default:"256KiB"`
	AbandonAfter        time.Duration `envconfig:"UPLOAD_ABANDON_AFTER" default:"24h"`
	SweepEvery          time.Duration `envconfig:"UPLOAD_SWEEP_EVERY" default:"1h"`

	// parsed from the human readable sizes above
	MaxChunkBytes    int64 `ignored:"true"`
	MergeBufferBytes int64 `ignored:"true"`
}

type MinioConfig struct {
	Enabled      bool   `envconfig:"MINIO_ENABLED" default:"false"`
	Endpoint     string `envconfig:"MINIO_ENDPOINT"`
	BucketName   string `envconfig:"MINIO_BUCKET_NAME"`
	AccessKey    string `envconfig:"MINIO_ACCESS_KEY"`
	SecretKey    string `envconfig:"MINIO_SECRET_KEY"`
	ObjectPrefix string `envconfig:"MINIO_OBJECT_PREFIX" default:"artifacts/"`
	UseSSL       bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

type NATSConfig struct {
	Enabled    bool   `envconfig:"NATS_ENABLED" default:"false"`
	URL        string `envconfig:"NATS_URL"`
	StreamName string `envconfig:"NATS_STREAM_NAME" default:"UPLOADS"`
	Subject    string `envconfig:"NATS_SUBJECT" default:"uploads.merged"`
	ClientName string `envconfig:"NATS_CLIENT_NAME" default:"petfoster-upload"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Upload.parseSizes(); err != nil {
		return nil, err
	}
	if len(cfg.Upload.AllowedContentTypes) == 0 {
		cfg.Upload.AllowedContentTypes = DefaultAllowedContentTypes
	}

	if cfg.Minio.Enabled && (cfg.Minio.Endpoint == "" || cfg.Minio.BucketName == "") {
		return nil, fmt.Errorf("MINIO_ENDPOINT and MINIO_BUCKET_NAME are required when MINIO_ENABLED is set")
	}
	if cfg.NATS.Enabled && cfg.NATS.URL == "" {
		return nil, fmt.Errorf("NATS_URL is required when NATS_ENABLED is set")
	}

	return &cfg, nil
}

func (u *UploadConfig) parseSizes() error {
	maxChunk, err := units.RAMInBytes(u.MaxChunkSize)
	if err != nil {
		return fmt.Errorf("invalid UPLOAD_MAX_CHUNK_SIZE %q: %w", u.MaxChunkSize, err)
	}
	buffer, err := units.RAMInBytes(u.MergeBufferSize)
	if err != nil {
		return fmt.Errorf("invalid UPLOAD_MERGE_BUFFER_SIZE %q: %w", u.MergeBufferSize, err)
	}
	if maxChunk <= 0 || buffer <= 0 {
		return fmt.Errorf("upload sizes must be positive")
	}
	u.MaxChunkBytes = maxChunk
	u.MergeBufferBytes = buffer
	return nil
}
