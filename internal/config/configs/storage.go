package configs

// Storage selects and configures the blob backend finished decks are
// published to. Backend "local" writes files under Dir; "minio" uploads
// to the configured bucket.
type Storage struct {
	// Backend is "local" or "minio".
	Backend string `env:"BACKEND" envDefault:"local"`
	// Dir is the output directory for the local backend.
	Dir string `env:"DIR" envDefault:"./data/decks"`
	// UploadDir is where multipart uploads are spooled before extraction.
	UploadDir string `env:"UPLOAD_DIR" envDefault:"./data/uploads"`

	// MinIO connection settings, used only when Backend is "minio".
	MinioEndpoint  string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioBucket    string `env:"MINIO_BUCKET" envDefault:"decks"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
}
