package supabase

import (
	"bytes"
	"context"
	"fmt"

	"file-converter/internal/domain"

	storage_go "github.com/supabase-community/storage-go"
	"github.com/supabase-community/supabase-go"
)

// SheetStorage persists generated sheets to a Supabase storage bucket
// and hands back the public object URL.
type SheetStorage struct {
	client *supabase.Client
	config domain.Config
	logger domain.Logger
}

// NewSheetStorage creates a new Supabase-backed sheet store
func NewSheetStorage(config domain.Config, logger domain.Logger) *SheetStorage {
	return &SheetStorage{
		config: config,
		logger: logger,
	}
}

// Initialize establishes a connection to Supabase
func (s *SheetStorage) Initialize() error {
	supabaseURL := s.config.GetSupabaseURL()
	supabaseKey := s.config.GetSupabaseKey()

	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("supabase URL and key must be provided")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseKey, &supabase.ClientOptions{})
	if err != nil {
		return fmt.Errorf("failed to create Supabase client: %w", err)
	}

	s.client = client
	s.logger.Info("Supabase client initialized successfully", "url", supabaseURL)
	return nil
}

// Save uploads the sheet to the configured bucket and returns its
// public URL.
func (s *SheetStorage) Save(ctx context.Context, name string, content []byte) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("supabase client not initialized")
	}

	bucket := s.config.GetSupabaseBucket()
	contentType := "image/jpeg"

	_, err := s.client.Storage.UploadFile(bucket, name, bytes.NewReader(content),
		storage_go.FileOptions{ContentType: &contentType})
	if err != nil {
		s.logger.Error("failed to upload sheet to bucket", err, "bucket", bucket, "name", name)
		return "", fmt.Errorf("upload %s to bucket %s: %w", name, bucket, err)
	}

	resp := s.client.Storage.GetPublicUrl(bucket, name)
	return resp.SignedURL, nil
}
