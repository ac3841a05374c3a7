package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmoreira/carteira/internal/models"
)

func TestExtractHoldings_DocumentNotFound(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.ExtractHoldings(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	if !errors.Is(err, models.ErrDocumentNotFound) {
		t.Errorf("error = %v, want ErrDocumentNotFound", err)
	}
}

func TestExtractHoldings_InvalidPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := NewService(nil)
	_, err := svc.ExtractHoldings(context.Background(), path)
	if !errors.Is(err, models.ErrDocumentNotFound) {
		t.Errorf("error = %v, want ErrDocumentNotFound for unreadable PDF", err)
	}
}

func TestExtractHoldings_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(nil)
	_, err := svc.ExtractHoldings(ctx, "irrelevant.pdf")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
