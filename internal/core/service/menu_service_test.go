package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cafe/internal/core/model"
	"cafe/internal/core/repository"
	"cafe/internal/storage"
)

const testBaseURL = "http://localhost:5002"

func newTestMenuService(t *testing.T) (MenuService, repository.MenuRepository, *storage.UploadStore) {
	t.Helper()
	store, err := storage.NewUploadStore(filepath.Join(t.TempDir(), "uploads"), 0)
	if err != nil {
		t.Fatalf("NewUploadStore: %v", err)
	}
	repo := repository.NewInMemoryMenuRepository()
	return NewMenuService(repo, store, nil, testBaseURL), repo, store
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func latteInput(imageURL string) MenuInput {
	return MenuInput{
		Name:        strPtr("Latte"),
		Price:       floatPtr(240),
		Category:    strPtr("Coffee"),
		Description: strPtr("Milky"),
		ImageURL:    imageURL,
	}
}

func TestMenuCreateUploadWinsOverImageURL(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestMenuService(t)

	upload := &Upload{Filename: "latte.jpg", Content: strings.NewReader("jpeg bytes")}
	item, err := svc.Create(ctx, latteInput("https://cdn.example.com/latte.jpg"), upload)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(item.Image, testBaseURL+"/uploads/") {
		t.Errorf("returned image = %q, want absolute upload URL", item.Image)
	}

	stored, _ := repo.FindAll(ctx)
	if len(stored) != 1 || !strings.HasPrefix(stored[0].Image, "uploads/") {
		t.Errorf("stored image = %q, want relative uploads/ path", stored[0].Image)
	}
}

func TestMenuCreateKeepsAbsoluteImageURL(t *testing.T) {
	svc, _, _ := newTestMenuService(t)
	item, err := svc.Create(context.Background(), latteInput("https://cdn.example.com/latte.jpg"), nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.Image != "https://cdn.example.com/latte.jpg" {
		t.Errorf("image = %q", item.Image)
	}
}

func TestMenuCreateRequiresFields(t *testing.T) {
	svc, _, _ := newTestMenuService(t)
	_, err := svc.Create(context.Background(), MenuInput{Name: strPtr("Latte")}, nil)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Create without price/category error = %v, want ErrValidation", err)
	}
}

func TestMenuListAbsolutizesImages(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestMenuService(t)
	_ = repo.Create(ctx, model.NewMenuItem("Local", 1, "Coffee", "uploads/a.png", ""))
	_ = repo.Create(ctx, model.NewMenuItem("Remote", 1, "Coffee", "https://cdn.example.com/b.png", ""))

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := map[string]string{
		"Local":  testBaseURL + "/uploads/a.png",
		"Remote": "https://cdn.example.com/b.png",
	}
	for _, item := range items {
		if item.Image != want[item.Name] {
			t.Errorf("%s image = %q, want %q", item.Name, item.Image, want[item.Name])
		}
	}

	stored, _ := repo.FindAll(ctx)
	for _, item := range stored {
		if item.Name == "Local" && item.Image != "uploads/a.png" {
			t.Errorf("List must not rewrite stored paths, got %q", item.Image)
		}
	}
}

func TestMenuUpdate(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestMenuService(t)
	created, err := svc.Create(ctx, latteInput("https://cdn.example.com/latte.jpg"), nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID.Hex(), MenuInput{Price: floatPtr(300)}, nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Price != 300 || updated.Name != "Latte" || updated.Image != "https://cdn.example.com/latte.jpg" {
		t.Errorf("partial update gave %+v", updated)
	}

	upload := &Upload{Filename: "new.png", Content: strings.NewReader("png")}
	updated, err = svc.Update(ctx, created.ID.Hex(), MenuInput{ImageURL: "https://ignored.example.com/x.png"}, upload)
	if err != nil {
		t.Fatalf("Update with upload: %v", err)
	}
	if !strings.HasPrefix(updated.Image, testBaseURL+"/uploads/") {
		t.Errorf("upload should win, image = %q", updated.Image)
	}

	for _, id := range []string{"65a1b2c3d4e5f60718293a4b", "garbage"} {
		if _, err := svc.Update(ctx, id, MenuInput{Price: floatPtr(1)}, nil); !errors.Is(err, ErrNotFound) {
			t.Errorf("Update(%q) error = %v, want ErrNotFound", id, err)
		}
	}
}

func TestMenuDeleteRemovesLocalUpload(t *testing.T) {
	ctx := context.Background()
	svc, _, store := newTestMenuService(t)

	upload := &Upload{Filename: "latte.jpg", Content: strings.NewReader("jpeg")}
	item, err := svc.Create(ctx, latteInput(""), upload)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	path := filepath.Join(store.Dir(), filepath.Base(item.Image))
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("uploaded file missing: %v", err)
	}

	if err := svc.Delete(ctx, item.ID.Hex()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("backing file still exists: %v", err)
	}
	if err := svc.Delete(ctx, item.ID.Hex()); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete error = %v, want ErrNotFound", err)
	}
}

func TestMenuDeleteAbsoluteURLLeavesFilesystem(t *testing.T) {
	ctx := context.Background()
	svc, _, store := newTestMenuService(t)

	// an unrelated upload that must survive
	keep, err := store.Save("keep.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	item, err := svc.Create(ctx, latteInput("https://cdn.example.com/latte.jpg"), nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(ctx, item.ID.Hex()); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	entries, _ := os.ReadDir(store.Dir())
	if len(entries) != 1 || entries[0].Name() != filepath.Base(keep) {
		t.Errorf("upload dir changed: %v", entries)
	}
}

func TestMenuDeleteToleratesMissingFile(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestMenuService(t)
	item := model.NewMenuItem("Ghost", 1, "Coffee", "uploads/gone.png", "")
	_ = repo.Create(ctx, item)

	if err := svc.Delete(ctx, item.ID.Hex()); err != nil {
		t.Errorf("Delete with missing file: %v", err)
	}
}

func TestMenuSeed(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestMenuService(t)
	_ = repo.Create(ctx, model.NewMenuItem("Leftover", 1, "Misc", "", ""))

	seeded, err := svc.Seed(ctx, DefaultMenu(), MinSeededItems)
	if err != nil || !seeded {
		t.Fatalf("Seed = %v, %v; want true", seeded, err)
	}
	n, _ := repo.Count(ctx)
	if n != int64(len(DefaultMenu())) {
		t.Errorf("menu has %d items after seed, want %d", n, len(DefaultMenu()))
	}

	seeded, err = svc.Seed(ctx, DefaultMenu(), MinSeededItems)
	if err != nil || seeded {
		t.Errorf("second Seed = %v, %v; want false", seeded, err)
	}
}
