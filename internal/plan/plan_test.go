package plan_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tidy/internal/plan"
)

func TestPlanComputesCategoryPath(t *testing.T) {
	dest := t.TempDir()
	planner := plan.NewPlanner(dest, false, false)

	rec := plan.FileRecord{
		SourcePath: "/src/report.pdf",
		Name:       "report.pdf",
		Ext:        ".pdf",
		ModTime:    time.Now(),
	}
	target, err := planner.Plan(rec, "Documents")
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if want := filepath.Join(dest, "Documents", "report.pdf"); target.Path != want {
		t.Fatalf("Path = %q, want %q", target.Path, want)
	}
	if target.DateBucket != "" {
		t.Fatalf("unexpected date bucket %q", target.DateBucket)
	}
	if info, err := os.Stat(target.Dir); err != nil || !info.IsDir() {
		t.Fatalf("target dir not created: %v", err)
	}
}

func TestPlanAppendsDateBucket(t *testing.T) {
	dest := t.TempDir()
	planner := plan.NewPlanner(dest, true, false)

	modTime := time.Date(2024, time.March, 14, 12, 0, 0, 0, time.Local)
	rec := plan.FileRecord{Name: "pic.jpg", Ext: ".jpg", ModTime: modTime}
	target, err := planner.Plan(rec, "Images")
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if target.DateBucket != "2024-03" {
		t.Fatalf("DateBucket = %q, want 2024-03", target.DateBucket)
	}
	if want := filepath.Join(dest, "Images", "2024-03", "pic.jpg"); target.Path != want {
		t.Fatalf("Path = %q, want %q", target.Path, want)
	}
}

func TestPlanPreviewDoesNotCreateDirectories(t *testing.T) {
	dest := t.TempDir()
	planner := plan.NewPlanner(dest, false, true)

	rec := plan.FileRecord{Name: "report.pdf", Ext: ".pdf", ModTime: time.Now()}
	target, err := planner.Plan(rec, "Documents")
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if _, err := os.Stat(target.Dir); !os.IsNotExist(err) {
		t.Fatalf("preview created directory, stat err=%v", err)
	}
}

func TestEnsureDirIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	created, err := plan.EnsureDir(dir)
	if err != nil {
		t.Fatalf("first EnsureDir: %v", err)
	}
	if !created {
		t.Fatal("expected directory to be created")
	}

	created, err = plan.EnsureDir(dir)
	if err != nil {
		t.Fatalf("second EnsureDir: %v", err)
	}
	if created {
		t.Fatal("second call must not report creation")
	}
}

func TestEnsureDirRejectsFiles(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "occupied")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := plan.EnsureDir(path); err == nil {
		t.Fatal("expected error when path is a file")
	}
}
