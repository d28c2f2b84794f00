package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("escrever %s: %v", path, err)
	}
}

func TestCreateAndRestore(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "app.db")
	backupDir := filepath.Join(dir, "backups")

	writeFile(t, dbPath, "conteudo-original")

	file, err := Create(dbPath, backupDir)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(file), "db_backup_") {
		t.Fatalf("nome do backup fora do padrão: %s", file)
	}

	// Corrompe o banco e restaura a cópia.
	writeFile(t, dbPath, "corrompido")
	if err := Restore(file, dbPath); err != nil {
		t.Fatalf("restore: %v", err)
	}

	got, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("ler restaurado: %v", err)
	}
	if string(got) != "conteudo-original" {
		t.Fatalf("conteúdo restaurado: %q", got)
	}
}

func TestCreateMissingDatabase(t *testing.T) {
	dir := t.TempDir()
	if _, err := Create(filepath.Join(dir, "nao-existe.db"), dir); err == nil {
		t.Fatal("banco inexistente deveria falhar")
	}
}

func TestCleanupKeepsRecentBackups(t *testing.T) {
	dir := t.TempDir()

	// Nomes em ordem lexicográfica == ordem cronológica.
	old := []string{
		"db_backup_20260101_030000.db",
		"db_backup_20260102_030000.db",
	}
	recent := []string{
		"db_backup_20260820_030000.db",
		"db_backup_20260821_030000.db",
		"db_backup_20260822_030000.db",
		"db_backup_20260823_030000.db",
		"db_backup_20260824_030000.db",
		"db_backup_20260825_030000.db",
		"db_backup_20260826_030000.db",
	}
	for _, name := range append(append([]string{}, old...), recent...) {
		writeFile(t, filepath.Join(dir, name), "x")
	}
	// Arquivo estranho no diretório não é tocado.
	writeFile(t, filepath.Join(dir, "notas.txt"), "manter")

	if err := Cleanup(dir); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	for _, name := range old {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("backup antigo deveria ter sido removido: %s", name)
		}
	}
	for _, name := range recent {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("backup recente removido indevidamente: %s", name)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "notas.txt")); err != nil {
		t.Error("arquivo fora do padrão foi removido")
	}
}
