// Package backup cuida das cópias de segurança do arquivo SQLite:
// criação com timestamp, restauração, retenção e envio opcional ao S3.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// RetentionDays define quantos backups locais ficam guardados.
const RetentionDays = 7

// Create copia o banco para backupDir com nome timestampado e retorna o
// caminho do arquivo criado.
func Create(dbPath, backupDir string) (string, error) {
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", err
	}

	stamp := time.Now().Format("20060102_150405")
	dest := filepath.Join(backupDir, fmt.Sprintf("db_backup_%s.db", stamp))

	if err := copyFile(dbPath, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// Restore sobrescreve o banco vivo com o conteúdo do backup.
func Restore(backupFile, dbPath string) error {
	return copyFile(backupFile, dbPath)
}

// Cleanup remove backups além dos RetentionDays mais recentes.
func Cleanup(backupDir string) error {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return err
	}

	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "db_backup_") {
			names = append(names, e.Name())
		}
	}

	// Nome timestampado ordena cronologicamente; mais recente primeiro.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	for _, old := range names[min(len(names), RetentionDays):] {
		if err := os.Remove(filepath.Join(backupDir, old)); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
