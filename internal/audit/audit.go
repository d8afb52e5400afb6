// Package audit appends record mutations to a local log so a deleted
// or edited filing can be traced after the fact.
package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/taxops/perdcomp/internal/model"
)

func LogAction(action, id, number string, value float64, detail string) {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	logDir := filepath.Join(home, ".perdcomp")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		os.Mkdir(logDir, 0755)
	}

	f, err := os.OpenFile(filepath.Join(logDir, "audit.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	// Format: [DATE] deleted 12345.../<id> (R$ 500,00) - detail
	entry := fmt.Sprintf("[%s] %s %s (%s) - %s - %s\n",
		time.Now().Format(time.RFC3339),
		action,
		number,
		id,
		model.FormatBRL(value),
		detail,
	)

	if _, err := f.WriteString(entry); err != nil {
		fmt.Printf("(Aviso: falha ao gravar log de auditoria)\n")
	}
}
