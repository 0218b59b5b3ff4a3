package httpserver

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// handleAdminContactsExport streams the stored submissions as a
// spreadsheet for operators.
func (s *Server) handleAdminContactsExport(w http.ResponseWriter, r *http.Request) {
	list, err := s.contacts.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("export contacts")
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export contacts")
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Contacts"
	_ = f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Name", "Email", "Message", "Source", "Timestamp", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, c := range list {
		values := []any{c.ID, c.Name, c.Email, c.Message, c.Source, c.Timestamp, c.Status}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=contacts-%d.xlsx", len(list)))
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("write contacts xlsx")
	}
}
