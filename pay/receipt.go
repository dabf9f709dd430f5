package pay

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"matchify/db"
	"matchify/models"
	"matchify/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"go.mongodb.org/mongo-driver/bson"
)

// DownloadReceipt handles GET /api/payments/receipt/:missionid and renders
// the settled transaction as a PDF receipt for either party.
func DownloadReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	missionID := ps.ByName("missionid")
	userID := utils.GetUserIDFromRequest(r)

	var m models.Mission
	if err := db.MissionsCollection.FindOne(ctx, bson.M{"missionid": missionID}).Decode(&m); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Mission not found")
		return
	}
	if m.RecruiterID != userID && m.HiredTalentID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if m.Status != models.MissionPaid {
		utils.RespondWithError(w, http.StatusConflict, "Mission is not paid yet")
		return
	}

	var txn models.Transaction
	err := db.TransactionCollection.FindOne(ctx, bson.M{
		"missionid": missionID,
		"direction": models.TxnIn,
		"status":    models.TxnCompleted,
	}).Decode(&txn)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "No settled transaction for mission")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Matchify Payment Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Mission: %s", m.Title))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Mission ID: %s", m.MissionID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Transaction: %s", txn.ID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Paid at: %s", m.PaidAt.Format(time.RFC1123)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, "Amounts")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Mission budget: %d %s", m.Budget, txn.Currency))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Platform fee: %.2f %s", txn.PlatformFee, txn.Currency))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Recruiter charged: %.2f %s", txn.Amount, txn.Currency))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Talent payout: %.2f %s", txn.TalentAmount, txn.Currency))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="receipt-%s.pdf"`, missionID))
	_, _ = w.Write(buf.Bytes())
}
