package historyController

import (
	"log"
	"strconv"
	"time"

	"simdiklat_backend/database"
	"simdiklat_backend/middleware"
	"simdiklat_backend/models"
	"simdiklat_backend/utils"
	historyValidator "simdiklat_backend/validators/history"

	"github.com/gofiber/fiber/v2"
)

// RegisterSeminar creates a participation record in the registered state.
// At most one record may exist per (user, seminar) pair; the composite unique
// index backs the check when two registrations race.
func RegisterSeminar(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedHistoryRegister").(*historyValidator.RegisterHistoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing models.History
	if err := db.Where("user_id = ? AND seminar_id = ?", reqData.UserID, reqData.SeminarID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User already registered for this seminar!", nil)
	}

	history := models.History{
		UserID:           reqData.UserID,
		SeminarID:        reqData.SeminarID,
		Status:           models.StatusRegistered,
		RegistrationDate: time.Now(),
	}

	if err := db.Create(&history).Error; err != nil {
		log.Printf("Error creating history record: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User already registered for this seminar!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registered for seminar successfully.", history)
}

// AttendSeminar records attendance for the calling user. A missing record is
// created directly in the attended state (walk-in); a registered record
// advances; any other state is echoed back unchanged so re-scanning an
// attendance code never regresses progress.
func AttendSeminar(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAttend").(*historyValidator.AttendRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var history models.History
	if err := db.Where("user_id = ? AND seminar_id = ?", userID, reqData.SeminarID).First(&history).Error; err == nil {
		next, changed := models.NextStatusOnAttend(history.Status)
		if changed {
			history.Status = next
			if err := db.Save(&history).Error; err != nil {
				log.Printf("Error updating attendance: %v", err)
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attendance!", nil)
			}
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance confirmed!", fiber.Map{
			"status":  history.Status,
			"history": history,
		})
	}

	// Walk-in / on-spot registration
	history = models.History{
		UserID:           userID,
		SeminarID:        reqData.SeminarID,
		Status:           models.StatusAttended,
		RegistrationDate: time.Now(),
	}
	if err := db.Create(&history).Error; err != nil {
		log.Printf("Error creating walk-in history: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attendance!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registered and Attended successfully!", fiber.Map{
		"status":  history.Status,
		"history": history,
	})
}

// SubmitProof records a proof-of-participation submission. Any prior state is
// forced into submitted, which is what allows a rejected record to be
// resubmitted. The proof image is replaced only when a new file arrives.
func SubmitProof(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	historyID, err := strconv.Atoi(c.FormValue("history_id"))
	if err != nil || historyID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "History ID is required!", nil)
	}

	db := database.Database.Db

	var history models.History
	if err := db.Where("id = ?", historyID).First(&history).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "History record not found!", nil)
	}

	now := time.Now()
	history.Status = models.StatusSubmitted
	history.SubmissionDate = &now
	history.CertificateNumber = c.FormValue("certificate_number")
	history.ProofDescription = c.FormValue("proof_description")
	history.CompetencyType = c.FormValue("competency_type")
	history.TrainingType = c.FormValue("training_type")

	if file, err := c.FormFile("file"); err == nil && file != nil {
		filename, err := utils.SaveUploadedFile(file)
		if err != nil {
			log.Printf("Error saving proof file: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
		}
		history.ProofImage = utils.GetFileURL(filename)
	}

	if err := db.Save(&history).Error; err != nil {
		log.Printf("Error saving proof submission: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit proof!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Proof submitted successfully.", history)
}

// VerifyHistory sets the manager's verdict on a submission. Rejection stores
// the supplied reason; verification clears any previous one.
func VerifyHistory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerify").(*historyValidator.VerifyRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var history models.History
	if err := db.Where("id = ?", reqData.HistoryID).First(&history).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "History record not found!", nil)
	}

	history.Status = reqData.Status
	if reqData.Status == models.StatusRejected {
		history.RejectReason = reqData.Reason
	} else {
		history.RejectReason = ""
	}

	if err := db.Save(&history).Error; err != nil {
		log.Printf("Error saving verification: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify history!", nil)
	}

	// Notify the participant
	var user models.User
	var seminar models.Seminar
	if err := db.Where("id = ?", history.UserID).First(&user).Error; err == nil {
		db.Where("id = ?", history.SeminarID).First(&seminar)
		utils.SendVerificationResultEmail(user.Email, user.Nama, seminar.Title, history.Status, history.RejectReason)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "History verified successfully.", history)
}

// UpdateCertificate attaches an official certificate to a record and forces
// it to verified. This is the manager override path, independent of the
// submit -> verify flow.
func UpdateCertificate(c *fiber.Ctx) error {
	historyID, err := strconv.Atoi(c.FormValue("history_id"))
	if err != nil || historyID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "History ID is required!", nil)
	}

	certificateURL := c.FormValue("certificate_file")
	if file, err := c.FormFile("file"); err == nil && file != nil {
		filename, err := utils.SaveUploadedFile(file)
		if err != nil {
			log.Printf("Error saving certificate file: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
		}
		certificateURL = utils.GetFileURL(filename)
	}

	if certificateURL == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No certificate file or URL provided!", nil)
	}

	db := database.Database.Db

	var history models.History
	if err := db.Where("id = ?", historyID).First(&history).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "History record not found!", nil)
	}

	now := time.Now()
	history.CertificateFile = certificateURL
	history.CertificateDate = &now
	history.Status = models.StatusVerified
	history.RejectReason = ""

	if err := db.Save(&history).Error; err != nil {
		log.Printf("Error saving certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate updated successfully.", history)
}

// GetMySeminars lists a user's participation records, newest first, each with
// its seminar attached.
func GetMySeminars(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil || userID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var histories []models.History
	if err := database.Database.Db.Where("user_id = ?", userID).
		Preload("Seminar").Order("created_at desc").Find(&histories).Error; err != nil {
		log.Printf("Error fetching histories: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch histories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Histories fetched successfully.", histories)
}

// JPSummary is the per-user credit-hour aggregation.
type JPSummary struct {
	TotalJP    int            `json:"total_jp"`
	Competency map[string]int `json:"competency"`
	Training   map[string]int `json:"training"`
}

// GetUserSummary aggregates JP totals over the user's participation records.
// Only records in attended, submitted or verified state count. Buckets follow
// the reporting categories: competency by Diklat type, training by delivery
// mode, with the seminar's own type as the fallback.
func GetUserSummary(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil || userID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var histories []models.History
	if err := database.Database.Db.Where("user_id = ?", userID).
		Preload("Seminar").Find(&histories).Error; err != nil {
		log.Printf("Error fetching histories: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch histories!", nil)
	}

	summary := AggregateJP(histories)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Summary fetched successfully.", summary)
}

// AggregateJP computes the JP summary for a set of history records. Records
// whose seminar no longer exists contribute nothing.
func AggregateJP(histories []models.History) JPSummary {
	summary := JPSummary{
		Competency: map[string]int{
			"kepemimpinan": 0,
			"fungsional":   0,
			"teknis":       0,
			"seminar":      0,
			"lainnya":      0,
		},
		Training: map[string]int{
			"online":  0,
			"offline": 0,
			"blended": 0,
		},
	}

	for _, h := range histories {
		if !models.CountsTowardJP(h.Status) {
			continue
		}
		if h.Seminar == nil {
			continue
		}
		jp := h.Seminar.JP
		summary.TotalJP += jp

		switch h.CompetencyType {
		case "Struktural":
			summary.Competency["kepemimpinan"] += jp
		case "Fungsional":
			summary.Competency["fungsional"] += jp
		case "Kultural":
			summary.Competency["teknis"] += jp
		case "Seminar":
			summary.Competency["seminar"] += jp
		default:
			// Attended records without a submission carry no competency type;
			// they count as seminar participation.
			summary.Competency["seminar"] += jp
		}

		switch h.TrainingType {
		case "Pelatihan Online":
			summary.Training["online"] += jp
		case "Klasikal":
			summary.Training["offline"] += jp
		case "Blended":
			summary.Training["blended"] += jp
		default:
			switch h.Seminar.Type {
			case models.SeminarOnline:
				summary.Training["online"] += jp
			case models.SeminarOnsite:
				summary.Training["offline"] += jp
			case models.SeminarHybrid:
				summary.Training["blended"] += jp
			default:
				summary.Training["online"] += jp
			}
		}
	}

	return summary
}

// GetSeminarParticipants lists every participation record for a seminar with
// the participant attached. Manager view.
func GetSeminarParticipants(c *fiber.Ctx) error {
	seminarID, err := strconv.Atoi(c.Params("id"))
	if err != nil || seminarID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid seminar id!", nil)
	}

	var histories []models.History
	if err := database.Database.Db.Where("seminar_id = ?", seminarID).
		Preload("User").Find(&histories).Error; err != nil {
		log.Printf("Error fetching participants: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch participants!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Participants fetched successfully.", histories)
}

// DeleteHistory removes a participation record.
func DeleteHistory(c *fiber.Ctx) error {
	historyID := c.Locals("historyID").(int)

	db := database.Database.Db

	var history models.History
	if err := db.Where("id = ?", historyID).First(&history).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "History record not found!", nil)
	}

	if err := db.Delete(&history).Error; err != nil {
		log.Printf("Error deleting history: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "History deleted successfully.", nil)
}
