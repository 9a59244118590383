package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"simdiklat_backend/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.EmailPassword

	if from == "" || password == "" {
		log.Println("Email sender not configured, skipping email:", subject)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: SIMDIKLAT <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B4332; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B4332; line-height: 1.6; }
			.content h2 { color: #1B4332; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #D7B56D; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>SIMDIKLAT</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				Sistem Informasi Manajemen Diklat &amp; Seminar ASN.<br>
				Email ini dikirim otomatis, mohon tidak membalas.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendWelcomeEmail is fired after a successful registration.
func SendWelcomeEmail(email, nama string) {
	subject := "Selamat Datang di SIMDIKLAT"
	body := fmt.Sprintf(`
		<p>Yth. %s,</p>
		<p>Akun Anda telah berhasil dibuat. Silakan masuk untuk mendaftar seminar
		dan mencatat JP pelatihan Anda.</p>
	`, nama)

	go SendEmail([]string{email}, subject, getEmailTemplate("Registrasi Berhasil", body))
}

// SendVerificationResultEmail is fired after a manager verifies or rejects a
// proof submission.
func SendVerificationResultEmail(email, nama, seminarTitle, status, reason string) {
	var subject, body string
	if status == "verified" {
		subject = "Partisipasi Terverifikasi: " + seminarTitle
		body = fmt.Sprintf(`
			<p>Yth. %s,</p>
			<p>Bukti partisipasi Anda untuk <strong>%s</strong> telah
			<strong>diverifikasi</strong>. JP seminar ini sudah tercatat pada
			riwayat pelatihan Anda.</p>
		`, nama, seminarTitle)
	} else {
		subject = "Partisipasi Ditolak: " + seminarTitle
		body = fmt.Sprintf(`
			<p>Yth. %s,</p>
			<p>Bukti partisipasi Anda untuk <strong>%s</strong> <strong>ditolak</strong>.</p>
			<div class="info-box">Alasan: %s</div>
			<p>Silakan unggah ulang bukti partisipasi Anda.</p>
		`, nama, seminarTitle, reason)
	}

	go SendEmail([]string{email}, subject, getEmailTemplate(subject, body))
}
