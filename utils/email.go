package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"

	"github.com/juridx/juridx-api/models"
)

const mailSender = "JuridX - Abderrahman Adel <noreply@juridx.com>"

// IsMailConfigured reports whether an SMTP transport is available. Handlers
// degrade to a warning instead of failing when it is not.
func IsMailConfigured() bool {
	return os.Getenv("SMTP_HOST") != "" && os.Getenv("EMAIL_USER") != ""
}

// InternalRecipient is the firm inbox receiving alerts.
func InternalRecipient() string {
	if to := os.Getenv("CONTACT_EMAIL"); to != "" {
		return to
	}
	return "contact@juridx.com"
}

func SendEmail(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", mailSender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// SendContactAlert notifies the firm inbox about a new contact request.
func SendContactAlert(contact *models.Contact) error {
	subject := fmt.Sprintf("Nouvelle demande de contact de %s %s", contact.FirstName, contact.LastName)
	company := ""
	if contact.Company != "" {
		company = fmt.Sprintf("<p><strong>Entreprise:</strong> %s</p>", contact.Company)
	}
	body := fmt.Sprintf(`
		<h2>Nouvelle Demande de Contact - JuridX</h2>
		<p><strong>ID:</strong> %d</p>
		<p><strong>Nom:</strong> %s %s</p>
		<p><strong>Email:</strong> %s</p>
		%s
		<p><strong>Date:</strong> %s</p>
		<h3>Message</h3>
		<p>%s</p>
		<p><strong>Veuillez répondre à cette demande dans les 24 heures pour un service client optimal.</strong></p>
	`, contact.ID, contact.FirstName, contact.LastName, contact.Email, company,
		time.Now().Format("02/01/2006 15:04"), contact.Message)

	return SendEmail(InternalRecipient(), subject, body)
}

// SendContactAcknowledgment thanks the sender and echoes their message.
func SendContactAcknowledgment(contact *models.Contact) error {
	subject := "Merci de votre contact - JuridX"
	body := fmt.Sprintf(`
		<h1>JuridX</h1>
		<p>Cabinet de Conseil Juridique International</p>
		<h2>Merci pour votre demande</h2>
		<p>Cher/Chère %s,</p>
		<p>Merci de nous avoir contactés. Nous avons bien reçu votre message et apprécions votre intérêt pour nos services juridiques.</p>
		<p>Notre équipe examinera votre demande et vous répondra dans les 24 heures.</p>
		<h3>Résumé de votre message</h3>
		<p><strong>Référence:</strong> %d</p>
		<p><strong>Message:</strong> %s</p>
		<p>Cordialement,<br><strong>Abderrahman Adel<br>Fondateur - JuridX</strong></p>
	`, contact.FirstName, contact.ID, contact.Message)

	return SendEmail(contact.Email, subject, body)
}

// SendConsultationScheduled tells the client when their consultation was
// booked for.
func SendConsultationScheduled(consultation *models.Consultation) error {
	if consultation.ScheduledDate == nil {
		return fmt.Errorf("consultation %d has no scheduled date", consultation.ID)
	}
	subject := "Votre consultation est programmée - JuridX"
	duration := ""
	if consultation.EstimatedDuration > 0 {
		duration = fmt.Sprintf("<li><strong>Durée estimée:</strong> %d minutes</li>", consultation.EstimatedDuration)
	}
	body := fmt.Sprintf(`
		<p>Cher/Chère %s,</p>
		<p>Votre consultation a été programmée.</p>
		<ul>
			<li><strong>Référence:</strong> %d</li>
			<li><strong>Date:</strong> %s</li>
			%s
		</ul>
		<p>Si vous souhaitez reporter ou annuler, contactez-nous dès que possible.</p>
		<p>Cordialement,<br><strong>JuridX</strong></p>
	`, consultation.FirstName, consultation.ID,
		consultation.ScheduledDate.Format("02/01/2006 15:04"), duration)

	return SendEmail(consultation.Email, subject, body)
}

// SendConsultationReminder is sent one hour before a scheduled consultation.
func SendConsultationReminder(consultation *models.Consultation) error {
	subject := "Rappel: consultation dans une heure - JuridX"
	serviceName := ""
	if consultation.Service != nil {
		serviceName = fmt.Sprintf("<li><strong>Service:</strong> %s</li>", consultation.Service.Title)
	}
	body := fmt.Sprintf(`
		<p>Cher/Chère %s,</p>
		<p>Ceci est un rappel pour votre consultation prévue dans une heure.</p>
		<ul>
			<li><strong>Référence:</strong> %d</li>
			<li><strong>Date:</strong> %s</li>
			%s
		</ul>
		<p>Cordialement,<br><strong>JuridX</strong></p>
	`, consultation.FirstName, consultation.ID,
		consultation.ScheduledDate.Format("02/01/2006 15:04"), serviceName)

	return SendEmail(consultation.Email, subject, body)
}

// SendFollowUpNotice alerts the firm inbox that a follow-up is due today.
func SendFollowUpNotice(consultation *models.Consultation) error {
	subject := fmt.Sprintf("Suivi à effectuer aujourd'hui: consultation %d", consultation.ID)
	body := fmt.Sprintf(`
		<p>La consultation suivante attend un suivi aujourd'hui:</p>
		<ul>
			<li><strong>Référence:</strong> %d</li>
			<li><strong>Client:</strong> %s %s (%s)</li>
			<li><strong>Notes:</strong> %s</li>
		</ul>
	`, consultation.ID, consultation.FirstName, consultation.LastName,
		consultation.Email, consultation.Notes)

	return SendEmail(InternalRecipient(), subject, body)
}
