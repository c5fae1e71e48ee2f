package submissionservice

import (
	"context"
	"errors"
	"time"

	"nocslol/api/filters"
	"nocslol/pkg/discord"
)

// Embed accent colors.
const (
	submissionColor = 0x00b4d8
	contactColor    = 0xf4a261
)

// ErrWebhookNotConfigured is returned when no webhook URL was configured.
var ErrWebhookNotConfigured = errors.New("discord webhook not configured")

// WebhookSender is the capability interface over the discord webhook client.
type WebhookSender interface {
	Send(ctx context.Context, payload discord.WebhookPayload) error
	Configured() bool
}

// SubmissionService forwards community submissions and contact messages
// to the moderation discord channel.
type SubmissionService struct {
	webhook WebhookSender
}

// NewSubmissionService creates the submission service.
func NewSubmissionService(webhook WebhookSender) *SubmissionService {
	return &SubmissionService{webhook: webhook}
}

// SubmitAbility forwards a champion ability annotation submission.
func (ss *SubmissionService) SubmitAbility(ctx context.Context, form *filters.SubmissionForm) error {
	if !ss.webhook.Configured() {
		return ErrWebhookNotConfigured
	}

	givesCS := "No"
	if form.GivesCS {
		givesCS = "Yes"
	}

	fields := []discord.EmbedField{
		{Name: "Champion", Value: form.ChampionName, Inline: true},
		{Name: "Ability", Value: form.AbilityName, Inline: true},
		{Name: "Gives CS", Value: givesCS, Inline: true},
		{Name: "Description", Value: form.Description},
		{Name: "Proof (" + proofType(form) + ")", Value: form.Proof},
	}

	if form.AdditionalNotes != "" {
		fields = append(fields, discord.EmbedField{Name: "Additional Notes", Value: form.AdditionalNotes})
	}

	return ss.webhook.Send(ctx, discord.WebhookPayload{
		Embeds: []discord.Embed{{
			Title:     "New ability submission",
			Color:     submissionColor,
			Fields:    fields,
			Footer:    &discord.EmbedFooter{Text: submitter(form)},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

// SubmitContact forwards a contact form message.
func (ss *SubmissionService) SubmitContact(ctx context.Context, form *filters.ContactForm) error {
	if !ss.webhook.Configured() {
		return ErrWebhookNotConfigured
	}

	return ss.webhook.Send(ctx, discord.WebhookPayload{
		Embeds: []discord.Embed{{
			Title:       "Contact: " + form.Subject,
			Description: form.Message,
			Color:       contactColor,
			Fields: []discord.EmbedField{
				{Name: "Name", Value: form.Name, Inline: true},
				{Name: "Email", Value: form.Email, Inline: true},
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

// proofType defaults to text when the form omits it.
func proofType(form *filters.SubmissionForm) string {
	if form.ProofType == "" {
		return "text"
	}
	return form.ProofType
}

// submitter formats the footer credit line.
func submitter(form *filters.SubmissionForm) string {
	if form.SubmitterDiscord != "" {
		return form.SubmitterName + " (" + form.SubmitterDiscord + ")"
	}
	return form.SubmitterName
}
