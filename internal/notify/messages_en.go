package notify

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	defaultRecipientName = "They"
	defaultSenderName    = "Your Valentine"
	brandName            = "Ask Your Crush"
)

func init() {
	lang := language.English

	message.SetString(lang, "email.footer", "Sent from "+brandName)
	message.SetString(lang, "email.footer_with_sender", "Sent from "+brandName+" • Created by %s")
	message.SetString(lang, "email.response.label", "The response")
	message.SetString(lang, "email.response.cta", "View the full response")
	message.SetString(lang, "email.event.label", "The date")
	message.SetString(lang, "email.event.when_timed", "%s at %s")

	message.SetString(lang, "email.response_yes.subject", "They said yes! 💕")
	message.SetString(lang, "email.response_yes.subheading", "good news")
	message.SetString(lang, "email.response_yes.heading", "%s said yes")
	message.SetString(lang, "email.response_yes.body", "Your Valentine invite got a yes. Time to make some plans.")
	message.SetString(lang, "email.response_yes.value", "Yes")

	message.SetString(lang, "email.response_maybe.subject", "They said maybe...")
	message.SetString(lang, "email.response_maybe.subheading", "update")
	message.SetString(lang, "email.response_maybe.heading", "%s said maybe")
	message.SetString(lang, "email.response_maybe.body", "Not a no. Give them a moment, it could still go your way.")
	message.SetString(lang, "email.response_maybe.value", "Maybe")

	message.SetString(lang, "email.response_no.subject", "They responded to your invite")
	message.SetString(lang, "email.response_no.subheading", "update")
	message.SetString(lang, "email.response_no.heading", "%s said no")
	message.SetString(lang, "email.response_no.body", "Not the answer you hoped for, but respect for putting yourself out there. That takes courage.")
	message.SetString(lang, "email.response_no.value", "No")

	message.SetString(lang, "email.confirmation.subject", "It's a date! 💕")
	message.SetString(lang, "email.confirmation.subheading", "you said yes")
	message.SetString(lang, "email.confirmation.heading", "It's a date")
	message.SetString(lang, "email.confirmation.body", "%s now knows the answer. Keep this email so you don't forget the plan.")
	message.SetString(lang, "email.confirmation.attachment_note", "The calendar invite is attached. Open it to add the date to your calendar.")
}
