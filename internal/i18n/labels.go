package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// UI strings that are not editable content. Keys are the English source text.
var uiKeys = []string{
	"Rooms",
	"About",
	"Contact",
	"First name",
	"Last name",
	"Email",
	"Desired dates",
	"Message",
	"Send message",
	"Your message has been sent. We will get back to you soon.",
	"Failed to send your message. Please try again later.",
	"Please check your name and email address.",
	"per night",
	"guests",
	"Available",
	"Not available",
}

func init() {
	set := func(tag language.Tag, pairs ...string) {
		for i := 0; i+1 < len(pairs); i += 2 {
			_ = message.SetString(tag, pairs[i], pairs[i+1])
		}
	}
	set(language.Dutch,
		"Rooms", "Kamers",
		"About", "Over ons",
		"Contact", "Contact",
		"First name", "Voornaam",
		"Last name", "Achternaam",
		"Email", "E-mail",
		"Desired dates", "Gewenste data",
		"Message", "Bericht",
		"Send message", "Verstuur bericht",
		"Your message has been sent. We will get back to you soon.", "Uw bericht is verzonden. We nemen snel contact met u op.",
		"Failed to send your message. Please try again later.", "Het versturen van uw bericht is mislukt. Probeer het later opnieuw.",
		"Please check your name and email address.", "Controleer uw naam en e-mailadres.",
		"per night", "per nacht",
		"guests", "gasten",
		"Available", "Beschikbaar",
		"Not available", "Niet beschikbaar",
	)
	set(language.French,
		"Rooms", "Chambres",
		"About", "À propos",
		"Contact", "Contact",
		"First name", "Prénom",
		"Last name", "Nom",
		"Email", "E-mail",
		"Desired dates", "Dates souhaitées",
		"Message", "Message",
		"Send message", "Envoyer le message",
		"Your message has been sent. We will get back to you soon.", "Votre message a été envoyé. Nous vous répondrons bientôt.",
		"Failed to send your message. Please try again later.", "L'envoi de votre message a échoué. Veuillez réessayer plus tard.",
		"Please check your name and email address.", "Veuillez vérifier votre nom et votre adresse e-mail.",
		"per night", "par nuit",
		"guests", "personnes",
		"Available", "Disponible",
		"Not available", "Indisponible",
	)
}

// Labels returns the UI strings for lang keyed by their English source text.
func Labels(lang string) map[string]string {
	tag := language.English
	switch Normalize(lang) {
	case Dutch:
		tag = language.Dutch
	case French:
		tag = language.French
	}
	p := message.NewPrinter(tag)
	out := make(map[string]string, len(uiKeys))
	for _, k := range uiKeys {
		out[k] = p.Sprintf(k)
	}
	return out
}
