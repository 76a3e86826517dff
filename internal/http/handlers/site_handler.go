package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"guesthouse/internal/i18n"
	applog "guesthouse/internal/log"
	"guesthouse/internal/services"
	"guesthouse/internal/validate"
)

type SiteHandler struct {
	Content      *services.ContentService
	Property     *services.PropertyService
	Rooms        *services.RoomService
	Contact      *services.ContactService
	DefaultLang  string
	CookieSecure bool
}

func (h *SiteHandler) rememberLang(c *fiber.Ctx, lang string) {
	c.Cookie(&fiber.Cookie{
		Name:     i18n.LangCookieName,
		Value:    lang,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   h.CookieSecure,
	})
}

// GET /
func (h *SiteHandler) Home(c *fiber.Ctx) error {
	lang, persist := i18n.Resolve(
		c.Query(i18n.LangParam),
		c.Cookies(i18n.LangCookieName),
		c.Get(fiber.HeaderAcceptLanguage),
		h.DefaultLang,
	)
	if persist {
		h.rememberLang(c, lang)
	}
	return h.page(c, lang, fiber.Map{})
}

// GET /:lang
func (h *SiteHandler) Lang(c *fiber.Ctx) error {
	lang := i18n.Normalize(c.Params("lang"))
	if lang == "" {
		return c.Next()
	}
	if c.Cookies(i18n.LangCookieName) != lang {
		h.rememberLang(c, lang)
	}
	return h.page(c, lang, fiber.Map{})
}

func (h *SiteHandler) page(c *fiber.Ctx, lang string, extra fiber.Map) error {
	ctx := c.UserContext()
	labels := i18n.Labels(lang)
	data := fiber.Map{
		"Lang":      lang,
		"C":         h.Content.Resolve(ctx, lang),
		"L":         labels,
		"Property":  h.Property.Resolve(ctx),
		"Rooms":     h.Rooms.Resolve(ctx),
		"Languages": i18n.Options(lang, h.DefaultLang),
		"Form":      services.ContactForm{},
	}
	if c.Query("sent") == "1" {
		data["Sent"] = labels["Your message has been sent. We will get back to you soon."]
	}
	for k, v := range extra {
		data[k] = v
	}
	return render(c, "home", data)
}

// POST /contact
func (h *SiteHandler) SendContact(c *fiber.Ctx) error {
	lang, ok := validate.Language(c.FormValue("lang"))
	if !ok {
		lang = i18n.Normalize(h.DefaultLang)
		if lang == "" {
			lang = i18n.Dutch
		}
	}
	form := services.ContactForm{
		FirstName: c.FormValue("first_name"),
		LastName:  c.FormValue("last_name"),
		Email:     c.FormValue("email"),
		Dates:     c.FormValue("dates"),
		Message:   c.FormValue("message"),
		Lang:      lang,
	}

	rec, err := h.Contact.Send(c.UserContext(), form)
	if err != nil {
		labels := i18n.Labels(lang)
		msg := labels["Failed to send your message. Please try again later."]
		status := fiber.StatusBadGateway
		if errors.Is(err, services.ErrInvalidContact) {
			msg = labels["Please check your name and email address."]
			status = fiber.StatusBadRequest
			applog.Info(c, "contact.invalid", map[string]any{"reason": err.Error()})
		} else {
			applog.Error(c, "contact.send.fail", err, map[string]any{"lang": lang})
		}
		c.Status(status)
		return h.page(c, lang, fiber.Map{"Form": form, "FormErr": msg})
	}

	applog.Info(c, "contact.sent", map[string]any{"transport": rec.Transport, "message_id": rec.MessageID, "lang": lang})
	return c.Redirect("/" + lang + "?sent=1#contact")
}
