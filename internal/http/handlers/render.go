package handlers

import "github.com/gofiber/fiber/v2"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = formErrors{}
	}
	if u := c.Locals("user"); u != nil {
		data["User"] = u
	}
	// The CSRF middleware stores the token in Locals; the cookie covers requests it skipped.
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		tok = c.Cookies("csrf_")
	}
	if tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

// notFound renders the shared message page with status.
func notFound(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).Render("notfound", fiber.Map{"Message": msg})
}

var adminNotices = map[string]string{
	"saved":           "Changes saved.",
	"save_failed":     "Could not save all changes. Please review and try again.",
	"created":         "Room created.",
	"deleted":         "Room deleted.",
	"delete_failed":   "Could not delete the room. Please try again.",
	"moved":           "Room order updated.",
	"move_failed":     "Could not update the room order. Please try again.",
	"cancelled":       "Changes discarded.",
	"uploaded":        "Image uploaded.",
	"upload_failed":   "Could not upload the image. Please try again.",
	"upload_disabled": "Image upload is not configured.",
	"too_many_images": "A room can have at most 4 images; extra selections were ignored.",
}

// notice maps the notice query parameter to its message.
func notice(c *fiber.Ctx) string {
	return adminNotices[c.Query("notice")]
}
