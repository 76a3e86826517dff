package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"guesthouse/internal/domain"
	applog "guesthouse/internal/log"
	"guesthouse/internal/media"
	"guesthouse/internal/services"
)

type AdminHandler struct {
	Content  *services.ContentService
	Property *services.PropertyService
	Rooms    *services.RoomService
	Gallery  media.Gallery
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	rooms, err := h.Rooms.List(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.dashboard.rooms.fail", err, nil)
	}
	return render(c, "admin_dashboard", fiber.Map{"RoomCount": len(rooms), "Notice": notice(c)})
}

// GET /admin/content
func (h *AdminHandler) ContentEditor(c *fiber.Ctx) error {
	ed, err := h.Content.LoadEditor(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.content.load.fail", err, nil)
		return notFound(c, fiber.StatusInternalServerError, "Could not load content")
	}
	return render(c, "admin_content", fiber.Map{"Editor": ed, "Notice": notice(c)})
}

// POST /admin/content
//
// Fields are named c:<lang>:<section id>:<translation id>.
func (h *AdminHandler) SaveContent(c *fiber.Ctx) error {
	var edits []domain.ContentTranslation
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		parts := strings.SplitN(string(k), ":", 4)
		if len(parts) != 4 || parts[0] != "c" {
			return
		}
		edits = append(edits, domain.ContentTranslation{
			ID:           parts[3],
			SectionID:    parts[2],
			LanguageCode: parts[1],
			Content:      string(v),
		})
	})

	n, err := h.Content.SaveTranslations(c.UserContext(), edits)
	if err != nil {
		applog.Error(c, "admin.content.save.fail", err, map[string]any{"written": n, "submitted": len(edits)})
		return c.Redirect("/admin/content?notice=save_failed")
	}
	applog.Audit(c, "admin.content.save", map[string]any{"written": n})
	return c.Redirect("/admin/content?notice=saved")
}

func (h *AdminHandler) gallery(c *fiber.Ctx) []string {
	if h.Gallery == nil {
		return nil
	}
	imgs, err := h.Gallery.List(c.UserContext())
	if err != nil {
		applog.Warn(c, "admin.gallery.list.fail", err, nil)
	}
	return imgs
}

// GET /admin/property
func (h *AdminHandler) PropertyForm(c *fiber.Ctx) error {
	p, err := h.Property.Load(c.UserContext())
	if errors.Is(err, domain.ErrNotFound) {
		return notFound(c, fiber.StatusNotFound, "No property record found. Run the seed command first.")
	}
	if err != nil {
		applog.Error(c, "admin.property.load.fail", err, nil)
		return notFound(c, fiber.StatusInternalServerError, "Could not load property")
	}
	return render(c, "admin_property", fiber.Map{"Property": p, "Gallery": h.gallery(c), "Notice": notice(c)})
}

// POST /admin/property
func (h *AdminHandler) SaveProperty(c *fiber.Ctx) error {
	p, err := h.Property.Load(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.property.load.fail", err, nil)
		return notFound(c, fiber.StatusInternalServerError, "Could not load property")
	}
	if errs := applyPropertyForm(c, &p); len(errs) > 0 {
		c.Status(fiber.StatusBadRequest)
		return render(c, "admin_property", fiber.Map{"Property": p, "Gallery": h.gallery(c), "Errors": errs})
	}
	if err := h.Property.Save(c.UserContext(), p); err != nil {
		applog.Error(c, "admin.property.save.fail", err, map[string]any{"property_id": p.ID})
		c.Status(fiber.StatusInternalServerError)
		return render(c, "admin_property", fiber.Map{"Property": p, "Gallery": h.gallery(c), "Notice": adminNotices["save_failed"]})
	}
	applog.Audit(c, "admin.property.save", map[string]any{"property_id": p.ID})
	return c.Redirect("/admin/property?notice=saved")
}

// POST /admin/media
func (h *AdminHandler) UploadImage(c *fiber.Ctx) error {
	back := c.FormValue("back")
	if !strings.HasPrefix(back, "/admin") || strings.Contains(back, "//") {
		back = "/admin"
	}
	redirect := func(code string) error {
		sep := "?"
		if strings.Contains(back, "?") {
			sep = "&"
		}
		return c.Redirect(back + sep + "notice=" + code)
	}

	fh, err := c.FormFile("image")
	if err != nil {
		applog.Info(c, "admin.media.upload.missing", nil)
		return redirect("upload_failed")
	}
	f, err := fh.Open()
	if err != nil {
		applog.Error(c, "admin.media.upload.fail", err, nil)
		return redirect("upload_failed")
	}
	defer f.Close()

	url, err := h.Gallery.Upload(c.UserContext(), media.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	})
	if errors.Is(err, media.ErrUploadUnsupported) {
		return redirect("upload_disabled")
	}
	if err != nil {
		applog.Error(c, "admin.media.upload.fail", err, map[string]any{"filename": fh.Filename})
		return redirect("upload_failed")
	}
	applog.Audit(c, "admin.media.upload", map[string]any{"url": url})
	return redirect("uploaded")
}
