package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"guesthouse/internal/domain"
	applog "guesthouse/internal/log"
	"guesthouse/internal/media"
	"guesthouse/internal/services"
	"guesthouse/internal/validate"
)

type RoomHandler struct {
	Rooms   *services.RoomService
	Gallery media.Gallery
}

func (h *RoomHandler) form(c *fiber.Ctx, ed *services.RoomEditor, extra fiber.Map) error {
	data := fiber.Map{
		"Room":      ed.Draft(),
		"Creating":  ed.State() == services.EditorCreating,
		"MaxImages": domain.MaxRoomImages,
	}
	if h.Gallery != nil {
		imgs, err := h.Gallery.List(c.UserContext())
		if err != nil {
			applog.Warn(c, "admin.gallery.list.fail", err, nil)
		}
		data["Gallery"] = imgs
	}
	for k, v := range extra {
		data[k] = v
	}
	return render(c, "admin_room_form", data)
}

// GET /admin/rooms
func (h *RoomHandler) List(c *fiber.Ctx) error {
	rooms, err := h.Rooms.List(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.rooms.list.fail", err, nil)
		return notFound(c, fiber.StatusInternalServerError, "Could not load rooms")
	}
	return render(c, "admin_rooms", fiber.Map{"Rooms": rooms, "LastIndex": len(rooms) - 1, "Notice": notice(c)})
}

// GET /admin/rooms/new
func (h *RoomHandler) New(c *fiber.Ctx) error {
	ed := services.NewRoomEditor(h.Rooms)
	if err := ed.StartCreate(); err != nil {
		return err
	}
	return h.form(c, ed, nil)
}

// POST /admin/rooms
func (h *RoomHandler) Create(c *fiber.Ctx) error {
	ed := services.NewRoomEditor(h.Rooms)
	if err := ed.StartCreate(); err != nil {
		return err
	}
	return h.save(c, ed)
}

// load fetches the room named in the path. When ok is false the response has been written.
func (h *RoomHandler) load(c *fiber.Ctx) (room domain.Room, ok bool, err error) {
	id, valid := validate.ID(c.Params("id"))
	if !valid {
		return room, false, notFound(c, fiber.StatusNotFound, "Room not found")
	}
	room, err = h.Rooms.Get(c.UserContext(), id)
	if errors.Is(err, domain.ErrNotFound) {
		return room, false, notFound(c, fiber.StatusNotFound, "Room not found")
	}
	if err != nil {
		applog.Error(c, "admin.rooms.load.fail", err, map[string]any{"room_id": id})
		return room, false, notFound(c, fiber.StatusInternalServerError, "Could not load room")
	}
	return room, true, nil
}

// GET /admin/rooms/:id/edit
func (h *RoomHandler) Edit(c *fiber.Ctx) error {
	room, ok, err := h.load(c)
	if !ok {
		return err
	}
	ed := services.NewRoomEditor(h.Rooms)
	if err := ed.StartEdit(room); err != nil {
		return err
	}
	return h.form(c, ed, nil)
}

// POST /admin/rooms/:id
func (h *RoomHandler) Update(c *fiber.Ctx) error {
	room, ok, err := h.load(c)
	if !ok {
		return err
	}
	ed := services.NewRoomEditor(h.Rooms)
	if err := ed.StartEdit(room); err != nil {
		return err
	}
	return h.save(c, ed)
}

func (h *RoomHandler) save(c *fiber.Ctx, ed *services.RoomEditor) error {
	if c.FormValue("action") == "cancel" {
		if err := ed.Cancel(); err != nil {
			return err
		}
		return c.Redirect("/admin/rooms?notice=cancelled")
	}
	creating := ed.State() == services.EditorCreating
	errs, dropped := applyRoomForm(c, ed.Draft())
	if len(errs) > 0 {
		c.Status(fiber.StatusBadRequest)
		return h.form(c, ed, fiber.Map{"Errors": errs})
	}

	saved, err := ed.Save(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.rooms.save.fail", err, map[string]any{"room_id": ed.Draft().ID, "create": creating})
		status := fiber.StatusInternalServerError
		if errors.Is(err, domain.ErrNotFound) {
			status = fiber.StatusNotFound
		}
		c.Status(status)
		return h.form(c, ed, fiber.Map{"Notice": adminNotices["save_failed"]})
	}

	code := "saved"
	action := "admin.rooms.update"
	if creating {
		code, action = "created", "admin.rooms.create"
	}
	if dropped {
		code = "too_many_images"
	}
	applog.Audit(c, action, map[string]any{"room_id": saved.ID, "name": saved.Name})
	return c.Redirect("/admin/rooms?notice=" + code)
}

// GET /admin/rooms/:id/delete
func (h *RoomHandler) ConfirmDelete(c *fiber.Ctx) error {
	room, ok, err := h.load(c)
	if !ok {
		return err
	}
	return render(c, "admin_room_delete", fiber.Map{"Room": room})
}

// POST /admin/rooms/:id/delete
func (h *RoomHandler) Delete(c *fiber.Ctx) error {
	room, ok, err := h.load(c)
	if !ok {
		return err
	}
	if c.FormValue("confirm") != "yes" {
		c.Status(fiber.StatusBadRequest)
		return render(c, "admin_room_delete", fiber.Map{"Room": room, "Err": "Please confirm the deletion."})
	}
	if err := h.Rooms.Delete(c.UserContext(), room.ID); err != nil {
		applog.Error(c, "admin.rooms.delete.fail", err, map[string]any{"room_id": room.ID})
		return c.Redirect("/admin/rooms?notice=delete_failed")
	}
	applog.Audit(c, "admin.rooms.delete", map[string]any{"room_id": room.ID, "name": room.Name})
	return c.Redirect("/admin/rooms?notice=deleted")
}

// POST /admin/rooms/:id/move
func (h *RoomHandler) Move(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, fiber.StatusNotFound, "Room not found")
	}
	dir, ok := validate.Direction(c.FormValue("direction"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid direction")
	}
	_, err := h.Rooms.Move(c.UserContext(), id, dir)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return notFound(c, fiber.StatusNotFound, "Room not found")
	case err != nil:
		applog.Error(c, "admin.rooms.move.fail", err, map[string]any{"room_id": id, "direction": dir})
		return c.Redirect("/admin/rooms?notice=move_failed")
	}
	applog.Audit(c, "admin.rooms.move", map[string]any{"room_id": id, "direction": dir})
	return c.Redirect("/admin/rooms?notice=moved")
}
