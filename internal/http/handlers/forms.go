package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"guesthouse/internal/domain"
	"guesthouse/internal/validate"
)

// formErrors collects field messages for re-rendering a form.
type formErrors map[string]string

func (e formErrors) add(field, msg string) { e[field] = msg }

// multi returns every value posted for key, in order.
func multi(c *fiber.Ctx, key string) []string {
	var out []string
	for _, v := range c.Request().PostArgs().PeekMulti(key) {
		out = append(out, string(v))
	}
	if len(out) == 0 {
		if form, err := c.MultipartForm(); err == nil {
			out = append(out, form.Value[key]...)
		}
	}
	return out
}

// lines splits a textarea into trimmed, non-empty lines.
func lines(s string) []string {
	var out []string
	for _, l := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// applyRoomForm copies the posted fields into r. The bool reports whether images were dropped
// because of the per-room cap.
func applyRoomForm(c *fiber.Ctx, r *domain.Room) (formErrors, bool) {
	errs := formErrors{}
	if name, ok := validate.Name(c.FormValue("name")); ok {
		r.Name = name
	} else {
		r.Name = c.FormValue("name")
		errs.add("name", "Name is required (max 120 characters).")
	}
	desc, ok := validate.Text(c.FormValue("description"), 5000)
	r.Description = desc
	if !ok {
		errs.add("description", "Description is too long.")
	}
	r.BedType, _ = validate.Text(c.FormValue("bed_type"), 60)
	if n, ok := validate.Count(c.FormValue("max_guests"), 50); ok {
		r.MaxGuests = n
	} else {
		errs.add("max_guests", "Max guests must be a number between 0 and 50.")
	}
	if n, ok := validate.Count(c.FormValue("size_sqm"), 10000); ok {
		r.SizeSqm = n
	} else {
		errs.add("size_sqm", "Size must be a whole number of square metres.")
	}
	if p, ok := validate.Price(c.FormValue("price_per_night")); ok {
		r.PricePerNight = p
	} else {
		errs.add("price_per_night", "Price must be a positive amount.")
	}
	r.IsAvailable = c.FormValue("is_available") != ""

	r.Amenities = domain.StringList{}
	for _, a := range lines(c.FormValue("amenities")) {
		r.AddAmenity(a)
	}
	r.Images = domain.StringList{}
	dropped := false
	for _, img := range multi(c, "images") {
		img = strings.TrimSpace(img)
		if img == "" || r.Images.Contains(img) {
			continue
		}
		if !r.AddImage(img) {
			dropped = true
		}
	}
	return errs, dropped
}

func applyPropertyForm(c *fiber.Ctx, p *domain.PropertyInfo) formErrors {
	errs := formErrors{}
	if name, ok := validate.Name(c.FormValue("name")); ok {
		p.Name = name
	} else {
		p.Name = c.FormValue("name")
		errs.add("name", "Name is required (max 120 characters).")
	}
	desc, ok := validate.Text(c.FormValue("description"), 5000)
	p.Description = desc
	if !ok {
		errs.add("description", "Description is too long.")
	}
	addr, ok := validate.Text(c.FormValue("address"), 300)
	p.Address = addr
	if !ok {
		errs.add("address", "Address is too long.")
	}
	for field, dst := range map[string]*int{"max_guests": &p.MaxGuests, "bedrooms": &p.Bedrooms, "bathrooms": &p.Bathrooms} {
		n, ok := validate.Count(c.FormValue(field), 100)
		if !ok {
			errs.add(field, "Must be a number between 0 and 100.")
			continue
		}
		*dst = n
	}
	if price, ok := validate.Price(c.FormValue("price_per_night")); ok {
		p.PricePerNight = price
	} else {
		errs.add("price_per_night", "Price must be a positive amount.")
	}
	if cur, ok := validate.Currency(c.FormValue("currency")); ok {
		p.Currency = cur
	} else {
		errs.add("currency", "Currency must be a three-letter code such as EUR.")
	}

	p.Amenities = domain.StringList{}
	for _, a := range lines(c.FormValue("amenities")) {
		p.AddAmenity(a)
	}
	p.Images = domain.StringList{}
	for _, img := range multi(c, "images") {
		p.AddImage(img)
	}
	return errs
}
