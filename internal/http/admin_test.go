package handlers_test

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"guesthouse/internal/repos"
)

func sectionID(t *testing.T, a *testApp, key string) string {
	t.Helper()
	var id string
	if err := a.db.Get(&id, `SELECT id FROM content_sections WHERE section_key = ?`, key); err != nil {
		t.Fatalf("section %s: %v", key, err)
	}
	return id
}

func TestAdminContentEditor(t *testing.T) {
	a := newTestApp(t, appOpts{})
	s := a.login(t)

	resp := a.get(t, s, "/admin/content")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("editor: expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body(t, resp), "Welkom bij Onze Prachtige BnB") {
		t.Fatal("editor should show stored Dutch content")
	}

	hero := sectionID(t, a, "hero_title")
	var frID string
	if err := a.db.Get(&frID, `SELECT id FROM content_translations WHERE section_id = ? AND language_code = 'fr'`, hero); err != nil {
		t.Fatal(err)
	}
	// remove the English row so the editor offers a temporary one
	if _, err := a.db.Exec(`DELETE FROM content_translations WHERE section_id = ? AND language_code = 'en'`, hero); err != nil {
		t.Fatal(err)
	}

	form := url.Values{}
	form.Set("c:fr:"+hero+":"+frID, "Bienvenue chez nous")
	form.Set("c:en:"+hero+":temp-abc-en", "Welcome home")
	var saved *http.Response
	entries := captureLogs(t, func() {
		saved = a.post(t, s, "/admin/content", form)
	})
	if saved.StatusCode != http.StatusFound || saved.Header.Get("Location") != "/admin/content?notice=saved" {
		t.Fatalf("save: got %d %q", saved.StatusCode, saved.Header.Get("Location"))
	}
	if e, ok := findAction(entries, "admin.content.save"); !ok || !e.Audit || e.Fields["written"] != float64(2) {
		t.Fatalf("expected audit with 2 writes, got %+v", entries)
	}

	if b := body(t, a.get(t, &session{}, "/fr")); !strings.Contains(b, "Bienvenue chez nous") {
		t.Fatal("French edit not visible")
	}
	if b := body(t, a.get(t, &session{}, "/en")); !strings.Contains(b, "Welcome home") {
		t.Fatal("inserted English row not visible")
	}
}

func TestAdminPropertySave(t *testing.T) {
	a := newTestApp(t, appOpts{})
	s := a.login(t)

	form := url.Values{
		"name":            {"Fleurs et Abeilles"},
		"description":     {"A quiet house with a garden"},
		"address":         {"1 Rue des Fleurs"},
		"max_guests":      {"6"},
		"bedrooms":        {"3"},
		"bathrooms":       {"2"},
		"price_per_night": {"95,50"},
		"currency":        {"eur"},
		"amenities":       {"Garden\nBikes\nGarden"},
		"images":          {"/static/img/a.svg"},
	}
	resp := a.post(t, s, "/admin/property", form)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.StatusCode)
	}

	p, err := repos.NewPropertyRepo(a.db).Get(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Fleurs et Abeilles" || p.PricePerNight != 95.5 || p.Currency != "EUR" || p.MaxGuests != 6 {
		t.Fatalf("unexpected property %+v", p)
	}
	if len(p.Amenities) != 2 {
		t.Fatalf("expected deduplicated amenities, got %v", p.Amenities)
	}
	if b := body(t, a.get(t, &session{}, "/en")); !strings.Contains(b, "Fleurs et Abeilles") {
		t.Fatal("new property name not on the home page")
	}

	form.Set("price_per_night", "free")
	resp = a.post(t, s, "/admin/property", form)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid price: expected 400, got %d", resp.StatusCode)
	}
}

func roomIDs(t *testing.T, a *testApp) []string {
	t.Helper()
	var ids []string
	if err := a.db.Select(&ids, `SELECT id FROM rooms ORDER BY sort_order, created_at`); err != nil {
		t.Fatal(err)
	}
	return ids
}

func roomForm(name string) url.Values {
	return url.Values{
		"action":          {"save"},
		"name":            {name},
		"description":     {"Quiet room at the back"},
		"max_guests":      {"2"},
		"bed_type":        {"Double"},
		"size_sqm":        {"18"},
		"price_per_night": {"75"},
		"is_available":    {"1"},
		"amenities":       {"WiFi\nDesk"},
		"images":          {"/static/img/a.svg", "/static/img/b.svg"},
	}
}

func TestAdminRoomLifecycle(t *testing.T) {
	a := newTestApp(t, appOpts{})
	s := a.login(t)

	if resp := a.get(t, s, "/admin/rooms/new"); resp.StatusCode != http.StatusOK {
		t.Fatalf("new form: expected 200, got %d", resp.StatusCode)
	}

	var resp *http.Response
	entries := captureLogs(t, func() {
		resp = a.post(t, s, "/admin/rooms", roomForm("Garden Room"))
	})
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/admin/rooms?notice=created" {
		t.Fatalf("create: got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	if _, ok := findAction(entries, "admin.rooms.create"); !ok {
		t.Fatal("expected admin.rooms.create audit")
	}

	ids := roomIDs(t, a)
	if len(ids) != 2 {
		t.Fatalf("expected seeded room plus new one, got %d", len(ids))
	}
	garden := ids[1]

	if b := body(t, a.get(t, &session{}, "/en")); !strings.Contains(b, "Garden Room") {
		t.Fatal("new room not on the home page")
	}

	// moving the last room down is a no-op
	if resp := a.post(t, s, "/admin/rooms/"+garden+"/move", url.Values{"direction": {"down"}}); resp.StatusCode != http.StatusFound {
		t.Fatalf("move down: got %d", resp.StatusCode)
	}
	if got := roomIDs(t, a); got[1] != garden {
		t.Fatal("boundary move changed the order")
	}
	if resp := a.post(t, s, "/admin/rooms/"+garden+"/move", url.Values{"direction": {"up"}}); resp.StatusCode != http.StatusFound {
		t.Fatalf("move up: got %d", resp.StatusCode)
	}
	if got := roomIDs(t, a); got[0] != garden {
		t.Fatalf("expected garden room first, got %v", got)
	}
	if resp := a.post(t, s, "/admin/rooms/"+garden+"/move", url.Values{"direction": {"sideways"}}); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad direction: expected 400, got %d", resp.StatusCode)
	}

	upd := roomForm("Garden Suite")
	upd.Del("is_available")
	if resp := a.post(t, s, "/admin/rooms/"+garden, upd); resp.StatusCode != http.StatusFound {
		t.Fatalf("update: got %d", resp.StatusCode)
	}
	room, err := repos.NewRoomRepo(a.db).Get(context.Background(), garden)
	if err != nil {
		t.Fatal(err)
	}
	if room.Name != "Garden Suite" || room.IsAvailable {
		t.Fatalf("update not applied: %+v", room)
	}

	if resp := a.get(t, s, "/admin/rooms/"+garden+"/delete"); resp.StatusCode != http.StatusOK {
		t.Fatalf("confirm page: got %d", resp.StatusCode)
	}
	if resp := a.post(t, s, "/admin/rooms/"+garden+"/delete", url.Values{}); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("delete without confirm: expected 400, got %d", resp.StatusCode)
	}
	entries = captureLogs(t, func() {
		resp = a.post(t, s, "/admin/rooms/"+garden+"/delete", url.Values{"confirm": {"yes"}})
	})
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/admin/rooms?notice=deleted" {
		t.Fatalf("delete: got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	e, ok := findAction(entries, "admin.rooms.delete")
	if !ok || e.Fields["room_id"] != garden {
		t.Fatalf("expected delete audit for %s, got %+v", garden, entries)
	}
	if b := body(t, a.get(t, &session{}, "/en")); strings.Contains(b, "Garden Suite") {
		t.Fatal("deleted room still on the home page")
	}
	if resp := a.get(t, s, "/admin/rooms/"+garden+"/edit"); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("edit deleted room: expected 404, got %d", resp.StatusCode)
	}
}

func TestAdminRoomValidationAndCancel(t *testing.T) {
	a := newTestApp(t, appOpts{})
	s := a.login(t)

	bad := roomForm("")
	bad.Set("price_per_night", "-3")
	resp := a.post(t, s, "/admin/rooms", bad)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	b := body(t, resp)
	if !strings.Contains(b, "Name is required") || !strings.Contains(b, "Price must be a positive amount") {
		t.Fatal("expected field errors")
	}
	if !strings.Contains(b, "Quiet room at the back") {
		t.Fatal("draft not preserved")
	}

	cancel := roomForm("Never saved")
	cancel.Set("action", "cancel")
	resp = a.post(t, s, "/admin/rooms", cancel)
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/admin/rooms?notice=cancelled" {
		t.Fatalf("cancel: got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	if n := len(roomIDs(t, a)); n != 1 {
		t.Fatalf("cancel must not write, found %d rooms", n)
	}
}

func TestAdminRoomImageCap(t *testing.T) {
	a := newTestApp(t, appOpts{})
	s := a.login(t)

	form := roomForm("Attic")
	form["images"] = []string{"/static/img/a.svg", "/static/img/b.svg", "/static/img/c.svg", "/static/img/d.svg", "/static/img/e.svg"}
	resp := a.post(t, s, "/admin/rooms", form)
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/admin/rooms?notice=too_many_images" {
		t.Fatalf("got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	ids := roomIDs(t, a)
	room, err := repos.NewRoomRepo(a.db).Get(context.Background(), ids[len(ids)-1])
	if err != nil {
		t.Fatal(err)
	}
	if len(room.Images) != 4 {
		t.Fatalf("expected 4 images, got %v", room.Images)
	}
}

func TestAdminUploadWithoutStorage(t *testing.T) {
	a := newTestApp(t, appOpts{})
	s := a.login(t)
	// a urlencoded post carries no file
	resp := a.post(t, s, "/admin/media", url.Values{"back": {"https://evil.example/admin"}})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin?notice=upload_failed" {
		t.Fatalf("unexpected redirect %q", loc)
	}
}

func TestAdminRoomListDisablesBoundaryMoves(t *testing.T) {
	a := newTestApp(t, appOpts{})
	s := a.login(t)
	if resp := a.post(t, s, "/admin/rooms", roomForm("Garden Room")); resp.StatusCode != http.StatusFound {
		t.Fatalf("create: got %d", resp.StatusCode)
	}

	resp := a.get(t, s, "/admin/rooms")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	b := body(t, resp)
	if n := strings.Count(b, `value="up" disabled`); n != 1 {
		t.Fatalf("expected one disabled up button, got %d", n)
	}
	if n := strings.Count(b, `value="down" disabled`); n != 1 {
		t.Fatalf("expected one disabled down button, got %d", n)
	}
	if n := strings.Count(b, `value="down"`); n != 2 {
		t.Fatalf("expected a down button per room, got %d", n)
	}
}
