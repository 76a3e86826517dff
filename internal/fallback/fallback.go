// Package fallback holds the built-in site content used when the store is empty or unreachable.
// Nothing here is ever written to the store except by the seeder.
package fallback

import (
	"guesthouse/internal/domain"
	"guesthouse/internal/i18n"
)

// Section keys shared by every bundle.
const (
	HeroTitle          = "hero_title"
	HeroSubtitle       = "hero_subtitle"
	HeroCTA            = "hero_cta"
	AboutTitle         = "about_title"
	AboutDescription   = "about_description"
	AmenitiesTitle     = "amenities_title"
	PricingTitle       = "pricing_title"
	PricingDescription = "pricing_description"
	ContactTitle       = "contact_title"
	ContactDescription = "contact_description"
	FooterText         = "footer_text"
)

// SectionDef describes a seeded content section.
type SectionDef struct {
	Key         string
	Name        string
	ContentType string
}

// Sections lists every section key in page order.
var Sections = []SectionDef{
	{HeroTitle, "Hero title", domain.ContentPlainText},
	{HeroSubtitle, "Hero subtitle", domain.ContentPlainText},
	{HeroCTA, "Hero button", domain.ContentPlainText},
	{AboutTitle, "About title", domain.ContentPlainText},
	{AboutDescription, "About description", domain.ContentRichText},
	{AmenitiesTitle, "Amenities title", domain.ContentPlainText},
	{PricingTitle, "Pricing title", domain.ContentPlainText},
	{PricingDescription, "Pricing description", domain.ContentRichText},
	{ContactTitle, "Contact title", domain.ContentPlainText},
	{ContactDescription, "Contact description", domain.ContentRichText},
	{FooterText, "Footer text", domain.ContentPlainText},
}

var bundles = map[string]map[string]string{
	i18n.English: {
		HeroTitle:          "Welcome to Our Beautiful BnB",
		HeroSubtitle:       "Experience comfort and luxury in the heart of the city",
		HeroCTA:            "Book Your Stay",
		AboutTitle:         "About Our Property",
		AboutDescription:   "Our charming bed and breakfast offers a perfect blend of modern comfort and traditional hospitality. Located in a peaceful neighborhood, we provide an ideal retreat for travelers seeking authentic experiences.",
		AmenitiesTitle:     "Amenities & Features",
		PricingTitle:       "Pricing & Availability",
		PricingDescription: "Competitive rates with exceptional value",
		ContactTitle:       "Get In Touch",
		ContactDescription: "Ready to book your stay? Contact us for availability and special offers.",
		FooterText:         "© 2025 Beautiful BnB. All rights reserved.",
	},
	i18n.Dutch: {
		HeroTitle:          "Welkom bij Onze Prachtige BnB",
		HeroSubtitle:       "Ervaar comfort en luxe in het hart van de stad",
		HeroCTA:            "Boek Uw Verblijf",
		AboutTitle:         "Over Ons Pand",
		AboutDescription:   "Onze charmante bed and breakfast biedt een perfecte mix van modern comfort en traditionele gastvrijheid. Gelegen in een rustige buurt, bieden wij een ideaal toevluchtsoord voor reizigers die op zoek zijn naar authentieke ervaringen.",
		AmenitiesTitle:     "Voorzieningen & Faciliteiten",
		PricingTitle:       "Prijzen & Beschikbaarheid",
		PricingDescription: "Concurrerende tarieven met uitzonderlijke waarde",
		ContactTitle:       "Neem Contact Op",
		ContactDescription: "Klaar om uw verblijf te boeken? Neem contact met ons op voor beschikbaarheid en speciale aanbiedingen.",
		FooterText:         "© 2025 Prachtige BnB. Alle rechten voorbehouden.",
	},
	i18n.French: {
		HeroTitle:          "Bienvenue dans Notre Magnifique BnB",
		HeroSubtitle:       "Découvrez le confort et le luxe au cœur de la ville",
		HeroCTA:            "Réservez Votre Séjour",
		AboutTitle:         "À Propos de Notre Propriété",
		AboutDescription:   "Notre charmant bed and breakfast offre un mélange parfait de confort moderne et d'hospitalité traditionnelle. Situé dans un quartier paisible, nous offrons une retraite idéale pour les voyageurs en quête d'expériences authentiques.",
		AmenitiesTitle:     "Équipements & Caractéristiques",
		PricingTitle:       "Tarifs & Disponibilité",
		PricingDescription: "Tarifs compétitifs avec une valeur exceptionnelle",
		ContactTitle:       "Contactez-Nous",
		ContactDescription: "Prêt à réserver votre séjour ? Contactez-nous pour la disponibilité et les offres spéciales.",
		FooterText:         "© 2025 Magnifique BnB. Tous droits réservés.",
	},
}

// Content returns a copy of the bundle for lang, or the English bundle when lang is unknown.
func Content(lang string) map[string]string {
	b, ok := bundles[lang]
	if !ok {
		b = bundles[i18n.English]
	}
	out := make(map[string]string, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

var defaultImages = []string{
	"/static/img/modern-bnb-bedroom.svg",
	"/static/img/cozy-bnb-living-room.svg",
	"/static/img/bnb-breakfast-area.svg",
	"/static/img/bnb-exterior-view.svg",
}

var defaultAmenities = []string{
	"Free WiFi",
	"Breakfast Included",
	"Air Conditioning",
	"Private Bathroom",
	"City View",
	"Non-Smoking",
	"Parking Available",
}

// ID identifies records that came from this package.
const ID = "fallback"

// Property returns the default property record.
func Property() domain.PropertyInfo {
	return domain.PropertyInfo{
		ID:            ID,
		Name:          "Beautiful City BnB",
		Description:   "A charming bed and breakfast in the heart of the city",
		Address:       "123 Main Street, City Center",
		MaxGuests:     4,
		Bedrooms:      2,
		Bathrooms:     2,
		PricePerNight: 89.0,
		Currency:      "EUR",
		Amenities:     append(domain.StringList(nil), defaultAmenities...),
		Images:        append(domain.StringList(nil), defaultImages...),
	}
}

// Room returns the default room record.
func Room() domain.Room {
	return domain.Room{
		ID:            ID,
		Name:          "Beautiful City BnB",
		Description:   "A charming bed and breakfast in the heart of the city",
		MaxGuests:     4,
		BedType:       "Queen",
		SizeSqm:       20,
		PricePerNight: 89.0,
		Amenities:     append(domain.StringList(nil), defaultAmenities...),
		Images:        append(domain.StringList(nil), defaultImages...),
		IsAvailable:   true,
		SortOrder:     0,
	}
}

// Images lists the bundled placeholder images under /static/img.
func Images() []string {
	return append([]string(nil), defaultImages...)
}

// Rooms returns the one-element room list used when no rooms can be read.
func Rooms() []domain.Room {
	return []domain.Room{Room()}
}
