// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Catalog keys. Each key is also the English text, so an English
// printer needs no catalog entry to render it.
const (
	keyDefaultOption       = "-- Select an activity --"
	keySpotsLeft           = "%d spots left"
	keyNoParticipants      = "No participants yet"
	keyUnregisterLabel     = "Unregister %[1]s from %[2]s"
	keyConfirmUnregister   = "Unregister %[1]s from %[2]s?"
	keyLoadFailed          = "Failed to load activities. Please try again later."
	keySignupFallback      = "An error occurred"
	keySignupTransport     = "Failed to sign up. Please try again."
	keyUnregisterFallback  = "Failed to unregister participant"
	keyUnregisterTransport = "Failed to unregister participant. Please try again."
	keyMissingFields       = "Please choose an activity and enter an email."
	keyScheduleLabel       = "Schedule:"
	keyAvailabilityLabel   = "Availability:"
	keyParticipantsLabel   = "Participants:"
	keyLoading             = "Loading activities..."
	keyActivityCount       = "%d activities"
	keyEmailLabel          = "Email:"
	keyActivityLabel       = "Activity:"
	keyYes                 = "Yes"
	keyNo                  = "No"
	keyHelpList            = "[LIST] ↑↓ move  x unregister  Tab form  r refresh  q quit"
	keyHelpEmail           = "[EMAIL] Enter sign up  Tab activity  Esc list  C-c quit"
	keyHelpSelector        = "[ACTIVITY] ←→ change  Space choose  Enter sign up  Tab list  q quit"
	keyHelpDropdown        = "[SELECT] ↑↓ move  type to filter  Enter choose  Esc close"
	keyHelpConfirm         = "[CONFIRM] y yes  n no  Enter choose  Esc cancel"
)

var supportedLocales = []language.Tag{
	language.English, // first entry is the fallback
	language.French,
	language.Spanish,
}

var localeMatcher = language.NewMatcher(supportedLocales)

func init() {
	translations := map[language.Tag]map[string]string{
		language.French: {
			keyDefaultOption:       "-- Choisir une activité --",
			keySpotsLeft:           "%d places restantes",
			keyNoParticipants:      "Aucun participant pour le moment",
			keyUnregisterLabel:     "Désinscrire %[1]s de %[2]s",
			keyConfirmUnregister:   "Désinscrire %[1]s de %[2]s ?",
			keyLoadFailed:          "Impossible de charger les activités. Veuillez réessayer plus tard.",
			keySignupFallback:      "Une erreur est survenue",
			keySignupTransport:     "Échec de l'inscription. Veuillez réessayer.",
			keyUnregisterFallback:  "Échec de la désinscription du participant",
			keyUnregisterTransport: "Échec de la désinscription du participant. Veuillez réessayer.",
			keyMissingFields:       "Veuillez choisir une activité et saisir une adresse e-mail.",
			keyScheduleLabel:       "Horaire :",
			keyAvailabilityLabel:   "Disponibilité :",
			keyParticipantsLabel:   "Participants :",
			keyLoading:             "Chargement des activités...",
			keyEmailLabel:          "E-mail :",
			keyActivityLabel:       "Activité :",
			keyYes:                 "Oui",
			keyNo:                  "Non",
			keyHelpList:            "[LISTE] ↑↓ déplacer  x désinscrire  Tab formulaire  r actualiser  q quitter",
			keyHelpEmail:           "[E-MAIL] Entrée inscrire  Tab activité  Échap liste  C-c quitter",
			keyHelpSelector:        "[ACTIVITÉ] ←→ changer  Espace choisir  Entrée inscrire  Tab liste  q quitter",
			keyHelpDropdown:        "[CHOIX] ↑↓ déplacer  tapez pour filtrer  Entrée choisir  Échap fermer",
			keyHelpConfirm:         "[CONFIRMER] y oui  n non  Entrée choisir  Échap annuler",
		},
		language.Spanish: {
			keyDefaultOption:       "-- Selecciona una actividad --",
			keySpotsLeft:           "%d plazas libres",
			keyNoParticipants:      "Aún no hay participantes",
			keyUnregisterLabel:     "Dar de baja a %[1]s de %[2]s",
			keyConfirmUnregister:   "¿Dar de baja a %[1]s de %[2]s?",
			keyLoadFailed:          "No se pudieron cargar las actividades. Inténtalo de nuevo más tarde.",
			keySignupFallback:      "Se produjo un error",
			keySignupTransport:     "No se pudo completar la inscripción. Inténtalo de nuevo.",
			keyUnregisterFallback:  "No se pudo dar de baja al participante",
			keyUnregisterTransport: "No se pudo dar de baja al participante. Inténtalo de nuevo.",
			keyMissingFields:       "Elige una actividad e introduce un correo electrónico.",
			keyScheduleLabel:       "Horario:",
			keyAvailabilityLabel:   "Disponibilidad:",
			keyParticipantsLabel:   "Participantes:",
			keyLoading:             "Cargando actividades...",
			keyEmailLabel:          "Correo:",
			keyActivityLabel:       "Actividad:",
			keyYes:                 "Sí",
			keyNo:                  "No",
			keyHelpList:            "[LISTA] ↑↓ mover  x dar de baja  Tab formulario  r actualizar  q salir",
			keyHelpEmail:           "[CORREO] Intro inscribir  Tab actividad  Esc lista  C-c salir",
			keyHelpSelector:        "[ACTIVIDAD] ←→ cambiar  Espacio elegir  Intro inscribir  Tab lista  q salir",
			keyHelpDropdown:        "[ELEGIR] ↑↓ mover  escribe para filtrar  Intro elegir  Esc cerrar",
			keyHelpConfirm:         "[CONFIRMAR] y sí  n no  Intro elegir  Esc cancelar",
		},
	}
	english := make(map[string]string)
	for _, key := range []string{
		keyDefaultOption, keySpotsLeft, keyNoParticipants, keyUnregisterLabel,
		keyConfirmUnregister, keyLoadFailed, keySignupFallback, keySignupTransport,
		keyUnregisterFallback, keyUnregisterTransport, keyMissingFields,
		keyScheduleLabel, keyAvailabilityLabel, keyParticipantsLabel, keyLoading,
		keyEmailLabel, keyActivityLabel, keyYes, keyNo,
		keyHelpList, keyHelpEmail, keyHelpSelector, keyHelpDropdown, keyHelpConfirm,
	} {
		english[key] = key
	}
	translations[language.English] = english

	for tag, entries := range translations {
		for key, text := range entries {
			if err := message.SetString(tag, key, text); err != nil {
				panic("roster: registering " + tag.String() + " message " + key + ": " + err.Error())
			}
		}
	}

	counts := map[language.Tag][2]string{
		language.English: {"%d activity", "%d activities"},
		language.French:  {"%d activité", "%d activités"},
		language.Spanish: {"%d actividad", "%d actividades"},
	}
	for tag, forms := range counts {
		selector := plural.Selectf(1, "", plural.One, forms[0], plural.Other, forms[1])
		if err := message.Set(tag, keyActivityCount, selector); err != nil {
			panic("roster: registering " + tag.String() + " activity count: " + err.Error())
		}
	}
}

// Strings renders the fixed user-facing text for one locale. Text that
// comes from the service (success messages, error details) is never
// translated.
type Strings struct {
	tag     language.Tag
	printer *message.Printer
}

// NewStrings returns Strings for the closest supported match to
// locale. Accepts BCP 47 tags ("fr-CA") and POSIX locale names
// ("es_MX.UTF-8"). Empty, "C", "POSIX", and unrecognized values fall
// back to English.
func NewStrings(locale string) *Strings {
	tag := matchLocale(locale)
	return &Strings{tag: tag, printer: message.NewPrinter(tag)}
}

func matchLocale(locale string) language.Tag {
	if index := strings.IndexAny(locale, ".@"); index >= 0 {
		locale = locale[:index]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return supportedLocales[0]
	}
	parsed, err := language.Parse(locale)
	if err != nil {
		return supportedLocales[0]
	}
	_, index, confidence := localeMatcher.Match(parsed)
	if confidence == language.No {
		return supportedLocales[0]
	}
	return supportedLocales[index]
}

// Tag returns the matched locale.
func (s *Strings) Tag() language.Tag { return s.tag }

// DefaultOption is the label of the selector's empty first option.
func (s *Strings) DefaultOption() string { return s.printer.Sprintf(keyDefaultOption) }

// SpotsLeft renders a card's availability line.
func (s *Strings) SpotsLeft(spots int) string { return s.printer.Sprintf(keySpotsLeft, spots) }

// NoParticipants is the placeholder for an activity nobody has joined.
func (s *Strings) NoParticipants() string { return s.printer.Sprintf(keyNoParticipants) }

// UnregisterLabel describes a participant's delete control.
func (s *Strings) UnregisterLabel(email, activity string) string {
	return s.printer.Sprintf(keyUnregisterLabel, email, activity)
}

// ConfirmUnregister is the question asked before removing a participant.
func (s *Strings) ConfirmUnregister(email, activity string) string {
	return s.printer.Sprintf(keyConfirmUnregister, email, activity)
}

// LoadFailed replaces the card list when a fetch fails.
func (s *Strings) LoadFailed() string { return s.printer.Sprintf(keyLoadFailed) }

// SignupFallback is shown when a rejected signup carries no detail.
func (s *Strings) SignupFallback() string { return s.printer.Sprintf(keySignupFallback) }

// SignupTransport is shown when a signup never got a usable answer.
func (s *Strings) SignupTransport() string { return s.printer.Sprintf(keySignupTransport) }

// UnregisterFallback is shown when a rejected unregister carries no
// detail.
func (s *Strings) UnregisterFallback() string { return s.printer.Sprintf(keyUnregisterFallback) }

// UnregisterTransport is shown when an unregister never got a usable
// answer.
func (s *Strings) UnregisterTransport() string { return s.printer.Sprintf(keyUnregisterTransport) }

// MissingFields is shown when the signup form is submitted incomplete.
func (s *Strings) MissingFields() string { return s.printer.Sprintf(keyMissingFields) }

// ScheduleLabel, AvailabilityLabel, and ParticipantsLabel head the
// lines of an activity card.
func (s *Strings) ScheduleLabel() string     { return s.printer.Sprintf(keyScheduleLabel) }
func (s *Strings) AvailabilityLabel() string { return s.printer.Sprintf(keyAvailabilityLabel) }
func (s *Strings) ParticipantsLabel() string { return s.printer.Sprintf(keyParticipantsLabel) }

// Loading stands in for the card list before the first snapshot.
func (s *Strings) Loading() string { return s.printer.Sprintf(keyLoading) }

// ActivityCount is the header's "N activities" with plural agreement.
func (s *Strings) ActivityCount(count int) string {
	return s.printer.Sprintf(keyActivityCount, count)
}

// EmailLabel and ActivityLabel name the signup form's two fields.
func (s *Strings) EmailLabel() string    { return s.printer.Sprintf(keyEmailLabel) }
func (s *Strings) ActivityLabel() string { return s.printer.Sprintf(keyActivityLabel) }

// Yes and No label the confirmation buttons.
func (s *Strings) Yes() string { return s.printer.Sprintf(keyYes) }
func (s *Strings) No() string  { return s.printer.Sprintf(keyNo) }

// Key help for each focus region and for the open confirmation.
func (s *Strings) HelpList() string     { return s.printer.Sprintf(keyHelpList) }
func (s *Strings) HelpEmail() string    { return s.printer.Sprintf(keyHelpEmail) }
func (s *Strings) HelpSelector() string { return s.printer.Sprintf(keyHelpSelector) }
func (s *Strings) HelpDropdown() string { return s.printer.Sprintf(keyHelpDropdown) }
func (s *Strings) HelpConfirm() string  { return s.printer.Sprintf(keyHelpConfirm) }
