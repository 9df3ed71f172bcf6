package navigation

import (
	"fmt"
	"strings"
)

// View is the closed set of screens an advisor can be looking at.
type View uint8

const (
	Roster View = iota
	General
	Climate
	Record
	Irrigation
	Applications
	Harvest
	Incidents
	Personnel
	Map
)

var viewNames = [...]string{
	Roster:       "roster",
	General:      "general",
	Climate:      "climate",
	Record:       "record",
	Irrigation:   "irrigation",
	Applications: "applications",
	Harvest:      "harvest",
	Incidents:    "incidents",
	Personnel:    "personnel",
	Map:          "map",
}

// Tab captions shown to the advisor.
var viewLabels = [...]string{
	Roster:       "Dashboard",
	General:      "General",
	Climate:      "Clima",
	Record:       "Registro",
	Irrigation:   "Riego",
	Applications: "Aplicaciones",
	Harvest:      "Cosecha",
	Incidents:    "Incidencias",
	Personnel:    "Personal",
	Map:          "Mapa",
}

// older tab ids still sent by bookmarked links
var viewAliases = map[string]View{
	"dashboard":    Roster,
	"clima":        Climate,
	"registro":     Record,
	"riego":        Irrigation,
	"aplicaciones": Applications,
	"cosecha":      Harvest,
	"incidencias":  Incidents,
	"personal":     Personnel,
	"mapa":         Map,
}

func (v View) Valid() bool { return int(v) < len(viewNames) }

// IsDetail reports whether v belongs to a selected site.
func (v View) IsDetail() bool { return v.Valid() && v != Roster }

func (v View) String() string {
	if !v.Valid() {
		return fmt.Sprintf("view(%d)", uint8(v))
	}
	return viewNames[v]
}

func (v View) Label() string {
	if !v.Valid() {
		return v.String()
	}
	return viewLabels[v]
}

// DetailViews lists the tabs of a site in display order.
func DetailViews() []View {
	return []View{General, Climate, Record, Irrigation, Applications, Harvest, Incidents, Personnel, Map}
}

func ParseView(s string) (View, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range viewNames {
		if n == key {
			return View(i), nil
		}
	}
	if v, ok := viewAliases[key]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown view %q", s)
}

func (v View) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("unknown view %d", uint8(v))
	}
	return []byte(v.String()), nil
}

func (v *View) UnmarshalText(b []byte) error {
	p, err := ParseView(string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}
