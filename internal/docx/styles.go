package docx

import (
	"encoding/xml"
	"strings"
)

const defaultStyleName = "Normal"

// stylesXML represents the structure of word/styles.xml
type stylesXML struct {
	XMLName xml.Name      `xml:"styles"`
	Styles  []styleDefXML `xml:"style"`
}

// styleDefXML represents a style definition.
type styleDefXML struct {
	Type    string       `xml:"type,attr"` // paragraph, character, table, numbering
	StyleID string       `xml:"styleId,attr"`
	Default string       `xml:"default,attr"`
	Name    styleNameXML `xml:"name"`
}

type styleNameXML struct {
	Val string `xml:"val,attr"`
}

// Built-in styles are stored under lowercase names; Word shows them capitalized.
var builtinStyleNames = map[string]string{
	"caption":   "Caption",
	"footer":    "Footer",
	"header":    "Header",
	"heading 1": "Heading 1",
	"heading 2": "Heading 2",
	"heading 3": "Heading 3",
	"heading 4": "Heading 4",
	"heading 5": "Heading 5",
	"heading 6": "Heading 6",
	"heading 7": "Heading 7",
	"heading 8": "Heading 8",
	"heading 9": "Heading 9",
}

// styleTable resolves paragraph style ids to display names.
type styleTable struct {
	names       map[string]string
	defaultName string
}

func newStyleTable(s *stylesXML) *styleTable {
	st := &styleTable{
		names:       make(map[string]string),
		defaultName: defaultStyleName,
	}
	if s == nil {
		return st
	}
	for _, def := range s.Styles {
		if def.Type != "" && def.Type != "paragraph" {
			continue
		}
		name := uiStyleName(def.Name.Val)
		if name == "" {
			name = def.StyleID
		}
		st.names[def.StyleID] = name
		if def.Default == "1" || strings.EqualFold(def.Default, "true") {
			st.defaultName = name
		}
	}
	return st
}

// Name returns the display name of styleID, falling back to the default
// paragraph style for empty or unknown ids.
func (st *styleTable) Name(styleID string) string {
	if styleID == "" {
		return st.defaultName
	}
	if name, ok := st.names[styleID]; ok {
		return name
	}
	return st.defaultName
}

func uiStyleName(name string) string {
	if ui, ok := builtinStyleNames[name]; ok {
		return ui
	}
	return name
}
